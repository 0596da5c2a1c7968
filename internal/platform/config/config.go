package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Addr              string
	DatabaseURL       string
	JWTSecret         string
	Environment       string
	CompanyName       string
	KBFactorsPath     string
	KBEngagementPath  string
	EngagementArea    string
	SatisfactionArea  string
	NarrativeAPIURL   string
	NarrativeAPIKey   string
	NarrativeModel    string
	NarrativeTimeout  time.Duration
	SeedAdminEmail    string
	SeedAdminPassword string
	RunMigrations     bool
	RunSeed           bool
	MaxBodyBytes      int64
	MetricsEnabled    bool
}

func Load() Config {
	return Config{
		Addr:              getEnv("APP_ADDR", ":8080"),
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		JWTSecret:         getEnv("JWT_SECRET", ""),
		Environment:       getEnv("APP_ENV", "development"),
		CompanyName:       getEnv("COMPANY_NAME", "Twoja firma"),
		KBFactorsPath:     getEnv("KB_FACTORS_PATH", "data/czynniki.csv"),
		KBEngagementPath:  getEnv("KB_ENGAGEMENT_PATH", "data/engagement-and-satisfaction.csv"),
		EngagementArea:    getEnv("ENGAGEMENT_AREA", "Uznanie i docenianie"),
		SatisfactionArea:  getEnv("SATISFACTION_AREA", "Środowisko pracy i kultura"),
		NarrativeAPIURL:   getEnv("NARRATIVE_API_URL", ""),
		NarrativeAPIKey:   getEnv("NARRATIVE_API_KEY", ""),
		NarrativeModel:    getEnv("NARRATIVE_MODEL", "gpt-4o"),
		NarrativeTimeout:  getEnvDuration("NARRATIVE_TIMEOUT", 60*time.Second),
		SeedAdminEmail:    getEnv("SEED_ADMIN_EMAIL", ""),
		SeedAdminPassword: getEnv("SEED_ADMIN_PASSWORD", ""),
		RunMigrations:     getEnvBool("RUN_MIGRATIONS", true),
		RunSeed:           getEnvBool("RUN_SEED", true),
		MaxBodyBytes:      int64(getEnvInt("MAX_BODY_BYTES", 10485760)),
		MetricsEnabled:    getEnvBool("METRICS_ENABLED", true),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	parsed, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return parsed
}
