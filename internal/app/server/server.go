package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"pulse/internal/domain/examination"
	"pulse/internal/domain/knowledge"
	"pulse/internal/domain/report"
	"pulse/internal/domain/stats"
	"pulse/internal/domain/survey"
	"pulse/internal/platform/config"
	"pulse/internal/platform/db"
	"pulse/internal/platform/metrics"
	"pulse/internal/platform/narrative"
	"pulse/internal/transport/http/api"
	authhandler "pulse/internal/transport/http/handlers/auth"
	examinationhandler "pulse/internal/transport/http/handlers/examinations"
	reporthandler "pulse/internal/transport/http/handlers/reports"
	"pulse/internal/transport/http/middleware"
)

func Run() {
	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer pool.Close()

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, "migrations"); err != nil {
			log.Fatalf("migrations failed: %v", err)
		}
	}
	if cfg.RunSeed {
		if err := db.Seed(ctx, pool, cfg); err != nil {
			log.Fatalf("seed failed: %v", err)
		}
	}

	kb := knowledge.NewStore(cfg.KBFactorsPath, cfg.KBEngagementPath)
	if err := kb.Load(); err != nil {
		log.Fatalf("knowledge base load failed: %v", err)
	}
	log.Printf("knowledge base loaded, %d entries", kb.Len())

	taxonomy := survey.DefaultTaxonomy()

	var generator narrative.Generator
	if cfg.NarrativeAPIURL != "" {
		generator = narrative.NewHTTPGenerator(cfg.NarrativeAPIURL, cfg.NarrativeAPIKey, cfg.NarrativeModel, cfg.NarrativeTimeout)
	} else {
		generator = narrative.NewStatic()
	}

	examStore := examination.NewStore(pool)
	examService := examination.NewService(examStore)

	reportService := report.NewService(report.ServiceConfig{
		Reports:      report.NewStore(pool),
		Examinations: examStore,
		KB:           kb,
		Taxonomy:     taxonomy,
		Mapper:       survey.NewStaticMapper(taxonomy),
		Generator:    generator,
		StatsOptions: stats.Options{
			EngagementArea:   cfg.EngagementArea,
			SatisfactionArea: cfg.SatisfactionArea,
		},
		CompanyName: cfg.CompanyName,
	})

	collector := metrics.New()

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(collector))
	router.Use(middleware.Recoverer)
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.Auth(cfg.JWTSecret))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	if cfg.MetricsEnabled {
		router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			api.Success(w, collector.Snapshot(), middleware.GetRequestID(r.Context()))
		})
	}

	router.Route("/api/v1", func(r chi.Router) {
		authHandler := authhandler.NewHandler(pool, cfg.JWTSecret)
		r.Post("/auth/login", authHandler.HandleLogin)
		r.Post("/auth/logout", authHandler.HandleLogout)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)

			r.Get("/auth/me", authHandler.HandleMe)

			examHandler := examinationhandler.NewHandler(examService)
			r.Post("/examinations", examHandler.HandleUpload)
			r.Get("/examinations", examHandler.HandleList)
			r.Get("/examinations/{id}", examHandler.HandleGet)

			repHandler := reporthandler.NewHandler(reportService, collector)
			r.Post("/reports", repHandler.HandleCreate)
			r.Get("/reports", repHandler.HandleList)
			r.Get("/reports/{id}", repHandler.HandleGet)
			r.Get("/reports/{id}/pdf", repHandler.HandlePDF)
		})
	})

	log.Printf("pulse server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
