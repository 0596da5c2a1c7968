package db

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"pulse/internal/domain/auth"
	"pulse/internal/platform/config"
)

func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	if cfg.SeedAdminEmail == "" {
		return nil
	}
	return ensureAdminUser(ctx, pool, cfg.SeedAdminEmail, cfg.SeedAdminPassword)
}

func ensureAdminUser(ctx context.Context, pool *pgxpool.Pool, email, password string) error {
	var id string
	err := pool.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&id)
	if err == nil {
		return nil
	}

	if password == "" {
		log.Printf("seed: admin user %s requested without password, skipping", email)
		return nil
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx,
		"INSERT INTO users (id, email, password_hash, role) VALUES ($1, $2, $3, $4)",
		uuid.NewString(), email, hashed, auth.RoleAdmin)
	return err
}
