package store

import (
	"context"
	"database/sql"
	"fmt"
)

// EnsureSchema creates the calculator tables if they do not exist.
// Called once at startup before any store is used.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS accounts (
			id SERIAL PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			id SERIAL PRIMARY KEY,
			product_id UUID NOT NULL UNIQUE,
			owner_id INTEGER NOT NULL REFERENCES accounts(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			landed NUMERIC(12,2) NOT NULL DEFAULT 0,
			ship NUMERIC(12,2) NOT NULL DEFAULT 0,
			pack NUMERIC(12,2) NOT NULL DEFAULT 0,
			fee_pct NUMERIC(6,2) NOT NULL DEFAULT 0,
			fee_flat NUMERIC(12,2) NOT NULL DEFAULT 0,
			price NUMERIC(12,2) NOT NULL DEFAULT 0,
			min_price NUMERIC(12,2) NOT NULL DEFAULT 0,
			max_price NUMERIC(12,2) NOT NULL DEFAULT 0,
			competitor_price NUMERIC(12,2) NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_products_owner_created
			ON products (owner_id, created_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}
	return nil
}
