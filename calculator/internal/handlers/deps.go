package handlers

import (
	"context"
	"os"
	"time"

	"profit_engine/calculator/internal/pricing"
	"profit_engine/calculator/internal/store"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Str("component", "handlers").Logger()

// The handlers depend on these interfaces rather than the concrete Postgres
// and redis stores, so tests can substitute in-memory fakes.

type AccountStore interface {
	CreateAccount(ctx context.Context, email, passwordHash string) (int, error)
	GetAccountByEmail(ctx context.Context, email string) (*store.Account, error)
}

type ProductRepository interface {
	CreateProduct(ctx context.Context, ownerID int, p pricing.Product) (pricing.Product, error)
	ListProducts(ctx context.Context, ownerID int) ([]pricing.Product, error)
	GetProduct(ctx context.Context, ownerID int, productID string) (*pricing.Product, error)
	UpdateProduct(ctx context.Context, ownerID int, p pricing.Product) error
	DeleteProduct(ctx context.Context, ownerID int, productID string) error
	CountProducts(ctx context.Context, ownerID int) (int, error)
}

type SessionStore interface {
	SaveRefreshToken(ctx context.Context, accountID int, token string, ttl time.Duration) error
	GetRefreshToken(ctx context.Context, accountID int) (string, error)
	DeleteRefreshToken(ctx context.Context, accountID int) error
}
