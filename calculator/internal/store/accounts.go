package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// 1. THE DATA STRUCTURE
// Matches the 'accounts' table exactly.
type Account struct {
	ID           int
	Email        string
	PasswordHash string // We never store plain text passwords!
	CreatedAt    time.Time
}

type AccountStore struct {
	db *sql.DB
}

func NewAccountStore(db *sql.DB) *AccountStore {
	return &AccountStore{db: db}
}

// ---------------------------------------------------------
// 2. SIGN UP (Create New Account)
// ---------------------------------------------------------
func (s *AccountStore) CreateAccount(ctx context.Context, email, passwordHash string) (int, error) {
	query := `
		INSERT INTO accounts (email, password_hash)
		VALUES ($1, $2)
		RETURNING id
	`
	var id int
	err := s.db.QueryRowContext(ctx, query, email, passwordHash).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create account: %w", err)
	}
	return id, nil
}

// ---------------------------------------------------------
// 3. SIGN IN (Find by Email)
// ---------------------------------------------------------
// Returns (nil, nil) when no account exists for the email, so the caller
// can answer "invalid credentials" without distinguishing the two cases.
func (s *AccountStore) GetAccountByEmail(ctx context.Context, email string) (*Account, error) {
	query := `
		SELECT id, email, password_hash, created_at
		FROM accounts
		WHERE email = $1
	`
	var a Account
	err := s.db.QueryRowContext(ctx, query, email).Scan(
		&a.ID, &a.Email, &a.PasswordHash, &a.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}
	return &a, nil
}
