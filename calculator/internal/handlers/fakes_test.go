package handlers

import (
	"context"
	"fmt"
	"sort"
	"time"

	"profit_engine/calculator/internal/pricing"
	"profit_engine/calculator/internal/store"
)

// In-memory stand-ins for the Postgres and redis stores, mirroring their
// contracts: (nil, nil) lookups for missing rows, errors for missing updates.

type fakeAccounts struct {
	nextID  int
	byEmail map[string]*store.Account
}

func newFakeAccounts() *fakeAccounts {
	return &fakeAccounts{byEmail: make(map[string]*store.Account)}
}

func (f *fakeAccounts) CreateAccount(_ context.Context, email, passwordHash string) (int, error) {
	if _, exists := f.byEmail[email]; exists {
		return 0, fmt.Errorf("duplicate email: %s", email)
	}
	f.nextID++
	f.byEmail[email] = &store.Account{
		ID:           f.nextID,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	return f.nextID, nil
}

func (f *fakeAccounts) GetAccountByEmail(_ context.Context, email string) (*store.Account, error) {
	a, ok := f.byEmail[email]
	if !ok {
		return nil, nil
	}
	copied := *a
	return &copied, nil
}

type fakeProducts struct {
	byOwner map[int][]pricing.Product
	clock   time.Time
}

func newFakeProducts() *fakeProducts {
	return &fakeProducts{
		byOwner: make(map[int][]pricing.Product),
		clock:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (f *fakeProducts) CreateProduct(_ context.Context, ownerID int, p pricing.Product) (pricing.Product, error) {
	f.clock = f.clock.Add(time.Second)
	p.CreatedAt = f.clock
	f.byOwner[ownerID] = append(f.byOwner[ownerID], p)
	return p, nil
}

func (f *fakeProducts) ListProducts(_ context.Context, ownerID int) ([]pricing.Product, error) {
	products := append([]pricing.Product(nil), f.byOwner[ownerID]...)
	sort.Slice(products, func(i, j int) bool {
		return products[i].CreatedAt.After(products[j].CreatedAt)
	})
	return products, nil
}

func (f *fakeProducts) GetProduct(_ context.Context, ownerID int, productID string) (*pricing.Product, error) {
	for _, p := range f.byOwner[ownerID] {
		if p.ID == productID {
			copied := p
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeProducts) UpdateProduct(_ context.Context, ownerID int, p pricing.Product) error {
	for i, existing := range f.byOwner[ownerID] {
		if existing.ID == p.ID {
			p.CreatedAt = existing.CreatedAt
			f.byOwner[ownerID][i] = p
			return nil
		}
	}
	return fmt.Errorf("product not found: %s", p.ID)
}

func (f *fakeProducts) DeleteProduct(_ context.Context, ownerID int, productID string) error {
	products := f.byOwner[ownerID]
	for i, p := range products {
		if p.ID == productID {
			f.byOwner[ownerID] = append(products[:i], products[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("product not found: %s", productID)
}

func (f *fakeProducts) CountProducts(_ context.Context, ownerID int) (int, error) {
	return len(f.byOwner[ownerID]), nil
}

type fakeSessions struct {
	tokens map[int]string
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{tokens: make(map[int]string)}
}

func (f *fakeSessions) SaveRefreshToken(_ context.Context, accountID int, token string, _ time.Duration) error {
	f.tokens[accountID] = token
	return nil
}

func (f *fakeSessions) GetRefreshToken(_ context.Context, accountID int) (string, error) {
	return f.tokens[accountID], nil
}

func (f *fakeSessions) DeleteRefreshToken(_ context.Context, accountID int) error {
	delete(f.tokens, accountID)
	return nil
}
