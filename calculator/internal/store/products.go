package store

import (
	"context"
	"database/sql"
	"fmt"

	"profit_engine/calculator/internal/pricing"
)

type ProductStore struct {
	db *sql.DB
}

func NewProductStore(db *sql.DB) *ProductStore {
	return &ProductStore{db: db}
}

// CreateProduct inserts a snapshot for an owner. The public product id
// (a uuid) is generated by the handler; the DB assigns created_at so the
// listing order is creation order.
func (s *ProductStore) CreateProduct(ctx context.Context, ownerID int, p pricing.Product) (pricing.Product, error) {
	query := `
		INSERT INTO products (
			product_id, owner_id, name,
			landed, ship, pack, fee_pct, fee_flat,
			price, min_price, max_price, competitor_price
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at
	`
	err := s.db.QueryRowContext(ctx, query,
		p.ID, ownerID, p.Name,
		p.Landed, p.Ship, p.Pack, p.FeePct, p.FeeFlat,
		p.Price, p.MinPrice, p.MaxPrice, p.CompetitorPrice,
	).Scan(&p.CreatedAt)
	if err != nil {
		return pricing.Product{}, fmt.Errorf("failed to create product: %w", err)
	}
	return p, nil
}

// ListProducts returns the owner's products, newest first.
func (s *ProductStore) ListProducts(ctx context.Context, ownerID int) ([]pricing.Product, error) {
	query := `
		SELECT product_id, name,
		       landed, ship, pack, fee_pct, fee_flat,
		       price, min_price, max_price, competitor_price, created_at
		FROM products
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`
	rows, err := s.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []pricing.Product
	for rows.Next() {
		var p pricing.Product
		if err := rows.Scan(
			&p.ID, &p.Name,
			&p.Landed, &p.Ship, &p.Pack, &p.FeePct, &p.FeeFlat,
			&p.Price, &p.MinPrice, &p.MaxPrice, &p.CompetitorPrice, &p.CreatedAt,
		); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// GetProduct fetches one product. The owner id is part of the lookup so a
// foreign product behaves exactly like a missing one: (nil, nil).
func (s *ProductStore) GetProduct(ctx context.Context, ownerID int, productID string) (*pricing.Product, error) {
	query := `
		SELECT product_id, name,
		       landed, ship, pack, fee_pct, fee_flat,
		       price, min_price, max_price, competitor_price, created_at
		FROM products
		WHERE owner_id = $1 AND product_id = $2
	`
	var p pricing.Product
	err := s.db.QueryRowContext(ctx, query, ownerID, productID).Scan(
		&p.ID, &p.Name,
		&p.Landed, &p.Ship, &p.Pack, &p.FeePct, &p.FeeFlat,
		&p.Price, &p.MinPrice, &p.MaxPrice, &p.CompetitorPrice, &p.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return &p, nil
}

func (s *ProductStore) UpdateProduct(ctx context.Context, ownerID int, p pricing.Product) error {
	query := `
		UPDATE products
		SET name = $1,
		    landed = $2, ship = $3, pack = $4,
		    fee_pct = $5, fee_flat = $6,
		    price = $7, min_price = $8, max_price = $9,
		    competitor_price = $10
		WHERE owner_id = $11 AND product_id = $12
	`
	result, err := s.db.ExecContext(ctx, query,
		p.Name,
		p.Landed, p.Ship, p.Pack,
		p.FeePct, p.FeeFlat,
		p.Price, p.MinPrice, p.MaxPrice,
		p.CompetitorPrice,
		ownerID, p.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("product not found: %s", p.ID)
	}
	return nil
}

func (s *ProductStore) DeleteProduct(ctx context.Context, ownerID int, productID string) error {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM products WHERE owner_id = $1 AND product_id = $2`,
		ownerID, productID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("product not found: %s", productID)
	}
	return nil
}

// CountProducts backs the "never delete the last product" rule.
func (s *ProductStore) CountProducts(ctx context.Context, ownerID int) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM products WHERE owner_id = $1`,
		ownerID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}
