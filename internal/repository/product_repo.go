package repository

import (
	"context"
	"errors"
	"fmt"

	"marketplace/internal/model"

	"github.com/jackc/pgx/v5"
)

// ProductRepository defines operations for catalog data
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	FindByID(ctx context.Context, id int64) (*model.Product, error)
	FindAvailable(ctx context.Context) ([]model.Product, error)
	Delete(ctx context.Context, id int64) error
}

type productRepository struct {
	db DBTX
}

// NewProductRepository creates a new ProductRepository
func NewProductRepository(db DBTX) ProductRepository {
	return &productRepository{db: db}
}

const productColumns = `id, name, price, unit_type, availability, created_at`

func scanProduct(row scanner, p *model.Product) error {
	return row.Scan(&p.ID, &p.Name, &p.Price, &p.UnitType, &p.Availability, &p.CreatedAt)
}

// Create inserts a new product
func (r *productRepository) Create(ctx context.Context, p *model.Product) error {
	sql := `INSERT INTO products (name, price, unit_type, availability)
            VALUES ($1, $2, $3, $4) RETURNING id, created_at`
	err := r.db.QueryRow(ctx, sql, p.Name, p.Price, p.UnitType, p.Availability).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// FindByID retrieves a product regardless of availability
func (r *productRepository) FindByID(ctx context.Context, id int64) (*model.Product, error) {
	p := &model.Product{}
	err := scanProduct(r.db.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id), p)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}
	return p, nil
}

// FindAvailable lists products flagged available, in stable id order
func (r *productRepository) FindAvailable(ctx context.Context) ([]model.Product, error) {
	rows, err := r.db.Query(ctx, `SELECT `+productColumns+` FROM products WHERE availability = TRUE ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query available products: %w", err)
	}
	defer rows.Close()

	products := make([]model.Product, 0)
	for rows.Next() {
		var p model.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product rows: %w", err)
	}
	return products, nil
}

// Delete removes a product from the catalog
func (r *productRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
