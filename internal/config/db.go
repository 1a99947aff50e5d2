package config

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

// ConnectDB establishes a connection pool to PostgreSQL, retrying a few times
// so the server can start alongside a database that is still booting.
func ConnectDB(ctx context.Context, cfg *DBConfig) (*pgxpool.Pool, error) {
	var pool *pgxpool.Pool
	var err error

	for i := 0; i < cfg.MaxRetries; i++ {
		pool, err = pgxpool.New(ctx, cfg.DSN)
		if err == nil {
			err = pool.Ping(ctx)
			if err == nil {
				log.Println("Successfully connected to PostgreSQL!")
				return pool, nil
			}
			pool.Close()
		}
		log.Printf("Failed to connect to database (attempt %d/%d): %v. Retrying in %v...", i+1, cfg.MaxRetries, err, cfg.RetryInterval)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(cfg.RetryInterval):
		}
	}
	return nil, fmt.Errorf("unable to connect to database after %d attempts: %w", cfg.MaxRetries, err)
}

type execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// Schema is the idempotent DDL applied at startup
const Schema = `
	CREATE TABLE IF NOT EXISTS admins (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		username TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		username TEXT UNIQUE NOT NULL,
		phone_number TEXT UNIQUE NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS products (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		price DOUBLE PRECISION NOT NULL,
		unit_type TEXT NOT NULL DEFAULT 'kg',
		availability BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS orders (
		id BIGSERIAL PRIMARY KEY,
		buyer_name TEXT NOT NULL,
		buyer_contact TEXT NOT NULL,
		delivery_address TEXT NOT NULL,
		payment_method TEXT NOT NULL,
		total_amount DOUBLE PRECISION NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
	);

	-- line items are snapshots: no reference to products
	CREATE TABLE IF NOT EXISTS order_items (
		id BIGSERIAL PRIMARY KEY,
		order_id BIGINT NOT NULL,
		product_name TEXT NOT NULL,
		quantity DOUBLE PRECISION NOT NULL,
		unit_type TEXT NOT NULL,
		price_per_kg DOUBLE PRECISION NOT NULL,
		total_price DOUBLE PRECISION NOT NULL,
		FOREIGN KEY (order_id) REFERENCES orders(id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_products_availability ON products(availability);
	CREATE INDEX IF NOT EXISTS idx_orders_buyer_contact ON orders(buyer_contact);
	CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders(created_at);
	CREATE INDEX IF NOT EXISTS idx_order_items_order_id ON order_items(order_id);
	`

// AutoMigrate creates tables if they don't exist
func AutoMigrate(ctx context.Context, db execer) error {
	if _, err := db.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("unable to apply migrations: %w", err)
	}

	log.Println("AutoMigrate applied successfully")
	return nil
}
