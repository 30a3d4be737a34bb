// internal/repository/postgres/schema.go
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema for the simulated star-schema tables. Check constraints enforce
// the item invariants at the database level, so violating inserts are
// rejected rather than silently stored.
const createSchemaSQL = `
CREATE TABLE IF NOT EXISTS customers (
    id              BIGSERIAL PRIMARY KEY,
    name            VARCHAR(100) NOT NULL,
    email           VARCHAR(255) NOT NULL UNIQUE,
    segment         VARCHAR(10) NOT NULL,
    city            VARCHAR(50) NOT NULL,
    state           VARCHAR(30) NOT NULL,
    region          VARCHAR(30) NOT NULL,
    enrolled_at     DATE NOT NULL,
    persona         VARCHAR(10) NOT NULL,
    purchase_cap    INTEGER NOT NULL,
    purchase_count  INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS products (
    id              BIGSERIAL PRIMARY KEY,
    name            VARCHAR(100) NOT NULL,
    category        VARCHAR(50) NOT NULL,
    brand           VARCHAR(50) NOT NULL,
    cost            NUMERIC(10,2) NOT NULL CHECK (cost >= 0),
    suggested_price NUMERIC(10,2) NOT NULL CHECK (suggested_price >= 0),
    lifecycle       VARCHAR(10) NOT NULL
);

CREATE TABLE IF NOT EXISTS orders (
    id            BIGSERIAL PRIMARY KEY,
    run_id        CHAR(26) NOT NULL,
    customer_id   BIGINT NOT NULL REFERENCES customers(id) ON DELETE CASCADE,
    order_date    DATE NOT NULL,
    delivery_date DATE NOT NULL,
    status        VARCHAR(10) NOT NULL,
    channel       VARCHAR(10) NOT NULL,
    CHECK (delivery_date >= order_date)
);

CREATE TABLE IF NOT EXISTS order_items (
    id               BIGSERIAL PRIMARY KEY,
    order_id         BIGINT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
    product_id       BIGINT NOT NULL REFERENCES products(id) ON DELETE CASCADE,
    quantity         INTEGER NOT NULL CHECK (quantity > 0),
    unit_price       NUMERIC(10,2) NOT NULL CHECK (unit_price >= 0),
    unit_cost        NUMERIC(10,2) NOT NULL CHECK (unit_cost >= 0),
    discount_applied NUMERIC(5,2) NOT NULL DEFAULT 0 CHECK (discount_applied >= 0)
);

CREATE INDEX IF NOT EXISTS idx_customers_segment_region ON customers (segment, region);
CREATE INDEX IF NOT EXISTS idx_products_category_brand ON products (category, brand);
CREATE INDEX IF NOT EXISTS idx_orders_date_status_channel ON orders (order_date, status, channel);
CREATE INDEX IF NOT EXISTS idx_order_items_order_product ON order_items (order_id, product_id);
`

type SchemaRepository struct {
	db *pgxpool.Pool
}

func NewSchemaRepository(db *pgxpool.Pool) *SchemaRepository {
	return &SchemaRepository{db: db}
}

// EnsureSchema creates the tables and indexes when missing.
func (r *SchemaRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, createSchemaSQL); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// DeleteAll wipes every simulated table in dependency order, for a fresh
// run. TRUNCATE ... CASCADE keeps the identity sequences from colliding
// with previously generated rows.
func (r *SchemaRepository) DeleteAll(ctx context.Context) error {
	query := `TRUNCATE order_items, orders, products, customers RESTART IDENTITY CASCADE`
	if _, err := r.db.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to reset tables: %w", err)
	}
	return nil
}
