// internal/repository/postgres/tables_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"thelook-service/internal/domain/catalog"
	"thelook-service/internal/domain/sales"
	xerrors "thelook-service/internal/pkg/errors"
)

// TablesRepository serves the read-only browse surface over the generated
// tables. Every listing is keyset-free offset pagination; the dataset is
// write-once so the usual offset drift concerns do not apply.
type TablesRepository struct {
	db *pgxpool.Pool
}

func NewTablesRepository(db *pgxpool.Pool) *TablesRepository {
	return &TablesRepository{db: db}
}

// OrderFilter narrows ListOrders. Zero values mean no constraint.
type OrderFilter struct {
	Status  sales.Status
	Channel sales.Channel
}

func (r *TablesRepository) ListCustomers(ctx context.Context, limit, offset int) ([]catalog.Customer, error) {
	query := `
		SELECT id, name, email, segment, city, state, region,
		       enrolled_at, persona, purchase_cap, purchase_count
		FROM customers
		ORDER BY id
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	defer rows.Close()

	var out []catalog.Customer
	for rows.Next() {
		var c catalog.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Segment, &c.City, &c.State,
			&c.Region, &c.EnrolledAt, &c.Persona, &c.PurchaseCap, &c.PurchaseCount); err != nil {
			return nil, fmt.Errorf("failed to scan customer row: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *TablesRepository) ListProducts(ctx context.Context, limit, offset int) ([]catalog.Product, error) {
	query := `
		SELECT id, name, category, brand, cost, suggested_price, lifecycle
		FROM products
		ORDER BY id
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var out []catalog.Product
	for rows.Next() {
		var p catalog.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Brand,
			&p.Cost, &p.SuggestedPrice, &p.Lifecycle); err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *TablesRepository) ListOrders(ctx context.Context, f OrderFilter, limit, offset int) ([]sales.Order, error) {
	query := `
		SELECT id, run_id, customer_id, order_date, delivery_date, status, channel
		FROM orders
		WHERE ($1 = '' OR status = $1)
		  AND ($2 = '' OR channel = $2)
		ORDER BY id
		LIMIT $3 OFFSET $4
	`

	rows, err := r.db.Query(ctx, query, string(f.Status), string(f.Channel), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	var out []sales.Order
	for rows.Next() {
		var o sales.Order
		if err := rows.Scan(&o.ID, &o.RunID, &o.CustomerID, &o.OrderDate, &o.DeliveryDate,
			&o.Status, &o.Channel); err != nil {
			return nil, fmt.Errorf("failed to scan order row: %w", err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// GetOrder loads one order with its items.
func (r *TablesRepository) GetOrder(ctx context.Context, id int64) (*sales.Order, error) {
	var o sales.Order
	err := r.db.QueryRow(ctx, `
		SELECT id, run_id, customer_id, order_date, delivery_date, status, channel
		FROM orders WHERE id = $1
	`, id).Scan(&o.ID, &o.RunID, &o.CustomerID, &o.OrderDate, &o.DeliveryDate, &o.Status, &o.Channel)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: order %d", xerrors.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load order %d: %w", id, err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, order_id, product_id, quantity, unit_price, unit_cost, discount_applied
		FROM order_items WHERE order_id = $1
		ORDER BY id
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load items for order %d: %w", id, err)
	}
	defer rows.Close()

	for rows.Next() {
		var it sales.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Quantity,
			&it.UnitPrice, &it.UnitCost, &it.Discount); err != nil {
			return nil, fmt.Errorf("failed to scan order item row: %w", err)
		}
		o.Items = append(o.Items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &o, nil
}

// Counts reports row totals per table, for the dataset overview endpoint.
func (r *TablesRepository) Counts(ctx context.Context) (map[string]int64, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM customers),
			(SELECT COUNT(*) FROM products),
			(SELECT COUNT(*) FROM orders),
			(SELECT COUNT(*) FROM order_items)
	`

	var customers, products, orders, items int64
	if err := r.db.QueryRow(ctx, query).Scan(&customers, &products, &orders, &items); err != nil {
		return nil, fmt.Errorf("failed to count tables: %w", err)
	}
	return map[string]int64{
		"customers":   customers,
		"products":    products,
		"orders":      orders,
		"order_items": items,
	}, nil
}
