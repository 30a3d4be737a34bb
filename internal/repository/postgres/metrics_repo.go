// internal/repository/postgres/metrics_repo.go
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"thelook-service/internal/domain/metrics"
)

// MetricsRepository computes the derived aggregates straight from the
// transactional tables. Only completed orders count toward any metric.
type MetricsRepository struct {
	db *pgxpool.Pool
}

func NewMetricsRepository(db *pgxpool.Pool) *MetricsRepository {
	return &MetricsRepository{db: db}
}

// DailyMetrics returns revenue, order count and distinct buyer count for
// every day that has at least one completed order, ordered by date.
func (r *MetricsRepository) DailyMetrics(ctx context.Context) ([]metrics.Daily, error) {
	query := `
		SELECT o.order_date,
		       COALESCE(SUM(oi.unit_price * oi.quantity), 0) AS revenue,
		       COUNT(DISTINCT o.id)                          AS orders,
		       COUNT(DISTINCT o.customer_id)                 AS active_customers
		FROM orders o
		JOIN order_items oi ON oi.order_id = o.id
		WHERE o.status = 'Completed'
		GROUP BY o.order_date
		ORDER BY o.order_date
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily metrics: %w", err)
	}
	defer rows.Close()

	var out []metrics.Daily
	for rows.Next() {
		var d metrics.Daily
		if err := rows.Scan(&d.Date, &d.Revenue, &d.Orders, &d.ActiveCustomers); err != nil {
			return nil, fmt.Errorf("failed to scan daily metrics row: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// TopProducts ranks products by total completed-order quantity, highest
// first, limited to the given count.
func (r *MetricsRepository) TopProducts(ctx context.Context, limit int) ([]metrics.ProductQuantity, error) {
	query := `
		SELECT p.name, SUM(oi.quantity) AS quantity
		FROM order_items oi
		JOIN orders o   ON o.id = oi.order_id
		JOIN products p ON p.id = oi.product_id
		WHERE o.status = 'Completed'
		GROUP BY p.name
		ORDER BY quantity DESC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top products: %w", err)
	}
	defer rows.Close()

	var out []metrics.ProductQuantity
	for rows.Next() {
		var pq metrics.ProductQuantity
		if err := rows.Scan(&pq.Name, &pq.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan top products row: %w", err)
		}
		out = append(out, pq)
	}
	return out, rows.Err()
}

// RegionRevenue returns completed-order revenue grouped by the buyer's
// region. Only regions present in the data come back; zero-filling the
// full region list is the aggregation service's job.
func (r *MetricsRepository) RegionRevenue(ctx context.Context) ([]metrics.RegionRevenue, error) {
	query := `
		SELECT c.region, COALESCE(SUM(oi.unit_price * oi.quantity), 0) AS revenue
		FROM orders o
		JOIN customers c    ON c.id = o.customer_id
		JOIN order_items oi ON oi.order_id = o.id
		WHERE o.status = 'Completed'
		GROUP BY c.region
		ORDER BY revenue DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query region revenue: %w", err)
	}
	defer rows.Close()

	var out []metrics.RegionRevenue
	for rows.Next() {
		var rr metrics.RegionRevenue
		if err := rows.Scan(&rr.Region, &rr.Revenue); err != nil {
			return nil, fmt.Errorf("failed to scan region revenue row: %w", err)
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}
