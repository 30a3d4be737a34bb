// internal/repository/postgres/bulk_repo.go
package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"thelook-service/internal/domain/catalog"
	"thelook-service/internal/domain/sales"
	xerrors "thelook-service/internal/pkg/errors"
)

const defaultBatchSize = 5000

// BulkRepository persists a full simulation run. All writes happen inside
// one transaction so a run is visible to readers all at once or not at all.
// Rows are inserted in dependency order: customers and products first, then
// orders, then items. Generated identifiers come back via RETURNING in
// submission order and are re-attached to the drafts positionally, with a
// count assertion guarding the correspondence.
type BulkRepository struct {
	db        *DB
	batchSize int
}

func NewBulkRepository(db *DB, batchSize int) *BulkRepository {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	return &BulkRepository{db: db, batchSize: batchSize}
}

func (r *BulkRepository) PersistRun(
	ctx context.Context,
	customers []*catalog.Customer,
	products []*catalog.Product,
	orders []*sales.Order,
) error {
	tx, err := r.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("%w: failed to begin transaction: %v", xerrors.ErrDataSourceUnavailable, err)
	}
	defer tx.Rollback(ctx)

	if err := r.insertCustomers(ctx, tx, customers); err != nil {
		return err
	}
	if err := r.insertProducts(ctx, tx, products); err != nil {
		return err
	}

	for _, o := range orders {
		if o.Customer == nil || o.Customer.ID == 0 {
			return fmt.Errorf("%w: order draft has no persisted customer", xerrors.ErrDataConsistency)
		}
		o.CustomerID = o.Customer.ID
	}
	if err := r.insertOrders(ctx, tx, orders); err != nil {
		return err
	}

	items := make([]*sales.OrderItem, 0)
	for _, o := range orders {
		for i := range o.Items {
			it := &o.Items[i]
			if it.Product == nil || it.Product.ID == 0 {
				return fmt.Errorf("%w: item draft has no persisted product", xerrors.ErrDataConsistency)
			}
			it.OrderID = o.ID
			it.ProductID = it.Product.ID
			items = append(items, it)
		}
	}
	if err := r.insertItems(ctx, tx, items); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit run: %w", err)
	}
	return nil
}

func (r *BulkRepository) insertCustomers(ctx context.Context, tx pgx.Tx, customers []*catalog.Customer) error {
	const cols = 10
	for start := 0; start < len(customers); start += r.batchSize {
		chunk := customers[start:min(start+r.batchSize, len(customers))]

		args := make([]any, 0, len(chunk)*cols)
		for _, c := range chunk {
			args = append(args, c.Name, c.Email, c.Segment, c.City, c.State,
				c.Region, c.EnrolledAt, c.Persona, c.PurchaseCap, c.PurchaseCount)
		}

		query := fmt.Sprintf(`
			INSERT INTO customers (name, email, segment, city, state, region,
			                       enrolled_at, persona, purchase_cap, purchase_count)
			VALUES %s
			RETURNING id
		`, valuesClause(len(chunk), cols))

		ids, err := queryIDs(ctx, tx, query, args)
		if err != nil {
			return fmt.Errorf("failed to bulk insert customers: %w", err)
		}
		if len(ids) != len(chunk) {
			return fmt.Errorf("%w: inserted %d customers, got %d ids back",
				xerrors.ErrDataConsistency, len(chunk), len(ids))
		}
		for i, id := range ids {
			chunk[i].ID = id
		}
	}
	return nil
}

func (r *BulkRepository) insertProducts(ctx context.Context, tx pgx.Tx, products []*catalog.Product) error {
	const cols = 6
	for start := 0; start < len(products); start += r.batchSize {
		chunk := products[start:min(start+r.batchSize, len(products))]

		args := make([]any, 0, len(chunk)*cols)
		for _, p := range chunk {
			args = append(args, p.Name, p.Category, p.Brand, p.Cost, p.SuggestedPrice, p.Lifecycle)
		}

		query := fmt.Sprintf(`
			INSERT INTO products (name, category, brand, cost, suggested_price, lifecycle)
			VALUES %s
			RETURNING id
		`, valuesClause(len(chunk), cols))

		ids, err := queryIDs(ctx, tx, query, args)
		if err != nil {
			return fmt.Errorf("failed to bulk insert products: %w", err)
		}
		if len(ids) != len(chunk) {
			return fmt.Errorf("%w: inserted %d products, got %d ids back",
				xerrors.ErrDataConsistency, len(chunk), len(ids))
		}
		for i, id := range ids {
			chunk[i].ID = id
		}
	}
	return nil
}

func (r *BulkRepository) insertOrders(ctx context.Context, tx pgx.Tx, orders []*sales.Order) error {
	const cols = 6
	for start := 0; start < len(orders); start += r.batchSize {
		chunk := orders[start:min(start+r.batchSize, len(orders))]

		args := make([]any, 0, len(chunk)*cols)
		for _, o := range chunk {
			args = append(args, o.RunID, o.CustomerID, o.OrderDate, o.DeliveryDate, o.Status, o.Channel)
		}

		query := fmt.Sprintf(`
			INSERT INTO orders (run_id, customer_id, order_date, delivery_date, status, channel)
			VALUES %s
			RETURNING id
		`, valuesClause(len(chunk), cols))

		ids, err := queryIDs(ctx, tx, query, args)
		if err != nil {
			return fmt.Errorf("failed to bulk insert orders: %w", err)
		}
		if len(ids) != len(chunk) {
			return fmt.Errorf("%w: inserted %d orders, got %d ids back",
				xerrors.ErrDataConsistency, len(chunk), len(ids))
		}
		for i, id := range ids {
			chunk[i].ID = id
		}
	}
	return nil
}

func (r *BulkRepository) insertItems(ctx context.Context, tx pgx.Tx, items []*sales.OrderItem) error {
	const cols = 6
	for start := 0; start < len(items); start += r.batchSize {
		chunk := items[start:min(start+r.batchSize, len(items))]

		args := make([]any, 0, len(chunk)*cols)
		for _, it := range chunk {
			args = append(args, it.OrderID, it.ProductID, it.Quantity,
				it.UnitPrice, it.UnitCost, it.Discount)
		}

		query := fmt.Sprintf(`
			INSERT INTO order_items (order_id, product_id, quantity, unit_price, unit_cost, discount_applied)
			VALUES %s
			RETURNING id
		`, valuesClause(len(chunk), cols))

		ids, err := queryIDs(ctx, tx, query, args)
		if err != nil {
			return fmt.Errorf("failed to bulk insert order items: %w", err)
		}
		if len(ids) != len(chunk) {
			return fmt.Errorf("%w: inserted %d items, got %d ids back",
				xerrors.ErrDataConsistency, len(chunk), len(ids))
		}
		for i, id := range ids {
			chunk[i].ID = id
		}
	}
	return nil
}

// valuesClause builds "($1,$2,...),($...),..." for rows x cols placeholders.
func valuesClause(rows, cols int) string {
	var b strings.Builder
	arg := 1
	for r := 0; r < rows; r++ {
		if r > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('(')
		for c := 0; c < cols; c++ {
			if c > 0 {
				b.WriteByte(',')
			}
			fmt.Fprintf(&b, "$%d", arg)
			arg++
		}
		b.WriteByte(')')
	}
	return b.String()
}

func queryIDs(ctx context.Context, tx pgx.Tx, query string, args []any) ([]int64, error) {
	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
