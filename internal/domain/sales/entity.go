// internal/domain/sales/entity.go
package sales

import (
	"fmt"
	"time"

	"thelook-service/internal/domain/catalog"
)

// Status of an order. Only completed orders feed derived metrics.
type Status string

const (
	StatusCompleted Status = "Completed"
	StatusPending   Status = "Pending"
	StatusCancelled Status = "Cancelled"
	StatusReturned  Status = "Returned"
)

// Channel is the sales channel an order was placed through.
type Channel string

const (
	ChannelOnline Channel = "Online"
	ChannelStore  Channel = "Store"
	ChannelPhone  Channel = "Phone"
	ChannelApp    Channel = "App"
)

var (
	Statuses = []Status{StatusCompleted, StatusPending, StatusCancelled, StatusReturned}
	Channels = []Channel{ChannelOnline, ChannelStore, ChannelPhone, ChannelApp}
)

type Order struct {
	ID           int64     `json:"id" db:"id"`
	RunID        string    `json:"run_id" db:"run_id"`
	CustomerID   int64     `json:"customer_id" db:"customer_id"`
	OrderDate    time.Time `json:"order_date" db:"order_date"`
	DeliveryDate time.Time `json:"delivery_date" db:"delivery_date"`
	Status       Status    `json:"status" db:"status"`
	Channel      Channel   `json:"channel" db:"channel"`

	// Items are held on the draft until the order is persisted; after the
	// flush every item carries the persisted order ID.
	Items []OrderItem `json:"items,omitempty" db:"-"`

	// Customer is the draft-local reference; CustomerID is resolved from it
	// once customers have been persisted and carry database identifiers.
	Customer *catalog.Customer `json:"-" db:"-"`
}

type OrderItem struct {
	ID        int64   `json:"id" db:"id"`
	OrderID   int64   `json:"order_id" db:"order_id"`
	ProductID int64   `json:"product_id" db:"product_id"`
	Quantity  int     `json:"quantity" db:"quantity"`
	UnitPrice float64 `json:"unit_price" db:"unit_price"`
	UnitCost  float64 `json:"unit_cost" db:"unit_cost"`
	Discount  float64 `json:"discount_applied" db:"discount_applied"`

	// Product is the draft-local reference, resolved to ProductID at flush.
	Product *catalog.Product `json:"-" db:"-"`
}

// Validate enforces the schema invariants on a draft order and its items
// before anything is handed to the persistence layer.
func (o *Order) Validate() error {
	if o.Customer == nil {
		return fmt.Errorf("order has no customer reference")
	}
	if o.DeliveryDate.Before(o.OrderDate) {
		return fmt.Errorf("delivery date %s before order date %s",
			o.DeliveryDate.Format("2006-01-02"), o.OrderDate.Format("2006-01-02"))
	}
	if o.OrderDate.Before(o.Customer.EnrolledAt) {
		return fmt.Errorf("order date %s before customer enrollment %s",
			o.OrderDate.Format("2006-01-02"), o.Customer.EnrolledAt.Format("2006-01-02"))
	}
	if len(o.Items) == 0 {
		return fmt.Errorf("order has no items")
	}
	for i, it := range o.Items {
		if err := it.Validate(); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}
	return nil
}

func (it *OrderItem) Validate() error {
	if it.Product == nil {
		return fmt.Errorf("item has no product reference")
	}
	if it.Quantity <= 0 {
		return fmt.Errorf("quantity must be > 0, got %d", it.Quantity)
	}
	if it.UnitPrice < 0 {
		return fmt.Errorf("unit price must be >= 0, got %f", it.UnitPrice)
	}
	if it.UnitCost < 0 {
		return fmt.Errorf("unit cost must be >= 0, got %f", it.UnitCost)
	}
	if it.Discount < 0 {
		return fmt.Errorf("discount must be >= 0, got %f", it.Discount)
	}
	return nil
}
