// internal/domain/metrics/entity.go
package metrics

import "time"

// Daily is the per-day aggregate over completed orders.
type Daily struct {
	Date            time.Time `json:"date"`
	Revenue         float64   `json:"revenue"`
	Orders          int64     `json:"orders"`
	ActiveCustomers int64     `json:"active_customers"`
}

// ProductQuantity is one entry of the ranked product set.
type ProductQuantity struct {
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
}

// RegionRevenue is total completed-order revenue for one region. Regions
// with no sales report zero, not absent.
type RegionRevenue struct {
	Region  string  `json:"region"`
	Revenue float64 `json:"revenue"`
}
