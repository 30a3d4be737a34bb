// internal/simulation/engine.go
package simulation

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"thelook-service/internal/domain/catalog"
	"thelook-service/internal/domain/sales"
	xerrors "thelook-service/internal/pkg/errors"
)

// Params is the run configuration surface. All fields are plain scalars
// supplied by the CLI layer.
type Params struct {
	Start time.Time
	End   time.Time

	// Fixed-count mode: the whole universe is generated at run start.
	CustomerCount int
	ProductCount  int

	// Organic mode: populations are injected per simulated year around
	// these targets, with uniform variance.
	Organic          bool
	CustomersPerYear int
	ProductsPerYear  int

	// BaseDailyRate is the unscaled mean daily order volume. Zero selects
	// the default.
	BaseDailyRate float64

	Seed int64
}

func (p *Params) Validate() error {
	if p.End.Before(p.Start) {
		return fmt.Errorf("%w: end date %s before start date %s",
			xerrors.ErrInvalidParameters,
			p.End.Format("2006-01-02"), p.Start.Format("2006-01-02"))
	}
	if p.Organic {
		if p.CustomersPerYear <= 0 || p.ProductsPerYear <= 0 {
			return fmt.Errorf("%w: organic growth targets must be positive (customers/year=%d, products/year=%d)",
				xerrors.ErrInvalidParameters, p.CustomersPerYear, p.ProductsPerYear)
		}
	} else {
		if p.CustomerCount <= 0 || p.ProductCount <= 0 {
			return fmt.Errorf("%w: entity counts must be positive (customers=%d, products=%d)",
				xerrors.ErrInvalidParameters, p.CustomerCount, p.ProductCount)
		}
	}
	if p.BaseDailyRate < 0 {
		return fmt.Errorf("%w: base daily rate must not be negative", xerrors.ErrInvalidParameters)
	}
	return nil
}

// Dataset is the full in-memory output of a run's generation phase. The
// run exclusively owns it until the persistence adapter flushes it.
type Dataset struct {
	Customers []*catalog.Customer
	Products  []*catalog.Product
	Orders    []*sales.Order
}

func (d *Dataset) ItemCount() int {
	n := 0
	for _, o := range d.Orders {
		n += len(o.Items)
	}
	return n
}

// checkConsistency verifies every draft order references a customer and
// every item a product from this run's working set. A violation is a
// generator bug and fails the run loudly.
func (d *Dataset) checkConsistency() error {
	customers := make(map[*catalog.Customer]struct{}, len(d.Customers))
	for _, c := range d.Customers {
		customers[c] = struct{}{}
	}
	products := make(map[*catalog.Product]struct{}, len(d.Products))
	for _, p := range d.Products {
		products[p] = struct{}{}
	}

	for i, o := range d.Orders {
		if err := o.Validate(); err != nil {
			return fmt.Errorf("%w: order %d: %v", xerrors.ErrDataConsistency, i, err)
		}
		if _, ok := customers[o.Customer]; !ok {
			return fmt.Errorf("%w: order %d references a customer outside the working set",
				xerrors.ErrDataConsistency, i)
		}
		for j := range o.Items {
			if _, ok := products[o.Items[j].Product]; !ok {
				return fmt.Errorf("%w: order %d item %d references a product outside the working set",
					xerrors.ErrDataConsistency, i, j)
			}
		}
	}
	return nil
}

// Engine is the day-by-day generative core. It is purely in-memory and
// strictly sequential; persistence and cache publishing live elsewhere.
type Engine struct {
	params Params
	logger *zap.Logger
}

func NewEngine(params Params, logger *zap.Logger) *Engine {
	if params.BaseDailyRate == 0 {
		params.BaseDailyRate = BaseDailyVolume
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{params: params, logger: logger}
}

// Generate runs the simulation over the configured date range and returns
// the complete dataset. Two runs with equal params and seed produce
// identical output.
func (e *Engine) Generate() (*Dataset, error) {
	if err := e.params.Validate(); err != nil {
		return nil, err
	}

	rng := NewRNG(e.params.Seed)
	pop := NewPopulationGenerator(rng)
	data := &Dataset{}

	if !e.params.Organic {
		data.Customers = pop.Customers(e.params.CustomerCount, e.params.Start, e.params.End)
		data.Products = pop.Products(e.params.ProductCount)
	}

	gen := NewOrderGenerator(rng, e.params.Start, e.params.BaseDailyRate)
	nextInjection := e.params.Start
	eventDays := 0

	for date := e.params.Start; !date.After(e.params.End); date = date.AddDate(0, 0, 1) {
		if e.params.Organic && !date.Before(nextInjection) {
			yearEnd := minDate(date.AddDate(1, 0, -1), e.params.End)
			data.Customers = append(data.Customers,
				pop.OrganicYearCustomers(e.params.CustomersPerYear, date, yearEnd)...)
			data.Products = append(data.Products,
				pop.OrganicYearProducts(e.params.ProductsPerYear)...)
			nextInjection = date.AddDate(1, 0, 0)
		}

		day := gen.Day(date, data.Customers, data.Products)
		if day.Event != EventNone {
			eventDays++
		}
		data.Orders = append(data.Orders, day.Orders...)
	}

	if err := data.checkConsistency(); err != nil {
		return nil, err
	}

	e.logger.Info("generation complete",
		zap.Int("customers", len(data.Customers)),
		zap.Int("products", len(data.Products)),
		zap.Int("orders", len(data.Orders)),
		zap.Int("items", data.ItemCount()),
		zap.Int("event_days", eventDays),
	)
	return data, nil
}

func minDate(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
