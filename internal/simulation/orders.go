// internal/simulation/orders.go
package simulation

import (
	"time"

	"thelook-service/internal/domain/catalog"
	"thelook-service/internal/domain/sales"
)

// OrderGenerator produces the draft orders for one simulated day at a time.
// It owns the market-event state machine; the run drives it strictly in
// date order so the event state and the RNG stream stay reproducible.
type OrderGenerator struct {
	rng      *RNG
	events   *EventState
	start    time.Time
	baseRate float64
}

func NewOrderGenerator(rng *RNG, start time.Time, baseRate float64) *OrderGenerator {
	if baseRate <= 0 {
		baseRate = BaseDailyVolume
	}
	return &OrderGenerator{
		rng:      rng,
		events:   NewEventState(),
		start:    start,
		baseRate: baseRate,
	}
}

// DayResult carries one day's drafts plus the multipliers that shaped them,
// for logging and inspection.
type DayResult struct {
	Date        time.Time
	Orders      []*sales.Order
	Seasonality float64
	Event       EventKind
}

// Day generates orders for a single date. A day with no eligible customers
// produces an empty result, never an error. Buyers are drawn without
// replacement, weighted by persona; each buyer's purchase counter is
// incremented so lifetime caps hold across the whole run.
func (g *OrderGenerator) Day(date time.Time, customers []*catalog.Customer, products []*catalog.Product) DayResult {
	seasonality := Seasonality(date, g.rng)
	event := g.events.Step(date, g.rng)
	mean := Growth(g.baseRate, g.start, date) * seasonality * event.Multiplier()

	result := DayResult{Date: date, Seasonality: seasonality, Event: event}

	count := g.rng.Poisson(mean)
	if count == 0 || len(products) == 0 {
		return result
	}

	eligible := make([]*catalog.Customer, 0, len(customers))
	for _, c := range customers {
		if c.EligibleOn(date) {
			eligible = append(eligible, c)
		}
	}
	if len(eligible) == 0 {
		return result
	}
	if count > len(eligible) {
		count = len(eligible)
	}

	for _, buyer := range g.selectBuyers(eligible, count) {
		buyer.PurchaseCount++
		order := g.buildOrder(buyer, date)
		order.Items = g.buildItems(buyer, products)
		result.Orders = append(result.Orders, order)
	}
	return result
}

// selectBuyers draws n distinct customers with probability proportional to
// persona buy weight, removing each pick from the pool.
func (g *OrderGenerator) selectBuyers(pool []*catalog.Customer, n int) []*catalog.Customer {
	candidates := make([]*catalog.Customer, len(pool))
	copy(candidates, pool)
	weights := make([]float64, len(pool))
	for i, c := range candidates {
		weights[i] = PersonaBuyWeight[c.Persona]
	}

	buyers := make([]*catalog.Customer, 0, n)
	for len(buyers) < n {
		idx := g.rng.WeightedIndex(weights)
		buyers = append(buyers, candidates[idx])

		last := len(candidates) - 1
		candidates[idx] = candidates[last]
		weights[idx] = weights[last]
		candidates = candidates[:last]
		weights = weights[:last]
	}
	return buyers
}

func (g *OrderGenerator) buildOrder(buyer *catalog.Customer, date time.Time) *sales.Order {
	leadDays := g.rng.IntBetween(LeadTimeMinDays, LeadTimeMaxDays)
	if g.rng.Chance(LogisticDelayProbability) {
		leadDays = g.rng.IntBetween(LogisticDelayMinDays, LogisticDelayMaxDays)
	}

	statusIdx := g.rng.WeightedIndex(StatusProbabilities)

	return &sales.Order{
		Customer:     buyer,
		OrderDate:    date,
		DeliveryDate: date.AddDate(0, 0, leadDays),
		Status:       sales.Statuses[statusIdx],
		Channel:      sales.Channels[g.rng.Pick(len(sales.Channels))],
	}
}

// buildItems composes a basket. Products are drawn with replacement across
// the full catalog, weighted by lifecycle. A rare bulk anomaly collapses
// the basket into a single oversized line item.
func (g *OrderGenerator) buildItems(buyer *catalog.Customer, products []*catalog.Product) []sales.OrderItem {
	weights := make([]float64, len(products))
	for i, p := range products {
		weights[i] = LifecycleWeights[p.Lifecycle]
	}

	if g.rng.Chance(BulkPurchaseProbability) {
		product := products[g.rng.WeightedIndex(weights)]
		return []sales.OrderItem{
			g.buildItem(product, g.rng.IntBetween(BulkQuantityMin, BulkQuantityMax)),
		}
	}

	size := PersonaBaseBasketSize[buyer.Persona] + g.rng.IntBetween(0, 2)
	items := make([]sales.OrderItem, 0, size)
	for i := 0; i < size; i++ {
		product := products[g.rng.WeightedIndex(weights)]
		items = append(items, g.buildItem(product, g.rng.IntBetween(QuantityMin, QuantityMax)))
	}
	return items
}

func (g *OrderGenerator) buildItem(product *catalog.Product, quantity int) sales.OrderItem {
	price := product.SuggestedPrice * g.rng.Uniform(PricePerturbationMin, PricePerturbationMax)
	if g.rng.Chance(PriceErrorProbability) {
		price = g.rng.Uniform(PriceErrorMin, PriceErrorMax)
	}

	return sales.OrderItem{
		Product:   product,
		Quantity:  quantity,
		UnitPrice: round2(price),
		UnitCost:  product.Cost,
		Discount:  DiscountValues[g.rng.WeightedIndex(DiscountWeights)],
	}
}
