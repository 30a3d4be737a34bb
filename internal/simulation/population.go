// internal/simulation/population.go
package simulation

import (
	"fmt"
	"time"

	"thelook-service/internal/domain/catalog"
)

var firstNames = []string{
	"Ana", "Bruno", "Carla", "Diego", "Elisa", "Felipe", "Gabriela", "Hugo",
	"Isabela", "João", "Karina", "Lucas", "Mariana", "Nathan", "Olívia",
	"Paulo", "Rafaela", "Sérgio", "Tatiana", "Vinícius",
}

var lastNames = []string{
	"Silva", "Santos", "Oliveira", "Souza", "Costa", "Pereira", "Almeida",
	"Ferreira", "Rodrigues", "Lima", "Gomes", "Ribeiro", "Martins", "Carvalho",
}

// PopulationGenerator builds the customer and product universes. Sequence
// counters keep names and emails unique across organic injections within
// one run.
type PopulationGenerator struct {
	rng         *RNG
	customerSeq int
	productSeq  int
}

func NewPopulationGenerator(rng *RNG) *PopulationGenerator {
	return &PopulationGenerator{rng: rng}
}

// Customers generates n customers enrolled uniformly within [from, until].
func (p *PopulationGenerator) Customers(n int, from, until time.Time) []*catalog.Customer {
	customers := make([]*catalog.Customer, 0, n)
	windowDays := int(until.Sub(from).Hours()/24) + 1
	if windowDays < 1 {
		windowDays = 1
	}

	for i := 0; i < n; i++ {
		p.customerSeq++
		persona := p.drawPersona()
		capRange := PersonaPurchaseCapRange[persona]
		city := catalog.Cities[p.rng.Pick(len(catalog.Cities))]
		name := fmt.Sprintf("%s %s",
			firstNames[p.rng.Pick(len(firstNames))],
			lastNames[p.rng.Pick(len(lastNames))])

		customers = append(customers, &catalog.Customer{
			Name:        name,
			Email:       fmt.Sprintf("customer%d@thelook.example", p.customerSeq),
			Segment:     p.drawSegment(),
			City:        city.Name,
			State:       city.State,
			Region:      catalog.RegionForState(city.State),
			EnrolledAt:  from.AddDate(0, 0, p.rng.Pick(windowDays)),
			Persona:     persona,
			PurchaseCap: p.rng.IntBetween(capRange[0], capRange[1]),
		})
	}
	return customers
}

// Products generates m products with category-priced costs and a lifecycle
// stage that later weights basket selection.
func (p *PopulationGenerator) Products(m int) []*catalog.Product {
	products := make([]*catalog.Product, 0, m)
	for i := 0; i < m; i++ {
		p.productSeq++
		category := catalog.Categories[p.rng.Pick(len(catalog.Categories))]
		priceRange := CategoryPriceRange[category]
		price := p.rng.Uniform(priceRange[0], priceRange[1])

		products = append(products, &catalog.Product{
			Name:           fmt.Sprintf("Produto %d", p.productSeq),
			Category:       category,
			Brand:          catalog.Brands[p.rng.Pick(len(catalog.Brands))],
			Cost:           round2(price * CostMargin),
			SuggestedPrice: round2(price),
			Lifecycle:      p.drawLifecycle(),
		})
	}
	return products
}

// OrganicYearCustomers generates the customer injection for one simulated
// year: the per-year target with uniform variance, enrolled within that
// year clipped to the run window.
func (p *PopulationGenerator) OrganicYearCustomers(target int, yearStart, yearEnd time.Time) []*catalog.Customer {
	n := int(float64(target) * p.rng.Uniform(CustomerVariationMin, CustomerVariationMax))
	if n < 1 {
		n = 1
	}
	return p.Customers(n, yearStart, yearEnd)
}

// OrganicYearProducts is the product counterpart of OrganicYearCustomers.
func (p *PopulationGenerator) OrganicYearProducts(target int) []*catalog.Product {
	m := int(float64(target) * p.rng.Uniform(ProductVariationMin, ProductVariationMax))
	if m < 1 {
		m = 1
	}
	return p.Products(m)
}

func (p *PopulationGenerator) drawPersona() catalog.Persona {
	weights := make([]float64, len(catalog.Personas))
	for i, persona := range catalog.Personas {
		weights[i] = PersonaProbabilities[persona]
	}
	return catalog.Personas[p.rng.WeightedIndex(weights)]
}

func (p *PopulationGenerator) drawSegment() catalog.Segment {
	weights := make([]float64, len(catalog.Segments))
	for i, segment := range catalog.Segments {
		weights[i] = SegmentProbabilities[segment]
	}
	return catalog.Segments[p.rng.WeightedIndex(weights)]
}

func (p *PopulationGenerator) drawLifecycle() catalog.Lifecycle {
	weights := make([]float64, len(catalog.Lifecycles))
	for i, lc := range catalog.Lifecycles {
		weights[i] = LifecycleProbabilities[lc]
	}
	return catalog.Lifecycles[p.rng.WeightedIndex(weights)]
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
