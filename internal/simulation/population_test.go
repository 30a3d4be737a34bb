// internal/simulation/population_test.go
package simulation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thelook-service/internal/domain/catalog"
)

func Test_PopulationGenerator_Customers(t *testing.T) {
	from := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)

	gen := NewPopulationGenerator(NewRNG(42))
	customers := gen.Customers(500, from, until)
	require.Len(t, customers, 500)

	emails := map[string]bool{}
	for _, c := range customers {
		assert.NotEmpty(t, c.Name)
		assert.False(t, emails[c.Email], "duplicate email %s", c.Email)
		emails[c.Email] = true

		assert.Contains(t, catalog.Segments, c.Segment)
		assert.Contains(t, catalog.Personas, c.Persona)
		assert.Contains(t, catalog.Regions, c.Region)
		assert.Equal(t, catalog.RegionForState(c.State), c.Region)

		assert.False(t, c.EnrolledAt.Before(from))
		assert.False(t, c.EnrolledAt.After(until))

		capRange := PersonaPurchaseCapRange[c.Persona]
		assert.GreaterOrEqual(t, c.PurchaseCap, capRange[0])
		assert.LessOrEqual(t, c.PurchaseCap, capRange[1])
		assert.Zero(t, c.PurchaseCount)
	}
}

func Test_PopulationGenerator_Products(t *testing.T) {
	gen := NewPopulationGenerator(NewRNG(42))
	products := gen.Products(500)
	require.Len(t, products, 500)

	names := map[string]bool{}
	for _, p := range products {
		assert.False(t, names[p.Name], "duplicate product name %s", p.Name)
		names[p.Name] = true

		assert.Contains(t, catalog.Categories, p.Category)
		assert.Contains(t, catalog.Brands, p.Brand)
		assert.Contains(t, catalog.Lifecycles, p.Lifecycle)

		priceRange := CategoryPriceRange[p.Category]
		assert.GreaterOrEqual(t, p.SuggestedPrice, priceRange[0])
		assert.LessOrEqual(t, p.SuggestedPrice, priceRange[1])

		// Cost is the fixed margin fraction of the drawn price; both sides
		// are rounded independently.
		assert.InDelta(t, p.SuggestedPrice*CostMargin, p.Cost, 0.01)
	}
}

func Test_PopulationGenerator_OrganicVariance(t *testing.T) {
	from := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)

	gen := NewPopulationGenerator(NewRNG(7))
	for i := 0; i < 50; i++ {
		customers := gen.OrganicYearCustomers(100, from, until)
		assert.GreaterOrEqual(t, len(customers), int(100*CustomerVariationMin))
		assert.LessOrEqual(t, len(customers), int(100*CustomerVariationMax)+1)

		products := gen.OrganicYearProducts(40)
		assert.GreaterOrEqual(t, len(products), int(40*ProductVariationMin))
		assert.LessOrEqual(t, len(products), int(40*ProductVariationMax)+1)
	}
}

func Test_PopulationGenerator_OrganicNeverEmpty(t *testing.T) {
	from := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	gen := NewPopulationGenerator(NewRNG(7))
	assert.NotEmpty(t, gen.OrganicYearCustomers(1, from, from))
	assert.NotEmpty(t, gen.OrganicYearProducts(1))
}

func Test_PopulationGenerator_Deterministic(t *testing.T) {
	from := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2023, 6, 30, 0, 0, 0, 0, time.UTC)

	a := NewPopulationGenerator(NewRNG(42))
	b := NewPopulationGenerator(NewRNG(42))

	assert.Equal(t, a.Customers(200, from, until), b.Customers(200, from, until))
	assert.Equal(t, a.Products(200), b.Products(200))
}
