// internal/simulation/constants.go
package simulation

import "thelook-service/internal/domain/catalog"

// Seasonality tuning. Each calendar window draws its multiplier from a
// uniform range; the weekend boost applies on top of whichever window wins.
const (
	SeasonalityBaseline = 1.0
	MinSeasonality      = 0.5

	WeekendBoostMin = 1.0
	WeekendBoostMax = 1.3

	BlackFridayMonth    = 11
	BlackFridayStartDay = 20
	BlackFridayEndDay   = 30
	BlackFridayBase     = 3.5
	BlackFridayVarMin   = 0.7
	BlackFridayVarMax   = 1.2

	CyberMondayMonth    = 12
	CyberMondayStartDay = 1
	CyberMondayEndDay   = 7
	CyberMondayBoostMin = 2.0
	CyberMondayBoostMax = 3.5

	ChristmasMonth    = 12
	ChristmasStartDay = 10
	ChristmasEndDay   = 24
	ChristmasBoostMin = 1.5
	ChristmasBoostMax = 2.5

	PostChristmasStartDay = 25
	PostChristmasEndDay   = 31
	PostChristmasMin      = 0.1
	PostChristmasMax      = 0.4

	JanuaryMonth       = 1
	JanuarySlumpMin    = 0.4
	JanuarySlumpMax    = 0.8

	AnniversaryMonth    = 5
	AnniversaryBoostMin = 1.2
	AnniversaryBoostMax = 1.8
)

// Compound annual growth applied to the base daily volume.
const (
	AnnualGrowthRate = 0.12
	DaysPerYear      = 365.25
)

// Market events.
const (
	MarketEventProbability = 0.005
	EventMinDurationDays   = 3
	EventMaxDurationDays   = 7
)

// Daily volume.
const (
	BaseDailyVolume = 30.0
)

// Customer personas: selection probabilities, lifetime purchase cap ranges
// and relative buying weight used when drawing the day's buyers.
var (
	PersonaProbabilities = map[catalog.Persona]float64{
		catalog.PersonaOneTime: 0.70,
		catalog.PersonaLoyal:   0.20,
		catalog.PersonaVIP:     0.10,
	}

	PersonaPurchaseCapRange = map[catalog.Persona][2]int{
		catalog.PersonaOneTime: {30, 100},
		catalog.PersonaLoyal:   {100, 300},
		catalog.PersonaVIP:     {500, 1500},
	}

	PersonaBuyWeight = map[catalog.Persona]float64{
		catalog.PersonaOneTime: 1.0,
		catalog.PersonaLoyal:   3.0,
		catalog.PersonaVIP:     8.0,
	}

	PersonaBaseBasketSize = map[catalog.Persona]int{
		catalog.PersonaOneTime: 1,
		catalog.PersonaLoyal:   2,
		catalog.PersonaVIP:     3,
	}
)

// Segment distribution carried from the seeded customer universe.
var SegmentProbabilities = map[catalog.Segment]float64{
	catalog.SegmentGold:   0.15,
	catalog.SegmentSilver: 0.35,
	catalog.SegmentBronze: 0.50,
}

// Product lifecycle distribution and the selection weight each stage
// contributes in basket composition.
var (
	LifecycleProbabilities = map[catalog.Lifecycle]float64{
		catalog.LifecycleStable:   0.7,
		catalog.LifecycleViral:    0.2,
		catalog.LifecycleObsolete: 0.1,
	}

	LifecycleWeights = map[catalog.Lifecycle]float64{
		catalog.LifecycleViral:    5.0,
		catalog.LifecycleStable:   1.0,
		catalog.LifecycleObsolete: 0.1,
	}
)

// Category price ranges; cost is a fixed fraction of the drawn price.
var CategoryPriceRange = map[string][2]float64{
	"Eletrônicos": {500, 5000},
	"Roupas":      {40, 300},
	"Casa":        {50, 1000},
	"Esporte":     {50, 1000},
	"Livros":      {50, 1000},
}

const CostMargin = 0.6

// Organic growth variance around the per-year injection targets.
const (
	CustomerVariationMin = 0.7
	CustomerVariationMax = 1.3
	ProductVariationMin  = 0.8
	ProductVariationMax  = 1.2
)

// Order and item generation.
const (
	LeadTimeMinDays = 1
	LeadTimeMaxDays = 10

	// Anomalies injected at small fixed rates.
	LogisticDelayProbability = 0.01
	LogisticDelayMinDays     = 20
	LogisticDelayMaxDays     = 45

	BulkPurchaseProbability = 0.005
	BulkQuantityMin         = 20
	BulkQuantityMax         = 50

	PriceErrorProbability = 0.005
	PriceErrorMin         = 0.01
	PriceErrorMax         = 2.0

	QuantityMin = 1
	QuantityMax = 4

	PricePerturbationMin = 0.9
	PricePerturbationMax = 1.1
)

// Order status distribution.
var StatusProbabilities = []float64{0.85, 0.10, 0.03, 0.02}

// Discount percentage catalog with selection weights.
var (
	DiscountValues  = []float64{0, 5, 10, 15}
	DiscountWeights = []float64{0.70, 0.15, 0.10, 0.05}
)

// Persistence and cache defaults.
const (
	DefaultBatchSize = 5000
	CacheTTLSeconds  = 86400
)
