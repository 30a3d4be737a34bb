// internal/domain/catalog/entity.go
package catalog

import "time"

// Segment is the commercial tier a customer belongs to.
type Segment string

const (
	SegmentGold   Segment = "Gold"
	SegmentSilver Segment = "Silver"
	SegmentBronze Segment = "Bronze"
)

// Persona is the behavioral class driving purchase frequency in the
// simulation. It is generation metadata and is persisted for analysis only.
type Persona string

const (
	PersonaOneTime Persona = "OneTime"
	PersonaLoyal   Persona = "Loyal"
	PersonaVIP     Persona = "VIP"
)

// Lifecycle classifies a product's demand stage.
type Lifecycle string

const (
	LifecycleStable   Lifecycle = "Stable"
	LifecycleViral    Lifecycle = "Viral"
	LifecycleObsolete Lifecycle = "Obsolete"
)

type Customer struct {
	ID         int64   `json:"id" db:"id"`
	Name       string  `json:"name" db:"name"`
	Email      string  `json:"email" db:"email"`
	Segment    Segment `json:"segment" db:"segment"`
	City       string  `json:"city" db:"city"`
	State      string  `json:"state" db:"state"`
	Region     string  `json:"region" db:"region"`
	EnrolledAt time.Time `json:"enrolled_at" db:"enrolled_at"`
	Persona    Persona   `json:"persona" db:"persona"`

	// PurchaseCap is the lifetime number of orders this customer can place.
	// PurchaseCount mutates while the simulation runs; a customer at cap is
	// excluded from buyer selection.
	PurchaseCap   int `json:"purchase_cap" db:"purchase_cap"`
	PurchaseCount int `json:"purchase_count" db:"purchase_count"`
}

// EligibleOn reports whether the customer can place an order on the given
// date: enrolled by then and still under their lifetime cap.
func (c *Customer) EligibleOn(date time.Time) bool {
	if date.Before(c.EnrolledAt) {
		return false
	}
	return c.PurchaseCount < c.PurchaseCap
}

type Product struct {
	ID             int64     `json:"id" db:"id"`
	Name           string    `json:"name" db:"name"`
	Category       string    `json:"category" db:"category"`
	Brand          string    `json:"brand" db:"brand"`
	Cost           float64   `json:"cost" db:"cost"`
	SuggestedPrice float64   `json:"suggested_price" db:"suggested_price"`
	Lifecycle      Lifecycle `json:"lifecycle" db:"lifecycle"`
}
