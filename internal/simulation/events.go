// internal/simulation/events.go
package simulation

import "time"

// EventKind tags a market event. A flat kind-to-multiplier table replaces
// per-kind types: boosts double or nearly double volume, outages and
// logistics crises contract it.
type EventKind string

const (
	EventNone              EventKind = ""
	EventViral             EventKind = "VIRAL"
	EventMarketingCampaign EventKind = "MARKETING_CAMPAIGN"
	EventSiteDown          EventKind = "SITE_DOWN"
	EventLogisticsCrisis   EventKind = "LOGISTICS_CRISIS"
)

var eventKinds = []EventKind{
	EventViral,
	EventMarketingCampaign,
	EventSiteDown,
	EventLogisticsCrisis,
}

var eventMultipliers = map[EventKind]float64{
	EventViral:             2.0,
	EventMarketingCampaign: 1.8,
	EventSiteDown:          0.3,
	EventLogisticsCrisis:   0.5,
}

// Multiplier returns the demand impact of a kind; no event is neutral.
func (k EventKind) Multiplier() float64 {
	if m, ok := eventMultipliers[k]; ok {
		return m
	}
	return 1.0
}

// EventState is the run-scoped market event state machine. Either no event
// is active, or one event persists unmodified until its end date passes.
type EventState struct {
	active EventKind
	until  time.Time
}

func NewEventState() *EventState {
	return &EventState{}
}

// Step advances the state machine one simulated day and returns the kind
// active on that date (EventNone when quiet). An active event persists
// while current date < end date. Otherwise a new event starts with a small
// daily probability: uniform kind, duration drawn from a fixed range.
func (s *EventState) Step(date time.Time, rng *RNG) EventKind {
	if s.active != EventNone && date.Before(s.until) {
		return s.active
	}

	if rng.Chance(MarketEventProbability) {
		kind := eventKinds[rng.Pick(len(eventKinds))]
		duration := rng.IntBetween(EventMinDurationDays, EventMaxDurationDays)
		s.active = kind
		s.until = date.AddDate(0, 0, duration)
		return kind
	}

	s.active = EventNone
	s.until = time.Time{}
	return EventNone
}

// Active returns the currently active kind, for logging.
func (s *EventState) Active() EventKind {
	return s.active
}
