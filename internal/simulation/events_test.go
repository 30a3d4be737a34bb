// internal/simulation/events_test.go
package simulation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_EventKind_Multiplier(t *testing.T) {
	tests := []struct {
		name string
		kind EventKind
		want float64
	}{
		{name: "viral_doubles_volume", kind: EventViral, want: 2.0},
		{name: "marketing_campaign_boosts", kind: EventMarketingCampaign, want: 1.8},
		{name: "site_down_contracts", kind: EventSiteDown, want: 0.3},
		{name: "logistics_crisis_contracts", kind: EventLogisticsCrisis, want: 0.5},
		{name: "no_event_is_neutral", kind: EventNone, want: 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.Multiplier())
		})
	}
}

func Test_EventState_EventsOccurAndPersist(t *testing.T) {
	rng := NewRNG(99)
	state := NewEventState()
	date := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	valid := map[EventKind]bool{
		EventNone: true, EventViral: true, EventMarketingCampaign: true,
		EventSiteDown: true, EventLogisticsCrisis: true,
	}

	// Over ~27 years of daily steps the 0.5% start probability makes at
	// least one event a statistical certainty for any seed.
	eventDays := 0
	prev := EventNone
	runLength := 0
	for i := 0; i < 10_000; i++ {
		kind := state.Step(date, rng)
		require.True(t, valid[kind])
		assert.Equal(t, kind, state.Active())

		if kind != EventNone {
			eventDays++
		}

		// A run of one single kind lasts at least the minimum duration.
		if kind == prev && kind != EventNone {
			runLength++
		} else {
			if prev != EventNone && runLength > 0 {
				assert.GreaterOrEqual(t, runLength+1, EventMinDurationDays)
			}
			runLength = 0
		}
		prev = kind
		date = date.AddDate(0, 0, 1)
	}

	assert.Positive(t, eventDays)
	assert.Less(t, eventDays, 10_000/2)
}

func Test_EventState_QuietUntilTriggered(t *testing.T) {
	state := NewEventState()
	assert.Equal(t, EventNone, state.Active())
}
