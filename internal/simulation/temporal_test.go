// internal/simulation/temporal_test.go
package simulation

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_Seasonality_CalendarWindows(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		min  float64
		max  float64
	}{
		{
			// 2025-11-20 is a Thursday, no weekend boost in play.
			name: "black_friday_weekday_in_expected_band",
			date: time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC),
			min:  BlackFridayBase * BlackFridayVarMin,
			max:  BlackFridayBase * BlackFridayVarMax,
		},
		{
			// A Monday.
			name: "cyber_monday_week_boosted",
			date: time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
			min:  CyberMondayBoostMin,
			max:  CyberMondayBoostMax,
		},
		{
			name: "christmas_peak_boosted",
			date: time.Date(2025, 12, 15, 0, 0, 0, 0, time.UTC),
			min:  ChristmasBoostMin,
			max:  ChristmasBoostMax,
		},
		{
			name: "post_christmas_floored_at_minimum",
			date: time.Date(2025, 12, 26, 0, 0, 0, 0, time.UTC),
			min:  MinSeasonality,
			max:  MinSeasonality,
		},
		{
			name: "january_slump_floored_below_minimum",
			date: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
			min:  MinSeasonality,
			max:  JanuarySlumpMax,
		},
		{
			name: "anniversary_month_boosted",
			date: time.Date(2025, 5, 14, 0, 0, 0, 0, time.UTC),
			min:  AnniversaryBoostMin,
			max:  AnniversaryBoostMax,
		},
		{
			// 2025-03-12 is a plain Wednesday.
			name: "ordinary_weekday_is_baseline",
			date: time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
			min:  SeasonalityBaseline,
			max:  SeasonalityBaseline,
		},
		{
			// 2025-03-15 is a Saturday outside every calendar window.
			name: "ordinary_weekend_only_gets_weekend_boost",
			date: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
			min:  WeekendBoostMin,
			max:  WeekendBoostMax,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := NewRNG(7)
			for i := 0; i < 500; i++ {
				m := Seasonality(tt.date, rng)
				assert.GreaterOrEqual(t, m, tt.min)
				assert.LessOrEqual(t, m, tt.max)
			}
		})
	}
}

func Test_Seasonality_BlackFridayWinsOverWeekend(t *testing.T) {
	// 2025-11-22 is a Saturday inside the Black Friday window; both effects
	// stack multiplicatively, so the result sits well above the weekend band.
	rng := NewRNG(11)
	date := time.Date(2025, 11, 22, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 500; i++ {
		m := Seasonality(date, rng)
		assert.GreaterOrEqual(t, m, BlackFridayBase*BlackFridayVarMin*WeekendBoostMin)
		assert.LessOrEqual(t, m, BlackFridayBase*BlackFridayVarMax*WeekendBoostMax)
	}
}

func Test_Seasonality_NeverBelowFloor(t *testing.T) {
	rng := NewRNG(3)
	date := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 2*365; i++ {
		assert.GreaterOrEqual(t, Seasonality(date, rng), MinSeasonality)
		date = date.AddDate(0, 0, 1)
	}
}

func Test_Growth_CompoundFormula(t *testing.T) {
	start := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		current  time.Time
		expected float64
	}{
		{
			name:     "day_zero_is_base",
			current:  start,
			expected: 30.0,
		},
		{
			name:     "one_nominal_year_applies_full_rate",
			current:  start.Add(time.Duration(DaysPerYear * 24 * float64(time.Hour))),
			expected: 30.0 * 1.12,
		},
		{
			name:     "two_nominal_years_compound",
			current:  start.Add(time.Duration(2 * DaysPerYear * 24 * float64(time.Hour))),
			expected: 30.0 * 1.12 * 1.12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Growth(30.0, start, tt.current), 1e-6)
		})
	}
}

func Test_Growth_BeforeStartClampsToBase(t *testing.T) {
	start := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	got := Growth(30.0, start, start.AddDate(0, 0, -10))
	assert.InDelta(t, 30.0, got, 1e-9)
}

func Test_Growth_MatchesExponent(t *testing.T) {
	start := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	current := start.AddDate(0, 0, 500)
	want := 30.0 * math.Pow(1.12, 500/DaysPerYear)
	assert.InDelta(t, want, Growth(30.0, start, current), 1e-9)
}
