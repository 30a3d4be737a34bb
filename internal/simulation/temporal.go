// internal/simulation/temporal.go
package simulation

import (
	"math"
	"time"
)

// Seasonality computes the demand multiplier for a calendar date.
//
// The weekend boost is multiplicative and always applies. On top of it,
// exactly one calendar window applies, checked in a fixed priority order
// with first match winning: Black Friday, Cyber Monday, Christmas peak,
// post-Christmas slump, January slump, company anniversary. The result is
// floored at MinSeasonality so no day degenerates to zero volume.
func Seasonality(date time.Time, rng *RNG) float64 {
	multiplier := SeasonalityBaseline

	if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
		multiplier *= rng.Uniform(WeekendBoostMin, WeekendBoostMax)
	}

	month, day := int(date.Month()), date.Day()
	switch {
	case month == BlackFridayMonth && day >= BlackFridayStartDay && day <= BlackFridayEndDay:
		multiplier *= BlackFridayBase * rng.Uniform(BlackFridayVarMin, BlackFridayVarMax)
	case month == CyberMondayMonth && day >= CyberMondayStartDay && day <= CyberMondayEndDay:
		multiplier *= rng.Uniform(CyberMondayBoostMin, CyberMondayBoostMax)
	case month == ChristmasMonth && day >= ChristmasStartDay && day <= ChristmasEndDay:
		multiplier *= rng.Uniform(ChristmasBoostMin, ChristmasBoostMax)
	case month == ChristmasMonth && day >= PostChristmasStartDay && day <= PostChristmasEndDay:
		multiplier *= rng.Uniform(PostChristmasMin, PostChristmasMax)
	case month == JanuaryMonth:
		multiplier *= rng.Uniform(JanuarySlumpMin, JanuarySlumpMax)
	case month == AnniversaryMonth:
		multiplier *= rng.Uniform(AnniversaryBoostMin, AnniversaryBoostMax)
	}

	return math.Max(multiplier, MinSeasonality)
}

// Growth applies the compound annual growth rate to a base volume for the
// number of days elapsed since the simulation start. Independent of
// seasonality; the two combine multiplicatively downstream.
func Growth(base float64, start, current time.Time) float64 {
	days := current.Sub(start).Hours() / 24
	if days < 0 {
		days = 0
	}
	return base * math.Pow(1+AnnualGrowthRate, days/DaysPerYear)
}
