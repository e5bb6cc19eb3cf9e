package astronomy

import (
	"math"

	"github.com/zapponejosh/calendrics-api/internal/calendrical"
)

// Shaukat criterion thresholds, in degrees.
const (
	minArcOfLight     = 10.6
	maxArcOfLight     = 90.0
	minLunarAltitude  = 4.1
	firstQuarterPhase = 90.0
)

// simpleBestView returns the universal time of the best viewing of the
// crescent on the evening of date: dusk with the sun 4.5 degrees down, or
// the end of the day when there is no such dusk.
func simpleBestView(date RataDie, loc Location) Moment {
	best, ok := Dusk(date.Float64(), loc, 4.5)
	if !ok {
		best = (date + 1).AsMoment()
	}
	return loc.UniversalFromStandard(best)
}

func arcOfLight(m Moment) float64 {
	c := JulianCenturies(m)
	return degrees(math.Acos(cosDeg(LunarLatitude(c)) * cosDeg(LunarPhase(m, c))))
}

// ShaukatCriterion reports whether the crescent is visible at loc on the
// evening before date.
func ShaukatCriterion(date Moment, loc Location) bool {
	tee := simpleBestView((date - 1).AsRataDie(), loc)
	phase := LunarPhase(tee, JulianCenturies(tee))
	h := LunarAltitude(tee, loc)
	arcl := arcOfLight(tee)
	return phase > 0 && phase < firstQuarterPhase &&
		arcl >= minArcOfLight && arcl <= maxArcOfLight &&
		h > minLunarAltitude
}

// VisibleCrescent is the visibility criterion of the observational
// calendars.
func VisibleCrescent(date Moment, loc Location) bool {
	return ShaukatCriterion(date, loc)
}

// PhasisOnOrBefore returns the first day of crescent visibility at loc on or
// before date.
func PhasisOnOrBefore(date RataDie, loc Location) RataDie {
	return phasisOnOrBefore(date, loc, NewMoonAtOrBefore(date))
}

func phasisOnOrBefore(date RataDie, loc Location, newMoon float64) RataDie {
	age := date.Float64() - newMoon
	tau := newMoon
	if age <= 3 && !VisibleCrescent(date.AsMoment(), loc) {
		tau = newMoon - 30
	}
	return calendrical.NextMoment(Moment(tau), loc, VisibleCrescent)
}

// PhasisOnOrAfter returns the first day of crescent visibility at loc on or
// after date.
func PhasisOnOrAfter(date RataDie, loc Location) RataDie {
	newMoon := NewMoonAtOrBefore(date)
	age := date.Float64() - newMoon
	tau := date.Float64()
	if age <= 4 || VisibleCrescent((date-1).AsMoment(), loc) {
		tau = newMoon + 29
	}
	return calendrical.NextMoment(Moment(tau), loc, VisibleCrescent)
}

// MonthLength returns the length of the observational month at loc that
// contains date.
func MonthLength(date RataDie, loc Location) uint8 {
	next := PhasisOnOrAfter(date+1, loc)
	prev := PhasisOnOrBefore(date, loc)
	calendrical.Assertf(next > prev, "astronomy: phasis %d not after %d", next, prev)
	return uint8(next - prev)
}
