package astronomy

import "github.com/zapponejosh/calendrics-api/internal/calendrical"

// Astronomical is the ephemeris of this package as a calendrical.Ephemeris.
type Astronomical struct{}

var _ calendrical.Ephemeris = Astronomical{}

func (Astronomical) NewMoonAtOrBefore(date RataDie) float64 { return NewMoonAtOrBefore(date) }

func (Astronomical) PhasisOnOrBefore(date RataDie, loc Location, newMoon float64) RataDie {
	return phasisOnOrBefore(date, loc, newMoon)
}

func (Astronomical) Sunset(date Moment, loc Location) (Moment, bool) { return Sunset(date, loc) }

func (Astronomical) LunarPhase(universal Moment, julianCenturies float64) float64 {
	return LunarPhase(universal, julianCenturies)
}

func (Astronomical) LunarPhaseAtOrBefore(phase float64, m Moment) Moment {
	return LunarPhaseAtOrBefore(phase, m)
}

func (Astronomical) JulianCenturies(m Moment) float64 { return JulianCenturies(m) }

func (Astronomical) Moonlag(date Moment, loc Location) (float64, bool) { return Moonlag(date, loc) }

func (Astronomical) MonthLength(date RataDie, loc Location) uint8 { return MonthLength(date, loc) }

func (Astronomical) UniversalFromStandard(m Moment, loc Location) Moment {
	return loc.UniversalFromStandard(m)
}
