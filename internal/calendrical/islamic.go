package calendrical

import "math"

// MeanSynodicMonth is the mean time between new moons, in days.
const MeanSynodicMonth = 29.530588861

// MeanIslamicYear is twelve mean synodic months.
const MeanIslamicYear = 12 * MeanSynodicMonth

// Islamic epochs: 622-07-16 (Friday, civil) and 622-07-15 (Thursday,
// astronomical) in the Julian calendar.
var (
	IslamicEpochFriday   = FixedFromJulian(622, 7, 16)
	IslamicEpochThursday = IslamicEpochFriday - 1
)

// Ephemeris supplies the astronomical quantities the observational and Saudi
// calendars are defined by.
type Ephemeris interface {
	// NewMoonAtOrBefore returns the instant of the last new moon at or before
	// the start of date.
	NewMoonAtOrBefore(date RataDie) float64
	// PhasisOnOrBefore returns the first day of crescent visibility at loc on
	// or before date. newMoon is NewMoonAtOrBefore(date).
	PhasisOnOrBefore(date RataDie, loc Location, newMoon float64) RataDie
	// Sunset returns standard time of sunset at loc on the day of date, or
	// false when the sun does not set.
	Sunset(date Moment, loc Location) (Moment, bool)
	// LunarPhase returns the phase of the moon in degrees [0, 360).
	LunarPhase(universal Moment, julianCenturies float64) float64
	// LunarPhaseAtOrBefore returns the last instant at or before m at which
	// the moon reached phase degrees.
	LunarPhaseAtOrBefore(phase float64, m Moment) Moment
	// JulianCenturies returns the dynamical time in centuries since J2000.
	JulianCenturies(m Moment) float64
	// Moonlag returns the time in days between sunset and moonset at loc, or
	// false when the sun does not set.
	Moonlag(date Moment, loc Location) (float64, bool)
	// MonthLength returns the length of the observational month containing
	// date.
	MonthLength(date RataDie, loc Location) uint8
	// UniversalFromStandard converts standard time at loc to universal time.
	UniversalFromStandard(m Moment, loc Location) Moment
}

// ============================================================================
// Tabular
// ============================================================================

// IsTabularIslamicLeapYear reports whether year has 355 days.
func IsTabularIslamicLeapYear(year int32) bool {
	return RemEuclid(14+11*int64(year), 30) < 11
}

// FixedFromTabularIslamic returns the day number of a tabular Islamic date.
func FixedFromTabularIslamic(year int32, month, day uint8, epoch RataDie) RataDie {
	y := int64(year)
	m := int64(month)
	return epoch - 1 + RataDie((y-1)*354+DivEuclid(3+11*y, 30)+29*(m-1)+DivEuclid(m, 2)+int64(day))
}

// TabularIslamicFromFixed returns the tabular Islamic date of date. The year
// saturates to the int32 range.
func TabularIslamicFromFixed(date RataDie, epoch RataDie) (int32, uint8, uint8) {
	year := SaturatingI32(DivEuclid(30*daysSince(date, epoch)+10646, 10631))
	prior := int64(date - FixedFromTabularIslamic(year, 1, 1, epoch))
	assertf(prior >= 0 && prior <= 354, "prior days %d out of range", prior)
	month := uint8(DivEuclid(11*prior+330, 325))
	assertf(month >= 1 && month <= 12, "month %d out of range", month)
	day := uint8(date - FixedFromTabularIslamic(year, month, 1, epoch) + 1)
	return year, month, day
}

// ============================================================================
// Observational
// ============================================================================

// ObservationalIslamic resolves months by first crescent visibility at a
// location, following the Shaukat criterion of the ephemeris.
type ObservationalIslamic struct {
	Ephemeris Ephemeris
	Location  Location
}

func observationalMidmonth(year int32, month uint8) float64 {
	return IslamicEpochFriday.Float64() + (float64(year-1)*12+float64(month)-0.5)*MeanSynodicMonth
}

// FixedFromDate returns the day number of the observational date.
func (o ObservationalIslamic) FixedFromDate(year int32, month, day uint8) RataDie {
	midmonth := RataDie(int64(observationalMidmonth(year, month)))
	newMoon := o.Ephemeris.NewMoonAtOrBefore(midmonth)
	return o.Ephemeris.PhasisOnOrBefore(midmonth, o.Location, newMoon) + RataDie(day) - 1
}

// FromFixed returns the observational date of date.
func (o ObservationalIslamic) FromFixed(date RataDie) (int32, uint8, uint8) {
	newMoon := o.Ephemeris.NewMoonAtOrBefore(date)
	crescent := o.Ephemeris.PhasisOnOrBefore(date, o.Location, newMoon)
	elapsed := int64(math.Round(float64(crescent-IslamicEpochFriday) / MeanSynodicMonth))
	year := SaturatingI32(DivEuclid(elapsed, 12) + 1)
	month := uint8(RemEuclid(elapsed, 12) + 1)
	day := uint8(date - crescent + 1)
	return year, month, day
}

// MonthDays returns the length of the observational month.
func (o ObservationalIslamic) MonthDays(year int32, month uint8) uint8 {
	midmonth := RataDie(int64(observationalMidmonth(year, month)))
	newMoon := o.Ephemeris.NewMoonAtOrBefore(midmonth)
	start := o.Ephemeris.PhasisOnOrBefore(midmonth, o.Location, newMoon)
	return o.Ephemeris.MonthLength(start, o.Location)
}

// ============================================================================
// Saudi (Umm al-Qura)
// ============================================================================

// Years in which every Saudi month is known to resolve to 29 or 30 days.
const (
	saudiCheckedMinYear = -1245
	saudiCheckedMaxYear = 1518
)

// SaudiIslamic resolves months with the Umm al-Qura visibility criterion at
// Mecca.
type SaudiIslamic struct {
	Ephemeris Ephemeris
}

// criterion reports whether the moon is a waxing crescent at sunset on the
// eve of date and sets after the sun. ok is false when sunset or moonset is
// undefined.
func (s SaudiIslamic) criterion(date RataDie) (visible, ok bool) {
	eve := (date - 1).AsMoment()
	sunset, ok := s.Ephemeris.Sunset(eve, Mecca)
	if !ok {
		return false, false
	}
	tee := s.Ephemeris.UniversalFromStandard(sunset, Mecca)
	phase := s.Ephemeris.LunarPhase(tee, s.Ephemeris.JulianCenturies(tee))
	moonlag, ok := s.Ephemeris.Moonlag(eve, Mecca)
	if !ok {
		return false, false
	}
	return phase > 0 && phase < 90 && moonlag > 0, true
}

// Criterion reports whether a new Saudi month may begin on date. An
// undefined sunset or moonset counts as not visible.
func (s SaudiIslamic) Criterion(date RataDie) bool {
	visible, _ := s.criterion(date)
	return visible
}

// NewMonthOnOrBefore returns the first day of the Saudi month containing
// date.
func (s SaudiIslamic) NewMonthOnOrBefore(date RataDie) RataDie {
	last := math.Floor(s.Ephemeris.LunarPhaseAtOrBefore(0, date.AsMoment()).Inner())
	age := date.Float64() - last
	tau := last
	if age <= 3 && !s.Criterion(date) {
		tau = last - 30
	}
	return Next(RataDie(int64(tau)), s.Criterion)
}

func saudiMidmonth(year int32, month uint8) RataDie {
	return IslamicEpochFriday + RataDie(math.Floor((float64(year-1)*12+float64(month)-0.5)*MeanSynodicMonth))
}

// MonthStart returns the first day of the given Saudi month.
func (s SaudiIslamic) MonthStart(year int32, month uint8) RataDie {
	return s.NewMonthOnOrBefore(saudiMidmonth(year, month))
}

// FixedFromDate returns the day number of the Saudi date.
func (s SaudiIslamic) FixedFromDate(year int32, month, day uint8) RataDie {
	return s.MonthStart(year, month) + RataDie(day) - 1
}

// FromFixed returns the Saudi date of date.
func (s SaudiIslamic) FromFixed(date RataDie) (int32, uint8, uint8) {
	crescent := s.NewMonthOnOrBefore(date)
	elapsed := int64(math.Round(float64(crescent-IslamicEpochFriday) / MeanSynodicMonth))
	year := SaturatingI32(DivEuclid(elapsed, 12) + 1)
	month := uint8(RemEuclid(elapsed, 12) + 1)
	day := uint8(date - crescent + 1)
	return year, month, day
}

// MonthDays returns the length of the Saudi month, clamped to 30.
func (s SaudiIslamic) MonthDays(year int32, month uint8) uint8 {
	midmonth := Moment(IslamicEpochFriday.Float64() + (float64(year-1)*12+float64(month)-0.5)*MeanSynodicMonth)
	start := s.NewMonthOnOrBefore(midmonth.AsRataDie())
	next := s.NewMonthOnOrBefore((midmonth + MeanSynodicMonth).AsRataDie())
	diff := int64(next - start)
	if year >= saudiCheckedMinYear && year <= saudiCheckedMaxYear {
		assertf(diff <= 30, "Saudi month %d/%d has %d days", year, month, diff)
	}
	if diff < 0 || diff > 30 {
		return 30
	}
	return uint8(diff)
}
