package astronomy

import (
	"math"

	"github.com/zapponejosh/calendrics-api/internal/calendrical"
)

func eccentricity(c float64) float64 {
	return 1 - 0.002516*c - 0.0000074*c*c
}

func meanLunarLongitude(c float64) float64 {
	return mod360(218.3164477 + c*(481267.88123421-0.0015786*c+c*c/538841-c*c*c/65194000))
}

func lunarElongation(c float64) float64 {
	return mod360(297.85019021 + 445267.1114034*c - 0.0018819*c*c + c*c*c/545868 - c*c*c*c/113065000)
}

func solarAnomaly(c float64) float64 {
	return mod360(357.5291092 + 35999.0502909*c - 0.0001536*c*c + c*c*c/24490000)
}

func lunarAnomaly(c float64) float64 {
	return mod360(134.9633964 + 477198.8675055*c + 0.0087414*c*c + c*c*c/69699 - c*c*c*c/14712000)
}

func moonNode(c float64) float64 {
	return mod360(93.2720950 + 483202.0175233*c - 0.0036539*c*c - c*c*c/3526000 + c*c*c*c/863310000)
}

func ePower(e float64, n int) float64 {
	switch n {
	case 1:
		return e
	case 2:
		return e * e
	}
	return 1
}

// sumLunarTerms evaluates sum(v * e^n * trig(w*d + x*ms + y*ml + z*f)).
func sumLunarTerms(terms []lunarTerm, c float64, trig func(float64) float64) float64 {
	d := lunarElongation(c)
	ms := solarAnomaly(c)
	ml := lunarAnomaly(c)
	f := moonNode(c)
	e := eccentricity(c)
	sum := 0.0
	for _, t := range terms {
		sum += t.v * ePower(e, t.ePow) * trig(t.w*d+t.x*ms+t.y*ml+t.z*f)
	}
	return sum
}

// LunarLongitude returns the geocentric ecliptic longitude of the moon.
func LunarLongitude(julianCenturies float64) float64 {
	c := julianCenturies
	l := meanLunarLongitude(c)
	f := moonNode(c)
	correction := sumLunarTerms(lunarLongitudeTerms[:], c, sinDeg) / 1000000
	venus := 3958.0 / 1000000 * sinDeg(119.75+c*131.849)
	jupiter := 318.0 / 1000000 * sinDeg(53.09+c*479264.29)
	flatEarth := 1962.0 / 1000000 * sinDeg(l-f)
	return mod360(l + correction + venus + jupiter + flatEarth + nutation(julianCenturies))
}

// LunarLatitude returns the geocentric ecliptic latitude of the moon.
func LunarLatitude(julianCenturies float64) float64 {
	c := julianCenturies
	l := meanLunarLongitude(c)
	ml := lunarAnomaly(c)
	f := moonNode(c)
	correction := sumLunarTerms(lunarLatitudeTerms[:], c, sinDeg) / 1000000
	venus := 175 * (sinDeg(119.75+c*131.849+f) + sinDeg(119.75+c*131.849-f)) / 1000000
	flatEarth := (-2235*sinDeg(l) + 127*sinDeg(l-ml) + -115*sinDeg(l+ml)) / 1000000
	extra := 382 * sinDeg(313.45+c*481266.484) / 1000000
	return correction + venus + flatEarth + extra
}

// LunarDistance returns the distance from the Earth to the moon in meters.
func LunarDistance(m Moment) float64 {
	c := JulianCenturies(m)
	return 385000560 + sumLunarTerms(lunarDistanceTerms[:], c, cosDeg)
}

// LunarAltitude returns the geocentric altitude of the moon above the
// horizon at loc, in degrees from -180 to 180.
func LunarAltitude(m Moment, loc Location) float64 {
	phi := loc.Latitude
	psi := loc.Longitude
	c := JulianCenturies(m)
	lambda := LunarLongitude(c)
	beta := LunarLatitude(c)
	alpha := RightAscension(m, beta, lambda)
	delta := Declination(m, beta, lambda)
	theta0 := SiderealFromMoment(m)
	hourAngle := mod360(theta0 + psi - alpha)
	altitude := degrees(math.Asin(sinDeg(phi)*sinDeg(delta) + cosDeg(phi)*cosDeg(delta)*cosDeg(hourAngle)))
	return mod360(altitude+180) - 180
}

// LunarParallax returns the parallax of the moon at the given geocentric
// altitude.
func LunarParallax(altitude float64, m Moment) float64 {
	alt := 6378140 / LunarDistance(m)
	return mod360(degrees(math.Asin(alt * cosDeg(altitude))))
}

func topocentricLunarAltitude(m Moment, loc Location) float64 {
	alt := LunarAltitude(m, loc)
	return alt - LunarParallax(alt, m)
}

func observedLunarAltitude(m Moment, loc Location) float64 {
	return topocentricLunarAltitude(m, loc) + Refraction(loc) + 16.0/60
}

// Moonset returns the standard time of moonset at loc on the day of date,
// or false when the moon does not set that day.
func Moonset(date Moment, loc Location) (Moment, bool) {
	m := loc.UniversalFromStandard(date)
	waxing := LunarPhase(date, JulianCenturies(date)) < 180
	alt := observedLunarAltitude(m, loc)
	offset := alt / (4 * (90 - math.Abs(loc.Latitude)))

	var approx Moment
	switch {
	case waxing && offset > 0:
		approx = m + Moment(offset)
	case waxing:
		approx = m + 1 + Moment(offset)
	default:
		approx = m - Moment(offset) + 0.5
	}

	set := Moment(calendrical.BinarySearch(
		approx.Inner()-6.0/24,
		approx.Inner()+6.0/24,
		func(x float64) bool { return observedLunarAltitude(Moment(x), loc) < 0 },
		1.0/24/60,
	))
	if set >= m+1 {
		return 0, false
	}
	std := Moment(math.Max(loc.StandardFromUniversal(set).Inner(), date.Inner()))
	if std < date {
		return 0, false
	}
	return std, true
}

// Moonlag returns the time in days from sunset to moonset at loc on the day
// of date. It is 1 when the moon does not set, and false when the sun does
// not set.
func Moonlag(date Moment, loc Location) (float64, bool) {
	sun, ok := Sunset(date, loc)
	if !ok {
		return 0, false
	}
	moon, ok := Moonset(date, loc)
	if !ok {
		return 1, true
	}
	return moon.Sub(sun), true
}

// ============================================================================
// Phases
// ============================================================================

// NthNewMoon returns the instant of the nth new moon after NewMoonZero.
func NthNewMoon(n int32) Moment {
	const n0 = 24724.0
	k := float64(n) - n0
	c := k / 1236.85
	approx := J2000 + Moment(5.09766+meanSynodicMonth*1236.85*c+0.00015437*c*c-0.00000015*c*c*c+0.00000000073*c*c*c*c)
	e := eccentricity(c)
	solar := 2.5534 + 1236.85*29.10535670*c - 0.0000014*c*c - 0.00000011*c*c*c
	lunar := 201.5643 + 385.81693528*1236.85*c + 0.0107582*c*c + 0.00001238*c*c*c - 0.000000058*c*c*c*c
	moonArg := 160.7108 + 390.67050284*1236.85*c - 0.0016118*c*c - 0.00000227*c*c*c + 0.000000011*c*c*c*c
	omega := 124.7746 + -1.56375588*1236.85*c + 0.0020672*c*c + 0.00000215*c*c*c

	correction := -0.00017 * sinDeg(omega)
	sum := 0.0
	for _, t := range newMoonTerms {
		sum += t.v * ePower(e, t.ePow) * sinDeg(t.x*solar+t.y*lunar+t.z*moonArg)
	}
	correction += sum
	extra := 0.000325 * sinDeg(299.77+132.8475848*c-0.009173*c*c)
	additional := 0.0
	for _, t := range newMoonAdditionals {
		additional += t.l * sinDeg(t.i+t.j*k)
	}
	return UniversalFromDynamical(approx + Moment(correction+extra+additional))
}

// LunarPhase returns the phase of the moon at m, the difference between
// lunar and solar longitude, in degrees [0, 360).
func LunarPhase(m Moment, julianCenturies float64) float64 {
	n := calendrical.SaturatingI32(int64(math.Round(calendrical.DivEuclidF64(m.Sub(NewMoonZero), meanSynodicMonth))))
	a := mod360(LunarLongitude(julianCenturies) - SolarLongitude(julianCenturies))
	b := 360 * calendrical.RemEuclidF64(m.Sub(NthNewMoon(n))/meanSynodicMonth, 1)
	if math.Abs(a-b) > 180 {
		return b
	}
	return a
}

func lunarPhaseAt(x float64) float64 {
	return LunarPhase(Moment(x), JulianCenturies(Moment(x)))
}

// LunarPhaseAtOrBefore returns the last instant at or before m at which the
// moon had the given phase.
func LunarPhaseAtOrBefore(phase float64, m Moment) Moment {
	tau := m.Inner() - meanSynodicMonth/360*math.Mod(LunarPhase(m, JulianCenturies(m))-phase, 360)
	a := tau - 2
	b := math.Min(m.Inner(), tau+2)
	return Moment(calendrical.InvertAngular(lunarPhaseAt, phase, [2]float64{a, b}))
}

// NumOfNewMoonAtOrAfter returns the index of the first new moon at or after
// m.
func NumOfNewMoonAtOrAfter(m Moment) int32 {
	phi := LunarPhase(m, JulianCenturies(m))
	n := calendrical.SaturatingI32(int64(math.Round(calendrical.DivEuclidF64(m.Sub(NewMoonZero), meanSynodicMonth) - phi/360)))
	for i := 0; i < 31 && NthNewMoon(n) < m; i++ {
		n++
	}
	return n
}

// NewMoonBefore returns the last new moon strictly before m.
func NewMoonBefore(m Moment) Moment {
	return NthNewMoon(NumOfNewMoonAtOrAfter(m) - 1)
}

// NewMoonAtOrAfter returns the first new moon at or after m.
func NewMoonAtOrAfter(m Moment) Moment {
	return NthNewMoon(NumOfNewMoonAtOrAfter(m))
}

// NewMoonAtOrBefore returns the floor of the last new moon at or before the
// start of date.
func NewMoonAtOrBefore(date RataDie) float64 {
	return math.Floor(LunarPhaseAtOrBefore(0, date.AsMoment()).Inner())
}
