// Package astronomy implements the solar and lunar ephemeris used by the
// observational calendars, after Reingold and Dershowitz, Calendrical
// Calculations (4th ed.), and Meeus, Astronomical Algorithms.
//
// Instants are calendrical.Moment values. Angles are in degrees.
package astronomy

import (
	"math"

	"github.com/zapponejosh/calendrics-api/internal/calendrical"
)

type (
	Moment   = calendrical.Moment
	RataDie  = calendrical.RataDie
	Location = calendrical.Location
)

const (
	// J2000 is noon on 2000-01-01.
	J2000 Moment = 730120.5
	// MeanTropicalYear is the mean tropical year in days.
	MeanTropicalYear = 365.242189
	// NewMoonZero is the first new moon of the common era, 0001-01-11.
	NewMoonZero Moment = 11.458922815770109
	// Winter is the solar longitude of the December solstice.
	Winter = 270.0
)

const meanSynodicMonth = calendrical.MeanSynodicMonth

var pi = math.Pi

func radians(deg float64) float64 { return deg * (pi / 180) }

func degrees(rad float64) float64 { return rad * (180 / pi) }

func sinDeg(deg float64) float64 { return math.Sin(radians(deg)) }

func cosDeg(deg float64) float64 { return math.Cos(radians(deg)) }

func tanDeg(deg float64) float64 { return math.Tan(radians(deg)) }

func mod360(x float64) float64 { return calendrical.RemEuclidF64(x, 360) }

// ============================================================================
// Time
// ============================================================================

// EphemerisCorrection returns the difference between dynamical and universal
// time at m, in days.
func EphemerisCorrection(m Moment) float64 {
	year := m.Inner() / 365.2425
	if year > 0 {
		year++
	}
	y := int32(year)
	fixedMidYear := calendrical.FixedFromGregorian(y, 7, 1)
	c := (fixedMidYear.Float64() - 693596) / 36525
	y2000 := float64(y - 2000)
	y1700 := float64(y - 1700)
	y1600 := float64(y - 1600)
	y1000 := float64(y-1000) / 100
	y0 := float64(y) / 100
	y1820 := float64(y-1820) / 100

	switch {
	case y >= 2051 && y <= 2150:
		return (-20 + 32*(float64((y-1820)*(y-1820))/10000) + 0.5628*float64(2150-y)) / 86400
	case y >= 2006 && y <= 2050:
		return (62.92 + 0.32217*y2000 + 0.005589*y2000*y2000) / 86400
	case y >= 1987 && y <= 2005:
		return calendrical.Poly(y2000, []float64{63.86, 0.3345, -0.060374, 0.0017275, 0.000651814, 0.00002373599}) / 86400
	case y >= 1900 && y <= 1986:
		return calendrical.Poly(c, []float64{-0.00002, 0.000297, 0.025184, -0.181133, 0.553040, -0.861938, 0.677066, -0.212591})
	case y >= 1800 && y <= 1899:
		return calendrical.Poly(c, []float64{-0.000009, 0.003844, 0.083563, 0.865736, 4.867575, 15.845535,
			31.332267, 38.291999, 28.316289, 11.636204, 2.043794})
	case y >= 1700 && y <= 1799:
		return calendrical.Poly(y1700, []float64{8.118780842, -0.005092142, 0.003336121, -0.0000266484}) / 86400
	case y >= 1600 && y <= 1699:
		return calendrical.Poly(y1600, []float64{120, -0.9808, -0.01532, 0.000140272128}) / 86400
	case y >= 500 && y <= 1599:
		return calendrical.Poly(y1000, []float64{1574.2, -556.01, 71.23472, 0.319781, -0.8503463,
			-0.005050998, 0.0083572073}) / 86400
	case y >= -499 && y <= 499:
		return calendrical.Poly(y0, []float64{10583.6, -1014.41, 33.78311, -5.952053, -0.1798452,
			0.022174192, 0.0090316521}) / 86400
	}
	return (-20 + 32*y1820*y1820) / 86400
}

// DynamicalFromUniversal converts universal time to dynamical time.
func DynamicalFromUniversal(universal Moment) Moment {
	return universal + Moment(EphemerisCorrection(universal))
}

// UniversalFromDynamical converts dynamical time to universal time.
func UniversalFromDynamical(dynamical Moment) Moment {
	return dynamical - Moment(EphemerisCorrection(dynamical))
}

// JulianCenturies returns the dynamical time of m in Julian centuries since
// J2000.
func JulianCenturies(m Moment) float64 {
	return DynamicalFromUniversal(m).Sub(J2000) / 36525
}

// SiderealFromMoment returns the mean sidereal time at Greenwich, in degrees.
func SiderealFromMoment(m Moment) float64 {
	c := m.Sub(J2000) / 36525
	return mod360(calendrical.Poly(c, []float64{280.46061837, 36525 * 360.98564736629, 0.000387933, -1.0 / 38710000}))
}

// Obliquity returns the obliquity of the ecliptic at m.
func Obliquity(m Moment) float64 {
	c := JulianCenturies(m)
	angle := 23 + 26.0/60 + 21.448/3600
	return angle + calendrical.Poly(c, []float64{0, -46.8150 / 3600, -0.00059 / 3600, 0.001813 / 3600})
}

// Declination returns the declination of the ecliptic coordinates (beta,
// lambda) at m.
func Declination(m Moment, beta, lambda float64) float64 {
	eps := Obliquity(m)
	return mod360(degrees(math.Asin(sinDeg(beta)*cosDeg(eps) + cosDeg(beta)*sinDeg(eps)*sinDeg(lambda))))
}

// RightAscension returns the right ascension of the ecliptic coordinates
// (beta, lambda) at m.
func RightAscension(m Moment, beta, lambda float64) float64 {
	eps := Obliquity(m)
	y := sinDeg(lambda)*cosDeg(eps) - tanDeg(beta)*sinDeg(eps)
	x := cosDeg(lambda)
	return mod360(degrees(math.Atan2(y, x)))
}

// EquationOfTime returns apparent minus mean solar time at m, in days,
// bounded by half a day.
func EquationOfTime(m Moment) float64 {
	c := JulianCenturies(m)
	lambda := calendrical.Poly(c, []float64{280.46645, 36000.76983, 0.0003032})
	anomaly := calendrical.Poly(c, []float64{357.52910, 35999.05030, -0.0001559, -0.00000048})
	ecc := calendrical.Poly(c, []float64{0.016708617, -0.000042037, -0.0000001236})
	y := tanDeg(Obliquity(m) / 2)
	y *= y
	equation := (y*sinDeg(2*lambda) -
		2*ecc*sinDeg(anomaly) +
		4*ecc*y*sinDeg(anomaly)*cosDeg(2*lambda) -
		0.5*y*y*sinDeg(4*lambda) -
		1.25*ecc*ecc*sinDeg(2*anomaly)) / (2 * pi)
	return math.Copysign(math.Min(math.Abs(equation), 12.0/24), equation)
}

// LocalFromApparent converts apparent solar time at loc to local mean time.
func LocalFromApparent(m Moment, loc Location) Moment {
	return m - Moment(EquationOfTime(loc.UniversalFromLocal(m)))
}

// ============================================================================
// Sun
// ============================================================================

// SolarLongitude returns the apparent longitude of the sun.
func SolarLongitude(julianCenturies float64) float64 {
	c := julianCenturies
	lambda := 0.0
	for _, t := range solarLongitudeTerms {
		lambda += t.x * sinDeg(t.y+t.z*c)
	}
	lambda *= 0.000005729577951308232
	lambda += 282.7771834 + 36000.76953744*c
	return mod360(lambda + aberration(c) + nutation(julianCenturies))
}

func aberration(c float64) float64 {
	return 0.0000974*cosDeg(177.63+35999.01848*c) - 0.005575
}

func nutation(c float64) float64 {
	a := 124.90 - 1934.134*c + 0.002063*c*c
	b := 201.11 + 72001.5377*c + 0.00057*c*c
	return -0.004778*sinDeg(a) - 0.0003667*sinDeg(b)
}

// EstimatePriorSolarLongitude approximates the last moment at or before m
// when the sun reached longitude angle.
func EstimatePriorSolarLongitude(angle float64, m Moment) Moment {
	rate := MeanTropicalYear / 360
	tau := m - Moment(rate*mod360(SolarLongitude(JulianCenturies(m))-angle))
	delta := mod360(SolarLongitude(JulianCenturies(tau))-angle+180) - 180
	result := tau - Moment(rate*delta)
	if m < result {
		return m
	}
	return result
}

// SineOffset returns the sine of the angle between where the sun is at m
// and where it is when depressed alpha degrees below the horizon at loc.
func SineOffset(m Moment, loc Location, alpha float64) float64 {
	phi := loc.Latitude
	teePrime := loc.UniversalFromLocal(m)
	delta := Declination(teePrime, 0, SolarLongitude(JulianCenturies(teePrime)))
	return tanDeg(phi)*tanDeg(delta) + sinDeg(alpha)/(cosDeg(delta)*cosDeg(phi))
}

func approxMomentOfDepression(m Moment, loc Location, alpha float64, early bool) (Moment, bool) {
	date := math.Floor(m.AsRataDie().Float64())
	var alt float64
	switch {
	case alpha < 0:
		alt = date + 12.0/24
	case early:
		alt = date
	default:
		alt = date + 1
	}
	value := SineOffset(m, loc, alpha)
	if math.Abs(value) > 1 {
		value = SineOffset(Moment(alt), loc, alpha)
	}
	if math.Abs(value) > 1 {
		return 0, false
	}
	offset := calendrical.RemEuclidF64(mod360(degrees(math.Asin(value)))/360+0.5, 1) - 0.5
	if early {
		return LocalFromApparent(Moment(date+6.0/24-offset), loc), true
	}
	return LocalFromApparent(Moment(date+18.0/24+offset), loc), true
}

func momentOfDepression(approx Moment, loc Location, alpha float64, early bool) (Moment, bool) {
	for {
		m, ok := approxMomentOfDepression(approx, loc, alpha, early)
		if !ok {
			return 0, false
		}
		if math.Abs(approx.Sub(m)) < 30 {
			return m, true
		}
		approx = m
	}
}

// Dusk returns the standard time in the evening of date when the sun is
// alpha degrees below the horizon at loc, or false if it never is.
func Dusk(date float64, loc Location, alpha float64) (Moment, bool) {
	m, ok := momentOfDepression(Moment(date+18.0/24), loc, alpha, false)
	if !ok {
		return 0, false
	}
	return loc.StandardFromLocal(m), true
}

// Refraction returns the apparent depression of the horizon at loc, in
// degrees, due to atmospheric refraction and elevation.
func Refraction(loc Location) float64 {
	h := math.Max(loc.Elevation, 0)
	const earthRadius = 6.372e6
	dip := degrees(math.Acos(earthRadius / (earthRadius + h)))
	return 34.0/60 + dip + 19.0/3600*math.Sqrt(h)
}

// Sunset returns the standard time of sunset at loc on the day of date, or
// false when the sun does not set.
func Sunset(date Moment, loc Location) (Moment, bool) {
	alpha := Refraction(loc) + 16.0/60
	return Dusk(date.Inner(), loc, alpha)
}
