package calendar

import (
	"github.com/zapponejosh/calendrics-api/internal/calendrical"
)

// EasterWestern returns Easter Sunday for a Gregorian year.
//
// The algorithm is based on the method described by J.M. Oudin (1940)
// and is valid for all years in the Gregorian calendar.
func EasterWestern(year int32) calendrical.RataDie {
	y := int64(year)
	a := calendrical.RemEuclid(y, 19)
	b := calendrical.DivEuclid(y, 100)
	c := calendrical.RemEuclid(y, 100)
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := calendrical.RemEuclid(19*a+b-d-g+15, 30)
	i := c / 4
	k := c % 4
	l := calendrical.RemEuclid(32+2*e+2*i-h-k, 7)
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1

	return calendrical.FixedFromGregorian(year, uint8(month), uint8(day))
}

// EasterOrthodox returns Easter Sunday for a Julian year, as a day number.
// The paschal full moon is found from the Metonic epact and Easter is the
// Sunday after it.
func EasterOrthodox(year int32) calendrical.RataDie {
	epact := calendrical.RemEuclid(14+11*calendrical.RemEuclid(int64(year), 19), 30)
	paschalMoon := calendrical.FixedFromJulian(year, 4, 19) - calendrical.RataDie(epact)
	return calendrical.KDayAfter(0, paschalMoon)
}

// MovableFeasts are the days that follow Easter in a Gregorian year.
type MovableFeasts struct {
	AshWednesday calendrical.RataDie
	Easter       calendrical.RataDie
	Ascension    calendrical.RataDie
	Pentecost    calendrical.RataDie
	// Advent is the first Sunday of Advent that closes the year.
	Advent calendrical.RataDie
}

// WesternFeasts returns the Western movable feasts of year.
//
// Ash Wednesday is 46 days before Easter (40 days of Lent plus six
// Sundays). Ascension is 39 days after Easter and Pentecost 49 days after.
// Advent Sunday is the Sunday nearest November 30, which falls between
// November 27 and December 3.
func WesternFeasts(year int32) MovableFeasts {
	easter := EasterWestern(year)
	return MovableFeasts{
		AshWednesday: easter - 46,
		Easter:       easter,
		Ascension:    easter + 39,
		Pentecost:    easter + 49,
		Advent:       calendrical.KDayOnOrBefore(0, calendrical.FixedFromGregorian(year, 12, 3)),
	}
}
