// Package calendrical provides the day-count primitives and the closed-form
// and astronomical conversion routines shared by every calendar.
//
// A RataDie counts days from 0001-01-01 in the proleptic Gregorian calendar
// (RD 1). A Moment is a RataDie with a fractional day component, used where
// sub-day precision matters.
package calendrical

import "math"

// RataDie is a fixed day number. RD 1 is 0001-01-01 (proleptic Gregorian).
type RataDie int64

// NewRataDie returns the RataDie for the given day number.
func NewRataDie(n int64) RataDie { return RataDie(n) }

// Int64 returns the day number.
func (rd RataDie) Int64() int64 { return int64(rd) }

// Float64 returns the day number as a float.
func (rd RataDie) Float64() float64 { return float64(rd) }

// AsMoment returns midnight at the start of the day.
func (rd RataDie) AsMoment() Moment { return Moment(rd) }

// Sub returns the number of days from other to rd.
func (rd RataDie) Sub(other RataDie) int64 { return int64(rd - other) }

// Add returns the day offset by days.
func (rd RataDie) Add(days int64) RataDie { return rd + RataDie(days) }

// AddMoment returns the instant offset by a fractional number of days.
func (rd RataDie) AddMoment(days float64) Moment { return Moment(float64(rd) + days) }

// Compare returns -1, 0 or +1 depending on whether rd is before, equal to or
// after other.
func (rd RataDie) Compare(other RataDie) int {
	switch {
	case rd < other:
		return -1
	case rd > other:
		return 1
	}
	return 0
}

// Moment is an instant measured in fractional days since RD 0.
type Moment float64

// NewMoment returns the Moment for the given fractional day number.
func NewMoment(v float64) Moment { return Moment(v) }

// Inner returns the fractional day number.
func (m Moment) Inner() float64 { return float64(m) }

// Sub returns the fractional number of days from other to m.
func (m Moment) Sub(other Moment) float64 { return float64(m - other) }

// Add returns the instant offset by days.
func (m Moment) Add(days float64) Moment { return m + Moment(days) }

// AsRataDie returns the day containing the instant.
func (m Moment) AsRataDie() RataDie { return RataDie(math.Floor(float64(m))) }
