package calendar

import (
	"errors"
	"fmt"
	"math"

	"github.com/zapponejosh/calendrics-api/internal/calendrical"
)

// Sentinel errors returned by calendar construction and lookup.
var (
	ErrUnknownEra       = errors.New("unknown era")
	ErrUnknownCalendar  = errors.New("unknown calendar")
	ErrCalendarMismatch = errors.New("dates belong to different calendars")
	ErrInvalidDate      = errors.New("invalid date")
)

// CastError reports a year that does not fit in 32 bits.
type CastError = calendrical.CastError

// RangeError reports a date field outside its valid bounds.
type RangeError struct {
	Field string
	Value int32
	Min   int32
	Max   int32
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s %d out of range [%d, %d]", e.Field, e.Value, e.Min, e.Max)
}

// UnknownMonthCodeError reports a month code the calendar cannot resolve.
type UnknownMonthCodeError struct {
	Code MonthCode
}

func (e *UnknownMonthCodeError) Error() string {
	return fmt.Sprintf("unknown month code %q", string(e.Code))
}

// yearAtLeast rejects era years below min.
func yearAtLeast(year, min int32) (int32, error) {
	if year < min {
		return 0, &RangeError{Field: "year", Value: year, Min: min, Max: math.MaxInt32}
	}
	return year, nil
}

// yearAtMost rejects era years above max.
func yearAtMost(year, max int32) (int32, error) {
	if year > max {
		return 0, &RangeError{Field: "year", Value: year, Min: math.MinInt32, Max: max}
	}
	return year, nil
}
