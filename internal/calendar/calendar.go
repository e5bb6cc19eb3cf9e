// Package calendar converts between day numbers and dates in solar and
// Islamic calendars and does calendar arithmetic on them.
package calendar

import (
	"github.com/zapponejosh/calendrics-api/internal/calendrical"
)

// EraYear is a year number within a named era.
type EraYear struct {
	Era  string `json:"era" yaml:"era"`
	Year int32  `json:"year" yaml:"year"`
}

// Calendar creates dates in one calendar system.
type Calendar interface {
	// Name is the registry key of the calendar.
	Name() string
	// FromCodes builds a date from an era ("" for the extended year), an
	// era year, a month code and a day.
	FromCodes(era string, year int32, code MonthCode, day uint8) (Date, error)
	// FromOrdinals builds a date from an extended year and 1-based month
	// and day.
	FromOrdinals(year int32, month, day uint8) (Date, error)
	// FromRataDie returns the date of a day number. Years outside the
	// int32 range saturate to the first or last representable date.
	FromRataDie(rd calendrical.RataDie) Date
}

// Date is a day in a particular calendar.
type Date interface {
	Calendar() Calendar
	RataDie() calendrical.RataDie
	EraYear() EraYear
	ExtendedYear() int32
	Month() MonthInfo
	DayOfMonth() uint8
	DayOfYear() uint16
	DaysInMonth() uint8
	DaysInYear() uint16
	MonthsInYear() uint8
	IsInLeapYear() bool
	// Offset returns the date moved by dur.
	Offset(dur DateDuration) Date
	// Until returns the naive field-wise difference from other to the
	// date. Both dates must share a calendar.
	Until(other Date, largest, smallest DurationUnit) (DateDuration, error)
	// Compare orders two dates of the same calendar.
	Compare(other Date) int
}

// Convert returns d in calendar to.
func Convert(d Date, to Calendar) Date {
	return to.FromRataDie(d.RataDie())
}

// engine is what a calendar supplies to the shared date implementation.
type engine[Y YearInfo] interface {
	Calendar
	Arithmetic[Y]
	YearInfoSource[Y]
	toRataDie(d ArithmeticDate[Y]) calendrical.RataDie
	// extendedYear maps the stored year number to the calendar's extended
	// year.
	extendedYear(stored int32) int32
	eraYear(extended int32) EraYear
}

type date[Y YearInfo] struct {
	e     engine[Y]
	inner ArithmeticDate[Y]
}

func wrap[Y YearInfo](e engine[Y], inner ArithmeticDate[Y]) Date {
	return date[Y]{e: e, inner: inner}
}

func (d date[Y]) Calendar() Calendar { return d.e }

func (d date[Y]) RataDie() calendrical.RataDie { return d.e.toRataDie(d.inner) }

func (d date[Y]) ExtendedYear() int32 { return d.e.extendedYear(d.inner.ExtendedYear()) }

func (d date[Y]) EraYear() EraYear { return d.e.eraYear(d.ExtendedYear()) }

func (d date[Y]) Month() MonthInfo { return d.inner.MonthInfo(d.e) }

func (d date[Y]) DayOfMonth() uint8 { return d.inner.Day }

func (d date[Y]) DayOfYear() uint16 { return d.inner.DayOfYear(d.e) }

func (d date[Y]) DaysInMonth() uint8 { return d.e.DaysInMonth(d.inner.Year, d.inner.Month) }

func (d date[Y]) DaysInYear() uint16 { return d.e.DaysInYear(d.inner.Year) }

func (d date[Y]) MonthsInYear() uint8 { return d.e.MonthsInYear(d.inner.Year) }

func (d date[Y]) IsInLeapYear() bool { return d.e.IsLeapYear(d.inner.Year) }

func (d date[Y]) Offset(dur DateDuration) Date {
	return wrap(d.e, d.inner.OffsetDate(dur, d.e, d.e))
}

func (d date[Y]) Until(other Date, largest, smallest DurationUnit) (DateDuration, error) {
	o, err := d.same(other)
	if err != nil {
		return DateDuration{}, err
	}
	return d.inner.Until(o.inner, largest, smallest), nil
}

func (d date[Y]) Compare(other Date) int {
	if o, err := d.same(other); err == nil {
		return d.inner.Compare(o.inner)
	}
	return d.RataDie().Compare(other.RataDie())
}

func (d date[Y]) same(other Date) (date[Y], error) {
	o, ok := other.(date[Y])
	if !ok || o.e.Name() != d.e.Name() {
		return date[Y]{}, ErrCalendarMismatch
	}
	return o, nil
}

// String formats the date as extended year, month and day.
func (d date[Y]) String() string {
	return formatYMD(d.ExtendedYear(), d.inner.Month, d.inner.Day)
}
