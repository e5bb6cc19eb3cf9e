package calendar

import (
	"math"

	"github.com/zapponejosh/calendrics-api/internal/calendrical"
)

// YearInfo is the per-year data a calendar's arithmetic runs on. Most
// calendars use SimpleYear; lunar calendars whose month lengths come from
// astronomy carry a richer precomputed value.
type YearInfo interface {
	comparable
	ExtendedYear() int32
}

// SimpleYear is a year that needs no data beyond its number.
type SimpleYear int32

// ExtendedYear returns the year number.
func (y SimpleYear) ExtendedYear() int32 { return int32(y) }

// Arithmetic is the month structure of a calendar.
type Arithmetic[Y YearInfo] interface {
	DaysInMonth(year Y, month uint8) uint8
	MonthsInYear(year Y) uint8
	IsLeapYear(year Y) bool
	// LastMonthDay returns the final month and day of year.
	LastMonthDay(year Y) (month, day uint8)
	DaysInYear(year Y) uint16
}

// MonthStructure is the subset of Arithmetic needed to sum a year.
type MonthStructure[Y YearInfo] interface {
	DaysInMonth(year Y, month uint8) uint8
	MonthsInYear(year Y) uint8
}

// SumDaysInYear adds up the lengths of every month of year. Calendars
// without a closed form for the year length use it for DaysInYear.
func SumDaysInYear[Y YearInfo](a MonthStructure[Y], year Y) uint16 {
	var days uint16
	for m := uint8(1); m <= a.MonthsInYear(year); m++ {
		days += uint16(a.DaysInMonth(year, m))
	}
	return days
}

// YearInfoSource loads the YearInfo for an extended year.
type YearInfoSource[Y YearInfo] interface {
	LoadOrComputeInfo(extendedYear int32) Y
}

// IdentitySource serves SimpleYear values.
type IdentitySource struct{}

// LoadOrComputeInfo returns extendedYear unchanged.
func (IdentitySource) LoadOrComputeInfo(extendedYear int32) SimpleYear {
	return SimpleYear(extendedYear)
}

// DurationUnit is the granularity of a DateDuration.
type DurationUnit int

const (
	Years DurationUnit = iota
	Months
	Weeks
	Days
)

// DateDuration is a signed calendar offset. The fields are applied in
// order: years, then months, then weeks and days together.
type DateDuration struct {
	Years  int32 `json:"years" yaml:"years"`
	Months int32 `json:"months" yaml:"months"`
	Weeks  int32 `json:"weeks" yaml:"weeks"`
	Days   int32 `json:"days" yaml:"days"`
}

// ArithmeticDate is a year, month and day in a calendar with year data Y.
// Valid values satisfy 1 <= Month <= MonthsInYear and
// 1 <= Day <= DaysInMonth.
type ArithmeticDate[Y YearInfo] struct {
	Year  Y
	Month uint8
	Day   uint8
}

// NewUnchecked builds a date without validating the month or day.
func NewUnchecked[Y YearInfo](year Y, month, day uint8) ArithmeticDate[Y] {
	return ArithmeticDate[Y]{Year: year, Month: month, Day: day}
}

// NewFromOrdinals builds a date from a 1-based month and day, failing with
// a *RangeError when either is out of bounds for year.
func NewFromOrdinals[Y YearInfo](a Arithmetic[Y], year Y, month, day uint8) (ArithmeticDate[Y], error) {
	if max := a.MonthsInYear(year); month < 1 || month > max {
		return ArithmeticDate[Y]{}, &RangeError{Field: "month", Value: int32(month), Min: 1, Max: int32(max)}
	}
	if max := a.DaysInMonth(year, month); day < 1 || day > max {
		return ArithmeticDate[Y]{}, &RangeError{Field: "day", Value: int32(day), Min: 1, Max: int32(max)}
	}
	return NewUnchecked(year, month, day), nil
}

// NewFromCodes builds a date from a month code. Leap-month codes and codes
// past the end of the year fail with *UnknownMonthCodeError.
func NewFromCodes[Y YearInfo](a Arithmetic[Y], year Y, code MonthCode, day uint8) (ArithmeticDate[Y], error) {
	month, leap, ok := code.Parse()
	if !ok || leap || month > a.MonthsInYear(year) {
		return ArithmeticDate[Y]{}, &UnknownMonthCodeError{Code: code}
	}
	if max := a.DaysInMonth(year, month); day < 1 || day > max {
		return ArithmeticDate[Y]{}, &RangeError{Field: "day", Value: int32(day), Min: 1, Max: int32(max)}
	}
	return NewUnchecked(year, month, day), nil
}

// MinDate is the first day of the smallest representable year.
func MinDate[Y YearInfo](src YearInfoSource[Y]) ArithmeticDate[Y] {
	return NewUnchecked(src.LoadOrComputeInfo(math.MinInt32), 1, 1)
}

// MaxDate is the last day of the largest representable year.
func MaxDate[Y YearInfo](a Arithmetic[Y], src YearInfoSource[Y]) ArithmeticDate[Y] {
	year := src.LoadOrComputeInfo(math.MaxInt32)
	month, day := a.LastMonthDay(year)
	return NewUnchecked(year, month, day)
}

// DateFromYearDay returns the date of the 1-based dayOfYear in year.
func DateFromYearDay(a Arithmetic[SimpleYear], year int32, dayOfYear uint16) ArithmeticDate[SimpleYear] {
	y := SimpleYear(year)
	month := uint8(1)
	day := int32(dayOfYear)
	for month < a.MonthsInYear(y) {
		n := int32(a.DaysInMonth(y, month))
		if day <= n {
			break
		}
		day -= n
		month++
	}
	calendrical.Assertf(day >= 1 && day <= int32(a.DaysInMonth(y, month)), "day of year %d out of range in %d", dayOfYear, year)
	return NewUnchecked(y, month, uint8(day))
}

// ExtendedYear returns the year number of the date.
func (d ArithmeticDate[Y]) ExtendedYear() int32 {
	return d.Year.ExtendedYear()
}

// Compare orders dates by year, month and day, returning -1, 0 or 1.
func (d ArithmeticDate[Y]) Compare(other ArithmeticDate[Y]) int {
	switch a, b := d.ExtendedYear(), other.ExtendedYear(); {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	switch {
	case d.Month < other.Month:
		return -1
	case d.Month > other.Month:
		return 1
	case d.Day < other.Day:
		return -1
	case d.Day > other.Day:
		return 1
	}
	return 0
}

// DayOfYear returns the 1-based position of the date in its year.
func (d ArithmeticDate[Y]) DayOfYear(a Arithmetic[Y]) uint16 {
	days := uint16(d.Day)
	for m := uint8(1); m < d.Month; m++ {
		days += uint16(a.DaysInMonth(d.Year, m))
	}
	return days
}

// MonthInfo returns the month ordinal and code, with UndefinedMonthCode for
// an ordinal past the end of the year.
func (d ArithmeticDate[Y]) MonthInfo(a Arithmetic[Y]) MonthInfo {
	code := UndefinedMonthCode
	if d.Month >= 1 && d.Month <= a.MonthsInYear(d.Year) {
		code = MonthCodeFromOrdinal(d.Month)
	}
	return MonthInfo{Ordinal: d.Month, Code: code}
}

// OffsetDate applies dur and returns the result. Years move first and
// reload the year data. Months then carry across year boundaries. Finally
// the day resets to 1 and weeks, days and the original day minus one are
// carried month by month, so the day is never clamped to a month's length.
// The cost is linear in the size of the offset.
func (d ArithmeticDate[Y]) OffsetDate(dur DateDuration, a Arithmetic[Y], src YearInfoSource[Y]) ArithmeticDate[Y] {
	if dur.Years != 0 {
		d.Year = src.LoadOrComputeInfo(addYears(d.ExtendedYear(), dur.Years))
	}
	d.offsetMonths(dur.Months, a, src)
	days := int64(dur.Days) + 7*int64(dur.Weeks) + int64(d.Day) - 1
	d.Day = 1
	d.offsetDays(days, a, src)
	return d
}

func (d *ArithmeticDate[Y]) offsetMonths(offset int32, a Arithmetic[Y], src YearInfoSource[Y]) {
	for offset != 0 {
		months := int32(a.MonthsInYear(d.Year))
		month := int32(d.Month)
		switch {
		case month+offset > months:
			d.Year = src.LoadOrComputeInfo(addYears(d.ExtendedYear(), 1))
			offset -= months
		case month+offset < 1:
			d.Year = src.LoadOrComputeInfo(addYears(d.ExtendedYear(), -1))
			offset += int32(a.MonthsInYear(d.Year))
		default:
			d.Month = uint8(month + offset)
			offset = 0
		}
	}
}

func (d *ArithmeticDate[Y]) offsetDays(offset int64, a Arithmetic[Y], src YearInfoSource[Y]) {
	for offset != 0 {
		days := int64(a.DaysInMonth(d.Year, d.Month))
		day := int64(d.Day)
		switch {
		case day+offset > days:
			d.offsetMonths(1, a, src)
			offset -= days
		case day+offset < 1:
			d.offsetMonths(-1, a, src)
			offset += int64(a.DaysInMonth(d.Year, d.Month))
		default:
			d.Day = uint8(day + offset)
			offset = 0
		}
	}
}

// addYears saturates at the int32 bounds instead of wrapping.
func addYears(year, delta int32) int32 {
	return calendrical.SaturatingI32(int64(year) + int64(delta))
}

// Until returns the field-wise difference d - other. No borrowing between
// fields is done, so the result can mix signs; largest and smallest are
// accepted for interface stability and currently ignored.
func (d ArithmeticDate[Y]) Until(other ArithmeticDate[Y], largest, smallest DurationUnit) DateDuration {
	return DateDuration{
		Years:  d.ExtendedYear() - other.ExtendedYear(),
		Months: int32(d.Month) - int32(other.Month),
		Days:   int32(d.Day) - int32(other.Day),
	}
}
