package calendar

import (
	"errors"

	"github.com/zapponejosh/calendrics-api/internal/calendrical"
)

// EthiopianEraStyle selects how Ethiopian years are named.
type EthiopianEraStyle int

const (
	// AmeteMihret counts years from the Incarnation ("am"), with earlier
	// years in the Amete Alem era ("aa").
	AmeteMihret EthiopianEraStyle = iota
	// AmeteAlem counts every year from the creation ("aa").
	AmeteAlem
)

// Ethiopian is the Ethiopian calendar: twelve 30-day months and a thirteenth
// month of five days, six in leap years. Dates are stored with Amete Mihret
// year numbers.
type Ethiopian struct {
	IdentitySource
	Style EthiopianEraStyle
}

var _ Calendar = Ethiopian{}

func (c Ethiopian) Name() string {
	if c.Style == AmeteAlem {
		return "ethiopian-amete-alem"
	}
	return "ethiopian"
}

func (Ethiopian) DaysInMonth(year SimpleYear, month uint8) uint8 {
	switch {
	case month >= 1 && month <= 12:
		return 30
	case month == 13 && calendrical.IsEthiopianLeapYear(int32(year)):
		return 6
	case month == 13:
		return 5
	}
	return 0
}

func (Ethiopian) MonthsInYear(SimpleYear) uint8 { return 13 }

func (Ethiopian) IsLeapYear(year SimpleYear) bool {
	return calendrical.IsEthiopianLeapYear(int32(year))
}

func (c Ethiopian) LastMonthDay(year SimpleYear) (uint8, uint8) {
	return 13, c.DaysInMonth(year, 13)
}

func (c Ethiopian) DaysInYear(year SimpleYear) uint16 {
	if c.IsLeapYear(year) {
		return 366
	}
	return 365
}

func (c Ethiopian) FromCodes(era string, year int32, code MonthCode, day uint8) (Date, error) {
	var err error
	switch {
	case era == "am":
		year, err = yearAtLeast(year, 1)
	case era == "aa" && c.Style == AmeteMihret:
		year, err = yearAtMost(year, calendrical.AmeteAlemOffset)
		year = addYears(year, -calendrical.AmeteAlemOffset)
	case era == "aa", era == "" && c.Style == AmeteAlem:
		year = addYears(year, -calendrical.AmeteAlemOffset)
	case era == "":
	default:
		return nil, ErrUnknownEra
	}
	if err != nil {
		return nil, err
	}
	inner, err := NewFromCodes[SimpleYear](c, SimpleYear(year), code, day)
	if err != nil {
		return nil, err
	}
	return wrap[SimpleYear](c, inner), nil
}

// FromOrdinals takes an extended year in the calendar's era style.
func (c Ethiopian) FromOrdinals(year int32, month, day uint8) (Date, error) {
	if c.Style == AmeteAlem {
		year = addYears(year, -calendrical.AmeteAlemOffset)
	}
	inner, err := NewFromOrdinals[SimpleYear](c, SimpleYear(year), month, day)
	if err != nil {
		return nil, err
	}
	return wrap[SimpleYear](c, inner), nil
}

func (c Ethiopian) FromRataDie(rd calendrical.RataDie) Date {
	y, m, d, err := calendrical.EthiopianFromFixed(rd)
	var cast calendrical.CastError
	if errors.As(err, &cast) {
		if cast == calendrical.BelowMin {
			return wrap[SimpleYear](c, MinDate[SimpleYear](c))
		}
		return wrap[SimpleYear](c, MaxDate[SimpleYear](c, c))
	}
	return wrap[SimpleYear](c, NewUnchecked(SimpleYear(y), m, d))
}

func (Ethiopian) toRataDie(d ArithmeticDate[SimpleYear]) calendrical.RataDie {
	return calendrical.FixedFromEthiopian(int32(d.Year), d.Month, d.Day)
}

func (c Ethiopian) extendedYear(stored int32) int32 {
	if c.Style == AmeteAlem {
		return addYears(stored, calendrical.AmeteAlemOffset)
	}
	return stored
}

func (c Ethiopian) eraYear(extended int32) EraYear {
	switch {
	case c.Style == AmeteAlem:
		return EraYear{Era: "aa", Year: extended}
	case extended > 0:
		return EraYear{Era: "am", Year: extended}
	}
	return EraYear{Era: "aa", Year: addYears(extended, calendrical.AmeteAlemOffset)}
}
