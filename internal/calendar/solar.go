package calendar

import (
	"errors"

	"github.com/zapponejosh/calendrics-api/internal/calendrical"
)

// solarArithmetic is the proleptic Gregorian month structure shared by
// ISO, Gregorian and Buddhist dates.
type solarArithmetic struct{}

func (solarArithmetic) DaysInMonth(year SimpleYear, month uint8) uint8 {
	return calendrical.DaysInGregorianMonth(int32(year), month)
}

func (solarArithmetic) MonthsInYear(SimpleYear) uint8 { return 12 }

func (solarArithmetic) IsLeapYear(year SimpleYear) bool {
	return calendrical.IsGregorianLeapYear(int32(year))
}

func (solarArithmetic) LastMonthDay(SimpleYear) (uint8, uint8) { return 12, 31 }

func (a solarArithmetic) DaysInYear(year SimpleYear) uint16 {
	if a.IsLeapYear(year) {
		return 366
	}
	return 365
}

func (solarArithmetic) toRataDie(d ArithmeticDate[SimpleYear]) calendrical.RataDie {
	return calendrical.FixedFromGregorian(int32(d.Year), d.Month, d.Day)
}

func (solarArithmetic) extendedYear(stored int32) int32 { return stored }

// solarFromRataDie converts rd, saturating to the extreme dates when the
// year overflows.
func solarFromRataDie(rd calendrical.RataDie) ArithmeticDate[SimpleYear] {
	y, m, d, err := calendrical.GregorianFromFixed(rd)
	var cast calendrical.CastError
	if errors.As(err, &cast) {
		if cast == calendrical.BelowMin {
			return MinDate[SimpleYear](IdentitySource{})
		}
		return MaxDate[SimpleYear](solarArithmetic{}, IdentitySource{})
	}
	return NewUnchecked(SimpleYear(y), m, d)
}

// ============================================================================
// ISO
// ============================================================================

// ISO is the proleptic Gregorian calendar with a single era and year 0.
type ISO struct {
	solarArithmetic
	IdentitySource
}

var _ Calendar = ISO{}

func (ISO) Name() string { return "iso" }

func (c ISO) FromCodes(era string, year int32, code MonthCode, day uint8) (Date, error) {
	if era != "" && era != "default" {
		return nil, ErrUnknownEra
	}
	inner, err := NewFromCodes[SimpleYear](c, SimpleYear(year), code, day)
	if err != nil {
		return nil, err
	}
	return wrap[SimpleYear](c, inner), nil
}

func (c ISO) FromOrdinals(year int32, month, day uint8) (Date, error) {
	inner, err := NewFromOrdinals[SimpleYear](c, SimpleYear(year), month, day)
	if err != nil {
		return nil, err
	}
	return wrap[SimpleYear](c, inner), nil
}

func (c ISO) FromRataDie(rd calendrical.RataDie) Date {
	return wrap[SimpleYear](c, solarFromRataDie(rd))
}

func (ISO) eraYear(extended int32) EraYear {
	return EraYear{Era: "default", Year: extended}
}

// ============================================================================
// Gregorian
// ============================================================================

// Gregorian is the proleptic Gregorian calendar with the ce and bce eras.
type Gregorian struct {
	solarArithmetic
	IdentitySource
}

var _ Calendar = Gregorian{}

func (Gregorian) Name() string { return "gregorian" }

func (c Gregorian) FromCodes(era string, year int32, code MonthCode, day uint8) (Date, error) {
	var err error
	switch era {
	case "":
	case "ce", "ad":
		year, err = yearAtLeast(year, 1)
	case "bce", "bc":
		year, err = yearAtLeast(year, 1)
		year = 1 - year
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

func (c Gregorian) FromOrdinals(year int32, month, day uint8) (Date, error) {
	inner, err := NewFromOrdinals[SimpleYear](c, SimpleYear(year), month, day)
	if err != nil {
		return nil, err
	}
	return wrap[SimpleYear](c, inner), nil
}

func (c Gregorian) FromRataDie(rd calendrical.RataDie) Date {
	return wrap[SimpleYear](c, solarFromRataDie(rd))
}

func (Gregorian) eraYear(extended int32) EraYear {
	if extended > 0 {
		return EraYear{Era: "ce", Year: extended}
	}
	return EraYear{Era: "bce", Year: 1 - extended}
}

// ============================================================================
// Buddhist
// ============================================================================

// BuddhistEraOffset is added to an ISO year to get the Buddhist year.
const BuddhistEraOffset = 543

// Buddhist is the Thai solar calendar. Dates are stored as ISO dates and
// the era offset applies only to year numbers in and out.
type Buddhist struct {
	solarArithmetic
	IdentitySource
}

var _ Calendar = Buddhist{}

func (Buddhist) Name() string { return "buddhist" }

func (c Buddhist) FromCodes(era string, year int32, code MonthCode, day uint8) (Date, error) {
	if era != "" && era != "be" {
		return nil, ErrUnknownEra
	}
	inner, err := NewFromCodes[SimpleYear](c, SimpleYear(addYears(year, -BuddhistEraOffset)), code, day)
	if err != nil {
		return nil, err
	}
	return wrap[SimpleYear](c, inner), nil
}

func (c Buddhist) FromOrdinals(year int32, month, day uint8) (Date, error) {
	inner, err := NewFromOrdinals[SimpleYear](c, SimpleYear(addYears(year, -BuddhistEraOffset)), month, day)
	if err != nil {
		return nil, err
	}
	return wrap[SimpleYear](c, inner), nil
}

func (c Buddhist) FromRataDie(rd calendrical.RataDie) Date {
	return wrap[SimpleYear](c, solarFromRataDie(rd))
}

func (Buddhist) extendedYear(stored int32) int32 { return addYears(stored, BuddhistEraOffset) }

func (Buddhist) eraYear(extended int32) EraYear {
	return EraYear{Era: "be", Year: extended}
}
