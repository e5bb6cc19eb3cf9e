package calendar

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/carlosjhr64/jd"

	"github.com/zapponejosh/calendrics-api/internal/calendrical"
)

// jdnOffset is the Julian Day Number of RD 0.
const jdnOffset = 1721425

// ParseISODate parses a proleptic Gregorian YYYY-MM-DD date between years 1
// and 9999 into a day number.
func ParseISODate(s string) (calendrical.RataDie, error) {
	fields := strings.Split(s, "-")
	if len(fields) != 3 || len(fields[0]) != 4 || len(fields[1]) != 2 || len(fields[2]) != 2 {
		return 0, fmt.Errorf("%w %q: want YYYY-MM-DD", ErrInvalidDate, s)
	}
	var ymd [3]int
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("%w %q: want YYYY-MM-DD", ErrInvalidDate, s)
		}
		ymd[i] = n
	}
	if ymd[0] < 1 {
		return 0, &RangeError{Field: "year", Value: int32(ymd[0]), Min: 1, Max: 9999}
	}
	if ymd[1] < 1 || ymd[1] > 12 {
		return 0, &RangeError{Field: "month", Value: int32(ymd[1]), Min: 1, Max: 12}
	}

	n, err := jd.ToNumber(s)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %w", ErrInvalidDate, s, err)
	}
	// The Julian day formula rolls impossible days into the next month.
	if y, m, d := jd.J2YMD(n); y != ymd[0] || m != ymd[1] || d != ymd[2] {
		last := int32(calendrical.DaysInGregorianMonth(int32(ymd[0]), uint8(ymd[1])))
		return 0, &RangeError{Field: "day", Value: int32(ymd[2]), Min: 1, Max: last}
	}
	return calendrical.NewRataDie(int64(n - jdnOffset)), nil
}

// FormatISODate formats a day number as a proleptic Gregorian date. Years
// before 0 are written with a sign and years beyond 9999 are not padded.
func FormatISODate(rd calendrical.RataDie) string {
	if rd >= 1 && rd <= maxISODay {
		y, m, d := jd.J2YMD(int(rd.Int64() + jdnOffset))
		return fmt.Sprintf("%04d-%02d-%02d", y, m, d)
	}
	d := ISO{}.FromRataDie(rd)
	return formatYMD(d.ExtendedYear(), d.Month().Ordinal, d.DayOfMonth())
}

// maxISODay is 9999-12-31.
const maxISODay calendrical.RataDie = 3652059
