package calendar

import (
	"fmt"
	"strconv"
)

// MonthCode identifies a month independently of its ordinal, e.g. "M01" or
// "M05L" for a leap month.
type MonthCode string

// UndefinedMonthCode is reported for ordinals outside the year.
const UndefinedMonthCode MonthCode = "und"

// MonthCodeFromOrdinal returns the standard code of a 1-based month, or
// UndefinedMonthCode when ordinal is not in 1..13.
func MonthCodeFromOrdinal(ordinal uint8) MonthCode {
	if ordinal < 1 || ordinal > 13 {
		return UndefinedMonthCode
	}
	return MonthCode(fmt.Sprintf("M%02d", ordinal))
}

// Parse splits the code into its month number and leap flag. ok is false
// for anything other than "Mnn" or "MnnL" with nn in 01..99.
func (c MonthCode) Parse() (month uint8, leap, ok bool) {
	s := string(c)
	switch {
	case len(s) == 4 && s[3] == 'L':
		leap = true
		s = s[:3]
	case len(s) != 3:
		return 0, false, false
	}
	if s[0] != 'M' || s[1] < '0' || s[1] > '9' || s[2] < '0' || s[2] > '9' {
		return 0, false, false
	}
	n, err := strconv.ParseUint(s[1:], 10, 8)
	if err != nil || n == 0 {
		return 0, false, false
	}
	return uint8(n), leap, true
}

// MonthInfo describes the month of a date.
type MonthInfo struct {
	Ordinal uint8     `json:"ordinal" yaml:"ordinal"`
	Code    MonthCode `json:"code" yaml:"code"`
}
