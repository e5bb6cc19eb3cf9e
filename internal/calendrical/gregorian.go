package calendrical

// Fixed day numbers of calendar epochs.
const (
	GregorianEpoch RataDie = 1
	// JulianEpoch is 0001-01-01 in the proleptic Julian calendar.
	JulianEpoch RataDie = -1
)

// IsGregorianLeapYear reports whether year is a leap year in the proleptic
// Gregorian calendar. Year 0 is 1 BCE.
func IsGregorianLeapYear(year int32) bool {
	y := int64(year)
	return RemEuclid(y, 4) == 0 && (RemEuclid(y, 400) == 0 || RemEuclid(y, 100) != 0)
}

// DaysInGregorianMonth returns the length of month in year, or 0 for an
// invalid month.
func DaysInGregorianMonth(year int32, month uint8) uint8 {
	switch month {
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsGregorianLeapYear(year) {
			return 29
		}
		return 28
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	}
	return 0
}

// FixedFromGregorian returns the day number of a proleptic Gregorian date.
func FixedFromGregorian(year int32, month, day uint8) RataDie {
	y := int64(year) - 1
	m := int64(month)
	fixed := int64(GregorianEpoch) - 1 + 365*y + DivEuclid(y, 4) - DivEuclid(y, 100) + DivEuclid(y, 400) +
		DivEuclid(367*m-362, 12)
	if month > 2 {
		if IsGregorianLeapYear(year) {
			fixed--
		} else {
			fixed -= 2
		}
	}
	return RataDie(fixed + int64(day))
}

// GregorianYearFromFixed returns the Gregorian year containing date.
func GregorianYearFromFixed(date RataDie) (int32, error) {
	d0 := daysSince(date, GregorianEpoch)
	n400 := DivEuclid(d0, 146097)
	d1 := RemEuclid(d0, 146097)
	n100 := DivEuclid(d1, 36524)
	d2 := RemEuclid(d1, 36524)
	n4 := DivEuclid(d2, 1461)
	d3 := RemEuclid(d2, 1461)
	n1 := DivEuclid(d3, 365)
	year := 400*n400 + 100*n100 + 4*n4 + n1
	if n100 != 4 && n1 != 4 {
		year++
	}
	return I64ToI32(year)
}

// GregorianFromFixed returns the proleptic Gregorian date of date. A
// CastError is returned when the year does not fit in an int32.
func GregorianFromFixed(date RataDie) (int32, uint8, uint8, error) {
	year, err := GregorianYearFromFixed(date)
	if err != nil {
		return 0, 0, 0, err
	}
	prior := int64(date - FixedFromGregorian(year, 1, 1))
	var correction int64
	switch {
	case date < FixedFromGregorian(year, 3, 1):
		correction = 0
	case IsGregorianLeapYear(year):
		correction = 1
	default:
		correction = 2
	}
	month := uint8(DivEuclid(12*(prior+correction)+373, 367))
	day := uint8(date - FixedFromGregorian(year, month, 1) + 1)
	return year, month, day, nil
}

// DayOfWeek returns the weekday of date, 0 for Sunday through 6 for Saturday.
func DayOfWeek(date RataDie) uint8 {
	return uint8(RemEuclid(int64(date), 7))
}

// KDayOnOrBefore returns the last weekday k (0 = Sunday) on or before date.
func KDayOnOrBefore(k uint8, date RataDie) RataDie {
	return date - RataDie(RemEuclid(int64(date)-int64(k), 7))
}

// KDayAfter returns the first weekday k (0 = Sunday) strictly after date.
func KDayAfter(k uint8, date RataDie) RataDie {
	return KDayOnOrBefore(k, date+7)
}

// IsJulianLeapYear reports whether year is a leap year in the proleptic
// Julian calendar with astronomical year numbering.
func IsJulianLeapYear(year int32) bool {
	return RemEuclid(int64(year), 4) == 0
}

// FixedFromJulian returns the day number of a proleptic Julian date.
// Year 0 precedes year 1.
func FixedFromJulian(year int32, month, day uint8) RataDie {
	y := int64(year) - 1
	m := int64(month)
	fixed := int64(JulianEpoch) - 1 + 365*y + DivEuclid(y, 4) + DivEuclid(367*m-362, 12)
	if month > 2 {
		if IsJulianLeapYear(year) {
			fixed--
		} else {
			fixed -= 2
		}
	}
	return RataDie(fixed + int64(day))
}

// JulianFromFixed returns the proleptic Julian date of date.
func JulianFromFixed(date RataDie) (int32, uint8, uint8, error) {
	year, err := I64ToI32(DivEuclid(4*daysSince(date, JulianEpoch)+1464, 1461))
	if err != nil {
		return 0, 0, 0, err
	}
	prior := int64(date - FixedFromJulian(year, 1, 1))
	var correction int64
	switch {
	case date < FixedFromJulian(year, 3, 1):
		correction = 0
	case IsJulianLeapYear(year):
		correction = 1
	default:
		correction = 2
	}
	month := uint8(DivEuclid(12*(prior+correction)+373, 367))
	day := uint8(date - FixedFromJulian(year, month, 1) + 1)
	return year, month, day, nil
}
