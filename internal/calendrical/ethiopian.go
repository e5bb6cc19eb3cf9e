package calendrical

// EthiopianEpoch is 0001-01-01 Amete Mihret.
var EthiopianEpoch = FixedFromJulian(8, 8, 29)

// AmeteAlemOffset is the difference between Amete Alem (year of the world)
// and Amete Mihret (year of mercy) year numbers.
const AmeteAlemOffset = 5500

// IsEthiopianLeapYear reports whether the Amete Mihret year is a leap year.
func IsEthiopianLeapYear(year int32) bool {
	return RemEuclid(int64(year), 4) == 3
}

// FixedFromEthiopian returns the day number of an Ethiopian date with an
// Amete Mihret (incarnation era) year.
func FixedFromEthiopian(year int32, month, day uint8) RataDie {
	y := int64(year)
	return EthiopianEpoch - 1 + RataDie(365*(y-1)+DivEuclid(y, 4)+30*(int64(month)-1)+int64(day))
}

// EthiopianFromFixed returns the Ethiopian date of date with an Amete Mihret
// year. A CastError is returned when the year does not fit in an int32.
func EthiopianFromFixed(date RataDie) (int32, uint8, uint8, error) {
	year, err := I64ToI32(DivEuclid(4*daysSince(date, EthiopianEpoch)+1463, 1461))
	if err != nil {
		return 0, 0, 0, err
	}
	month := uint8(DivEuclid(int64(date-FixedFromEthiopian(year, 1, 1)), 30) + 1)
	day := uint8(date + 1 - FixedFromEthiopian(year, month, 1))
	return year, month, day, nil
}
