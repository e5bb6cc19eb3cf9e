package calendar

import (
	"log/slog"
	"math"

	"github.com/zapponejosh/calendrics-api/internal/calendrical"
)

// Lengths of common and leap Hijri years.
const (
	hijriShortYear = 354
	hijriLongYear  = 355
)

func hijriEraYear(extended int32) EraYear {
	if extended > 0 {
		return EraYear{Era: "ah", Year: extended}
	}
	return EraYear{Era: "bh", Year: 1 - extended}
}

// hijriExtendedYear resolves an ah or bh era year.
func hijriExtendedYear(era string, year int32) (int32, error) {
	switch era {
	case "", "ah":
		return yearAtLeast(year, 1)
	case "bh":
		y, err := yearAtLeast(year, 1)
		return 1 - y, err
	}
	return 0, ErrUnknownEra
}

// ============================================================================
// Tabular
// ============================================================================

// TabularEpoch selects the starting day of a tabular Hijri calendar.
type TabularEpoch int

const (
	// EpochFriday is the civil epoch, 622-07-16 Julian.
	EpochFriday TabularEpoch = iota
	// EpochThursday is the astronomical epoch, 622-07-15 Julian.
	EpochThursday
)

// RataDie returns the day number of the epoch.
func (e TabularEpoch) RataDie() calendrical.RataDie {
	if e == EpochThursday {
		return calendrical.IslamicEpochThursday
	}
	return calendrical.IslamicEpochFriday
}

// HijriTabular is the arithmetic Hijri calendar with the type II leap
// year rule: 11 leap years in every 30.
type HijriTabular struct {
	IdentitySource
	Epoch TabularEpoch
}

var _ Calendar = HijriTabular{}

func (c HijriTabular) Name() string {
	if c.Epoch == EpochThursday {
		return "hijri-tabular-thursday"
	}
	return "hijri-tabular-friday"
}

func (c HijriTabular) DaysInMonth(year SimpleYear, month uint8) uint8 {
	switch month {
	case 1, 3, 5, 7, 9, 11:
		return 30
	case 2, 4, 6, 8, 10:
		return 29
	case 12:
		if c.IsLeapYear(year) {
			return 30
		}
		return 29
	}
	return 0
}

func (HijriTabular) MonthsInYear(SimpleYear) uint8 { return 12 }

func (HijriTabular) IsLeapYear(year SimpleYear) bool {
	return calendrical.IsTabularIslamicLeapYear(int32(year))
}

func (c HijriTabular) LastMonthDay(year SimpleYear) (uint8, uint8) {
	return 12, c.DaysInMonth(year, 12)
}

func (c HijriTabular) DaysInYear(year SimpleYear) uint16 {
	if c.IsLeapYear(year) {
		return hijriLongYear
	}
	return hijriShortYear
}

func (c HijriTabular) FromCodes(era string, year int32, code MonthCode, day uint8) (Date, error) {
	year, err := hijriExtendedYear(era, year)
	if err != nil {
		return nil, err
	}
	inner, err := NewFromCodes[SimpleYear](c, SimpleYear(year), code, day)
	if err != nil {
		return nil, err
	}
	return wrap[SimpleYear](c, inner), nil
}

func (c HijriTabular) FromOrdinals(year int32, month, day uint8) (Date, error) {
	inner, err := NewFromOrdinals[SimpleYear](c, SimpleYear(year), month, day)
	if err != nil {
		return nil, err
	}
	return wrap[SimpleYear](c, inner), nil
}

func (c HijriTabular) FromRataDie(rd calendrical.RataDie) Date {
	y, m, d := calendrical.TabularIslamicFromFixed(rd, c.Epoch.RataDie())
	return wrap[SimpleYear](c, NewUnchecked(SimpleYear(y), m, d))
}

func (c HijriTabular) toRataDie(d ArithmeticDate[SimpleYear]) calendrical.RataDie {
	return calendrical.FixedFromTabularIslamic(int32(d.Year), d.Month, d.Day, c.Epoch.RataDie())
}

func (HijriTabular) extendedYear(stored int32) int32 { return stored }

func (HijriTabular) eraYear(extended int32) EraYear { return hijriEraYear(extended) }

// ============================================================================
// Year info
// ============================================================================

// HijriYearInfo is a Hijri year whose month lengths were resolved from
// astronomy.
type HijriYearInfo struct {
	// MonthLengths is true for each 30-day month and false for 29.
	MonthLengths [12]bool
	StartDay     calendrical.RataDie
	Value        int32
}

// ExtendedYear returns the year number.
func (y HijriYearInfo) ExtendedYear() int32 { return y.Value }

// DaysInMonth returns 29 or 30, and 29 for an invalid month.
func (y HijriYearInfo) DaysInMonth(month uint8) uint8 {
	if month >= 1 && month <= 12 && y.MonthLengths[month-1] {
		return 30
	}
	return 29
}

// DaysInYear returns the sum of the month lengths.
func (y HijriYearInfo) DaysInYear() uint16 {
	return y.lastDayOfMonth(12)
}

// lastDayOfMonth returns the day of year on which month ends. Months past
// 12 count as 29 days.
func (y HijriYearInfo) lastDayOfMonth(month uint8) uint16 {
	days := 29 * uint16(month)
	for i := 0; i < int(month) && i < 12; i++ {
		if y.MonthLengths[i] {
			days++
		}
	}
	return days
}

func (y HijriYearInfo) rataDie(month, day uint8) calendrical.RataDie {
	var offset uint16
	if month > 1 {
		offset = y.lastDayOfMonth(month - 1)
	}
	return y.StartDay + calendrical.RataDie(offset) + calendrical.RataDie(day) - 1
}

func (y HijriYearInfo) monthDay(rd calendrical.RataDie) (uint8, uint8) {
	dayOfYear := uint16(rd-y.StartDay) + 1
	calendrical.Assertf(dayOfYear <= 360, "day %d of Hijri year %d", dayOfYear, y.Value)
	month := uint8(min((dayOfYear-1)/30, 11)) + 1
	last := y.lastDayOfMonth(month)
	var prev uint16
	if month > 1 {
		prev = y.lastDayOfMonth(month - 1)
	}
	for dayOfYear > last && month < 12 {
		month++
		prev = last
		last = y.lastDayOfMonth(month)
	}
	calendrical.Assertf(dayOfYear-prev <= 30, "day %d does not fit month %d of %d", dayOfYear-prev, month, y.Value)
	return month, uint8(dayOfYear - prev)
}

// monthLengthFlags turns resolved month lengths into flags. A 31-day month
// counts as 30 and lends its extra day to the first 29-day month so the
// year keeps its length.
func monthLengthFlags(calendar string, year int32, lengths [12]int64, logger *slog.Logger) [12]bool {
	var flags [12]bool
	excess := 0
	for i, n := range lengths {
		switch {
		case n == 29:
		case n == 30:
			flags[i] = true
		case n == 31:
			logger.Debug("hijri month longer than 30 days",
				slog.String("calendar", calendar),
				slog.Int("year", int(year)),
				slog.Int("month", i+1),
			)
			flags[i] = true
			excess++
		default:
			calendrical.Assertf(false, "%s: year %d month %d has %d days", calendar, year, i+1, n)
		}
	}
	calendrical.Assertf(excess <= 1, "%s: year %d has %d excess days", calendar, year, excess)
	for i := range flags {
		if excess == 0 {
			break
		}
		if !flags[i] {
			flags[i] = true
			excess--
		}
	}
	return flags
}

func checkYearLength(calendar string, year int32, days int64, logger *slog.Logger) {
	switch days {
	case hijriShortYear, hijriLongYear:
	case 353:
		logger.Debug("hijri year of 353 days",
			slog.String("calendar", calendar),
			slog.Int("year", int(year)),
		)
	default:
		calendrical.Assertf(false, "%s: year %d has %d days", calendar, year, days)
	}
}

func orDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return logger
}

// ============================================================================
// Astronomical Hijri calendars
// ============================================================================

// HijriAstronomical is a Hijri calendar whose months are resolved from
// astronomy, one year at a time, through a YearInfoSource.
type HijriAstronomical struct {
	name   string
	source YearInfoSource[HijriYearInfo]
}

var _ Calendar = (*HijriAstronomical)(nil)

// Names of the astronomical Hijri calendars.
const (
	HijriSimulatedMeccaName = "hijri-simulated-mecca"
	HijriUmmAlQuraName      = "hijri-umm-al-qura"
)

// ComputeSimulatedYear resolves a year of the observational calendar at
// the location of obs.
func ComputeSimulatedYear(obs calendrical.ObservationalIslamic, year int32, logger *slog.Logger) HijriYearInfo {
	logger = orDiscard(logger)
	start := obs.FixedFromDate(year, 1, 1)
	next := obs.FixedFromDate(addYears(year, 1), 1, 1)
	checkYearLength(HijriSimulatedMeccaName, year, next.Sub(start), logger)

	var lengths [12]int64
	for m := range lengths {
		lengths[m] = int64(obs.MonthDays(year, uint8(m+1)))
	}
	return HijriYearInfo{
		MonthLengths: monthLengthFlags(HijriSimulatedMeccaName, year, lengths, logger),
		StartDay:     start,
		Value:        year,
	}
}

// ComputeUmmAlQuraYear resolves a year of the Saudi calendar from the
// start of each month and of the following year.
func ComputeUmmAlQuraYear(saudi calendrical.SaudiIslamic, year int32, logger *slog.Logger) HijriYearInfo {
	logger = orDiscard(logger)
	var starts [13]calendrical.RataDie
	for m := 0; m < 12; m++ {
		starts[m] = saudi.MonthStart(year, uint8(m+1))
	}
	starts[12] = saudi.MonthStart(addYears(year, 1), 1)
	checkYearLength(HijriUmmAlQuraName, year, starts[12].Sub(starts[0]), logger)

	var lengths [12]int64
	for m := range lengths {
		lengths[m] = starts[m+1].Sub(starts[m])
	}
	return HijriYearInfo{
		MonthLengths: monthLengthFlags(HijriUmmAlQuraName, year, lengths, logger),
		StartDay:     starts[0],
		Value:        year,
	}
}

// NewHijriSimulatedMecca returns the observational calendar at Mecca,
// computing each year directly.
func NewHijriSimulatedMecca(eph calendrical.Ephemeris, logger *slog.Logger) *HijriAstronomical {
	obs := calendrical.ObservationalIslamic{Ephemeris: eph, Location: calendrical.Mecca}
	return NewHijriAstronomical(HijriSimulatedMeccaName, computeFunc(func(y int32) HijriYearInfo {
		return ComputeSimulatedYear(obs, y, logger)
	}))
}

// NewHijriUmmAlQura returns the Saudi calendar, computing each year
// directly.
func NewHijriUmmAlQura(eph calendrical.Ephemeris, logger *slog.Logger) *HijriAstronomical {
	saudi := calendrical.SaudiIslamic{Ephemeris: eph}
	return NewHijriAstronomical(HijriUmmAlQuraName, computeFunc(func(y int32) HijriYearInfo {
		return ComputeUmmAlQuraYear(saudi, y, logger)
	}))
}

// NewHijriAstronomical returns a calendar named name drawing years from
// source, typically a *CachingSource.
func NewHijriAstronomical(name string, source YearInfoSource[HijriYearInfo]) *HijriAstronomical {
	return &HijriAstronomical{name: name, source: source}
}

type computeFunc func(int32) HijriYearInfo

func (f computeFunc) LoadOrComputeInfo(extendedYear int32) HijriYearInfo { return f(extendedYear) }

func (c *HijriAstronomical) Name() string { return c.name }

func (c *HijriAstronomical) LoadOrComputeInfo(extendedYear int32) HijriYearInfo {
	return c.source.LoadOrComputeInfo(extendedYear)
}

func (*HijriAstronomical) DaysInMonth(year HijriYearInfo, month uint8) uint8 {
	return year.DaysInMonth(month)
}

func (*HijriAstronomical) MonthsInYear(HijriYearInfo) uint8 { return 12 }

func (*HijriAstronomical) IsLeapYear(year HijriYearInfo) bool {
	return year.DaysInYear() != hijriShortYear
}

func (*HijriAstronomical) LastMonthDay(year HijriYearInfo) (uint8, uint8) {
	return 12, year.DaysInMonth(12)
}

func (*HijriAstronomical) DaysInYear(year HijriYearInfo) uint16 { return year.DaysInYear() }

func (c *HijriAstronomical) FromCodes(era string, year int32, code MonthCode, day uint8) (Date, error) {
	year, err := hijriExtendedYear(era, year)
	if err != nil {
		return nil, err
	}
	month, leap, ok := code.Parse()
	if !ok || leap {
		return nil, &UnknownMonthCodeError{Code: code}
	}
	return c.FromOrdinals(year, month, day)
}

func (c *HijriAstronomical) FromOrdinals(year int32, month, day uint8) (Date, error) {
	inner, err := NewFromOrdinals[HijriYearInfo](c, c.LoadOrComputeInfo(year), month, day)
	if err != nil {
		return nil, err
	}
	return wrap[HijriYearInfo](c, inner), nil
}

// FromRataDie estimates the year from the mean year length and corrects by
// at most one year either way.
func (c *HijriAstronomical) FromRataDie(rd calendrical.RataDie) Date {
	estimate := float64(rd-calendrical.IslamicEpochFriday) / calendrical.MeanIslamicYear
	extended := addYears(calendrical.SaturatingI32(int64(math.Max(math.Min(estimate, math.MaxInt32), math.MinInt32))), 1)

	year := c.LoadOrComputeInfo(extended)
	if rd < year.StartDay {
		year = c.LoadOrComputeInfo(addYears(extended, -1))
	} else if next := c.LoadOrComputeInfo(addYears(extended, 1)); rd >= next.StartDay {
		year = next
	}
	m, d := year.monthDay(rd)
	return wrap[HijriYearInfo](c, NewUnchecked(year, m, d))
}

func (*HijriAstronomical) toRataDie(d ArithmeticDate[HijriYearInfo]) calendrical.RataDie {
	return d.Year.rataDie(d.Month, d.Day)
}

func (*HijriAstronomical) extendedYear(stored int32) int32 { return stored }

func (*HijriAstronomical) eraYear(extended int32) EraYear { return hijriEraYear(extended) }
