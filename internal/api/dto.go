package api

import (
	"time"

	"github.com/zapponejosh/calendrics-api/internal/astronomy"
	"github.com/zapponejosh/calendrics-api/internal/calendar"
	"github.com/zapponejosh/calendrics-api/internal/calendrical"
)

// DateInfo describes one day in one calendar.
type DateInfo struct {
	Calendar     string             `json:"calendar"`
	RataDie      int64              `json:"rd"`
	ISO          string             `json:"iso"`
	Era          string             `json:"era"`
	Year         int32              `json:"year"`
	ExtendedYear int32              `json:"extended_year"`
	Month        calendar.MonthInfo `json:"month"`
	Day          uint8              `json:"day"`
	DayOfYear    uint16             `json:"day_of_year"`
	DaysInMonth  uint8              `json:"days_in_month"`
	DaysInYear   uint16             `json:"days_in_year"`
	MonthsInYear uint8              `json:"months_in_year"`
	LeapYear     bool               `json:"leap_year"`
	Weekday      string             `json:"weekday"`
}

func newDateInfo(d calendar.Date) DateInfo {
	rd := d.RataDie()
	ey := d.EraYear()
	return DateInfo{
		Calendar:     d.Calendar().Name(),
		RataDie:      rd.Int64(),
		ISO:          calendar.FormatISODate(rd),
		Era:          ey.Era,
		Year:         ey.Year,
		ExtendedYear: d.ExtendedYear(),
		Month:        d.Month(),
		Day:          d.DayOfMonth(),
		DayOfYear:    d.DayOfYear(),
		DaysInMonth:  d.DaysInMonth(),
		DaysInYear:   d.DaysInYear(),
		MonthsInYear: d.MonthsInYear(),
		LeapYear:     d.IsInLeapYear(),
		Weekday:      time.Weekday(calendrical.DayOfWeek(rd)).String(),
	}
}

// Instant is a point in time in universal and local standard time.
type Instant struct {
	Moment float64   `json:"moment"`
	UTC    time.Time `json:"utc"`
	Local  time.Time `json:"local"`
}

func newInstant(universal calendrical.Moment, loc calendrical.Location) Instant {
	t := astronomy.TimeFromMoment(universal)
	return Instant{
		Moment: universal.Inner(),
		UTC:    t,
		Local:  t.In(astronomy.Zone(loc)),
	}
}

// LocationInfo echoes the observation point of an astronomy response. The
// UTC offset is in hours.
type LocationInfo struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Elevation float64 `json:"elevation"`
	UTCOffset float64 `json:"utc_offset"`
}

func newLocationInfo(loc calendrical.Location) LocationInfo {
	return LocationInfo{
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
		Elevation: loc.Elevation,
		UTCOffset: loc.UTCOffset * 24,
	}
}

// NewMoonInfo brackets a day with the new moons around it.
type NewMoonInfo struct {
	Date   string  `json:"date"`
	Before Instant `json:"before"`
	After  Instant `json:"after"`
}

// CrescentInfo reports crescent visibility around a day.
type CrescentInfo struct {
	Date     string       `json:"date"`
	Location LocationInfo `json:"location"`
	// Visible is the Shaukat criterion at the observer on the eve of Date.
	Visible     bool   `json:"visible"`
	Phasis      string `json:"phasis"`
	MonthLength uint8  `json:"month_length"`
	// The Umm al-Qura fields are always evaluated at Mecca.
	UmmAlQuraCriterion  bool   `json:"umm_al_qura_criterion"`
	UmmAlQuraMonthStart string `json:"umm_al_qura_month_start"`
}

// SunInfo gives sunrise and sunset for a day. The times are nil when the
// sun does not rise or set.
type SunInfo struct {
	Date     string       `json:"date"`
	Location LocationInfo `json:"location"`
	Sunrise  *time.Time   `json:"sunrise"`
	Sunset   *time.Time   `json:"sunset"`
	// AstronomicalSunset is the refraction-corrected sunset of the
	// crescent computations.
	AstronomicalSunset *time.Time `json:"astronomical_sunset"`
}

// SeasonInfo is one equinox or solstice.
type SeasonInfo struct {
	Season string    `json:"season"`
	Date   string    `json:"date"`
	UTC    time.Time `json:"utc"`
	Moment float64   `json:"moment"`
}

// EasterInfo gives the Easter dates of a year.
type EasterInfo struct {
	Year     int32      `json:"year"`
	Western  string     `json:"western"`
	Orthodox string     `json:"orthodox"`
	Feasts   FeastsInfo `json:"western_feasts"`
}

// FeastsInfo lists the Western movable feasts.
type FeastsInfo struct {
	AshWednesday string `json:"ash_wednesday"`
	Easter       string `json:"easter"`
	Ascension    string `json:"ascension"`
	Pentecost    string `json:"pentecost"`
	Advent       string `json:"advent"`
}

func newEasterInfo(year int32) EasterInfo {
	f := calendar.WesternFeasts(year)
	return EasterInfo{
		Year:     year,
		Western:  calendar.FormatISODate(calendar.EasterWestern(year)),
		Orthodox: calendar.FormatISODate(calendar.EasterOrthodox(year)),
		Feasts: FeastsInfo{
			AshWednesday: calendar.FormatISODate(f.AshWednesday),
			Easter:       calendar.FormatISODate(f.Easter),
			Ascension:    calendar.FormatISODate(f.Ascension),
			Pentecost:    calendar.FormatISODate(f.Pentecost),
			Advent:       calendar.FormatISODate(f.Advent),
		},
	}
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
