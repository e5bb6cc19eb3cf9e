package astronomy

import (
	"fmt"

	"github.com/mooncaker816/learnmeeus/v3/julian"
	"github.com/mooncaker816/learnmeeus/v3/solstice"
)

// jdOffset is the Julian day number of RD 0 at midnight.
const jdOffset = 1721424.5

// MomentFromJD converts a Julian date to a Moment.
func MomentFromJD(jd float64) Moment { return Moment(jd - jdOffset) }

// JDFromMoment converts a Moment to a Julian date.
func JDFromMoment(m Moment) float64 { return m.Inner() + jdOffset }

// Season identifies an equinox or solstice.
type Season int

const (
	MarchEquinox Season = iota
	JuneSolstice
	SeptemberEquinox
	DecemberSolstice
)

var seasonNames = [...]string{"march_equinox", "june_solstice", "september_equinox", "december_solstice"}

func (s Season) String() string {
	if s < MarchEquinox || s > DecemberSolstice {
		return fmt.Sprintf("Season(%d)", int(s))
	}
	return seasonNames[s]
}

// SolarLongitude returns the solar longitude that marks the season.
func (s Season) SolarLongitude() float64 {
	return float64(s) * 90
}

// SeasonEvent is the instant of an equinox or solstice.
type SeasonEvent struct {
	Season Season
	// Universal is the instant in universal time.
	Universal Moment
	// Date is the UTC day of the event.
	Date RataDie
	// Year, Month and Day are the calendar date of the event as given by
	// Meeus, Julian before 1582-10-15. Day carries the time as a fraction.
	Year, Month int
	Day         float64
}

// Seasons returns the equinoxes and solstices of a Gregorian year.
func Seasons(year int) [4]SeasonEvent {
	jdes := [4]float64{solstice.March(year), solstice.June(year), solstice.September(year), solstice.December(year)}
	var out [4]SeasonEvent
	for i, jde := range jdes {
		universal := UniversalFromDynamical(MomentFromJD(jde))
		y, m, d := julian.JDToCalendar(JDFromMoment(universal))
		out[i] = SeasonEvent{
			Season:    Season(i),
			Universal: universal,
			Date:      universal.AsRataDie(),
			Year:      y,
			Month:     m,
			Day:       d,
		}
	}
	return out
}
