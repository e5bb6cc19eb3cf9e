package astronomy

import (
	"math"
	"time"

	"github.com/nathan-osman/go-sunrise"

	"github.com/zapponejosh/calendrics-api/internal/calendrical"
)

// unixEpoch is 1970-01-01.
const unixEpoch RataDie = 719163

// MomentFromTime converts t to a Moment in universal time.
func MomentFromTime(t time.Time) Moment {
	return unixEpoch.AddMoment(float64(t.UnixNano()) / float64(24*time.Hour))
}

// TimeFromMoment converts a universal Moment to a UTC time, rounded to the
// second.
func TimeFromMoment(m Moment) time.Time {
	secs := math.Round(m.Sub(unixEpoch.AsMoment()) * 86400)
	return time.Unix(int64(secs), 0).UTC()
}

// Zone returns the fixed time zone of loc's UTC offset.
func Zone(loc Location) *time.Location {
	return time.FixedZone("", int(math.Round(loc.UTCOffset*86400)))
}

// SunTimes are the civil sunrise and sunset of a day, in the zone of the
// location. Both are zero when the sun does not rise or set.
type SunTimes struct {
	Sunrise time.Time
	Sunset  time.Time
}

// Polar reports whether the sun stays above or below the horizon all day.
func (s SunTimes) Polar() bool {
	return s.Sunrise.IsZero() || s.Sunset.IsZero()
}

// CivilSunTimes returns sunrise and sunset on the Gregorian day date at loc.
func CivilSunTimes(date RataDie, loc Location) (SunTimes, error) {
	y, m, d, err := calendrical.GregorianFromFixed(date)
	if err != nil {
		return SunTimes{}, err
	}
	rise, set := sunrise.SunriseSunset(loc.Latitude, loc.Longitude, int(y), time.Month(m), int(d))
	zone := Zone(loc)
	var out SunTimes
	if !rise.IsZero() {
		out.Sunrise = rise.In(zone)
	}
	if !set.IsZero() {
		out.Sunset = set.In(zone)
	}
	return out, nil
}
