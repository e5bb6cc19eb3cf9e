package calendrical

import "fmt"

// UTC offset bounds for a Location, in fractional days.
const (
	MinUTCOffset = -0.5
	MaxUTCOffset = 14.0 / 24.0
)

// Location is an observation point on the Earth. Latitude and longitude are
// in degrees, elevation in meters and the UTC offset in fractional days
// (UTC+1 is 1/24).
type Location struct {
	Latitude  float64
	Longitude float64
	Elevation float64
	UTCOffset float64
}

// Observation points used by the Islamic calendars.
var (
	Mecca = Location{Latitude: 6427.0 / 300, Longitude: 11947.0 / 300, Elevation: 298, UTCOffset: 1.0 / 8}
	Cairo = Location{Latitude: 30.1, Longitude: 31.3, Elevation: 200, UTCOffset: 1.0 / 12}
)

// LocationField names the Location component that failed validation.
type LocationField string

const (
	FieldLatitude  LocationField = "latitude"
	FieldLongitude LocationField = "longitude"
	FieldUTCOffset LocationField = "utc_offset"
)

// LocationError reports a Location component outside its valid range.
type LocationError struct {
	Field    LocationField
	Value    float64
	Min, Max float64
}

func (e *LocationError) Error() string {
	return fmt.Sprintf("calendrical: %s %v out of range [%v, %v]", e.Field, e.Value, e.Min, e.Max)
}

// TryNewLocation validates the components and returns the Location.
func TryNewLocation(latitude, longitude, elevation, utcOffset float64) (Location, error) {
	if latitude < -90 || latitude > 90 {
		return Location{}, &LocationError{Field: FieldLatitude, Value: latitude, Min: -90, Max: 90}
	}
	if longitude < -180 || longitude > 180 {
		return Location{}, &LocationError{Field: FieldLongitude, Value: longitude, Min: -180, Max: 180}
	}
	if utcOffset < MinUTCOffset || utcOffset > MaxUTCOffset {
		return Location{}, &LocationError{Field: FieldUTCOffset, Value: utcOffset, Min: MinUTCOffset, Max: MaxUTCOffset}
	}
	return Location{Latitude: latitude, Longitude: longitude, Elevation: elevation, UTCOffset: utcOffset}, nil
}

// ZoneFromLongitude converts a longitude into a mean time zone offset in days.
func ZoneFromLongitude(longitude float64) float64 {
	return longitude / 360
}

// UniversalFromLocal converts local mean time at l to universal time.
func (l Location) UniversalFromLocal(local Moment) Moment {
	return local - Moment(ZoneFromLongitude(l.Longitude))
}

// LocalFromUniversal converts universal time to local mean time at l.
func (l Location) LocalFromUniversal(universal Moment) Moment {
	return universal + Moment(ZoneFromLongitude(l.Longitude))
}

// UniversalFromStandard converts standard time in l's zone to universal time.
func (l Location) UniversalFromStandard(standard Moment) Moment {
	l.checkOffset()
	return standard - Moment(l.UTCOffset)
}

// StandardFromUniversal converts universal time to standard time in l's zone.
func (l Location) StandardFromUniversal(universal Moment) Moment {
	l.checkOffset()
	return universal + Moment(l.UTCOffset)
}

// StandardFromLocal converts local mean time to standard time in l's zone.
func (l Location) StandardFromLocal(local Moment) Moment {
	return l.StandardFromUniversal(l.UniversalFromLocal(local))
}

func (l Location) checkOffset() {
	assertf(l.UTCOffset > MinUTCOffset && l.UTCOffset < MaxUTCOffset,
		"UTC offset %v outside (%v, %v)", l.UTCOffset, MinUTCOffset, MaxUTCOffset)
}
