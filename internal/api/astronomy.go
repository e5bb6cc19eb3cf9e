package api

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/zapponejosh/calendrics-api/internal/astronomy"
	"github.com/zapponejosh/calendrics-api/internal/calendar"
	"github.com/zapponejosh/calendrics-api/internal/calendrical"
)

// Meeus' season formulae are fitted to this span.
const (
	minSeasonYear = -1000
	maxSeasonYear = 3000
)

// NewMoon handles GET /api/v1/astronomy/new-moon?date=
func (h *Handlers) NewMoon(w http.ResponseWriter, r *http.Request) {
	rd, ok := h.dayParam(w, r)
	if !ok {
		return
	}

	m := rd.AsMoment()
	WriteSuccess(w, NewMoonInfo{
		Date:   calendar.FormatISODate(rd),
		Before: newInstant(astronomy.NewMoonBefore(m), h.observer),
		After:  newInstant(astronomy.NewMoonAtOrAfter(m), h.observer),
	})
}

// Crescent handles GET /api/v1/astronomy/crescent?date=&lat=&lon=
func (h *Handlers) Crescent(w http.ResponseWriter, r *http.Request) {
	rd, ok := h.dayParam(w, r)
	if !ok {
		return
	}
	loc, err := h.location(r)
	if err != nil {
		h.writeErr(w, r, err)
		return
	}

	phasis := astronomy.PhasisOnOrBefore(rd, loc)
	saudi := calendrical.SaudiIslamic{Ephemeris: astronomy.Astronomical{}}
	WriteSuccess(w, CrescentInfo{
		Date:                calendar.FormatISODate(rd),
		Location:            newLocationInfo(loc),
		Visible:             astronomy.VisibleCrescent(rd.AsMoment(), loc),
		Phasis:              calendar.FormatISODate(phasis),
		MonthLength:         astronomy.MonthLength(phasis, loc),
		UmmAlQuraCriterion:  saudi.Criterion(rd),
		UmmAlQuraMonthStart: calendar.FormatISODate(saudi.NewMonthOnOrBefore(rd)),
	})
}

// Sun handles GET /api/v1/astronomy/sun?date=&lat=&lon=
func (h *Handlers) Sun(w http.ResponseWriter, r *http.Request) {
	rd, ok := h.dayParam(w, r)
	if !ok {
		return
	}
	loc, err := h.location(r)
	if err != nil {
		h.writeErr(w, r, err)
		return
	}

	civil, err := astronomy.CivilSunTimes(rd, loc)
	if err != nil {
		h.writeErr(w, r, err)
		return
	}

	info := SunInfo{
		Date:     calendar.FormatISODate(rd),
		Location: newLocationInfo(loc),
		Sunrise:  timePtr(civil.Sunrise),
		Sunset:   timePtr(civil.Sunset),
	}
	if set, ok := astronomy.Sunset(rd.AsMoment(), loc); ok {
		t := astronomy.TimeFromMoment(loc.UniversalFromStandard(set)).In(astronomy.Zone(loc))
		info.AstronomicalSunset = &t
	}

	WriteSuccess(w, info)
}

// Seasons handles GET /api/v1/astronomy/seasons/{year}
func (h *Handlers) Seasons(w http.ResponseWriter, r *http.Request) {
	year, ok := yearParam(w, r, minSeasonYear, maxSeasonYear)
	if !ok {
		return
	}

	events := astronomy.Seasons(int(year))
	out := make([]SeasonInfo, 0, len(events))
	for _, e := range events {
		out = append(out, SeasonInfo{
			Season: e.Season.String(),
			Date:   calendar.FormatISODate(e.Date),
			UTC:    astronomy.TimeFromMoment(e.Universal),
			Moment: e.Universal.Inner(),
		})
	}

	WriteSuccess(w, map[string]any{"year": year, "seasons": out})
}

// location reads lat, lon, elevation and utc_offset (hours) from the query,
// taking unset values from the configured observer.
func (h *Handlers) location(r *http.Request) (calendrical.Location, error) {
	lat, lon := h.observer.Latitude, h.observer.Longitude
	elevation, offset := h.observer.Elevation, h.observer.UTCOffset*24

	q := r.URL.Query()
	for _, p := range []struct {
		key string
		dst *float64
	}{
		{"lat", &lat},
		{"lon", &lon},
		{"elevation", &elevation},
		{"utc_offset", &offset},
	} {
		s := q.Get(p.key)
		if s == "" {
			continue
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return calendrical.Location{}, &queryError{key: p.key, value: s}
		}
		*p.dst = f
	}

	return calendrical.TryNewLocation(lat, lon, elevation, offset/24)
}

type queryError struct {
	key, value string
}

func (e *queryError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.key, e.value)
}
