package calendar

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/zapponejosh/calendrics-api/internal/calendrical"
)

// RegistryConfig configures the calendars of a Registry.
type RegistryConfig struct {
	// Ephemeris resolves the astronomical Hijri calendars. When nil those
	// calendars are not registered.
	Ephemeris calendrical.Ephemeris
	// CacheEnabled memoizes astronomical Hijri years.
	CacheEnabled bool
	// Store persists memoized years. Ignored unless CacheEnabled.
	Store    YearInfoStore[HijriYearInfo]
	Observer CacheObserver
	Logger   *slog.Logger
}

// Registry looks calendars up by name.
type Registry struct {
	calendars    map[string]Calendar
	sources      map[string]*CachingSource[HijriYearInfo]
	astronomical map[string]bool
}

// NewRegistry builds every calendar cfg allows.
func NewRegistry(cfg RegistryConfig) *Registry {
	logger := orDiscard(cfg.Logger)
	r := &Registry{
		calendars:    make(map[string]Calendar),
		sources:      make(map[string]*CachingSource[HijriYearInfo]),
		astronomical: make(map[string]bool),
	}
	for _, c := range []Calendar{
		ISO{},
		Gregorian{},
		Buddhist{},
		Ethiopian{Style: AmeteMihret},
		Ethiopian{Style: AmeteAlem},
		HijriTabular{Epoch: EpochFriday},
		HijriTabular{Epoch: EpochThursday},
	} {
		r.calendars[c.Name()] = c
	}
	if cfg.Ephemeris == nil {
		return r
	}

	obs := calendrical.ObservationalIslamic{Ephemeris: cfg.Ephemeris, Location: calendrical.Mecca}
	saudi := calendrical.SaudiIslamic{Ephemeris: cfg.Ephemeris}
	computers := map[string]func(int32) HijriYearInfo{
		HijriSimulatedMeccaName: func(y int32) HijriYearInfo { return ComputeSimulatedYear(obs, y, logger) },
		HijriUmmAlQuraName:      func(y int32) HijriYearInfo { return ComputeUmmAlQuraYear(saudi, y, logger) },
	}
	for name, compute := range computers {
		r.astronomical[name] = true
		if !cfg.CacheEnabled {
			r.calendars[name] = NewHijriAstronomical(name, computeFunc(compute))
			continue
		}
		opts := []CachingOption[HijriYearInfo]{WithLogger[HijriYearInfo](logger)}
		if cfg.Store != nil {
			opts = append(opts, WithStore(cfg.Store))
		}
		if cfg.Observer != nil {
			opts = append(opts, WithObserver[HijriYearInfo](cfg.Observer))
		}
		src := NewCachingSource(name, compute, opts...)
		r.sources[name] = src
		r.calendars[name] = NewHijriAstronomical(name, src)
	}
	return r
}

// Get returns the calendar called name.
func (r *Registry) Get(name string) (Calendar, error) {
	c, ok := r.calendars[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCalendar, name)
	}
	return c, nil
}

// IsAstronomical reports whether the years of the calendar called name are
// resolved from astronomy, which costs milliseconds per year.
func (r *Registry) IsAstronomical(name string) bool {
	return r.astronomical[name]
}

// Names returns the registered calendar names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.calendars))
	for name := range r.calendars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Warm computes the years from..to inclusive of an astronomical calendar,
// filling its cache and store. It returns the number of years loaded.
func (r *Registry) Warm(name string, from, to int32) (int, error) {
	src, ok := r.sources[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q has no year cache", ErrUnknownCalendar, name)
	}
	n := 0
	for y := from; y <= to; y++ {
		src.LoadOrComputeInfo(y)
		n++
		if y == to {
			break
		}
	}
	return n, nil
}
