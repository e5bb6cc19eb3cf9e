package calendar

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// YearInfoStore persists computed year data across processes.
type YearInfoStore[Y YearInfo] interface {
	// LoadYearInfo returns the stored value and true, or false when absent.
	LoadYearInfo(ctx context.Context, calendar string, extendedYear int32) (Y, bool, error)
	SaveYearInfo(ctx context.Context, calendar string, info Y) error
}

// CacheObserver is told about year info lookups.
type CacheObserver interface {
	YearInfoHit(calendar string)
	YearInfoMiss(calendar string)
}

// storeTimeout bounds a single store round trip.
const storeTimeout = 2 * time.Second

// CachingSource memoizes an expensive year computation in memory and,
// when a store is set, on disk. It is safe for concurrent use.
type CachingSource[Y YearInfo] struct {
	name     string
	compute  func(extendedYear int32) Y
	store    YearInfoStore[Y]
	observer CacheObserver
	logger   *slog.Logger

	mu    sync.RWMutex
	years map[int32]Y
}

// CachingOption configures a CachingSource.
type CachingOption[Y YearInfo] func(*CachingSource[Y])

// WithStore persists computed values in store.
func WithStore[Y YearInfo](store YearInfoStore[Y]) CachingOption[Y] {
	return func(c *CachingSource[Y]) { c.store = store }
}

// WithObserver reports hits and misses to o.
func WithObserver[Y YearInfo](o CacheObserver) CachingOption[Y] {
	return func(c *CachingSource[Y]) { c.observer = o }
}

// WithLogger sets the logger for store failures.
func WithLogger[Y YearInfo](logger *slog.Logger) CachingOption[Y] {
	return func(c *CachingSource[Y]) { c.logger = logger }
}

// NewCachingSource wraps compute. name keys the values in the store.
func NewCachingSource[Y YearInfo](name string, compute func(int32) Y, opts ...CachingOption[Y]) *CachingSource[Y] {
	c := &CachingSource[Y]{
		name:    name,
		compute: compute,
		logger:  slog.New(slog.DiscardHandler),
		years:   make(map[int32]Y),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// LoadOrComputeInfo returns the year data, computing it at most once per
// process when no store holds it.
func (c *CachingSource[Y]) LoadOrComputeInfo(extendedYear int32) Y {
	c.mu.RLock()
	info, ok := c.years[extendedYear]
	c.mu.RUnlock()
	if ok {
		c.hit()
		return info
	}
	c.miss()

	info, ok = c.load(extendedYear)
	if !ok {
		info = c.compute(extendedYear)
		c.save(info)
	}

	c.mu.Lock()
	c.years[extendedYear] = info
	c.mu.Unlock()
	return info
}

// Len returns the number of years held in memory.
func (c *CachingSource[Y]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.years)
}

func (c *CachingSource[Y]) load(extendedYear int32) (Y, bool) {
	var zero Y
	if c.store == nil {
		return zero, false
	}
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	info, ok, err := c.store.LoadYearInfo(ctx, c.name, extendedYear)
	if err != nil {
		c.logger.Warn("year info load failed",
			slog.String("calendar", c.name),
			slog.Int("year", int(extendedYear)),
			slog.Any("error", err),
		)
		return zero, false
	}
	return info, ok
}

func (c *CachingSource[Y]) save(info Y) {
	if c.store == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	if err := c.store.SaveYearInfo(ctx, c.name, info); err != nil {
		c.logger.Warn("year info save failed",
			slog.String("calendar", c.name),
			slog.Int("year", int(info.ExtendedYear())),
			slog.Any("error", err),
		)
	}
}

func (c *CachingSource[Y]) hit() {
	if c.observer != nil {
		c.observer.YearInfoHit(c.name)
	}
}

func (c *CachingSource[Y]) miss() {
	if c.observer != nil {
		c.observer.YearInfoMiss(c.name)
	}
}
