package database

import (
	"context"

	"github.com/zapponejosh/calendrics-api/internal/calendar"
)

// HijriYearStore adapts DB to calendar.YearInfoStore.
type HijriYearStore struct {
	db *DB
}

var _ calendar.YearInfoStore[calendar.HijriYearInfo] = (*HijriYearStore)(nil)

// NewHijriYearStore returns a store backed by db.
func NewHijriYearStore(db *DB) *HijriYearStore {
	return &HijriYearStore{db: db}
}

// LoadYearInfo returns the stored year, or false when none is stored.
func (s *HijriYearStore) LoadYearInfo(ctx context.Context, cal string, extendedYear int32) (calendar.HijriYearInfo, bool, error) {
	h, err := s.db.GetHijriYear(ctx, cal, extendedYear)
	if IsNotFound(err) {
		return calendar.HijriYearInfo{}, false, nil
	}
	if err != nil {
		return calendar.HijriYearInfo{}, false, err
	}
	return h.Info(), true, nil
}

// SaveYearInfo stores info under cal.
func (s *HijriYearStore) SaveYearInfo(ctx context.Context, cal string, info calendar.HijriYearInfo) error {
	h := HijriYearFromInfo(cal, info)
	return s.db.UpsertHijriYear(ctx, &h)
}
