package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// =============================================================================
// Hijri Year Queries
// =============================================================================

// GetHijriYear returns a stored year, or ErrNotFound.
func (db *DB) GetHijriYear(ctx context.Context, cal string, year int32) (*HijriYear, error) {
	query := `
		SELECT calendar, year, start_day, month_lengths, created_at, updated_at
		FROM hijri_year_info
		WHERE calendar = ? AND year = ?`

	var h HijriYear
	if err := db.GetContext(ctx, &h, query, cal, year); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get hijri year %s/%d: %w", cal, year, err)
	}
	return &h, nil
}

// GetHijriYearContaining returns the stored year with the latest first day
// on or before day, or ErrNotFound.
func (db *DB) GetHijriYearContaining(ctx context.Context, cal string, day int64) (*HijriYear, error) {
	query := `
		SELECT calendar, year, start_day, month_lengths, created_at, updated_at
		FROM hijri_year_info
		WHERE calendar = ? AND start_day <= ?
		ORDER BY start_day DESC
		LIMIT 1`

	var h HijriYear
	if err := db.GetContext(ctx, &h, query, cal, day); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get hijri year containing %d: %w", day, err)
	}
	return &h, nil
}

// ListHijriYears returns the stored years from..to inclusive, ordered by
// year.
func (db *DB) ListHijriYears(ctx context.Context, cal string, from, to int32) ([]HijriYear, error) {
	query := `
		SELECT calendar, year, start_day, month_lengths, created_at, updated_at
		FROM hijri_year_info
		WHERE calendar = ? AND year BETWEEN ? AND ?
		ORDER BY year`

	years := []HijriYear{}
	if err := db.SelectContext(ctx, &years, query, cal, from, to); err != nil {
		return nil, fmt.Errorf("list hijri years: %w", err)
	}
	return years, nil
}

// UpsertHijriYear inserts or replaces a stored year.
func (db *DB) UpsertHijriYear(ctx context.Context, h *HijriYear) error {
	query := `
		INSERT INTO hijri_year_info (calendar, year, start_day, month_lengths)
		VALUES (:calendar, :year, :start_day, :month_lengths)
		ON CONFLICT (calendar, year) DO UPDATE SET
			start_day = excluded.start_day,
			month_lengths = excluded.month_lengths,
			updated_at = datetime('now')`

	if _, err := db.NamedExecContext(ctx, query, h); err != nil {
		return fmt.Errorf("upsert hijri year %s/%d: %w", h.Calendar, h.Year, err)
	}
	return nil
}

// DeleteHijriYears removes every stored year of a calendar and returns the
// number removed.
func (db *DB) DeleteHijriYears(ctx context.Context, cal string) (int64, error) {
	res, err := db.ExecContext(ctx, "DELETE FROM hijri_year_info WHERE calendar = ?", cal)
	if err != nil {
		return 0, fmt.Errorf("delete hijri years: %w", err)
	}
	return res.RowsAffected()
}

// GetCacheStats summarizes the stored years per calendar.
func (db *DB) GetCacheStats(ctx context.Context) ([]CacheStats, error) {
	query := `
		SELECT calendar, COUNT(*) AS years, MIN(year) AS min_year, MAX(year) AS max_year
		FROM hijri_year_info
		GROUP BY calendar
		ORDER BY calendar`

	stats := []CacheStats{}
	if err := db.SelectContext(ctx, &stats, query); err != nil {
		return nil, fmt.Errorf("get cache stats: %w", err)
	}
	return stats, nil
}
