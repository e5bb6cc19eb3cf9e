package database

import (
	"github.com/zapponejosh/calendrics-api/internal/calendar"
	"github.com/zapponejosh/calendrics-api/internal/calendrical"
)

// HijriYear is a stored year of an astronomical Hijri calendar.
type HijriYear struct {
	Calendar     string `db:"calendar" json:"calendar"`
	Year         int32  `db:"year" json:"year"`
	StartDay     int64  `db:"start_day" json:"start_day"`
	MonthLengths uint16 `db:"month_lengths" json:"month_lengths"` // bit i set: month i+1 has 30 days
	CreatedAt    string `db:"created_at" json:"created_at"`
	UpdatedAt    string `db:"updated_at" json:"updated_at"`
}

// HijriYearFromInfo packs info for storage under calendar.
func HijriYearFromInfo(cal string, info calendar.HijriYearInfo) HijriYear {
	var bits uint16
	for i, long := range info.MonthLengths {
		if long {
			bits |= 1 << i
		}
	}
	return HijriYear{
		Calendar:     cal,
		Year:         info.Value,
		StartDay:     info.StartDay.Int64(),
		MonthLengths: bits,
	}
}

// Info unpacks the stored year.
func (h HijriYear) Info() calendar.HijriYearInfo {
	var lengths [12]bool
	for i := range lengths {
		lengths[i] = h.MonthLengths&(1<<i) != 0
	}
	return calendar.HijriYearInfo{
		MonthLengths: lengths,
		StartDay:     calendrical.NewRataDie(h.StartDay),
		Value:        h.Year,
	}
}

// DaysInYear returns the length of the stored year.
func (h HijriYear) DaysInYear() int {
	return int(h.Info().DaysInYear())
}

// CacheStats summarizes the stored years of one calendar.
type CacheStats struct {
	Calendar string `db:"calendar" json:"calendar" yaml:"calendar"`
	Years    int    `db:"years" json:"years" yaml:"years"`
	MinYear  int32  `db:"min_year" json:"min_year" yaml:"min_year"`
	MaxYear  int32  `db:"max_year" json:"max_year" yaml:"max_year"`
}
