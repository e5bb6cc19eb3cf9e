package database

// migrationsSQL contains all database migrations, applied in version order.
var migrationsSQL = map[int]string{
	1: migrationV1HijriYearInfo,
	2: migrationV2HijriStartIndex,
}

// migrationV1HijriYearInfo stores one resolved year per Hijri calendar.
//
// month_lengths is a bit set: bit i is set when month i+1 has 30 days.
// start_day is the day number of 1 Muharram.
const migrationV1HijriYearInfo = `
CREATE TABLE IF NOT EXISTS hijri_year_info (
    calendar TEXT NOT NULL,
    year INTEGER NOT NULL,
    start_day INTEGER NOT NULL,
    month_lengths INTEGER NOT NULL CHECK (month_lengths BETWEEN 0 AND 4095),
    created_at TEXT NOT NULL DEFAULT (datetime('now')),
    updated_at TEXT NOT NULL DEFAULT (datetime('now')),

    PRIMARY KEY (calendar, year)
);
`

// migrationV2HijriStartIndex supports finding the year containing a day.
const migrationV2HijriStartIndex = `
CREATE INDEX IF NOT EXISTS idx_hijri_year_info_start
    ON hijri_year_info(calendar, start_day);
`
