package commands

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// run executes calconv with args and returns what it printed.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCommand(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestConvert_Text(t *testing.T) {
	out, err := run(t, "convert", "1970-01-01", "--to", "gregorian,buddhist")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "gregorian")
	assert.Contains(t, lines[0], "1970-01-01")
	assert.Contains(t, lines[1], "buddhist")
	assert.Contains(t, lines[1], "2513-01-01")
}

func TestConvert_JSON(t *testing.T) {
	out, err := run(t, "convert", "719163", "--to", "ethiopian", "-o", "json")
	require.NoError(t, err)

	var records []dateRecord
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "am", records[0].Era)
	assert.Equal(t, int32(1962), records[0].Year)
	assert.Equal(t, uint8(4), records[0].Month)
	assert.Equal(t, uint8(23), records[0].Day)
}

func TestConvert_YAML(t *testing.T) {
	out, err := run(t, "convert", "227015", "--to", "hijri-tabular-friday", "--output", "yaml")
	require.NoError(t, err)

	var records []dateRecord
	require.NoError(t, yaml.Unmarshal([]byte(out), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "ah", records[0].Era)
	assert.Equal(t, int32(1), records[0].Year)
	assert.Equal(t, "M01", records[0].MonthCode)
	assert.Equal(t, int64(227015), records[0].RataDie)
}

func TestConvert_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad date", []string{"convert", "2023-02-29"}},
		{"not a day", []string{"convert", "yesterday"}},
		{"unknown calendar", []string{"convert", "1", "--to", "mayan"}},
		{"unknown output", []string{"convert", "1", "-o", "xml"}},
		{"no argument", []string{"convert"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestParseDay(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"0001-01-01", 1},
		{"1970-01-01", 719163},
		{"42", 42},
		{"-5", -5},
	}
	for _, tt := range tests {
		got, err := parseDay(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got.Int64(), tt.in)
	}
}

func TestCalendars(t *testing.T) {
	out, err := run(t, "calendars")
	require.NoError(t, err)
	for _, name := range []string{"iso", "gregorian", "hijri-umm-al-qura", "hijri-simulated-mecca", "ethiopian-amete-alem"} {
		assert.Contains(t, out, name+"\n")
	}
}

func TestOffset(t *testing.T) {
	out, err := run(t, "offset", "2023-01-31", "--calendar", "gregorian", "--months", "1", "-o", "json")
	require.NoError(t, err)

	var rec offsetRecord
	require.NoError(t, json.Unmarshal([]byte(out), &rec))
	assert.Equal(t, "2023-01-31", rec.Start.Date)
	assert.Equal(t, "2023-03-03", rec.Result.Date)
	assert.Equal(t, int32(1), rec.Duration.Months)
}

func TestEaster(t *testing.T) {
	out, err := run(t, "easter", "2024", "-o", "json")
	require.NoError(t, err)

	var rec easterRecord
	require.NoError(t, json.Unmarshal([]byte(out), &rec))
	assert.Equal(t, "2024-03-31", rec.Western)
	assert.Equal(t, "2024-05-05", rec.Orthodox)
	assert.Equal(t, "2024-05-19", rec.Pentecost)

	_, err = run(t, "easter", "0")
	assert.Error(t, err)
}

func TestWarmNeedsDatabase(t *testing.T) {
	t.Setenv("CALCONV_DB", "")
	_, err := run(t, "warm", "--from", "1445", "--to", "1445")
	assert.ErrorContains(t, err, "--db")
}

func TestWarmAndCache(t *testing.T) {
	if testing.Short() {
		t.Skip("computes an astronomical Hijri year")
	}
	db := filepath.Join(t.TempDir(), "cache.db")

	out, err := run(t, "warm", "--db", db, "--calendar", "hijri-umm-al-qura", "--from", "1445", "--to", "1445", "-o", "json")
	require.NoError(t, err)
	var warmed map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &warmed))
	assert.Equal(t, float64(1), warmed["years"])

	out, err = run(t, "cache", "stats", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "hijri-umm-al-qura: 1 years (1445..1445)")

	// The stored year answers conversions on the next run.
	out, err = run(t, "convert", "2024-03-11", "--to", "hijri-umm-al-qura", "--db", db, "-o", "json")
	require.NoError(t, err)
	var records []dateRecord
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	assert.Equal(t, int32(1445), records[0].Year)
	assert.Equal(t, uint8(9), records[0].Month)
	assert.Equal(t, uint8(1), records[0].Day)

	// Locating the day also checks where the following year starts, so
	// 1446 is computed and stored alongside.
	out, err = run(t, "cache", "stats", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "hijri-umm-al-qura: 2 years (1445..1446)")

	out, err = run(t, "cache", "clear", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "deleted 2 years")

	out, err = run(t, "cache", "stats", "--db", db)
	require.NoError(t, err)
	assert.NotContains(t, out, "hijri-umm-al-qura")
}

func TestWarmFromEnvironment(t *testing.T) {
	t.Setenv("CALCONV_DB", filepath.Join(t.TempDir(), "cache.db"))
	t.Setenv("CALCONV_WARM_CALENDAR", "gregorian")

	// Gregorian has no year cache, which shows the env var was read.
	_, err := run(t, "warm")
	assert.ErrorContains(t, err, "no year cache")
}
