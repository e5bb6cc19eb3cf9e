package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/zapponejosh/calendrics-api/internal/astronomy"
	"github.com/zapponejosh/calendrics-api/internal/calendar"
	"github.com/zapponejosh/calendrics-api/internal/calendrical"
	"github.com/zapponejosh/calendrics-api/internal/config"
	"github.com/zapponejosh/calendrics-api/internal/database"
)

// =============================================================================
// TEST SETUP HELPERS
// =============================================================================

// testEnv sets up a complete test environment with database, config, and handlers
type testEnv struct {
	db      *database.DB
	cfg     *config.Config
	metrics *Metrics
	router  http.Handler
}

func testConfig() *config.Config {
	return &config.Config{
		Port:              8080,
		Env:               config.EnvTest,
		DatabasePath:      ":memory:",
		CacheEnabled:      true,
		LogLevel:          "error",
		LogFormat:         "text",
		ObserverLatitude:  calendrical.Mecca.Latitude,
		ObserverLongitude: calendrical.Mecca.Longitude,
		ObserverElevation: calendrical.Mecca.Elevation,
		ObserverUTCOffset: calendrical.Mecca.UTCOffset * 24,
	}
}

// setupTest builds a router over an in-memory database. modify may adjust
// the config before the router is built.
func setupTest(t *testing.T, modify func(*config.Config)) *testEnv {
	t.Helper()
	return setupTestWithEphemeris(t, modify, nil)
}

// setupTestWithEphemeris is setupTest with the astronomical Hijri calendars
// registered when eph is not nil.
func setupTestWithEphemeris(t *testing.T, modify func(*config.Config), eph calendrical.Ephemeris) *testEnv {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)

	db, err := database.Open(database.Config{
		Path:            ":memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Hour,
	}, logger)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	cfg := testConfig()
	if modify != nil {
		modify(cfg)
	}

	metrics := NewMetrics()
	// Without an ephemeris the astronomical Hijri calendars stay out of
	// the registry so conversions are instant.
	registry := calendar.NewRegistry(calendar.RegistryConfig{
		Ephemeris:    eph,
		CacheEnabled: true,
		Store:        database.NewHijriYearStore(db),
		Observer:     metrics,
		Logger:       logger,
	})
	handlers := NewHandlers(db, registry, cfg, logger)

	return &testEnv{
		db:      db,
		cfg:     cfg,
		metrics: metrics,
		router:  SetupRoutes(handlers, cfg, metrics, logger),
	}
}

// makeRequest is a helper to make HTTP requests with optional API key
func makeRequest(method, path string, body any, apiKey string) *http.Request {
	var bodyReader io.Reader
	if body != nil {
		jsonData, _ := json.Marshal(body)
		bodyReader = bytes.NewReader(jsonData)
	}

	req := httptest.NewRequest(method, path, bodyReader)
	req.Header.Set("Content-Type", "application/json")

	if apiKey != "" {
		req.Header.Set("X-API-Key", apiKey)
	}

	return req
}

func (env *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	env.router.ServeHTTP(rr, req)
	return rr
}

// envelope mirrors Response with the data left raw.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *ErrorInfo      `json:"error"`
}

// parseResponse parses the envelope and, on success, its data into v.
func parseResponse(t *testing.T, rr *httptest.ResponseRecorder, v any) envelope {
	t.Helper()
	var env envelope
	if err := json.NewDecoder(rr.Body).Decode(&env); err != nil {
		t.Fatalf("decode response: %v, body: %s", err, rr.Body.String())
	}
	if v != nil && env.Success {
		if err := json.Unmarshal(env.Data, v); err != nil {
			t.Fatalf("decode data: %v, data: %s", err, env.Data)
		}
	}
	return env
}

func expectError(t *testing.T, rr *httptest.ResponseRecorder, status int, code string) {
	t.Helper()
	if rr.Code != status {
		t.Errorf("Status = %d, want %d, body: %s", rr.Code, status, rr.Body.String())
	}
	env := parseResponse(t, rr, nil)
	if env.Success {
		t.Error("Success = true, want false")
	}
	if env.Error == nil || env.Error.Code != code {
		t.Errorf("Error = %+v, want code %s", env.Error, code)
	}
}

// =============================================================================
// HEALTH & CALENDARS
// =============================================================================

func TestHealthCheck(t *testing.T) {
	env := setupTest(t, nil)

	rr := env.do(makeRequest("GET", "/health", nil, ""))
	if rr.Code != http.StatusOK {
		t.Fatalf("Status = %d, want %d", rr.Code, http.StatusOK)
	}

	var body map[string]string
	parseResponse(t, rr, &body)
	if body["status"] != "healthy" || body["database"] != "ok" {
		t.Errorf("body = %v, want healthy/ok", body)
	}
}

func TestHealthCheck_NoDatabase(t *testing.T) {
	cfg := testConfig()
	h := NewHandlers(nil, calendar.NewRegistry(calendar.RegistryConfig{}), cfg, slog.New(slog.DiscardHandler))
	router := SetupRoutes(h, cfg, nil, slog.New(slog.DiscardHandler))

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, makeRequest("GET", "/health", nil, ""))

	var body map[string]string
	parseResponse(t, rr, &body)
	if body["database"] != "disabled" {
		t.Errorf("database = %q, want disabled", body["database"])
	}

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, makeRequest("GET", "/api/v1/cache", nil, ""))
	expectError(t, rr, http.StatusNotFound, CodeNotFound)
}

func TestListCalendars(t *testing.T) {
	env := setupTest(t, nil)

	rr := env.do(makeRequest("GET", "/api/v1/calendars", nil, ""))
	var body struct {
		Calendars []string `json:"calendars"`
	}
	parseResponse(t, rr, &body)

	want := []string{
		"buddhist", "ethiopian", "ethiopian-amete-alem", "gregorian",
		"hijri-tabular-friday", "hijri-tabular-thursday", "iso",
	}
	if strings.Join(body.Calendars, ",") != strings.Join(want, ",") {
		t.Errorf("Calendars = %v, want %v", body.Calendars, want)
	}
}

// =============================================================================
// CONVERSION
// =============================================================================

func TestConvert(t *testing.T) {
	env := setupTest(t, nil)

	tests := []struct {
		name      string
		query     string
		wantRD    int64
		wantEra   string
		wantYear  int32
		wantMonth uint8
		wantDay   uint8
	}{
		{"gregorian by date", "date=1970-01-01&to=gregorian", 719163, "ce", 1970, 1, 1},
		{"iso by default", "date=1970-01-01", 719163, "default", 1970, 1, 1},
		{"buddhist", "date=1970-01-01&to=buddhist", 719163, "be", 2513, 1, 1},
		{"ethiopian", "date=1970-01-01&to=ethiopian", 719163, "am", 1962, 4, 23},
		{"gregorian by rd", "rd=1&to=gregorian", 1, "ce", 1, 1, 1},
		{"before the common era", "rd=0&to=gregorian", 0, "bce", 1, 12, 31},
		{"tabular hijri", "rd=227015&to=hijri-tabular-friday", 227015, "ah", 1, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := env.do(makeRequest("GET", "/api/v1/convert?"+tt.query, nil, ""))
			if rr.Code != http.StatusOK {
				t.Fatalf("Status = %d, want %d, body: %s", rr.Code, http.StatusOK, rr.Body.String())
			}

			var info DateInfo
			parseResponse(t, rr, &info)
			if info.RataDie != tt.wantRD {
				t.Errorf("RataDie = %d, want %d", info.RataDie, tt.wantRD)
			}
			if info.Era != tt.wantEra || info.Year != tt.wantYear {
				t.Errorf("era year = %s %d, want %s %d", info.Era, info.Year, tt.wantEra, tt.wantYear)
			}
			if info.Month.Ordinal != tt.wantMonth || info.Day != tt.wantDay {
				t.Errorf("month/day = %d/%d, want %d/%d", info.Month.Ordinal, info.Day, tt.wantMonth, tt.wantDay)
			}
		})
	}
}

func TestConvert_DateInfo(t *testing.T) {
	env := setupTest(t, nil)

	rr := env.do(makeRequest("GET", "/api/v1/convert?date=2024-02-29&to=gregorian", nil, ""))
	var info DateInfo
	parseResponse(t, rr, &info)

	if info.ISO != "2024-02-29" {
		t.Errorf("ISO = %q, want 2024-02-29", info.ISO)
	}
	if info.Month.Code != "M02" {
		t.Errorf("Month.Code = %q, want M02", info.Month.Code)
	}
	if info.DayOfYear != 60 || info.DaysInMonth != 29 || info.DaysInYear != 366 {
		t.Errorf("day of year/month len/year len = %d/%d/%d, want 60/29/366",
			info.DayOfYear, info.DaysInMonth, info.DaysInYear)
	}
	if !info.LeapYear || info.MonthsInYear != 12 {
		t.Errorf("leap/months = %v/%d, want true/12", info.LeapYear, info.MonthsInYear)
	}
	if info.Weekday != "Thursday" {
		t.Errorf("Weekday = %q, want Thursday", info.Weekday)
	}
}

func TestConvert_Errors(t *testing.T) {
	env := setupTest(t, nil)

	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantCode   string
	}{
		{"missing day", "to=gregorian", http.StatusBadRequest, CodeBadRequest},
		{"both date and rd", "date=2024-01-01&rd=1", http.StatusBadRequest, CodeBadRequest},
		{"malformed date", "date=2024/01/01", http.StatusBadRequest, CodeBadRequest},
		{"impossible day", "date=2023-02-29", http.StatusBadRequest, CodeRangeError},
		{"malformed rd", "rd=abc", http.StatusBadRequest, CodeBadRequest},
		{"rd out of range", "rd=100000001", http.StatusBadRequest, CodeRangeError},
		{"unknown calendar", "rd=1&to=mayan", http.StatusNotFound, CodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := env.do(makeRequest("GET", "/api/v1/convert?"+tt.query, nil, ""))
			expectError(t, rr, tt.wantStatus, tt.wantCode)
		})
	}
}

func TestMalformedDateIsBadRequest(t *testing.T) {
	env := setupTest(t, nil)

	paths := []string{
		"/api/v1/convert?date=2024/01/01&to=gregorian",
		"/api/v1/astronomy/new-moon?date=20240101",
		"/api/v1/astronomy/crescent?date=2024-1-1",
		"/api/v1/astronomy/sun?date=yesterday",
		"/api/v1/cache/hijri-umm-al-qura/containing?date=2024-01",
	}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			rr := env.do(makeRequest("GET", path, nil, ""))
			expectError(t, rr, http.StatusBadRequest, CodeBadRequest)
		})
	}
}

func TestCreateDate(t *testing.T) {
	env := setupTest(t, nil)

	year := func(y int32) *int32 { return &y }
	tests := []struct {
		name       string
		body       dateRequest
		wantStatus int
		wantCode   string
		wantRD     int64
	}{
		{
			name:       "gregorian leap day",
			body:       dateRequest{Calendar: "gregorian", Era: "ce", Year: year(2024), MonthCode: "M02", Day: 29},
			wantStatus: http.StatusOK,
			wantRD:     calendrical.FixedFromGregorian(2024, 2, 29).Int64(),
		},
		{
			name:       "extended year without era",
			body:       dateRequest{Calendar: "gregorian", Year: year(0), MonthCode: "M12", Day: 31},
			wantStatus: http.StatusOK,
			wantRD:     0,
		},
		{
			name:       "ethiopian thirteenth month",
			body:       dateRequest{Calendar: "ethiopian", Era: "am", Year: year(2015), MonthCode: "M13", Day: 6},
			wantStatus: http.StatusOK,
			wantRD:     calendrical.FixedFromEthiopian(2015, 13, 6).Int64(),
		},
		{
			name:       "unknown era",
			body:       dateRequest{Calendar: "gregorian", Era: "xx", Year: year(2024), MonthCode: "M01", Day: 1},
			wantStatus: http.StatusBadRequest,
			wantCode:   CodeUnknownEra,
		},
		{
			name:       "thirteenth gregorian month",
			body:       dateRequest{Calendar: "gregorian", Year: year(2024), MonthCode: "M13", Day: 1},
			wantStatus: http.StatusBadRequest,
			wantCode:   CodeUnknownMonthCode,
		},
		{
			name:       "day past month end",
			body:       dateRequest{Calendar: "gregorian", Year: year(2023), MonthCode: "M02", Day: 29},
			wantStatus: http.StatusBadRequest,
			wantCode:   CodeRangeError,
		},
		{
			name:       "hijri year zero",
			body:       dateRequest{Calendar: "hijri-tabular-friday", Era: "ah", Year: year(0), MonthCode: "M01", Day: 1},
			wantStatus: http.StatusBadRequest,
			wantCode:   CodeRangeError,
		},
		{
			name:       "missing year",
			body:       dateRequest{Calendar: "gregorian", MonthCode: "M01", Day: 1},
			wantStatus: http.StatusBadRequest,
			wantCode:   CodeBadRequest,
		},
		{
			name:       "missing calendar",
			body:       dateRequest{Year: year(2024), MonthCode: "M01", Day: 1},
			wantStatus: http.StatusBadRequest,
			wantCode:   CodeBadRequest,
		},
		{
			name:       "unknown calendar",
			body:       dateRequest{Calendar: "mayan", Year: year(2024), MonthCode: "M01", Day: 1},
			wantStatus: http.StatusNotFound,
			wantCode:   CodeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := env.do(makeRequest("POST", "/api/v1/dates", tt.body, ""))
			if tt.wantCode != "" {
				expectError(t, rr, tt.wantStatus, tt.wantCode)
				return
			}
			if rr.Code != tt.wantStatus {
				t.Fatalf("Status = %d, want %d, body: %s", rr.Code, tt.wantStatus, rr.Body.String())
			}
			var info DateInfo
			parseResponse(t, rr, &info)
			if info.RataDie != tt.wantRD {
				t.Errorf("RataDie = %d, want %d", info.RataDie, tt.wantRD)
			}
		})
	}
}

func TestCreateDate_UnknownField(t *testing.T) {
	env := setupTest(t, nil)

	req := httptest.NewRequest("POST", "/api/v1/dates",
		strings.NewReader(`{"calendar":"iso","year":1,"month_code":"M01","day":1,"hour":3}`))
	expectError(t, env.do(req), http.StatusBadRequest, CodeBadRequest)
}

// =============================================================================
// ARITHMETIC
// =============================================================================

func TestOffset(t *testing.T) {
	env := setupTest(t, nil)

	rd := func(y int32, m, d uint8) *int64 {
		n := calendrical.FixedFromGregorian(y, m, d).Int64()
		return &n
	}
	tests := []struct {
		name    string
		body    offsetRequest
		wantISO string
	}{
		{"month overflow carries", offsetRequest{Calendar: "gregorian", RD: rd(2023, 1, 31), Months: 1}, "2023-03-03"},
		{"leap day plus a year", offsetRequest{Calendar: "gregorian", RD: rd(2024, 2, 29), Years: 1}, "2025-03-01"},
		{"weeks and days", offsetRequest{Calendar: "iso", Date: "2024-01-01", Weeks: 2, Days: -1}, "2024-01-14"},
		{"backwards", offsetRequest{Calendar: "gregorian", Date: "2024-03-01", Days: -1}, "2024-02-29"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := env.do(makeRequest("POST", "/api/v1/offset", tt.body, ""))
			if rr.Code != http.StatusOK {
				t.Fatalf("Status = %d, want %d, body: %s", rr.Code, http.StatusOK, rr.Body.String())
			}
			var body struct {
				Result DateInfo `json:"result"`
			}
			parseResponse(t, rr, &body)
			if body.Result.ISO != tt.wantISO {
				t.Errorf("Result.ISO = %q, want %q", body.Result.ISO, tt.wantISO)
			}
		})
	}
}

func TestOffset_Validation(t *testing.T) {
	env := setupTest(t, nil)

	tests := []struct {
		name string
		body offsetRequest
	}{
		{"no day", offsetRequest{Calendar: "iso", Days: 1}},
		{"bad date", offsetRequest{Calendar: "iso", Date: "01/02/2024"}},
		{"months too large", offsetRequest{Calendar: "iso", Date: "2024-01-01", Months: 1_000_000}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := env.do(makeRequest("POST", "/api/v1/offset", tt.body, ""))
			expectError(t, rr, http.StatusBadRequest, CodeBadRequest)
		})
	}
}

func TestOffset_AstronomicalBound(t *testing.T) {
	env := setupTestWithEphemeris(t, nil, astronomy.Astronomical{})

	tests := []struct {
		name string
		body offsetRequest
	}{
		{"ten thousand years of days", offsetRequest{Calendar: calendar.HijriUmmAlQuraName, Date: "2024-03-11", Days: 3_650_000}},
		{"months", offsetRequest{Calendar: calendar.HijriSimulatedMeccaName, Date: "2024-03-11", Months: -120_000}},
		{"fields add up", offsetRequest{Calendar: calendar.HijriUmmAlQuraName, Date: "2024-03-11", Years: 60, Months: 300, Weeks: 1000}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := env.do(makeRequest("POST", "/api/v1/offset", tt.body, ""))
			expectError(t, rr, http.StatusBadRequest, CodeRangeError)
		})
	}

	// Rejected before any year was resolved.
	stats, err := env.db.GetCacheStats(context.Background())
	if err != nil {
		t.Fatalf("GetCacheStats() error = %v", err)
	}
	if len(stats) != 0 {
		t.Errorf("cached years = %+v, want none", stats)
	}

	// Arithmetic calendars keep the wide limits.
	rr := env.do(makeRequest("POST", "/api/v1/offset", offsetRequest{
		Calendar: "hijri-tabular-friday", Date: "2024-03-11", Days: 3_650_000,
	}, ""))
	if rr.Code != http.StatusOK {
		t.Errorf("Status = %d, want %d, body: %s", rr.Code, http.StatusOK, rr.Body.String())
	}
}

func TestOffset_AstronomicalWithinBound(t *testing.T) {
	if testing.Short() {
		t.Skip("astronomical search")
	}
	env := setupTestWithEphemeris(t, nil, astronomy.Astronomical{})

	rr := env.do(makeRequest("POST", "/api/v1/offset", offsetRequest{
		Calendar: calendar.HijriUmmAlQuraName, Date: "2024-03-11", Days: 30,
	}, ""))
	if rr.Code != http.StatusOK {
		t.Fatalf("Status = %d, want %d, body: %s", rr.Code, http.StatusOK, rr.Body.String())
	}
	var body struct {
		Start  DateInfo `json:"start"`
		Result DateInfo `json:"result"`
	}
	parseResponse(t, rr, &body)
	if body.Result.RataDie != body.Start.RataDie+30 {
		t.Errorf("Result.RataDie = %d, want %d", body.Result.RataDie, body.Start.RataDie+30)
	}
}

func TestUntil(t *testing.T) {
	env := setupTest(t, nil)

	from := calendrical.FixedFromGregorian(2023, 1, 31).Int64()
	to := calendrical.FixedFromGregorian(2024, 3, 1).Int64()
	rr := env.do(makeRequest("POST", "/api/v1/until", untilRequest{
		Calendar: "gregorian", FromRD: &from, ToRD: &to,
	}, ""))
	if rr.Code != http.StatusOK {
		t.Fatalf("Status = %d, want %d, body: %s", rr.Code, http.StatusOK, rr.Body.String())
	}

	var body struct {
		Duration calendar.DateDuration `json:"duration"`
	}
	parseResponse(t, rr, &body)

	want := calendar.DateDuration{Years: 1, Months: 2, Days: -30}
	if body.Duration != want {
		t.Errorf("Duration = %+v, want %+v", body.Duration, want)
	}
}

func TestEaster(t *testing.T) {
	env := setupTest(t, nil)

	rr := env.do(makeRequest("GET", "/api/v1/easter/2024", nil, ""))
	var info EasterInfo
	parseResponse(t, rr, &info)

	if info.Western != "2024-03-31" {
		t.Errorf("Western = %q, want 2024-03-31", info.Western)
	}
	if info.Orthodox != "2024-05-05" {
		t.Errorf("Orthodox = %q, want 2024-05-05", info.Orthodox)
	}
	if info.Feasts.AshWednesday != "2024-02-14" || info.Feasts.Pentecost != "2024-05-19" {
		t.Errorf("Feasts = %+v", info.Feasts)
	}
	if info.Feasts.Advent != "2024-12-01" {
		t.Errorf("Advent = %q, want 2024-12-01", info.Feasts.Advent)
	}

	expectError(t, env.do(makeRequest("GET", "/api/v1/easter/0", nil, "")), http.StatusBadRequest, CodeRangeError)
	expectError(t, env.do(makeRequest("GET", "/api/v1/easter/soon", nil, "")), http.StatusBadRequest, CodeBadRequest)
}

// =============================================================================
// ASTRONOMY
// =============================================================================

func TestSeasons(t *testing.T) {
	env := setupTest(t, nil)

	rr := env.do(makeRequest("GET", "/api/v1/astronomy/seasons/2024", nil, ""))
	var body struct {
		Seasons []SeasonInfo `json:"seasons"`
	}
	parseResponse(t, rr, &body)

	want := []struct{ season, date string }{
		{"march_equinox", "2024-03-20"},
		{"june_solstice", "2024-06-20"},
		{"september_equinox", "2024-09-22"},
		{"december_solstice", "2024-12-21"},
	}
	if len(body.Seasons) != len(want) {
		t.Fatalf("len(Seasons) = %d, want %d", len(body.Seasons), len(want))
	}
	for i, w := range want {
		if body.Seasons[i].Season != w.season || body.Seasons[i].Date != w.date {
			t.Errorf("Seasons[%d] = %s %s, want %s %s", i, body.Seasons[i].Season, body.Seasons[i].Date, w.season, w.date)
		}
	}

	expectError(t, env.do(makeRequest("GET", "/api/v1/astronomy/seasons/5000", nil, "")), http.StatusBadRequest, CodeRangeError)
}

func TestNewMoon(t *testing.T) {
	env := setupTest(t, nil)

	// The new moon of 2024-01-11 fell at 11:57 UTC.
	rr := env.do(makeRequest("GET", "/api/v1/astronomy/new-moon?date=2024-01-20", nil, ""))
	var info NewMoonInfo
	parseResponse(t, rr, &info)

	if got := info.Before.UTC.Format("2006-01-02"); got != "2024-01-11" {
		t.Errorf("Before = %s, want 2024-01-11", got)
	}
	if got := info.After.UTC.Format("2006-01-02"); got != "2024-02-09" {
		t.Errorf("After = %s, want 2024-02-09", got)
	}
	if info.Before.Moment >= info.After.Moment {
		t.Errorf("Before %v not before After %v", info.Before.Moment, info.After.Moment)
	}
}

func TestSun(t *testing.T) {
	env := setupTest(t, nil)

	rr := env.do(makeRequest("GET", "/api/v1/astronomy/sun?date=2024-06-21", nil, ""))
	if rr.Code != http.StatusOK {
		t.Fatalf("Status = %d, want %d, body: %s", rr.Code, http.StatusOK, rr.Body.String())
	}
	var info SunInfo
	parseResponse(t, rr, &info)

	if info.Sunrise == nil || info.Sunset == nil || info.AstronomicalSunset == nil {
		t.Fatalf("missing times: %+v", info)
	}
	if !info.Sunrise.Before(*info.Sunset) {
		t.Errorf("Sunrise %v not before Sunset %v", info.Sunrise, info.Sunset)
	}
	// The two sunset models agree to within a few minutes.
	if d := info.Sunset.Sub(*info.AstronomicalSunset).Abs(); d > 5*time.Minute {
		t.Errorf("sunset models differ by %v", d)
	}
	if info.Location.UTCOffset != 3 {
		t.Errorf("Location.UTCOffset = %v, want 3", info.Location.UTCOffset)
	}

	// Midsummer above the Arctic Circle.
	rr = env.do(makeRequest("GET", "/api/v1/astronomy/sun?date=2024-06-21&lat=78.22&lon=15.65&utc_offset=2", nil, ""))
	parseResponse(t, rr, &info)
	if info.Sunrise != nil || info.Sunset != nil {
		t.Errorf("polar day: Sunrise/Sunset = %v/%v, want nil", info.Sunrise, info.Sunset)
	}
}

func TestSun_BadLocation(t *testing.T) {
	env := setupTest(t, nil)

	tests := []struct {
		query    string
		wantCode string
	}{
		{"date=2024-06-21&lat=95", CodeRangeError},
		{"date=2024-06-21&lon=-200", CodeRangeError},
		{"date=2024-06-21&utc_offset=15", CodeRangeError},
		{"date=2024-06-21&lat=north", CodeBadRequest},
		{"date=2024-06-21&lat=NaN", CodeBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			rr := env.do(makeRequest("GET", "/api/v1/astronomy/sun?"+tt.query, nil, ""))
			expectError(t, rr, http.StatusBadRequest, tt.wantCode)
		})
	}
}

func TestCrescent(t *testing.T) {
	if testing.Short() {
		t.Skip("crescent visibility search is slow")
	}
	env := setupTest(t, nil)

	// Ramadan 1445 began on 2024-03-11 in Saudi Arabia.
	rr := env.do(makeRequest("GET", "/api/v1/astronomy/crescent?date=2024-03-15", nil, ""))
	if rr.Code != http.StatusOK {
		t.Fatalf("Status = %d, want %d, body: %s", rr.Code, http.StatusOK, rr.Body.String())
	}
	var info CrescentInfo
	parseResponse(t, rr, &info)

	if info.UmmAlQuraMonthStart != "2024-03-11" {
		t.Errorf("UmmAlQuraMonthStart = %q, want 2024-03-11", info.UmmAlQuraMonthStart)
	}
	if info.MonthLength != 29 && info.MonthLength != 30 {
		t.Errorf("MonthLength = %d, want 29 or 30", info.MonthLength)
	}
	if info.Phasis > info.Date {
		t.Errorf("Phasis %s after Date %s", info.Phasis, info.Date)
	}
}

// =============================================================================
// YEAR CACHE
// =============================================================================

func seedYear(t *testing.T, db *database.DB, year int32) database.HijriYear {
	t.Helper()
	info := calendar.HijriYearInfo{StartDay: calendrical.FixedFromTabularIslamic(year, 1, 1, calendar.EpochFriday.RataDie()), Value: year}
	for i := range info.MonthLengths {
		info.MonthLengths[i] = i%2 == 0
	}
	h := database.HijriYearFromInfo("hijri-umm-al-qura", info)
	if err := db.UpsertHijriYear(context.Background(), &h); err != nil {
		t.Fatalf("seed year %d: %v", year, err)
	}
	return h
}

func TestCacheEndpoints(t *testing.T) {
	env := setupTest(t, nil)
	seedYear(t, env.db, 1445)
	second := seedYear(t, env.db, 1446)

	rr := env.do(makeRequest("GET", "/api/v1/cache", nil, ""))
	var stats struct {
		Calendars []database.CacheStats `json:"calendars"`
	}
	parseResponse(t, rr, &stats)
	if len(stats.Calendars) != 1 || stats.Calendars[0].Years != 2 {
		t.Errorf("Calendars = %+v, want one calendar with 2 years", stats.Calendars)
	}

	rr = env.do(makeRequest("GET", "/api/v1/cache/hijri-umm-al-qura?from=1440&to=1450", nil, ""))
	var list struct {
		Years []database.HijriYear `json:"years"`
	}
	parseResponse(t, rr, &list)
	if len(list.Years) != 2 || list.Years[0].Year != 1445 {
		t.Errorf("Years = %+v, want 1445 and 1446", list.Years)
	}

	rr = env.do(makeRequest("GET",
		"/api/v1/cache/hijri-umm-al-qura/containing?rd="+itoa(second.StartDay+10), nil, ""))
	var year database.HijriYear
	parseResponse(t, rr, &year)
	if year.Year != 1446 {
		t.Errorf("containing year = %d, want 1446", year.Year)
	}

	// Past the end of the last stored year.
	rr = env.do(makeRequest("GET",
		"/api/v1/cache/hijri-umm-al-qura/containing?rd="+itoa(second.StartDay+400), nil, ""))
	expectError(t, rr, http.StatusNotFound, CodeNotFound)

	rr = env.do(makeRequest("GET", "/api/v1/cache/hijri-umm-al-qura?from=10&to=1", nil, ""))
	expectError(t, rr, http.StatusBadRequest, CodeBadRequest)
}

func TestWarmCache_ArithmeticCalendar(t *testing.T) {
	env := setupTest(t, nil)

	rr := env.do(makeRequest("POST", "/api/v1/cache/gregorian/warm", warmRequest{From: 1, To: 2}, ""))
	expectError(t, rr, http.StatusNotFound, CodeNotFound)

	rr = env.do(makeRequest("POST", "/api/v1/cache/gregorian/warm", warmRequest{From: 5, To: 2}, ""))
	expectError(t, rr, http.StatusBadRequest, CodeBadRequest)
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}

// =============================================================================
// MIDDLEWARE
// =============================================================================

func TestAuth_Production(t *testing.T) {
	env := setupTest(t, func(c *config.Config) {
		c.Env = config.EnvProduction
		c.APIKey = "prod-key"
	})
	body := dateRequest{Calendar: "iso", Year: new(int32), MonthCode: "M01", Day: 1}

	expectError(t, env.do(makeRequest("POST", "/api/v1/dates", body, "")), http.StatusUnauthorized, CodeUnauthorized)
	expectError(t, env.do(makeRequest("POST", "/api/v1/dates", body, "wrong")), http.StatusUnauthorized, CodeUnauthorized)

	if rr := env.do(makeRequest("POST", "/api/v1/dates", body, "prod-key")); rr.Code != http.StatusOK {
		t.Errorf("with key: Status = %d, want %d", rr.Code, http.StatusOK)
	}
	// Reads stay public.
	if rr := env.do(makeRequest("GET", "/api/v1/calendars", nil, "")); rr.Code != http.StatusOK {
		t.Errorf("GET: Status = %d, want %d", rr.Code, http.StatusOK)
	}
}

func TestAuth_DevelopmentWithoutKey(t *testing.T) {
	env := setupTest(t, func(c *config.Config) { c.Env = config.EnvDevelopment })
	body := dateRequest{Calendar: "iso", Year: new(int32), MonthCode: "M01", Day: 1}

	if rr := env.do(makeRequest("POST", "/api/v1/dates", body, "")); rr.Code != http.StatusOK {
		t.Errorf("Status = %d, want %d", rr.Code, http.StatusOK)
	}
}

func TestRateLimit(t *testing.T) {
	env := setupTest(t, func(c *config.Config) {
		c.RateLimitRPS = 0.001
		c.RateLimitBurst = 2
	})

	for i := 0; i < 2; i++ {
		if rr := env.do(makeRequest("GET", "/api/v1/calendars", nil, "")); rr.Code != http.StatusOK {
			t.Fatalf("request %d: Status = %d, want %d", i, rr.Code, http.StatusOK)
		}
	}
	rr := env.do(makeRequest("GET", "/api/v1/calendars", nil, ""))
	if rr.Header().Get("Retry-After") == "" {
		t.Error("Retry-After header missing")
	}
	expectError(t, rr, http.StatusTooManyRequests, CodeRateLimited)

	// Another client has its own bucket.
	req := makeRequest("GET", "/api/v1/calendars", nil, "")
	req.RemoteAddr = "203.0.113.9:4000"
	if rr := env.do(req); rr.Code != http.StatusOK {
		t.Errorf("other client: Status = %d, want %d", rr.Code, http.StatusOK)
	}

	// Health checks are not limited.
	if rr := env.do(makeRequest("GET", "/health", nil, "")); rr.Code != http.StatusOK {
		t.Errorf("health: Status = %d, want %d", rr.Code, http.StatusOK)
	}
}

func TestRateLimiter_ForgetsIdleClients(t *testing.T) {
	l := NewRateLimiter(1, 1)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	l.Allow("a")
	now = now.Add(time.Hour)
	l.Allow("b")

	if _, ok := l.clients["a"]; ok {
		t.Error("idle client a was not forgotten")
	}
	if len(l.clients) != 1 {
		t.Errorf("len(clients) = %d, want 1", len(l.clients))
	}
}

func TestRequestID(t *testing.T) {
	env := setupTest(t, nil)

	rr := env.do(makeRequest("GET", "/health", nil, ""))
	id := rr.Header().Get("X-Request-ID")
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("X-Request-ID = %q, not a UUID", id)
	}

	want := uuid.NewString()
	req := makeRequest("GET", "/health", nil, "")
	req.Header.Set("X-Request-ID", want)
	if got := env.do(req).Header().Get("X-Request-ID"); got != want {
		t.Errorf("X-Request-ID = %q, want client's %q", got, want)
	}

	req = makeRequest("GET", "/health", nil, "")
	req.Header.Set("X-Request-ID", "not-a-uuid")
	if got := env.do(req).Header().Get("X-Request-ID"); got == "not-a-uuid" {
		t.Error("malformed client request ID was kept")
	}
}

func TestCORSPreflight(t *testing.T) {
	env := setupTest(t, nil)

	rr := env.do(makeRequest("OPTIONS", "/api/v1/dates", nil, ""))
	if rr.Code != http.StatusNoContent {
		t.Errorf("Status = %d, want %d", rr.Code, http.StatusNoContent)
	}
	if rr.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("Access-Control-Allow-Origin missing")
	}
}

func TestRecovery(t *testing.T) {
	handler := RecoveryMiddleware(slog.New(slog.DiscardHandler))(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("boom")
		}),
	)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, makeRequest("GET", "/", nil, ""))
	expectError(t, rr, http.StatusInternalServerError, CodeInternalError)
}

func TestNotFound(t *testing.T) {
	env := setupTest(t, nil)
	expectError(t, env.do(makeRequest("GET", "/api/v1/nope", nil, "")), http.StatusNotFound, CodeNotFound)
}

func TestMetrics(t *testing.T) {
	env := setupTest(t, nil)

	env.do(makeRequest("GET", "/api/v1/easter/2024", nil, ""))
	env.metrics.YearInfoMiss("hijri-umm-al-qura")

	rr := env.do(makeRequest("GET", "/metrics", nil, ""))
	if rr.Code != http.StatusOK {
		t.Fatalf("Status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	for _, want := range []string{
		`calendrics_http_requests_total{method="GET",route="/api/v1/easter/{year}",status="200"} 1`,
		`calendrics_year_info_lookups_total{calendar="hijri-umm-al-qura",result="miss"} 1`,
		`calendrics_http_request_duration_seconds_bucket`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics missing %q", want)
		}
	}
}
