// Command apitest smoke-tests a running calendrics API against known dates.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// =============================================================================
// Response Types - Match the actual API response structure
// =============================================================================

type APIResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *ErrorInfo      `json:"error,omitempty"`
}

type ErrorInfo struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type DateInfo struct {
	Calendar string `json:"calendar"`
	RataDie  int64  `json:"rd"`
	ISO      string `json:"iso"`
	Era      string `json:"era"`
	Year     int32  `json:"year"`
	Month    struct {
		Ordinal uint8  `json:"ordinal"`
		Code    string `json:"code"`
	} `json:"month"`
	Day uint8 `json:"day"`
}

// =============================================================================
// Test Runner
// =============================================================================

type TestRunner struct {
	baseURL      string
	apiKey       string
	client       *http.Client
	out          io.Writer
	astronomy    bool
	successCount int
	errorCount   int
	errors       []string
}

func NewTestRunner(baseURL, apiKey string, astronomy bool, out io.Writer) *TestRunner {
	return &TestRunner{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		client: &http.Client{
			// Astronomical Hijri years can take a while on a cold cache.
			Timeout: 60 * time.Second,
		},
		out:       out,
		astronomy: astronomy,
	}
}

func (tr *TestRunner) Run() {
	fmt.Fprintln(tr.out, "==============================================")
	fmt.Fprintln(tr.out, "Calendrics API Smoke Test")
	fmt.Fprintln(tr.out, "==============================================")
	fmt.Fprintf(tr.out, "Base URL: %s\n", tr.baseURL)

	tr.testHealth()
	tr.testConversions()
	tr.testDates()
	tr.testErrors()
	tr.testEaster()
	if tr.astronomy {
		tr.testHijriAstronomical()
	}

	tr.printSummary()
}

// =============================================================================
// Test Groups
// =============================================================================

func (tr *TestRunner) testHealth() {
	tr.printSection("Health Check")

	var health map[string]string
	if err := tr.getData("/health", &health); err != nil {
		tr.recordError("Health", err.Error())
		return
	}
	if health["status"] != "healthy" {
		tr.recordError("Health", fmt.Sprintf("Unexpected status: %s", health["status"]))
		return
	}
	tr.recordSuccess(fmt.Sprintf("Health check passed (database %s)", health["database"]))
}

func (tr *TestRunner) testConversions() {
	tr.printSection("Conversions")

	testCases := []struct {
		query    string
		wantEra  string
		wantYear int32
		wantMD   [2]uint8
	}{
		{"date=1970-01-01&to=gregorian", "ce", 1970, [2]uint8{1, 1}},
		{"date=1970-01-01&to=buddhist", "be", 2513, [2]uint8{1, 1}},
		{"date=1970-01-01&to=ethiopian", "am", 1962, [2]uint8{4, 23}},
		{"date=1970-01-01&to=ethiopian-amete-alem", "aa", 7462, [2]uint8{4, 23}},
		{"rd=227015&to=hijri-tabular-friday", "ah", 1, [2]uint8{1, 1}},
		{"rd=227014&to=hijri-tabular-thursday", "ah", 1, [2]uint8{1, 1}},
		{"rd=0&to=gregorian", "bce", 1, [2]uint8{12, 31}},
	}

	for _, tc := range testCases {
		var info DateInfo
		if err := tr.getData("/api/v1/convert?"+tc.query, &info); err != nil {
			tr.recordError(tc.query, err.Error())
			continue
		}
		if info.Era != tc.wantEra || info.Year != tc.wantYear ||
			info.Month.Ordinal != tc.wantMD[0] || info.Day != tc.wantMD[1] {
			tr.recordError(tc.query, fmt.Sprintf("got %s %d-%d-%d, want %s %d-%d-%d",
				info.Era, info.Year, info.Month.Ordinal, info.Day,
				tc.wantEra, tc.wantYear, tc.wantMD[0], tc.wantMD[1]))
			continue
		}
		tr.recordSuccess(fmt.Sprintf("%s -> %s %d %s %d", tc.query, info.Era, info.Year, info.Month.Code, info.Day))
	}
}

func (tr *TestRunner) testDates() {
	tr.printSection("Date Construction and Arithmetic")

	var created DateInfo
	body := map[string]any{"calendar": "gregorian", "era": "ce", "year": 2024, "month_code": "M02", "day": 29}
	if err := tr.postData("/api/v1/dates", body, &created); err != nil {
		tr.recordError("POST /dates", err.Error())
	} else if created.ISO != "2024-02-29" {
		tr.recordError("POST /dates", fmt.Sprintf("ISO = %s, want 2024-02-29", created.ISO))
	} else {
		tr.recordSuccess("Leap day constructed from codes")
	}

	var offset struct {
		Result DateInfo `json:"result"`
	}
	body = map[string]any{"calendar": "gregorian", "date": "2023-01-31", "months": 1}
	if err := tr.postData("/api/v1/offset", body, &offset); err != nil {
		tr.recordError("POST /offset", err.Error())
	} else if offset.Result.ISO != "2023-03-03" {
		tr.recordError("POST /offset", fmt.Sprintf("ISO = %s, want 2023-03-03", offset.Result.ISO))
	} else {
		tr.recordSuccess("January 31 plus one month overflows to March 3")
	}
}

func (tr *TestRunner) testErrors() {
	tr.printSection("Error Codes")

	testCases := []struct {
		method, path string
		body         any
		wantStatus   int
		wantCode     string
	}{
		{"GET", "/api/v1/convert?date=2023-02-29", nil, 400, "RANGE_ERROR"},
		{"GET", "/api/v1/convert?rd=1&to=mayan", nil, 404, "NOT_FOUND"},
		{"POST", "/api/v1/dates", map[string]any{"calendar": "gregorian", "era": "xx", "year": 1, "month_code": "M01", "day": 1}, 400, "UNKNOWN_ERA"},
		{"POST", "/api/v1/dates", map[string]any{"calendar": "gregorian", "year": 1, "month_code": "M13", "day": 1}, 400, "UNKNOWN_MONTH_CODE"},
	}

	for _, tc := range testCases {
		name := tc.method + " " + tc.path
		status, resp, err := tr.do(tc.method, tc.path, tc.body)
		if err != nil {
			tr.recordError(name, err.Error())
			continue
		}
		if status != tc.wantStatus || resp.Error == nil || resp.Error.Code != tc.wantCode {
			tr.recordError(name, fmt.Sprintf("got HTTP %d %+v, want %d %s", status, resp.Error, tc.wantStatus, tc.wantCode))
			continue
		}
		tr.recordSuccess(fmt.Sprintf("%s -> %s", name, tc.wantCode))
	}
}

func (tr *TestRunner) testEaster() {
	tr.printSection("Easter")

	for year, want := range map[int][2]string{
		2024: {"2024-03-31", "2024-05-05"},
		2025: {"2025-04-20", "2025-04-20"},
	} {
		var info struct {
			Western  string `json:"western"`
			Orthodox string `json:"orthodox"`
		}
		name := fmt.Sprintf("Easter %d", year)
		if err := tr.getData(fmt.Sprintf("/api/v1/easter/%d", year), &info); err != nil {
			tr.recordError(name, err.Error())
			continue
		}
		if info.Western != want[0] || info.Orthodox != want[1] {
			tr.recordError(name, fmt.Sprintf("got %s/%s, want %s/%s", info.Western, info.Orthodox, want[0], want[1]))
			continue
		}
		tr.recordSuccess(fmt.Sprintf("%s: %s / %s", name, info.Western, info.Orthodox))
	}
}

func (tr *TestRunner) testHijriAstronomical() {
	tr.printSection("Astronomical Hijri")

	// 1 Ramadan 1445 in Saudi Arabia.
	var info DateInfo
	if err := tr.getData("/api/v1/convert?date=2024-03-11&to=hijri-umm-al-qura", &info); err != nil {
		tr.recordError("Umm al-Qura", err.Error())
		return
	}
	if info.Year != 1445 || info.Month.Ordinal != 9 || info.Day != 1 {
		tr.recordError("Umm al-Qura", fmt.Sprintf("got %d-%d-%d, want 1445-9-1", info.Year, info.Month.Ordinal, info.Day))
		return
	}
	tr.recordSuccess("2024-03-11 is 1 Ramadan 1445")
}

// =============================================================================
// Helpers
// =============================================================================

func (tr *TestRunner) do(method, path string, body any) (int, *APIResponse, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, nil, err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, tr.baseURL+path, reader)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if tr.apiKey != "" {
		req.Header.Set("X-API-Key", tr.apiKey)
	}

	resp, err := tr.client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	var apiResp APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return resp.StatusCode, nil, fmt.Errorf("decode response: %w", err)
	}
	return resp.StatusCode, &apiResp, nil
}

func (tr *TestRunner) getData(path string, target any) error {
	return tr.data("GET", path, nil, target)
}

func (tr *TestRunner) postData(path string, body, target any) error {
	return tr.data("POST", path, body, target)
}

func (tr *TestRunner) data(method, path string, body, target any) error {
	status, resp, err := tr.do(method, path, body)
	if err != nil {
		return err
	}
	if !resp.Success {
		msg := "unknown error"
		if resp.Error != nil {
			msg = resp.Error.Code + ": " + resp.Error.Message
		}
		return fmt.Errorf("HTTP %d: %s", status, msg)
	}
	return json.Unmarshal(resp.Data, target)
}

func (tr *TestRunner) printSection(name string) {
	fmt.Fprintf(tr.out, "\n--- %s ---\n\n", name)
}

func (tr *TestRunner) recordSuccess(msg string) {
	tr.successCount++
	fmt.Fprintf(tr.out, "  ✓ %s\n", msg)
}

func (tr *TestRunner) recordError(context, msg string) {
	tr.errorCount++
	errStr := fmt.Sprintf("%s: %s", context, msg)
	tr.errors = append(tr.errors, errStr)
	fmt.Fprintf(tr.out, "  ✗ %s\n", errStr)
}

func (tr *TestRunner) printSummary() {
	fmt.Fprintln(tr.out)
	fmt.Fprintln(tr.out, "==============================================")
	fmt.Fprintf(tr.out, "  Passed: %d\n", tr.successCount)
	fmt.Fprintf(tr.out, "  Failed: %d\n", tr.errorCount)

	if tr.errorCount > 0 {
		fmt.Fprintln(tr.out, "\nFailures:")
		for _, err := range tr.errors {
			fmt.Fprintf(tr.out, "  • %s\n", err)
		}
	}
}

// =============================================================================
// Main
// =============================================================================

func main() {
	var (
		baseURL   string
		apiKey    string
		astronomy bool
	)

	cmd := &cobra.Command{
		Use:          "apitest",
		Short:        "Smoke-test a running calendrics API",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := &http.Client{Timeout: 2 * time.Second}
			resp, err := client.Get(baseURL + "/health")
			if err != nil {
				return fmt.Errorf("cannot connect to %s; is the API server running? %w", baseURL, err)
			}
			resp.Body.Close()

			runner := NewTestRunner(baseURL, apiKey, astronomy, cmd.OutOrStdout())
			runner.Run()
			if runner.errorCount > 0 {
				return fmt.Errorf("%d check(s) failed", runner.errorCount)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the API")
	cmd.Flags().StringVar(&apiKey, "api-key", os.Getenv("API_KEY"), "X-API-Key for POST routes")
	cmd.Flags().BoolVar(&astronomy, "astronomy", false, "Also check the astronomical Hijri calendars (slow on a cold cache)")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
