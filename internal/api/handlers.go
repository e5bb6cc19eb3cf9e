package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/zapponejosh/calendrics-api/internal/calendar"
	"github.com/zapponejosh/calendrics-api/internal/calendrical"
	"github.com/zapponejosh/calendrics-api/internal/config"
	"github.com/zapponejosh/calendrics-api/internal/database"
	"github.com/zapponejosh/calendrics-api/internal/logger"
)

// Day numbers accepted from clients, roughly 270,000 years either side of
// the epoch.
const (
	minRequestRD = -100_000_000
	maxRequestRD = 100_000_000
)

// Handlers contains all HTTP handlers and their dependencies.
type Handlers struct {
	db       *database.DB // nil when the year cache is not persisted
	registry *calendar.Registry
	observer calendrical.Location
	cfg      *config.Config
	logger   *slog.Logger
	validate *validator.Validate
}

// NewHandlers creates a new Handlers instance. db may be nil.
func NewHandlers(db *database.DB, registry *calendar.Registry, cfg *config.Config, log *slog.Logger) *Handlers {
	observer, err := cfg.Observer()
	if err != nil {
		observer = calendrical.Mecca
	}
	return &Handlers{
		db:       db,
		registry: registry,
		observer: observer,
		cfg:      cfg,
		logger:   log,
		validate: newValidator(),
	}
}

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if h.db == nil {
		WriteSuccess(w, map[string]string{"status": "healthy", "database": "disabled"})
		return
	}

	if err := h.db.Health(ctx); err != nil {
		h.logger.Warn("health check failed", slog.Any("error", err))
		WriteError(w, http.StatusServiceUnavailable, "Database unhealthy", CodeUnhealthy)
		return
	}

	WriteSuccess(w, map[string]string{"status": "healthy", "database": "ok"})
}

// ListCalendars handles GET /api/v1/calendars
func (h *Handlers) ListCalendars(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, map[string]any{"calendars": h.registry.Names()})
}

// Convert handles GET /api/v1/convert?date=YYYY-MM-DD|rd=N&to=<calendar>
func (h *Handlers) Convert(w http.ResponseWriter, r *http.Request) {
	rd, ok := h.dayParam(w, r)
	if !ok {
		return
	}

	to := r.URL.Query().Get("to")
	if to == "" {
		to = calendar.ISO{}.Name()
	}
	cal, err := h.registry.Get(to)
	if err != nil {
		h.writeErr(w, r, err)
		return
	}

	WriteSuccess(w, newDateInfo(cal.FromRataDie(rd)))
}

type dateRequest struct {
	Calendar  string `json:"calendar" validate:"required"`
	Era       string `json:"era"`
	Year      *int32 `json:"year" validate:"required"`
	MonthCode string `json:"month_code" validate:"required"`
	Day       uint8  `json:"day" validate:"required,min=1"`
}

// CreateDate handles POST /api/v1/dates
func (h *Handlers) CreateDate(w http.ResponseWriter, r *http.Request) {
	var req dateRequest
	if !h.decode(w, r, &req) {
		return
	}

	cal, err := h.registry.Get(req.Calendar)
	if err != nil {
		h.writeErr(w, r, err)
		return
	}

	d, err := cal.FromCodes(req.Era, *req.Year, calendar.MonthCode(req.MonthCode), req.Day)
	if err != nil {
		h.writeErr(w, r, err)
		return
	}

	WriteSuccess(w, newDateInfo(d))
}

// maxAstronomicalYears caps the years one request may resolve on a
// calendar whose years come from astronomy.
const maxAstronomicalYears = 100

// Offsets are bounded so a single request cannot walk the month loop for
// millions of years.
type offsetRequest struct {
	Calendar string `json:"calendar" validate:"required"`
	RD       *int64 `json:"rd" validate:"omitempty,min=-100000000,max=100000000"`
	Date     string `json:"date" validate:"required_without=RD,omitempty,datetime=2006-01-02"`
	Years    int32  `json:"years" validate:"min=-100000,max=100000"`
	Months   int32  `json:"months" validate:"min=-120000,max=120000"`
	Weeks    int32  `json:"weeks" validate:"min=-520000,max=520000"`
	Days     int32  `json:"days" validate:"min=-3650000,max=3650000"`
}

// Offset handles POST /api/v1/offset
func (h *Handlers) Offset(w http.ResponseWriter, r *http.Request) {
	var req offsetRequest
	if !h.decode(w, r, &req) {
		return
	}

	cal, err := h.registry.Get(req.Calendar)
	if err != nil {
		h.writeErr(w, r, err)
		return
	}

	if h.registry.IsAstronomical(req.Calendar) {
		if span := req.span(); span > maxAstronomicalYears {
			WriteError(w, http.StatusBadRequest,
				fmt.Sprintf("Offset spans about %d years; at most %d are allowed on %s", span, maxAstronomicalYears, req.Calendar),
				CodeRangeError)
			return
		}
	}

	rd, err := requestDay(req.RD, req.Date)
	if err != nil {
		h.writeErr(w, r, err)
		return
	}

	start := cal.FromRataDie(rd)
	end := start.Offset(calendar.DateDuration{
		Years:  req.Years,
		Months: req.Months,
		Weeks:  req.Weeks,
		Days:   req.Days,
	})

	WriteSuccess(w, map[string]any{
		"start":  newDateInfo(start),
		"result": newDateInfo(end),
	})
}

// span estimates the number of years the offset walks through. Fields are
// applied one after another, so they are summed without cancelling.
func (req offsetRequest) span() int64 {
	abs := func(n int32) int64 {
		if n < 0 {
			return -int64(n)
		}
		return int64(n)
	}
	days := abs(req.Weeks)*7 + abs(req.Days)
	return abs(req.Years) + abs(req.Months)/12 + days/354
}

type untilRequest struct {
	Calendar string `json:"calendar" validate:"required"`
	FromRD   *int64 `json:"from_rd" validate:"required,min=-100000000,max=100000000"`
	ToRD     *int64 `json:"to_rd" validate:"required,min=-100000000,max=100000000"`
}

// Until handles POST /api/v1/until
func (h *Handlers) Until(w http.ResponseWriter, r *http.Request) {
	var req untilRequest
	if !h.decode(w, r, &req) {
		return
	}

	cal, err := h.registry.Get(req.Calendar)
	if err != nil {
		h.writeErr(w, r, err)
		return
	}

	from := cal.FromRataDie(calendrical.NewRataDie(*req.FromRD))
	to := cal.FromRataDie(calendrical.NewRataDie(*req.ToRD))
	dur, err := to.Until(from, calendar.Years, calendar.Days)
	if err != nil {
		h.writeErr(w, r, err)
		return
	}

	WriteSuccess(w, map[string]any{
		"from":     newDateInfo(from),
		"to":       newDateInfo(to),
		"duration": dur,
	})
}

// Easter handles GET /api/v1/easter/{year}
func (h *Handlers) Easter(w http.ResponseWriter, r *http.Request) {
	year, ok := yearParam(w, r, 1, 9999)
	if !ok {
		return
	}
	WriteSuccess(w, newEasterInfo(year))
}

// CacheStats handles GET /api/v1/cache
func (h *Handlers) CacheStats(w http.ResponseWriter, r *http.Request) {
	if h.db == nil {
		WriteNotFound(w, "Year cache is not persisted")
		return
	}

	stats, err := h.db.GetCacheStats(r.Context())
	if err != nil {
		h.writeErr(w, r, err)
		return
	}

	WriteSuccess(w, map[string]any{"calendars": stats})
}

// CachedYears handles GET /api/v1/cache/{calendar}?from=&to=
func (h *Handlers) CachedYears(w http.ResponseWriter, r *http.Request) {
	if h.db == nil {
		WriteNotFound(w, "Year cache is not persisted")
		return
	}

	cal := chi.URLParam(r, "calendar")
	from, err := int32Query(r, "from", 1)
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}
	to, err := int32Query(r, "to", from+99)
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}
	if to < from || int64(to)-int64(from) >= 1000 {
		WriteBadRequest(w, "to must be at least from and span fewer than 1000 years")
		return
	}

	years, err := h.db.ListHijriYears(r.Context(), cal, from, to)
	if err != nil {
		h.writeErr(w, r, err)
		return
	}

	WriteSuccess(w, map[string]any{"calendar": cal, "years": years})
}

// CachedYearContaining handles GET /api/v1/cache/{calendar}/containing?date=
func (h *Handlers) CachedYearContaining(w http.ResponseWriter, r *http.Request) {
	if h.db == nil {
		WriteNotFound(w, "Year cache is not persisted")
		return
	}

	rd, ok := h.dayParam(w, r)
	if !ok {
		return
	}

	year, err := h.db.GetHijriYearContaining(r.Context(), chi.URLParam(r, "calendar"), rd.Int64())
	if err != nil {
		h.writeErr(w, r, err)
		return
	}
	// The latest stored year starting on or before rd may end before it.
	if rd.Int64() >= year.StartDay+int64(year.DaysInYear()) {
		WriteNotFound(w, "No stored year contains that day")
		return
	}

	WriteSuccess(w, year)
}

type warmRequest struct {
	From int32 `json:"from" validate:"min=1"`
	To   int32 `json:"to" validate:"gtefield=From,max=9999"`
}

// WarmCache handles POST /api/v1/cache/{calendar}/warm
func (h *Handlers) WarmCache(w http.ResponseWriter, r *http.Request) {
	var req warmRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.To-req.From >= maxAstronomicalYears {
		WriteBadRequest(w, fmt.Sprintf("Warm at most %d years per request", maxAstronomicalYears))
		return
	}

	cal := chi.URLParam(r, "calendar")
	n, err := h.registry.Warm(cal, req.From, req.To)
	if err != nil {
		h.writeErr(w, r, err)
		return
	}

	logger.Info(r.Context(), "warmed year cache",
		slog.String("calendar", cal),
		slog.Int("years", n),
	)
	WriteSuccess(w, map[string]any{"calendar": cal, "years": n})
}

// dayParam reads the day of a request from ?date=YYYY-MM-DD or ?rd=N and
// writes the error response itself when neither is usable.
func (h *Handlers) dayParam(w http.ResponseWriter, r *http.Request) (calendrical.RataDie, bool) {
	q := r.URL.Query()
	dateStr, rdStr := q.Get("date"), q.Get("rd")

	switch {
	case dateStr != "" && rdStr != "":
		WriteBadRequest(w, "Use either date or rd, not both")
		return 0, false
	case dateStr != "":
		rd, err := calendar.ParseISODate(dateStr)
		if err != nil {
			h.writeErr(w, r, err)
			return 0, false
		}
		return rd, true
	case rdStr != "":
		n, err := strconv.ParseInt(rdStr, 10, 64)
		if err != nil {
			WriteBadRequest(w, fmt.Sprintf("Invalid rd: %s", rdStr))
			return 0, false
		}
		rd, err := checkRD(n)
		if err != nil {
			h.writeErr(w, r, err)
			return 0, false
		}
		return rd, true
	}

	WriteBadRequest(w, "A date (YYYY-MM-DD) or rd parameter is required")
	return 0, false
}

func requestDay(rd *int64, date string) (calendrical.RataDie, error) {
	if rd != nil {
		return checkRD(*rd)
	}
	return calendar.ParseISODate(date)
}

// rdRangeError reports a day number outside what the API accepts.
type rdRangeError struct {
	Value int64
}

func (e *rdRangeError) Error() string {
	return fmt.Sprintf("rd %d out of range [%d, %d]", e.Value, minRequestRD, maxRequestRD)
}

func checkRD(n int64) (calendrical.RataDie, error) {
	if n < minRequestRD || n > maxRequestRD {
		return 0, &rdRangeError{Value: n}
	}
	return calendrical.NewRataDie(n), nil
}

// yearParam reads the {year} URL parameter.
func yearParam(w http.ResponseWriter, r *http.Request, lo, hi int32) (int32, bool) {
	s := chi.URLParam(r, "year")
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid year: %s", s))
		return 0, false
	}
	year := int32(n)
	if year < lo || year > hi {
		WriteError(w, http.StatusBadRequest,
			(&calendar.RangeError{Field: "year", Value: year, Min: lo, Max: hi}).Error(), CodeRangeError)
		return 0, false
	}
	return year, true
}

func int32Query(r *http.Request, key string, def int32) (int32, error) {
	s := r.URL.Query().Get(key)
	if s == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %s", key, s)
	}
	return int32(n), nil
}

// decode reads and validates a JSON body, writing a 400 on failure.
func (h *Handlers) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := decodeJSON(r, v); err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid request body: %v", err))
		return false
	}
	if err := h.validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			WriteBadRequest(w, validationMessage(verrs))
			return false
		}
		h.writeErr(w, r, err)
		return false
	}
	return true
}

func validationMessage(errs validator.ValidationErrors) string {
	msgs := make([]string, 0, len(errs))
	for _, fe := range errs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s failed %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
		}
	}
	return "Invalid request: " + strings.Join(msgs, "; ")
}

// writeErr maps err onto the response envelope. Errors the client did not
// cause are logged and hidden.
func (h *Handlers) writeErr(w http.ResponseWriter, r *http.Request, err error) {
	if database.IsNotFound(err) {
		WriteNotFound(w, "Not found")
		return
	}
	var (
		rdErr *rdRangeError
		qErr  *queryError
	)
	switch {
	case errors.As(err, &rdErr):
		WriteError(w, http.StatusBadRequest, rdErr.Error(), CodeRangeError)
		return
	case errors.As(err, &qErr):
		WriteBadRequest(w, qErr.Error())
		return
	}
	status, code, ok := errorStatus(err)
	if !ok {
		logger.Error(r.Context(), "request failed", err, slog.String("path", r.URL.Path))
		WriteInternalError(w, "Internal server error")
		return
	}
	WriteError(w, status, err.Error(), code)
}

// decodeJSON decodes JSON request body.
func decodeJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return fmt.Errorf("request body is empty")
	}
	defer r.Body.Close()

	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, 1<<16))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
