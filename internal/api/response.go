package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/zapponejosh/calendrics-api/internal/calendar"
	"github.com/zapponejosh/calendrics-api/internal/calendrical"
)

// Error codes carried in ErrorInfo.Code.
const (
	CodeBadRequest       = "BAD_REQUEST"
	CodeNotFound         = "NOT_FOUND"
	CodeRangeError       = "RANGE_ERROR"
	CodeUnknownEra       = "UNKNOWN_ERA"
	CodeUnknownMonthCode = "UNKNOWN_MONTH_CODE"
	CodeRateLimited      = "RATE_LIMITED"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeInternalError    = "INTERNAL_ERROR"
	CodeUnhealthy        = "HEALTH_CHECK_FAILED"
)

// Response represents a standard API response.
type Response struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo contains error details.
type ErrorInfo struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// WriteSuccess writes a successful JSON response.
func WriteSuccess(w http.ResponseWriter, data any) error {
	return WriteJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    data,
	})
}

// WriteError writes an error JSON response.
func WriteError(w http.ResponseWriter, status int, message, code string) error {
	return WriteJSON(w, status, Response{
		Success: false,
		Error:   &ErrorInfo{Message: message, Code: code},
	})
}

// WriteNotFound writes a 404 Not Found response.
func WriteNotFound(w http.ResponseWriter, message string) error {
	return WriteError(w, http.StatusNotFound, message, CodeNotFound)
}

// WriteBadRequest writes a 400 Bad Request response.
func WriteBadRequest(w http.ResponseWriter, message string) error {
	return WriteError(w, http.StatusBadRequest, message, CodeBadRequest)
}

// WriteInternalError writes a 500 Internal Server Error response.
func WriteInternalError(w http.ResponseWriter, message string) error {
	return WriteError(w, http.StatusInternalServerError, message, CodeInternalError)
}

// WriteUnauthorized writes a 401 Unauthorized response.
func WriteUnauthorized(w http.ResponseWriter, message string) error {
	return WriteError(w, http.StatusUnauthorized, message, CodeUnauthorized)
}

// errorStatus maps an engine or request error to a status and code. ok is
// false for errors the client did not cause.
func errorStatus(err error) (status int, code string, ok bool) {
	var (
		rangeErr *calendar.RangeError
		monthErr *calendar.UnknownMonthCodeError
		locErr   *calendrical.LocationError
		castErr  calendrical.CastError
		valErrs  validator.ValidationErrors
	)
	switch {
	case errors.Is(err, calendar.ErrUnknownCalendar):
		return http.StatusNotFound, CodeNotFound, true
	case errors.Is(err, calendar.ErrUnknownEra):
		return http.StatusBadRequest, CodeUnknownEra, true
	case errors.As(err, &monthErr):
		return http.StatusBadRequest, CodeUnknownMonthCode, true
	case errors.As(err, &rangeErr), errors.As(err, &locErr), errors.As(err, &castErr):
		return http.StatusBadRequest, CodeRangeError, true
	case errors.Is(err, calendar.ErrCalendarMismatch), errors.Is(err, calendar.ErrInvalidDate),
		errors.As(err, &valErrs):
		return http.StatusBadRequest, CodeBadRequest, true
	}
	return http.StatusInternalServerError, CodeInternalError, false
}
