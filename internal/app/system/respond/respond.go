// Package respond writes JSON bodies and the API's error payloads.
//
// Error shapes:
//
//	{"detail": "Not found."}                         404, 405, 429, 500
//	{"error": "team_id parameter is required"}        400 for filter params
//	{"email": ["user with this email already exists."]} 400 for field validation
package respond

import (
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// FieldErrors maps a field name to its validation messages.
type FieldErrors map[string][]string

// Add appends msg to field's messages.
func (fe FieldErrors) Add(field, msg string) {
	fe[field] = append(fe[field], msg)
}

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Warn("failed to encode response", zap.Error(err))
	}
}

// NoContent writes 204 with an empty body.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Detail writes {"detail": msg}.
func Detail(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, map[string]string{"detail": msg})
}

func NotFound(w http.ResponseWriter) {
	Detail(w, http.StatusNotFound, "Not found.")
}

func MethodNotAllowed(w http.ResponseWriter) {
	Detail(w, http.StatusMethodNotAllowed, "Method not allowed.")
}

func Throttled(w http.ResponseWriter) {
	Detail(w, http.StatusTooManyRequests, "Request was throttled.")
}

// InternalError logs err and writes a generic 500. The cause is never echoed.
func InternalError(w http.ResponseWriter, log *zap.Logger, msg string, err error, fields ...zap.Field) {
	if log == nil {
		log = zap.L()
	}
	log.Error(msg, append(fields, zap.Error(err))...)
	Detail(w, http.StatusInternalServerError, "Internal server error.")
}

// MissingParam writes 400 {"error": "<param> parameter is required"}.
func MissingParam(w http.ResponseWriter, param string) {
	JSON(w, http.StatusBadRequest, map[string]string{
		"error": fmt.Sprintf("%s parameter is required", param),
	})
}

// BadParam writes 400 {"error": msg} for a present but unusable parameter.
func BadParam(w http.ResponseWriter, msg string) {
	JSON(w, http.StatusBadRequest, map[string]string{"error": msg})
}

// Validation writes 400 with the field map.
func Validation(w http.ResponseWriter, errs FieldErrors) {
	JSON(w, http.StatusBadRequest, errs)
}
