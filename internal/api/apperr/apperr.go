// Package apperr owns the closed set of API error kinds and the fixed JSON
// envelope every failure renders as. Handlers route each failure through
// Write exactly once; anything unrecognized funnels to unknown_error.
package apperr

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/pvolkova/bookshelf-api/internal/logger"
)

type Kind int

const (
	Validation Kind = iota
	BadRequest
	NotFound
	Database
	Internal
	Unknown
)

// kinds maps each kind to its HTTP status and stable wire tag.
var kinds = map[Kind]struct {
	Status int
	Tag    string
}{
	Validation: {http.StatusBadRequest, "validation_error"},
	BadRequest: {http.StatusBadRequest, "bad_request_error"},
	NotFound:   {http.StatusNotFound, "not_found_error"},
	Database:   {http.StatusInternalServerError, "database_error"},
	Internal:   {http.StatusInternalServerError, "internal_server_error"},
	Unknown:    {http.StatusInternalServerError, "unknown_error"},
}

// Error is a tagged failure: a kind, a human summary, and optional extended
// detail. Details on 500-class errors stay server-side.
type Error struct {
	Kind    Kind
	Message string
	Details string
}

func (e *Error) Error() string {
	if e.Details == "" {
		return e.Message
	}
	return e.Message + ": " + e.Details
}

func E(kind Kind, message, details string) *Error {
	return &Error{Kind: kind, Message: message, Details: details}
}

type envelope struct {
	Status     string `json:"status"`
	Error      string `json:"error"`
	Message    string `json:"message"`
	Details    string `json:"details,omitempty"`
	StatusCode int    `json:"status_code"`
	Timestamp  string `json:"timestamp"`
}

// Write classifies err, logs it, and writes the error envelope. Raw driver
// errors become database_error, anything else internal_server_error; the
// client never sees 500-class details.
func Write(w http.ResponseWriter, r *http.Request, err error) {
	var ae *Error
	if !errors.As(err, &ae) {
		if pe, ok := FromPG(err); ok {
			ae = pe
		} else {
			ae = E(Internal, "Internal server error occurred", err.Error())
		}
	}

	meta, ok := kinds[ae.Kind]
	if !ok {
		meta = kinds[Unknown]
	}

	log := logger.Get()
	log.Error().
		Str("error", meta.Tag).
		Str("details", ae.Details).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg(ae.Message)

	details := ae.Details
	if meta.Status >= http.StatusInternalServerError {
		details = ""
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(meta.Status)
	_ = json.NewEncoder(w).Encode(envelope{
		Status:     "error",
		Error:      meta.Tag,
		Message:    ae.Message,
		Details:    details,
		StatusCode: meta.Status,
		Timestamp:  strconv.FormatInt(time.Now().Unix(), 10),
	})
}
