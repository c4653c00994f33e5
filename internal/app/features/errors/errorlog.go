// internal/app/features/errors/errorlog.go

// Package errors pairs response writing with logging for API failures, so
// handlers report a failure with one call and nothing is silently dropped.
package errors

import (
	"net/http"

	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/httpjson"
	"go.uber.org/zap"
)

// ErrorLogger writes the shared {"error": "..."} body and records the
// underlying cause with request context.
type ErrorLogger struct {
	log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger on the app logger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{log: logger}
}

// ServerError logs the failure and responds 500. The store's error
// message is surfaced verbatim in the body, matching the API's
// historical contract.
func (e *ErrorLogger) ServerError(w http.ResponseWriter, r *http.Request, logMsg string, err error) {
	e.log.Error(logMsg,
		zap.Error(err),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path))
	httpjson.Error(w, http.StatusInternalServerError, err.Error())
}

// BadRequest logs the failure and responds 400 with the validation
// message.
func (e *ErrorLogger) BadRequest(w http.ResponseWriter, r *http.Request, logMsg string, err error) {
	e.log.Warn(logMsg,
		zap.Error(err),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path))
	httpjson.Error(w, http.StatusBadRequest, err.Error())
}

// NotFound responds 404 with the given message. Not logged; missing
// entities are a normal client outcome.
func (e *ErrorLogger) NotFound(w http.ResponseWriter, msg string) {
	httpjson.Error(w, http.StatusNotFound, msg)
}

// Conflict responds 409 with the given message.
func (e *ErrorLogger) Conflict(w http.ResponseWriter, msg string) {
	httpjson.Error(w, http.StatusConflict, msg)
}
