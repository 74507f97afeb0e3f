// Package respond writes JSON responses and JSON error bodies on top of
// waffle's httputil.
package respond

import (
	"net/http"

	"github.com/dalemusser/waffle/httputil"
	"go.uber.org/zap"
)

// ErrorBody is the shape of every error response. Unlike
// httputil.ErrorResponse, message is always present and error carries the
// underlying cause:
//
//	{ "message": "Server error", "error": "connection refused" }
type ErrorBody struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	httputil.WriteJSON(w, status, v)
}

// Error writes an ErrorBody. cause may be nil.
func Error(w http.ResponseWriter, status int, message string, cause error) {
	body := ErrorBody{Message: message}
	if cause != nil {
		body.Error = cause.Error()
	}
	JSON(w, status, body)
}

// Text writes a plain-text body.
func Text(w http.ResponseWriter, status int, s string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(s))
}

// UseLogger routes httputil's encode failures, which happen after the
// status line is sent, to log.
func UseLogger(log *zap.Logger) {
	httputil.SetJSONLogger(jsonLogger{log: log})
}

type jsonLogger struct {
	log *zap.Logger
}

func (l jsonLogger) Error(msg string, args ...any) {
	if len(args) > 0 {
		l.log.Error(msg, zap.Any("args", args))
		return
	}
	l.log.Error(msg)
}
