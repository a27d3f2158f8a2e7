// Package middleware adds additional functionality of log, tracing and authentication around request-response cycle
package middleware

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// CustomResponseWriter embeds http.ResponseWriter to override WriteHeader()
type CustomResponseWriter struct {
	Code int
	http.ResponseWriter
}

// WriteHeader overrides built-in WriteHeader to capture status code
func (crw *CustomResponseWriter) WriteHeader(statusCode int) {
	crw.Code = statusCode
	crw.ResponseWriter.WriteHeader(statusCode)
}

// LogMiddleware logs request and response
func LogMiddleware(next http.Handler, logger zerolog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		startTime := time.Now()

		// set default values for ResponseWriter in case it is not invoked
		crw := &CustomResponseWriter{
			Code:           http.StatusOK,
			ResponseWriter: w,
		}

		next.ServeHTTP(crw, r)

		event := logger.Info()
		if crw.Code >= 400 {
			event = logger.Error()
		}

		event.
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", crw.Code).
			Dur("elapsed", time.Since(startTime)).
			Msg("request served")
	})
}
