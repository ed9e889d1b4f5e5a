package logging

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// RequestIDHeader carries the request id back to the client.
const RequestIDHeader = "X-Request-ID"

type requestIDKey struct{}

// responseRecorder captures the status and size written by the handler.
type responseRecorder struct {
	http.ResponseWriter
	status      int
	size        int64
	wroteHeader bool
}

func (r *responseRecorder) WriteHeader(status int) {
	if r.wroteHeader {
		return
	}
	r.status = status
	r.wroteHeader = true
	r.ResponseWriter.WriteHeader(status)
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	if !r.wroteHeader {
		r.WriteHeader(http.StatusOK)
	}
	n, err := r.ResponseWriter.Write(b)
	r.size += int64(n)
	return n, err
}

func (r *responseRecorder) Flush() {
	if flusher, ok := r.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

// WithHTTPLogging wraps next so every request is tagged with an id and
// logged once the response is complete.
func WithHTTPLogging(next http.Handler, logger Logger) http.Handler {
	if logger == nil || next == nil {
		return next
	}
	httpLog := Category(logger, CategoryHTTP)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := strings.ToUpper(uuid.New().String())
		r = r.WithContext(context.WithValue(r.Context(), requestIDKey{}, requestID))

		rec := &responseRecorder{ResponseWriter: w, status: http.StatusOK}
		rec.Header().Set(RequestIDHeader, requestID)

		next.ServeHTTP(rec, r)

		entry := httpLog.WithFields(logrus.Fields{
			"request_id":  requestID,
			"method":      r.Method,
			"path":        r.URL.Path,
			"query":       r.URL.RawQuery,
			"status":      rec.status,
			"bytes":       rec.size,
			"duration_ms": time.Since(start).Milliseconds(),
			"remote":      r.RemoteAddr,
			"user_agent":  r.UserAgent(),
		})
		switch {
		case rec.status >= 500:
			entry.Errorf("%s %s %d", r.Method, r.URL.Path, rec.status)
		case rec.status >= 400:
			entry.Warnf("%s %s %d", r.Method, r.URL.Path, rec.status)
		default:
			entry.Infof("%s %s %d", r.Method, r.URL.Path, rec.status)
		}
	})
}

// RequestIDFromContext extracts the id stored by WithHTTPLogging.
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(requestIDKey{}).(string); ok {
		return v
	}
	return ""
}
