package handlers

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type contextKey string

const requestIDKey contextKey = "request_id"

// Prometheus metrics
var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "f1_http_requests_total",
		Help: "Total number of HTTP requests by path, method and status",
	}, []string{"path", "method", "status"})

	httpRequestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "f1_http_request_duration_seconds",
		Help:    "Duration of HTTP request handling",
		Buckets: prometheus.DefBuckets,
	})
)

// statusRecorder captures the status code written by downstream handlers.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

// RequestID tags every request with an identifier, honoring one supplied by
// the caller, and echoes it back in the response headers.
func (h *Handler) RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", id)
		ctx := context.WithValue(r.Context(), requestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestLogger logs each request with its status and duration and feeds the
// HTTP metrics.
func (h *Handler) RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		duration := time.Since(start)
		httpRequestsTotal.WithLabelValues(r.URL.Path, r.Method, strconv.Itoa(rec.status)).Inc()
		httpRequestDuration.Observe(duration.Seconds())

		requestID, _ := r.Context().Value(requestIDKey).(string)
		h.logger.Infow("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", duration,
			"request_id", requestID,
		)
	})
}

// getIP extracts the client address, preferring proxy headers.
func getIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return fwd
	}
	if real := r.Header.Get("X-Real-IP"); real != "" {
		return real
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
