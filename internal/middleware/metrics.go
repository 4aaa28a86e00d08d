package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/ferdiebergado/notesvc/internal/platform/metrics"
)

// Metrics records the request count and duration. It reads the status from
// the SafeResponseWriter, so it must run after InjectWriter.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)

		status := defaultStatus
		if writer, ok := w.(*SafeResponseWriter); ok {
			status = writer.Status()
		}

		metrics.HTTPRequestsTotal.WithLabelValues(r.Method, strconv.Itoa(status)).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(r.Method).Observe(time.Since(start).Seconds())
	})
}
