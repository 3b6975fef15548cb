package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/wgomg/digest/internal/utils"
	"github.com/wgomg/digest/internal/utils/httputils"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// withRequestID tags each request with the caller's X-Request-ID or a fresh
// UUID, echoes it back, and logs the request once it completes.
func withRequestID(next http.Handler, logger *utils.Logger, metrics *Metrics) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(httputils.RequestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		w.Header().Set(httputils.RequestIDHeader, reqID)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		r = r.WithContext(utils.WithRequestID(r.Context(), reqID))
		next.ServeHTTP(rec, r)

		// the mux records the matched pattern on the request it was given
		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		metrics.observeRequest(route, rec.status)

		logger.Info(&reqID, "%s %s -> %d (%s)", r.Method, r.URL.Path, rec.status, time.Since(start).Round(time.Microsecond))
	})
}
