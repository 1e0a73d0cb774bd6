package accesslog

import (
	"net/http"
	"time"

	"github.com/KretovDmitry/canang-orders/pkg/logger"
	"github.com/go-chi/chi/v5/middleware"
)

// Handler returns a middleware that records an access log message for every HTTP request being processed.
func Handler(logger logger.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		f := func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			// The status is 200 when nothing was written explicitly.
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			logger.With(r.Context(),
				"duration", time.Since(start).Milliseconds(),
				"status", status,
			).Infof("%s %s %s %d %d", r.Method, r.URL.Path, r.Proto, status, ww.BytesWritten())
		}
		return http.HandlerFunc(f)
	}
}
