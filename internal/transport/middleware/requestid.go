package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/frahmantamala/workforce-management/pkg/logger"
)

// RequestID honors an incoming X-Trace-ID (the client sets one per request)
// or mints a fresh one, and carries it through the context logger.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get("X-Trace-ID")
		if traceID == "" {
			traceID = uuid.NewString()
		}

		ctx := logger.WithTraceID(r.Context(), traceID)
		w.Header().Set("X-Trace-ID", traceID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
