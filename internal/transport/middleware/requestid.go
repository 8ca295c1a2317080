package middleware

import (
	"net/http"

	"github.com/frahmantamala/permit-management/pkg/logger"

	"github.com/google/uuid"
)

const traceHeader = "X-Trace-ID"

// RequestID tags every request with a trace id. Callers may supply their
// own via the X-Trace-ID header; otherwise one is minted. The id is echoed
// on the response and attached to the request-scoped logger.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(traceHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(traceHeader, id)

		ctx := logger.ContextWith(r.Context(), "trace_id", id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
