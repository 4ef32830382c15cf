package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// traceIDHeader carries the request correlation identifier. Callers may
// supply their own; otherwise the middleware mints a fresh UUID.
const traceIDHeader = "X-Trace-ID"

// withTraceID attaches a trace identifier to every request: a child logger
// tagged with the trace ID is stored in the request context (so every log
// line of the request pipeline carries it), and the ID is echoed back in the
// response header for client-side correlation.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		r = r.WithContext(l.WithContext(r.Context()))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}
