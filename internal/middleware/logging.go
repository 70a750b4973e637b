package middleware

import (
	"net/http"
	"time"

	"request-uuid/pkg/requestid"

	"github.com/rs/zerolog/log"
)

// statusRecorder remembers the status code written by the handler chain.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *statusRecorder) Flush() {
	if flusher, ok := rec.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

func (rec *statusRecorder) Unwrap() http.ResponseWriter {
	return rec.ResponseWriter
}

// Logging is a middleware that logs requests as structured JSON including request id and latency.
// It opens the request scope itself so the ID assigned further down the chain is
// still readable once the handler has returned, and attaches the global logger
// (with requestid.LogHook) to the request context for handler code.
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ctx := requestid.WithScope(r.Context())
		ctx = log.Logger.Hook(requestid.LogHook{}).WithContext(ctx)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r.WithContext(ctx))

		id, _ := requestid.FromContext(ctx)
		log.Info().Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Str(requestid.LogField, id.String()).
			Dur("latency", time.Since(start)).
			Msg("request completed")
	})
}
