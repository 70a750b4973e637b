package handler

import (
	"fmt"
	"net/http"

	"request-uuid/internal/config"
	"request-uuid/internal/metrics"
	"request-uuid/internal/middleware"
	"request-uuid/pkg/requestid"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// scope is one route mounted behind its own request ID middleware.
type scope struct {
	name string
	mw   *requestid.Middleware
}

// scopes derives the demo routes from the configured middleware: the
// configured format itself plus one route per built-in format.
func scopes(base *requestid.Middleware) []scope {
	return []scope{
		{name: "default", mw: base},
		{name: "short", mw: base.WithIDLength(16)},
		{name: "tiny", mw: base.WithIDLength(8)},
		{name: "full", mw: base.WithFullUUID()},
		{name: "simple", mw: base.WithSimpleUUID()},
		{name: "custom", mw: base.WithCustomUUIDFormat(func(u uuid.UUID) string {
			return "req-" + requestid.SimpleString(u)
		})},
	}
}

// NewRouter mounts the echo scopes, health probes and metrics.
func NewRouter(cfg config.Config, m *metrics.Registry) (http.Handler, error) {
	base, err := cfg.RequestID.Middleware()
	if err != nil {
		return nil, fmt.Errorf("request id middleware: %w", err)
	}

	r := chi.NewRouter()
	r.Use(middleware.Logging)
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusNotFound, "no route for "+r.URL.Path)
	})

	mounted := scopes(base)
	health := &HealthHandler{}
	for _, s := range mounted {
		health.Scopes = append(health.Scopes, "/"+s.name)
		mw := s.mw.OnAssign(m.ObserveAssign(s.name))
		r.Route("/"+s.name, func(sr chi.Router) {
			sr.Use(mw.Handler)
			sr.Get("/", Echo)
		})
	}

	r.Get("/health", health.Liveness)
	r.Get("/ready", health.Readiness)
	r.Get("/status", health.Status)
	r.Method(http.MethodGet, "/metrics", m.Handler())
	return r, nil
}
