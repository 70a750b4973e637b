package metrics

import (
	"net/http"

	"request-uuid/pkg/requestid"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Sources of an assigned request ID.
const (
	SourceGenerated = "generated"
	SourceReused    = "reused"
)

type Registry struct {
	registry *prometheus.Registry

	// IDsAssigned counts identifiers handed out, by route scope and source.
	IDsAssigned *prometheus.CounterVec
	// IDLength tracks the length of assigned identifiers.
	IDLength *prometheus.HistogramVec
}

// NewRegistry builds a private registry so several instances can coexist in
// one process (tests, multiple servers).
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
		IDsAssigned: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "request_ids_assigned_total",
			Help: "Total request identifiers assigned",
		}, []string{"scope", "source"}),
		IDLength: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "request_id_length_chars",
			Help:    "Length of assigned request identifiers in characters",
			Buckets: []float64{8, 16, 32, 36, 64},
		}, []string{"scope"}),
	}
	r.registry.MustRegister(
		r.IDsAssigned,
		r.IDLength,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// ObserveAssign returns a requestid.AssignFunc recording every identifier the
// middleware of the given scope hands out.
func (r *Registry) ObserveAssign(scope string) requestid.AssignFunc {
	return func(_ *http.Request, id requestid.ID, reused bool) {
		source := SourceGenerated
		if reused {
			source = SourceReused
		}
		r.IDsAssigned.WithLabelValues(scope, source).Inc()
		r.IDLength.WithLabelValues(scope).Observe(float64(len(id)))
	}
}

func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
