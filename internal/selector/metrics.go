package selector

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/HerbHall/drivepick/pkg/models"
)

// Metrics records selection outcomes. A nil *Metrics is a no-op.
type Metrics struct {
	selections *prometheus.CounterVec
	matches    *prometheus.HistogramVec
}

// NewMetrics creates the selector collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		selections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "drivepick_selections_total",
			Help: "Total drive selections by source and outcome",
		}, []string{"source", "outcome"}),
		matches: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "drivepick_selection_matches",
			Help:    "Number of drives returned per successful selection",
			Buckets: prometheus.ExponentialBuckets(1, 2, 11),
		}, []string{"source"}),
	}
	reg.MustRegister(m.selections, m.matches)
	return m
}

// Observe records one selection. err non-nil counts as an error outcome and
// skips the match histogram.
func (m *Metrics) Observe(source string, sel models.Selection, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.selections.WithLabelValues(source, "error").Inc()
		return
	}
	m.selections.WithLabelValues(source, "ok").Inc()
	m.matches.WithLabelValues(source).Observe(float64(sel.Count))
}
