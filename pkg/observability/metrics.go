package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics instruments classification runs and menu churn. It satisfies
// menu.Recorder so it can be handed to a registrar directly.
type Metrics struct {
	classifyRuns prometheus.Counter
	menuAdds     prometheus.Counter
	menuRemoves  prometheus.Counter
	menuSize     prometheus.Gauge
}

// New registers the Atrium collectors on reg and returns the metrics
// handle. Pass prometheus.DefaultRegisterer for global registration.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		classifyRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "atrium_classify_runs_total",
			Help: "Number of times the admin tree was classified.",
		}),
		menuAdds: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "atrium_menu_adds_total",
			Help: "Number of menu record upserts.",
		}),
		menuRemoves: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "atrium_menu_removes_total",
			Help: "Number of menu record removals.",
		}),
		menuSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "atrium_menu_records",
			Help: "Current number of registered menu records.",
		}),
	}
	reg.MustRegister(m.classifyRuns, m.menuAdds, m.menuRemoves, m.menuSize)
	return m
}

// ClassifyRun counts one classification pass.
func (m *Metrics) ClassifyRun() {
	m.classifyRuns.Inc()
}

// MenuAdded counts one record upsert.
func (m *Metrics) MenuAdded() {
	m.menuAdds.Inc()
}

// MenuRemoved counts one record removal.
func (m *Metrics) MenuRemoved() {
	m.menuRemoves.Inc()
}

// MenuSize records the current registry size.
func (m *Metrics) MenuSize(n int) {
	m.menuSize.Set(float64(n))
}

// Handler returns an HTTP handler serving metrics gathered from reg.
func Handler(reg prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}
