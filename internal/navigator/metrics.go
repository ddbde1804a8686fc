package navigator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeOK        = "ok"
	outcomeVetoed    = "vetoed"
	outcomePostponed = "postponed"
	outcomeUnknown   = "unknown"
	outcomeError     = "error"
)

// Metrics records navigation outcomes. A single Metrics is shared by every
// navigator in a process.
type Metrics struct {
	navigations *prometheus.CounterVec
}

// NewMetrics registers navigation metrics with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		navigations: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: "viewport",
			Name:      "navigations_total",
			Help:      "Total number of navigation attempts, by outcome.",
		}, []string{"outcome"}),
	}
}

func (m *Metrics) observe(outcome string) {
	if m == nil {
		return
	}
	m.navigations.WithLabelValues(outcome).Inc()
}
