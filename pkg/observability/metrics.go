package observability

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/structdict/pkg/record"
)

// Metrics counts record operations by variant, operation and outcome.
type Metrics struct {
	operations *prometheus.CounterVec
	rejections *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "structdict_operations_total",
				Help: "Total number of record operations",
			},
			[]string{"variant", "op", "result"},
		),
		rejections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "structdict_rejections_total",
				Help: "Total number of rejected record operations by error kind",
			},
			[]string{"variant", "kind"},
		),
	}

	for _, c := range []prometheus.Collector{m.operations, m.rejections} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Hooks returns lifecycle hooks that record into m.
func (m *Metrics) Hooks() record.Hooks {
	ok := func(e *record.Event) {
		m.operations.WithLabelValues(e.Variant, string(e.Op), "ok").Inc()
	}
	return record.Hooks{
		OnCreate: ok,
		OnUpdate: ok,
		OnReject: func(e *record.Event) {
			m.operations.WithLabelValues(e.Variant, string(e.Op), "rejected").Inc()
			m.rejections.WithLabelValues(e.Variant, record.KindOf(e.Err)).Inc()
		},
	}
}
