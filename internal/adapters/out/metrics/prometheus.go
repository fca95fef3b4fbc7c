// Package metrics exports business counters to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"
)

const namespace = "marketplace"

// Prometheus implements ports.Metrics.
type Prometheus struct {
	transitions *prometheus.CounterVec
	delivered   prometheus.Counter
	revenue     prometheus.Counter
}

// NewPrometheus registers the counters on reg. Pass prometheus.DefaultRegisterer to
// expose them on the default /metrics handler.
func NewPrometheus(reg prometheus.Registerer) *Prometheus {
	factory := promauto.With(reg)

	return &Prometheus{
		transitions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "status_transitions_total",
				Help:      "Committed status transitions by subject.",
			},
			[]string{"subject", "from", "to"},
		),
		delivered: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_delivered_total",
			Help:      "Orders that reached DELIVERED.",
		}),
		revenue: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "delivered_revenue_total",
			Help:      "Sum of the totals of delivered orders.",
		}),
	}
}

func (p *Prometheus) StatusChanged(subject, from, to string) {
	p.transitions.WithLabelValues(subject, from, to).Inc()
}

func (p *Prometheus) OrderDelivered(total decimal.Decimal) {
	p.delivered.Inc()
	if total.IsPositive() {
		p.revenue.Add(total.InexactFloat64())
	}
}
