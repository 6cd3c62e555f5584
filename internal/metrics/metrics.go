package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/baharkarakas/point-ledger/internal/models"
	"github.com/baharkarakas/point-ledger/internal/services"
)

// Collector records ledger outcomes. It implements services.Observer.
type Collector struct {
	mutations  *prometheus.CounterVec
	points     *prometheus.CounterVec
	rejections *prometheus.CounterVec
}

func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		mutations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "point_mutations_total",
				Help: "Total committed point mutations",
			},
			[]string{"type"}, // CHARGE|USE
		),
		points: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "point_amount_total",
				Help: "Sum of committed point amounts",
			},
			[]string{"type"},
		),
		rejections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "point_mutations_rejected_total",
				Help: "Total rejected point mutations",
			},
			[]string{"type", "reason"},
		),
	}
	reg.MustRegister(c.mutations, c.points, c.rejections)
	return c
}

func (c *Collector) Committed(typ models.TransactionType, amount int64) {
	c.mutations.WithLabelValues(string(typ)).Inc()
	c.points.WithLabelValues(string(typ)).Add(float64(amount))
}

func (c *Collector) Rejected(typ models.TransactionType, reason string) {
	c.rejections.WithLabelValues(string(typ), reason).Inc()
}

// RegisterLockGauge exposes the size of the per-user lock registry.
func RegisterLockGauge(reg prometheus.Registerer, size func() int) {
	reg.MustRegister(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "point_user_locks",
			Help: "Users with a lock in the registry",
		},
		func() float64 { return float64(size()) },
	))
}

// Handler serves /metrics for the given gatherer.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

var _ services.Observer = (*Collector)(nil)
