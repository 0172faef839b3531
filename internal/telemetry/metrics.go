package telemetry

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"

	"github.com/cardwise/perktrack/internal/domain/benefits"
)

// Metrics holds the service's Prometheus collectors. It implements
// benefits.Observer.
type Metrics struct {
	redemptions     *prometheus.CounterVec
	redeemedAmount  *prometheus.CounterVec
	unredemptions   *prometheus.CounterVec
	conflicts       *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

var _ benefits.Observer = (*Metrics)(nil)

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		redemptions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "perktrack",
			Name:      "redemptions_total",
			Help:      "Successful ledger writes by source.",
		}, []string{"source"}),
		redeemedAmount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "perktrack",
			Name:      "redeemed_amount_total",
			Help:      "Sum of redeemed value by source.",
		}, []string{"source"}),
		unredemptions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "perktrack",
			Name:      "unredemptions_total",
			Help:      "Unredeem calls, labelled by whether a row was removed.",
		}, []string{"removed"}),
		conflicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "perktrack",
			Name:      "redemption_conflicts_total",
			Help:      "Concurrent redemption conflicts, labelled by whether the write was retried.",
		}, []string{"retried"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "perktrack",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route and status.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
	reg.MustRegister(m.redemptions, m.redeemedAmount, m.unredemptions, m.conflicts, m.requestDuration)
	return m
}

func (m *Metrics) Redeemed(source benefits.Source, amount decimal.Decimal) {
	m.redemptions.WithLabelValues(string(source)).Inc()
	m.redeemedAmount.WithLabelValues(string(source)).Add(amount.InexactFloat64())
}

func (m *Metrics) Unredeemed(removed bool) {
	m.unredemptions.WithLabelValues(strconv.FormatBool(removed)).Inc()
}

func (m *Metrics) Conflict(retried bool) {
	m.conflicts.WithLabelValues(strconv.FormatBool(retried)).Inc()
}

func (m *Metrics) ObserveRequest(method, route string, status int, took time.Duration) {
	m.requestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(took.Seconds())
}
