package providers

import (
	"funneld/internal/store/interfaces"
	"funneld/internal/structures"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncSubscriptions(outcome string)
	ObserveEmailSendDuration(duration time.Duration)
	IncCacheHits()
	IncCacheMisses()
}

// Subscription outcome labels.
const (
	OutcomeAccepted      = "accepted"
	OutcomeInvalid       = "invalid"
	OutcomeStoreError    = "store_error"
	OutcomeDeliveryError = "delivery_error"
)

type MetricsProvider struct {
	requestsTotal     *prometheus.CounterVec
	requestDuration   *prometheus.HistogramVec
	subscriptions     *prometheus.CounterVec
	emailSendDuration prometheus.Histogram
	cacheHits         prometheus.Counter
	cacheMisses       prometheus.Counter
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncSubscriptions(outcome string) {
	m.subscriptions.WithLabelValues(outcome).Inc()
}

func (m *MetricsProvider) ObserveEmailSendDuration(duration time.Duration) {
	m.emailSendDuration.Observe(duration.Seconds())
}

func (m *MetricsProvider) IncCacheHits() {
	m.cacheHits.Inc()
}

func (m *MetricsProvider) IncCacheMisses() {
	m.cacheMisses.Inc()
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config, store interfaces.SubscriberStoreInterface) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	m := &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "funneld_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "funneld_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		subscriptions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "funneld_subscriptions_total",
			Help: "Intake submissions by outcome",
		}, []string{"outcome"}),

		emailSendDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "funneld_email_send_duration_seconds",
			Help:    "Welcome email delivery duration in seconds",
			Buckets: prometheus.DefBuckets,
		}),

		cacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "funneld_cache_hits_total",
			Help: "Total number of cache hits",
		}),

		cacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "funneld_cache_misses_total",
			Help: "Total number of cache misses",
		}),
	}

	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "funneld_store_rows",
		Help: "Number of subscriber records in the store",
	}, func() float64 {
		return float64(store.RowCount())
	})

	return m
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) IncSubscriptions(_ string)                        {}
func (n *noopMetrics) ObserveEmailSendDuration(_ time.Duration)         {}
func (n *noopMetrics) IncCacheHits()                                    {}
func (n *noopMetrics) IncCacheMisses()                                  {}
