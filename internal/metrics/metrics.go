package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

// Quote outcomes.
const (
	OutcomeSuccess   = "success"
	OutcomeRejected  = "rejected"
	OutcomeMalformed = "malformed"
)

// Metrics holds the Prometheus metrics of the pricing service.
type Metrics struct {
	registry *prometheus.Registry

	Quotes        *prometheus.CounterVec
	QuoteDuration prometheus.Histogram
}

// New creates the metrics on a private registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		Quotes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "slas_quotes_total",
			Help: "Quote requests handled, by outcome",
		}, []string{"outcome"}),
		QuoteDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "slas_quote_duration_seconds",
			Help:    "Time spent pricing successful quote requests",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
	}
}

// ObserveQuote counts one handled request.
func (m *Metrics) ObserveQuote(outcome string, d time.Duration) {
	m.Quotes.WithLabelValues(outcome).Inc()
	if outcome == OutcomeSuccess {
		m.QuoteDuration.Observe(d.Seconds())
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() fasthttp.RequestHandler {
	return fasthttpadaptor.NewFastHTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
