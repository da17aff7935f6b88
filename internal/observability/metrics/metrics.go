package metrics

import "github.com/prometheus/client_golang/prometheus"

// AvailabilityMetrics exposes counters/histograms for availability lookups
// and the contact relay.
type AvailabilityMetrics struct {
	lookupsTotal    *prometheus.CounterVec
	providerErrors  *prometheus.CounterVec
	providerLatency *prometheus.HistogramVec
	contactTotal    *prometheus.CounterVec
}

func NewAvailabilityMetrics(reg prometheus.Registerer) *AvailabilityMetrics {
	m := &AvailabilityMetrics{
		lookupsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "zboobraids",
			Subsystem: "availability",
			Name:      "lookups_total",
			Help:      "Total availability lookups by answering source",
		}, []string{"source"}),
		providerErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "zboobraids",
			Subsystem: "availability",
			Name:      "provider_errors_total",
			Help:      "Total provider call failures",
		}, []string{"provider"}),
		providerLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "zboobraids",
			Subsystem: "availability",
			Name:      "provider_latency_seconds",
			Help:      "Latency of upstream provider calls",
			Buckets:   prometheus.DefBuckets,
		}, []string{"provider"}),
		contactTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "zboobraids",
			Subsystem: "contact",
			Name:      "messages_total",
			Help:      "Total contact form submissions by outcome",
		}, []string{"status"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.lookupsTotal, m.providerErrors, m.providerLatency, m.contactTotal)
	return m
}

func (m *AvailabilityMetrics) IncLookup(source string) {
	if m == nil {
		return
	}
	m.lookupsTotal.WithLabelValues(source).Inc()
}

func (m *AvailabilityMetrics) IncProviderError(provider string) {
	if m == nil {
		return
	}
	m.providerErrors.WithLabelValues(provider).Inc()
}

func (m *AvailabilityMetrics) ObserveProviderLatency(provider string, seconds float64) {
	if m == nil {
		return
	}
	m.providerLatency.WithLabelValues(provider).Observe(seconds)
}

func (m *AvailabilityMetrics) IncContact(status string) {
	if m == nil {
		return
	}
	m.contactTotal.WithLabelValues(status).Inc()
}
