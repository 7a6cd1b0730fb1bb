package metrics

import "github.com/prometheus/client_golang/prometheus"

// LeadMetrics exposes counters/histograms for the lead submission pipeline.
type LeadMetrics struct {
	submissionsTotal *prometheus.CounterVec
	crmLatency       prometheus.Histogram
}

func NewLeadMetrics(reg prometheus.Registerer) *LeadMetrics {
	m := &LeadMetrics{
		submissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "signflow",
			Subsystem: "leads",
			Name:      "submissions_total",
			Help:      "Total lead submissions by originating surface and outcome",
		}, []string{"source", "status"}),
		crmLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "signflow",
			Subsystem: "leads",
			Name:      "crm_request_seconds",
			Help:      "Latency of outbound GoHighLevel contact-creation calls",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.submissionsTotal, m.crmLatency)
	return m
}

func (m *LeadMetrics) ObserveSubmission(source, status string) {
	if m == nil {
		return
	}
	if source == "" {
		source = "website"
	}
	m.submissionsTotal.WithLabelValues(source, status).Inc()
}

func (m *LeadMetrics) ObserveCRMLatency(seconds float64) {
	if m == nil {
		return
	}
	m.crmLatency.Observe(seconds)
}
