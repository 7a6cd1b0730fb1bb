package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func findMetric(t *testing.T, reg *prometheus.Registry, name string) *dto.MetricFamily {
	t.Helper()
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather error: %v", err)
	}
	for _, mf := range families {
		if mf.GetName() == name {
			return mf
		}
	}
	t.Fatalf("metric %s not found", name)
	return nil
}

func TestObserveSubmission(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewLeadMetrics(reg)

	m.ObserveSubmission("contact-form", "ok")
	m.ObserveSubmission("contact-form", "ok")
	m.ObserveSubmission("", "error")

	mf := findMetric(t, reg, "signflow_leads_submissions_total")
	if len(mf.Metric) != 2 {
		t.Fatalf("expected 2 label combinations, got %d", len(mf.Metric))
	}
	for _, metric := range mf.Metric {
		labels := map[string]string{}
		for _, lp := range metric.Label {
			labels[lp.GetName()] = lp.GetValue()
		}
		switch labels["status"] {
		case "ok":
			if labels["source"] != "contact-form" || metric.Counter.GetValue() != 2 {
				t.Fatalf("unexpected ok series: %v", metric)
			}
		case "error":
			// Empty source falls back to the default surface tag.
			if labels["source"] != "website" || metric.Counter.GetValue() != 1 {
				t.Fatalf("unexpected error series: %v", metric)
			}
		default:
			t.Fatalf("unexpected status label: %v", labels)
		}
	}
}

func TestObserveCRMLatency(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewLeadMetrics(reg)

	m.ObserveCRMLatency(0.25)
	m.ObserveCRMLatency(1.5)

	mf := findMetric(t, reg, "signflow_leads_crm_request_seconds")
	if got := mf.Metric[0].Histogram.GetSampleCount(); got != 2 {
		t.Fatalf("expected 2 samples, got %d", got)
	}
}

func TestNilReceiverIsSafe(t *testing.T) {
	var m *LeadMetrics
	m.ObserveSubmission("contact-form", "ok")
	m.ObserveCRMLatency(0.1)
}
