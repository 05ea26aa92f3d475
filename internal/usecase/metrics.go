package usecase

import "github.com/prometheus/client_golang/prometheus"

// Row and entry outcomes counted by Metrics.
const (
	resultIngested = "ingested"
	resultRejected = "rejected"
)

// Metrics counts processed rows and crawled entries.
type Metrics struct {
	rows    *prometheus.CounterVec
	entries *prometheus.CounterVec
}

// NewMetrics builds the counters and registers them with reg when it is
// not nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		rows: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "content_ingest_rows_total",
				Help: "Sheet rows processed by content type and result",
			},
			[]string{"type", "result"},
		),
		entries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "content_roundup_entries_total",
				Help: "Roundup entries processed by organisation and result",
			},
			[]string{"organisation", "result"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.rows, m.entries)
	}
	return m
}

func (m *Metrics) row(t string, result string) {
	if m != nil {
		m.rows.WithLabelValues(t, result).Inc()
	}
}

func (m *Metrics) entry(org string, result string) {
	if m != nil {
		m.entries.WithLabelValues(org, result).Inc()
	}
}
