// Package metrics exports merge run counters in the Prometheus text format.
// Runs are batch jobs, so metrics are written to a textfile for the node
// exporter textfile collector rather than served over HTTP.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/agentstation/roster"
	"github.com/agentstation/roster/pkg/errors"
)

// Metrics holds the collectors of one merge run on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	InputRows         *prometheus.GaugeVec
	Records           prometheus.Counter
	Unmatched         prometheus.Counter
	InvalidBirthDates prometheus.Counter
	ShortAddresses    prometheus.Counter
	SecondLegal       prometheus.Counter
	Fallbacks         *prometheus.CounterVec
	MergeDuration     prometheus.Histogram
	LastRun           prometheus.Gauge
}

// New creates a Metrics instance with all roster metrics registered.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		InputRows: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "roster_input_rows",
			Help: "Data rows read per input table",
		}, []string{"table"}), // table: "persons", "contacts"

		Records: factory.NewCounter(prometheus.CounterOpts{
			Name: "roster_records_total",
			Help: "Output records assembled",
		}),

		Unmatched: factory.NewCounter(prometheus.CounterOpts{
			Name: "roster_unmatched_contacts_total",
			Help: "Contacts without a biographical row",
		}),

		InvalidBirthDates: factory.NewCounter(prometheus.CounterOpts{
			Name: "roster_invalid_birth_dates_total",
			Help: "Birth dates that could not be parsed and were left empty",
		}),

		ShortAddresses: factory.NewCounter(prometheus.CounterOpts{
			Name: "roster_short_addresses_total",
			Help: "Person addresses with fewer segments than the decomposed layout",
		}),

		SecondLegal: factory.NewCounter(prometheus.CounterOpts{
			Name: "roster_second_legal_guardians_total",
			Help: "Records with two legal guardians",
		}),

		Fallbacks: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "roster_guardian_fallbacks_total",
			Help: "Field groups filled from the second guardian, by group",
		}, []string{"group"}), // group: "name", "address", "email", "phone"

		MergeDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "roster_merge_duration_seconds",
			Help:    "Duration of the merge step",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),

		LastRun: factory.NewGauge(prometheus.GaugeOpts{
			Name: "roster_last_run_timestamp_seconds",
			Help: "Unix time of the last completed merge",
		}),
	}
}

// Registry returns the registry holding the collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Observe records a run summary.
func (m *Metrics) Observe(s roster.Summary) {
	if m == nil {
		return
	}
	m.InputRows.WithLabelValues("persons").Set(float64(s.Persons))
	m.InputRows.WithLabelValues("contacts").Set(float64(s.Contacts))
	m.Records.Add(float64(s.Records))
	m.Unmatched.Add(float64(s.Unmatched))
	m.InvalidBirthDates.Add(float64(s.InvalidBirthDates))
	m.ShortAddresses.Add(float64(s.ShortAddresses))
	m.SecondLegal.Add(float64(s.SecondLegal))
	for group, n := range s.Fallbacks {
		m.Fallbacks.WithLabelValues(group).Add(float64(n))
	}
	m.MergeDuration.Observe(s.Duration.Seconds())
	m.LastRun.Set(float64(time.Now().Unix()))
}

// WriteTextfile writes every registered metric to path in the Prometheus
// text exposition format. The write is atomic.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}
