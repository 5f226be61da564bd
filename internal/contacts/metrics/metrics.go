package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Command outcomes.
const (
	OutcomeOK         = "ok"
	OutcomeInputError = "input_error"
	OutcomeUnexpected = "unexpected"
)

// Metrics provides observability for the console session.
// Tracks command counts by outcome, command latency and book size.
type Metrics struct {
	CommandsTotal   *prometheus.CounterVec
	CommandDuration *prometheus.HistogramVec
	Contacts        prometheus.Gauge
}

// New registers the contact book metrics on reg. A nil reg uses the default
// registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		CommandsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "contactbook_commands_total",
			Help: "Total number of console commands by command and outcome",
		}, []string{"command", "outcome"}),
		CommandDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "contactbook_command_duration_seconds",
			Help:    "Duration of console command execution",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}, []string{"command"}),
		Contacts: factory.NewGauge(prometheus.GaugeOpts{
			Name: "contactbook_contacts",
			Help: "Number of contacts currently in the address book",
		}),
	}
}

// ObserveCommand records one executed command.
// Call with time.Now() at the start of the command.
func (m *Metrics) ObserveCommand(command, outcome string, start time.Time) {
	if m == nil {
		return
	}
	m.CommandsTotal.WithLabelValues(command, outcome).Inc()
	m.CommandDuration.WithLabelValues(command).Observe(time.Since(start).Seconds())
}

// SetContacts records the current book size.
func (m *Metrics) SetContacts(n int) {
	if m == nil {
		return
	}
	m.Contacts.Set(float64(n))
}
