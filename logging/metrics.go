package logging

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsDestination counts delivered log records per severity instead of
// writing them anywhere. Attach it next to a console destination to expose
// log volume as Prometheus metrics. Message text never reaches the
// registry.
type MetricsDestination struct {
	SeverityBounds

	messages *prometheus.CounterVec
	errors   *prometheus.CounterVec
}

// NewMetricsDestination registers the counters on reg and returns a
// destination admitting every severity. Registering twice on the same
// registry panics, as promauto always does.
func NewMetricsDestination(reg prometheus.Registerer) *MetricsDestination {
	factory := promauto.With(reg)
	return &MetricsDestination{
		SeverityBounds: AllSeverities(),
		messages: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cliutil_log_records_total",
			Help: "Log records delivered, by severity title.",
		}, []string{"severity"}),
		errors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cliutil_log_errors_total",
			Help: "Log records carrying an error payload, by severity title.",
		}, []string{"severity"}),
	}
}

// LogMessage counts the record.
func (d *MetricsDestination) LogMessage(severity Severity, _ string) error {
	d.messages.WithLabelValues(severity.Title()).Inc()
	return nil
}

// LogError counts the record and its error payload.
func (d *MetricsDestination) LogError(severity Severity, _ error) error {
	d.messages.WithLabelValues(severity.Title()).Inc()
	d.errors.WithLabelValues(severity.Title()).Inc()
	return nil
}

// LogMessageError counts the record and its error payload.
func (d *MetricsDestination) LogMessageError(severity Severity, _ string, _ error) error {
	d.messages.WithLabelValues(severity.Title()).Inc()
	d.errors.WithLabelValues(severity.Title()).Inc()
	return nil
}
