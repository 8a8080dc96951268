package commands

import (
	"github.com/iov-one/quorum/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// Verification results recorded by Metrics.
const (
	ResultOK      = "ok"
	ResultFailed  = "failed"
	ResultInvalid = "invalid"
)

// Metrics collects verification counters of a single tool run. They are
// written in the node exporter textfile format so that a scheduled
// verification can be scraped.
type Metrics struct {
	registry      *prometheus.Registry
	verifications *prometheus.CounterVec
	signatures    *prometheus.GaugeVec
	ignored       *prometheus.GaugeVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		verifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quorum",
			Name:      "verifications_total",
			Help:      "Number of verifications by target type and result.",
		}, []string{"target_type", "result"}),
		signatures: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "quorum",
			Name:      "valid_signatures",
			Help:      "Distinct authorized signers found during the last verification.",
		}, []string{"target_type"}),
		ignored: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "quorum",
			Name:      "ignored_signatures",
			Help:      "Signatures that did not match any authorized key during the last verification.",
		}, []string{"target_type"}),
	}
	m.registry.MustRegister(m.verifications, m.signatures, m.ignored)
	return m
}

// Observe records the outcome of a verification.
func (m *Metrics) Observe(targetType string, err error, valid, ignored int) {
	m.verifications.WithLabelValues(targetType, ResultOf(err)).Inc()
	m.signatures.WithLabelValues(targetType).Set(float64(valid))
	m.ignored.WithLabelValues(targetType).Set(float64(ignored))
}

// WriteTextfile writes all collected metrics to the file at given path.
func (m *Metrics) WriteTextfile(path string) error {
	return errors.Wrapf(prometheus.WriteToTextfile(path, m.registry), "write metrics %q", path)
}

// ResultOf classifies a verification error.
func ResultOf(err error) string {
	switch errors.ExitCode(err) {
	case errors.ExitSuccess:
		return ResultOK
	case errors.ExitFailure:
		return ResultFailed
	default:
		return ResultInvalid
	}
}
