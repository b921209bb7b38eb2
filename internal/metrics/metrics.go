package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"profile_validator/internal/domain/entity"
)

const (
	outcomeValid   = "valid"
	outcomeInvalid = "invalid"
)

// Metrics provides observability for profile validation.
type Metrics struct {
	// Field validations by field and outcome
	Validations *prometheus.CounterVec

	// Field scores on the 20-point scale
	FieldScore *prometheus.HistogramVec

	// Password strength tiers
	PasswordStrength prometheus.Histogram

	// Oracle calls by provider and status
	OracleCalls *prometheus.CounterVec

	// Oracle round-trip latency by provider
	OracleLatency *prometheus.HistogramVec
}

// New registers all validation metrics with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Validations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "profile_validator_validations_total",
			Help: "Total field validations by field and outcome",
		}, []string{"field", "outcome"}),

		FieldScore: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "profile_validator_field_score",
			Help:    "Field scores on the 20-point scale",
			Buckets: prometheus.LinearBuckets(0, 4, 6), //nolint:mnd
		}, []string{"field"}),

		PasswordStrength: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "profile_validator_password_strength",
			Help:    "Password strength tiers from 0 to 10",
			Buckets: prometheus.LinearBuckets(0, 1, 11), //nolint:mnd
		}),

		OracleCalls: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "profile_validator_oracle_calls_total",
			Help: "Total text-quality oracle calls by provider and status",
		}, []string{"provider", "status"}),

		OracleLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "profile_validator_oracle_duration_seconds",
			Help:    "Duration of text-quality oracle calls by provider",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 4, 8},
		}, []string{"provider"}),
	}
}

// ObserveField records one field validation.
func (m *Metrics) ObserveField(field entity.Field, result entity.Result) {
	if m == nil {
		return
	}

	outcome := outcomeInvalid
	if result.Valid {
		outcome = outcomeValid
	}

	m.Validations.WithLabelValues(field.String(), outcome).Inc()
	m.FieldScore.WithLabelValues(field.String()).Observe(float64(result.Score))
}

// ObservePassword records a password strength tier.
func (m *Metrics) ObservePassword(strength int) {
	if m != nil {
		m.PasswordStrength.Observe(float64(strength))
	}
}

// ObserveOracleCall records one backend call of the text-quality oracle.
func (m *Metrics) ObserveOracleCall(provider, status string, d time.Duration) {
	if m != nil {
		m.OracleCalls.WithLabelValues(provider, status).Inc()
		m.OracleLatency.WithLabelValues(provider).Observe(d.Seconds())
	}
}
