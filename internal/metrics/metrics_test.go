package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"profile_validator/internal/domain/entity"
	"profile_validator/internal/metrics"
)

func TestMetrics(t *testing.T) {
	rq := require.New(t)

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.ObserveField(entity.FieldEmail, entity.Result{Valid: true, Score: 20})
	m.ObserveField(entity.FieldEmail, entity.Result{Valid: false, Score: 0})
	m.ObserveField(entity.FieldName, entity.Result{Valid: true, Score: 12})
	m.ObservePassword(8)
	m.ObserveOracleCall("LanguageTool", "success", 120*time.Millisecond)
	m.ObserveOracleCall("OpenAI", "error", time.Second)

	rq.InDelta(1, testutil.ToFloat64(m.Validations.WithLabelValues("email", "valid")), 0)
	rq.InDelta(1, testutil.ToFloat64(m.Validations.WithLabelValues("email", "invalid")), 0)
	rq.InDelta(1, testutil.ToFloat64(m.Validations.WithLabelValues("name", "valid")), 0)
	rq.InDelta(1, testutil.ToFloat64(m.OracleCalls.WithLabelValues("OpenAI", "error")), 0)
	rq.Equal(2, testutil.CollectAndCount(m.FieldScore))
	rq.Equal(1, testutil.CollectAndCount(m.PasswordStrength))
	rq.Equal(2, testutil.CollectAndCount(m.OracleLatency))
}

func TestMetricsNil(t *testing.T) {
	var m *metrics.Metrics

	require.NotPanics(t, func() {
		m.ObserveField(entity.FieldBio, entity.Result{})
		m.ObservePassword(3)
		m.ObserveOracleCall("Gemini", "success", time.Millisecond)
	})
}
