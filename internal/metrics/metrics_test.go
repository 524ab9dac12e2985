package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ergung/position-calculator/risk"
)

func TestRecorder(t *testing.T) {
	t.Parallel()

	r := NewRecorder()

	res, err := risk.Calculate(risk.Inputs{EntryPrice: 100, StopPrice: 95, MaxLoss: 50})
	require.NoError(t, err)
	r.Observe(res)
	r.Observe(res)
	r.Fail("stop")
	r.Fail("")

	assert.Equal(t, 2.0, testutil.ToFloat64(r.calculations.WithLabelValues("unit", "LONG")))
	assert.Equal(t, 0.0, testutil.ToFloat64(r.calculations.WithLabelValues("contract", "SHORT")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.failures.WithLabelValues("stop")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.failures.WithLabelValues("unknown")))
	assert.Equal(t, 1, testutil.CollectAndCount(r.positionValue))
}

func TestRecorderHandler(t *testing.T) {
	t.Parallel()

	r := NewRecorder()
	r.Fail("entry")

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, string(body), `possize_validation_failures_total{field="entry"} 1`)
}
