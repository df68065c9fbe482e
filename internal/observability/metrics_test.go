package observability

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_RecordLogin(t *testing.T) {
	m := NewMetrics()

	m.RecordLogin(true)
	m.RecordLogin(true)
	m.RecordLogin(false)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.loginAttempts.WithLabelValues(resultSuccess)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.loginAttempts.WithLabelValues(resultFailure)))
}

func TestMetrics_RecordRefresh(t *testing.T) {
	m := NewMetrics()

	m.RecordRefresh(true)
	m.RecordRefresh(false)
	m.RecordRefresh(false)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.tokenRefreshes.WithLabelValues(resultRotated)))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.tokenRefreshes.WithLabelValues(resultRejected)))
}

func TestMetrics_RecordRecoveryAndReset(t *testing.T) {
	m := NewMetrics()

	m.RecordRecoveryRequest()
	m.RecordRecoveryRequest()
	m.RecordPasswordReset()

	assert.Equal(t, float64(2), testutil.ToFloat64(m.recoveryRequests))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.passwordResets))
}

func TestMetrics_RecordSweep(t *testing.T) {
	m := NewMetrics()

	m.RecordSweep(3, 1)
	m.RecordSweep(2, 0)

	assert.Equal(t, float64(5), testutil.ToFloat64(m.sweptRows.WithLabelValues(kindSessions)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.sweptRows.WithLabelValues(kindRecoveries)))
}

func TestMetrics_Handler(t *testing.T) {
	m := NewMetrics()
	m.RecordLogin(true)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "atelier_login_attempts_total")
}
