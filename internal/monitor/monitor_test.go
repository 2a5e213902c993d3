package monitor

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ludo-authority/ludo-backend/internal/apperror"
)

func TestOutcome(t *testing.T) {
	assert.Equal(t, OutcomeOK, Outcome(nil))
	assert.Equal(t, OutcomeNotFound, Outcome(fmt.Errorf("lookup: %w", apperror.ErrNotFound)))
	assert.Equal(t, OutcomeInvalid, Outcome(apperror.Invalid(apperror.ErrNotYourTurn)))
	assert.Equal(t, OutcomeError, Outcome(apperror.ErrInternal))
}

func TestMonitor_ObserveAction(t *testing.T) {
	// Given: a fresh monitor
	m := New("ludo_test")

	// When: two rolls are observed, one rejected
	m.ObserveAction("roll", nil, time.Millisecond)
	m.ObserveAction("roll", apperror.Invalid(apperror.ErrNotYourTurn), time.Millisecond)

	// Then: each outcome is counted once
	assert.InDelta(t, 1, testutil.ToFloat64(m.actions.WithLabelValues("roll", OutcomeOK)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.actions.WithLabelValues("roll", OutcomeInvalid)), 0)

	// And: the metrics endpoint exposes them
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ludo_test_actions_total")
}
