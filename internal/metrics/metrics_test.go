package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMustRegister(t *testing.T) {
	reg := prometheus.NewRegistry()
	assert.NotPanics(t, func() { MustRegister(reg) })
	assert.Panics(t, func() { MustRegister(reg) })
}

func TestIncProjection(t *testing.T) {
	before := testutil.ToFloat64(ProjectionEvents.WithLabelValues("created", "article", "ok"))
	IncProjection("created", "article", nil)
	after := testutil.ToFloat64(ProjectionEvents.WithLabelValues("created", "article", "ok"))
	assert.Equal(t, before+1, after)

	errBefore := testutil.ToFloat64(ProjectionEvents.WithLabelValues("deleted", "community", "error"))
	IncProjection("deleted", "community", errors.New("boom"))
	assert.Equal(t, errBefore+1, testutil.ToFloat64(ProjectionEvents.WithLabelValues("deleted", "community", "error")))
}

func TestIncReconcileRun(t *testing.T) {
	skipped := testutil.ToFloat64(ReconcileRuns.WithLabelValues("skipped"))
	IncReconcileRun(true, nil)
	assert.Equal(t, skipped+1, testutil.ToFloat64(ReconcileRuns.WithLabelValues("skipped")))

	ok := testutil.ToFloat64(ReconcileRuns.WithLabelValues("ok"))
	IncReconcileRun(false, nil)
	assert.Equal(t, ok+1, testutil.ToFloat64(ReconcileRuns.WithLabelValues("ok")))
}

func TestObserveDBQuery(t *testing.T) {
	before := testutil.CollectAndCount(DBQueryDuration)
	ObserveDBQuery("metrics_test_op", time.Now(), nil)
	assert.Equal(t, before+1, testutil.CollectAndCount(DBQueryDuration))
}
