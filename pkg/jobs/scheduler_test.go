package jobs

import (
	"context"
	"testing"
	"time"

	"github.com/content-services/domain-sync-backend/pkg/dao"
	"github.com/content-services/domain-sync-backend/pkg/instrumentation"
	"github.com/content-services/domain-sync-backend/pkg/reconcile"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestNewSchedulerDisabled(t *testing.T) {
	s, err := NewScheduler(context.Background(), "", nil, nil, 1, nil)
	require.NoError(t, err)
	assert.Nil(t, s)
	s.Start()
	s.Stop(context.Background())
}

func TestNewSchedulerInvalid(t *testing.T) {
	_, err := NewScheduler(context.Background(), "not a schedule", nil, nil, 1, nil)
	assert.Error(t, err)
}

func TestSchedulerRuns(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())
	domains := dao.NewMockDomainDao(t)
	metrics := instrumentation.NewMetrics(prometheus.NewRegistry())
	ran := make(chan struct{}, 10)
	domains.On("ListOwners", mock.Anything).Return([]string{}, nil).Run(func(_ mock.Arguments) {
		ran <- struct{}{}
	})

	s, err := NewScheduler(context.Background(), "@every 1s", domains, reconcile.NewMockReconciler(t), 1, metrics)
	require.NoError(t, err)
	s.Start()

	select {
	case <-ran:
	case <-time.After(5 * time.Second):
		t.Fatal("scheduler did not run")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.Stop(ctx)
	assert.Greater(t, testutil.ToFloat64(metrics.SchedulerLastRunTimestamp), float64(0))
}
