package custom

import (
	"context"
	"testing"
	"time"

	"github.com/content-services/domain-sync-backend/pkg/config"
	"github.com/content-services/domain-sync-backend/pkg/dao"
	"github.com/content-services/domain-sync-backend/pkg/instrumentation"
	"github.com/content-services/domain-sync-backend/pkg/test"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestNewCollector(t *testing.T) {
	var c *Collector
	db := test.SqliteDB(t)

	// Success case
	reg := prometheus.NewRegistry()
	metrics := instrumentation.NewMetrics(reg)
	c = NewCollector(context.Background(), metrics, db)
	assert.NotNil(t, c)

	// Forcing nil Context
	//nolint:staticcheck
	c = NewCollector(nil, metrics, db)
	assert.Nil(t, c)

	// metrics nil
	c = NewCollector(context.Background(), nil, db)
	assert.Nil(t, c)

	// db nil
	c = NewCollector(context.Background(), metrics, nil)
	assert.Nil(t, c)
}

func TestIterateNoPanic(t *testing.T) {
	db := test.SqliteDB(t)
	metrics := instrumentation.NewMetrics(prometheus.NewRegistry())
	c := NewCollector(context.Background(), metrics, db)
	require.NotNil(t, c)

	assert.NotPanics(t, func() {
		c.iterate()
	})
	assert.Equal(t, float64(0), testutil.ToFloat64(metrics.OwnersTotal))
}

func TestIterateSetsGauges(t *testing.T) {
	metrics := instrumentation.NewMetrics(prometheus.NewRegistry())
	metricsDao := dao.NewMockMetricsDao(t)
	metricsDao.On("DomainsCountByStatus", mock.Anything).Return(map[string]int{
		config.StatusVerified: 4,
		config.StatusError:    1,
	})
	metricsDao.On("OwnersCount", mock.Anything).Return(2)
	metricsDao.On("FailedSyncsLast24HoursCount", mock.Anything).Return(3)

	c := &Collector{context: context.Background(), metrics: metrics, dao: metricsDao}
	c.iterate()

	assert.Equal(t, float64(4), testutil.ToFloat64(metrics.DomainsTotal.WithLabelValues(config.StatusVerified)))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.DomainsTotal.WithLabelValues(config.StatusError)))
	assert.Equal(t, float64(0), testutil.ToFloat64(metrics.DomainsTotal.WithLabelValues(config.StatusPending)))
	assert.Equal(t, float64(2), testutil.ToFloat64(metrics.OwnersTotal))
	assert.Equal(t, float64(3), testutil.ToFloat64(metrics.FailedSyncs24HoursTotal))
}

func TestRunStopsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	metrics := instrumentation.NewMetrics(prometheus.NewRegistry())
	metricsDao := dao.NewMockMetricsDao(t)
	metricsDao.On("DomainsCountByStatus", mock.Anything).Return(map[string]int{})
	metricsDao.On("OwnersCount", mock.Anything).Return(0)
	metricsDao.On("FailedSyncsLast24HoursCount", mock.Anything).Return(0)

	ctx, cancel := context.WithCancel(context.Background())
	c := &Collector{context: ctx, metrics: metrics, dao: metricsDao}
	done := make(chan struct{})
	go func() {
		c.Run()
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("collector did not stop")
	}
}
