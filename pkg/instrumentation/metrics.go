package instrumentation

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NameSpace                   = "domain_sync"
	HttpStatusHistogram         = "http_status_histogram"
	ReconcileRunsTotal          = "reconcile_runs_total"
	ReconcileActionsTotal       = "reconcile_actions_total"
	ReconcileDuration           = "reconcile_duration_seconds"
	RegistryRetriesTotal        = "registry_retries_total"
	DomainsTotal                = "domains_total"
	OwnersTotal                 = "owners_total"
	FailedSyncs24HoursTotal     = "failed_syncs_24_hours_total"
	SchedulerLastRunTimestamp   = "scheduler_last_run_timestamp_seconds"
	ReconcileResultSuccess      = "success"
	ReconcileResultPartial      = "partial"
	ReconcileResultFailed       = "failed"
	ReconcileResultSkipped      = "skipped"
	ReconcileActionOutcomeOk    = "ok"
	ReconcileActionOutcomeError = "error"
)

type Metrics struct {
	HttpStatusHistogram prometheus.HistogramVec

	ReconcileRunsTotal    prometheus.CounterVec
	ReconcileActionsTotal prometheus.CounterVec
	ReconcileDuration     prometheus.Histogram
	RegistryRetriesTotal  prometheus.CounterVec

	// Collected from the database
	DomainsTotal            prometheus.GaugeVec
	OwnersTotal             prometheus.Gauge
	FailedSyncs24HoursTotal prometheus.Gauge

	SchedulerLastRunTimestamp prometheus.Gauge

	reg *prometheus.Registry
}

// See: https://prometheus.io/docs/tutorials/understanding_metric_types/#types-of-metrics
func NewMetrics(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		panic("reg cannot be nil")
	}
	factory := promauto.With(reg)
	metrics := &Metrics{
		reg: reg,
		HttpStatusHistogram: *factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: NameSpace,
			Name:      HttpStatusHistogram,
			Help:      "Duration of HTTP requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"status", "method", "path"}),
		ReconcileRunsTotal: *factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: NameSpace,
			Name:      ReconcileRunsTotal,
			Help:      "Reconcile runs by result",
		}, []string{"result"}),
		ReconcileActionsTotal: *factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: NameSpace,
			Name:      ReconcileActionsTotal,
			Help:      "Planned actions applied by reconcile runs",
		}, []string{"action", "outcome"}),
		ReconcileDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: NameSpace,
			Name:      ReconcileDuration,
			Help:      "Duration of reconcile runs",
			Buckets:   prometheus.DefBuckets,
		}),
		RegistryRetriesTotal: *factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: NameSpace,
			Name:      RegistryRetriesTotal,
			Help:      "Retried calls to the remote registry",
		}, []string{"operation"}),
		DomainsTotal: *factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: NameSpace,
			Name:      DomainsTotal,
			Help:      "Number of live domain records by status",
		}, []string{"status"}),
		OwnersTotal: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: NameSpace,
			Name:      OwnersTotal,
			Help:      "Number of owners with at least one live domain record",
		}),
		FailedSyncs24HoursTotal: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: NameSpace,
			Name:      FailedSyncs24HoursTotal,
			Help:      "Number of failed reconcile runs recorded in the last 24 hours",
		}),
		SchedulerLastRunTimestamp: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: NameSpace,
			Name:      SchedulerLastRunTimestamp,
			Help:      "Unix time of the last scheduled reconcile pass",
		}),
	}

	reg.MustRegister(collectors.NewBuildInfoCollector())

	return metrics
}

// RecordReconcileRun is safe to call on a nil receiver
func (m *Metrics) RecordReconcileRun(result string, duration time.Duration) {
	if m == nil {
		return
	}
	m.ReconcileRunsTotal.With(prometheus.Labels{"result": result}).Inc()
	m.ReconcileDuration.Observe(duration.Seconds())
}

func (m *Metrics) RecordReconcileAction(action string, success bool) {
	if m == nil {
		return
	}
	outcome := ReconcileActionOutcomeError
	if success {
		outcome = ReconcileActionOutcomeOk
	}
	m.ReconcileActionsTotal.With(prometheus.Labels{"action": action, "outcome": outcome}).Inc()
}

func (m *Metrics) RecordRegistryRetry(operation string) {
	if m == nil {
		return
	}
	m.RegistryRetriesTotal.With(prometheus.Labels{"operation": operation}).Inc()
}

func (m *Metrics) RecordSchedulerRun(at time.Time) {
	if m == nil {
		return
	}
	m.SchedulerLastRunTimestamp.Set(float64(at.Unix()))
}

func (m Metrics) Registry() *prometheus.Registry {
	return m.reg
}
