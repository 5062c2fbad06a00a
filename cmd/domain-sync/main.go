package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/content-services/domain-sync-backend/pkg/clients/registry_client"
	"github.com/content-services/domain-sync-backend/pkg/config"
	"github.com/content-services/domain-sync-backend/pkg/dao"
	"github.com/content-services/domain-sync-backend/pkg/db"
	"github.com/content-services/domain-sync-backend/pkg/instrumentation"
	"github.com/content-services/domain-sync-backend/pkg/instrumentation/custom"
	"github.com/content-services/domain-sync-backend/pkg/jobs"
	"github.com/content-services/domain-sync-backend/pkg/reconcile"
	"github.com/content-services/domain-sync-backend/pkg/router"
	"github.com/getsentry/sentry-go"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

func main() {
	config.Load()
	config.ConfigureLogging()
	config.ConfigureSentry()
	defer config.FlushSentry()
	defer sentry.Recover()
	log.Info().Msgf("starting %s", config.ProgramString())

	if err := db.Connect(); err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	ctx, cancel := signal.NotifyContext(log.Logger.WithContext(context.Background()), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	reg := prometheus.NewRegistry()
	metrics := instrumentation.NewMetrics(reg)

	apiServer := router.ConfigureEchoWithMetrics(ctx, metrics)
	metricsServer := metricsServer(reg)
	if collector := custom.NewCollector(ctx, metrics, db.DB); collector != nil {
		go collector.Run()
	}

	scheduler, err := newScheduler(ctx, metrics)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to configure reconcile schedule")
	}
	scheduler.Start()

	go serve(apiServer, ":8000")
	go serve(metricsServer, fmt.Sprintf(":%d", config.Get().Metrics.Port))

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	scheduler.Stop(shutdownCtx)
	for _, e := range []*echo.Echo{apiServer, metricsServer} {
		if err := e.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("graceful shutdown failed")
		}
	}
	if err := db.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close database")
	}
}

func metricsServer(reg *prometheus.Registry) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.GET(config.Get().Metrics.Path, echo.WrapHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))
	return e
}

func newScheduler(ctx context.Context, metrics *instrumentation.Metrics) (*jobs.Scheduler, error) {
	options := config.Get().Options
	if options.SyncSchedule == "" {
		return nil, nil
	}
	daoReg := dao.GetDaoRegistry(db.DB)
	client := registry_client.NewClient(registry_client.OnRetry(metrics.RecordRegistryRetry))
	reconciler, err := reconcile.NewConfiguredReconciler(ctx, daoReg, client, metrics)
	if err != nil {
		return nil, err
	}
	return jobs.NewScheduler(ctx, options.SyncSchedule, daoReg.Domain, reconciler, options.SyncConcurrency, metrics)
}

func serve(e *echo.Echo, address string) {
	if err := e.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Str("address", address).Msg("server stopped")
	}
}
