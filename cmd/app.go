package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"log/slog"

	"github.com/Yorfad/PROVIAL-sub003/internal/components"
	"github.com/Yorfad/PROVIAL-sub003/internal/config"
	"github.com/Yorfad/PROVIAL-sub003/internal/metrics"
)

func Run() error {
	logger := components.SetupLogger(os.Getenv("ENV"))

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load(appCtx)
	if err != nil {
		logger.Error("load config failed", "err", err)
		return err
	}

	comps, err := components.InitComponents(appCtx, cfg, logger)
	if err != nil {
		logger.Error("could not init components", "err", err)
		return err
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := comps.HttpServer.Run(ctx); err != nil {
			logger.Error("http server failed", "err", err)
		}
		logger.Info("http server stopped")
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		comps.Dispatcher.Run(ctx)
	}()

	var metricsSrv *http.Server
	if cfg.Metrics.Enabled {
		metricsSrv = metrics.NewServer(cfg.Metrics.Port)
		wg.Add(1)
		go func() {
			defer wg.Done()
			logger.Info("metrics server started", slog.String("addr", cfg.Metrics.Port))
			if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server failed", "err", err)
			}
		}()
	}

	quitChan := make(chan os.Signal, 1)
	signal.Notify(quitChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quitChan

	stop()
	logger.Info("captured signal, initiating shutdown", "signal", sig.String())

	if metricsSrv != nil {
		if err := metricsSrv.Shutdown(context.Background()); err != nil {
			logger.Error("metrics server shutdown failed", "err", err)
		}
	}

	wg.Wait()

	logger.Info("shutting down the services...")
	comps.ShutdownAll()
	logger.Info("gracefully shutting down the servers")

	return nil
}
