package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"marketplace/cmd"
	httpin "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/persistence"
	"marketplace/internal/pkg/logging"

	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger, logWriter, err := logging.New(configs.Log)
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}
	if closer, isCloser := logWriter.(io.Closer); isCloser && logWriter != os.Stdout {
		defer closer.Close()
	}
	slog.SetDefault(logger)

	if err = run(configs, logger); err != nil {
		logger.Error("marketplace stopped", "error", err)
		os.Exit(1)
	}
}

func run(configs cmd.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := persistence.Open(configs.DB, logger)
	if err != nil {
		return err
	}
	if sqlDB, dbErr := gormDB.DB(); dbErr == nil {
		defer sqlDB.Close()
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, prometheus.DefaultRegisterer, logger)
	if err != nil {
		return err
	}

	e, err := httpin.NewEcho(httpin.NewServer(app.Handlers(), logger), httpin.RouterConfig{
		JWTSecret: []byte(configs.JWTSecret),
		BodyLimit: configs.BodyLimit,
		Gatherer:  prometheus.DefaultGatherer,
	}, logger)
	if err != nil {
		return err
	}

	jobManager := app.JobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", "port", configs.HTTPPort)
		if startErr := e.Start("0.0.0.0:" + configs.HTTPPort); !errors.Is(startErr, http.ErrServerClosed) {
			return startErr
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Info("shutting down")
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
