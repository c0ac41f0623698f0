package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/agriprofit/transport-compare/internal/config"
	"github.com/agriprofit/transport-compare/internal/mandi"
	"github.com/agriprofit/transport-compare/internal/server"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	configLocation := flag.String("config", "", "path to configuration file (defaults apply when omitted)")
	address := flag.String("addr", "", "HTTP listen address override")
	flag.Parse()

	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return
	}

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	listenAddr := conf.Server.Address
	if *address != "" {
		listenAddr = *address
	}

	opts := server.Options{
		Logger:   logger,
		Settings: conf.Settings,
		Version:  version,
	}

	if conf.Upstream.BaseURL != "" {
		client := mandi.NewClient(conf.Upstream.BaseURL, time.Duration(conf.Upstream.TimeoutSeconds)*time.Second, logger)
		opts.Source = client
		opts.Locations = client
		logger.Info("using upstream mandi API",
			zap.String("op", "main"),
			zap.String("baseUrl", conf.Upstream.BaseURL),
		)
	} else {
		opts.Source = mandi.NewSyntheticSource(logger)
		logger.Info("no upstream configured, using synthetic mandi data",
			zap.String("op", "main"),
		)
	}

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	})

	srv := &http.Server{
		Addr:         listenAddr,
		Handler:      corsMiddleware.Handler(server.NewHandler(opts)),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting HTTP server",
			zap.String("op", "main"),
			zap.String("address", listenAddr),
		)
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		logger.Fatal("server failed",
			zap.String("op", "main"),
			zap.Error(err),
		)
	case sig := <-shutdown:
		logger.Info("shutdown signal received",
			zap.String("op", "main"),
			zap.String("signal", sig.String()),
		)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("graceful shutdown failed, closing",
				zap.String("op", "main"),
				zap.Error(err),
			)
			_ = srv.Close()
		}
	}
}
