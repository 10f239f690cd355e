// Copyright 2026 Bazaar Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/bazaarlabs/seller-service/internal/config"
	"github.com/bazaarlabs/seller-service/internal/db"
	internalIdentity "github.com/bazaarlabs/seller-service/internal/identity"
	"github.com/bazaarlabs/seller-service/internal/logging"
	"github.com/bazaarlabs/seller-service/internal/monitoring/prometheus"
	"github.com/bazaarlabs/seller-service/internal/storage"
	"github.com/bazaarlabs/seller-service/internal/tracing"
	"github.com/bazaarlabs/seller-service/pkg/access"
	"github.com/bazaarlabs/seller-service/pkg/audit"
	"github.com/bazaarlabs/seller-service/pkg/identity"
	"github.com/bazaarlabs/seller-service/pkg/live"
	"github.com/bazaarlabs/seller-service/pkg/notifications"
	"github.com/bazaarlabs/seller-service/pkg/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := serve(); err != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("env vars: %v", specs)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("seller-service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()
	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	identityService := identity.NewService(s, specs.AdminEmails, tracer, monitor, logger)
	auditRecorder := audit.NewRecorder(s, tracer, monitor, logger)
	notificationService := notifications.NewService(s, tracer, monitor, logger)
	liveNotifier := live.NewNotifier(logger)

	accessService := access.NewService(
		s,
		dbClient,
		notificationService,
		liveNotifier,
		auditRecorder,
		tracer,
		monitor,
		logger,
	)

	cleanupCtx, cancelCleanup := context.WithCancel(context.Background())
	defer cancelCleanup()
	go notificationService.RunCleanup(cleanupCtx, specs.NotificationCleanupEvery, specs.NotificationRetentionDays)

	router := web.NewRouter(
		access.NewAPI(accessService, tracer, logger),
		notifications.NewAPI(notificationService, tracer, logger),
		audit.NewAPI(auditRecorder, tracer, logger),
		live.NewAPI(liveNotifier, tracer, logger),
		internalIdentity.NewMiddleware(tracer, monitor, logger),
		identity.NewMiddleware(identityService, tracer, logger),
		dbClient,
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr: fmt.Sprintf("0.0.0.0:%v", specs.Port),
		// No WriteTimeout, the live event stream holds its response open
		// indefinitely.
		ReadTimeout: time.Second * 15,
		IdleTimeout: time.Second * 60,
		Handler:     router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}
