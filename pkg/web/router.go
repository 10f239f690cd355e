// Copyright 2026 Bazaar Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	internalIdentity "github.com/bazaarlabs/seller-service/internal/identity"
	"github.com/bazaarlabs/seller-service/internal/logging"
	"github.com/bazaarlabs/seller-service/internal/monitoring"
	"github.com/bazaarlabs/seller-service/internal/tracing"
	"github.com/bazaarlabs/seller-service/pkg/access"
	"github.com/bazaarlabs/seller-service/pkg/audit"
	"github.com/bazaarlabs/seller-service/pkg/identity"
	"github.com/bazaarlabs/seller-service/pkg/live"
	"github.com/bazaarlabs/seller-service/pkg/metrics"
	"github.com/bazaarlabs/seller-service/pkg/notifications"
	"github.com/bazaarlabs/seller-service/pkg/status"
)

// NewRouter assembles the full HTTP surface. Public routes carry only the
// request plumbing, authenticated routes additionally resolve the account,
// admin routes require the reviewer capability on top.
func NewRouter(
	accessAPI *access.API,
	notificationsAPI *notifications.API,
	auditAPI *audit.API,
	liveAPI *live.API,
	assertionMiddleware *internalIdentity.Middleware,
	accountMiddleware *identity.Middleware,
	db status.PingableInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS([]string{"*"}),
		assertionMiddleware.HTTPMiddleware,
		audit.OriginMiddleware,
	)

	router.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(db, tracer, monitor, logger).RegisterEndpoints(router)

	router.Group(func(r chi.Router) {
		r.Use(accountMiddleware.RequireAccount())

		accessAPI.RegisterEndpoints(r)
		notificationsAPI.RegisterEndpoints(r)
		liveAPI.RegisterEndpoints(r)

		r.Group(func(admin chi.Router) {
			admin.Use(accountMiddleware.RequireReviewer())

			accessAPI.RegisterAdminEndpoints(admin)
			auditAPI.RegisterAdminEndpoints(admin)
			liveAPI.RegisterAdminEndpoints(admin)
		})
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}

func middlewareCORS(origins []string) func(http.Handler) http.Handler {
	return cors.Handler(
		cors.Options{
			AllowedOrigins: origins,
			AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
			MaxAge:         300,
		},
	)
}
