// Copyright 2026 Bazaar Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	httpTypes "github.com/bazaarlabs/seller-service/internal/http/types"
	"github.com/bazaarlabs/seller-service/internal/logging"
	"github.com/bazaarlabs/seller-service/internal/monitoring"
	"github.com/bazaarlabs/seller-service/internal/tracing"
	"github.com/bazaarlabs/seller-service/internal/version"
)

// PingableInterface is the readiness dependency, satisfied by the db client.
type PingableInterface interface {
	Ping(ctx context.Context) error
}

type statusPayload struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type API struct {
	db PingableInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(db PingableInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	return &API{
		db:      db,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(router chi.Router) {
	router.Get("/api/v0/status", a.alive)
	router.Get("/api/v0/ready", a.ready)
	router.Get("/api/v0/version", a.version)
}

func (a *API) alive(w http.ResponseWriter, r *http.Request) {
	httpTypes.WriteJSON(w, http.StatusOK, statusPayload{
		Status:  "ok",
		Version: version.Version,
	})
}

// ready reports whether the database answers a ping. The dependency gauge
// tracks the same signal for dashboards.
func (a *API) ready(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "status.API.ready")
	defer span.End()

	if err := a.db.Ping(ctx); err != nil {
		a.logger.Errorf("database readiness check failed: %v", err)
		if err := a.monitor.SetDependencyAvailability(map[string]string{"component": "database"}, 0); err != nil {
			a.logger.Debugf("failed to set dependency metric: %v", err)
		}
		httpTypes.WriteError(w, http.StatusServiceUnavailable, "database unavailable")
		return
	}

	if err := a.monitor.SetDependencyAvailability(map[string]string{"component": "database"}, 1); err != nil {
		a.logger.Debugf("failed to set dependency metric: %v", err)
	}
	httpTypes.WriteJSON(w, http.StatusOK, statusPayload{
		Status:  "ready",
		Version: version.Version,
	})
}

func (a *API) version(w http.ResponseWriter, r *http.Request) {
	httpTypes.WriteJSON(w, http.StatusOK, map[string]string{"version": version.Version})
}
