// Copyright 2026 Bazaar Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package audit

import (
	"net/http"
	"strconv"
	"time"

	chi "github.com/go-chi/chi/v5"

	httpTypes "github.com/bazaarlabs/seller-service/internal/http/types"
	"github.com/bazaarlabs/seller-service/internal/logging"
	"github.com/bazaarlabs/seller-service/internal/storage"
	"github.com/bazaarlabs/seller-service/internal/tracing"
)

type API struct {
	recorder RecorderInterface

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func NewAPI(recorder RecorderInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	return &API{
		recorder: recorder,
		tracer:   tracer,
		logger:   logger,
	}
}

// RegisterAdminEndpoints mounts the audit trail route. The router is expected
// to already require a reviewer role.
func (a *API) RegisterAdminEndpoints(router chi.Router) {
	router.Get("/api/v0/audit", a.list)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "audit.API.list")
	defer span.End()

	filter, err := a.parseFilter(r)
	if err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	entries, err := a.recorder.List(ctx, filter)
	if err != nil {
		a.logger.Errorf("failed to list audit entries: %v", err)
		httpTypes.WriteError(w, http.StatusInternalServerError, "failed to list audit entries")
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, entries)
}

func (a *API) parseFilter(r *http.Request) (storage.AuditFilter, error) {
	query := r.URL.Query()

	filter := storage.AuditFilter{
		Action:     query.Get("action"),
		TargetType: query.Get("target_type"),
	}

	if raw := query.Get("actor_id"); raw != "" {
		actorID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return filter, errInvalidFilter("actor_id")
		}
		filter.ActorID = &actorID
	}

	if raw := query.Get("since"); raw != "" {
		since, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filter, errInvalidFilter("since")
		}
		filter.Since = &since
	}

	if raw := query.Get("until"); raw != "" {
		until, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filter, errInvalidFilter("until")
		}
		filter.Until = &until
	}

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return filter, errInvalidFilter("limit")
		}
		filter.Limit = limit
	}

	if raw := query.Get("offset"); raw != "" {
		offset, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return filter, errInvalidFilter("offset")
		}
		filter.Offset = offset
	}

	return filter, nil
}

type errInvalidFilter string

func (e errInvalidFilter) Error() string {
	return "invalid " + string(e) + " filter value"
}
