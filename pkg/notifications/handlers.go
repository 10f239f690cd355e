// Copyright 2026 Bazaar Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notifications

import (
	"errors"
	"net/http"
	"strconv"

	chi "github.com/go-chi/chi/v5"

	httpTypes "github.com/bazaarlabs/seller-service/internal/http/types"
	"github.com/bazaarlabs/seller-service/internal/logging"
	"github.com/bazaarlabs/seller-service/internal/tracing"
	"github.com/bazaarlabs/seller-service/pkg/identity"
)

type API struct {
	service ServiceInterface

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		tracer:  tracer,
		logger:  logger,
	}
}

// RegisterEndpoints mounts the notification inbox routes. The router is
// expected to already require an authenticated account.
func (a *API) RegisterEndpoints(router chi.Router) {
	router.Get("/api/v0/notifications", a.list)
	router.Get("/api/v0/notifications/unread-count", a.unreadCount)
	router.Post("/api/v0/notifications/{id}/read", a.markRead)
	router.Post("/api/v0/notifications/read-all", a.markAllRead)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "notifications.API.list")
	defer span.End()

	account, ok := identity.AccountFromContext(ctx)
	if !ok {
		httpTypes.WriteError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	query := r.URL.Query()

	var limit, offset uint64
	if raw := query.Get("limit"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			httpTypes.WriteError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}
	if raw := query.Get("offset"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			httpTypes.WriteError(w, http.StatusBadRequest, "invalid offset")
			return
		}
		offset = parsed
	}
	unreadOnly := query.Get("unread") == "true"

	notifs, err := a.service.ListForAccount(ctx, account.ID, limit, offset, unreadOnly)
	if err != nil {
		a.logger.Errorf("failed to list notifications for account %d: %v", account.ID, err)
		httpTypes.WriteError(w, http.StatusInternalServerError, "failed to list notifications")
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, notifs)
}

func (a *API) unreadCount(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "notifications.API.unreadCount")
	defer span.End()

	account, ok := identity.AccountFromContext(ctx)
	if !ok {
		httpTypes.WriteError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	count, err := a.service.UnreadCount(ctx, account.ID)
	if err != nil {
		a.logger.Errorf("failed to count unread notifications for account %d: %v", account.ID, err)
		httpTypes.WriteError(w, http.StatusInternalServerError, "failed to count unread notifications")
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, map[string]int{"unread": count})
}

func (a *API) markRead(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "notifications.API.markRead")
	defer span.End()

	account, ok := identity.AccountFromContext(ctx)
	if !ok {
		httpTypes.WriteError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		httpTypes.WriteError(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := a.service.MarkRead(ctx, id, account.ID); err != nil {
		if errors.Is(err, ErrNotFound) {
			httpTypes.WriteError(w, http.StatusNotFound, err.Error())
			return
		}
		a.logger.Errorf("failed to mark notification %d read: %v", id, err)
		httpTypes.WriteError(w, http.StatusInternalServerError, "failed to mark notification read")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) markAllRead(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "notifications.API.markAllRead")
	defer span.End()

	account, ok := identity.AccountFromContext(ctx)
	if !ok {
		httpTypes.WriteError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	updated, err := a.service.MarkAllRead(ctx, account.ID)
	if err != nil {
		a.logger.Errorf("failed to mark all notifications read for account %d: %v", account.ID, err)
		httpTypes.WriteError(w, http.StatusInternalServerError, "failed to mark notifications read")
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, map[string]int64{"updated": updated})
}
