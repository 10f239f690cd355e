// Copyright 2026 Bazaar Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	chi "github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	httpTypes "github.com/bazaarlabs/seller-service/internal/http/types"
	"github.com/bazaarlabs/seller-service/internal/logging"
	"github.com/bazaarlabs/seller-service/internal/tracing"
	"github.com/bazaarlabs/seller-service/pkg/identity"
)

const (
	defaultPendingPageSize = 50
	maxPendingPageSize     = 200
)

type submitRequest struct {
	Profile map[string]any `json:"profile"`
}

type approveRequest struct {
	MaxListings int    `json:"max_listings" validate:"required,gt=0"`
	Notes       string `json:"notes"`
}

type rejectRequest struct {
	Notes string `json:"notes" validate:"required"`
}

type revokeRequest struct {
	Reason string `json:"reason" validate:"required"`
}

type API struct {
	service ServiceInterface

	validate *validator.Validate
	tracer   tracing.TracingInterface
	logger   logging.LoggerInterface
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	return &API{
		service:  service,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		tracer:   tracer,
		logger:   logger,
	}
}

// RegisterEndpoints mounts the seller-facing routes. The router is expected to
// already require an authenticated account.
func (a *API) RegisterEndpoints(router chi.Router) {
	router.Post("/api/v0/seller/requests", a.submit)
	router.Get("/api/v0/seller/capacity", a.capacity)
}

// RegisterAdminEndpoints mounts the review-queue routes. The router is
// expected to already require a reviewer role.
func (a *API) RegisterAdminEndpoints(router chi.Router) {
	router.Get("/api/v0/seller/requests/pending", a.listPending)
	router.Get("/api/v0/seller/requests/{id}", a.getRequest)
	router.Post("/api/v0/seller/requests/{id}/approve", a.approve)
	router.Post("/api/v0/seller/requests/{id}/reject", a.reject)
	router.Post("/api/v0/seller/accounts/{id}/revoke", a.revoke)
}

func (a *API) submit(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "access.API.submit")
	defer span.End()

	account, ok := identity.AccountFromContext(ctx)
	if !ok {
		httpTypes.WriteError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	var body submitRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	request, err := a.service.Submit(ctx, account.ID, body.Profile)
	if err != nil {
		switch {
		case errors.Is(err, ErrAlreadyPending), errors.Is(err, ErrDuplicateRequest):
			httpTypes.WriteError(w, http.StatusConflict, err.Error())
		default:
			a.logger.Errorf("failed to submit access request: %v", err)
			httpTypes.WriteError(w, http.StatusInternalServerError, "failed to submit access request")
		}
		return
	}

	httpTypes.WriteJSON(w, http.StatusCreated, request)
}

func (a *API) capacity(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "access.API.capacity")
	defer span.End()

	account, ok := identity.AccountFromContext(ctx)
	if !ok {
		httpTypes.WriteError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	capacity, err := a.service.CheckCapacity(ctx, account.ID)
	if err != nil {
		if errors.Is(err, ErrNoActiveGrant) {
			httpTypes.WriteError(w, http.StatusForbidden, err.Error())
			return
		}
		a.logger.Errorf("failed to check capacity for account %d: %v", account.ID, err)
		httpTypes.WriteError(w, http.StatusInternalServerError, "failed to check capacity")
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, capacity)
}

func (a *API) listPending(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "access.API.listPending")
	defer span.End()

	limit := uint64(defaultPendingPageSize)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			httpTypes.WriteError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}
	if limit > maxPendingPageSize {
		limit = maxPendingPageSize
	}

	var offset uint64
	if raw := r.URL.Query().Get("offset"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			httpTypes.WriteError(w, http.StatusBadRequest, "invalid offset")
			return
		}
		offset = parsed
	}

	requests, err := a.service.ListPending(ctx, limit, offset)
	if err != nil {
		a.logger.Errorf("failed to list pending requests: %v", err)
		httpTypes.WriteError(w, http.StatusInternalServerError, "failed to list pending requests")
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, requests)
}

func (a *API) getRequest(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "access.API.getRequest")
	defer span.End()

	id, ok := a.pathID(w, r)
	if !ok {
		return
	}

	request, err := a.service.GetRequest(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpTypes.WriteError(w, http.StatusNotFound, err.Error())
			return
		}
		a.logger.Errorf("failed to get access request %d: %v", id, err)
		httpTypes.WriteError(w, http.StatusInternalServerError, "failed to get access request")
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, request)
}

func (a *API) approve(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "access.API.approve")
	defer span.End()

	reviewer, ok := identity.AccountFromContext(ctx)
	if !ok {
		httpTypes.WriteError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	id, ok := a.pathID(w, r)
	if !ok {
		return
	}

	var body approveRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(body); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, "max_listings must be a positive integer")
		return
	}

	request, err := a.service.Approve(ctx, id, reviewer.ID, body.MaxListings, body.Notes)
	if err != nil {
		a.writeReviewError(w, id, err)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, request)
}

func (a *API) reject(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "access.API.reject")
	defer span.End()

	reviewer, ok := identity.AccountFromContext(ctx)
	if !ok {
		httpTypes.WriteError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	id, ok := a.pathID(w, r)
	if !ok {
		return
	}

	var body rejectRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(body); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, "notes are required when rejecting")
		return
	}

	request, err := a.service.Reject(ctx, id, reviewer.ID, body.Notes)
	if err != nil {
		a.writeReviewError(w, id, err)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, request)
}

func (a *API) revoke(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "access.API.revoke")
	defer span.End()

	actor, ok := identity.AccountFromContext(ctx)
	if !ok {
		httpTypes.WriteError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	accountID, ok := a.pathID(w, r)
	if !ok {
		return
	}

	var body revokeRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(body); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, "a revocation reason is required")
		return
	}

	if err := a.service.RevokeGrant(ctx, accountID, actor.ID, body.Reason); err != nil {
		if errors.Is(err, ErrNoActiveGrant) {
			httpTypes.WriteError(w, http.StatusConflict, err.Error())
			return
		}
		a.logger.Errorf("failed to revoke grant for account %d: %v", accountID, err)
		httpTypes.WriteError(w, http.StatusInternalServerError, "failed to revoke grant")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) writeReviewError(w http.ResponseWriter, id int64, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		httpTypes.WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrAlreadyReviewed):
		httpTypes.WriteError(w, http.StatusConflict, err.Error())
	default:
		a.logger.Errorf("failed to review access request %d: %v", id, err)
		httpTypes.WriteError(w, http.StatusInternalServerError, "failed to review access request")
	}
}

func (a *API) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		httpTypes.WriteError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}
