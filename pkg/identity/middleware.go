// Copyright 2026 Bazaar Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"encoding/json"
	"net/http"

	identitymw "github.com/bazaarlabs/seller-service/internal/identity"
	"github.com/bazaarlabs/seller-service/internal/logging"
	"github.com/bazaarlabs/seller-service/internal/tracing"
)

// Middleware resolves the request's identity assertion into an account and
// guards routes by capability.
type Middleware struct {
	service ServiceInterface

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func NewMiddleware(service ServiceInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		service: service,
		tracer:  tracer,
		logger:  logger,
	}
}

// RequireAccount rejects unauthenticated requests and attaches the resolved
// account to the context. Resolution failure is a hard authentication failure.
func (m *Middleware) RequireAccount() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "identity.Middleware.RequireAccount")
			defer span.End()

			assertion, ok := identitymw.AssertionFromContext(ctx)
			if !ok {
				m.unauthorizedResponse(w, "missing identity assertion")
				return
			}

			account, err := m.service.Resolve(ctx, assertion)
			if err != nil {
				m.logger.Debugf("identity resolution failed: %v", err)
				m.unauthorizedResponse(w, "identity resolution failed")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithAccount(ctx, account)))
		})
	}
}

// RequireReviewer additionally requires the reviewer capability. It must be
// mounted inside RequireAccount.
func (m *Middleware) RequireReviewer() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			account, ok := AccountFromContext(r.Context())
			if !ok || !account.Role.CanReview() {
				m.forbiddenResponse(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (m *Middleware) unauthorizedResponse(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	if err := json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  http.StatusUnauthorized,
		"message": message,
	}); err != nil {
		m.logger.Errorf("failed to encode unauthorized response: %v", err)
	}
}

func (m *Middleware) forbiddenResponse(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusForbidden)
	if err := json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  http.StatusForbidden,
		"message": "administrator capability required",
	}); err != nil {
		m.logger.Errorf("failed to encode forbidden response: %v", err)
	}
}
