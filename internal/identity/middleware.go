// Copyright 2026 Bazaar Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"context"
	"net/http"

	"github.com/bazaarlabs/seller-service/internal/logging"
	"github.com/bazaarlabs/seller-service/internal/monitoring"
	"github.com/bazaarlabs/seller-service/internal/tracing"
)

// Headers carrying the identity assertion decoded by the upstream gateway.
// Credential verification happens there, this middleware only lifts the
// already-verified claims into the request context.
const (
	SubjectHeader       = "X-Auth-Subject"
	EmailHeader         = "X-Auth-Email"
	DisplayNameHeader   = "X-Auth-Name"
	EmailVerifiedHeader = "X-Auth-Email-Verified"
)

// Assertion is the decoded inbound identity assertion.
type Assertion struct {
	SubjectKey    string
	Email         string
	DisplayName   string
	EmailVerified bool
}

type contextKey struct{}

var assertionContextKey = contextKey{}

// WithAssertion returns a new context carrying the assertion.
func WithAssertion(ctx context.Context, a *Assertion) context.Context {
	return context.WithValue(ctx, assertionContextKey, a)
}

// AssertionFromContext retrieves the assertion, if any, from the context.
func AssertionFromContext(ctx context.Context) (*Assertion, bool) {
	a, ok := ctx.Value(assertionContextKey).(*Assertion)
	return a, ok
}

type Middleware struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewMiddleware(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// HTTPMiddleware parses the assertion headers into the request context.
// Requests without a subject pass through unauthenticated, the per-route
// account middleware decides whether that is acceptable.
func (m *Middleware) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := m.tracer.Start(r.Context(), "identity.Middleware.HTTPMiddleware")
		defer span.End()

		subject := r.Header.Get(SubjectHeader)
		if subject == "" {
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		assertion := &Assertion{
			SubjectKey:    subject,
			Email:         r.Header.Get(EmailHeader),
			DisplayName:   r.Header.Get(DisplayNameHeader),
			EmailVerified: r.Header.Get(EmailVerifiedHeader) == "true",
		}

		next.ServeHTTP(w, r.WithContext(WithAssertion(ctx, assertion)))
	})
}
