// Copyright 2026 Bazaar Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package audit

import (
	"context"
	"net"
	"net/http"
)

type contextKey struct{}

var originContextKey = contextKey{}

// WithOrigin returns a new context carrying the actor's network metadata.
func WithOrigin(ctx context.Context, origin Origin) context.Context {
	return context.WithValue(ctx, originContextKey, origin)
}

// OriginFromContext retrieves the origin, returning a zero value when the
// request path never captured one.
func OriginFromContext(ctx context.Context) Origin {
	if origin, ok := ctx.Value(originContextKey).(Origin); ok {
		return origin
	}
	return Origin{}
}

// OriginMiddleware captures the caller's address and user agent so later
// privileged transitions can attribute their audit entries.
func OriginMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := r.Header.Get("X-Forwarded-For")
		if ip == "" {
			if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
				ip = host
			} else {
				ip = r.RemoteAddr
			}
		}

		ctx := WithOrigin(r.Context(), Origin{
			IP:        ip,
			UserAgent: r.UserAgent(),
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
