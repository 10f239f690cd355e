// Copyright 2026 Bazaar Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"context"

	"github.com/bazaarlabs/seller-service/internal/types"
)

// Define a private custom type to avoid collisions
type contextKey struct{}

var accountContextKey = contextKey{}

// WithAccount returns a new context with the resolved account attached.
func WithAccount(ctx context.Context, account *types.Account) context.Context {
	return context.WithValue(ctx, accountContextKey, account)
}

// AccountFromContext retrieves the resolved account from the context.
func AccountFromContext(ctx context.Context) (*types.Account, bool) {
	account, ok := ctx.Value(accountContextKey).(*types.Account)
	return account, ok
}
