// Copyright 2026 Bazaar Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"context"

	identitymw "github.com/bazaarlabs/seller-service/internal/identity"
	"github.com/bazaarlabs/seller-service/internal/types"
)

type ServiceInterface interface {
	Resolve(ctx context.Context, assertion *identitymw.Assertion) (*types.Account, error)
}

// StorageInterface defines the storage operations required by the identity
// resolver. It is a subset of the internal/storage interface.
type StorageInterface interface {
	CreateAccount(ctx context.Context, a *types.Account) (*types.Account, error)
	GetAccountBySubject(ctx context.Context, subjectKey string) (*types.Account, error)
	GetAccountByEmail(ctx context.Context, email string) (*types.Account, error)
	SetAccountRole(ctx context.Context, id int64, role types.Role) error
}
