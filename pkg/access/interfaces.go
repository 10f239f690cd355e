// Copyright 2026 Bazaar Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"context"

	"github.com/bazaarlabs/seller-service/internal/types"
	"github.com/bazaarlabs/seller-service/pkg/audit"
)

type ServiceInterface interface {
	Submit(ctx context.Context, accountID int64, profile map[string]any) (*types.AccessRequest, error)
	Approve(ctx context.Context, requestID, reviewerID int64, maxListings int, notes string) (*types.AccessRequest, error)
	Reject(ctx context.Context, requestID, reviewerID int64, notes string) (*types.AccessRequest, error)
	RevokeGrant(ctx context.Context, accountID, actorID int64, reason string) error
	CheckCapacity(ctx context.Context, accountID int64) (*types.Capacity, error)
	AssertCanCreateListing(ctx context.Context, accountID int64) error
	GetRequest(ctx context.Context, id int64) (*types.AccessRequest, error)
	ListPending(ctx context.Context, limit, offset uint64) ([]*types.AccessRequest, error)
}

// StorageInterface defines the storage operations required by the access state
// machine. It is a subset of the internal/storage interface.
type StorageInterface interface {
	CreateAccessRequest(ctx context.Context, accountID int64, profile map[string]any) (*types.AccessRequest, error)
	GetAccessRequestByID(ctx context.Context, id int64) (*types.AccessRequest, error)
	ListPendingRequests(ctx context.Context, limit, offset uint64) ([]*types.AccessRequest, error)
	MarkRequestReviewed(ctx context.Context, id int64, status types.RequestStatus, reviewerID int64, notes string, maxListings int) (int64, error)

	GetGrant(ctx context.Context, accountID int64) (*types.AccessGrant, error)
	UpsertGrant(ctx context.Context, g *types.AccessGrant) error
	RevokeGrant(ctx context.Context, accountID int64, reason string) (int64, error)

	GetAccountByID(ctx context.Context, id int64) (*types.Account, error)
	SetAccountRole(ctx context.Context, id int64, role types.Role) error
	SetAccountCanList(ctx context.Context, id int64, canList bool) error

	CountActiveListings(ctx context.Context, accountID int64) (int, error)
	DeactivateAllListings(ctx context.Context, accountID int64) (int64, error)
}

// TxRunnerInterface runs a function inside one database transaction. It is a
// subset of the internal/db client interface.
type TxRunnerInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}

// NotificationsInterface is the durable half of the delivery contract.
type NotificationsInterface interface {
	Create(ctx context.Context, accountID int64, notifType, title, body string, payload map[string]any) (*types.Notification, error)
}

// LiveInterface is the best-effort half of the delivery contract.
type LiveInterface interface {
	PushToAccount(accountID int64, eventName string, payload map[string]any) bool
	PushToRole(role types.Role, eventName string, payload map[string]any) int
}

// AuditInterface records privileged transitions.
type AuditInterface interface {
	Record(ctx context.Context, actorID int64, action, targetType string, targetID int64, detail map[string]any, origin audit.Origin)
}
