// Copyright 2026 Bazaar Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	"github.com/bazaarlabs/seller-service/internal/types"
)

// AuditFilter narrows ListAuditEntries for operator review.
type AuditFilter struct {
	ActorID    *int64
	Action     string
	TargetType string
	Since      *time.Time
	Until      *time.Time
	Limit      uint64
	Offset     uint64
}

type StorageInterface interface {
	CreateAccount(ctx context.Context, a *types.Account) (*types.Account, error)
	GetAccountByID(ctx context.Context, id int64) (*types.Account, error)
	GetAccountBySubject(ctx context.Context, subjectKey string) (*types.Account, error)
	GetAccountByEmail(ctx context.Context, email string) (*types.Account, error)
	SetAccountRole(ctx context.Context, id int64, role types.Role) error
	SetAccountCanList(ctx context.Context, id int64, canList bool) error

	CreateAccessRequest(ctx context.Context, accountID int64, profile map[string]any) (*types.AccessRequest, error)
	GetAccessRequestByID(ctx context.Context, id int64) (*types.AccessRequest, error)
	ListPendingRequests(ctx context.Context, limit, offset uint64) ([]*types.AccessRequest, error)
	MarkRequestReviewed(ctx context.Context, id int64, status types.RequestStatus, reviewerID int64, notes string, maxListings int) (int64, error)

	GetGrant(ctx context.Context, accountID int64) (*types.AccessGrant, error)
	UpsertGrant(ctx context.Context, g *types.AccessGrant) error
	RevokeGrant(ctx context.Context, accountID int64, reason string) (int64, error)

	CountActiveListings(ctx context.Context, accountID int64) (int, error)
	DeactivateAllListings(ctx context.Context, accountID int64) (int64, error)

	CreateNotification(ctx context.Context, n *types.Notification) (*types.Notification, error)
	ListNotifications(ctx context.Context, accountID int64, limit, offset uint64, unreadOnly bool) ([]*types.Notification, error)
	MarkNotificationRead(ctx context.Context, id, accountID int64) (int64, error)
	MarkAllNotificationsRead(ctx context.Context, accountID int64) (int64, error)
	CountUnreadNotifications(ctx context.Context, accountID int64) (int, error)
	DeleteNotificationsBefore(ctx context.Context, cutoff time.Time) (int64, error)

	AppendAuditEntry(ctx context.Context, e *types.AuditEntry) error
	ListAuditEntries(ctx context.Context, filter AuditFilter) ([]*types.AuditEntry, error)
}
