// Copyright 2026 Bazaar Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notifications

import (
	"context"
	"time"

	"github.com/bazaarlabs/seller-service/internal/types"
)

type ServiceInterface interface {
	Create(ctx context.Context, accountID int64, notifType, title, body string, payload map[string]any) (*types.Notification, error)
	ListForAccount(ctx context.Context, accountID int64, limit, offset uint64, unreadOnly bool) ([]*types.Notification, error)
	MarkRead(ctx context.Context, id, accountID int64) error
	MarkAllRead(ctx context.Context, accountID int64) (int64, error)
	UnreadCount(ctx context.Context, accountID int64) (int, error)
	Cleanup(ctx context.Context, olderThanDays int) (int64, error)
}

// StorageInterface defines the storage operations required by the notification
// service. It is a subset of the internal/storage interface.
type StorageInterface interface {
	CreateNotification(ctx context.Context, n *types.Notification) (*types.Notification, error)
	ListNotifications(ctx context.Context, accountID int64, limit, offset uint64, unreadOnly bool) ([]*types.Notification, error)
	MarkNotificationRead(ctx context.Context, id, accountID int64) (int64, error)
	MarkAllNotificationsRead(ctx context.Context, accountID int64) (int64, error)
	CountUnreadNotifications(ctx context.Context, accountID int64) (int, error)
	DeleteNotificationsBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
