// Copyright 2026 Bazaar Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notifications

import (
	"context"
	"fmt"
	"time"

	"github.com/bazaarlabs/seller-service/internal/logging"
	"github.com/bazaarlabs/seller-service/internal/monitoring"
	"github.com/bazaarlabs/seller-service/internal/tracing"
	"github.com/bazaarlabs/seller-service/internal/types"
)

const (
	defaultPageSize uint64 = 50
	maxPageSize     uint64 = 200
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (s *Service) Create(ctx context.Context, accountID int64, notifType, title, body string, payload map[string]any) (*types.Notification, error) {
	ctx, span := s.tracer.Start(ctx, "notifications.Service.Create")
	defer span.End()

	created, err := s.storage.CreateNotification(ctx, &types.Notification{
		AccountID: accountID,
		Type:      notifType,
		Title:     title,
		Body:      body,
		Payload:   payload,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}

	return created, nil
}

func (s *Service) ListForAccount(ctx context.Context, accountID int64, limit, offset uint64, unreadOnly bool) ([]*types.Notification, error) {
	ctx, span := s.tracer.Start(ctx, "notifications.Service.ListForAccount")
	defer span.End()

	if limit == 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	return s.storage.ListNotifications(ctx, accountID, limit, offset, unreadOnly)
}

// MarkRead marks one notification read, only for its owning account. A
// mismatch surfaces as ErrNotFound and leaves the read flag unchanged.
func (s *Service) MarkRead(ctx context.Context, id, accountID int64) error {
	ctx, span := s.tracer.Start(ctx, "notifications.Service.MarkRead")
	defer span.End()

	rows, err := s.storage.MarkNotificationRead(ctx, id, accountID)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Service) MarkAllRead(ctx context.Context, accountID int64) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "notifications.Service.MarkAllRead")
	defer span.End()

	return s.storage.MarkAllNotificationsRead(ctx, accountID)
}

func (s *Service) UnreadCount(ctx context.Context, accountID int64) (int, error) {
	ctx, span := s.tracer.Start(ctx, "notifications.Service.UnreadCount")
	defer span.End()

	return s.storage.CountUnreadNotifications(ctx, accountID)
}

// Cleanup purges notifications past the retention horizon. It is deliberately
// not transactional with anything else.
func (s *Service) Cleanup(ctx context.Context, olderThanDays int) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "notifications.Service.Cleanup")
	defer span.End()

	cutoff := time.Now().UTC().AddDate(0, 0, -olderThanDays)
	return s.storage.DeleteNotificationsBefore(ctx, cutoff)
}

// RunCleanup periodically applies the retention policy until ctx ends.
func (s *Service) RunCleanup(ctx context.Context, every time.Duration, retentionDays int) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			purged, err := s.Cleanup(ctx, retentionDays)
			if err != nil {
				s.logger.Errorf("notification cleanup failed: %v", err)
				continue
			}
			if purged > 0 {
				s.logger.Infof("notification cleanup purged %d rows", purged)
			}
		}
	}
}
