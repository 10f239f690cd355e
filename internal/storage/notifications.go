// Copyright 2026 Bazaar Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/bazaarlabs/seller-service/internal/types"
)

const notificationColumns = "id, account_id, type, title, body, payload, read, created_at, read_at"

func scanNotification(row sq.RowScanner) (*types.Notification, error) {
	var (
		n       types.Notification
		payload []byte
	)
	err := row.Scan(&n.ID, &n.AccountID, &n.Type, &n.Title, &n.Body, &payload, &n.Read, &n.CreatedAt, &n.ReadAt)
	if err != nil {
		return nil, err
	}

	if n.Payload, err = jsonbScan(payload); err != nil {
		return nil, err
	}
	return &n, nil
}

func (s *Storage) CreateNotification(ctx context.Context, n *types.Notification) (*types.Notification, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateNotification")
	defer span.End()

	payloadJSON, err := jsonbValue(n.Payload)
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Insert("notifications").
		Columns("account_id", "type", "title", "body", "payload").
		Values(n.AccountID, n.Type, n.Title, n.Body, payloadJSON).
		Suffix("RETURNING " + notificationColumns).
		QueryRowContext(ctx)

	created, err := scanNotification(row)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert notification: %w", err)
	}

	return created, nil
}

func (s *Storage) ListNotifications(ctx context.Context, accountID int64, limit, offset uint64, unreadOnly bool) ([]*types.Notification, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListNotifications")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(notificationColumns).
		From("notifications").
		Where(sq.Eq{"account_id": accountID}).
		OrderBy("created_at DESC").
		Limit(limit).
		Offset(offset)

	if unreadOnly {
		query = query.Where(sq.Eq{"read": false})
	}

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	var notifications []*types.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		notifications = append(notifications, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notification rows: %w", err)
	}

	return notifications, nil
}

// MarkNotificationRead flips the read flag, constrained to the owning account.
// Zero rows affected covers both a missing id and someone else's notification.
// Re-marking an already read notification matches the row again and keeps the
// original read_at, so the operation is idempotent for the owner.
func (s *Storage) MarkNotificationRead(ctx context.Context, id, accountID int64) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.MarkNotificationRead")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("notifications").
		Set("read", true).
		Set("read_at", sq.Expr("COALESCE(read_at, now())")).
		Where(sq.Eq{"id": id, "account_id": accountID}).
		ExecContext(ctx)

	if err != nil {
		return 0, fmt.Errorf("failed to mark notification read: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check rows affected: %w", err)
	}

	return rows, nil
}

func (s *Storage) MarkAllNotificationsRead(ctx context.Context, accountID int64) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.MarkAllNotificationsRead")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("notifications").
		Set("read", true).
		Set("read_at", sq.Expr("now()")).
		Where(sq.Eq{"account_id": accountID, "read": false}).
		ExecContext(ctx)

	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check rows affected: %w", err)
	}

	return rows, nil
}

// CountUnreadNotifications is the highest-frequency read in the system, clients
// poll it every few seconds. It is served by the partial index on
// (account_id) WHERE read = false, so its cost tracks unread volume only.
func (s *Storage) CountUnreadNotifications(ctx context.Context, accountID int64) (int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountUnreadNotifications")
	defer span.End()

	var count int
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("notifications").
		Where(sq.Eq{"account_id": accountID, "read": false}).
		QueryRowContext(ctx).
		Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	return count, nil
}

func (s *Storage) DeleteNotificationsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteNotificationsBefore")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("notifications").
		Where(sq.Lt{"created_at": cutoff}).
		ExecContext(ctx)

	if err != nil {
		return 0, fmt.Errorf("failed to delete notifications: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check rows affected: %w", err)
	}

	return rows, nil
}
