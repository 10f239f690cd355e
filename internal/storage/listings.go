// Copyright 2026 Bazaar Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

func (s *Storage) CountActiveListings(ctx context.Context, accountID int64) (int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountActiveListings")
	defer span.End()

	var count int
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("listings").
		Where(sq.Eq{"account_id": accountID, "active": true}).
		QueryRowContext(ctx).
		Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("failed to count active listings: %w", err)
	}

	return count, nil
}

// DeactivateAllListings bulk-flips every active listing owned by the account.
// Re-running on an already deactivated set affects zero rows.
func (s *Storage) DeactivateAllListings(ctx context.Context, accountID int64) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.DeactivateAllListings")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("listings").
		Set("active", false).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"account_id": accountID, "active": true}).
		ExecContext(ctx)

	if err != nil {
		return 0, fmt.Errorf("failed to deactivate listings: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check rows affected: %w", err)
	}

	return rows, nil
}
