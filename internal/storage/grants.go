// Copyright 2026 Bazaar Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/bazaarlabs/seller-service/internal/types"
)

const grantColumns = "account_id, approved, reviewer_id, max_listings, revoked_at, notes, created_at, updated_at"

func scanGrant(row sq.RowScanner) (*types.AccessGrant, error) {
	var g types.AccessGrant
	err := row.Scan(&g.AccountID, &g.Approved, &g.ReviewerID, &g.MaxListings, &g.RevokedAt, &g.Notes, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (s *Storage) GetGrant(ctx context.Context, accountID int64) (*types.AccessGrant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetGrant")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(grantColumns).
		From("account_access_grants").
		Where(sq.Eq{"account_id": accountID}).
		QueryRowContext(ctx)

	g, err := scanGrant(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get grant: %w", err)
	}

	return g, nil
}

// UpsertGrant creates or refreshes the one-to-one grant row for an account.
// A re-approval after a revoke clears revoked_at and appends to the notes log.
func (s *Storage) UpsertGrant(ctx context.Context, g *types.AccessGrant) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpsertGrant")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Insert("account_access_grants").
		Columns("account_id", "approved", "reviewer_id", "max_listings", "revoked_at", "notes").
		Values(g.AccountID, g.Approved, g.ReviewerID, g.MaxListings, g.RevokedAt, g.Notes).
		Suffix(`ON CONFLICT (account_id) DO UPDATE SET
			approved = EXCLUDED.approved,
			reviewer_id = EXCLUDED.reviewer_id,
			max_listings = EXCLUDED.max_listings,
			revoked_at = EXCLUDED.revoked_at,
			notes = account_access_grants.notes || E'\n' || EXCLUDED.notes,
			updated_at = now()`).
		ExecContext(ctx)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to upsert grant: %w", err)
	}

	return nil
}

// RevokeGrant flips an active grant to revoked and appends the reason to the
// notes log. Zero rows affected means there was no active grant to revoke.
func (s *Storage) RevokeGrant(ctx context.Context, accountID int64, reason string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.RevokeGrant")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("account_access_grants").
		Set("approved", false).
		Set("revoked_at", sq.Expr("now()")).
		Set("notes", sq.Expr("notes || E'\\n' || ?", "revoked: "+reason)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"account_id": accountID, "approved": true}).
		Where("revoked_at IS NULL").
		ExecContext(ctx)

	if err != nil {
		return 0, fmt.Errorf("failed to revoke grant: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check rows affected: %w", err)
	}

	return rows, nil
}
