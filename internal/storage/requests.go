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

const requestColumns = "id, account_id, profile, status, reviewer_id, review_notes, max_listings, created_at, updated_at, reviewed_at"

func scanAccessRequest(row sq.RowScanner) (*types.AccessRequest, error) {
	var (
		r       types.AccessRequest
		profile []byte
	)
	err := row.Scan(&r.ID, &r.AccountID, &profile, &r.Status, &r.ReviewerID, &r.ReviewNotes, &r.MaxListings, &r.CreatedAt, &r.UpdatedAt, &r.ReviewedAt)
	if err != nil {
		return nil, err
	}

	if r.Profile, err = jsonbScan(profile); err != nil {
		return nil, err
	}
	return &r, nil
}

// CreateAccessRequest inserts a pending request. The partial unique index on
// (account_id) WHERE status = 'pending' turns a concurrent double submit into
// ErrDuplicateKey.
func (s *Storage) CreateAccessRequest(ctx context.Context, accountID int64, profile map[string]any) (*types.AccessRequest, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateAccessRequest")
	defer span.End()

	profileJSON, err := jsonbValue(profile)
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Insert("access_requests").
		Columns("account_id", "profile", "status").
		Values(accountID, profileJSON, types.RequestPending).
		Suffix("RETURNING " + requestColumns).
		QueryRowContext(ctx)

	created, err := scanAccessRequest(row)
	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert access request: %w", err)
	}

	return created, nil
}

func (s *Storage) GetAccessRequestByID(ctx context.Context, id int64) (*types.AccessRequest, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetAccessRequestByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(requestColumns).
		From("access_requests").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	r, err := scanAccessRequest(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get access request: %w", err)
	}

	return r, nil
}

func (s *Storage) ListPendingRequests(ctx context.Context, limit, offset uint64) ([]*types.AccessRequest, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListPendingRequests")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(requestColumns).
		From("access_requests").
		Where(sq.Eq{"status": types.RequestPending}).
		OrderBy("created_at ASC").
		Limit(limit).
		Offset(offset).
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list pending requests: %w", err)
	}
	defer rows.Close()

	var requests []*types.AccessRequest
	for rows.Next() {
		r, err := scanAccessRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan access request: %w", err)
		}
		requests = append(requests, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating request rows: %w", err)
	}

	return requests, nil
}

// MarkRequestReviewed moves a pending request to a terminal status. The WHERE
// on status = 'pending' makes the transition single-winner: zero rows affected
// means the request was missing or already reviewed.
func (s *Storage) MarkRequestReviewed(ctx context.Context, id int64, status types.RequestStatus, reviewerID int64, notes string, maxListings int) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.MarkRequestReviewed")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("access_requests").
		Set("status", status).
		Set("reviewer_id", reviewerID).
		Set("review_notes", notes).
		Set("max_listings", maxListings).
		Set("reviewed_at", sq.Expr("now()")).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "status": types.RequestPending}).
		ExecContext(ctx)

	if err != nil {
		return 0, fmt.Errorf("failed to mark request reviewed: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check rows affected: %w", err)
	}

	return rows, nil
}
