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

const accountColumns = "id, subject_key, email, display_name, role, active, can_list, created_at, updated_at"

func scanAccount(row sq.RowScanner) (*types.Account, error) {
	var a types.Account
	err := row.Scan(&a.ID, &a.SubjectKey, &a.Email, &a.DisplayName, &a.Role, &a.Active, &a.CanList, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// CreateAccount inserts a new account. A unique violation on subject_key or
// email surfaces as ErrDuplicateKey so the caller can retry its lookup.
func (s *Storage) CreateAccount(ctx context.Context, a *types.Account) (*types.Account, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateAccount")
	defer span.End()

	row := s.db.Statement(ctx).
		Insert("accounts").
		Columns("subject_key", "email", "display_name", "role", "active", "can_list").
		Values(a.SubjectKey, a.Email, a.DisplayName, a.Role, a.Active, a.CanList).
		Suffix("RETURNING " + accountColumns).
		QueryRowContext(ctx)

	created, err := scanAccount(row)
	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert account: %w", err)
	}

	return created, nil
}

func (s *Storage) GetAccountByID(ctx context.Context, id int64) (*types.Account, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetAccountByID")
	defer span.End()

	return s.getAccount(ctx, sq.Eq{"id": id})
}

func (s *Storage) GetAccountBySubject(ctx context.Context, subjectKey string) (*types.Account, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetAccountBySubject")
	defer span.End()

	return s.getAccount(ctx, sq.Eq{"subject_key": subjectKey})
}

func (s *Storage) GetAccountByEmail(ctx context.Context, email string) (*types.Account, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetAccountByEmail")
	defer span.End()

	return s.getAccount(ctx, sq.Eq{"email": email})
}

func (s *Storage) getAccount(ctx context.Context, where sq.Eq) (*types.Account, error) {
	row := s.db.Statement(ctx).
		Select(accountColumns).
		From("accounts").
		Where(where).
		QueryRowContext(ctx)

	a, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return a, nil
}

func (s *Storage) SetAccountRole(ctx context.Context, id int64, role types.Role) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetAccountRole")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("accounts").
		Set("role", role).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to set account role: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) SetAccountCanList(ctx context.Context, id int64, canList bool) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetAccountCanList")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("accounts").
		Set("can_list", canList).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to set listing permission: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}
