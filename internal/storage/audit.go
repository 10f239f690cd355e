// Copyright 2026 Bazaar Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/bazaarlabs/seller-service/internal/types"
)

const auditColumns = "id, actor_id, action, target_type, target_id, detail, origin_ip, user_agent, created_at"

// AppendAuditEntry writes one immutable audit row. There is no update or
// delete counterpart.
func (s *Storage) AppendAuditEntry(ctx context.Context, e *types.AuditEntry) error {
	ctx, span := s.tracer.Start(ctx, "storage.AppendAuditEntry")
	defer span.End()

	detailJSON, err := jsonbValue(e.Detail)
	if err != nil {
		return err
	}

	_, err = s.db.Statement(ctx).
		Insert("audit_entries").
		Columns("actor_id", "action", "target_type", "target_id", "detail", "origin_ip", "user_agent").
		Values(e.ActorID, e.Action, e.TargetType, e.TargetID, detailJSON, e.OriginIP, e.UserAgent).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to append audit entry: %w", err)
	}

	return nil
}

func (s *Storage) ListAuditEntries(ctx context.Context, filter AuditFilter) ([]*types.AuditEntry, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListAuditEntries")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(auditColumns).
		From("audit_entries").
		OrderBy("created_at DESC")

	if filter.ActorID != nil {
		query = query.Where(sq.Eq{"actor_id": *filter.ActorID})
	}
	if filter.Action != "" {
		query = query.Where(sq.Eq{"action": filter.Action})
	}
	if filter.TargetType != "" {
		query = query.Where(sq.Eq{"target_type": filter.TargetType})
	}
	if filter.Since != nil {
		query = query.Where(sq.GtOrEq{"created_at": *filter.Since})
	}
	if filter.Until != nil {
		query = query.Where(sq.Lt{"created_at": *filter.Until})
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}
	defer rows.Close()

	var entries []*types.AuditEntry
	for rows.Next() {
		var (
			e      types.AuditEntry
			detail []byte
		)
		if err := rows.Scan(&e.ID, &e.ActorID, &e.Action, &e.TargetType, &e.TargetID, &detail, &e.OriginIP, &e.UserAgent, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan audit entry: %w", err)
		}
		if e.Detail, err = jsonbScan(detail); err != nil {
			return nil, err
		}
		entries = append(entries, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating audit rows: %w", err)
	}

	return entries, nil
}
