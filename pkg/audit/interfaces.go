// Copyright 2026 Bazaar Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package audit

import (
	"context"

	"github.com/bazaarlabs/seller-service/internal/storage"
	"github.com/bazaarlabs/seller-service/internal/types"
)

// Origin carries the actor's network metadata captured from the request.
type Origin struct {
	IP        string
	UserAgent string
}

type RecorderInterface interface {
	Record(ctx context.Context, actorID int64, action, targetType string, targetID int64, detail map[string]any, origin Origin)
	List(ctx context.Context, filter storage.AuditFilter) ([]*types.AuditEntry, error)
}

// StorageInterface defines the storage operations required by the audit
// recorder. It is a subset of the internal/storage interface.
type StorageInterface interface {
	AppendAuditEntry(ctx context.Context, e *types.AuditEntry) error
	ListAuditEntries(ctx context.Context, filter storage.AuditFilter) ([]*types.AuditEntry, error)
}
