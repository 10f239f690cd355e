// Copyright 2026 Bazaar Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package audit

import (
	"context"

	"github.com/bazaarlabs/seller-service/internal/logging"
	"github.com/bazaarlabs/seller-service/internal/monitoring"
	"github.com/bazaarlabs/seller-service/internal/storage"
	"github.com/bazaarlabs/seller-service/internal/tracing"
	"github.com/bazaarlabs/seller-service/internal/types"
)

// Audit actions written by the access service.
const (
	ActionAccessSubmit  = "access_submit"
	ActionAccessApprove = "access_approve"
	ActionAccessReject  = "access_reject"
	ActionAccessRevoke  = "access_revoke"
)

var _ RecorderInterface = (*Recorder)(nil)

type Recorder struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewRecorder(
	storage StorageInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Recorder {
	return &Recorder{
		storage: storage,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// Record appends one audit entry. Audit is observability, not a correctness
// dependency: a failed write is logged and swallowed so it can never roll back
// the transition it describes.
func (r *Recorder) Record(ctx context.Context, actorID int64, action, targetType string, targetID int64, detail map[string]any, origin Origin) {
	ctx, span := r.tracer.Start(ctx, "audit.Recorder.Record")
	defer span.End()

	entry := &types.AuditEntry{
		ActorID:    actorID,
		Action:     action,
		TargetType: targetType,
		TargetID:   targetID,
		Detail:     detail,
		OriginIP:   origin.IP,
		UserAgent:  origin.UserAgent,
	}

	if err := r.storage.AppendAuditEntry(ctx, entry); err != nil {
		r.logger.Errorf("failed to append audit entry for action %s: %v", action, err)
	}
}

// List returns filtered audit entries for operator review.
func (r *Recorder) List(ctx context.Context, filter storage.AuditFilter) ([]*types.AuditEntry, error) {
	ctx, span := r.tracer.Start(ctx, "audit.Recorder.List")
	defer span.End()

	return r.storage.ListAuditEntries(ctx, filter)
}
