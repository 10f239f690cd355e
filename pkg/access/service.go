// Copyright 2026 Bazaar Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bazaarlabs/seller-service/internal/logging"
	"github.com/bazaarlabs/seller-service/internal/monitoring"
	"github.com/bazaarlabs/seller-service/internal/storage"
	"github.com/bazaarlabs/seller-service/internal/tracing"
	"github.com/bazaarlabs/seller-service/internal/types"
	"github.com/bazaarlabs/seller-service/pkg/audit"
)

// Live event names pushed alongside the durable notifications.
const (
	EventAccessRequested = "access_requested"
	EventAccessApproved  = "access_approved"
	EventAccessRejected  = "access_rejected"
	EventAccessRevoked   = "access_revoked"
	EventCapacityWarning = "listing_capacity_warning"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage       StorageInterface
	txRunner      TxRunnerInterface
	notifications NotificationsInterface
	live          LiveInterface
	audit         AuditInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	txRunner TxRunnerInterface,
	notifications NotificationsInterface,
	live LiveInterface,
	auditRecorder AuditInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:       storage,
		txRunner:      txRunner,
		notifications: notifications,
		live:          live,
		audit:         auditRecorder,
		tracer:        tracer,
		monitor:       monitor,
		logger:        logger,
	}
}

// Submit opens a pending access request for the account. An active grant means
// there is nothing to request (ErrDuplicateRequest), and the partial unique
// index on pending requests turns a concurrent double submit into
// ErrAlreadyPending without any locking.
func (s *Service) Submit(ctx context.Context, accountID int64, profile map[string]any) (*types.AccessRequest, error) {
	ctx, span := s.tracer.Start(ctx, "access.Service.Submit")
	defer span.End()

	grant, err := s.storage.GetGrant(ctx, accountID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing grant: %w", err)
	}
	if grant.Active() {
		return nil, ErrDuplicateRequest
	}

	request, err := s.storage.CreateAccessRequest(ctx, accountID, profile)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, ErrAlreadyPending
		}
		return nil, fmt.Errorf("failed to create access request: %w", err)
	}

	s.audit.Record(ctx, accountID, audit.ActionAccessSubmit, "access_request", request.ID,
		map[string]any{"account_id": accountID}, audit.OriginFromContext(ctx))

	// Administrators watch the pending queue, the live event is their nudge.
	s.live.PushToRole(types.RoleAdministrator, EventAccessRequested, map[string]any{
		"request_id": request.ID,
		"account_id": accountID,
	})

	return request, nil
}

// Approve moves a pending request to approved. The request row, the grant
// upsert and the account capability flag commit in one transaction: a partial
// apply would violate the grant invariant, so any failure rolls back all three.
func (s *Service) Approve(ctx context.Context, requestID, reviewerID int64, maxListings int, notes string) (*types.AccessRequest, error) {
	ctx, span := s.tracer.Start(ctx, "access.Service.Approve")
	defer span.End()

	request, err := s.storage.GetAccessRequestByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get access request: %w", err)
	}
	if request.Status != types.RequestPending {
		return nil, ErrAlreadyReviewed
	}

	err = s.txRunner.WithTx(ctx, func(txCtx context.Context) error {
		rows, err := s.storage.MarkRequestReviewed(txCtx, requestID, types.RequestApproved, reviewerID, notes, maxListings)
		if err != nil {
			return err
		}
		if rows == 0 {
			// Lost the race against a concurrent review.
			return ErrAlreadyReviewed
		}

		if err := s.storage.UpsertGrant(txCtx, &types.AccessGrant{
			AccountID:   request.AccountID,
			Approved:    true,
			ReviewerID:  reviewerID,
			MaxListings: maxListings,
			RevokedAt:   nil,
			Notes:       "approved: " + notes,
		}); err != nil {
			return err
		}

		if err := s.storage.SetAccountCanList(txCtx, request.AccountID, true); err != nil {
			return err
		}

		account, err := s.storage.GetAccountByID(txCtx, request.AccountID)
		if err != nil {
			return err
		}
		if account.Role == types.RoleStandard {
			if err := s.storage.SetAccountRole(txCtx, request.AccountID, types.RoleSeller); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrAlreadyReviewed) {
			return nil, ErrAlreadyReviewed
		}
		return nil, fmt.Errorf("failed to apply approval: %w", err)
	}

	s.logger.Security().PrivilegeChange(reviewerID, request.AccountID, "access_approve")
	s.audit.Record(ctx, reviewerID, audit.ActionAccessApprove, "access_request", requestID,
		map[string]any{"account_id": request.AccountID, "max_listings": maxListings}, audit.OriginFromContext(ctx))

	s.notifyAndPush(ctx, request.AccountID, types.NotificationAccessApproved, EventAccessApproved,
		"Seller access approved",
		fmt.Sprintf("Your seller access request was approved with a limit of %d listings.", maxListings),
		map[string]any{"request_id": requestID, "max_listings": maxListings})

	return s.refreshRequest(ctx, request, requestID, types.RequestApproved, reviewerID)
}

// Reject moves a pending request to rejected. Only the request row changes, no
// grant is created.
func (s *Service) Reject(ctx context.Context, requestID, reviewerID int64, notes string) (*types.AccessRequest, error) {
	ctx, span := s.tracer.Start(ctx, "access.Service.Reject")
	defer span.End()

	request, err := s.storage.GetAccessRequestByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get access request: %w", err)
	}
	if request.Status != types.RequestPending {
		return nil, ErrAlreadyReviewed
	}

	rows, err := s.storage.MarkRequestReviewed(ctx, requestID, types.RequestRejected, reviewerID, notes, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to reject access request: %w", err)
	}
	if rows == 0 {
		return nil, ErrAlreadyReviewed
	}

	s.audit.Record(ctx, reviewerID, audit.ActionAccessReject, "access_request", requestID,
		map[string]any{"account_id": request.AccountID}, audit.OriginFromContext(ctx))

	s.notifyAndPush(ctx, request.AccountID, types.NotificationAccessRejected, EventAccessRejected,
		"Seller access rejected",
		"Your seller access request was rejected. See the review notes for details.",
		map[string]any{"request_id": requestID, "notes": notes})

	return s.refreshRequest(ctx, request, requestID, types.RequestRejected, reviewerID)
}

// RevokeGrant terminates an active grant and cascades onto the catalog: every
// active listing owned by the account is deactivated in the same transaction.
// Listings are not reactivated by a later approval, that remains a deliberate
// operator decision.
func (s *Service) RevokeGrant(ctx context.Context, accountID, actorID int64, reason string) error {
	ctx, span := s.tracer.Start(ctx, "access.Service.RevokeGrant")
	defer span.End()

	var deactivated int64
	err := s.txRunner.WithTx(ctx, func(txCtx context.Context) error {
		rows, err := s.storage.RevokeGrant(txCtx, accountID, reason)
		if err != nil {
			return err
		}
		if rows == 0 {
			return ErrNoActiveGrant
		}

		if err := s.storage.SetAccountCanList(txCtx, accountID, false); err != nil {
			return err
		}

		account, err := s.storage.GetAccountByID(txCtx, accountID)
		if err != nil {
			return err
		}
		if account.Role == types.RoleSeller {
			if err := s.storage.SetAccountRole(txCtx, accountID, types.RoleStandard); err != nil {
				return err
			}
		}

		deactivated, err = s.storage.DeactivateAllListings(txCtx, accountID)
		return err
	})
	if err != nil {
		if errors.Is(err, ErrNoActiveGrant) {
			return ErrNoActiveGrant
		}
		return fmt.Errorf("failed to revoke grant: %w", err)
	}

	s.logger.Security().PrivilegeChange(actorID, accountID, "access_revoke")
	s.audit.Record(ctx, actorID, audit.ActionAccessRevoke, "account", accountID,
		map[string]any{"reason": reason, "listings_deactivated": deactivated}, audit.OriginFromContext(ctx))

	s.notifyAndPush(ctx, accountID, types.NotificationAccessRevoked, EventAccessRevoked,
		"Seller access revoked",
		"Your seller access was revoked and your listings were deactivated.",
		map[string]any{"reason": reason, "listings_deactivated": deactivated})

	return nil
}

// CheckCapacity reports the account's listing headroom.
func (s *Service) CheckCapacity(ctx context.Context, accountID int64) (*types.Capacity, error) {
	ctx, span := s.tracer.Start(ctx, "access.Service.CheckCapacity")
	defer span.End()

	grant, err := s.storage.GetGrant(ctx, accountID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNoActiveGrant
		}
		return nil, fmt.Errorf("failed to get grant: %w", err)
	}
	if !grant.Active() {
		return nil, ErrNoActiveGrant
	}

	active, err := s.storage.CountActiveListings(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to count active listings: %w", err)
	}

	remaining := grant.MaxListings - active
	if remaining < 0 {
		remaining = 0
	}

	return &types.Capacity{
		MaxListings:    grant.MaxListings,
		ActiveListings: active,
		Remaining:      remaining,
	}, nil
}

// AssertCanCreateListing is the gate the catalog service calls before creating
// a listing. At the cap it fails with ErrCapacityExceeded; on the last free
// slot it warns the seller so the rejection never comes as a surprise.
func (s *Service) AssertCanCreateListing(ctx context.Context, accountID int64) error {
	ctx, span := s.tracer.Start(ctx, "access.Service.AssertCanCreateListing")
	defer span.End()

	capacity, err := s.CheckCapacity(ctx, accountID)
	if err != nil {
		return err
	}

	if capacity.Remaining == 0 {
		return ErrCapacityExceeded
	}

	if capacity.Remaining == 1 {
		s.notifyAndPush(ctx, accountID, types.NotificationCapacityWarning, EventCapacityWarning,
			"Listing capacity almost reached",
			fmt.Sprintf("You are about to use the last of your %d listing slots.", capacity.MaxListings),
			map[string]any{"max_listings": capacity.MaxListings, "remaining": capacity.Remaining})
	}

	return nil
}

func (s *Service) GetRequest(ctx context.Context, id int64) (*types.AccessRequest, error) {
	ctx, span := s.tracer.Start(ctx, "access.Service.GetRequest")
	defer span.End()

	request, err := s.storage.GetAccessRequestByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return request, nil
}

func (s *Service) ListPending(ctx context.Context, limit, offset uint64) ([]*types.AccessRequest, error) {
	ctx, span := s.tracer.Start(ctx, "access.Service.ListPending")
	defer span.End()

	return s.storage.ListPendingRequests(ctx, limit, offset)
}

// notifyAndPush applies the delivery contract: persist first, then attempt the
// live push. A false push result only means the recipient was not connected.
func (s *Service) notifyAndPush(ctx context.Context, accountID int64, notifType, eventName, title, body string, payload map[string]any) {
	if _, err := s.notifications.Create(ctx, accountID, notifType, title, body, payload); err != nil {
		s.logger.Errorf("failed to persist %s notification for account %d: %v", notifType, accountID, err)
	}

	if delivered := s.live.PushToAccount(accountID, eventName, payload); !delivered {
		s.logger.Debugf("account %d not connected, %s delivered store-only", accountID, eventName)
	}
}

// refreshRequest re-reads the request after a transition so callers see the
// terminal state. When the re-read fails the operation stays successful and the
// committed status and reviewer are overlaid on the pre-transition copy, the
// response must never show pending for a reviewed request.
func (s *Service) refreshRequest(ctx context.Context, fallback *types.AccessRequest, id int64, status types.RequestStatus, reviewerID int64) (*types.AccessRequest, error) {
	updated, err := s.storage.GetAccessRequestByID(ctx, id)
	if err != nil {
		s.logger.Warnf("failed to re-read access request %d after review: %v", id, err)
		reviewed := *fallback
		reviewed.Status = status
		reviewed.ReviewerID = &reviewerID
		now := time.Now().UTC()
		reviewed.ReviewedAt = &now
		return &reviewed, nil
	}
	return updated, nil
}
