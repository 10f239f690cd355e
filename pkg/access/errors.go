// Copyright 2026 Bazaar Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import "errors"

// Caller errors. All surface as 4xx equivalents, none are retryable.
var (
	// ErrNotFound means the access request does not exist.
	ErrNotFound = errors.New("access request not found")
	// ErrAlreadyPending means the account already has a pending request.
	ErrAlreadyPending = errors.New("a pending access request already exists")
	// ErrDuplicateRequest means the account already holds an active grant.
	ErrDuplicateRequest = errors.New("account already holds an active grant")
	// ErrAlreadyReviewed means the request reached a terminal state before
	// this review.
	ErrAlreadyReviewed = errors.New("access request already reviewed")
	// ErrNoActiveGrant means there is nothing to revoke or measure.
	ErrNoActiveGrant = errors.New("no active grant for account")
	// ErrCapacityExceeded means the account is at its listing cap.
	ErrCapacityExceeded = errors.New("listing capacity exceeded")
)
