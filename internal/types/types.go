// Copyright 2026 Bazaar Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

// Role is the enumerated account role. Role transitions happen only through the
// access service, never by writing the column directly.
type Role string

const (
	RoleStandard      Role = "standard"
	RoleSeller        Role = "seller"
	RoleAdministrator Role = "administrator"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStandard, RoleSeller, RoleAdministrator:
		return true
	}
	return false
}

// CanReview reports whether the role may review seller access requests.
func (r Role) CanReview() bool {
	return r == RoleAdministrator
}

// RequestStatus is the enumerated access request status.
type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"
)

type Account struct {
	ID          int64     `db:"id" json:"id"`
	SubjectKey  string    `db:"subject_key" json:"subject_key"`
	Email       string    `db:"email" json:"email"`
	DisplayName string    `db:"display_name" json:"display_name"`
	Role        Role      `db:"role" json:"role"`
	Active      bool      `db:"active" json:"active"`
	CanList     bool      `db:"can_list" json:"can_list"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

type AccessRequest struct {
	ID          int64          `db:"id" json:"id"`
	AccountID   int64          `db:"account_id" json:"account_id"`
	Profile     map[string]any `db:"profile" json:"profile"`
	Status      RequestStatus  `db:"status" json:"status"`
	ReviewerID  *int64         `db:"reviewer_id" json:"reviewer_id,omitempty"`
	ReviewNotes string         `db:"review_notes" json:"review_notes"`
	MaxListings int            `db:"max_listings" json:"max_listings"`
	CreatedAt   time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at" json:"updated_at"`
	ReviewedAt  *time.Time     `db:"reviewed_at" json:"reviewed_at,omitempty"`
}

// AccessGrant pairs the revoked-at timestamp with an explicit approved boolean so
// that "may create listings" is always Approved && RevokedAt == nil.
type AccessGrant struct {
	AccountID   int64      `db:"account_id" json:"account_id"`
	Approved    bool       `db:"approved" json:"approved"`
	ReviewerID  int64      `db:"reviewer_id" json:"reviewer_id"`
	MaxListings int        `db:"max_listings" json:"max_listings"`
	RevokedAt   *time.Time `db:"revoked_at" json:"revoked_at,omitempty"`
	Notes       string     `db:"notes" json:"notes"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}

// Active reports whether the grant currently permits listing creation.
func (g *AccessGrant) Active() bool {
	return g != nil && g.Approved && g.RevokedAt == nil
}

type Listing struct {
	ID        int64     `db:"id" json:"id"`
	AccountID int64     `db:"account_id" json:"account_id"`
	Title     string    `db:"title" json:"title"`
	Active    bool      `db:"active" json:"active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Notification types created by the access service. The set is open, new types
// may appear without a schema change.
const (
	NotificationAccessRequested = "access_requested"
	NotificationAccessApproved  = "access_approved"
	NotificationAccessRejected  = "access_rejected"
	NotificationAccessRevoked   = "access_revoked"
	NotificationCapacityWarning = "listing_capacity_warning"
)

type Notification struct {
	ID        int64          `db:"id" json:"id"`
	AccountID int64          `db:"account_id" json:"account_id"`
	Type      string         `db:"type" json:"type"`
	Title     string         `db:"title" json:"title"`
	Body      string         `db:"body" json:"body"`
	Payload   map[string]any `db:"payload" json:"payload"`
	Read      bool           `db:"read" json:"read"`
	CreatedAt time.Time      `db:"created_at" json:"created_at"`
	ReadAt    *time.Time     `db:"read_at" json:"read_at,omitempty"`
}

type AuditEntry struct {
	ID         int64          `db:"id" json:"id"`
	ActorID    int64          `db:"actor_id" json:"actor_id"`
	Action     string         `db:"action" json:"action"`
	TargetType string         `db:"target_type" json:"target_type"`
	TargetID   int64          `db:"target_id" json:"target_id"`
	Detail     map[string]any `db:"detail" json:"detail"`
	OriginIP   string         `db:"origin_ip" json:"origin_ip"`
	UserAgent  string         `db:"user_agent" json:"user_agent"`
	CreatedAt  time.Time      `db:"created_at" json:"created_at"`
}

// Capacity is the listing headroom for an account with an active grant.
type Capacity struct {
	MaxListings    int `json:"max_listings"`
	ActiveListings int `json:"active_listings"`
	Remaining      int `json:"remaining"`
}
