// Copyright 2026 Bazaar Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package e2e

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/bazaarlabs/seller-service/internal/types"
)

// testSellerLifecycle walks one account through the full approval workflow:
// submit, review, sell within capacity, revoke.
func TestSellerLifecycle(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	// Unique identity per run so the suite can be re-run against an
	// existing deployment without colliding with earlier rows.
	suffix := time.Now().UnixNano()
	seller := newAPIClient(
		fmt.Sprintf("subject-%d", suffix),
		fmt.Sprintf("seller-%d@bazaar.test", suffix),
		"Test Seller",
	)
	admin := newAPIClient("admin-subject", adminEmail, "Test Admin")

	var (
		requestID      int64
		accountID      int64
		notificationID int64
	)

	t.Run("Submit Request", func(t *testing.T) {
		request, code, err := seller.submitRequest(ctx, "I would like to sell handmade goods")
		if err != nil {
			t.Fatalf("failed to submit request: %v", err)
		}
		mustStatus(t, http.StatusCreated, code)
		if request.ID == 0 || request.AccountID == 0 {
			t.Fatalf("expected populated request, got %+v", request)
		}
		if request.Status != string(types.RequestPending) {
			t.Errorf("expected pending status, got %s", request.Status)
		}
		requestID = request.ID
		accountID = request.AccountID
	})

	t.Run("Duplicate Submit Conflicts", func(t *testing.T) {
		_, code, err := seller.submitRequest(ctx, "asking again")
		if err != nil {
			t.Fatalf("failed to submit request: %v", err)
		}
		mustStatus(t, http.StatusConflict, code)
	})

	t.Run("Admin Sees Pending Request", func(t *testing.T) {
		requests, code, err := admin.pendingRequests(ctx)
		if err != nil {
			t.Fatalf("failed to list pending requests: %v", err)
		}
		mustStatus(t, http.StatusOK, code)

		found := false
		for _, r := range requests {
			if r.ID == requestID {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("request %d not found in pending queue", requestID)
		}
	})

	t.Run("Seller Cannot Review", func(t *testing.T) {
		code, err := seller.approve(ctx, requestID, 5, "self approval")
		if err != nil {
			t.Fatalf("failed to call approve: %v", err)
		}
		mustStatus(t, http.StatusForbidden, code)
	})

	t.Run("Approve", func(t *testing.T) {
		code, err := admin.approve(ctx, requestID, 5, "looks good")
		if err != nil {
			t.Fatalf("failed to approve: %v", err)
		}
		mustStatus(t, http.StatusOK, code)
	})

	t.Run("Approve Twice Conflicts", func(t *testing.T) {
		code, err := admin.approve(ctx, requestID, 5, "again")
		if err != nil {
			t.Fatalf("failed to call approve: %v", err)
		}
		mustStatus(t, http.StatusConflict, code)
	})

	t.Run("Capacity After Approval", func(t *testing.T) {
		cap, code, err := seller.capacity(ctx)
		if err != nil {
			t.Fatalf("failed to check capacity: %v", err)
		}
		mustStatus(t, http.StatusOK, code)
		if cap.MaxListings != 5 || cap.Remaining != 5 {
			t.Errorf("expected 5/5 capacity, got %+v", cap)
		}
	})

	t.Run("Seller Is Notified", func(t *testing.T) {
		unread, err := seller.unreadCount(ctx)
		if err != nil {
			t.Fatalf("failed to count unread notifications: %v", err)
		}
		if unread == 0 {
			t.Error("expected an unread approval notification")
		}

		notifs, code, err := seller.notifications(ctx)
		if err != nil {
			t.Fatalf("failed to list notifications: %v", err)
		}
		mustStatus(t, http.StatusOK, code)

		found := false
		for _, n := range notifs {
			if n.Type == types.NotificationAccessApproved {
				found = true
				notificationID = n.ID
				break
			}
		}
		if !found {
			t.Error("approval notification not found")
		}
	})

	t.Run("Marking Read Is Idempotent", func(t *testing.T) {
		if notificationID == 0 {
			t.Skip("approval notification not captured")
		}

		code, err := seller.markRead(ctx, notificationID)
		if err != nil {
			t.Fatalf("failed to mark notification read: %v", err)
		}
		mustStatus(t, http.StatusNoContent, code)

		firstReadAt := readAtOf(t, ctx, seller, notificationID)
		if firstReadAt == "" {
			t.Fatal("expected read_at to be set after the first mark")
		}

		// The owner repeating the call is a success, and the original
		// read timestamp is preserved.
		code, err = seller.markRead(ctx, notificationID)
		if err != nil {
			t.Fatalf("failed to repeat mark read: %v", err)
		}
		mustStatus(t, http.StatusNoContent, code)

		if again := readAtOf(t, ctx, seller, notificationID); again != firstReadAt {
			t.Errorf("expected read_at %s to survive the repeat, got %s", firstReadAt, again)
		}
	})

	t.Run("Revoke", func(t *testing.T) {
		code, err := admin.revoke(ctx, accountID, "policy violation")
		if err != nil {
			t.Fatalf("failed to revoke: %v", err)
		}
		mustStatus(t, http.StatusNoContent, code)
	})

	t.Run("Revoke Twice Conflicts", func(t *testing.T) {
		code, err := admin.revoke(ctx, accountID, "again")
		if err != nil {
			t.Fatalf("failed to call revoke: %v", err)
		}
		mustStatus(t, http.StatusConflict, code)
	})

	t.Run("Capacity After Revoke", func(t *testing.T) {
		_, code, err := seller.capacity(ctx)
		if err != nil {
			t.Fatalf("failed to check capacity: %v", err)
		}
		mustStatus(t, http.StatusForbidden, code)
	})

	t.Run("Audit Trail", func(t *testing.T) {
		entries, code, err := admin.auditEntries(ctx, "access_approve")
		if err != nil {
			t.Fatalf("failed to list audit entries: %v", err)
		}
		mustStatus(t, http.StatusOK, code)

		found := false
		for _, e := range entries {
			if e.TargetType == "access_request" && e.TargetID == requestID {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("approval of request %d not found in audit trail", requestID)
		}
	})
}

// readAtOf lists the account's notifications and returns the read_at of the
// one with the given id, or the empty string when unset.
func readAtOf(t *testing.T, ctx context.Context, client *apiClient, id int64) string {
	t.Helper()

	notifs, code, err := client.notifications(ctx)
	if err != nil {
		t.Fatalf("failed to list notifications: %v", err)
	}
	mustStatus(t, http.StatusOK, code)

	for _, n := range notifs {
		if n.ID == id {
			if !n.Read {
				t.Errorf("expected notification %d to be read", id)
			}
			if n.ReadAt == nil {
				return ""
			}
			return *n.ReadAt
		}
	}
	t.Fatalf("notification %d not found", id)
	return ""
}

func TestRejectionLifecycle(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	suffix := time.Now().UnixNano()
	seller := newAPIClient(
		fmt.Sprintf("subject-rej-%d", suffix),
		fmt.Sprintf("rejected-%d@bazaar.test", suffix),
		"Rejected Seller",
	)
	admin := newAPIClient("admin-subject", adminEmail, "Test Admin")

	request, code, err := seller.submitRequest(ctx, "please")
	if err != nil {
		t.Fatalf("failed to submit request: %v", err)
	}
	mustStatus(t, http.StatusCreated, code)

	t.Run("Reject", func(t *testing.T) {
		code, err := admin.reject(ctx, request.ID, "incomplete profile")
		if err != nil {
			t.Fatalf("failed to reject: %v", err)
		}
		mustStatus(t, http.StatusOK, code)
	})

	t.Run("No Capacity After Rejection", func(t *testing.T) {
		_, code, err := seller.capacity(ctx)
		if err != nil {
			t.Fatalf("failed to check capacity: %v", err)
		}
		mustStatus(t, http.StatusForbidden, code)
	})

	t.Run("Can Submit Again", func(t *testing.T) {
		_, code, err := seller.submitRequest(ctx, "profile completed")
		if err != nil {
			t.Fatalf("failed to submit request: %v", err)
		}
		mustStatus(t, http.StatusCreated, code)
	})
}

func TestAuthenticationRequired(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// No assertion headers at all
	anonymous := newAPIClient("", "", "")

	_, code, err := anonymous.do(ctx, http.MethodGet, "/api/v0/seller/capacity", nil)
	if err != nil {
		t.Fatalf("failed to call capacity: %v", err)
	}
	mustStatus(t, http.StatusUnauthorized, code)
}
