// Copyright 2026 Bazaar Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notifications

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/bazaarlabs/seller-service/internal/logging"
	"github.com/bazaarlabs/seller-service/internal/monitoring"
	"github.com/bazaarlabs/seller-service/internal/tracing"
	"github.com/bazaarlabs/seller-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package notifications -destination ./mock_notifications.go -source=./interfaces.go

func newTestService(ctrl *gomock.Controller) (*Service, *MockStorageInterface) {
	mockStorage := NewMockStorageInterface(ctrl)
	s := NewService(
		mockStorage,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)
	return s, mockStorage
}

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, mockStorage := newTestService(ctrl)
	mockStorage.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, n *types.Notification) (*types.Notification, error) {
			if n.Read {
				return nil, errors.New("notifications must start unread")
			}
			created := *n
			created.ID = 1
			return &created, nil
		})

	got, err := s.Create(context.Background(), 7, types.NotificationAccessApproved, "title", "body", map[string]any{"k": "v"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != 1 || got.Type != types.NotificationAccessApproved {
		t.Errorf("unexpected notification: %+v", got)
	}
}

func TestService_ListForAccount_PageSizeClamping(t *testing.T) {
	testCases := []struct {
		name          string
		limit         uint64
		expectedLimit uint64
	}{
		{"zero falls back to default", 0, defaultPageSize},
		{"in range passes through", 25, 25},
		{"over max is clamped", 1000, maxPageSize},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, mockStorage := newTestService(ctrl)
			mockStorage.EXPECT().ListNotifications(gomock.Any(), int64(7), tc.expectedLimit, uint64(0), false).Return(nil, nil)

			if _, err := s.ListForAccount(context.Background(), 7, tc.limit, 0, false); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestService_MarkRead(t *testing.T) {
	testCases := []struct {
		name        string
		rows        int64
		storageErr  error
		expectedErr error
	}{
		{"success", 1, nil, nil},
		// Re-marking a read notification still matches the owner's row, so
		// the repeat is a success, not ErrNotFound.
		{"repeat on already read succeeds", 1, nil, nil},
		{"not found or not owner", 0, nil, ErrNotFound},
		{"storage failure", 0, errors.New("timeout"), errors.New("timeout")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, mockStorage := newTestService(ctrl)
			mockStorage.EXPECT().MarkNotificationRead(gomock.Any(), int64(3), int64(7)).Return(tc.rows, tc.storageErr)

			err := s.MarkRead(context.Background(), 3, 7)

			if tc.expectedErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error but got none")
			}
			if errors.Is(tc.expectedErr, ErrNotFound) && !errors.Is(err, ErrNotFound) {
				t.Errorf("expected ErrNotFound, got %v", err)
			}
		})
	}
}

func TestService_Cleanup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, mockStorage := newTestService(ctrl)
	mockStorage.EXPECT().DeleteNotificationsBefore(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cutoff time.Time) (int64, error) {
			expected := time.Now().UTC().AddDate(0, 0, -90)
			if cutoff.Sub(expected).Abs() > time.Minute {
				return 0, errors.New("cutoff not at the retention horizon")
			}
			return 12, nil
		})

	purged, err := s.Cleanup(context.Background(), 90)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if purged != 12 {
		t.Errorf("expected 12 purged rows, got %d", purged)
	}
}
