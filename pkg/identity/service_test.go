// Copyright 2026 Bazaar Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	identitymw "github.com/bazaarlabs/seller-service/internal/identity"
	"github.com/bazaarlabs/seller-service/internal/logging"
	"github.com/bazaarlabs/seller-service/internal/monitoring"
	"github.com/bazaarlabs/seller-service/internal/storage"
	"github.com/bazaarlabs/seller-service/internal/tracing"
	"github.com/bazaarlabs/seller-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package identity -destination ./mock_identity.go -source=./interfaces.go

func newTestService(ctrl *gomock.Controller, adminEmails []string) (*Service, *MockStorageInterface) {
	mockStorage := NewMockStorageInterface(ctrl)
	s := NewService(
		mockStorage,
		adminEmails,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)
	return s, mockStorage
}

func TestService_Resolve(t *testing.T) {
	assertion := &identitymw.Assertion{
		SubjectKey:  "auth0|abc123",
		Email:       "jo@example.com",
		DisplayName: "Jo",
	}
	existing := &types.Account{ID: 7, SubjectKey: assertion.SubjectKey, Email: assertion.Email, Role: types.RoleStandard}

	testCases := []struct {
		name        string
		adminEmails []string
		setupMocks  func(*MockStorageInterface)
		expectedID  int64
		expectedErr bool
	}{
		{
			name: "found by subject",
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().GetAccountBySubject(gomock.Any(), assertion.SubjectKey).Return(existing, nil)
			},
			expectedID: 7,
		},
		{
			name: "found by email after subject rotation",
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().GetAccountBySubject(gomock.Any(), assertion.SubjectKey).Return(nil, storage.ErrNotFound)
				m.EXPECT().GetAccountByEmail(gomock.Any(), assertion.Email).Return(existing, nil)
			},
			expectedID: 7,
		},
		{
			name: "created on first sight",
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().GetAccountBySubject(gomock.Any(), assertion.SubjectKey).Return(nil, storage.ErrNotFound)
				m.EXPECT().GetAccountByEmail(gomock.Any(), assertion.Email).Return(nil, storage.ErrNotFound)
				m.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, a *types.Account) (*types.Account, error) {
						if a.Role != types.RoleStandard {
							return nil, errors.New("new accounts start standard")
						}
						if a.CanList {
							return nil, errors.New("new accounts must not list")
						}
						created := *a
						created.ID = 8
						return &created, nil
					})
			},
			expectedID: 8,
		},
		{
			name:        "created as bootstrap administrator",
			adminEmails: []string{"JO@example.com"},
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().GetAccountBySubject(gomock.Any(), assertion.SubjectKey).Return(nil, storage.ErrNotFound)
				m.EXPECT().GetAccountByEmail(gomock.Any(), assertion.Email).Return(nil, storage.ErrNotFound)
				m.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, a *types.Account) (*types.Account, error) {
						if a.Role != types.RoleAdministrator {
							return nil, errors.New("bootstrap admin must be promoted at creation")
						}
						created := *a
						created.ID = 9
						return &created, nil
					})
			},
			expectedID: 9,
		},
		{
			name:        "drifted bootstrap administrator promoted on lookup",
			adminEmails: []string{"jo@example.com"},
			setupMocks: func(m *MockStorageInterface) {
				drifted := *existing
				m.EXPECT().GetAccountBySubject(gomock.Any(), assertion.SubjectKey).Return(&drifted, nil)
				m.EXPECT().SetAccountRole(gomock.Any(), existing.ID, types.RoleAdministrator).Return(nil)
			},
			expectedID: 7,
		},
		{
			name: "creation race converges on winner's row",
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().GetAccountBySubject(gomock.Any(), assertion.SubjectKey).Return(nil, storage.ErrNotFound)
				m.EXPECT().GetAccountByEmail(gomock.Any(), assertion.Email).Return(nil, storage.ErrNotFound)
				m.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
				m.EXPECT().GetAccountByEmail(gomock.Any(), assertion.Email).Return(existing, nil)
			},
			expectedID: 7,
		},
		{
			name: "error - race retry also fails",
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().GetAccountBySubject(gomock.Any(), assertion.SubjectKey).Return(nil, storage.ErrNotFound)
				m.EXPECT().GetAccountByEmail(gomock.Any(), assertion.Email).Return(nil, storage.ErrNotFound)
				m.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
				m.EXPECT().GetAccountByEmail(gomock.Any(), assertion.Email).Return(nil, storage.ErrNotFound)
			},
			expectedErr: true,
		},
		{
			name: "error - subject lookup fails",
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().GetAccountBySubject(gomock.Any(), assertion.SubjectKey).Return(nil, errors.New("connection lost"))
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, mockStorage := newTestService(ctrl, tc.adminEmails)
			tc.setupMocks(mockStorage)

			account, err := s.Resolve(context.Background(), assertion)

			if tc.expectedErr {
				if err == nil {
					t.Fatal("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if account.ID != tc.expectedID {
				t.Errorf("expected account %d, got %d", tc.expectedID, account.ID)
			}
		})
	}
}

func TestService_Resolve_RaceRetryWrapsResolutionFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	assertion := &identitymw.Assertion{SubjectKey: "sub", Email: "a@b.c"}

	s, mockStorage := newTestService(ctrl, nil)
	mockStorage.EXPECT().GetAccountBySubject(gomock.Any(), "sub").Return(nil, storage.ErrNotFound)
	mockStorage.EXPECT().GetAccountByEmail(gomock.Any(), "a@b.c").Return(nil, storage.ErrNotFound)
	mockStorage.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
	mockStorage.EXPECT().GetAccountByEmail(gomock.Any(), "a@b.c").Return(nil, storage.ErrNotFound)

	_, err := s.Resolve(context.Background(), assertion)
	if !errors.Is(err, ErrResolutionFailed) {
		t.Errorf("expected ErrResolutionFailed, got %v", err)
	}
}
