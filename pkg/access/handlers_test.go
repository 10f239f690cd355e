// Copyright 2026 Bazaar Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chi "github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/bazaarlabs/seller-service/internal/logging"
	"github.com/bazaarlabs/seller-service/internal/tracing"
	"github.com/bazaarlabs/seller-service/internal/types"
	"github.com/bazaarlabs/seller-service/pkg/identity"
)

func newTestRouter(service ServiceInterface, account *types.Account) http.Handler {
	api := NewAPI(service, tracing.NewNoopTracer(), logging.NewNoopLogger())

	router := chi.NewMux()
	if account != nil {
		router.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				next.ServeHTTP(w, r.WithContext(identity.WithAccount(r.Context(), account)))
			})
		})
	}
	api.RegisterEndpoints(router)
	api.RegisterAdminEndpoints(router)

	return router
}

func TestAPI_Submit(t *testing.T) {
	account := &types.Account{ID: 7, Role: types.RoleStandard}

	testCases := []struct {
		name           string
		body           string
		account        *types.Account
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name:    "created",
			body:    `{"profile":{"shop":"bikes"}}`,
			account: account,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().Submit(gomock.Any(), account.ID, gomock.Any()).Return(
					&types.AccessRequest{ID: 42, AccountID: account.ID, Status: types.RequestPending}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:    "conflict - already pending",
			body:    `{"profile":{}}`,
			account: account,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().Submit(gomock.Any(), account.ID, gomock.Any()).Return(nil, ErrAlreadyPending)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:    "conflict - active grant",
			body:    `{"profile":{}}`,
			account: account,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().Submit(gomock.Any(), account.ID, gomock.Any()).Return(nil, ErrDuplicateRequest)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "bad request - malformed body",
			body:           `{"profile":`,
			account:        account,
			setupMocks:     func(m *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unauthorized - no account",
			body:           `{"profile":{}}`,
			account:        nil,
			setupMocks:     func(m *MockServiceInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewMockServiceInterface(ctrl)
			tc.setupMocks(service)

			req := httptest.NewRequest(http.MethodPost, "/api/v0/seller/requests", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()

			newTestRouter(service, tc.account).ServeHTTP(rec, req)

			assert.Equal(t, tc.expectedStatus, rec.Code)
		})
	}
}

func TestAPI_Approve(t *testing.T) {
	reviewer := &types.Account{ID: 1, Role: types.RoleAdministrator}

	testCases := []struct {
		name           string
		url            string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name: "ok",
			url:  "/api/v0/seller/requests/42/approve",
			body: `{"max_listings":10,"notes":"fine"}`,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().Approve(gomock.Any(), int64(42), reviewer.ID, 10, "fine").Return(
					&types.AccessRequest{ID: 42, Status: types.RequestApproved}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "bad request - zero max listings",
			url:            "/api/v0/seller/requests/42/approve",
			body:           `{"max_listings":0}`,
			setupMocks:     func(m *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "bad request - invalid id",
			url:            "/api/v0/seller/requests/abc/approve",
			body:           `{"max_listings":10}`,
			setupMocks:     func(m *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "not found",
			url:  "/api/v0/seller/requests/42/approve",
			body: `{"max_listings":10}`,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().Approve(gomock.Any(), int64(42), reviewer.ID, 10, "").Return(nil, ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "conflict - already reviewed",
			url:  "/api/v0/seller/requests/42/approve",
			body: `{"max_listings":10}`,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().Approve(gomock.Any(), int64(42), reviewer.ID, 10, "").Return(nil, ErrAlreadyReviewed)
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewMockServiceInterface(ctrl)
			tc.setupMocks(service)

			req := httptest.NewRequest(http.MethodPost, tc.url, strings.NewReader(tc.body))
			rec := httptest.NewRecorder()

			newTestRouter(service, reviewer).ServeHTTP(rec, req)

			assert.Equal(t, tc.expectedStatus, rec.Code)
		})
	}
}

func TestAPI_Revoke(t *testing.T) {
	admin := &types.Account{ID: 1, Role: types.RoleAdministrator}

	testCases := []struct {
		name           string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name: "no content",
			body: `{"reason":"policy violation"}`,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().RevokeGrant(gomock.Any(), int64(7), admin.ID, "policy violation").Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "bad request - missing reason",
			body:           `{}`,
			setupMocks:     func(m *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "conflict - nothing to revoke",
			body: `{"reason":"policy violation"}`,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().RevokeGrant(gomock.Any(), int64(7), admin.ID, "policy violation").Return(ErrNoActiveGrant)
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewMockServiceInterface(ctrl)
			tc.setupMocks(service)

			req := httptest.NewRequest(http.MethodPost, "/api/v0/seller/accounts/7/revoke", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()

			newTestRouter(service, admin).ServeHTTP(rec, req)

			assert.Equal(t, tc.expectedStatus, rec.Code)
		})
	}
}

func TestAPI_Capacity(t *testing.T) {
	account := &types.Account{ID: 7, Role: types.RoleSeller}

	t.Run("ok", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewMockServiceInterface(ctrl)
		service.EXPECT().CheckCapacity(gomock.Any(), account.ID).Return(
			&types.Capacity{MaxListings: 10, ActiveListings: 4, Remaining: 6}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v0/seller/capacity", nil)
		rec := httptest.NewRecorder()

		newTestRouter(service, account).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"remaining":6`)
	})

	t.Run("forbidden - no grant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewMockServiceInterface(ctrl)
		service.EXPECT().CheckCapacity(gomock.Any(), account.ID).Return(nil, ErrNoActiveGrant)

		req := httptest.NewRequest(http.MethodGet, "/api/v0/seller/capacity", nil)
		rec := httptest.NewRecorder()

		newTestRouter(service, account).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
