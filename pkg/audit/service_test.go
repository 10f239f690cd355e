// Copyright 2026 Bazaar Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package audit

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/bazaarlabs/seller-service/internal/logging"
	"github.com/bazaarlabs/seller-service/internal/monitoring"
	"github.com/bazaarlabs/seller-service/internal/tracing"
	"github.com/bazaarlabs/seller-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package audit -destination ./mock_audit.go -source=./interfaces.go

func newTestRecorder(ctrl *gomock.Controller) (*Recorder, *MockStorageInterface) {
	mockStorage := NewMockStorageInterface(ctrl)
	r := NewRecorder(
		mockStorage,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)
	return r, mockStorage
}

func TestRecorder_Record(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r, mockStorage := newTestRecorder(ctrl)
	mockStorage.EXPECT().AppendAuditEntry(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e *types.AuditEntry) error {
			if e.Action != ActionAccessApprove || e.ActorID != 1 || e.TargetID != 42 {
				return errors.New("unexpected entry")
			}
			if e.OriginIP != "203.0.113.9" || e.UserAgent != "curl/8" {
				return errors.New("origin metadata not carried over")
			}
			return nil
		})

	r.Record(context.Background(), 1, ActionAccessApprove, "access_request", 42,
		map[string]any{"account_id": 7}, Origin{IP: "203.0.113.9", UserAgent: "curl/8"})
}

func TestRecorder_RecordSwallowsStorageErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r, mockStorage := newTestRecorder(ctrl)
	mockStorage.EXPECT().AppendAuditEntry(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	// Must not panic and has no error to return: audit never blocks the
	// transition it describes.
	r.Record(context.Background(), 1, ActionAccessRevoke, "account", 7, nil, Origin{})
}

func TestOriginMiddleware(t *testing.T) {
	testCases := []struct {
		name       string
		remoteAddr string
		forwarded  string
		expectedIP string
	}{
		{"from remote addr", "198.51.100.4:53211", "", "198.51.100.4"},
		{"forwarded header wins", "10.0.0.1:1000", "203.0.113.9", "203.0.113.9"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var got Origin
			handler := OriginMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = OriginFromContext(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tc.remoteAddr
			req.Header.Set("User-Agent", "test-agent")
			if tc.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tc.forwarded)
			}

			handler.ServeHTTP(httptest.NewRecorder(), req)

			if got.IP != tc.expectedIP {
				t.Errorf("expected ip %s, got %s", tc.expectedIP, got.IP)
			}
			if got.UserAgent != "test-agent" {
				t.Errorf("expected user agent test-agent, got %s", got.UserAgent)
			}
		})
	}
}

func TestOriginFromContext_Zero(t *testing.T) {
	origin := OriginFromContext(context.Background())
	if origin.IP != "" || origin.UserAgent != "" {
		t.Errorf("expected zero origin, got %+v", origin)
	}
}
