// Copyright 2026 Bazaar Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"testing"
	"time"

	identity "github.com/bazaarlabs/seller-service/internal/identity"
)

// envelope mirrors the service's JSON response wrapper.
type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

type accessRequest struct {
	ID        int64  `json:"id"`
	AccountID int64  `json:"account_id"`
	Status    string `json:"status"`
	Notes     string `json:"notes,omitempty"`
}

type capacity struct {
	MaxListings    int `json:"max_listings"`
	ActiveListings int `json:"active_listings"`
	Remaining      int `json:"remaining"`
}

type notification struct {
	ID     int64   `json:"id"`
	Type   string  `json:"type"`
	Title  string  `json:"title"`
	Read   bool    `json:"read"`
	ReadAt *string `json:"read_at,omitempty"`
}

type auditEntry struct {
	ID         int64  `json:"id"`
	ActorID    int64  `json:"actor_id"`
	Action     string `json:"action"`
	TargetType string `json:"target_type"`
	TargetID   int64  `json:"target_id"`
}

// apiClient calls the service the way the gateway does: identity arrives as
// pre-decoded assertion headers, not as a credential the service verifies.
type apiClient struct {
	baseURL string
	http    *http.Client

	subject string
	email   string
	name    string
}

func newAPIClient(subject, email, name string) *apiClient {
	baseURL := os.Getenv("HTTP_BASE_URL")
	if baseURL == "" {
		if testEnv != nil {
			baseURL = testEnv.BaseURL
		} else {
			baseURL = defaultBaseURL
		}
	}

	return &apiClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
		subject: subject,
		email:   email,
		name:    name,
	}
}

func (c *apiClient) do(ctx context.Context, method, path string, body any) (*envelope, int, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, 0, err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, 0, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.subject != "" {
		req.Header.Set(identity.SubjectHeader, c.subject)
		req.Header.Set(identity.EmailHeader, c.email)
		req.Header.Set(identity.DisplayNameHeader, c.name)
		req.Header.Set(identity.EmailVerifiedHeader, "true")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return &envelope{Status: resp.StatusCode}, resp.StatusCode, nil
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to decode response: %w", err)
	}
	return &env, resp.StatusCode, nil
}

func (c *apiClient) submitRequest(ctx context.Context, notes string) (*accessRequest, int, error) {
	env, code, err := c.do(ctx, http.MethodPost, "/api/v0/seller/requests", map[string]string{"notes": notes})
	if err != nil {
		return nil, code, err
	}
	if code != http.StatusCreated {
		return nil, code, nil
	}
	var request accessRequest
	if err := json.Unmarshal(env.Data, &request); err != nil {
		return nil, code, err
	}
	return &request, code, nil
}

func (c *apiClient) pendingRequests(ctx context.Context) ([]accessRequest, int, error) {
	env, code, err := c.do(ctx, http.MethodGet, "/api/v0/seller/requests/pending", nil)
	if err != nil || code != http.StatusOK {
		return nil, code, err
	}
	var requests []accessRequest
	if err := json.Unmarshal(env.Data, &requests); err != nil {
		return nil, code, err
	}
	return requests, code, nil
}

func (c *apiClient) approve(ctx context.Context, requestID int64, maxListings int, notes string) (int, error) {
	_, code, err := c.do(ctx, http.MethodPost,
		fmt.Sprintf("/api/v0/seller/requests/%d/approve", requestID),
		map[string]any{"max_listings": maxListings, "notes": notes})
	return code, err
}

func (c *apiClient) reject(ctx context.Context, requestID int64, notes string) (int, error) {
	_, code, err := c.do(ctx, http.MethodPost,
		fmt.Sprintf("/api/v0/seller/requests/%d/reject", requestID),
		map[string]string{"notes": notes})
	return code, err
}

func (c *apiClient) revoke(ctx context.Context, accountID int64, reason string) (int, error) {
	_, code, err := c.do(ctx, http.MethodPost,
		fmt.Sprintf("/api/v0/seller/accounts/%d/revoke", accountID),
		map[string]string{"reason": reason})
	return code, err
}

func (c *apiClient) capacity(ctx context.Context) (*capacity, int, error) {
	env, code, err := c.do(ctx, http.MethodGet, "/api/v0/seller/capacity", nil)
	if err != nil || code != http.StatusOK {
		return nil, code, err
	}
	var cap capacity
	if err := json.Unmarshal(env.Data, &cap); err != nil {
		return nil, code, err
	}
	return &cap, code, nil
}

func (c *apiClient) notifications(ctx context.Context) ([]notification, int, error) {
	env, code, err := c.do(ctx, http.MethodGet, "/api/v0/notifications", nil)
	if err != nil || code != http.StatusOK {
		return nil, code, err
	}
	var notifs []notification
	if err := json.Unmarshal(env.Data, &notifs); err != nil {
		return nil, code, err
	}
	return notifs, code, nil
}

func (c *apiClient) markRead(ctx context.Context, id int64) (int, error) {
	_, code, err := c.do(ctx, http.MethodPost,
		fmt.Sprintf("/api/v0/notifications/%d/read", id), nil)
	return code, err
}

func (c *apiClient) unreadCount(ctx context.Context) (int, error) {
	env, code, err := c.do(ctx, http.MethodGet, "/api/v0/notifications/unread-count", nil)
	if err != nil {
		return 0, err
	}
	if code != http.StatusOK {
		return 0, fmt.Errorf("unexpected status %d", code)
	}
	var payload struct {
		Unread int `json:"unread"`
	}
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		return 0, err
	}
	return payload.Unread, nil
}

func (c *apiClient) auditEntries(ctx context.Context, action string) ([]auditEntry, int, error) {
	path := "/api/v0/audit"
	if action != "" {
		path += "?action=" + action
	}
	env, code, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil || code != http.StatusOK {
		return nil, code, err
	}
	var entries []auditEntry
	if err := json.Unmarshal(env.Data, &entries); err != nil {
		return nil, code, err
	}
	return entries, code, nil
}

// mustStatus fails the test when the call did not return the expected status.
func mustStatus(t *testing.T, expected, got int) {
	t.Helper()
	if got != expected {
		t.Fatalf("expected status %d, got %d", expected, got)
	}
}
