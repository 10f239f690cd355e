// Copyright 2026 Bazaar Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package live

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"

	"github.com/bazaarlabs/seller-service/internal/logging"
	"github.com/bazaarlabs/seller-service/internal/tracing"
	"github.com/bazaarlabs/seller-service/pkg/identity"
)

const (
	connectionBuffer  = 16
	heartbeatInterval = 30 * time.Second
)

type API struct {
	notifier NotifierInterface

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func NewAPI(notifier NotifierInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	return &API{
		notifier: notifier,
		tracer:   tracer,
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(router chi.Router) {
	router.Get("/api/v0/events", a.stream)
}

func (a *API) RegisterAdminEndpoints(router chi.Router) {
	router.Get("/api/v0/events/stats", a.stats)
}

// stream is the persistent live-events connection. The connection joins the
// caller's account group (and the administrator group when applicable) and is
// unconditionally unregistered when the request ends, whatever the cause.
func (a *API) stream(w http.ResponseWriter, r *http.Request) {
	account, ok := identity.AccountFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	conn := NewSSEConnection(connectionBuffer)
	a.notifier.RegisterConnection(account.ID, account.Role, conn)
	defer a.notifier.Unregister(conn)

	// Initial comment to establish the stream
	_, _ = w.Write([]byte(": stream started\n\n"))
	flusher.Flush()

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-heartbeat.C:
			_, _ = w.Write([]byte(": ping\n\n"))
			flusher.Flush()
		case event := <-conn.Events():
			payload, err := json.Marshal(event.Payload)
			if err != nil {
				a.logger.Debugf("failed to encode live event payload: %v", err)
				continue
			}
			_, _ = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Name, payload)
			flusher.Flush()
		}
	}
}

func (a *API) stats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(a.notifier.Stats()); err != nil {
		a.logger.Errorf("failed to encode live stats: %v", err)
	}
}
