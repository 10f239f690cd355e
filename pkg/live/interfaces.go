// Copyright 2026 Bazaar Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package live

import (
	"github.com/bazaarlabs/seller-service/internal/types"
)

// Event is one live push delivered to a connected client.
type Event struct {
	Name    string         `json:"name"`
	Payload map[string]any `json:"payload"`
}

// ConnectionInterface is the per-connection send primitive supplied by the
// transport layer. Send must not block on network I/O, implementations queue
// and drop when the client cannot keep up.
type ConnectionInterface interface {
	ID() string
	Send(event Event) error
}

// Stats summarises the registry for operational visibility.
type Stats struct {
	Connections int            `json:"connections"`
	Accounts    int            `json:"accounts"`
	Groups      map[string]int `json:"groups"`
}

type NotifierInterface interface {
	RegisterConnection(accountID int64, role types.Role, conn ConnectionInterface)
	Unregister(conn ConnectionInterface)
	JoinTopic(conn ConnectionInterface, topic string)
	PushToAccount(accountID int64, eventName string, payload map[string]any) bool
	PushToRole(role types.Role, eventName string, payload map[string]any) int
	PushToTopic(topic, eventName string, payload map[string]any) int
	Stats() Stats
}
