// Copyright 2026 Bazaar Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package live

import (
	"errors"

	"github.com/google/uuid"
)

// ErrSlowConsumer means the connection's send buffer was full and the event
// was dropped rather than blocking the pusher.
var ErrSlowConsumer = errors.New("connection send buffer full")

var _ ConnectionInterface = (*SSEConnection)(nil)

// SSEConnection buffers events for one server-sent-events client. Send never
// blocks: when the client cannot keep up the event is dropped and the durable
// notification record remains the source of truth.
type SSEConnection struct {
	id string
	ch chan Event
}

func NewSSEConnection(buffer int) *SSEConnection {
	return &SSEConnection{
		id: uuid.NewString(),
		ch: make(chan Event, buffer),
	}
}

func (c *SSEConnection) ID() string {
	return c.id
}

func (c *SSEConnection) Send(event Event) error {
	select {
	case c.ch <- event:
		return nil
	default:
		return ErrSlowConsumer
	}
}

// Events exposes the buffered stream for the transport write loop.
func (c *SSEConnection) Events() <-chan Event {
	return c.ch
}
