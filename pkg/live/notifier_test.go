// Copyright 2026 Bazaar Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package live

import (
	"fmt"
	"sync"
	"testing"

	"github.com/bazaarlabs/seller-service/internal/logging"
	"github.com/bazaarlabs/seller-service/internal/types"
)

// fakeConn records sent events and can simulate a saturated client.
type fakeConn struct {
	id   string
	full bool

	mu     sync.Mutex
	events []Event
}

func newFakeConn(id string) *fakeConn {
	return &fakeConn{id: id}
}

func (c *fakeConn) ID() string {
	return c.id
}

func (c *fakeConn) Send(event Event) error {
	if c.full {
		return ErrSlowConsumer
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, event)
	return nil
}

func (c *fakeConn) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.events)
}

func newTestNotifier() *Notifier {
	return NewNotifier(logging.NewNoopLogger())
}

func TestNotifier_PushToAccount(t *testing.T) {
	n := newTestNotifier()

	first := newFakeConn("conn-1")
	second := newFakeConn("conn-2")
	other := newFakeConn("conn-3")

	n.RegisterConnection(7, types.RoleSeller, first)
	n.RegisterConnection(7, types.RoleSeller, second)
	n.RegisterConnection(8, types.RoleSeller, other)

	delivered := n.PushToAccount(7, "access_approved", map[string]any{"request_id": 42})

	if !delivered {
		t.Error("expected delivery to a connected account")
	}
	if first.count() != 1 || second.count() != 1 {
		t.Error("expected both of the account's connections to receive the event")
	}
	if other.count() != 0 {
		t.Error("expected no cross-account delivery")
	}
}

func TestNotifier_PushToAccount_NotConnected(t *testing.T) {
	n := newTestNotifier()

	if n.PushToAccount(999, "access_approved", nil) {
		t.Error("expected false for an account with no connections")
	}
}

func TestNotifier_PushToRole(t *testing.T) {
	n := newTestNotifier()

	admin1 := newFakeConn("a1")
	admin2 := newFakeConn("a2")
	seller := newFakeConn("s1")

	n.RegisterConnection(1, types.RoleAdministrator, admin1)
	n.RegisterConnection(2, types.RoleAdministrator, admin2)
	n.RegisterConnection(7, types.RoleSeller, seller)

	count := n.PushToRole(types.RoleAdministrator, "access_requested", map[string]any{"request_id": 42})

	if count != 2 {
		t.Errorf("expected 2 deliveries, got %d", count)
	}
	if seller.count() != 0 {
		t.Error("seller must not receive administrator events")
	}
}

func TestNotifier_SlowConsumerDoesNotCount(t *testing.T) {
	n := newTestNotifier()

	healthy := newFakeConn("ok")
	saturated := newFakeConn("full")
	saturated.full = true

	n.RegisterConnection(1, types.RoleAdministrator, healthy)
	n.RegisterConnection(2, types.RoleAdministrator, saturated)

	count := n.PushToRole(types.RoleAdministrator, "access_requested", nil)

	if count != 1 {
		t.Errorf("expected 1 delivery with one saturated connection, got %d", count)
	}
}

func TestNotifier_Unregister(t *testing.T) {
	n := newTestNotifier()

	conn := newFakeConn("conn-1")
	n.RegisterConnection(7, types.RoleAdministrator, conn)
	n.Unregister(conn)

	if n.PushToAccount(7, "x", nil) {
		t.Error("expected no delivery after unregister")
	}
	if n.PushToRole(types.RoleAdministrator, "x", nil) != 0 {
		t.Error("expected empty role group after unregister")
	}

	// Idempotent
	n.Unregister(conn)

	stats := n.Stats()
	if stats.Connections != 0 || len(stats.Groups) != 0 {
		t.Errorf("expected empty registry, got %+v", stats)
	}
}

func TestNotifier_Topics(t *testing.T) {
	n := newTestNotifier()

	conn := newFakeConn("conn-1")
	stranger := newFakeConn("conn-2")

	n.RegisterConnection(7, types.RoleSeller, conn)
	n.RegisterConnection(8, types.RoleSeller, stranger)
	n.JoinTopic(conn, "review-queue")

	if n.PushToTopic("review-queue", "queue_updated", nil) != 1 {
		t.Error("expected only the joined connection to receive the topic event")
	}

	// Unregister must clear topic membership too.
	n.Unregister(conn)
	if n.PushToTopic("review-queue", "queue_updated", nil) != 0 {
		t.Error("expected empty topic after unregister")
	}
}

func TestNotifier_Stats(t *testing.T) {
	n := newTestNotifier()

	for i := 0; i < 3; i++ {
		n.RegisterConnection(7, types.RoleSeller, newFakeConn(fmt.Sprintf("c%d", i)))
	}
	n.RegisterConnection(1, types.RoleAdministrator, newFakeConn("admin"))

	stats := n.Stats()
	if stats.Connections != 4 {
		t.Errorf("expected 4 connections, got %d", stats.Connections)
	}
	if stats.Accounts != 2 {
		t.Errorf("expected 2 distinct accounts, got %d", stats.Accounts)
	}
	if stats.Groups["role:administrator"] != 1 {
		t.Errorf("expected 1 administrator connection, got %d", stats.Groups["role:administrator"])
	}
}

func TestSSEConnection_SendDropsWhenFull(t *testing.T) {
	conn := NewSSEConnection(1)

	if err := conn.Send(Event{Name: "first"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := conn.Send(Event{Name: "second"}); err != ErrSlowConsumer {
		t.Errorf("expected ErrSlowConsumer, got %v", err)
	}

	got := <-conn.Events()
	if got.Name != "first" {
		t.Errorf("expected buffered event first, got %s", got.Name)
	}
}
