// Copyright 2026 Bazaar Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package live

import (
	"fmt"
	"sync"

	"github.com/bazaarlabs/seller-service/internal/logging"
	"github.com/bazaarlabs/seller-service/internal/types"
)

var _ NotifierInterface = (*Notifier)(nil)

type member struct {
	conn      ConnectionInterface
	accountID int64
	groups    map[string]struct{}
}

// Notifier is the in-process connection registry. It is constructed once at
// service start and passed to handlers, and is guarded by its own lock, never
// by a database transaction. Delivery is best-effort: durability lives in the
// notification store, liveness here is opportunistic.
type Notifier struct {
	mu      sync.RWMutex
	members map[string]*member
	groups  map[string]map[string]ConnectionInterface

	logger logging.LoggerInterface
}

func NewNotifier(logger logging.LoggerInterface) *Notifier {
	return &Notifier{
		members: make(map[string]*member),
		groups:  make(map[string]map[string]ConnectionInterface),
		logger:  logger,
	}
}

func accountGroup(accountID int64) string {
	return fmt.Sprintf("account:%d", accountID)
}

func roleGroup(role types.Role) string {
	return fmt.Sprintf("role:%s", role)
}

func topicGroup(topic string) string {
	return fmt.Sprintf("topic:%s", topic)
}

// RegisterConnection joins the connection to its account group and, for
// administrators, to the administrator role group.
func (n *Notifier) RegisterConnection(accountID int64, role types.Role, conn ConnectionInterface) {
	n.mu.Lock()
	defer n.mu.Unlock()

	m := &member{
		conn:      conn,
		accountID: accountID,
		groups:    make(map[string]struct{}),
	}
	n.members[conn.ID()] = m

	n.join(m, accountGroup(accountID))
	if role == types.RoleAdministrator {
		n.join(m, roleGroup(types.RoleAdministrator))
	}
}

// JoinTopic adds an already registered connection to a named topic group.
func (n *Notifier) JoinTopic(conn ConnectionInterface, topic string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	m, ok := n.members[conn.ID()]
	if !ok {
		return
	}
	n.join(m, topicGroup(topic))
}

// join requires n.mu held.
func (n *Notifier) join(m *member, group string) {
	g, ok := n.groups[group]
	if !ok {
		g = make(map[string]ConnectionInterface)
		n.groups[group] = g
	}
	g[m.conn.ID()] = m.conn
	m.groups[group] = struct{}{}
}

// Unregister removes the connection from every group. It is idempotent and
// must run on every disconnect regardless of cause.
func (n *Notifier) Unregister(conn ConnectionInterface) {
	n.mu.Lock()
	defer n.mu.Unlock()

	m, ok := n.members[conn.ID()]
	if !ok {
		return
	}

	for group := range m.groups {
		if g, ok := n.groups[group]; ok {
			delete(g, conn.ID())
			if len(g) == 0 {
				delete(n.groups, group)
			}
		}
	}
	delete(n.members, conn.ID())
}

// PushToAccount delivers to every live connection of the account. The boolean
// means "delivered to at least one live connection": false is not an error,
// the recipient will see the change via the durable notification on its next
// poll or login.
func (n *Notifier) PushToAccount(accountID int64, eventName string, payload map[string]any) bool {
	return n.pushToGroup(accountGroup(accountID), eventName, payload) > 0
}

// PushToRole fans out to the whole role group. O(connected members of the
// role), use sparingly.
func (n *Notifier) PushToRole(role types.Role, eventName string, payload map[string]any) int {
	return n.pushToGroup(roleGroup(role), eventName, payload)
}

func (n *Notifier) PushToTopic(topic, eventName string, payload map[string]any) int {
	return n.pushToGroup(topicGroup(topic), eventName, payload)
}

func (n *Notifier) pushToGroup(group, eventName string, payload map[string]any) int {
	n.mu.RLock()
	conns := make([]ConnectionInterface, 0, len(n.groups[group]))
	for _, conn := range n.groups[group] {
		conns = append(conns, conn)
	}
	n.mu.RUnlock()

	delivered := 0
	for _, conn := range conns {
		if err := conn.Send(Event{Name: eventName, Payload: payload}); err != nil {
			// A failed push is a normal branch of the delivery contract,
			// not an error condition.
			n.logger.Debugf("live push to connection %s dropped: %v", conn.ID(), err)
			continue
		}
		delivered++
	}

	return delivered
}

func (n *Notifier) Stats() Stats {
	n.mu.RLock()
	defer n.mu.RUnlock()

	accounts := make(map[int64]struct{}, len(n.members))
	for _, m := range n.members {
		accounts[m.accountID] = struct{}{}
	}

	groups := make(map[string]int, len(n.groups))
	for name, g := range n.groups {
		groups[name] = len(g)
	}

	return Stats{
		Connections: len(n.members),
		Accounts:    len(accounts),
		Groups:      groups,
	}
}
