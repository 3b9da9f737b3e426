package form

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Manager tracks live form instances by ID. Forms that the dashboard
// abandons without closing are evicted after the TTL.
type Manager struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]*managedForm
}

type managedForm struct {
	ctrl     *Controller
	deadline time.Time
}

// NewManager constructs a Manager with the given instance TTL.
func NewManager(ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &Manager{
		ttl:     ttl,
		entries: make(map[string]*managedForm),
	}
}

// Open registers a controller and returns its form ID.
func (m *Manager) Open(ctrl *Controller) string {
	id := uuid.NewString()
	now := time.Now()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sweepLocked(now)
	m.entries[id] = &managedForm{ctrl: ctrl, deadline: now.Add(m.ttl)}
	return id
}

// Get returns the controller for id and extends its lease.
func (m *Manager) Get(id string) (*Controller, bool) {
	now := time.Now()
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.entries[id]
	if !ok || now.After(entry.deadline) {
		return nil, false
	}
	entry.deadline = now.Add(m.ttl)
	return entry.ctrl, true
}

// Close discards a form instance and cancels its pending checks.
func (m *Manager) Close(id string) {
	m.mu.Lock()
	entry, ok := m.entries[id]
	delete(m.entries, id)
	m.mu.Unlock()
	if ok {
		entry.ctrl.Close()
	}
}

func (m *Manager) sweepLocked(now time.Time) {
	for id, entry := range m.entries {
		if now.After(entry.deadline) {
			entry.ctrl.Close()
			delete(m.entries, id)
		}
	}
}
