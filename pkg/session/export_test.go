package session

import "time"

// SetClock replaces the manager clock in tests.
func (m *Manager) SetClock(now func() time.Time) {
	m.now = now
}

// ActiveLocks reports how many lock entries are alive.
func (m *Manager) ActiveLocks() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.locks)
}
