package session

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/aretw0/menutree/internal/logging"
	"github.com/aretw0/menutree/pkg/domain"
	"github.com/aretw0/menutree/pkg/editor"
	"github.com/aretw0/menutree/pkg/tree"
	"github.com/google/uuid"
)

// Session is one editing session.
type Session struct {
	ID        string
	Editor    *editor.Editor
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Info is a read-only summary of a session.
type Info struct {
	ID        string    `json:"sessionId"`
	Nodes     int       `json:"nodes"`
	Roots     int       `json:"roots"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// lockEntry holds the mutex and the reference count.
type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// Manager orchestrates session access, ensuring safe concurrent operations.
// It uses Reference Counting to garbage collect unused locks.
type Manager struct {
	mu       sync.Mutex            // Global lock for the maps
	sessions map[string]*Session   // Live sessions
	locks    map[string]*lockEntry // Map of active locks

	treeOpts   []tree.Option
	editorOpts []editor.Option
	newID      func() string
	now        func() time.Time
	logger     *slog.Logger
	onCount    func(int)
}

// Option configures the Manager.
type Option func(*Manager)

// WithLogger configures a logger for the Manager.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// WithTreeOptions sets the options every new session tree is created with.
func WithTreeOptions(opts ...tree.Option) Option {
	return func(m *Manager) {
		m.treeOpts = append(m.treeOpts, opts...)
	}
}

// WithEditorOptions sets the options every new session editor is created with.
func WithEditorOptions(opts ...editor.Option) Option {
	return func(m *Manager) {
		m.editorOpts = append(m.editorOpts, opts...)
	}
}

// WithSessionIDGenerator overrides the default UUID session IDs.
func WithSessionIDGenerator(fn func() string) Option {
	return func(m *Manager) {
		m.newID = fn
	}
}

// WithCountHook registers a callback fired with the number of live sessions
// whenever a session is created or removed.
func WithCountHook(fn func(int)) Option {
	return func(m *Manager) {
		m.onCount = fn
	}
}

// NewManager creates a new Session Manager.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		sessions: make(map[string]*Session),
		locks:    make(map[string]*lockEntry),
		newID:    uuid.NewString,
		now:      time.Now,
		logger:   logging.NewNop(), // Default to no-op
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// acquire gets or creates a lock entry and increments its reference count.
// The caller MUST Lock the entry.mu, and then call release(sessionID) after unlocking.
func (m *Manager) acquire(sessionID string) *lockEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[sessionID]
	if !exists {
		entry = &lockEntry{}
		m.locks[sessionID] = entry
	}
	entry.refs++
	return entry
}

// release decrements the reference count and deletes the entry if it reaches zero.
func (m *Manager) release(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[sessionID]
	if !exists {
		return
	}

	entry.refs--
	if entry.refs <= 0 {
		delete(m.locks, sessionID)
	}
}

func (m *Manager) withLock(ctx context.Context, sessionID string, fn func(context.Context) error) error {
	entry := m.acquire(sessionID)
	entry.mu.Lock()
	defer func() {
		entry.mu.Unlock()
		m.release(sessionID)
	}()

	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(ctx)
}

// Create starts a new session. An empty sessionID gets a generated one.
func (m *Manager) Create(ctx context.Context, sessionID string) (string, error) {
	if sessionID == "" {
		sessionID = m.newID()
	}

	err := m.withLock(ctx, sessionID, func(ctx context.Context) error {
		m.mu.Lock()
		defer m.mu.Unlock()

		if _, exists := m.sessions[sessionID]; exists {
			return fmt.Errorf("%w: %q", domain.ErrSessionExists, sessionID)
		}

		now := m.now()
		t := tree.New(m.treeOpts...)
		editorOpts := append([]editor.Option{editor.WithLogger(m.logger.With("session_id", sessionID))}, m.editorOpts...)
		m.sessions[sessionID] = &Session{
			ID:        sessionID,
			Editor:    editor.New(t, editorOpts...),
			CreatedAt: now,
			UpdatedAt: now,
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	m.logger.Info("session created", "session_id", sessionID)
	m.reportCount()
	return sessionID, nil
}

// WithSession runs fn with exclusive access to the session's editor.
// The editor must not be retained after fn returns.
func (m *Manager) WithSession(ctx context.Context, sessionID string, fn func(*editor.Editor) error) error {
	return m.withLock(ctx, sessionID, func(ctx context.Context) error {
		sess, err := m.lookup(sessionID)
		if err != nil {
			return err
		}

		err = fn(sess.Editor)

		m.mu.Lock()
		sess.UpdatedAt = m.now()
		m.mu.Unlock()
		return err
	})
}

func (m *Manager) lookup(sessionID string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrSessionNotFound, sessionID)
	}
	return sess, nil
}

// Info returns a summary of one session.
func (m *Manager) Info(ctx context.Context, sessionID string) (Info, error) {
	var info Info
	err := m.withLock(ctx, sessionID, func(ctx context.Context) error {
		sess, err := m.lookup(sessionID)
		if err != nil {
			return err
		}
		t := sess.Editor.Tree()
		info = Info{
			ID:        sess.ID,
			Nodes:     t.Len(),
			Roots:     len(t.RootIDs()),
			CreatedAt: sess.CreatedAt,
			UpdatedAt: sess.UpdatedAt,
		}
		return nil
	})
	return info, err
}

// Delete ends a session. Its tree is discarded.
func (m *Manager) Delete(ctx context.Context, sessionID string) error {
	defer m.reportCount()
	return m.withLock(ctx, sessionID, func(ctx context.Context) error {
		m.mu.Lock()
		defer m.mu.Unlock()

		if _, ok := m.sessions[sessionID]; !ok {
			return fmt.Errorf("%w: %q", domain.ErrSessionNotFound, sessionID)
		}
		delete(m.sessions, sessionID)
		m.logger.Info("session deleted", "session_id", sessionID)
		return nil
	})
}

// List returns the IDs of live sessions, sorted.
func (m *Manager) List(ctx context.Context) []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	ids := make([]string, 0, len(m.sessions))
	for id := range m.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Prune ends sessions that were not touched for longer than idle.
// It returns the number of sessions removed.
func (m *Manager) Prune(ctx context.Context, idle time.Duration) int {
	cutoff := m.now().Add(-idle)

	m.mu.Lock()
	var stale []string
	for id, sess := range m.sessions {
		if sess.UpdatedAt.Before(cutoff) {
			stale = append(stale, id)
		}
	}
	m.mu.Unlock()

	removed := 0
	for _, id := range stale {
		err := m.withLock(ctx, id, func(ctx context.Context) error {
			m.mu.Lock()
			defer m.mu.Unlock()
			// Re-check: the session may have been used since the scan.
			if sess, ok := m.sessions[id]; ok && sess.UpdatedAt.Before(cutoff) {
				delete(m.sessions, id)
				removed++
			}
			return nil
		})
		if err != nil {
			m.logger.Warn("prune interrupted", "err", err)
			break
		}
	}

	if removed > 0 {
		m.logger.Info("idle sessions pruned", "count", removed)
		m.reportCount()
	}
	return removed
}

func (m *Manager) reportCount() {
	if m.onCount == nil {
		return
	}
	m.mu.Lock()
	n := len(m.sessions)
	m.mu.Unlock()
	m.onCount(n)
}
