// Package session confines boards to sessions. Each Table owns one game and
// serializes every interaction with a single mutex; the Manager tracks tables
// by ID and expires idle ones.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-hexchess/internal/game"
)

// ErrNotFound is returned for an unknown or expired table ID.
var ErrNotFound = errors.New("session: table not found")

// Factory creates the game for a new table.
type Factory func() (*game.Game, error)

// Table is one board confined to one session.
type Table struct {
	id        string
	createdAt time.Time

	mu       sync.Mutex
	game     *game.Game
	lastUsed time.Time
	closed   bool
}

// ID returns the table identifier.
func (t *Table) ID() string {
	return t.id
}

// CreatedAt returns when the table was opened.
func (t *Table) CreatedAt() time.Time {
	return t.createdAt
}

// Do runs fn with exclusive access to the table's game. It returns
// ErrNotFound if the table was closed in the meantime.
func (t *Table) Do(fn func(g *game.Game)) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return ErrNotFound
	}
	t.lastUsed = time.Now()
	fn(t.game)
	return nil
}

func (t *Table) idleSince(now time.Time) time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return now.Sub(t.lastUsed)
}

func (t *Table) close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return
	}
	t.closed = true
	t.game.Close()
}

// ManagerConfig holds configuration for the manager.
type ManagerConfig struct {
	IdleTimeout   time.Duration // How long an untouched table is kept
	CleanupPeriod time.Duration // How often to look for idle tables
}

// DefaultManagerConfig returns sensible defaults.
func DefaultManagerConfig() ManagerConfig {
	return ManagerConfig{
		IdleTimeout:   time.Hour,
		CleanupPeriod: time.Minute,
	}
}

// Manager tracks open tables.
type Manager struct {
	config   ManagerConfig
	factory  Factory
	onExpire func(id string)

	mu     sync.RWMutex
	tables map[string]*Table

	done     chan struct{}
	stopOnce sync.Once
}

// NewManager creates a new manager.
func NewManager(cfg ManagerConfig, factory Factory) *Manager {
	if cfg.IdleTimeout <= 0 {
		cfg.IdleTimeout = DefaultManagerConfig().IdleTimeout
	}
	if cfg.CleanupPeriod <= 0 {
		cfg.CleanupPeriod = DefaultManagerConfig().CleanupPeriod
	}
	return &Manager{
		config:  cfg,
		factory: factory,
		tables:  make(map[string]*Table),
		done:    make(chan struct{}),
	}
}

// OnExpire registers a callback invoked after an idle table is closed.
// Must be called before Start.
func (m *Manager) OnExpire(fn func(id string)) {
	m.onExpire = fn
}

// Start begins the manager's background cleanup.
func (m *Manager) Start() {
	go m.cleanupLoop()
}

// Stop shuts down the cleanup loop and closes every table.
// Safe to call multiple times.
func (m *Manager) Stop() {
	m.stopOnce.Do(func() {
		close(m.done)

		m.mu.Lock()
		tables := m.tables
		m.tables = make(map[string]*Table)
		m.mu.Unlock()

		for _, t := range tables {
			t.close()
		}
	})
}

// Create opens a new table with a fresh game.
func (m *Manager) Create() (*Table, error) {
	g, err := m.factory()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	t := &Table{
		id:        uuid.NewString(),
		createdAt: now,
		game:      g,
		lastUsed:  now,
	}

	m.mu.Lock()
	m.tables[t.id] = t
	m.mu.Unlock()
	return t, nil
}

// Get retrieves a table by ID.
func (m *Manager) Get(id string) (*Table, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	t, ok := m.tables[id]
	return t, ok
}

// GetOrCreate returns the table for id, or opens a new one when id is
// unknown. The second result reports whether a table was created.
func (m *Manager) GetOrCreate(id string) (*Table, bool, error) {
	if t, ok := m.Get(id); ok {
		return t, false, nil
	}
	t, err := m.Create()
	return t, err == nil, err
}

// Remove closes and forgets a table.
func (m *Manager) Remove(id string) error {
	m.mu.Lock()
	t, ok := m.tables[id]
	delete(m.tables, id)
	m.mu.Unlock()

	if !ok {
		return ErrNotFound
	}
	t.close()
	return nil
}

// Count returns the number of open tables.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.tables)
}

func (m *Manager) cleanupLoop() {
	ticker := time.NewTicker(m.config.CleanupPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.cleanupIdle(time.Now())
		case <-m.done:
			return
		}
	}
}

// cleanupIdle closes tables untouched for longer than the idle timeout.
func (m *Manager) cleanupIdle(now time.Time) int {
	m.mu.Lock()
	var expired []*Table
	for id, t := range m.tables {
		if t.idleSince(now) > m.config.IdleTimeout {
			expired = append(expired, t)
			delete(m.tables, id)
		}
	}
	m.mu.Unlock()

	for _, t := range expired {
		t.close()
		if m.onExpire != nil {
			m.onExpire(t.id)
		}
	}
	return len(expired)
}
