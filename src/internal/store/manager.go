package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"kerjabantu-service/src/internal/entity"
	"kerjabantu-service/src/internal/repository"
	"kerjabantu-service/src/pkg/log"
)

// Manager owns one Store per session id. Loading and saving the persisted
// blob only happens through Get, Save, Forget and EvictIdle.
type Manager struct {
	Log      log.Log
	Sessions repository.SessionRepository

	catalog *entity.Catalog
	opts    []Option
	now     func() time.Time

	mu     sync.Mutex
	stores map[string]*session
}

type session struct {
	store    *Store
	lastSeen time.Time
}

func NewManager(ctx context.Context, catalogRepository repository.CatalogRepository, sessions repository.SessionRepository, logger log.Log, opts ...Option) (*Manager, error) {
	catalog, err := catalogRepository.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("store: load catalog: %w", err)
	}
	return &Manager{
		Log:      logger,
		Sessions: sessions,
		catalog:  catalog,
		opts:     opts,
		now:      time.Now,
		stores:   make(map[string]*session),
	}, nil
}

// Get returns the store of a session, building it from the catalog and the
// persisted blob on first use.
func (m *Manager) Get(ctx context.Context, sessionID string) (*Store, error) {
	m.mu.Lock()
	if s, ok := m.stores[sessionID]; ok {
		s.lastSeen = m.now()
		m.mu.Unlock()
		return s.store, nil
	}
	m.mu.Unlock()

	st := m.newStore()
	state, err := m.Sessions.Load(ctx, sessionID)
	switch {
	case err == nil:
		st.Restore(*state)
	case errors.Is(err, repository.ErrSessionUnreadable):
		m.Log.Warn("session-manager", err.Error(), "Get", sessionID)
	case errors.Is(err, repository.ErrSessionNotFound):
	default:
		m.Log.Error("session-manager", err.Error(), "Get", sessionID)
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.stores[sessionID]; ok {
		s.lastSeen = m.now()
		return s.store, nil
	}
	m.stores[sessionID] = &session{store: st, lastSeen: m.now()}
	return st, nil
}

// newStore starts a session signed in as the first catalog user.
func (m *Manager) newStore() *Store {
	st := New(m.catalog, m.opts...)
	if len(m.catalog.Users) > 0 {
		st.SetCurrentUser(&m.catalog.Users[0])
	}
	return st
}

// Save writes the persisted subset of st, the store the caller obtained from
// Get. A store evicted in the meantime is cached again so the next Get sees
// the caller's changes.
func (m *Manager) Save(ctx context.Context, sessionID string, st *Store) error {
	m.mu.Lock()
	if _, ok := m.stores[sessionID]; !ok {
		m.stores[sessionID] = &session{store: st, lastSeen: m.now()}
	}
	m.mu.Unlock()
	return m.persist(ctx, sessionID, st)
}

func (m *Manager) persist(ctx context.Context, sessionID string, st *Store) error {
	st.persistMu.Lock()
	defer st.persistMu.Unlock()
	return m.Sessions.Save(ctx, sessionID, st.Snapshot())
}

// Forget drops a session from memory and storage.
func (m *Manager) Forget(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	delete(m.stores, sessionID)
	m.mu.Unlock()
	return m.Sessions.Delete(ctx, sessionID)
}

// EvictIdle saves and drops sessions not used for longer than idle. It
// returns how many sessions were evicted.
func (m *Manager) EvictIdle(ctx context.Context, idle time.Duration) int {
	cutoff := m.now().Add(-idle)

	m.mu.Lock()
	evicted := make(map[string]*Store)
	for id, s := range m.stores {
		if s.lastSeen.Before(cutoff) {
			evicted[id] = s.store
			delete(m.stores, id)
		}
	}
	m.mu.Unlock()

	for id, st := range evicted {
		if err := m.persist(ctx, id, st); err != nil {
			m.Log.Warn("session-manager", err.Error(), "EvictIdle", id)
		}
	}
	return len(evicted)
}

// Len reports how many sessions are cached.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.stores)
}

// FindCatalogUserByEmail looks a user up in the reference data, ignoring case.
func (m *Manager) FindCatalogUserByEmail(email string) (entity.User, bool) {
	for _, u := range m.catalog.Users {
		if strings.EqualFold(u.Email, email) {
			return u.Clone(), true
		}
	}
	return entity.User{}, false
}
