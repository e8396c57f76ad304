package store

import (
	"sync"

	"carwash-backend/gateway"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Manager holds one Store per authenticated user. Stores are created on
// login (or lazily when a valid token outlives a restart) and dropped on
// logout.
type Manager struct {
	gw  gateway.Gateway
	log *logrus.Entry

	mu     sync.RWMutex
	stores map[uuid.UUID]*Store
}

func NewManager(gw gateway.Gateway, log *logrus.Entry) *Manager {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Manager{
		gw:     gw,
		log:    log,
		stores: make(map[uuid.UUID]*Store),
	}
}

// Login runs the store's login flow and, on success, registers the store
// under the user's id. The returned store's session tells the caller whether
// the attempt succeeded.
func (m *Manager) Login(email, password string) *Store {
	st := New(m.gw, m.log)
	st.Login(email, password)
	if user := st.User(); user != nil {
		m.mu.Lock()
		m.stores[user.ID] = st
		m.mu.Unlock()
	}
	return st
}

// SignUp creates the account without establishing a session.
func (m *Manager) SignUp(email, password string) *Store {
	st := New(m.gw, m.log)
	st.SignUp(email, password)
	return st
}

// Get returns the store for userID, or nil.
func (m *Manager) Get(userID uuid.UUID) *Store {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.stores[userID]
}

// Ensure returns the store for userID, rebuilding it from the gateway when
// the token is still valid but the in-memory session is gone (restart).
func (m *Manager) Ensure(userID uuid.UUID) (*Store, error) {
	if st := m.Get(userID); st != nil {
		return st, nil
	}

	user, err := m.gw.GetUser(userID)
	if err != nil {
		return nil, err
	}

	st := New(m.gw, m.log)
	st.onAuthenticated(user)

	m.mu.Lock()
	// A concurrent Ensure may have won; keep the first one.
	if existing, ok := m.stores[userID]; ok {
		m.mu.Unlock()
		return existing, nil
	}
	m.stores[userID] = st
	m.mu.Unlock()
	return st, nil
}

// Logout tears down and forgets the user's store. Safe to call when no store
// exists.
func (m *Manager) Logout(userID uuid.UUID) {
	m.mu.Lock()
	st := m.stores[userID]
	delete(m.stores, userID)
	m.mu.Unlock()

	if st != nil {
		st.Logout()
	}
}

// Each iterates over all live stores.
func (m *Manager) Each(fn func(*Store)) {
	m.mu.RLock()
	stores := make([]*Store, 0, len(m.stores))
	for _, st := range m.stores {
		stores = append(stores, st)
	}
	m.mu.RUnlock()

	for _, st := range stores {
		fn(st)
	}
}
