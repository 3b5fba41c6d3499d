package mocks

import (
	"context"

	"github.com/saathi-labs/saarthi/internal/domain"
)

// MockEarningsRepository is a mock implementation of EarningsRepository
type MockEarningsRepository struct {
	FindByDriverIDFunc func(ctx context.Context, driverID string) (*domain.EarningsRecord, error)
	CountFunc          func(ctx context.Context) (int, error)
}

func (m *MockEarningsRepository) FindByDriverID(ctx context.Context, driverID string) (*domain.EarningsRecord, error) {
	if m.FindByDriverIDFunc != nil {
		return m.FindByDriverIDFunc(ctx, driverID)
	}
	return nil, nil
}

func (m *MockEarningsRepository) Count(ctx context.Context) (int, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockSessionStore is a mock implementation of SessionStore backed by a map.
// Not safe for concurrent use; fine for the unit suites.
type MockSessionStore struct {
	Sessions        map[string]*domain.Session
	GetOrCreateFunc func(ctx context.Context, id string) (string, *domain.Session, error)
	SaveFunc        func(ctx context.Context, session *domain.Session) error
	minted          int
}

func NewMockSessionStore() *MockSessionStore {
	return &MockSessionStore{Sessions: make(map[string]*domain.Session)}
}

func (m *MockSessionStore) GetOrCreate(ctx context.Context, id string) (string, *domain.Session, error) {
	if m.GetOrCreateFunc != nil {
		return m.GetOrCreateFunc(ctx, id)
	}
	if id != "" {
		if sess, ok := m.Sessions[id]; ok {
			return id, sess, nil
		}
	}
	// Unknown ids mint a fresh one, same as the real backends.
	m.minted++
	id = "mock-session-" + string(rune('0'+m.minted))
	sess := domain.NewSession(id)
	m.Sessions[id] = sess
	return id, sess, nil
}

func (m *MockSessionStore) Save(ctx context.Context, session *domain.Session) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, session)
	}
	m.Sessions[session.ID] = session
	return nil
}

func (m *MockSessionStore) Lock(id string) func() {
	return func() {}
}

func (m *MockSessionStore) Ping() error {
	return nil
}

func (m *MockSessionStore) Close() error {
	return nil
}
