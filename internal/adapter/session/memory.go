package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/saathi-labs/saarthi/internal/domain"
	"github.com/saathi-labs/saarthi/internal/observability/telemetry"
	"github.com/saathi-labs/saarthi/internal/ports"
)

// MemoryStore is the default session backend: an in-memory map bounded by
// both a TTL sweep and a max-session capacity, so conversation state cannot
// grow without limit over the process lifetime.
type MemoryStore struct {
	mu          sync.RWMutex
	sessions    map[string]*domain.Session
	locks       *keyedMutex
	ttl         time.Duration
	maxSessions int
	log         *zap.Logger
	stopCh      chan struct{}
}

func NewMemoryStore(ttl time.Duration, maxSessions int, cleanupInterval time.Duration, log *zap.Logger) ports.SessionStore {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	if cleanupInterval <= 0 {
		cleanupInterval = time.Minute
	}

	s := &MemoryStore{
		sessions:    make(map[string]*domain.Session),
		locks:       newKeyedMutex(),
		ttl:         ttl,
		maxSessions: maxSessions,
		log:         log,
		stopCh:      make(chan struct{}),
	}

	go s.cleanupLoop(cleanupInterval)

	log.Info("In-memory session store initialized",
		zap.Duration("ttl", ttl),
		zap.Int("max_sessions", maxSessions),
	)
	return s
}

func (s *MemoryStore) GetOrCreate(ctx context.Context, id string) (string, *domain.Session, error) {
	if id != "" {
		s.mu.RLock()
		existing, ok := s.sessions[id]
		s.mu.RUnlock()
		if ok {
			return id, existing, nil
		}
	}

	// Absent and unknown ids both get a fresh opaque id. A caller-supplied
	// id never becomes a session key unless this store issued it.
	id = uuid.NewString()
	fresh := domain.NewSession(id)

	s.mu.Lock()
	if s.maxSessions > 0 && len(s.sessions) >= s.maxSessions {
		s.evictOldestLocked()
	}
	s.sessions[id] = fresh
	size := len(s.sessions)
	s.mu.Unlock()

	telemetry.ActiveSessions.Set(float64(size))
	return id, fresh, nil
}

func (s *MemoryStore) Save(ctx context.Context, session *domain.Session) error {
	// LastSeenAt is read by the sweep under mu; the write must happen
	// inside the same critical section.
	s.mu.Lock()
	session.LastSeenAt = time.Now()
	s.sessions[session.ID] = session
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Lock(id string) func() {
	return s.locks.Lock(id)
}

func (s *MemoryStore) Ping() error {
	return nil
}

func (s *MemoryStore) Close() error {
	close(s.stopCh)
	return nil
}

// evictOldestLocked drops the least-recently-touched session. Caller holds mu.
func (s *MemoryStore) evictOldestLocked() {
	var oldestID string
	var oldestSeen time.Time
	for id, sess := range s.sessions {
		if oldestID == "" || sess.LastSeenAt.Before(oldestSeen) {
			oldestID = id
			oldestSeen = sess.LastSeenAt
		}
	}
	if oldestID != "" {
		delete(s.sessions, oldestID)
		s.log.Debug("Evicted session at capacity", zap.String("session_id", oldestID))
	}
}

func (s *MemoryStore) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.stopCh:
			return
		}
	}
}

func (s *MemoryStore) cleanup() {
	cutoff := time.Now().Add(-s.ttl)

	s.mu.Lock()
	expired := 0
	for id, sess := range s.sessions {
		if sess.LastSeenAt.Before(cutoff) {
			delete(s.sessions, id)
			expired++
		}
	}
	size := len(s.sessions)
	s.mu.Unlock()

	telemetry.ActiveSessions.Set(float64(size))
	if expired > 0 {
		s.log.Debug("Session cleanup completed", zap.Int("expired_sessions", expired))
	}
}
