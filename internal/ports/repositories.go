package ports

import (
	"context"

	"github.com/saathi-labs/saarthi/internal/domain"
)

// EarningsRepository is the read-only payout dataset. FindByDriverID returns
// (nil, nil) when no record exists for the driver.
type EarningsRepository interface {
	FindByDriverID(ctx context.Context, driverID string) (*domain.EarningsRecord, error)
	Count(ctx context.Context) (int, error)
}

// SessionStore keeps per-conversation state. GetOrCreate mints a fresh
// session when id is empty or unknown and returns the effective id.
// Lock gives per-session mutual exclusion for the get→mutate→save turn;
// callers must invoke the returned func to release.
type SessionStore interface {
	GetOrCreate(ctx context.Context, id string) (string, *domain.Session, error)
	Save(ctx context.Context, session *domain.Session) error
	Lock(id string) func()
	Ping() error
	Close() error
}
