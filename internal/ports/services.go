package ports

import (
	"context"

	"github.com/saathi-labs/saarthi/internal/domain"
)

// DialogService drives one conversation turn end to end: classify, consult
// and mutate the session, look up earnings when needed, and build the
// response envelope.
type DialogService interface {
	ProcessTurn(ctx context.Context, req domain.TurnRequest) (*domain.TurnResponse, error)
	StartForm(ctx context.Context, formID, driverID string) (*domain.TurnResponse, error)
}

// EarningsService computes the per-driver breakdown. Summarize returns
// (nil, nil) when the driver has no record; dateRange is accepted but the
// demo dataset models a single period per driver, so it does not change
// the result.
type EarningsService interface {
	Summarize(ctx context.Context, driverID string, dateRange domain.DateRange) (*domain.EarningsBreakdown, error)
}
