package mocks

import (
	"context"

	"github.com/saathi-labs/saarthi/internal/domain"
)

// MockEarningsService is a mock implementation of EarningsService
type MockEarningsService struct {
	SummarizeFunc func(ctx context.Context, driverID string, dateRange domain.DateRange) (*domain.EarningsBreakdown, error)
}

func (m *MockEarningsService) Summarize(ctx context.Context, driverID string, dateRange domain.DateRange) (*domain.EarningsBreakdown, error) {
	if m.SummarizeFunc != nil {
		return m.SummarizeFunc(ctx, driverID, dateRange)
	}
	return nil, nil
}

// MockDialogService is a mock implementation of DialogService
type MockDialogService struct {
	ProcessTurnFunc func(ctx context.Context, req domain.TurnRequest) (*domain.TurnResponse, error)
	StartFormFunc   func(ctx context.Context, formID, driverID string) (*domain.TurnResponse, error)
}

func (m *MockDialogService) ProcessTurn(ctx context.Context, req domain.TurnRequest) (*domain.TurnResponse, error) {
	if m.ProcessTurnFunc != nil {
		return m.ProcessTurnFunc(ctx, req)
	}
	return &domain.TurnResponse{}, nil
}

func (m *MockDialogService) StartForm(ctx context.Context, formID, driverID string) (*domain.TurnResponse, error) {
	if m.StartFormFunc != nil {
		return m.StartFormFunc(ctx, formID, driverID)
	}
	return &domain.TurnResponse{}, nil
}
