package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/saathi-labs/saarthi/internal/domain"
	"github.com/saathi-labs/saarthi/internal/ports"
)

// EarningsRepository serves the demo payout dataset from a JSON file.
// The file is read once at startup; a load failure is a configuration error
// and must abort initialization. After load the map is never written again,
// so it is shared without locking.
type EarningsRepository struct {
	records map[string]*domain.EarningsRecord
	log     *zap.Logger
}

func NewEarningsRepository(path string, log *zap.Logger) (ports.EarningsRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read earnings dataset %s: %w", path, err)
	}

	var records []domain.EarningsRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse earnings dataset %s: %w", path, err)
	}

	byDriver := make(map[string]*domain.EarningsRecord, len(records))
	for i := range records {
		byDriver[records[i].DriverID] = &records[i]
	}

	log.Info("Earnings dataset loaded",
		zap.String("path", path),
		zap.Int("records", len(byDriver)),
	)
	return &EarningsRepository{
		records: byDriver,
		log:     log,
	}, nil
}

func (r *EarningsRepository) FindByDriverID(ctx context.Context, driverID string) (*domain.EarningsRecord, error) {
	record, ok := r.records[driverID]
	if !ok {
		return nil, nil
	}
	return record, nil
}

func (r *EarningsRepository) Count(ctx context.Context) (int, error) {
	return len(r.records), nil
}
