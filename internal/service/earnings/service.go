package earnings

import (
	"context"

	"go.uber.org/zap"

	"github.com/saathi-labs/saarthi/internal/domain"
	"github.com/saathi-labs/saarthi/internal/observability/telemetry"
	"github.com/saathi-labs/saarthi/internal/ports"
)

type Service struct {
	repo ports.EarningsRepository
	log  *zap.Logger
}

func NewService(repo ports.EarningsRepository, log *zap.Logger) ports.EarningsService {
	return &Service{
		repo: repo,
		log:  log,
	}
}

// Summarize returns the driver's breakdown, or (nil, nil) when no record
// exists. dateRange is accepted for interface stability but the demo dataset
// keeps a single period per driver, so it does not alter the lookup.
func (s *Service) Summarize(ctx context.Context, driverID string, dateRange domain.DateRange) (*domain.EarningsBreakdown, error) {
	record, err := s.repo.FindByDriverID(ctx, driverID)
	if err != nil {
		telemetry.EarningsLookupsTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	if record == nil {
		telemetry.EarningsLookupsTotal.WithLabelValues("not_found").Inc()
		s.log.Debug("No earnings record for driver",
			zap.String("driver_id", driverID),
			zap.String("date_range", string(dateRange)),
		)
		return nil, nil
	}

	telemetry.EarningsLookupsTotal.WithLabelValues("found").Inc()
	return record.Breakdown(), nil
}
