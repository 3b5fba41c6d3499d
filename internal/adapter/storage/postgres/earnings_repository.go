package postgres

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/saathi-labs/saarthi/internal/domain"
	"github.com/saathi-labs/saarthi/internal/ports"
)

// EarningsRepository reads payout records written by the settlement pipeline.
// Read-only from this service's perspective.
type EarningsRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewEarningsRepository(db *gorm.DB, log *zap.Logger) ports.EarningsRepository {
	return &EarningsRepository{
		db:  db,
		log: log,
	}
}

func (r *EarningsRepository) FindByDriverID(ctx context.Context, driverID string) (*domain.EarningsRecord, error) {
	var record domain.EarningsRecord
	err := r.db.WithContext(ctx).First(&record, "driver_id = ?", driverID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *EarningsRepository) Count(ctx context.Context) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.EarningsRecord{}).Count(&count).Error
	return int(count), err
}
