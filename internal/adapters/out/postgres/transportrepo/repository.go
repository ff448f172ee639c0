package transportrepo

import (
	"context"

	"logistics/internal/adapters/out/postgres/pgerr"
	"logistics/internal/core/domain/model/transport"

	"gorm.io/gorm"
)

// GormTransportRepository implements ports.TransportRepository.
type GormTransportRepository struct {
	db *gorm.DB
}

func NewGormTransportRepository(db *gorm.DB) *GormTransportRepository {
	return &GormTransportRepository{db: db}
}

func (r *GormTransportRepository) Add(ctx context.Context, aggregate *transport.Transport) (int64, error) {
	if err := aggregate.Validate(); err != nil {
		return 0, err
	}

	dto := fromDomain(aggregate)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return 0, pgerr.Translate(err, "transport", aggregate.Plan().RequestID)
	}

	if err := aggregate.AssignID(dto.ID); err != nil {
		return 0, err
	}
	return dto.ID, nil
}
