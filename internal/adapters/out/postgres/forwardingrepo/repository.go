package forwardingrepo

import (
	"context"
	"time"

	"logistics/internal/adapters/out/postgres/pgerr"
	"logistics/internal/core/domain/model/forwarding"
	"logistics/internal/pkg/errs"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const entity = "forwardingOrder"

// GormForwardingOrderRepository implements ports.ForwardingOrderRepository.
type GormForwardingOrderRepository struct {
	db     *gorm.DB
	logger logrus.FieldLogger
}

func NewGormForwardingOrderRepository(db *gorm.DB, logger logrus.FieldLogger) *GormForwardingOrderRepository {
	return &GormForwardingOrderRepository{db: db, logger: logger}
}

func (r *GormForwardingOrderRepository) Add(ctx context.Context, aggregate *forwarding.Order) (int64, error) {
	if err := aggregate.Validate(); err != nil {
		return 0, err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return 0, err
	}
	dto.ID = 0

	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return 0, pgerr.Translate(err, "orderNumber", dto.OrderNumber)
	}

	if err = aggregate.AssignID(dto.ID); err != nil {
		return 0, err
	}
	return dto.ID, nil
}

// Update writes the fields that change after creation.
func (r *GormForwardingOrderRepository) Update(ctx context.Context, aggregate *forwarding.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"status":      dto.Status,
		"distance_km": dto.DistanceKm,
		"response":    dto.Response,
	})
	if result.Error != nil {
		return pgerr.Translate(result.Error, entity, dto.ID)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(entity, dto.ID)
	}
	return nil
}

func (r *GormForwardingOrderRepository) Get(ctx context.Context, id int64) (*forwarding.Order, error) {
	return r.get(ctx, r.db.WithContext(ctx), id)
}

func (r *GormForwardingOrderRepository) GetForUpdate(ctx context.Context, id int64) (*forwarding.Order, error) {
	return r.get(ctx, r.db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}), id)
}

func (r *GormForwardingOrderRepository) get(_ context.Context, db *gorm.DB, id int64) (*forwarding.Order, error) {
	if id <= 0 {
		return nil, errs.NewValueIsRequiredError("id")
	}

	var dto OrderDTO
	if err := db.First(&dto, "id = ?", id).Error; err != nil {
		return nil, pgerr.Translate(err, entity, id)
	}

	order, failures, err := toDomain(dto)
	if err != nil {
		return nil, err
	}
	for _, f := range failures {
		r.logger.WithFields(logrus.Fields{"order": id, "column": f.Column}).
			WithError(f.Err).Warn("stored value could not be decoded")
	}
	return order, nil
}

func (r *GormForwardingOrderRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", id)
	if result.Error != nil {
		return pgerr.Translate(result.Error, entity, id)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(entity, id)
	}
	return nil
}

// LockNumbering takes a transaction-scoped advisory lock keyed by the month of at.
func (r *GormForwardingOrderRepository) LockNumbering(ctx context.Context, at time.Time) error {
	key := int64(at.Year())*100 + int64(at.Month())
	return r.db.WithContext(ctx).Exec("SELECT pg_advisory_xact_lock(?)", key).Error
}

func (r *GormForwardingOrderRepository) NumbersCreatedBetween(ctx context.Context, from, to time.Time) ([]string, error) {
	var numbers []string
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("created_at >= ? AND created_at < ?", from, to).
		Pluck("order_number", &numbers).Error
	if err != nil {
		return nil, err
	}
	return numbers, nil
}
