package requestrepo

import (
	"context"

	"logistics/internal/adapters/out/postgres/pgerr"
	"logistics/internal/core/domain/model/request"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const entity = "transportRequest"

// GormTransportRequestRepository implements ports.TransportRequestRepository.
type GormTransportRequestRepository struct {
	db *gorm.DB
}

func NewGormTransportRequestRepository(db *gorm.DB) *GormTransportRequestRepository {
	return &GormTransportRequestRepository{db: db}
}

func (r *GormTransportRequestRepository) Add(ctx context.Context, aggregate *request.Request) (int64, error) {
	if err := aggregate.Validate(); err != nil {
		return 0, err
	}

	dto := fromDomain(aggregate)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return 0, pgerr.Translate(err, entity, 0)
	}

	if err := aggregate.AssignID(dto.ID); err != nil {
		return 0, err
	}
	return dto.ID, nil
}

// Update writes every column except the requester and the creation time.
func (r *GormTransportRequestRepository) Update(ctx context.Context, aggregate *request.Request) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&RequestDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "requester_email", "requester_name", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return pgerr.Translate(result.Error, entity, dto.ID)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(entity, dto.ID)
	}
	return nil
}

func (r *GormTransportRequestRepository) Get(ctx context.Context, id int64) (*request.Request, error) {
	return r.get(r.db.WithContext(ctx), id)
}

func (r *GormTransportRequestRepository) GetForUpdate(ctx context.Context, id int64) (*request.Request, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}), id)
}

func (r *GormTransportRequestRepository) get(db *gorm.DB, id int64) (*request.Request, error) {
	if id <= 0 {
		return nil, errs.NewValueIsRequiredError("id")
	}

	var dto RequestDTO
	if err := db.First(&dto, "id = ?", id).Error; err != nil {
		return nil, pgerr.Translate(err, entity, id)
	}
	return toDomain(dto)
}

// ResetApproval only touches an approved request that has no transport linked, so it
// cannot undo an approval that completed concurrently.
func (r *GormTransportRequestRepository) ResetApproval(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).
		Model(&RequestDTO{}).
		Where("id = ? AND status = ? AND transport_id IS NULL", id, request.StatusApproved.String()).
		Updates(map[string]any{
			"status":      request.StatusPending.String(),
			"approved_by": nil,
			"approved_at": nil,
			"updated_at":  gorm.Expr("NOW()"),
		})
	return pgerr.Translate(result.Error, entity, id)
}
