// Package partnerrepo provides persistence for the shipping partner catalog.
package partnerrepo

import (
	"context"
	"errors"

	"shipledger/internal/core/domain/model/catalog"
	"shipledger/internal/core/domain/model/kernel"
	"shipledger/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PartnerDTO represents the database structure for persisting partners.
type PartnerDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name   string    `gorm:"uniqueIndex"`
	Rate   float64
	UserID *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for partners.
func (PartnerDTO) TableName() string {
	return "partners"
}

func fromDomain(p *catalog.Partner) PartnerDTO {
	dto := PartnerDTO{
		ID:   p.ID().Bytes(),
		Name: p.Name(),
		Rate: p.Rate(),
	}
	if id := p.UserID(); id != nil {
		raw := id.Bytes()
		dto.UserID = &raw
	}
	return dto
}

func toDomain(dto PartnerDTO) (*catalog.Partner, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var userID *kernel.UUID
	if dto.UserID != nil {
		uid, uidErr := kernel.UUIDFromBytes((*dto.UserID)[:])
		if uidErr != nil {
			return nil, uidErr
		}
		userID = &uid
	}

	return catalog.RestorePartner(id, dto.Name, dto.Rate, userID)
}

// GormPartnerRepository implements ports.PartnerRepository using GORM.
type GormPartnerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPartnerRepository creates a new GORM partner repository.
func NewGormPartnerRepository(db *gorm.DB, tracker aggregateTracker) *GormPartnerRepository {
	return &GormPartnerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new partner. A duplicate name surfaces as a ConflictError.
func (r *GormPartnerRepository) Add(ctx context.Context, p *catalog.Partner) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := fromDomain(p)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("name", dto.Name, err)
		}
		return err
	}

	r.tracker.TrackAggregate(p.ID(), p)
	return nil
}

// Update saves an existing partner.
func (r *GormPartnerRepository) Update(ctx context.Context, p *catalog.Partner) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := fromDomain(p)
	result := r.db.WithContext(ctx).Model(&PartnerDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id").
		Updates(&dto)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("name", dto.Name, result.Error)
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewNotFoundError("partnerId", p.ID())
	}

	r.tracker.TrackAggregate(p.ID(), p)
	return nil
}

// Delete removes a partner by ID.
func (r *GormPartnerRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&PartnerDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewNotFoundError("partnerId", id)
	}
	return nil
}

// Get retrieves a partner by ID.
func (r *GormPartnerRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Partner, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PartnerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFoundError("partnerId", id)
		}
		return nil, err
	}
	return toDomain(dto)
}

// GetByUserID retrieves the partner profile linked to a login, if any.
func (r *GormPartnerRepository) GetByUserID(ctx context.Context, userID kernel.UUID) (*catalog.Partner, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dto PartnerDTO
	if err := r.db.WithContext(ctx).First(&dto, "user_id = ?", userID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFoundError("userId", userID)
		}
		return nil, err
	}
	return toDomain(dto)
}

// GetAll retrieves every partner sorted by name.
func (r *GormPartnerRepository) GetAll(ctx context.Context) ([]*catalog.Partner, error) {
	var dtos []PartnerDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	partners := make([]*catalog.Partner, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		partners = append(partners, p)
	}
	return partners, nil
}
