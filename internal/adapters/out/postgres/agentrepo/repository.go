// Package agentrepo provides persistence for the sales agent catalog.
package agentrepo

import (
	"context"
	"errors"

	"shipledger/internal/core/domain/model/catalog"
	"shipledger/internal/core/domain/model/kernel"
	"shipledger/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SalesAgentDTO represents the database structure for persisting sales agents.
type SalesAgentDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name   string    `gorm:"uniqueIndex"`
	Rate   float64
	UserID *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for sales agents.
func (SalesAgentDTO) TableName() string {
	return "sales_agents"
}

func fromDomain(a *catalog.SalesAgent) SalesAgentDTO {
	dto := SalesAgentDTO{
		ID:   a.ID().Bytes(),
		Name: a.Name(),
		Rate: a.Rate(),
	}
	if id := a.UserID(); id != nil {
		raw := id.Bytes()
		dto.UserID = &raw
	}
	return dto
}

func toDomain(dto SalesAgentDTO) (*catalog.SalesAgent, error) {
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

	return catalog.RestoreSalesAgent(id, dto.Name, dto.Rate, userID)
}

// GormSalesAgentRepository implements ports.SalesAgentRepository using GORM.
type GormSalesAgentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormSalesAgentRepository creates a new GORM sales agent repository.
func NewGormSalesAgentRepository(db *gorm.DB, tracker aggregateTracker) *GormSalesAgentRepository {
	return &GormSalesAgentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new sales agent. A duplicate name surfaces as a ConflictError.
func (r *GormSalesAgentRepository) Add(ctx context.Context, a *catalog.SalesAgent) error {
	if err := a.Validate(); err != nil {
		return err
	}

	dto := fromDomain(a)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("name", dto.Name, err)
		}
		return err
	}

	r.tracker.TrackAggregate(a.ID(), a)
	return nil
}

// Update saves an existing sales agent.
func (r *GormSalesAgentRepository) Update(ctx context.Context, a *catalog.SalesAgent) error {
	if err := a.Validate(); err != nil {
		return err
	}

	dto := fromDomain(a)
	result := r.db.WithContext(ctx).Model(&SalesAgentDTO{}).
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
		return errs.NewNotFoundError("agentId", a.ID())
	}

	r.tracker.TrackAggregate(a.ID(), a)
	return nil
}

// Delete removes a sales agent by ID.
func (r *GormSalesAgentRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&SalesAgentDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewNotFoundError("agentId", id)
	}
	return nil
}

// Get retrieves a sales agent by ID.
func (r *GormSalesAgentRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.SalesAgent, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SalesAgentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFoundError("agentId", id)
		}
		return nil, err
	}
	return toDomain(dto)
}

// GetByUserID retrieves the sales agent profile linked to a login, if any.
func (r *GormSalesAgentRepository) GetByUserID(ctx context.Context, userID kernel.UUID) (*catalog.SalesAgent, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dto SalesAgentDTO
	if err := r.db.WithContext(ctx).First(&dto, "user_id = ?", userID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFoundError("userId", userID)
		}
		return nil, err
	}
	return toDomain(dto)
}

// GetAll retrieves every sales agent sorted by name.
func (r *GormSalesAgentRepository) GetAll(ctx context.Context) ([]*catalog.SalesAgent, error) {
	var dtos []SalesAgentDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	agents := make([]*catalog.SalesAgent, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		agents = append(agents, a)
	}
	return agents, nil
}
