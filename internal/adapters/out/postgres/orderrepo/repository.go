package orderrepo

import (
	"context"
	"errors"

	"shipledger/internal/core/domain/model/access"
	"shipledger/internal/core/domain/model/kernel"
	"shipledger/internal/core/domain/model/order"
	"shipledger/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates modified
// within a unit of work.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and its line items. A duplicate tracking code or
// slip number surfaces as a ConflictError, which the slip retry loop in the
// create flow depends on.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("trackingId or slipNo", dto.TrackingID, err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order. Line items are replaced wholesale; the
// aggregate owns them and partial diffs are not worth the bookkeeping.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id", "created_at", "LineItems").
		Updates(&dto)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("trackingId or slipNo", dto.TrackingID, result.Error)
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewNotFoundError("orderId", aggregate.ID())
	}

	if err := r.db.WithContext(ctx).Where("order_id = ?", dto.ID).Delete(&LineItemDTO{}).Error; err != nil {
		return err
	}
	if len(dto.LineItems) > 0 {
		if err := r.db.WithContext(ctx).Create(&dto.LineItems).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Delete removes an order and, via the foreign key cascade, its line items.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewNotFoundError("orderId", id)
	}
	return nil
}

// Get retrieves an order by ID with its line items.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("LineItems").First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFoundError("orderId", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllInScope retrieves all orders visible to the scope, newest first.
func (r *GormOrderRepository) GetAllInScope(ctx context.Context, scope access.OrderScope) ([]*order.Order, error) {
	tx := scopedDB(r.db.WithContext(ctx), scope).Preload("LineItems").Order("date DESC")

	var dtos []OrderDTO
	if err := tx.Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// CountForPartner returns how many orders reference the partner.
func (r *GormOrderRepository) CountForPartner(ctx context.Context, partnerID kernel.UUID) (int, error) {
	if err := partnerID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("partner_id = ?", partnerID.Bytes()).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

// GetMaxSlipNo returns the highest numeric slip number issued so far, 0 for
// an empty ledger. Non-numeric slips (manual entries) are skipped.
func (r *GormOrderRepository) GetMaxSlipNo(ctx context.Context) (int, error) {
	var maxSlip int
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(MAX(CAST(slip_no AS INTEGER)), 0)
		FROM orders
		WHERE slip_no ~ '^[0-9]+$'
	`).Scan(&maxSlip).Error
	if err != nil {
		return 0, err
	}
	return maxSlip, nil
}

func scopedDB(tx *gorm.DB, scope access.OrderScope) *gorm.DB {
	switch scope.Kind() {
	case access.ScopeAll:
		return tx
	case access.ScopeByPartner:
		return tx.Where("partner_id = ?", scope.PartnerID().Bytes())
	case access.ScopeByCreator:
		return tx.Where("entered_by_id = ?", scope.CreatorID().Bytes())
	default:
		return tx.Where("1 = 0")
	}
}
