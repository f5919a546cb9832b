package queries

import (
	"context"

	"shipledger/internal/core/domain/model/kernel"
	"shipledger/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListPartnersQueryHandler retrieves partner read models from the database.
type ListPartnersQueryHandler struct {
	db *gorm.DB
}

// NewListPartnersQueryHandler creates a handler for partner listing queries.
func NewListPartnersQueryHandler(db *gorm.DB) ListPartnersQueryHandler {
	return ListPartnersQueryHandler{db: db}
}

// Handle executes the query, sorted by name.
func (h ListPartnersQueryHandler) Handle(ctx context.Context, query ListPartnersQuery) ([]PartnerView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if !query.Actor().CanMutateOrders() {
		return nil, errs.NewAuthorizationError("list partners")
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, rate, user_id
		FROM partners
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]PartnerView, 0)
	for rows.Next() {
		var view PartnerView
		var id uuid.UUID
		var userID uuid.NullUUID

		if err = rows.Scan(&id, &view.Name, &view.Rate, &userID); err != nil {
			return nil, err
		}
		if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if view.UserID, err = optionalUUID(userID); err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, rows.Err()
}
