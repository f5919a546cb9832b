package queries

import (
	"context"

	"shipledger/internal/core/domain/model/kernel"
	"shipledger/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListSalesAgentsQueryHandler retrieves sales agent read models from the
// database.
type ListSalesAgentsQueryHandler struct {
	db *gorm.DB
}

// NewListSalesAgentsQueryHandler creates a handler for sales agent listing
// queries.
func NewListSalesAgentsQueryHandler(db *gorm.DB) ListSalesAgentsQueryHandler {
	return ListSalesAgentsQueryHandler{db: db}
}

// Handle executes the query, sorted by name.
func (h ListSalesAgentsQueryHandler) Handle(ctx context.Context, query ListSalesAgentsQuery) ([]SalesAgentView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if !query.Actor().CanMutateOrders() {
		return nil, errs.NewAuthorizationError("list sales agents")
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, rate, user_id
		FROM sales_agents
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]SalesAgentView, 0)
	for rows.Next() {
		var view SalesAgentView
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
