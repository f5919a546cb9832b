package queries

import (
	"context"
	"database/sql"
	"time"

	"shipledger/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler retrieves order read models from the database.
// Scope filtering happens in SQL; the linked partner, agent, and creator
// names are joined in so list screens need no follow-up lookups.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listing queries.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the query. Results are newest-first by order date.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx).Table("orders").
		Select(`orders.id, orders.tracking_id, orders.slip_no, orders.date,
			orders.customer_name, orders.phone, orders.address, orders.pincode,
			orders.courier_paid_extra, orders.courier_cost_expense, orders.packing_cost_expense,
			orders.agent_id, sa.name, orders.partner_id, p.name,
			orders.entered_by_id, u.username, orders.status,
			orders.total_paid, orders.profit, orders.commission_pct, orders.commission_amount,
			orders.created_at`).
		Joins("LEFT JOIN sales_agents sa ON sa.id = orders.agent_id").
		Joins("LEFT JOIN partners p ON p.id = orders.partner_id").
		Joins("LEFT JOIN users u ON u.id = orders.entered_by_id").
		Order("orders.date DESC, orders.created_at DESC")
	tx = applySearch(applyPeriod(applyScope(tx, query.Actor().OrderScope()), query.Period()), query.Search())

	rows, err := tx.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]OrderView, 0)
	index := make(map[uuid.UUID]int)

	for rows.Next() {
		var view OrderView
		var id, enteredByID uuid.UUID
		var agentID, partnerID uuid.NullUUID
		var agentName, partnerName, enteredBy sql.NullString
		var date, createdAt time.Time

		err = rows.Scan(
			&id, &view.TrackingID, &view.SlipNo, &date,
			&view.Customer, &view.Phone, &view.Address, &view.Pincode,
			&view.CourierPaidExtra, &view.CourierCostExpense, &view.PackingCostExpense,
			&agentID, &agentName, &partnerID, &partnerName,
			&enteredByID, &enteredBy, &view.Status,
			&view.TotalPaid, &view.Profit, &view.CommissionPct, &view.CommissionAmount,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if view.EnteredByID, err = kernel.UUIDFromBytes(enteredByID[:]); err != nil {
			return nil, err
		}
		if view.AgentID, err = optionalUUID(agentID); err != nil {
			return nil, err
		}
		if view.PartnerID, err = optionalUUID(partnerID); err != nil {
			return nil, err
		}
		view.Date = date
		view.CreatedAt = createdAt
		view.AgentName = agentName.String
		view.PartnerName = partnerName.String
		view.EnteredBy = enteredBy.String
		view.LineItems = make([]LineItemView, 0)

		index[id] = len(views)
		views = append(views, view)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if err = h.attachLineItems(ctx, views, index); err != nil {
		return nil, err
	}
	return views, nil
}

func (h ListOrdersQueryHandler) attachLineItems(
	ctx context.Context,
	views []OrderView,
	index map[uuid.UUID]int,
) error {
	if len(views) == 0 {
		return nil
	}

	orderIDs := make([]uuid.UUID, 0, len(index))
	for id := range index {
		orderIDs = append(orderIDs, id)
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT order_id, name, cost, price
		FROM order_line_items
		WHERE order_id IN ?
		ORDER BY id
	`, orderIDs).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var orderID uuid.UUID
		var item LineItemView

		if err = rows.Scan(&orderID, &item.Name, &item.Cost, &item.Price); err != nil {
			return err
		}
		if i, ok := index[orderID]; ok {
			views[i].LineItems = append(views[i].LineItems, item)
		}
	}
	return rows.Err()
}
