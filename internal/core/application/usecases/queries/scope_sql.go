package queries

import (
	"context"
	"strings"

	"shipledger/internal/core/domain/model/access"
	"shipledger/internal/core/domain/model/kernel"
	"shipledger/internal/core/domain/model/order"
	"shipledger/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// applyScope narrows an orders query to the rows the scope permits. ScopeNone
// matches nothing rather than failing, so an unlinked PARTNER login sees an
// empty ledger instead of an error.
func applyScope(tx *gorm.DB, scope access.OrderScope) *gorm.DB {
	switch scope.Kind() {
	case access.ScopeAll:
		return tx
	case access.ScopeByPartner:
		return tx.Where("orders.partner_id = ?", scope.PartnerID().Bytes())
	case access.ScopeByCreator:
		return tx.Where("orders.entered_by_id = ?", scope.CreatorID().Bytes())
	default:
		return tx.Where("1 = 0")
	}
}

func applyPeriod(tx *gorm.DB, period *kernel.DateRange) *gorm.DB {
	if period == nil {
		return tx
	}
	return tx.Where("orders.date BETWEEN ? AND ?", period.Start(), period.End())
}

// searchCondition is one token of the free-text filter: the token must match
// at least one searchable column. Tokens are combined with AND by the caller.
const searchCondition = `(
	orders.tracking_id ILIKE @term
	OR orders.customer_name ILIKE @term
	OR orders.phone ILIKE @term
	OR orders.slip_no ILIKE @term
	OR orders.address ILIKE @term
	OR orders.pincode ILIKE @term
	OR orders.status ILIKE @term
	OR EXISTS (SELECT 1 FROM order_line_items li WHERE li.order_id = orders.id AND li.name ILIKE @term)
	OR EXISTS (SELECT 1 FROM sales_agents sa WHERE sa.id = orders.agent_id AND sa.name ILIKE @term)
	OR EXISTS (SELECT 1 FROM partners p WHERE p.id = orders.partner_id AND p.name ILIKE @term)
	OR EXISTS (SELECT 1 FROM users u WHERE u.id = orders.entered_by_id AND u.username ILIKE @term)
)`

func applySearch(tx *gorm.DB, search string) *gorm.DB {
	for _, token := range strings.Fields(search) {
		tx = tx.Where(searchCondition, map[string]any{"term": "%" + token + "%"})
	}
	return tx
}

// loadFigures reads the derived money columns for every order in scope and
// range. Billing and stats aggregate these rows in memory; the formulas live
// in services.BillingCalculator, not in SQL.
func loadFigures(
	ctx context.Context,
	db *gorm.DB,
	scope access.OrderScope,
	period *kernel.DateRange,
) ([]services.OrderFigures, error) {
	tx := db.WithContext(ctx).Table("orders").Select(
		"orders.status, orders.total_paid, orders.profit, orders.commission_amount, " +
			"orders.courier_cost_expense, orders.partner_id, orders.agent_id",
	)
	tx = applyPeriod(applyScope(tx, scope), period)

	rows, err := tx.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	figures := make([]services.OrderFigures, 0)
	for rows.Next() {
		var status string
		var totalPaid, profit, commissionAmount, courierCostExpense float64
		var partnerID, agentID uuid.NullUUID

		err = rows.Scan(&status, &totalPaid, &profit, &commissionAmount,
			&courierCostExpense, &partnerID, &agentID)
		if err != nil {
			return nil, err
		}

		parsedStatus, statusErr := order.StatusFromString(status)
		if statusErr != nil {
			return nil, statusErr
		}

		f := services.OrderFigures{
			Status:             parsedStatus,
			TotalPaid:          totalPaid,
			Profit:             profit,
			CommissionAmount:   commissionAmount,
			CourierCostExpense: courierCostExpense,
		}
		if f.PartnerID, err = optionalUUID(partnerID); err != nil {
			return nil, err
		}
		if f.AgentID, err = optionalUUID(agentID); err != nil {
			return nil, err
		}
		figures = append(figures, f)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return figures, nil
}

func optionalUUID(v uuid.NullUUID) (*kernel.UUID, error) {
	if !v.Valid {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes(v.UUID[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
