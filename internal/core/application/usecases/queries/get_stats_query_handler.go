package queries

import (
	"context"
	"time"

	"shipledger/internal/core/domain/model/access"
	"shipledger/internal/core/domain/model/kernel"
	"shipledger/internal/core/domain/model/order"
	"shipledger/internal/core/domain/services"

	"gorm.io/gorm"
)

const dailySeriesDays = 7

// GetStatsQueryHandler computes dashboard indicators from the orders table.
// Row filtering runs in SQL; the money aggregation reuses the same
// contribution rules the billing engine applies, so the dashboard and the
// invoices can never disagree on what a returned order is worth.
type GetStatsQueryHandler struct {
	db         *gorm.DB
	calculator services.BillingCalculator
}

// NewGetStatsQueryHandler creates a handler for dashboard stats queries.
func NewGetStatsQueryHandler(db *gorm.DB) GetStatsQueryHandler {
	return GetStatsQueryHandler{db: db, calculator: services.NewBillingCalculator()}
}

// Handle executes the query.
func (h GetStatsQueryHandler) Handle(ctx context.Context, query GetStatsQuery) (StatsView, error) {
	if err := query.Validate(); err != nil {
		return StatsView{}, err
	}

	scope := query.Actor().OrderScope()
	asPartner := query.Actor().Role() == access.RolePartner

	figures, err := loadFigures(ctx, h.db, scope, query.Period())
	if err != nil {
		return StatsView{}, err
	}

	view := StatsView{OrderCount: len(figures)}
	for _, f := range figures {
		view.ProfitOrEarnings += h.moneyContribution(f, asPartner)
		view.SalesTotal += h.calculator.SalesContribution(f)
	}
	view.ProfitOrEarnings = kernel.RoundMoney(view.ProfitOrEarnings)
	view.SalesTotal = kernel.RoundMoney(view.SalesTotal)

	now := time.Now()
	if view.TodayCount, err = h.countOrders(ctx, scope, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("orders.date BETWEEN ? AND ?", kernel.StartOfDay(now), kernel.EndOfDay(now))
	}); err != nil {
		return StatsView{}, err
	}

	if view.ActiveCount, err = h.countOrders(ctx, scope, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("orders.status NOT IN ?",
			[]string{order.StatusDelivered.String(), order.StatusReturned.String()})
	}); err != nil {
		return StatsView{}, err
	}

	if view.DailySeries, err = h.dailySeries(ctx, scope, asPartner, now); err != nil {
		return StatsView{}, err
	}
	return view, nil
}

// moneyContribution is the headline figure for one order: accrued courier
// earnings for a partner login, profit contribution for everyone else.
func (h GetStatsQueryHandler) moneyContribution(f services.OrderFigures, asPartner bool) float64 {
	if asPartner {
		return f.CourierCostExpense
	}
	return h.calculator.ProfitContribution(f)
}

func (h GetStatsQueryHandler) countOrders(
	ctx context.Context,
	scope access.OrderScope,
	narrow func(*gorm.DB) *gorm.DB,
) (int, error) {
	var count int64
	tx := narrow(applyScope(h.db.WithContext(ctx).Table("orders"), scope))
	if err := tx.Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

func (h GetStatsQueryHandler) dailySeries(
	ctx context.Context,
	scope access.OrderScope,
	asPartner bool,
	now time.Time,
) ([]DailyStat, error) {
	seriesStart := kernel.StartOfDay(now.AddDate(0, 0, -(dailySeriesDays - 1)))
	window, err := kernel.NewDateRange(seriesStart, now)
	if err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx).Table("orders").Select(
		"orders.date, orders.status, orders.total_paid, orders.profit, " +
			"orders.commission_amount, orders.courier_cost_expense",
	)
	tx = applyPeriod(applyScope(tx, scope), &window)

	rows, err := tx.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	series := make([]DailyStat, dailySeriesDays)
	for i := range series {
		series[i].Day = seriesStart.AddDate(0, 0, i)
	}

	for rows.Next() {
		var date time.Time
		var status string
		var f services.OrderFigures

		err = rows.Scan(&date, &status, &f.TotalPaid, &f.Profit,
			&f.CommissionAmount, &f.CourierCostExpense)
		if err != nil {
			return nil, err
		}
		if f.Status, err = order.StatusFromString(status); err != nil {
			return nil, err
		}

		i := int(kernel.StartOfDay(date).Sub(seriesStart).Hours() / 24)
		if i < 0 || i >= dailySeriesDays {
			continue
		}
		series[i].OrderCount++
		series[i].Amount = kernel.RoundMoney(series[i].Amount + h.moneyContribution(f, asPartner))
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return series, nil
}
