package queries

import (
	"context"
	"time"

	"shipledger/internal/core/domain/model/access"
	"shipledger/internal/core/domain/model/billing"
	"shipledger/internal/core/domain/model/kernel"
	"shipledger/internal/core/domain/services"

	"gorm.io/gorm"
)

// GetPersonalBillingStatsQueryHandler computes a login's unbilled accrual:
// everything from the day after its last invoice through today, using the
// same formulas the admin billing screen applies.
type GetPersonalBillingStatsQueryHandler struct {
	db         *gorm.DB
	calculator services.BillingCalculator
}

// NewGetPersonalBillingStatsQueryHandler creates a handler for personal
// billing stats queries.
func NewGetPersonalBillingStatsQueryHandler(db *gorm.DB) GetPersonalBillingStatsQueryHandler {
	return GetPersonalBillingStatsQueryHandler{db: db, calculator: services.NewBillingCalculator()}
}

// Handle executes the query.
func (h GetPersonalBillingStatsQueryHandler) Handle(
	ctx context.Context,
	query GetPersonalBillingStatsQuery,
) (PersonalBillingStatsView, error) {
	if err := query.Validate(); err != nil {
		return PersonalBillingStatsView{}, err
	}

	subject, err := actorOwnSubject(query.Actor())
	if err != nil {
		return PersonalBillingStatsView{}, err
	}

	since, err := suggestedStartForSubject(ctx, h.db, subject)
	if err != nil {
		return PersonalBillingStatsView{}, err
	}

	now := time.Now()

	// Billed through today already means nothing has accrued yet.
	var figures []services.OrderFigures
	if !since.After(now) {
		period, rangeErr := kernel.NewDateRange(since, now)
		if rangeErr != nil {
			return PersonalBillingStatsView{}, rangeErr
		}
		if figures, err = loadFigures(ctx, h.db, access.ScopeForAll(), &period); err != nil {
			return PersonalBillingStatsView{}, err
		}
	}

	breakdown, err := h.calculator.ComputeAmount(subject, figures)
	if err != nil {
		return PersonalBillingStatsView{}, err
	}

	monthRange, err := monthToDate(now)
	if err != nil {
		return PersonalBillingStatsView{}, err
	}
	monthFigures, err := loadFigures(ctx, h.db, access.ScopeForAll(), &monthRange)
	if err != nil {
		return PersonalBillingStatsView{}, err
	}
	month, err := h.calculator.ComputeAmount(subject, monthFigures)
	if err != nil {
		return PersonalBillingStatsView{}, err
	}

	due, err := h.lifetimeDue(ctx, subject)
	if err != nil {
		return PersonalBillingStatsView{}, err
	}

	return PersonalBillingStatsView{
		Since:       since,
		Breakdown:   breakdown,
		Month:       month,
		LifetimeDue: due,
	}, nil
}

// monthToDate is the range from the first day of now's calendar month
// through now.
func monthToDate(now time.Time) (kernel.DateRange, error) {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return kernel.NewDateRange(first, now)
}

// lifetimeDue is the subject's all-time earnings minus the invoices already
// settled, so unpaid history stays visible regardless of filing gaps.
func (h GetPersonalBillingStatsQueryHandler) lifetimeDue(
	ctx context.Context,
	subject billing.Subject,
) (float64, error) {
	figures, err := loadFigures(ctx, h.db, access.ScopeForAll(), nil)
	if err != nil {
		return 0, err
	}

	lifetime, err := h.calculator.ComputeAmount(subject, figures)
	if err != nil {
		return 0, err
	}

	var paid float64
	err = applySubject(h.db.WithContext(ctx).Table("invoices"), subject).
		Where("invoices.status = ?", billing.InvoiceStatusPaid.String()).
		Select("COALESCE(SUM(invoices.amount), 0)").
		Scan(&paid).Error
	if err != nil {
		return 0, err
	}

	return kernel.RoundMoney(lifetime.Amount - paid), nil
}
