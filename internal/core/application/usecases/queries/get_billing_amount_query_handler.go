package queries

import (
	"context"

	"shipledger/internal/core/domain/model/access"
	"shipledger/internal/core/domain/services"

	"gorm.io/gorm"
)

// GetBillingAmountQueryHandler computes accrued billing amounts from stored
// order figures. The allocation formulas live in services.BillingCalculator;
// this handler only loads the rows and checks who may ask.
type GetBillingAmountQueryHandler struct {
	db         *gorm.DB
	calculator services.BillingCalculator
}

// NewGetBillingAmountQueryHandler creates a handler for billing amount queries.
func NewGetBillingAmountQueryHandler(db *gorm.DB) GetBillingAmountQueryHandler {
	return GetBillingAmountQueryHandler{db: db, calculator: services.NewBillingCalculator()}
}

// Handle executes the query. The full range is loaded unscoped; linkage
// filtering for partner and agent subjects happens inside the calculator.
func (h GetBillingAmountQueryHandler) Handle(
	ctx context.Context,
	query GetBillingAmountQuery,
) (services.BillingBreakdown, error) {
	if err := query.Validate(); err != nil {
		return services.BillingBreakdown{}, err
	}
	if err := authorizeSubjectAccess(query.Actor(), query.Subject()); err != nil {
		return services.BillingBreakdown{}, err
	}

	period := query.Period()
	figures, err := loadFigures(ctx, h.db, access.ScopeForAll(), &period)
	if err != nil {
		return services.BillingBreakdown{}, err
	}

	return h.calculator.ComputeAmount(query.Subject(), figures)
}
