package queries

import (
	"context"

	"shipledger/internal/pkg/errs"

	"gorm.io/gorm"
)

const maxProductSuggestions = 10

// GetProductSuggestionsQueryHandler retrieves product name completions from
// the line items already on record.
type GetProductSuggestionsQueryHandler struct {
	db *gorm.DB
}

// NewGetProductSuggestionsQueryHandler creates a handler for product
// suggestion queries.
func NewGetProductSuggestionsQueryHandler(db *gorm.DB) GetProductSuggestionsQueryHandler {
	return GetProductSuggestionsQueryHandler{db: db}
}

// Handle executes the query. Names are matched case-insensitively by prefix
// and ranked by how often they were used; cost and price come from the most
// recent entry under each name.
func (h GetProductSuggestionsQueryHandler) Handle(
	ctx context.Context,
	query GetProductSuggestionsQuery,
) ([]ProductSuggestionView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if !query.Actor().CanMutateOrders() {
		return nil, errs.NewAuthorizationError("look up product suggestions")
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT li.name, li.cost, li.price
		FROM order_line_items li
		JOIN (
			SELECT name, MAX(id) AS last_id, COUNT(*) AS uses
			FROM order_line_items
			WHERE name ILIKE ?
			GROUP BY name
			ORDER BY uses DESC, name
			LIMIT ?
		) ranked ON ranked.last_id = li.id
		ORDER BY ranked.uses DESC, li.name
	`, query.Prefix()+"%", maxProductSuggestions).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	suggestions := make([]ProductSuggestionView, 0, maxProductSuggestions)
	for rows.Next() {
		var view ProductSuggestionView
		if err = rows.Scan(&view.Name, &view.Cost, &view.Price); err != nil {
			return nil, err
		}
		suggestions = append(suggestions, view)
	}
	return suggestions, rows.Err()
}
