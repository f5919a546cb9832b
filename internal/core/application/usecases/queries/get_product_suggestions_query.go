package queries

import (
	"errors"

	"shipledger/internal/core/domain/model/access"
	"shipledger/internal/pkg/guard"
)

var ErrGetProductSuggestionsQueryIsNotConstructed = errors.New(
	"GetProductSuggestionsQuery must be created via NewGetProductSuggestionsQuery constructor",
)

// GetProductSuggestionsQuery returns previously entered product names
// matching a prefix, most frequent first. A data-entry aid for the order
// form, so line items converge on consistent spellings.
type GetProductSuggestionsQuery struct {
	actor  access.Actor
	prefix string

	guard guard.ConstructorGuard
}

// NewGetProductSuggestionsQuery creates a product suggestion query.
func NewGetProductSuggestionsQuery(actor access.Actor, prefix string) (GetProductSuggestionsQuery, error) {
	q := GetProductSuggestionsQuery{guard: guard.NewConstructorGuard()}

	if err := actor.Validate(); err != nil {
		return GetProductSuggestionsQuery{}, err
	}

	q.actor = actor
	q.prefix = prefix
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProductSuggestionsQuery) Validate() error {
	return q.guard.Validate(ErrGetProductSuggestionsQueryIsNotConstructed)
}

// Actor returns the acting identity.
func (q GetProductSuggestionsQuery) Actor() access.Actor { return q.actor }

// Prefix returns the typed prefix being completed.
func (q GetProductSuggestionsQuery) Prefix() string { return q.prefix }

// ProductSuggestionView is one autocomplete entry: the product name plus the
// cost and price it was last entered with, so the form can prefill both.
type ProductSuggestionView struct {
	Name  string
	Cost  float64
	Price float64
}
