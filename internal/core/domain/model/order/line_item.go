package order

import (
	"shipledger/internal/pkg/errs"
)

// LineItem is one product within an order. Cost is the internal purchase
// cost (hidden from restricted viewers); Price is the customer-facing price.
// Line items are owned by their order and replaced wholesale on update.
type LineItem struct {
	name  string
	cost  float64
	price float64

	isConstructed bool
}

// NewLineItem creates a validated line item.
func NewLineItem(name string, cost, price float64) (LineItem, error) {
	if name == "" {
		return LineItem{}, errs.NewValidationError("product name is required")
	}
	if cost < 0 {
		return LineItem{}, errs.NewValidationError("product cost must not be negative")
	}
	if price < 0 {
		return LineItem{}, errs.NewValidationError("product price must not be negative")
	}

	return LineItem{name: name, cost: cost, price: price, isConstructed: true}, nil
}

// Validate reports whether the line item was created via NewLineItem.
func (li LineItem) Validate() error {
	if !li.isConstructed {
		return errs.NewValidationError("LineItem must be created via NewLineItem constructor")
	}
	return nil
}

// Name returns the product name.
func (li LineItem) Name() string {
	return li.name
}

// Cost returns the internal unit cost.
func (li LineItem) Cost() float64 {
	return li.cost
}

// Price returns the customer-facing unit price.
func (li LineItem) Price() float64 {
	return li.price
}
