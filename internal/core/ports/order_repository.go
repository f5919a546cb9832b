package ports

import (
	"context"

	"shipledger/internal/core/domain/model/access"
	"shipledger/internal/core/domain/model/kernel"
	"shipledger/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage. A duplicate tracking
	// code surfaces as a ConflictError.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Delete removes an order by its unique identifier.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns a NotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllInScope retrieves all orders matching the visibility scope,
	// newest first.
	GetAllInScope(ctx context.Context, scope access.OrderScope) ([]*order.Order, error)

	// CountForPartner returns how many orders reference the partner.
	CountForPartner(ctx context.Context, partnerID kernel.UUID) (int, error)

	// GetMaxSlipNo returns the highest numeric slip number issued so far,
	// 0 when the ledger is empty.
	GetMaxSlipNo(ctx context.Context) (int, error)
}
