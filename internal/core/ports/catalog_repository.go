package ports

import (
	"context"

	"shipledger/internal/core/domain/model/catalog"
	"shipledger/internal/core/domain/model/kernel"
)

// PartnerRepository defines the persistence contract for shipping partners.
type PartnerRepository interface {
	// Add persists a new partner. A duplicate name surfaces as a
	// ConflictError.
	Add(ctx context.Context, aggregate *catalog.Partner) error

	// Update persists changes to an existing partner.
	Update(ctx context.Context, aggregate *catalog.Partner) error

	// Delete removes a partner by its unique identifier.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a partner by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*catalog.Partner, error)

	// GetByUserID retrieves the partner linked to the login identity, or a
	// NotFoundError when the user has no partner profile.
	GetByUserID(ctx context.Context, userID kernel.UUID) (*catalog.Partner, error)

	// GetAll retrieves all partners ordered by name.
	GetAll(ctx context.Context) ([]*catalog.Partner, error)
}

// SalesAgentRepository defines the persistence contract for sales agents.
type SalesAgentRepository interface {
	// Add persists a new sales agent.
	Add(ctx context.Context, aggregate *catalog.SalesAgent) error

	// Update persists changes to an existing sales agent.
	Update(ctx context.Context, aggregate *catalog.SalesAgent) error

	// Delete removes a sales agent by its unique identifier.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a sales agent by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*catalog.SalesAgent, error)

	// GetByUserID retrieves the sales agent linked to the login identity,
	// or a NotFoundError when the user has no agent profile.
	GetByUserID(ctx context.Context, userID kernel.UUID) (*catalog.SalesAgent, error)

	// GetAll retrieves all sales agents ordered by name.
	GetAll(ctx context.Context) ([]*catalog.SalesAgent, error)
}
