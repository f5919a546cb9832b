package ports

import (
	"context"

	"shipledger/internal/core/domain/model/kernel"
	"shipledger/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for login accounts.
type UserRepository interface {
	// Add persists a new user. A duplicate username surfaces as a
	// ConflictError.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists changes to an existing user.
	Update(ctx context.Context, aggregate *user.User) error

	// Delete removes a user by its unique identifier.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a user by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByUsername retrieves a user by login name, or a NotFoundError.
	GetByUsername(ctx context.Context, username string) (*user.User, error)

	// GetAll retrieves all users ordered by username.
	GetAll(ctx context.Context) ([]*user.User, error)
}
