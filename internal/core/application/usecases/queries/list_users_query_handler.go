package queries

import (
	"context"

	"shipledger/internal/core/domain/model/kernel"
	"shipledger/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListUsersQueryHandler retrieves login account read models from the
// database.
type ListUsersQueryHandler struct {
	db *gorm.DB
}

// NewListUsersQueryHandler creates a handler for user listing queries.
func NewListUsersQueryHandler(db *gorm.DB) ListUsersQueryHandler {
	return ListUsersQueryHandler{db: db}
}

// Handle executes the query, sorted by username.
func (h ListUsersQueryHandler) Handle(ctx context.Context, query ListUsersQuery) ([]UserView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if !query.Actor().CanManageUsers() {
		return nil, errs.NewAuthorizationError("list users")
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, username, role, visible_fields, created_at
		FROM users
		ORDER BY username
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]UserView, 0)
	for rows.Next() {
		var view UserView
		var id uuid.UUID

		err = rows.Scan(&id, &view.Username, &view.Role, &view.VisibleFields, &view.CreatedAt)
		if err != nil {
			return nil, err
		}
		if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, rows.Err()
}
