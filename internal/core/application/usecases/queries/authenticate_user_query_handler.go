package queries

import (
	"context"
	"database/sql"
	"errors"

	"shipledger/internal/core/domain/model/kernel"
	"shipledger/internal/pkg/errs"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthenticateUserQueryHandler verifies credentials against the stored
// bcrypt hash. Unknown usernames and wrong passwords both come back as the
// same AuthorizationError; login must not reveal which half failed.
type AuthenticateUserQueryHandler struct {
	db *gorm.DB
}

// NewAuthenticateUserQueryHandler creates a handler for login queries.
func NewAuthenticateUserQueryHandler(db *gorm.DB) AuthenticateUserQueryHandler {
	return AuthenticateUserQueryHandler{db: db}
}

// Handle executes the query.
func (h AuthenticateUserQueryHandler) Handle(
	ctx context.Context,
	query AuthenticateUserQuery,
) (AuthenticatedUserView, error) {
	if err := query.Validate(); err != nil {
		return AuthenticatedUserView{}, err
	}

	var id uuid.UUID
	var passwordHash string
	var view AuthenticatedUserView

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, username, password_hash, role, visible_fields
		FROM users
		WHERE username = ?
	`, query.Username()).Row()

	err := row.Scan(&id, &view.Username, &passwordHash, &view.Role, &view.VisibleFields)
	if errors.Is(err, sql.ErrNoRows) {
		return AuthenticatedUserView{}, errs.NewAuthorizationError("login")
	}
	if err != nil {
		return AuthenticatedUserView{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(query.Password())) != nil {
		return AuthenticatedUserView{}, errs.NewAuthorizationError("login")
	}

	if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return AuthenticatedUserView{}, err
	}

	if view.PartnerID, err = h.linkedID(ctx, "partners", id); err != nil {
		return AuthenticatedUserView{}, err
	}
	if view.AgentID, err = h.linkedID(ctx, "sales_agents", id); err != nil {
		return AuthenticatedUserView{}, err
	}
	return view, nil
}

func (h AuthenticateUserQueryHandler) linkedID(
	ctx context.Context,
	table string,
	userID uuid.UUID,
) (*kernel.UUID, error) {
	var linked uuid.NullUUID
	err := h.db.WithContext(ctx).Table(table).
		Select("id").
		Where("user_id = ?", userID).
		Limit(1).
		Scan(&linked).Error
	if err != nil {
		return nil, err
	}
	return optionalUUID(linked)
}
