// Package user provides the login account aggregate.
package user

import (
	"errors"
	"time"

	"shipledger/internal/core/domain/model/access"
	"shipledger/internal/core/domain/model/kernel"
	"shipledger/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// via NewUser or RestoreUser.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")

// User is a login account. Its role and visible-field allow-list feed the
// access.Actor built for each authenticated request; linkage to a Partner
// or SalesAgent profile lives on the catalog side.
type User struct {
	id            kernel.UUID
	username      string
	passwordHash  string
	role          access.Role
	visibleFields access.FieldSet
	createdAt     time.Time

	isConstructed bool
}

// NewUser creates a User. The password hash must already be computed by the
// caller; the domain never sees plaintext credentials.
func NewUser(id kernel.UUID, username, passwordHash string, role access.Role, visibleFields access.FieldSet, createdAt time.Time) (*User, error) {
	u := &User{isConstructed: true}

	if err := errors.Join(
		u.setID(id),
		u.setUsername(username),
		u.setPasswordHash(passwordHash),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	u.visibleFields = visibleFields
	u.createdAt = createdAt
	return u, nil
}

// RestoreUser reconstructs a User from persistence.
func RestoreUser(id kernel.UUID, username, passwordHash string, role access.Role, visibleFields access.FieldSet, createdAt time.Time) (*User, error) {
	return NewUser(id, username, passwordHash, role, visibleFields, createdAt)
}

// Validate ensures the User was created via a factory method.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID { return u.id }

// Username returns the login name.
func (u *User) Username() string { return u.username }

// PasswordHash returns the stored credential hash.
func (u *User) PasswordHash() string { return u.passwordHash }

// Role returns the user's role.
func (u *User) Role() access.Role { return u.role }

// VisibleFields returns the per-user field allow-list.
func (u *User) VisibleFields() access.FieldSet { return u.visibleFields }

// CreatedAt returns the creation timestamp.
func (u *User) CreatedAt() time.Time { return u.createdAt }

// ChangeRole updates the user's role.
func (u *User) ChangeRole(role access.Role) error {
	return u.setRole(role)
}

// ChangeVisibleFields replaces the field allow-list.
func (u *User) ChangeVisibleFields(fields access.FieldSet) {
	u.visibleFields = fields
}

// ChangePasswordHash replaces the stored credential hash.
func (u *User) ChangePasswordHash(passwordHash string) error {
	return u.setPasswordHash(passwordHash)
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setUsername(username string) error {
	if username == "" {
		return errs.NewValidationError("username is required")
	}
	u.username = username
	return nil
}

func (u *User) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValidationError("password hash is required")
	}
	u.passwordHash = passwordHash
	return nil
}

func (u *User) setRole(role access.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
