package commands

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"shipledger/internal/core/domain/model/access"
	"shipledger/internal/pkg/errs"
)

// UpdateUserCommandHandler handles login account patches.
type UpdateUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewUpdateUserCommandHandler creates a handler for user updates.
func NewUpdateUserCommandHandler(uowFactory UserUoWFactory) UpdateUserCommandHandler {
	return UpdateUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the user patch command.
func (h *UpdateUserCommandHandler) Handle(ctx context.Context, cmd UpdateUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().CanManageUsers() {
		return errs.NewAuthorizationError("update user")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	aggregate, err := userRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	params := cmd.Params()
	if params.Password != nil {
		if *params.Password == "" {
			return errs.NewValidationError("password is required")
		}
		hash, hashErr := bcrypt.GenerateFromPassword([]byte(*params.Password), bcrypt.DefaultCost)
		if hashErr != nil {
			return hashErr
		}
		if err = aggregate.ChangePasswordHash(string(hash)); err != nil {
			return err
		}
	}
	if params.Role != nil {
		if err = aggregate.ChangeRole(*params.Role); err != nil {
			return err
		}
	}
	if params.VisibleFields != nil {
		aggregate.ChangeVisibleFields(access.NewFieldSet(*params.VisibleFields))
	}

	if err = userRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
