package commands

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"shipledger/internal/core/domain/model/access"
	"shipledger/internal/core/domain/model/catalog"
	"shipledger/internal/core/domain/model/kernel"
	"shipledger/internal/core/domain/model/user"
	"shipledger/internal/pkg/errs"
)

// CreateUserCommandHandler handles login account registration. Creating a
// PARTNER account also provisions a linked Partner profile named after the
// login, so the new user's scope resolves immediately; a failure to
// provision the profile is logged, not fatal.
type CreateUserCommandHandler struct {
	uowFactory UserUoWFactory
	logger     *slog.Logger
}

// NewCreateUserCommandHandler creates a handler for user registration.
func NewCreateUserCommandHandler(uowFactory UserUoWFactory, logger *slog.Logger) CreateUserCommandHandler {
	return CreateUserCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle processes the user registration command. Usernames are unique; a
// duplicate surfaces as a ConflictError.
func (h *CreateUserCommandHandler) Handle(ctx context.Context, cmd CreateUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().CanManageUsers() {
		return errs.NewAuthorizationError("create user")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password()), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	aggregate, err := user.NewUser(
		cmd.UserID(),
		cmd.Username(),
		string(hash),
		cmd.Role(),
		access.NewFieldSet(cmd.VisibleFields()),
		time.Now(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.UserRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if cmd.Role() == access.RolePartner {
		h.provisionPartnerProfile(ctx, cmd)
	}
	return nil
}

// provisionPartnerProfile creates the Partner record backing a new PARTNER
// login. It runs in its own transaction after the account commit so a
// profile failure (duplicate partner name, usually) never loses the
// account.
func (h *CreateUserCommandHandler) provisionPartnerProfile(ctx context.Context, cmd CreateUserCommand) {
	userID := cmd.UserID()
	profile, err := catalog.NewPartner(kernel.NewUUID(), cmd.Username(), 0, &userID)
	if err != nil {
		h.logger.Warn("partner profile not provisioned", "username", cmd.Username(), "error", err)
		return
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		h.logger.Warn("partner profile not provisioned", "username", cmd.Username(), "error", err)
		return
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.PartnerRepository().Add(ctx, profile); err != nil {
		h.logger.Warn("partner profile not provisioned", "username", cmd.Username(), "error", err)
		return
	}
	if err = uow.Commit(ctx); err != nil {
		h.logger.Warn("partner profile not provisioned", "username", cmd.Username(), "error", err)
	}
}
