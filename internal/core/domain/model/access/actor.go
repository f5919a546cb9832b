package access

import (
	"errors"

	"shipledger/internal/core/domain/model/kernel"
)

// ErrActorIsNotConstructed is returned when an Actor instance was not
// created via NewActor.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor")

// Actor is the identity a request acts under. PartnerID and AgentID carry
// the actor's linked catalog profiles, resolved when the actor's token was
// issued; they stay nil for roles without a linkage.
type Actor struct {
	userID   kernel.UUID
	username string
	role     Role
	visible  FieldSet

	partnerID *kernel.UUID
	agentID   *kernel.UUID

	isConstructed bool
}

// NewActor creates an Actor. The visible FieldSet applies to VIEWER actors;
// pass UnrestrictedFieldSet for the rest.
func NewActor(userID kernel.UUID, username string, role Role, visible FieldSet, partnerID, agentID *kernel.UUID) (Actor, error) {
	if err := errors.Join(userID.Validate(), role.Validate()); err != nil {
		return Actor{}, err
	}
	if partnerID != nil {
		if err := partnerID.Validate(); err != nil {
			return Actor{}, err
		}
	}
	if agentID != nil {
		if err := agentID.Validate(); err != nil {
			return Actor{}, err
		}
	}

	return Actor{
		userID:        userID,
		username:      username,
		role:          role,
		visible:       visible,
		partnerID:     partnerID,
		agentID:       agentID,
		isConstructed: true,
	}, nil
}

// Validate ensures the Actor was created via NewActor.
func (a Actor) Validate() error {
	if !a.isConstructed {
		return ErrActorIsNotConstructed
	}
	return nil
}

// UserID returns the acting user's identifier.
func (a Actor) UserID() kernel.UUID { return a.userID }

// Username returns the acting user's login name.
func (a Actor) Username() string { return a.username }

// Role returns the actor's role.
func (a Actor) Role() Role { return a.role }

// VisibleFields returns the field projection applied to order reads.
func (a Actor) VisibleFields() FieldSet { return a.visible }

// PartnerID returns the linked Partner profile, or nil.
func (a Actor) PartnerID() *kernel.UUID { return a.partnerID }

// AgentID returns the linked SalesAgent profile, or nil.
func (a Actor) AgentID() *kernel.UUID { return a.agentID }

// OrderScope resolves the actor's order visibility predicate. A PARTNER or
// STAFF actor with no linked profile resolves to ScopeNone rather than an
// error.
func (a Actor) OrderScope() OrderScope {
	switch a.role {
	case RoleAdmin, RoleSuperAdmin, RoleViewer:
		return ScopeForAll()
	case RolePartner:
		if a.partnerID == nil {
			return ScopeForNone()
		}
		return ScopeForPartner(*a.partnerID)
	case RoleStaff:
		return ScopeForCreator(a.userID)
	default:
		return ScopeForNone()
	}
}

// CanMutateOrders reports whether the actor may create or update orders
// inside its scope. VIEWER is read-only.
func (a Actor) CanMutateOrders() bool {
	return a.role.AtLeast(RoleStaff)
}

// CanDeleteOrders reports whether the actor may delete orders.
func (a Actor) CanDeleteOrders() bool {
	return a.role.AtLeast(RoleAdmin)
}

// CanManageCatalog reports whether the actor may administer partners and
// sales agents.
func (a Actor) CanManageCatalog() bool {
	return a.role.AtLeast(RoleAdmin)
}

// CanManageUsers reports whether the actor may administer login accounts.
func (a Actor) CanManageUsers() bool {
	return a.role.AtLeast(RoleAdmin)
}

// CanResolveInvoices reports whether the actor may move any invoice to Paid
// or Rejected. Subjects settling their own invoice go through the dedicated
// accept-and-pay path instead.
func (a Actor) CanResolveInvoices() bool {
	return a.role.AtLeast(RoleAdmin)
}

// CanGenerateInternalInvoices reports whether the actor may generate
// business-share invoices for the internal recipients.
func (a Actor) CanGenerateInternalInvoices() bool {
	return a.role.AtLeast(RoleSuperAdmin)
}

// CanViewGlobalBilling reports whether the actor may run cross-cutting
// billing aggregations for arbitrary subjects.
func (a Actor) CanViewGlobalBilling() bool {
	return a.role.AtLeast(RoleAdmin)
}

// ResolveOrderLinkage applies the role-specific create rules to the
// client-requested agent and partner links. A PARTNER actor's partner link
// is force-set to their own profile regardless of client input; a STAFF
// actor with no explicit agent selection is auto-linked to their own
// SalesAgent profile so their commission accrues.
func (a Actor) ResolveOrderLinkage(requestedAgentID, requestedPartnerID *kernel.UUID) (agentID, partnerID *kernel.UUID) {
	agentID = requestedAgentID
	partnerID = requestedPartnerID

	switch a.role {
	case RolePartner:
		partnerID = a.partnerID
	case RoleStaff:
		if agentID == nil {
			agentID = a.agentID
		}
	}
	return agentID, partnerID
}
