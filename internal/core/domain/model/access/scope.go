package access

import (
	"shipledger/internal/core/domain/model/kernel"
	"shipledger/internal/core/domain/model/order"
)

// ScopeKind discriminates the order visibility scopes.
type ScopeKind int

const (
	// ScopeNone matches no order. Resolved for STAFF or PARTNER actors with
	// no linked profile, so a missing linkage fails safe instead of leaking.
	ScopeNone ScopeKind = iota

	// ScopeAll matches every order.
	ScopeAll

	// ScopeByPartner matches orders linked to one partner.
	ScopeByPartner

	// ScopeByCreator matches orders entered by one user.
	ScopeByCreator
)

// OrderScope is the visibility predicate resolved from an actor's role and
// linked profile. It is consulted both when listing (as a query filter, via
// the Kind/PartnerID/CreatorID accessors) and when mutating a single record
// (via Matches, re-checking ownership before the write is applied).
type OrderScope struct {
	kind      ScopeKind
	partnerID kernel.UUID
	creatorID kernel.UUID
}

// ScopeForAll returns the unrestricted scope.
func ScopeForAll() OrderScope {
	return OrderScope{kind: ScopeAll}
}

// ScopeForNone returns the always-false scope.
func ScopeForNone() OrderScope {
	return OrderScope{kind: ScopeNone}
}

// ScopeForPartner returns the scope matching orders linked to the partner.
func ScopeForPartner(partnerID kernel.UUID) OrderScope {
	return OrderScope{kind: ScopeByPartner, partnerID: partnerID}
}

// ScopeForCreator returns the scope matching orders entered by the user.
func ScopeForCreator(creatorID kernel.UUID) OrderScope {
	return OrderScope{kind: ScopeByCreator, creatorID: creatorID}
}

// Kind returns the scope flavor.
func (s OrderScope) Kind() ScopeKind { return s.kind }

// PartnerID returns the scoping partner; meaningful only for ScopeByPartner.
func (s OrderScope) PartnerID() kernel.UUID { return s.partnerID }

// CreatorID returns the scoping creator; meaningful only for ScopeByCreator.
func (s OrderScope) CreatorID() kernel.UUID { return s.creatorID }

// Matches reports whether the order is inside the scope.
func (s OrderScope) Matches(o *order.Order) bool {
	if o == nil {
		return false
	}
	switch s.kind {
	case ScopeAll:
		return true
	case ScopeByPartner:
		return o.PartnerID() != nil && o.PartnerID().IsEqual(s.partnerID)
	case ScopeByCreator:
		return o.EnteredByID().IsEqual(s.creatorID)
	default:
		return false
	}
}
