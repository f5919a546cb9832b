package access

import (
	"fmt"

	"shipledger/internal/pkg/errs"
)

// Role is an actor's position in the single authoritative role hierarchy.
//
// The hierarchy, from lowest to highest:
//
//	VIEWER < STAFF < PARTNER < ADMIN < SUPER_ADMIN
type Role string

const (
	// RoleViewer is read-only; field visibility is additionally restricted
	// by the actor's FieldSet.
	RoleViewer Role = "VIEWER"

	// RoleStaff reads and writes only orders they personally entered.
	RoleStaff Role = "STAFF"

	// RolePartner reads and writes only orders linked to their own Partner
	// profile.
	RolePartner Role = "PARTNER"

	// RoleAdmin has full read/write and delete on orders, catalog, and
	// invoice resolution.
	RoleAdmin Role = "ADMIN"

	// RoleSuperAdmin additionally holds cross-cutting billing views and
	// internal-recipient invoice generation.
	RoleSuperAdmin Role = "SUPER_ADMIN"
)

func getRoleRanks() map[Role]int {
	return map[Role]int{
		RoleViewer:     1,
		RoleStaff:      2,
		RolePartner:    3,
		RoleAdmin:      4,
		RoleSuperAdmin: 5,
	}
}

// RoleFromString parses a role name from a token claim or persistence.
func RoleFromString(s string) (Role, error) {
	r := Role(s)
	if err := r.Validate(); err != nil {
		return "", err
	}
	return r, nil
}

// Validate checks the role against the fixed hierarchy.
func (r Role) Validate() error {
	if _, ok := getRoleRanks()[r]; !ok {
		return errs.NewValidationError(fmt.Sprintf("%q is not a valid role", string(r)))
	}
	return nil
}

// AtLeast reports whether the role ranks at or above other in the hierarchy.
// An unknown role never satisfies any threshold.
func (r Role) AtLeast(other Role) bool {
	ranks := getRoleRanks()
	mine, ok := ranks[r]
	if !ok {
		return false
	}
	return mine >= ranks[other]
}

// String returns the role name. Implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}
