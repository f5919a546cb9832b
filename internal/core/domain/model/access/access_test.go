package access_test

import (
	"testing"
	"time"

	"shipledger/internal/core/domain/model/access"
	"shipledger/internal/core/domain/model/kernel"
	"shipledger/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildActor(t *testing.T, role access.Role, partnerID, agentID *kernel.UUID) access.Actor {
	t.Helper()
	actor, err := access.NewActor(kernel.NewUUID(), "tester", role, access.UnrestrictedFieldSet(), partnerID, agentID)
	require.NoError(t, err)
	return actor
}

func buildScopedOrder(t *testing.T, partnerID *kernel.UUID, enteredByID kernel.UUID) *order.Order {
	t.Helper()
	items := []order.LineItem{}
	item, err := order.NewLineItem("Saree", 200, 350)
	require.NoError(t, err)
	items = append(items, item)

	o, err := order.NewOrder(
		kernel.NewUUID(),
		"AWB123456",
		"17",
		time.Now(),
		order.Customer{Name: "Asha", Phone: "9999999999"},
		items,
		order.Costs{},
		nil,
		partnerID,
		enteredByID,
		order.StatusPending,
		order.Financials{TotalPaid: 350, Profit: 150},
	)
	require.NoError(t, err)
	return o
}

func TestRoleAtLeast(t *testing.T) {
	assert.True(t, access.RoleSuperAdmin.AtLeast(access.RoleAdmin))
	assert.True(t, access.RoleAdmin.AtLeast(access.RoleAdmin))
	assert.False(t, access.RoleStaff.AtLeast(access.RoleAdmin))
	assert.False(t, access.RoleViewer.AtLeast(access.RoleStaff))
	assert.False(t, access.Role("ROOT").AtLeast(access.RoleViewer))
}

func TestRoleFromString(t *testing.T) {
	r, err := access.RoleFromString("PARTNER")
	require.NoError(t, err)
	assert.Equal(t, access.RolePartner, r)

	_, err = access.RoleFromString("partner")
	require.Error(t, err)
}

func TestFieldSet(t *testing.T) {
	t.Run("comma_list", func(t *testing.T) {
		fs := access.NewFieldSet("trackingId, customerName ,phone")

		assert.False(t, fs.IsUnrestricted())
		assert.True(t, fs.Allows("trackingId"))
		assert.True(t, fs.Allows("TRACKINGID"))
		assert.True(t, fs.Allows("phone"))
		assert.False(t, fs.Allows("cost"))
	})

	t.Run("wildcard", func(t *testing.T) {
		fs := access.NewFieldSet("*")

		assert.True(t, fs.IsUnrestricted())
		assert.True(t, fs.Allows("anything"))
	})

	t.Run("empty_allows_nothing", func(t *testing.T) {
		fs := access.NewFieldSet("")

		assert.False(t, fs.IsUnrestricted())
		assert.False(t, fs.Allows("trackingId"))
	})
}

func TestActor_OrderScope(t *testing.T) {
	t.Run("admin_sees_all", func(t *testing.T) {
		actor := buildActor(t, access.RoleAdmin, nil, nil)
		assert.Equal(t, access.ScopeAll, actor.OrderScope().Kind())
	})

	t.Run("viewer_sees_all_rows", func(t *testing.T) {
		// Row visibility is unrestricted; field projection narrows columns.
		actor := buildActor(t, access.RoleViewer, nil, nil)
		assert.Equal(t, access.ScopeAll, actor.OrderScope().Kind())
	})

	t.Run("partner_scoped_to_own_profile", func(t *testing.T) {
		ownID := kernel.NewUUID()
		otherID := kernel.NewUUID()
		actor := buildActor(t, access.RolePartner, &ownID, nil)

		scope := actor.OrderScope()
		require.Equal(t, access.ScopeByPartner, scope.Kind())
		assert.True(t, scope.Matches(buildScopedOrder(t, &ownID, kernel.NewUUID())))
		assert.False(t, scope.Matches(buildScopedOrder(t, &otherID, kernel.NewUUID())))
		assert.False(t, scope.Matches(buildScopedOrder(t, nil, kernel.NewUUID())))
	})

	t.Run("partner_without_profile_sees_nothing", func(t *testing.T) {
		actor := buildActor(t, access.RolePartner, nil, nil)

		scope := actor.OrderScope()
		require.Equal(t, access.ScopeNone, scope.Kind())
		assert.False(t, scope.Matches(buildScopedOrder(t, nil, kernel.NewUUID())))
	})

	t.Run("staff_scoped_to_own_entries", func(t *testing.T) {
		actor := buildActor(t, access.RoleStaff, nil, nil)

		scope := actor.OrderScope()
		require.Equal(t, access.ScopeByCreator, scope.Kind())
		assert.True(t, scope.Matches(buildScopedOrder(t, nil, actor.UserID())))
		assert.False(t, scope.Matches(buildScopedOrder(t, nil, kernel.NewUUID())))
	})
}

func TestActor_Permissions(t *testing.T) {
	superAdmin := buildActor(t, access.RoleSuperAdmin, nil, nil)
	admin := buildActor(t, access.RoleAdmin, nil, nil)
	staff := buildActor(t, access.RoleStaff, nil, nil)
	viewer := buildActor(t, access.RoleViewer, nil, nil)

	assert.True(t, staff.CanMutateOrders())
	assert.False(t, viewer.CanMutateOrders())

	assert.True(t, admin.CanDeleteOrders())
	assert.False(t, staff.CanDeleteOrders())

	assert.True(t, superAdmin.CanGenerateInternalInvoices())
	assert.False(t, admin.CanGenerateInternalInvoices())

	assert.True(t, admin.CanResolveInvoices())
	assert.False(t, staff.CanResolveInvoices())
}

func TestActor_ResolveOrderLinkage(t *testing.T) {
	t.Run("partner_link_force_set", func(t *testing.T) {
		ownID := kernel.NewUUID()
		foreignID := kernel.NewUUID()
		actor := buildActor(t, access.RolePartner, &ownID, nil)

		_, partnerID := actor.ResolveOrderLinkage(nil, &foreignID)

		require.NotNil(t, partnerID)
		assert.True(t, partnerID.IsEqual(ownID))
	})

	t.Run("staff_defaults_own_agent", func(t *testing.T) {
		ownAgent := kernel.NewUUID()
		actor := buildActor(t, access.RoleStaff, nil, &ownAgent)

		agentID, _ := actor.ResolveOrderLinkage(nil, nil)

		require.NotNil(t, agentID)
		assert.True(t, agentID.IsEqual(ownAgent))
	})

	t.Run("staff_explicit_agent_kept", func(t *testing.T) {
		ownAgent := kernel.NewUUID()
		chosenAgent := kernel.NewUUID()
		actor := buildActor(t, access.RoleStaff, nil, &ownAgent)

		agentID, _ := actor.ResolveOrderLinkage(&chosenAgent, nil)

		require.NotNil(t, agentID)
		assert.True(t, agentID.IsEqual(chosenAgent))
	})

	t.Run("admin_passthrough", func(t *testing.T) {
		agent := kernel.NewUUID()
		partner := kernel.NewUUID()
		actor := buildActor(t, access.RoleAdmin, nil, nil)

		agentID, partnerID := actor.ResolveOrderLinkage(&agent, &partner)

		assert.Equal(t, &agent, agentID)
		assert.Equal(t, &partner, partnerID)
	})
}
