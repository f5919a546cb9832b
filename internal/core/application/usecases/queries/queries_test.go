package queries_test

import (
	"testing"
	"time"

	"shipledger/internal/core/application/usecases/queries"
	"shipledger/internal/core/domain/model/access"
	"shipledger/internal/core/domain/model/billing"
	"shipledger/internal/core/domain/model/kernel"
	"shipledger/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func queryActor(t *testing.T, role access.Role, partnerID, agentID *kernel.UUID) access.Actor {
	t.Helper()
	actor, err := access.NewActor(kernel.NewUUID(), "tester", role, access.UnrestrictedFieldSet(), partnerID, agentID)
	require.NoError(t, err)
	return actor
}

func TestNewListOrdersQuery(t *testing.T) {
	actor := queryActor(t, access.RoleAdmin, nil, nil)

	t.Run("constructs_with_optional_period", func(t *testing.T) {
		q, err := queries.NewListOrdersQuery(actor, "saree blue", nil)
		require.NoError(t, err)
		require.NoError(t, q.Validate())
		assert.Equal(t, "saree blue", q.Search())
		assert.Nil(t, q.Period())
	})

	t.Run("invalid_actor_rejected", func(t *testing.T) {
		_, err := queries.NewListOrdersQuery(access.Actor{}, "", nil)
		require.Error(t, err)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var q queries.ListOrdersQuery
		require.ErrorIs(t, q.Validate(), queries.ErrListOrdersQueryIsNotConstructed)
	})
}

func TestNewGetStatsQuery(t *testing.T) {
	actor := queryActor(t, access.RoleStaff, nil, nil)

	period, err := kernel.NewDateRange(time.Now().AddDate(0, -1, 0), time.Now())
	require.NoError(t, err)

	q, err := queries.NewGetStatsQuery(actor, &period)
	require.NoError(t, err)
	require.NoError(t, q.Validate())

	var zero queries.GetStatsQuery
	require.ErrorIs(t, zero.Validate(), queries.ErrGetStatsQueryIsNotConstructed)
}

func TestNewGetBillingAmountQuery(t *testing.T) {
	actor := queryActor(t, access.RoleAdmin, nil, nil)
	subject, err := billing.SubjectForRecipient(billing.RecipientOwners)
	require.NoError(t, err)

	period, err := kernel.NewDateRange(time.Now().AddDate(0, -1, 0), time.Now())
	require.NoError(t, err)

	t.Run("constructs", func(t *testing.T) {
		q, err := queries.NewGetBillingAmountQuery(actor, subject, period)
		require.NoError(t, err)
		require.NoError(t, q.Validate())
	})

	t.Run("unconstructed_subject_rejected", func(t *testing.T) {
		_, err := queries.NewGetBillingAmountQuery(actor, billing.Subject{}, period)
		require.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("unconstructed_period_rejected", func(t *testing.T) {
		_, err := queries.NewGetBillingAmountQuery(actor, subject, kernel.DateRange{})
		require.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestNewGetBillingHistoryQuery(t *testing.T) {
	partnerID := kernel.NewUUID()
	subject, err := billing.SubjectForPartner(partnerID)
	require.NoError(t, err)

	q, err := queries.NewGetBillingHistoryQuery(queryActor(t, access.RolePartner, &partnerID, nil), subject)
	require.NoError(t, err)
	require.NoError(t, q.Validate())
}

func TestNewListInvoicesQuery(t *testing.T) {
	q, err := queries.NewListInvoicesQuery(queryActor(t, access.RoleAdmin, nil, nil))
	require.NoError(t, err)
	require.NoError(t, q.Validate())

	var zero queries.ListInvoicesQuery
	require.ErrorIs(t, zero.Validate(), queries.ErrListInvoicesQueryIsNotConstructed)
}

func TestNewGetPersonalBillingStatsQuery(t *testing.T) {
	q, err := queries.NewGetPersonalBillingStatsQuery(queryActor(t, access.RoleStaff, nil, nil))
	require.NoError(t, err)
	require.NoError(t, q.Validate())
}

func TestNewGetProductSuggestionsQuery(t *testing.T) {
	q, err := queries.NewGetProductSuggestionsQuery(queryActor(t, access.RoleStaff, nil, nil), "sar")
	require.NoError(t, err)
	require.NoError(t, q.Validate())
	assert.Equal(t, "sar", q.Prefix())
}

func TestNewCatalogAndUserListingQueries(t *testing.T) {
	actor := queryActor(t, access.RoleAdmin, nil, nil)

	partners, err := queries.NewListPartnersQuery(actor)
	require.NoError(t, err)
	require.NoError(t, partners.Validate())

	agents, err := queries.NewListSalesAgentsQuery(actor)
	require.NoError(t, err)
	require.NoError(t, agents.Validate())

	users, err := queries.NewListUsersQuery(actor)
	require.NoError(t, err)
	require.NoError(t, users.Validate())
}
