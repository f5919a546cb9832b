package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shipledger/internal/core/application/usecases/queries"
	"shipledger/internal/core/domain/model/access"
	"shipledger/internal/core/domain/model/kernel"
	"shipledger/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testIdentity(t *testing.T) queries.AuthenticatedUserView {
	t.Helper()
	partnerID := kernel.NewUUID()
	return queries.AuthenticatedUserView{
		ID:            kernel.NewUUID(),
		Username:      "meera",
		Role:          access.RolePartner.String(),
		VisibleFields: "trackingId,customerName,status",
		PartnerID:     &partnerID,
	}
}

func probeRoute(s *Server) (*echo.Echo, *access.Actor) {
	e := echo.New()
	var seen access.Actor
	e.GET("/probe", func(ctx echo.Context) error {
		seen = currentActor(ctx)
		return ctx.NoContent(http.StatusOK)
	}, s.RequireActor)
	return e, &seen
}

func TestRequireActor_RoundTripsIdentity(t *testing.T) {
	s := NewServer([]byte("test-secret"), Handlers{})
	identity := testIdentity(t)

	token, err := s.issueToken(identity)
	require.NoError(t, err)

	e, seen := probeRoute(s)
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "meera", seen.Username())
	assert.Equal(t, access.RolePartner, seen.Role())
	require.NotNil(t, seen.PartnerID())
	assert.True(t, seen.PartnerID().IsEqual(*identity.PartnerID))
	assert.False(t, seen.VisibleFields().IsUnrestricted())
	assert.True(t, seen.VisibleFields().Allows("trackingId"))
	assert.False(t, seen.VisibleFields().Allows("profit"))
}

func TestRequireActor_RejectsMissingToken(t *testing.T) {
	s := NewServer([]byte("test-secret"), Handlers{})

	e, _ := probeRoute(s)
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireActor_RejectsForeignSignature(t *testing.T) {
	issuer := NewServer([]byte("other-secret"), Handlers{})
	s := NewServer([]byte("test-secret"), Handlers{})

	token, err := issuer.issueToken(testIdentity(t))
	require.NoError(t, err)

	e, _ := probeRoute(s)
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestWriteError_MapsDomainErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"validation", errs.NewValidationError("amount must be positive"), http.StatusBadRequest},
		{"authorization", errs.NewAuthorizationError("delete order"), http.StatusForbidden},
		{"not found", errs.NewNotFoundError("orderId", kernel.NewUUID()), http.StatusNotFound},
		{"conflict", errs.NewConflictError("trackingId", "TRK-1"), http.StatusConflict},
		{"unclassified", assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			ctx := e.NewContext(req, rec)

			require.NoError(t, writeError(ctx, tt.err))
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestProjectOrder_RestrictedFieldSet(t *testing.T) {
	view := queries.OrderView{
		ID:         kernel.NewUUID(),
		TrackingID: "TRK-100",
		Customer:   "Asha",
		Status:     "Pending",
		Profit:     120.5,
		TotalPaid:  400,
		Date:       time.Now(),
	}

	projected := projectOrder(view, access.NewFieldSet("trackingId,customerName,status"))

	assert.Equal(t, "TRK-100", projected["trackingId"])
	assert.Equal(t, "Asha", projected["customerName"])
	assert.Equal(t, "Pending", projected["status"])
	assert.Contains(t, projected, "id")
	assert.NotContains(t, projected, "profit")
	assert.NotContains(t, projected, "totalPaid")
	assert.NotContains(t, projected, "courierCostExpense")
}

func TestProjectOrder_UnrestrictedKeepsEverything(t *testing.T) {
	view := queries.OrderView{ID: kernel.NewUUID(), TrackingID: "TRK-100", Date: time.Now()}

	projected := projectOrder(view, access.UnrestrictedFieldSet())

	assert.Contains(t, projected, "profit")
	assert.Contains(t, projected, "commissionAmount")
	assert.Contains(t, projected, "courierCostExpense")
}
