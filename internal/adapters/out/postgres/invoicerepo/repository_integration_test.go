package invoicerepo_test

import (
	"context"
	"testing"
	"time"

	"shipledger/internal/adapters/out/postgres/invoicerepo"
	"shipledger/internal/core/domain/model/billing"
	"shipledger/internal/core/domain/model/kernel"
	"shipledger/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker
// interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// InvoiceRepositoryIntegrationTestSuite verifies invoice persistence and the
// compare-and-set resolution against a real PostgreSQL container.
type InvoiceRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *invoicerepo.GormInvoiceRepository
	tracker    *MockAggregateTracker
}

func (suite *InvoiceRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&invoicerepo.InvoiceDTO{}))
}

func (suite *InvoiceRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE invoices").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = invoicerepo.NewGormInvoiceRepository(suite.db, suite.tracker)
}

func (suite *InvoiceRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *InvoiceRepositoryIntegrationTestSuite) buildPartnerInvoice(partnerID kernel.UUID, createdAt time.Time) *billing.Invoice {
	subject, err := billing.SubjectForPartner(partnerID)
	suite.Require().NoError(err)

	period, err := kernel.NewDateRange(createdAt.AddDate(0, -1, 0), createdAt)
	suite.Require().NoError(err)

	inv, err := billing.NewInvoiceForRange(kernel.NewUUID(), subject, 1200.50, period, createdAt)
	suite.Require().NoError(err)
	return inv
}

func (suite *InvoiceRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	partnerID := kernel.NewUUID()
	inv := suite.buildPartnerInvoice(partnerID, time.Now())

	suite.Require().NoError(suite.repository.Add(ctx, inv))

	got, err := suite.repository.Get(ctx, inv.ID())
	suite.Require().NoError(err)
	suite.Equal(billing.SubjectPartner, got.Subject().Kind())
	suite.True(got.Subject().EntityID().IsEqual(partnerID))
	suite.InDelta(1200.50, got.Amount(), 1e-9)
	suite.Equal(billing.InvoiceStatusPending, got.Status())
	suite.Require().NotNil(got.EndDate())
}

func (suite *InvoiceRepositoryIntegrationTestSuite) TestGetAllForSubject_FiltersOthers() {
	ctx := context.Background()
	partnerID := kernel.NewUUID()

	suite.Require().NoError(suite.repository.Add(ctx, suite.buildPartnerInvoice(partnerID, time.Now())))
	suite.Require().NoError(suite.repository.Add(ctx, suite.buildPartnerInvoice(kernel.NewUUID(), time.Now())))

	subject, err := billing.SubjectForPartner(partnerID)
	suite.Require().NoError(err)

	got, err := suite.repository.GetAllForSubject(ctx, subject)
	suite.Require().NoError(err)
	suite.Require().Len(got, 1)
	suite.True(got[0].Subject().EntityID().IsEqual(partnerID))
}

func (suite *InvoiceRepositoryIntegrationTestSuite) TestGetLastEndDateForSubject() {
	ctx := context.Background()
	partnerID := kernel.NewUUID()
	subject, err := billing.SubjectForPartner(partnerID)
	suite.Require().NoError(err)

	empty, err := suite.repository.GetLastEndDateForSubject(ctx, subject)
	suite.Require().NoError(err)
	suite.Nil(empty)

	now := time.Now()
	suite.Require().NoError(suite.repository.Add(ctx, suite.buildPartnerInvoice(partnerID, now)))

	lastEnd, err := suite.repository.GetLastEndDateForSubject(ctx, subject)
	suite.Require().NoError(err)
	suite.Require().NotNil(lastEnd)
	suite.Equal(kernel.EndOfDay(now).Unix(), lastEnd.Unix())
}

func (suite *InvoiceRepositoryIntegrationTestSuite) TestSetStatusIfPending_FirstResolutionWins() {
	ctx := context.Background()
	inv := suite.buildPartnerInvoice(kernel.NewUUID(), time.Now())
	suite.Require().NoError(suite.repository.Add(ctx, inv))

	err := suite.repository.SetStatusIfPending(ctx, inv.ID(), billing.InvoiceStatusPaid, billing.PaymentModeUPI)
	suite.Require().NoError(err)

	// A racing rejection loses with a conflict naming the winning state.
	err = suite.repository.SetStatusIfPending(ctx, inv.ID(), billing.InvoiceStatusRejected, billing.PaymentMode(""))
	suite.Require().ErrorIs(err, errs.ErrConflict)

	got, err := suite.repository.Get(ctx, inv.ID())
	suite.Require().NoError(err)
	suite.Equal(billing.InvoiceStatusPaid, got.Status())
	suite.Equal(billing.PaymentModeUPI, got.PaymentMode())
}

func (suite *InvoiceRepositoryIntegrationTestSuite) TestSetStatusIfPending_MissingInvoice() {
	ctx := context.Background()

	err := suite.repository.SetStatusIfPending(ctx, kernel.NewUUID(), billing.InvoiceStatusRejected, billing.PaymentMode(""))
	suite.Require().ErrorIs(err, errs.ErrNotFound)
}

func (suite *InvoiceRepositoryIntegrationTestSuite) TestGetAllPendingOlderThan() {
	ctx := context.Background()

	stale := suite.buildPartnerInvoice(kernel.NewUUID(), time.Now().AddDate(0, 0, -5))
	fresh := suite.buildPartnerInvoice(kernel.NewUUID(), time.Now())
	suite.Require().NoError(suite.repository.Add(ctx, stale))
	suite.Require().NoError(suite.repository.Add(ctx, fresh))

	got, err := suite.repository.GetAllPendingOlderThan(ctx, time.Now().AddDate(0, 0, -3))
	suite.Require().NoError(err)
	suite.Require().Len(got, 1)
	suite.True(got[0].ID().IsEqual(stale.ID()))
}

func TestInvoiceRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(InvoiceRepositoryIntegrationTestSuite))
}
