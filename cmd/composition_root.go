package cmd

import (
	"log/slog"
	"os"

	httpin "shipledger/internal/adapters/in/http"
	"shipledger/internal/adapters/out/postgres"
	"shipledger/internal/core/application/usecases/commands"
	"shipledger/internal/core/application/usecases/queries"
	"shipledger/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) invoiceUoWFactory() commands.InvoiceUoWFactory {
	return FuncInvoiceUoWFactory(func() commands.InvoiceUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) catalogUoWFactory() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) userUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGenerateInvoiceCommandHandler() commands.GenerateInvoiceCommandHandler {
	return commands.NewGenerateInvoiceCommandHandler(c.invoiceUoWFactory())
}

func (c *CompositionRoot) CreateSelfFileInvoiceCommandHandler() commands.SelfFileInvoiceCommandHandler {
	return commands.NewSelfFileInvoiceCommandHandler(c.invoiceUoWFactory())
}

func (c *CompositionRoot) CreateAcceptAndPayInvoiceCommandHandler() commands.AcceptAndPayInvoiceCommandHandler {
	return commands.NewAcceptAndPayInvoiceCommandHandler(c.invoiceUoWFactory())
}

func (c *CompositionRoot) CreateSetInvoiceStatusCommandHandler() commands.SetInvoiceStatusCommandHandler {
	return commands.NewSetInvoiceStatusCommandHandler(c.invoiceUoWFactory())
}

func (c *CompositionRoot) CreateCreatePartnerCommandHandler() commands.CreatePartnerCommandHandler {
	return commands.NewCreatePartnerCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateUpdatePartnerCommandHandler() commands.UpdatePartnerCommandHandler {
	return commands.NewUpdatePartnerCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateDeletePartnerCommandHandler() commands.DeletePartnerCommandHandler {
	return commands.NewDeletePartnerCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateCreateSalesAgentCommandHandler() commands.CreateSalesAgentCommandHandler {
	return commands.NewCreateSalesAgentCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateUpdateSalesAgentCommandHandler() commands.UpdateSalesAgentCommandHandler {
	return commands.NewUpdateSalesAgentCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateDeleteSalesAgentCommandHandler() commands.DeleteSalesAgentCommandHandler {
	return commands.NewDeleteSalesAgentCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateCreateUserCommandHandler() commands.CreateUserCommandHandler {
	return commands.NewCreateUserCommandHandler(c.userUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateUpdateUserCommandHandler() commands.UpdateUserCommandHandler {
	return commands.NewUpdateUserCommandHandler(c.userUoWFactory())
}

func (c *CompositionRoot) CreateDeleteUserCommandHandler() commands.DeleteUserCommandHandler {
	return commands.NewDeleteUserCommandHandler(c.userUoWFactory())
}

func (c *CompositionRoot) CreateAuthenticateUserQueryHandler() queries.AuthenticateUserQueryHandler {
	return queries.NewAuthenticateUserQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStatsQueryHandler() queries.GetStatsQueryHandler {
	return queries.NewGetStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBillingAmountQueryHandler() queries.GetBillingAmountQueryHandler {
	return queries.NewGetBillingAmountQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBillingHistoryQueryHandler() queries.GetBillingHistoryQueryHandler {
	return queries.NewGetBillingHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListInvoicesQueryHandler() queries.ListInvoicesQueryHandler {
	return queries.NewListInvoicesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPersonalBillingStatsQueryHandler() queries.GetPersonalBillingStatsQueryHandler {
	return queries.NewGetPersonalBillingStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductSuggestionsQueryHandler() queries.GetProductSuggestionsQueryHandler {
	return queries.NewGetProductSuggestionsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListPartnersQueryHandler() queries.ListPartnersQueryHandler {
	return queries.NewListPartnersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListSalesAgentsQueryHandler() queries.ListSalesAgentsQueryHandler {
	return queries.NewListSalesAgentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListUsersQueryHandler() queries.ListUsersQueryHandler {
	return queries.NewListUsersQueryHandler(c.gormDB)
}

// CreateHTTPServer assembles the full handler set behind the JSON API.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer([]byte(c.config.JWTSecret), httpin.Handlers{
		CreateOrder:         c.CreateCreateOrderCommandHandler(),
		UpdateOrder:         c.CreateUpdateOrderCommandHandler(),
		DeleteOrder:         c.CreateDeleteOrderCommandHandler(),
		GenerateInvoice:     c.CreateGenerateInvoiceCommandHandler(),
		SelfFileInvoice:     c.CreateSelfFileInvoiceCommandHandler(),
		AcceptAndPayInvoice: c.CreateAcceptAndPayInvoiceCommandHandler(),
		SetInvoiceStatus:    c.CreateSetInvoiceStatusCommandHandler(),
		CreatePartner:       c.CreateCreatePartnerCommandHandler(),
		UpdatePartner:       c.CreateUpdatePartnerCommandHandler(),
		DeletePartner:       c.CreateDeletePartnerCommandHandler(),
		CreateSalesAgent:    c.CreateCreateSalesAgentCommandHandler(),
		UpdateSalesAgent:    c.CreateUpdateSalesAgentCommandHandler(),
		DeleteSalesAgent:    c.CreateDeleteSalesAgentCommandHandler(),
		CreateUser:          c.CreateCreateUserCommandHandler(),
		UpdateUser:          c.CreateUpdateUserCommandHandler(),
		DeleteUser:          c.CreateDeleteUserCommandHandler(),

		Authenticate:            c.CreateAuthenticateUserQueryHandler(),
		ListOrders:              c.CreateListOrdersQueryHandler(),
		GetStats:                c.CreateGetStatsQueryHandler(),
		GetBillingAmount:        c.CreateGetBillingAmountQueryHandler(),
		GetBillingHistory:       c.CreateGetBillingHistoryQueryHandler(),
		ListInvoices:            c.CreateListInvoicesQueryHandler(),
		GetPersonalBillingStats: c.CreateGetPersonalBillingStatsQueryHandler(),
		GetProductSuggestions:   c.CreateGetProductSuggestionsQueryHandler(),
		ListPartners:            c.CreateListPartnersQueryHandler(),
		ListSalesAgents:         c.CreateListSalesAgentsQueryHandler(),
		ListUsers:               c.CreateListUsersQueryHandler(),
	})
}

// CreateJobManager wires the scheduled background jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.invoiceUoWFactory(), c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncInvoiceUoWFactory func() commands.InvoiceUoW

func (f FuncInvoiceUoWFactory) Create() commands.InvoiceUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}
