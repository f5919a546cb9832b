package http

import (
	"net/http"

	"shipledger/internal/core/application/usecases/commands"
	"shipledger/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// Handlers bundles the command and query handlers the server dispatches to.
type Handlers struct {
	CreateOrder         commands.CreateOrderCommandHandler
	UpdateOrder         commands.UpdateOrderCommandHandler
	DeleteOrder         commands.DeleteOrderCommandHandler
	GenerateInvoice     commands.GenerateInvoiceCommandHandler
	SelfFileInvoice     commands.SelfFileInvoiceCommandHandler
	AcceptAndPayInvoice commands.AcceptAndPayInvoiceCommandHandler
	SetInvoiceStatus    commands.SetInvoiceStatusCommandHandler
	CreatePartner       commands.CreatePartnerCommandHandler
	UpdatePartner       commands.UpdatePartnerCommandHandler
	DeletePartner       commands.DeletePartnerCommandHandler
	CreateSalesAgent    commands.CreateSalesAgentCommandHandler
	UpdateSalesAgent    commands.UpdateSalesAgentCommandHandler
	DeleteSalesAgent    commands.DeleteSalesAgentCommandHandler
	CreateUser          commands.CreateUserCommandHandler
	UpdateUser          commands.UpdateUserCommandHandler
	DeleteUser          commands.DeleteUserCommandHandler

	Authenticate            queries.AuthenticateUserQueryHandler
	ListOrders              queries.ListOrdersQueryHandler
	GetStats                queries.GetStatsQueryHandler
	GetBillingAmount        queries.GetBillingAmountQueryHandler
	GetBillingHistory       queries.GetBillingHistoryQueryHandler
	ListInvoices            queries.ListInvoicesQueryHandler
	GetPersonalBillingStats queries.GetPersonalBillingStatsQueryHandler
	GetProductSuggestions   queries.GetProductSuggestionsQueryHandler
	ListPartners            queries.ListPartnersQueryHandler
	ListSalesAgents         queries.ListSalesAgentsQueryHandler
	ListUsers               queries.ListUsersQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	jwtSecret []byte

	createOrderHandler         commands.CreateOrderCommandHandler
	updateOrderHandler         commands.UpdateOrderCommandHandler
	deleteOrderHandler         commands.DeleteOrderCommandHandler
	generateInvoiceHandler     commands.GenerateInvoiceCommandHandler
	selfFileInvoiceHandler     commands.SelfFileInvoiceCommandHandler
	acceptAndPayInvoiceHandler commands.AcceptAndPayInvoiceCommandHandler
	setInvoiceStatusHandler    commands.SetInvoiceStatusCommandHandler
	createPartnerHandler       commands.CreatePartnerCommandHandler
	updatePartnerHandler       commands.UpdatePartnerCommandHandler
	deletePartnerHandler       commands.DeletePartnerCommandHandler
	createSalesAgentHandler    commands.CreateSalesAgentCommandHandler
	updateSalesAgentHandler    commands.UpdateSalesAgentCommandHandler
	deleteSalesAgentHandler    commands.DeleteSalesAgentCommandHandler
	createUserHandler          commands.CreateUserCommandHandler
	updateUserHandler          commands.UpdateUserCommandHandler
	deleteUserHandler          commands.DeleteUserCommandHandler

	authenticateHandler            queries.AuthenticateUserQueryHandler
	listOrdersHandler              queries.ListOrdersQueryHandler
	getStatsHandler                queries.GetStatsQueryHandler
	getBillingAmountHandler        queries.GetBillingAmountQueryHandler
	getBillingHistoryHandler       queries.GetBillingHistoryQueryHandler
	listInvoicesHandler            queries.ListInvoicesQueryHandler
	getPersonalBillingStatsHandler queries.GetPersonalBillingStatsQueryHandler
	getProductSuggestionsHandler   queries.GetProductSuggestionsQueryHandler
	listPartnersHandler            queries.ListPartnersQueryHandler
	listSalesAgentsHandler         queries.ListSalesAgentsQueryHandler
	listUsersHandler               queries.ListUsersQueryHandler
}

// NewServer creates a new HTTP server dispatching to the given handlers.
func NewServer(jwtSecret []byte, h Handlers) *Server {
	return &Server{
		jwtSecret: jwtSecret,

		createOrderHandler:         h.CreateOrder,
		updateOrderHandler:         h.UpdateOrder,
		deleteOrderHandler:         h.DeleteOrder,
		generateInvoiceHandler:     h.GenerateInvoice,
		selfFileInvoiceHandler:     h.SelfFileInvoice,
		acceptAndPayInvoiceHandler: h.AcceptAndPayInvoice,
		setInvoiceStatusHandler:    h.SetInvoiceStatus,
		createPartnerHandler:       h.CreatePartner,
		updatePartnerHandler:       h.UpdatePartner,
		deletePartnerHandler:       h.DeletePartner,
		createSalesAgentHandler:    h.CreateSalesAgent,
		updateSalesAgentHandler:    h.UpdateSalesAgent,
		deleteSalesAgentHandler:    h.DeleteSalesAgent,
		createUserHandler:          h.CreateUser,
		updateUserHandler:          h.UpdateUser,
		deleteUserHandler:          h.DeleteUser,

		authenticateHandler:            h.Authenticate,
		listOrdersHandler:              h.ListOrders,
		getStatsHandler:                h.GetStats,
		getBillingAmountHandler:        h.GetBillingAmount,
		getBillingHistoryHandler:       h.GetBillingHistory,
		listInvoicesHandler:            h.ListInvoices,
		getPersonalBillingStatsHandler: h.GetPersonalBillingStats,
		getProductSuggestionsHandler:   h.GetProductSuggestions,
		listPartnersHandler:            h.ListPartners,
		listSalesAgentsHandler:         h.ListSalesAgents,
		listUsersHandler:               h.ListUsers,
	}
}

// RegisterRoutes mounts the API on the given Echo instance. Everything
// except login and the health probe sits behind the bearer-token middleware.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	api := e.Group("/api/v1")
	api.POST("/auth/login", s.Login)

	authed := api.Group("", s.RequireActor)

	authed.GET("/orders", s.ListOrders)
	authed.POST("/orders", s.CreateOrder)
	authed.PUT("/orders/:id", s.UpdateOrder)
	authed.DELETE("/orders/:id", s.DeleteOrder)
	authed.GET("/stats", s.GetStats)
	authed.GET("/products/suggestions", s.GetProductSuggestions)

	authed.GET("/partners", s.ListPartners)
	authed.POST("/partners", s.CreatePartner)
	authed.PUT("/partners/:id", s.UpdatePartner)
	authed.DELETE("/partners/:id", s.DeletePartner)

	authed.GET("/agents", s.ListSalesAgents)
	authed.POST("/agents", s.CreateSalesAgent)
	authed.PUT("/agents/:id", s.UpdateSalesAgent)
	authed.DELETE("/agents/:id", s.DeleteSalesAgent)

	authed.GET("/users", s.ListUsers)
	authed.POST("/users", s.CreateUser)
	authed.PUT("/users/:id", s.UpdateUser)
	authed.DELETE("/users/:id", s.DeleteUser)

	authed.GET("/billing/amount", s.GetBillingAmount)
	authed.GET("/billing/history", s.GetBillingHistory)
	authed.GET("/billing/personal", s.GetPersonalBillingStats)

	authed.GET("/invoices", s.ListInvoices)
	authed.POST("/invoices", s.GenerateInvoice)
	authed.POST("/invoices/self", s.SelfFileInvoice)
	authed.POST("/invoices/:id/pay", s.AcceptAndPayInvoice)
	authed.POST("/invoices/:id/status", s.SetInvoiceStatus)
}
