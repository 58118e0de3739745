// Package http is the inbound HTTP adapter: thin echo handlers that parse
// requests into commands and queries and translate results back to JSON.
// Authorization is role-based from verified JWT claims; token issuance lives
// outside this service.
package http

import (
	"waterdrop/internal/core/application/usecases/commands"
	"waterdrop/internal/core/application/usecases/queries"
	"waterdrop/internal/core/domain/model/user"
	"waterdrop/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// Handlers bundles the use case handlers the server dispatches to.
type Handlers struct {
	RegisterUser       commands.RegisterUserCommandHandler
	PlaceOrder         commands.PlaceOrderCommandHandler
	AttachRating       commands.AttachRatingCommandHandler
	AcceptOrder        commands.AcceptOrderCommandHandler
	AssignPartner      commands.AssignPartnerCommandHandler
	ChangeOrderStatus  commands.ChangeOrderStatusCommandHandler
	ToggleAvailability commands.ToggleAvailabilityCommandHandler
	UpdateLocation     commands.UpdatePartnerLocationCommandHandler
	CreateProduct      commands.CreateProductCommandHandler
	UpdateProduct      commands.UpdateProductCommandHandler
	CreateCoupon       commands.CreateCouponCommandHandler
	ToggleCoupon       commands.ToggleCouponCommandHandler
	CreatePayout       commands.CreatePayoutCommandHandler
	ProcessPayout      commands.ProcessPayoutCommandHandler

	GetProducts        queries.GetProductsQueryHandler
	GetOrder           queries.GetOrderQueryHandler
	GetCustomerOrders  queries.GetCustomerOrdersQueryHandler
	GetAvailableOrders queries.GetAvailableOrdersQueryHandler
	GetPartnerOrders   queries.GetPartnerOrdersQueryHandler
	GetPartnerEarnings queries.GetPartnerEarningsQueryHandler
	GetPartners        queries.GetPartnersQueryHandler
	GetCoupons         queries.GetCouponsQueryHandler
	GetDashboard       queries.GetDashboardQueryHandler
	ListOrders         queries.ListOrdersQueryHandler
}

// Server coordinates between HTTP requests and the application use cases.
// Online payments are verified at this edge before the order reaches the
// checkout use case.
type Server struct {
	handlers Handlers
	payments ports.PaymentProvider
}

// NewServer creates the HTTP server facade.
func NewServer(handlers Handlers, payments ports.PaymentProvider) *Server {
	return &Server{handlers: handlers, payments: payments}
}

// RegisterRoutes mounts all routes on the echo instance. Routes beyond
// registration and the public catalog require a verified token; role groups
// narrow them further.
func (s *Server) RegisterRoutes(e *echo.Echo, jwtSecret []byte) {
	api := e.Group("/api/v1")

	api.POST("/users/register", s.handleRegisterUser)
	api.GET("/products", s.handleGetCatalog)

	authed := api.Group("", AuthMiddleware(jwtSecret))

	customer := authed.Group("/orders", RequireRole(user.Customer))
	customer.POST("", s.handlePlaceOrder)
	customer.GET("", s.handleGetMyOrders)
	customer.GET("/:id", s.handleGetMyOrder)
	customer.POST("/:id/rating", s.handleRateOrder)

	partner := authed.Group("/partner", RequireRole(user.DeliveryPartner))
	partner.GET("/orders/available", s.handleGetAvailableOrders)
	partner.POST("/orders/:id/accept", s.handleAcceptOrder)
	partner.GET("/orders", s.handleGetPartnerOrders)
	partner.PATCH("/orders/:id/status", s.handleChangeOrderStatus)
	partner.PUT("/location", s.handleUpdateLocation)
	partner.PUT("/availability", s.handleToggleAvailability)
	partner.GET("/earnings", s.handleGetEarnings)

	admin := authed.Group("/admin", RequireRole(user.Admin))
	admin.GET("/dashboard", s.handleGetDashboard)
	admin.GET("/orders", s.handleListOrders)
	admin.GET("/orders/:id", s.handleGetOrderDetail)
	admin.POST("/orders/:id/assign", s.handleAssignPartner)
	admin.PATCH("/orders/:id/status", s.handleChangeOrderStatus)
	admin.GET("/partners", s.handleListPartners)
	admin.PATCH("/partners/:id/availability", s.handleTogglePartnerAvailability)
	admin.GET("/products", s.handleGetAllProducts)
	admin.POST("/products", s.handleCreateProduct)
	admin.PUT("/products/:id", s.handleUpdateProduct)
	admin.GET("/coupons", s.handleListCoupons)
	admin.POST("/coupons", s.handleCreateCoupon)
	admin.PATCH("/coupons/:id/active", s.handleToggleCoupon)
	admin.POST("/payouts", s.handleCreatePayout)
	admin.PATCH("/payouts/:id", s.handleProcessPayout)
}
