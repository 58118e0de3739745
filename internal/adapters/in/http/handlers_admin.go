package http

import (
	"net/http"
	"strconv"
	"time"

	"waterdrop/internal/core/application/usecases/commands"
	"waterdrop/internal/core/application/usecases/queries"
	"waterdrop/internal/core/domain/model/kernel"
	"waterdrop/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// handleGetDashboard handles GET /api/v1/admin/dashboard.
func (s *Server) handleGetDashboard(c echo.Context) error {
	dashboard, err := s.handlers.GetDashboard.Handle(c.Request().Context(), queries.NewGetDashboardQuery())
	if err != nil {
		return respondError(c, err)
	}

	type response struct {
		TotalUsers    int `json:"total_users"`
		TotalPartners int `json:"total_partners"`
		TotalProducts int `json:"total_products"`
		TotalOrders   int `json:"total_orders"`
		TodayOrders   int `json:"today_orders"`
		ActiveOrders  int `json:"active_orders"`
		TodayRevenue  int `json:"today_revenue"`
	}

	return c.JSON(http.StatusOK, response{
		TotalUsers:    dashboard.TotalUsers,
		TotalPartners: dashboard.TotalPartners,
		TotalProducts: dashboard.TotalProducts,
		TotalOrders:   dashboard.TotalOrders,
		TodayOrders:   dashboard.TodayOrders,
		ActiveOrders:  dashboard.ActiveOrders,
		TodayRevenue:  dashboard.TodayRevenue,
	})
}

// handleListOrders handles GET /api/v1/admin/orders with status, search and
// pagination parameters.
func (s *Server) handleListOrders(c echo.Context) error {
	var statusFilter *order.Status
	if raw := c.QueryParam("status"); raw != "" {
		status, ok := orderStatuses[raw]
		if !ok {
			return badRequest(c, "unknown status: "+raw)
		}
		statusFilter = &status
	}

	page, err := queryInt(c, "page", 1)
	if err != nil {
		return err
	}
	pageSize, err := queryInt(c, "page_size", 20)
	if err != nil {
		return err
	}

	query, err := queries.NewListOrdersQuery(statusFilter, c.QueryParam("search"), page, pageSize)
	if err != nil {
		return respondError(c, err)
	}

	result, err := s.handlers.ListOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	type row struct {
		ID         string    `json:"id"`
		Number     string    `json:"number"`
		CustomerID string    `json:"customer_id"`
		Address    string    `json:"address"`
		Status     string    `json:"status"`
		Total      int       `json:"total"`
		PlacedAt   time.Time `json:"placed_at"`
	}
	type response struct {
		Orders []row `json:"orders"`
		Total  int   `json:"total"`
	}

	rows := make([]row, 0, len(result.Orders))
	for _, o := range result.Orders {
		rows = append(rows, row{
			ID:         o.ID.String(),
			Number:     o.Number,
			CustomerID: o.CustomerID.String(),
			Address:    o.Address,
			Status:     o.Status,
			Total:      o.Total,
			PlacedAt:   o.PlacedAt,
		})
	}

	return c.JSON(http.StatusOK, response{Orders: rows, Total: result.Total})
}

// handleGetOrderDetail handles GET /api/v1/admin/orders/:id.
func (s *Server) handleGetOrderDetail(c echo.Context) error {
	orderID, err := pathID(c)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return respondError(c, err)
	}

	detail, err := s.handlers.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, toOrderDetailResponse(detail))
}

// handleAssignPartner handles POST /api/v1/admin/orders/:id/assign.
func (s *Server) handleAssignPartner(c echo.Context) error {
	orderID, err := pathID(c)
	if err != nil {
		return err
	}

	var req AssignPartnerRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	partnerID, err := kernel.UUIDFromBytes(req.PartnerID[:])
	if err != nil {
		return badRequest(c, "invalid partner id")
	}

	cmd, err := commands.NewAssignPartnerCommand(orderID, partnerID)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.handlers.AssignPartner.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// handleListPartners handles GET /api/v1/admin/partners.
func (s *Server) handleListPartners(c echo.Context) error {
	partners, err := s.handlers.GetPartners.Handle(c.Request().Context(), queries.NewGetPartnersQuery())
	if err != nil {
		return respondError(c, err)
	}

	type row struct {
		ID              string     `json:"id"`
		Name            string     `json:"name"`
		Phone           string     `json:"phone"`
		VehicleNumber   string     `json:"vehicle_number,omitempty"`
		IsAvailable     bool       `json:"is_available"`
		IsActive        bool       `json:"is_active"`
		Rating          float64    `json:"rating"`
		TotalDeliveries int        `json:"total_deliveries"`
		TotalEarnings   int        `json:"total_earnings"`
		LocatedAt       *time.Time `json:"located_at,omitempty"`
	}

	response := make([]row, 0, len(partners))
	for _, p := range partners {
		response = append(response, row{
			ID:              p.ID.String(),
			Name:            p.Name,
			Phone:           p.Phone,
			VehicleNumber:   p.VehicleNumber,
			IsAvailable:     p.IsAvailable,
			IsActive:        p.IsActive,
			Rating:          p.Rating,
			TotalDeliveries: p.TotalDeliveries,
			TotalEarnings:   p.TotalEarnings,
			LocatedAt:       p.LocatedAt,
		})
	}

	return c.JSON(http.StatusOK, response)
}

// handleTogglePartnerAvailability handles PATCH
// /api/v1/admin/partners/:id/availability: administrative override of a
// partner's availability flag.
func (s *Server) handleTogglePartnerAvailability(c echo.Context) error {
	partnerID, err := pathID(c)
	if err != nil {
		return err
	}

	var req ToggleAvailabilityRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	cmd, err := commands.NewToggleAvailabilityCommand(partnerID, req.Available)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.handlers.ToggleAvailability.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// handleGetAllProducts handles GET /api/v1/admin/products, including
// unavailable entries.
func (s *Server) handleGetAllProducts(c echo.Context) error {
	return s.respondProducts(c, queries.NewGetProductsQuery(false))
}

// handleCreateProduct handles POST /api/v1/admin/products.
func (s *Server) handleCreateProduct(c echo.Context) error {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	cmd, err := commands.NewCreateProductCommand(
		kernel.NewUUID(), req.Name, req.Description, req.Size, req.Price)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.handlers.CreateProduct.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusCreated)
}

// handleUpdateProduct handles PUT /api/v1/admin/products/:id.
func (s *Server) handleUpdateProduct(c echo.Context) error {
	productID, err := pathID(c)
	if err != nil {
		return err
	}

	var req ProductRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}

	cmd, err := commands.NewUpdateProductCommand(
		productID, req.Name, req.Description, req.Price, req.DiscountPrice, available)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.handlers.UpdateProduct.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// handleListCoupons handles GET /api/v1/admin/coupons.
func (s *Server) handleListCoupons(c echo.Context) error {
	coupons, err := s.handlers.GetCoupons.Handle(c.Request().Context(), queries.NewGetCouponsQuery())
	if err != nil {
		return respondError(c, err)
	}

	type row struct {
		ID            string    `json:"id"`
		Code          string    `json:"code"`
		Description   string    `json:"description,omitempty"`
		DiscountType  string    `json:"discount_type"`
		Value         int       `json:"value"`
		MaxDiscount   int       `json:"max_discount,omitempty"`
		MinOrderValue int       `json:"min_order_value,omitempty"`
		ValidFrom     time.Time `json:"valid_from"`
		ValidUntil    time.Time `json:"valid_until"`
		UsageLimit    int       `json:"usage_limit,omitempty"`
		UsedCount     int       `json:"used_count"`
		IsActive      bool      `json:"is_active"`
	}

	response := make([]row, 0, len(coupons))
	for _, cp := range coupons {
		response = append(response, row{
			ID:            cp.ID.String(),
			Code:          cp.Code,
			Description:   cp.Description,
			DiscountType:  cp.DiscountType,
			Value:         cp.Value,
			MaxDiscount:   cp.MaxDiscount,
			MinOrderValue: cp.MinOrderValue,
			ValidFrom:     cp.ValidFrom,
			ValidUntil:    cp.ValidUntil,
			UsageLimit:    cp.UsageLimit,
			UsedCount:     cp.UsedCount,
			IsActive:      cp.IsActive,
		})
	}

	return c.JSON(http.StatusOK, response)
}

// handleCreateCoupon handles POST /api/v1/admin/coupons.
func (s *Server) handleCreateCoupon(c echo.Context) error {
	var req CreateCouponRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	discountType, ok := discountTypes[req.DiscountType]
	if !ok {
		return badRequest(c, "unknown discount type: "+req.DiscountType)
	}

	cmd, err := commands.NewCreateCouponCommand(
		kernel.NewUUID(), req.Code, req.Description, discountType, req.Value,
		req.MaxDiscount, req.MinOrderValue, req.ValidFrom, req.ValidUntil, req.UsageLimit)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.handlers.CreateCoupon.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusCreated)
}

// handleToggleCoupon handles PATCH /api/v1/admin/coupons/:id/active.
func (s *Server) handleToggleCoupon(c echo.Context) error {
	couponID, err := pathID(c)
	if err != nil {
		return err
	}

	var req ToggleCouponRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	cmd, err := commands.NewToggleCouponCommand(couponID, req.Active)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.handlers.ToggleCoupon.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// handleCreatePayout handles POST /api/v1/admin/payouts.
func (s *Server) handleCreatePayout(c echo.Context) error {
	var req CreatePayoutRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	partnerID, err := kernel.UUIDFromBytes(req.PartnerID[:])
	if err != nil {
		return badRequest(c, "invalid partner id")
	}

	method, ok := payoutMethods[req.Method]
	if !ok {
		return badRequest(c, "unknown payout method: "+req.Method)
	}

	cmd, err := commands.NewCreatePayoutCommand(kernel.NewUUID(), partnerID, req.From, req.To, method)
	if err != nil {
		return respondError(c, err)
	}

	created, err := s.handlers.CreatePayout.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, toPayoutResponse(created))
}

// handleProcessPayout handles PATCH /api/v1/admin/payouts/:id.
func (s *Server) handleProcessPayout(c echo.Context) error {
	payoutID, err := pathID(c)
	if err != nil {
		return err
	}

	var req ProcessPayoutRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	status, ok := payoutStatuses[req.Status]
	if !ok {
		return badRequest(c, "unknown payout status: "+req.Status)
	}

	cmd, err := commands.NewProcessPayoutCommand(payoutID, status, req.Reference)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.handlers.ProcessPayout.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// queryInt parses an optional integer query parameter.
func queryInt(c echo.Context, name string, fallback int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return value, nil
}
