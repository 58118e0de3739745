package http

import (
	"net/http"
	"strconv"
	"time"

	"waterdrop/internal/core/application/usecases/commands"
	"waterdrop/internal/core/application/usecases/queries"
	"waterdrop/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// handleGetAvailableOrders handles GET /api/v1/partner/orders/available.
func (s *Server) handleGetAvailableOrders(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return badRequest(c, "invalid limit")
		}
		limit = parsed
	}

	query, err := queries.NewGetAvailableOrdersQuery(limit)
	if err != nil {
		return respondError(c, err)
	}

	orders, err := s.handlers.GetAvailableOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	type row struct {
		ID       string    `json:"id"`
		Number   string    `json:"number"`
		Address  string    `json:"address"`
		Total    int       `json:"total"`
		PlacedAt time.Time `json:"placed_at"`
	}

	response := make([]row, 0, len(orders))
	for _, o := range orders {
		response = append(response, row{
			ID:       o.ID.String(),
			Number:   o.Number,
			Address:  o.Address,
			Total:    o.Total,
			PlacedAt: o.PlacedAt,
		})
	}

	return c.JSON(http.StatusOK, response)
}

// handleAcceptOrder handles POST /api/v1/partner/orders/:id/accept.
func (s *Server) handleAcceptOrder(c echo.Context) error {
	partnerID, err := currentPartnerID(c)
	if err != nil {
		return err
	}

	orderID, err := pathID(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAcceptOrderCommand(orderID, partnerID)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.handlers.AcceptOrder.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// handleGetPartnerOrders handles GET /api/v1/partner/orders with an optional
// status filter.
func (s *Server) handleGetPartnerOrders(c echo.Context) error {
	partnerID, err := currentPartnerID(c)
	if err != nil {
		return err
	}

	var statusFilter *order.Status
	if raw := c.QueryParam("status"); raw != "" {
		status, ok := orderStatuses[raw]
		if !ok {
			return badRequest(c, "unknown status: "+raw)
		}
		statusFilter = &status
	}

	query, err := queries.NewGetPartnerOrdersQuery(partnerID, statusFilter)
	if err != nil {
		return respondError(c, err)
	}

	orders, err := s.handlers.GetPartnerOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	type row struct {
		ID             string    `json:"id"`
		Number         string    `json:"number"`
		Address        string    `json:"address"`
		Status         string    `json:"status"`
		Total          int       `json:"total"`
		PartnerEarning int       `json:"partner_earning"`
		PlacedAt       time.Time `json:"placed_at"`
	}

	response := make([]row, 0, len(orders))
	for _, o := range orders {
		response = append(response, row{
			ID:             o.ID.String(),
			Number:         o.Number,
			Address:        o.Address,
			Status:         o.Status,
			Total:          o.Total,
			PartnerEarning: o.PartnerEarning,
			PlacedAt:       o.PlacedAt,
		})
	}

	return c.JSON(http.StatusOK, response)
}

// handleChangeOrderStatus handles PATCH .../orders/:id/status for both the
// partner and admin route groups. Which transitions are legal is decided by
// the order itself.
func (s *Server) handleChangeOrderStatus(c echo.Context) error {
	orderID, err := pathID(c)
	if err != nil {
		return err
	}

	var req ChangeOrderStatusRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	next, ok := orderStatuses[req.Status]
	if !ok {
		return badRequest(c, "unknown status: "+req.Status)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, next, req.Note)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.handlers.ChangeOrderStatus.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// handleUpdateLocation handles PUT /api/v1/partner/location.
func (s *Server) handleUpdateLocation(c echo.Context) error {
	partnerID, err := currentPartnerID(c)
	if err != nil {
		return err
	}

	var req UpdateLocationRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	cmd, err := commands.NewUpdatePartnerLocationCommand(partnerID, req.Latitude, req.Longitude)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.handlers.UpdateLocation.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// handleToggleAvailability handles PUT /api/v1/partner/availability.
func (s *Server) handleToggleAvailability(c echo.Context) error {
	partnerID, err := currentPartnerID(c)
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

// handleGetEarnings handles GET /api/v1/partner/earnings.
func (s *Server) handleGetEarnings(c echo.Context) error {
	partnerID, err := currentPartnerID(c)
	if err != nil {
		return err
	}

	query, err := queries.NewGetPartnerEarningsQuery(partnerID)
	if err != nil {
		return respondError(c, err)
	}

	earnings, err := s.handlers.GetPartnerEarnings.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	type response struct {
		Today           int `json:"today"`
		ThisWeek        int `json:"this_week"`
		ThisMonth       int `json:"this_month"`
		Lifetime        int `json:"lifetime"`
		TotalDeliveries int `json:"total_deliveries"`
	}

	return c.JSON(http.StatusOK, response{
		Today:           earnings.Today,
		ThisWeek:        earnings.ThisWeek,
		ThisMonth:       earnings.ThisMonth,
		Lifetime:        earnings.Lifetime,
		TotalDeliveries: earnings.TotalDeliveries,
	})
}
