package http

import (
	"net/http"
	"time"

	"waterdrop/internal/core/application/usecases/commands"
	"waterdrop/internal/core/application/usecases/queries"
	"waterdrop/internal/core/domain/model/kernel"
	"waterdrop/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// handlePlaceOrder handles POST /api/v1/orders.
func (s *Server) handlePlaceOrder(c echo.Context) error {
	customerID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req PlaceOrderRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	method, ok := paymentMethods[req.PaymentMethod]
	if !ok {
		return badRequest(c, "unknown payment method: "+req.PaymentMethod)
	}

	// Online orders carry the gateway's signed callback; verify it before
	// anything is persisted.
	if method == order.Online {
		if err = s.payments.VerifyOnlinePayment(c.Request().Context(), req.PaymentRef, req.Signature); err != nil {
			return c.JSON(http.StatusPaymentRequired, ErrorResponse{
				Code:    http.StatusPaymentRequired,
				Message: "payment verification failed",
			})
		}
	}

	items := make([]commands.ItemRequest, 0, len(req.Items))
	for _, item := range req.Items {
		productID, idErr := kernel.UUIDFromBytes(item.ProductID[:])
		if idErr != nil {
			return badRequest(c, "invalid product id")
		}
		items = append(items, commands.ItemRequest{ProductID: productID, Quantity: item.Quantity})
	}

	cmd, err := commands.NewPlaceOrderCommand(
		kernel.NewUUID(), customerID, items, req.Address, method, req.CouponCode)
	if err != nil {
		return respondError(c, err)
	}

	placed, err := s.handlers.PlaceOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, toOrderResponse(placed))
}

// handleGetMyOrders handles GET /api/v1/orders: the customer's history.
func (s *Server) handleGetMyOrders(c echo.Context) error {
	customerID, err := currentUserID(c)
	if err != nil {
		return err
	}

	query, err := queries.NewGetCustomerOrdersQuery(customerID)
	if err != nil {
		return respondError(c, err)
	}

	orders, err := s.handlers.GetCustomerOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	type row struct {
		ID          string     `json:"id"`
		Number      string     `json:"number"`
		Status      string     `json:"status"`
		Total       int        `json:"total"`
		RatingValue int        `json:"rating_value,omitempty"`
		PlacedAt    time.Time  `json:"placed_at"`
		DeliveredAt *time.Time `json:"delivered_at,omitempty"`
	}

	response := make([]row, 0, len(orders))
	for _, o := range orders {
		response = append(response, row{
			ID:          o.ID.String(),
			Number:      o.Number,
			Status:      o.Status,
			Total:       o.Total,
			RatingValue: o.RatingValue,
			PlacedAt:    o.PlacedAt,
			DeliveredAt: o.DeliveredAt,
		})
	}

	return c.JSON(http.StatusOK, response)
}

// handleGetMyOrder handles GET /api/v1/orders/:id. Customers only see their
// own orders.
func (s *Server) handleGetMyOrder(c echo.Context) error {
	customerID, err := currentUserID(c)
	if err != nil {
		return err
	}

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

	// Hide other customers' orders behind the same 404 as missing ones.
	if !detail.CustomerID.IsEqual(customerID) {
		return c.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: "order not found",
		})
	}

	return c.JSON(http.StatusOK, toOrderDetailResponse(detail))
}

// handleRateOrder handles POST /api/v1/orders/:id/rating.
func (s *Server) handleRateOrder(c echo.Context) error {
	customerID, err := currentUserID(c)
	if err != nil {
		return err
	}

	orderID, err := pathID(c)
	if err != nil {
		return err
	}

	var req RateOrderRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	cmd, err := commands.NewAttachRatingCommand(orderID, customerID, req.Value, req.Feedback)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.handlers.AttachRating.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
