package http

import (
	"errors"
	"net/http"

	"waterdrop/internal/core/application/usecases/commands"
	"waterdrop/internal/core/domain/model/coupon"
	"waterdrop/internal/core/domain/model/order"
	"waterdrop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON body of every non-2xx reply.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// respondError translates domain and application errors into HTTP statuses.
// Validation problems are the client's fault, conflicts mean the state moved
// underneath the request, everything unexpected is a 500 with a generic body.
func respondError(c echo.Context, err error) error {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	status := http.StatusInternalServerError
	message := "internal error"

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status, message = http.StatusNotFound, err.Error()
	case errors.Is(err, commands.ErrNotOrderOwner):
		status, message = http.StatusForbidden, err.Error()
	case errors.Is(err, order.ErrOrderAlreadyAssigned),
		errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrInvalidOrderState),
		errors.Is(err, errs.ErrConstraintViolation):
		status, message = http.StatusConflict, err.Error()
	case errors.Is(err, coupon.ErrCouponInactive),
		errors.Is(err, coupon.ErrCouponExpired),
		errors.Is(err, coupon.ErrUsageLimitReached),
		errors.Is(err, coupon.ErrBelowMinimumOrder),
		errors.Is(err, commands.ErrPartnerInactive),
		errors.Is(err, commands.ErrProductUnavailable),
		errors.Is(err, commands.ErrNoDeliveredOrders):
		status, message = http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status, message = http.StatusBadRequest, err.Error()
	}

	return c.JSON(status, ErrorResponse{Code: status, Message: message})
}

// badRequest replies 400 with the given message.
func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
