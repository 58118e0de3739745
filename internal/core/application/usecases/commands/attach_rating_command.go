package commands

import (
	"errors"

	"waterdrop/internal/core/domain/model/kernel"
	"waterdrop/internal/core/domain/model/order"
	"waterdrop/internal/pkg/guard"
)

var ErrAttachRatingCommandIsNotConstructed = errors.New(
	"AttachRatingCommand must be created via NewAttachRatingCommand constructor",
)

// AttachRatingCommand represents a customer rating a delivered order.
type AttachRatingCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	rating     order.Rating

	guard guard.ConstructorGuard
}

// NewAttachRatingCommand creates a command to rate an order. The value must
// be within the 1-5 range; feedback may be empty.
func NewAttachRatingCommand(orderID, customerID kernel.UUID, value int, feedback string) (AttachRatingCommand, error) {
	cmd := AttachRatingCommand{
		guard: guard.NewConstructorGuard(),
	}

	rating, err := order.NewRating(value, feedback)
	if err != nil {
		return AttachRatingCommand{}, err
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
	); err != nil {
		return AttachRatingCommand{}, err
	}

	cmd.rating = rating

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AttachRatingCommand) Validate() error {
	return c.guard.Validate(ErrAttachRatingCommandIsNotConstructed)
}

// OrderID returns the order being rated.
func (c AttachRatingCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the customer submitting the rating.
func (c AttachRatingCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Rating returns the validated rating.
func (c AttachRatingCommand) Rating() order.Rating {
	return c.rating
}

func (c *AttachRatingCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AttachRatingCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}
