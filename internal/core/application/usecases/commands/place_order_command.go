package commands

import (
	"errors"

	"waterdrop/internal/core/domain/model/kernel"
	"waterdrop/internal/core/domain/model/order"
	"waterdrop/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrAddressIsRequired = errors.New("address is required")
	ErrNoItemsRequested  = errors.New("at least one item is required")
	ErrQuantityIsInvalid = errors.New("quantity must be greater than 0")
)

// ItemRequest is one catalog line of a placement request: which product and
// how many. Prices come from the catalog at handling time, never from the
// client.
type ItemRequest struct {
	ProductID kernel.UUID
	Quantity  int
}

// PlaceOrderCommand represents a customer's checkout request.
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	customerID    kernel.UUID
	items         []ItemRequest
	address       string
	paymentMethod order.PaymentMethod
	couponCode    string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order. The coupon
// code may be empty.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	items []ItemRequest,
	address string,
	paymentMethod order.PaymentMethod,
	couponCode string,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setItems(items),
		cmd.setAddress(address),
		cmd.setPaymentMethod(paymentMethod),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	cmd.couponCode = couponCode

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the identity the new order will carry.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the ordering customer.
func (c PlaceOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Items returns the requested catalog lines.
func (c PlaceOrderCommand) Items() []ItemRequest {
	return append([]ItemRequest(nil), c.items...)
}

// Address returns the delivery address.
func (c PlaceOrderCommand) Address() string {
	return c.address
}

// PaymentMethod returns how the customer wants to pay.
func (c PlaceOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

// CouponCode returns the coupon code to apply, empty when none.
func (c PlaceOrderCommand) CouponCode() string {
	return c.couponCode
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *PlaceOrderCommand) setItems(items []ItemRequest) error {
	if len(items) == 0 {
		return ErrNoItemsRequested
	}
	for _, item := range items {
		if err := item.ProductID.Validate(); err != nil {
			return err
		}
		if item.Quantity <= 0 {
			return ErrQuantityIsInvalid
		}
	}

	c.items = append([]ItemRequest(nil), items...)
	return nil
}

func (c *PlaceOrderCommand) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}

	c.address = address
	return nil
}

func (c *PlaceOrderCommand) setPaymentMethod(method order.PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}

	c.paymentMethod = method
	return nil
}
