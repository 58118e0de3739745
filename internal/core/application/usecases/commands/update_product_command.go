package commands

import (
	"errors"

	"waterdrop/internal/core/domain/model/kernel"
	"waterdrop/internal/core/domain/model/product"
	"waterdrop/internal/pkg/guard"
)

var ErrUpdateProductCommandIsNotConstructed = errors.New(
	"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
)

// UpdateProductCommand represents an administrator editing a catalog entry:
// name, description, list price, promotional price and availability.
type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	productID     kernel.UUID
	name          string
	description   string
	price         int
	discountPrice int
	isAvailable   bool

	guard guard.ConstructorGuard
}

// NewUpdateProductCommand creates a command to edit a product. A zero
// discount price removes the promotion.
func NewUpdateProductCommand(
	productID kernel.UUID,
	name string,
	description string,
	price int,
	discountPrice int,
	isAvailable bool,
) (UpdateProductCommand, error) {
	cmd := UpdateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProductID(productID),
		cmd.setName(name),
	); err != nil {
		return UpdateProductCommand{}, err
	}

	cmd.description = description
	cmd.price = price
	cmd.discountPrice = discountPrice
	cmd.isAvailable = isAvailable

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

// ProductID returns the product being edited.
func (c UpdateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Name returns the new display name.
func (c UpdateProductCommand) Name() string {
	return c.name
}

// Description returns the new description.
func (c UpdateProductCommand) Description() string {
	return c.description
}

// Price returns the new list price.
func (c UpdateProductCommand) Price() int {
	return c.price
}

// DiscountPrice returns the new promotional price, 0 for none.
func (c UpdateProductCommand) DiscountPrice() int {
	return c.discountPrice
}

// IsAvailable returns the new availability state.
func (c UpdateProductCommand) IsAvailable() bool {
	return c.isAvailable
}

func (c *UpdateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *UpdateProductCommand) setName(name string) error {
	if name == "" {
		return product.ErrNameIsRequired
	}

	c.name = name
	return nil
}
