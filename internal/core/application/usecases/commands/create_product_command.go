package commands

import (
	"errors"

	"waterdrop/internal/core/domain/model/kernel"
	"waterdrop/internal/core/domain/model/product"
	"waterdrop/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand represents an administrator adding a catalog entry.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	name        string
	description string
	size        string
	price       int

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to add a product to the catalog.
func NewCreateProductCommand(
	productID kernel.UUID,
	name string,
	description string,
	size string,
	price int,
) (CreateProductCommand, error) {
	cmd := CreateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProductID(productID),
		cmd.setName(name),
		cmd.setSize(size),
		cmd.setPrice(price),
	); err != nil {
		return CreateProductCommand{}, err
	}

	cmd.description = description

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// ProductID returns the identity the new product will carry.
func (c CreateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Name returns the display name.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Description returns the free-form description.
func (c CreateProductCommand) Description() string {
	return c.description
}

// Size returns the container size label.
func (c CreateProductCommand) Size() string {
	return c.size
}

// Price returns the list price.
func (c CreateProductCommand) Price() int {
	return c.price
}

func (c *CreateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *CreateProductCommand) setName(name string) error {
	if name == "" {
		return product.ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateProductCommand) setSize(size string) error {
	if size == "" {
		return product.ErrSizeIsRequired
	}

	c.size = size
	return nil
}

func (c *CreateProductCommand) setPrice(price int) error {
	if price < 0 {
		return errors.New("price must not be negative")
	}

	c.price = price
	return nil
}
