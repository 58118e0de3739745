// Package product contains the water catalog entry customers order from.
package product

import (
	"errors"
	"fmt"

	"waterdrop/internal/core/domain/model/kernel"
	"waterdrop/internal/pkg/errs"
	"waterdrop/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when creating a product without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrSizeIsRequired is returned when creating a product without a size label.
	ErrSizeIsRequired = errs.NewValueIsRequiredError("size")
	// ErrProductIsNotConstructed is returned when using an improperly initialized Product.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
)

// Product is a catalog entry: a water container of a given size at a given
// price. A discount price, when set, replaces the list price at checkout.
// Orders snapshot the effective price so later catalog edits never change
// already placed orders.
type Product struct {
	id            kernel.UUID
	name          string
	description   string
	size          string
	price         int
	discountPrice int
	isAvailable   bool

	guard guard.ConstructorGuard
}

// NewProduct creates an available catalog entry without a discount.
func NewProduct(id kernel.UUID, name, description, size string, price int) (*Product, error) {
	p := &Product{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setSize(size),
		p.setPrice(price),
	); err != nil {
		return nil, err
	}

	p.description = description
	p.isAvailable = true

	return p, nil
}

// RestoreProduct reconstructs a catalog entry from persistent storage.
func RestoreProduct(
	id kernel.UUID,
	name string,
	description string,
	size string,
	price int,
	discountPrice int,
	isAvailable bool,
) (*Product, error) {
	p := &Product{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setSize(size),
		p.setPrice(price),
		p.setDiscountPrice(discountPrice),
	); err != nil {
		return nil, err
	}

	p.description = description
	p.isAvailable = isAvailable

	return p, nil
}

// Validate checks if the Product was properly constructed.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// IsEqual compares two products by identity.
func (p *Product) IsEqual(other *Product) bool {
	if other == nil {
		return false
	}
	return p.id.IsEqual(other.id)
}

// EffectivePrice returns the price an order pays right now: the discount
// price when one is set below the list price, the list price otherwise.
func (p *Product) EffectivePrice() int {
	if p.discountPrice > 0 && p.discountPrice < p.price {
		return p.discountPrice
	}
	return p.price
}

// ChangePrice updates the list price.
func (p *Product) ChangePrice(price int) error {
	return p.setPrice(price)
}

// ApplyDiscountPrice sets a promotional price. Zero removes the discount.
func (p *Product) ApplyDiscountPrice(discountPrice int) error {
	return p.setDiscountPrice(discountPrice)
}

// Rename updates the product's display name and description.
func (p *Product) Rename(name, description string) error {
	if err := p.setName(name); err != nil {
		return err
	}
	p.description = description
	return nil
}

// MarkAvailable puts the product back on the menu.
func (p *Product) MarkAvailable() {
	p.isAvailable = true
}

// MarkUnavailable hides the product from the menu without deleting it.
func (p *Product) MarkUnavailable() {
	p.isAvailable = false
}

// ID returns the product identity.
func (p *Product) ID() kernel.UUID { return p.id }

// Name returns the display name.
func (p *Product) Name() string { return p.name }

// Description returns the free-form description.
func (p *Product) Description() string { return p.description }

// Size returns the container size label, e.g. "20L".
func (p *Product) Size() string { return p.size }

// Price returns the list price.
func (p *Product) Price() int { return p.price }

// DiscountPrice returns the promotional price, 0 when none is set.
func (p *Product) DiscountPrice() int { return p.discountPrice }

// IsAvailable reports whether the product can be ordered.
func (p *Product) IsAvailable() bool { return p.isAvailable }

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	p.name = name
	return nil
}

func (p *Product) setSize(size string) error {
	if size == "" {
		return ErrSizeIsRequired
	}

	p.size = size
	return nil
}

func (p *Product) setPrice(price int) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%d is negative", price))
	}

	p.price = price
	return nil
}

func (p *Product) setDiscountPrice(discountPrice int) error {
	if discountPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("discount price",
			fmt.Errorf("%d is negative", discountPrice))
	}

	p.discountPrice = discountPrice
	return nil
}
