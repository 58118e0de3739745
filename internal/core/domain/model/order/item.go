package order

import (
	"errors"
	"fmt"

	"waterdrop/internal/core/domain/model/kernel"
	"waterdrop/internal/pkg/errs"
)

// Item is a snapshotted order line. Name, size and unit price are copied from
// the product catalog at placement time so later catalog changes never affect
// an existing order. Item is immutable once created.
type Item struct {
	productID   kernel.UUID
	productName string
	productSize string
	quantity    int
	unitPrice   int
	subtotal    int
}

// NewItem creates a validated order line. Quantity must be at least 1 and the
// unit price non-negative; the line subtotal is quantity times unit price.
func NewItem(productID kernel.UUID, productName, productSize string, quantity, unitPrice int) (Item, error) {
	if err := productID.Validate(); err != nil {
		return Item{}, err
	}
	if productName == "" {
		return Item{}, errs.NewValueIsRequiredError("product name")
	}
	if quantity < 1 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if unitPrice < 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("unit price",
			fmt.Errorf("%d is negative", unitPrice))
	}

	return Item{
		productID:   productID,
		productName: productName,
		productSize: productSize,
		quantity:    quantity,
		unitPrice:   unitPrice,
		subtotal:    quantity * unitPrice,
	}, nil
}

// ProductID returns the referenced catalog product.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// ProductName returns the snapshotted product name.
func (i Item) ProductName() string {
	return i.productName
}

// ProductSize returns the snapshotted product size descriptor.
func (i Item) ProductSize() string {
	return i.productSize
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the snapshotted per-unit price.
func (i Item) UnitPrice() int {
	return i.unitPrice
}

// Subtotal returns quantity times unit price.
func (i Item) Subtotal() int {
	return i.subtotal
}

func sumSubtotals(items []Item) int {
	total := 0
	for _, item := range items {
		total += item.Subtotal()
	}
	return total
}

func validateItems(items []Item) error {
	if len(items) == 0 {
		return ErrEmptyOrder
	}
	var err error
	for _, item := range items {
		if item.productID.Validate() != nil {
			err = errors.Join(err, errs.NewValueIsInvalidError("item"))
		}
	}
	return err
}
