package commands

import (
	"context"
	"errors"
)

// UpdateProductCommandHandler edits catalog entries. Placed orders are not
// touched; they snapshotted their prices at checkout.
type UpdateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewUpdateProductCommandHandler creates a handler for catalog edits.
func NewUpdateProductCommandHandler(uowFactory ProductUoWFactory) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle applies the edit to the product.
func (h UpdateProductCommandHandler) Handle(ctx context.Context, cmd UpdateProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()

	p, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	if err = errors.Join(
		p.Rename(cmd.Name(), cmd.Description()),
		p.ChangePrice(cmd.Price()),
		p.ApplyDiscountPrice(cmd.DiscountPrice()),
	); err != nil {
		return err
	}

	if cmd.IsAvailable() {
		p.MarkAvailable()
	} else {
		p.MarkUnavailable()
	}

	if err = productRepo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
