package commands

import (
	"context"

	"waterdrop/internal/core/domain/model/kernel"
	"waterdrop/internal/core/domain/model/partner"
	"waterdrop/internal/core/domain/model/user"
)

// RegisterUserCommandHandler opens accounts. Delivery partner accounts get
// their DeliveryPartner aggregate created in the same transaction, so a
// partner account can never exist without a partner to assign orders to.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewRegisterUserCommandHandler creates a handler for account registration.
func NewRegisterUserCommandHandler(uowFactory UserUoWFactory) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle opens the account and returns it. Fails with a constraint violation
// when the phone number is already registered.
func (h RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	var partnerID *kernel.UUID
	if cmd.Role() == user.DeliveryPartner {
		p, err := partner.NewDeliveryPartner(kernel.NewUUID(), cmd.Name(), cmd.Phone(), cmd.VehicleNumber())
		if err != nil {
			return nil, err
		}
		if err = uow.PartnerRepository().Add(ctx, p); err != nil {
			return nil, err
		}
		pid := p.ID()
		partnerID = &pid
	}

	account, err := user.NewUser(cmd.UserID(), cmd.Name(), cmd.Phone(), cmd.Role(), partnerID)
	if err != nil {
		return nil, err
	}

	if err = uow.UserRepository().Add(ctx, account); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return account, nil
}
