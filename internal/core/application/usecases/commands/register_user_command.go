package commands

import (
	"errors"

	"waterdrop/internal/core/domain/model/kernel"
	"waterdrop/internal/core/domain/model/user"
	"waterdrop/internal/pkg/guard"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

// RegisterUserCommand represents opening an account. Customers self-register;
// delivery partner accounts are provisioned by an administrator and get a
// DeliveryPartner aggregate created alongside, with the optional vehicle
// number.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	userID        kernel.UUID
	name          string
	phone         string
	role          user.Role
	vehicleNumber string

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a command to open an account.
func NewRegisterUserCommand(
	userID kernel.UUID,
	name string,
	phone string,
	role user.Role,
	vehicleNumber string,
) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setName(name),
		cmd.setPhone(phone),
		cmd.setRole(role),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	cmd.vehicleNumber = vehicleNumber

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// UserID returns the identity the new account will carry.
func (c RegisterUserCommand) UserID() kernel.UUID {
	return c.userID
}

// Name returns the display name.
func (c RegisterUserCommand) Name() string {
	return c.name
}

// Phone returns the phone number the account signs in with.
func (c RegisterUserCommand) Phone() string {
	return c.phone
}

// Role returns the account's role.
func (c RegisterUserCommand) Role() user.Role {
	return c.role
}

// VehicleNumber returns the partner's vehicle registration, empty otherwise.
func (c RegisterUserCommand) VehicleNumber() string {
	return c.vehicleNumber
}

func (c *RegisterUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *RegisterUserCommand) setName(name string) error {
	if name == "" {
		return user.ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *RegisterUserCommand) setPhone(phone string) error {
	if phone == "" {
		return user.ErrPhoneIsRequired
	}

	c.phone = phone
	return nil
}

func (c *RegisterUserCommand) setRole(role user.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
