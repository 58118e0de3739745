// Package user contains accounts and their roles.
//
// Roles drive authorization: customers place and track orders, delivery
// partners work the assignment pool, and administrators manage the catalog,
// coupons, payouts and the order book. A delivery partner account links to
// its DeliveryPartner aggregate through PartnerID.
package user

import (
	"errors"

	"waterdrop/internal/core/domain/model/kernel"
	"waterdrop/internal/pkg/errs"
	"waterdrop/internal/pkg/guard"
)

// Role determines what a user is allowed to do.
type Role int

const (
	// UnknownRole is the invalid zero value.
	UnknownRole Role = iota
	// Customer places orders.
	Customer
	// DeliveryPartner delivers orders.
	DeliveryPartner
	// Admin manages the marketplace.
	Admin
)

var (
	// ErrNameIsRequired is returned when creating a user without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrPhoneIsRequired is returned when creating a user without a phone number.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
	// ErrUserIsNotConstructed is returned when using an improperly initialized User.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")
)

var roleStrings = map[Role]string{
	Customer:        "customer",
	DeliveryPartner: "delivery_partner",
	Admin:           "admin",
}

// String returns the wire representation of the role, as carried in access
// token claims.
func (r Role) String() string {
	if s, ok := roleStrings[r]; ok {
		return s
	}
	return "unknown"
}

// Validate checks that the role is one of the known values.
func (r Role) Validate() error {
	if _, ok := roleStrings[r]; !ok {
		return errs.NewValueIsInvalidError("role")
	}
	return nil
}

// RoleFromString parses the wire representation of a role.
func RoleFromString(s string) (Role, error) {
	for role, str := range roleStrings {
		if str == s {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidError("role")
}

// User is an account in the marketplace.
type User struct {
	id        kernel.UUID
	name      string
	phone     string
	role      Role
	partnerID *kernel.UUID
	pushToken string
	isActive  bool

	guard guard.ConstructorGuard
}

// NewUser creates an active account. For delivery partner accounts,
// partnerID links to the DeliveryPartner aggregate; it must be nil for
// other roles.
func NewUser(id kernel.UUID, name, phone string, role Role, partnerID *kernel.UUID) (*User, error) {
	u := &User{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		u.setPhone(phone),
		u.setRole(role),
		u.setPartnerID(role, partnerID),
	); err != nil {
		return nil, err
	}

	u.isActive = true

	return u, nil
}

// RestoreUser reconstructs an account from persistent storage.
func RestoreUser(
	id kernel.UUID,
	name string,
	phone string,
	role Role,
	partnerID *kernel.UUID,
	pushToken string,
	isActive bool,
) (*User, error) {
	u, err := NewUser(id, name, phone, role, partnerID)
	if err != nil {
		return nil, err
	}

	u.pushToken = pushToken
	u.isActive = isActive

	return u, nil
}

// Validate checks if the User was properly constructed.
func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

// IsEqual compares two users by identity.
func (u *User) IsEqual(other *User) bool {
	if other == nil {
		return false
	}
	return u.id.IsEqual(other.id)
}

// SetPushToken replaces the device token used for push notifications.
func (u *User) SetPushToken(token string) {
	u.pushToken = token
}

// Activate re-enables the account.
func (u *User) Activate() {
	u.isActive = true
}

// Deactivate disables the account without deleting it.
func (u *User) Deactivate() {
	u.isActive = false
}

// ID returns the account identity.
func (u *User) ID() kernel.UUID { return u.id }

// Name returns the display name.
func (u *User) Name() string { return u.name }

// Phone returns the phone number the account signs in with.
func (u *User) Phone() string { return u.phone }

// Role returns the account's role.
func (u *User) Role() Role { return u.role }

// PartnerID returns the linked DeliveryPartner aggregate for delivery
// partner accounts, nil for other roles.
func (u *User) PartnerID() *kernel.UUID {
	if u.partnerID == nil {
		return nil
	}
	pid := *u.partnerID
	return &pid
}

// PushToken returns the device token for push notifications, empty when unset.
func (u *User) PushToken() string { return u.pushToken }

// IsActive reports whether the account may sign in.
func (u *User) IsActive() bool { return u.isActive }

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	u.id = id
	return nil
}

func (u *User) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	u.name = name
	return nil
}

func (u *User) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}

	u.phone = phone
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	u.role = role
	return nil
}

func (u *User) setPartnerID(role Role, partnerID *kernel.UUID) error {
	if partnerID == nil {
		return nil
	}
	if role != DeliveryPartner {
		return errs.NewValueIsInvalidError("partner ID is only valid for delivery partner accounts")
	}
	if err := partnerID.Validate(); err != nil {
		return err
	}

	pid := *partnerID
	u.partnerID = &pid
	return nil
}
