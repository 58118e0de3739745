package partner

import (
	"errors"
	"fmt"
	"time"

	"waterdrop/internal/core/domain/model/kernel"
	"waterdrop/internal/pkg/errs"
	"waterdrop/internal/pkg/guard"
)

const (
	// MinPartnerRating is the lowest aggregated rating a partner can hold.
	MinPartnerRating = 0.0
	// MaxPartnerRating is the highest aggregated rating a partner can hold.
	MaxPartnerRating = 5.0
)

var (
	// ErrNameIsRequired is returned when creating a partner without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrPhoneIsRequired is returned when creating a partner without a phone number.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
	// ErrPartnerIsNotConstructed is returned when using an improperly initialized DeliveryPartner.
	ErrPartnerIsNotConstructed = errors.New("DeliveryPartner must be created via NewDeliveryPartner constructor")
	// ErrPartnerIsInactive is returned when an operation requires an active partner.
	ErrPartnerIsInactive = errors.New("delivery partner is deactivated")
)

// DeliveryPartner is the aggregate root for a person delivering orders.
//
// Business rules:
//   - A partner must have a valid UUID, a non-empty name and phone number
//   - A new partner starts active, available and unrated
//   - The aggregated rating always stays within [0, 5]
//   - Delivery counters only grow; they are credited once per delivered order
//   - A deactivated partner cannot be marked available
type DeliveryPartner struct {
	id              kernel.UUID
	name            string
	phone           string
	vehicleNumber   string
	pushToken       string
	isAvailable     bool
	isActive        bool
	rating          float64
	totalDeliveries int
	totalEarnings   int
	location        *kernel.GeoPoint
	locatedAt       *time.Time

	guard guard.ConstructorGuard
}

// NewDeliveryPartner creates a new partner ready to take orders: active,
// available, with zeroed rating and counters. The vehicle number is optional.
func NewDeliveryPartner(id kernel.UUID, name, phone, vehicleNumber string) (*DeliveryPartner, error) {
	p := &DeliveryPartner{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPhone(phone),
	); err != nil {
		return nil, err
	}

	p.vehicleNumber = vehicleNumber
	p.isAvailable = true
	p.isActive = true

	return p, nil
}

// RestoreDeliveryPartner reconstructs the aggregate from persistent storage.
func RestoreDeliveryPartner(
	id kernel.UUID,
	name string,
	phone string,
	vehicleNumber string,
	pushToken string,
	isAvailable bool,
	isActive bool,
	rating float64,
	totalDeliveries int,
	totalEarnings int,
	location *kernel.GeoPoint,
	locatedAt *time.Time,
) (*DeliveryPartner, error) {
	p := &DeliveryPartner{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPhone(phone),
		p.setRating(rating),
	); err != nil {
		return nil, err
	}

	if totalDeliveries < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("total deliveries",
			fmt.Errorf("%d is negative", totalDeliveries))
	}
	if totalEarnings < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("total earnings",
			fmt.Errorf("%d is negative", totalEarnings))
	}

	p.vehicleNumber = vehicleNumber
	p.pushToken = pushToken
	p.isAvailable = isAvailable
	p.isActive = isActive
	p.totalDeliveries = totalDeliveries
	p.totalEarnings = totalEarnings
	if location != nil {
		loc := *location
		p.location = &loc
	}
	if locatedAt != nil {
		at := *locatedAt
		p.locatedAt = &at
	}

	return p, nil
}

// Validate checks if the DeliveryPartner was properly constructed.
func (p *DeliveryPartner) Validate() error {
	if p == nil {
		return ErrPartnerIsNotConstructed
	}
	return p.guard.Validate(ErrPartnerIsNotConstructed)
}

// IsEqual compares two partners by identity.
func (p *DeliveryPartner) IsEqual(other *DeliveryPartner) bool {
	if other == nil {
		return false
	}
	return p.id.IsEqual(other.id)
}

// MarkBusy takes the partner off the assignment pool while they carry an order.
func (p *DeliveryPartner) MarkBusy() {
	p.isAvailable = false
}

// MarkAvailable puts the partner back into the assignment pool. Deactivated
// partners cannot be made available.
func (p *DeliveryPartner) MarkAvailable() error {
	if !p.isActive {
		return ErrPartnerIsInactive
	}
	p.isAvailable = true
	return nil
}

// Activate re-enables a deactivated partner. They come back unavailable and
// must report availability themselves.
func (p *DeliveryPartner) Activate() {
	p.isActive = true
}

// Deactivate removes the partner from service. An inactive partner is never
// available for assignment.
func (p *DeliveryPartner) Deactivate() {
	p.isActive = false
	p.isAvailable = false
}

// RecordDelivery credits one completed delivery: increments the lifetime
// counter, adds the earning and frees the partner for the next order.
func (p *DeliveryPartner) RecordDelivery(earning int) error {
	if earning < 0 {
		return errs.NewValueIsInvalidErrorWithCause("earning",
			fmt.Errorf("%d is negative", earning))
	}

	p.totalDeliveries++
	p.totalEarnings += earning
	if p.isActive {
		p.isAvailable = true
	}
	return nil
}

// SetRating replaces the aggregated customer rating.
func (p *DeliveryPartner) SetRating(rating float64) error {
	return p.setRating(rating)
}

// SetPushToken replaces the device token used for push notifications.
// An empty token disables notifications for the partner.
func (p *DeliveryPartner) SetPushToken(token string) {
	p.pushToken = token
}

// MoveTo records the partner's last reported location.
func (p *DeliveryPartner) MoveTo(location kernel.GeoPoint, at time.Time) error {
	if err := location.Validate(); err != nil {
		return err
	}

	p.location = &location
	p.locatedAt = &at
	return nil
}

// ID returns the partner identity.
func (p *DeliveryPartner) ID() kernel.UUID { return p.id }

// Name returns the partner's name.
func (p *DeliveryPartner) Name() string { return p.name }

// Phone returns the partner's phone number.
func (p *DeliveryPartner) Phone() string { return p.phone }

// VehicleNumber returns the registration number of the partner's vehicle,
// empty when not provided.
func (p *DeliveryPartner) VehicleNumber() string { return p.vehicleNumber }

// PushToken returns the device token for push notifications, empty when unset.
func (p *DeliveryPartner) PushToken() string { return p.pushToken }

// IsAvailable reports whether the partner can be assigned a new order.
func (p *DeliveryPartner) IsAvailable() bool { return p.isAvailable }

// IsActive reports whether the partner is in service.
func (p *DeliveryPartner) IsActive() bool { return p.isActive }

// Rating returns the aggregated customer rating, 0 when unrated.
func (p *DeliveryPartner) Rating() float64 { return p.rating }

// TotalDeliveries returns the lifetime count of delivered orders.
func (p *DeliveryPartner) TotalDeliveries() int { return p.totalDeliveries }

// TotalEarnings returns the lifetime earnings in whole currency units.
func (p *DeliveryPartner) TotalEarnings() int { return p.totalEarnings }

// Location returns the last reported location, nil when never reported.
func (p *DeliveryPartner) Location() *kernel.GeoPoint {
	if p.location == nil {
		return nil
	}
	loc := *p.location
	return &loc
}

// LocatedAt returns when the location was last reported, nil when never.
func (p *DeliveryPartner) LocatedAt() *time.Time {
	if p.locatedAt == nil {
		return nil
	}
	at := *p.locatedAt
	return &at
}

func (p *DeliveryPartner) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	p.id = id
	return nil
}

func (p *DeliveryPartner) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	p.name = name
	return nil
}

func (p *DeliveryPartner) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}

	p.phone = phone
	return nil
}

func (p *DeliveryPartner) setRating(rating float64) error {
	if rating < MinPartnerRating || rating > MaxPartnerRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, MinPartnerRating, MaxPartnerRating)
	}

	p.rating = rating
	return nil
}
