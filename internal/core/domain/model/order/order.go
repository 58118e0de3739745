package order

import (
	"errors"
	"fmt"
	"time"

	"waterdrop/internal/core/domain/model/kernel"
	"waterdrop/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrEmptyOrder is returned when an order is placed with no items.
	ErrEmptyOrder = errors.New("order must contain at least one item")

	// ErrOrderAlreadyAssigned is returned when assigning a delivery partner
	// to an order that already has one. Assignment is first-wins; there is
	// deliberately no unassign or reassign path.
	ErrOrderAlreadyAssigned = errors.New("order is already assigned to a delivery partner")

	// ErrInvalidOrderState is returned when an operation is not valid for the
	// order's current state, e.g. rating an order that is not Delivered.
	ErrInvalidOrderState = errors.New("operation is not valid for the order's current state")
)

// Order is the central aggregate. It owns snapshotted line items, the pricing
// breakdown fixed at placement, payment state, the lifecycle status and its
// append-only history, the optional delivery partner assignment and the
// optional post-delivery rating.
//
// Invariants:
//   - total = subtotal + deliveryFee - discount, fixed at creation
//   - status transitions follow the state machine in status.go
//   - the delivery partner is set at most once while unassigned
//   - a rating may be attached only when status is Delivered
//   - history is append-only
type Order struct {
	id             kernel.UUID
	number         kernel.OrderNumber
	customerID     kernel.UUID
	items          []Item
	address        string
	subtotal       int
	deliveryFee    int
	discount       int
	total          int
	couponCode     string
	paymentMethod  PaymentMethod
	paymentStatus  PaymentStatus
	status         Status
	partnerID      *kernel.UUID
	partnerEarning int
	placedAt       time.Time
	deliveredAt    *time.Time
	rating         *Rating
	history        []HistoryEntry

	isConstructed bool
}

// NewOrder creates a freshly placed order. Items must already be snapshotted
// from the catalog; the subtotal is computed from them and the total is fixed
// as subtotal + deliveryFee - discount. The order starts in Placed status
// with payment Pending and an initial history entry.
func NewOrder(
	id kernel.UUID,
	number kernel.OrderNumber,
	customerID kernel.UUID,
	items []Item,
	address string,
	paymentMethod PaymentMethod,
	deliveryFee int,
	discount int,
	couponCode string,
	placedAt time.Time,
) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setCustomerID(customerID),
		o.setItems(items),
		o.setAddress(address),
		o.setPaymentMethod(paymentMethod),
		o.setPricing(deliveryFee, discount),
	); err != nil {
		return nil, err
	}

	o.couponCode = couponCode
	o.paymentStatus = PaymentPending
	o.status = Placed
	o.placedAt = placedAt
	o.history = []HistoryEntry{newHistoryEntry(Placed, placedAt, "Order placed")}

	return o, nil
}

// RestoreOrder reconstructs an order aggregate from persistence. Unlike
// NewOrder it accepts the full persisted state and does not re-derive the
// pricing or append history.
func RestoreOrder(
	id kernel.UUID,
	number kernel.OrderNumber,
	customerID kernel.UUID,
	items []Item,
	address string,
	paymentMethod PaymentMethod,
	paymentStatus PaymentStatus,
	status Status,
	deliveryFee int,
	discount int,
	couponCode string,
	partnerID *kernel.UUID,
	partnerEarning int,
	placedAt time.Time,
	deliveredAt *time.Time,
	rating *Rating,
	history []HistoryEntry,
) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setCustomerID(customerID),
		o.setItems(items),
		o.setAddress(address),
		o.setPaymentMethod(paymentMethod),
		o.setPricing(deliveryFee, discount),
		paymentStatus.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if partnerID != nil {
		if err := partnerID.Validate(); err != nil {
			return nil, err
		}
		pid := *partnerID
		o.partnerID = &pid
	}

	o.paymentStatus = paymentStatus
	o.status = status
	o.couponCode = couponCode
	o.partnerEarning = partnerEarning
	o.placedAt = placedAt
	o.deliveredAt = deliveredAt
	o.rating = rating
	o.history = append([]HistoryEntry(nil), history...)

	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// Assign sets the delivery partner and moves the order to Accepted. The
// partner is set at most once: a second call fails with
// ErrOrderAlreadyAssigned regardless of which partner asks.
//
// This in-memory check is the business rule; the race between two concurrent
// assignment requests is resolved by the store's conditional update, which
// only succeeds while the persisted partner reference is still unset.
func (o *Order) Assign(partnerID kernel.UUID, earning int, at time.Time) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}
	if earning < 0 {
		return errs.NewValueIsInvalidErrorWithCause("partner earning",
			fmt.Errorf("%d is negative", earning))
	}
	if o.partnerID != nil {
		return ErrOrderAlreadyAssigned
	}

	newStatus, err := o.status.TransitionTo(Accepted)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.partnerID = &partnerID
	o.partnerEarning = earning
	o.history = append(o.history, newHistoryEntry(Accepted, at, "Assigned to delivery partner"))
	return nil
}

// TransitionTo moves the order to the next lifecycle status, appending a
// history entry. On entering Delivered it stamps the actual delivery time and
// marks the payment Paid (cash settles on delivery in the current scope).
func (o *Order) TransitionTo(next Status, note string, at time.Time) error {
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	if next == Delivered {
		deliveredAt := at
		o.deliveredAt = &deliveredAt
		o.paymentStatus = PaymentPaid
	}
	if note == "" {
		note = next.String()
	}
	o.history = append(o.history, newHistoryEntry(next, at, note))
	return nil
}

// AttachRating records the customer's rating. Permitted only when the order
// is Delivered; a repeated call overwrites the previous rating.
func (o *Order) AttachRating(r Rating) error {
	if o.status != Delivered {
		return fmt.Errorf("%w: rating requires a delivered order, status is %s",
			ErrInvalidOrderState, o.status)
	}
	rating := r
	o.rating = &rating
	return nil
}

// ID returns the order identity.
func (o *Order) ID() kernel.UUID { return o.id }

// Number returns the human-readable order number.
func (o *Order) Number() kernel.OrderNumber { return o.number }

// CustomerID returns the ordering customer's identity.
func (o *Order) CustomerID() kernel.UUID { return o.customerID }

// Items returns a copy of the snapshotted line items.
func (o *Order) Items() []Item { return append([]Item(nil), o.items...) }

// Address returns the delivery address.
func (o *Order) Address() string { return o.address }

// Subtotal returns the sum of line subtotals.
func (o *Order) Subtotal() int { return o.subtotal }

// DeliveryFee returns the fee fixed at placement.
func (o *Order) DeliveryFee() int { return o.deliveryFee }

// Discount returns the coupon discount fixed at placement.
func (o *Order) Discount() int { return o.discount }

// Total returns subtotal + delivery fee - discount.
func (o *Order) Total() int { return o.total }

// CouponCode returns the applied coupon code, empty when none.
func (o *Order) CouponCode() string { return o.couponCode }

// PaymentMethod returns how the order is settled.
func (o *Order) PaymentMethod() PaymentMethod { return o.paymentMethod }

// PaymentStatus returns the settlement state.
func (o *Order) PaymentStatus() PaymentStatus { return o.paymentStatus }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// Partner returns the assigned delivery partner's ID, nil when unassigned.
func (o *Order) Partner() *kernel.UUID {
	if o.partnerID == nil {
		return nil
	}
	pid := *o.partnerID
	return &pid
}

// PartnerEarning returns the amount credited to the partner on delivery.
func (o *Order) PartnerEarning() int { return o.partnerEarning }

// PlacedAt returns the placement time.
func (o *Order) PlacedAt() time.Time { return o.placedAt }

// DeliveredAt returns the actual delivery time, nil until Delivered.
func (o *Order) DeliveredAt() *time.Time {
	if o.deliveredAt == nil {
		return nil
	}
	at := *o.deliveredAt
	return &at
}

// Rating returns the attached rating, nil when not rated.
func (o *Order) Rating() *Rating {
	if o.rating == nil {
		return nil
	}
	r := *o.rating
	return &r
}

// History returns a copy of the append-only status history.
func (o *Order) History() []HistoryEntry { return append([]HistoryEntry(nil), o.history...) }

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number kernel.OrderNumber) error {
	if err := number.Validate(); err != nil {
		return err
	}
	o.number = number
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if err := validateItems(items); err != nil {
		return err
	}
	o.items = append([]Item(nil), items...)
	o.subtotal = sumSubtotals(o.items)
	return nil
}

func (o *Order) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	o.address = address
	return nil
}

func (o *Order) setPaymentMethod(method PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	o.paymentMethod = method
	return nil
}

func (o *Order) setPricing(deliveryFee, discount int) error {
	if deliveryFee < 0 {
		return errs.NewValueIsInvalidErrorWithCause("delivery fee",
			fmt.Errorf("%d is negative", deliveryFee))
	}
	if discount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("discount",
			fmt.Errorf("%d is negative", discount))
	}
	if discount > o.subtotal+deliveryFee {
		return errs.NewValueIsInvalidErrorWithCause("discount",
			fmt.Errorf("%d exceeds subtotal plus delivery fee", discount))
	}
	o.deliveryFee = deliveryFee
	o.discount = discount
	o.total = o.subtotal + deliveryFee - discount
	return nil
}
