package services

const (
	// FreeDeliveryThreshold is the subtotal at which delivery becomes free.
	FreeDeliveryThreshold = 100
	// StandardDeliveryFee is charged below the free delivery threshold.
	StandardDeliveryFee = 20
	// PartnerEarningPerDelivery is the flat amount a partner earns per
	// delivered order.
	PartnerEarningPerDelivery = 30
)

// Pricer computes the checkout amounts that get frozen into an order.
type Pricer struct{}

// NewPricer creates a new Pricer instance.
func NewPricer() Pricer {
	return Pricer{}
}

// DeliveryFee returns the fee for an order with the given item subtotal.
// Orders at or above the free delivery threshold ship free.
func (Pricer) DeliveryFee(subtotal int) int {
	if subtotal >= FreeDeliveryThreshold {
		return 0
	}
	return StandardDeliveryFee
}

// PartnerEarning returns the amount credited to the delivery partner for one
// order. The rate is flat regardless of order value.
func (Pricer) PartnerEarning() int {
	return PartnerEarningPerDelivery
}
