package ports

import "context"

// PaymentProvider is the seam for payment handling at checkout. Cash on
// delivery acknowledges immediately; an online provider verifies the
// gateway's signed callback before the order is accepted.
type PaymentProvider interface {
	// AcknowledgeCashOnDelivery records that the order will settle in cash
	// at the door.
	AcknowledgeCashOnDelivery(ctx context.Context, orderID string, amount int) error

	// VerifyOnlinePayment checks the gateway's signature over the payment
	// reference. Returns an error when the signature does not match.
	VerifyOnlinePayment(ctx context.Context, paymentRef, signature string) error
}
