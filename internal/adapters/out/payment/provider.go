// Package payment implements the checkout payment seam. Cash on delivery
// settles at the door and only needs an acknowledgement; online payments are
// verified against the gateway's HMAC signature over the payment reference.
package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"waterdrop/internal/pkg/errs"
)

// ErrSignatureMismatch is returned when the gateway signature does not match
// the payment reference.
var ErrSignatureMismatch = errors.New("payment signature does not match")

// Provider verifies payments at checkout.
type Provider struct {
	secret []byte
}

// NewProvider creates a payment provider. The secret is the shared key the
// gateway signs callbacks with.
func NewProvider(secret string) (*Provider, error) {
	if secret == "" {
		return nil, errs.NewValueIsRequiredError("payment secret")
	}

	return &Provider{secret: []byte(secret)}, nil
}

// AcknowledgeCashOnDelivery records that the order settles in cash at the
// door. There is no gateway to call, so it always succeeds.
func (p *Provider) AcknowledgeCashOnDelivery(_ context.Context, _ string, _ int) error {
	return nil
}

// VerifyOnlinePayment checks the gateway's HMAC-SHA256 signature over the
// payment reference.
func (p *Provider) VerifyOnlinePayment(_ context.Context, paymentRef, signature string) error {
	if paymentRef == "" {
		return errs.NewValueIsRequiredError("payment reference")
	}
	if signature == "" {
		return errs.NewValueIsRequiredError("signature")
	}

	mac := hmac.New(sha256.New, p.secret)
	mac.Write([]byte(paymentRef))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return ErrSignatureMismatch
	}

	return nil
}
