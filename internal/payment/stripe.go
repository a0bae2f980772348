package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	stripe "github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/paymentintent"
)

// Stripe charges through the Stripe API. Amounts are converted to the
// smallest currency unit before the call.
type Stripe struct {
	secretKey string
	currency  string
}

// NewStripe configures the global Stripe key and returns a provider.
func NewStripe(secretKey string) *Stripe {
	stripe.Key = secretKey
	return &Stripe{secretKey: secretKey, currency: string(stripe.CurrencyUSD)}
}

func (s *Stripe) Charge(_ context.Context, userID string, amount decimal.Decimal, description string) (Receipt, error) {
	if stripe.Key != s.secretKey {
		stripe.Key = s.secretKey
	}

	params := &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(amount.Mul(decimal.NewFromInt(100)).IntPart()),
		Currency:    stripe.String(s.currency),
		Description: stripe.String(description),
	}
	params.AddMetadata("user_id", userID)

	intent, err := paymentintent.New(params)
	if err != nil {
		return Receipt{}, fmt.Errorf("create payment intent: %w", err)
	}

	return Receipt{
		Reference: intent.ID,
		Status:    receiptStatus(intent.Status),
		Amount:    amount,
		Currency:  s.currency,
		PaidAt:    time.Unix(intent.Created, 0).UTC(),
	}, nil
}

func receiptStatus(status stripe.PaymentIntentStatus) string {
	switch status {
	case stripe.PaymentIntentStatusSucceeded:
		return StatusCompleted
	case stripe.PaymentIntentStatusCanceled:
		return StatusFailed
	default:
		return StatusPending
	}
}
