// Package payment abstracts the charge step of a membership subscription
// behind a provider interface, so the default simulated gateway can be
// swapped for a real one without touching the membership store.
package payment

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Receipt statuses.
const (
	StatusCompleted = "completed"
	StatusPending   = "pending"
	StatusFailed    = "failed"
)

// Receipt describes the outcome of a charge attempt.
type Receipt struct {
	Reference string
	Status    string
	Amount    decimal.Decimal
	Currency  string
	PaidAt    time.Time
}

// Provider charges a user and returns a receipt. A nil error with a
// non-completed status means the charge was accepted but not settled.
type Provider interface {
	Charge(ctx context.Context, userID string, amount decimal.Decimal, description string) (Receipt, error)
}
