package payment

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Simulated is the default provider. There is no real gateway behind it:
// every charge settles immediately with StatusCompleted.
type Simulated struct {
	now func() time.Time
}

// NewSimulated creates a simulated provider.
func NewSimulated() *Simulated {
	return &Simulated{now: time.Now}
}

func (s *Simulated) Charge(_ context.Context, _ string, amount decimal.Decimal, _ string) (Receipt, error) {
	return Receipt{
		Reference: "SIM-" + uuid.NewString(),
		Status:    StatusCompleted,
		Amount:    amount,
		Currency:  "usd",
		PaidAt:    s.now().UTC(),
	}, nil
}
