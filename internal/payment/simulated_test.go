package payment

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestSimulatedChargeAlwaysCompletes(t *testing.T) {
	provider := NewSimulated()
	provider.now = func() time.Time {
		return time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	}

	amount := decimal.NewFromFloat(29.99)
	receipt, err := provider.Charge(context.Background(), "u1", amount, "premium plan")
	if err != nil {
		t.Fatalf("charge: %v", err)
	}
	if receipt.Status != StatusCompleted {
		t.Fatalf("expected status %q, got %q", StatusCompleted, receipt.Status)
	}
	if !receipt.Amount.Equal(amount) {
		t.Fatalf("expected amount %s, got %s", amount, receipt.Amount)
	}
	if !strings.HasPrefix(receipt.Reference, "SIM-") {
		t.Fatalf("expected SIM- reference, got %q", receipt.Reference)
	}
	if !receipt.PaidAt.Equal(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected paid at %v", receipt.PaidAt)
	}
}
