package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem pairs a product snapshot with a quantity. The embedded product is
// copied at add-to-cart time, not referenced.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Subtotal is price multiplied by quantity.
func (ci CartItem) Subtotal() decimal.Decimal {
	return ci.Product.Price.Mul(decimal.NewFromInt(int64(ci.Quantity)))
}

// BillingInfo is the address block captured at checkout and subscribe time.
type BillingInfo struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	City       string `json:"city"`
	Country    string `json:"country"`
	PostalCode string `json:"postalCode"`
}

// Order is a frozen snapshot of a cart at checkout. It is immutable once
// created.
type Order struct {
	ID        string          `json:"id"`
	UserID    string          `json:"userId"`
	Items     []CartItem      `json:"items"`
	Total     decimal.Decimal `json:"total"`
	Billing   BillingInfo     `json:"billingInfo"`
	CreatedAt time.Time       `json:"createdAt"`
}
