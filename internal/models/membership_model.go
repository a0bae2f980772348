package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tier is an ordered membership rank.
type Tier string

const (
	TierFree    Tier = "free"
	TierBasic   Tier = "basic"
	TierPremium Tier = "premium"
	TierElite   Tier = "elite"
)

var tierRanks = map[Tier]int{
	TierFree:    0,
	TierBasic:   1,
	TierPremium: 2,
	TierElite:   3,
}

// Rank returns the ordinal position of the tier. Unknown tiers rank lowest.
func (t Tier) Rank() int {
	return tierRanks[t]
}

// AtLeast reports whether the tier ranks at or above the required one.
func (t Tier) AtLeast(required Tier) bool {
	return t.Rank() >= required.Rank()
}

// Valid reports whether the tier is one of the known ranks.
func (t Tier) Valid() bool {
	_, ok := tierRanks[t]
	return ok
}

// BillingPeriod determines how long a paid period lasts.
type BillingPeriod string

const (
	BillingMonthly BillingPeriod = "monthly"
	BillingYearly  BillingPeriod = "yearly"
)

// MembershipPlan is a static catalog entry. Plans are read-only reference
// data seeded at startup.
type MembershipPlan struct {
	ID            string          `json:"id"`
	Tier          Tier            `json:"tier"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	BillingPeriod BillingPeriod   `json:"billingPeriod"`
	Features      []string        `json:"features"`
}

// MembershipPayment is an immutable receipt appended to a membership's
// history on each subscribe action.
type MembershipPayment struct {
	ID        string          `json:"id"`
	UserID    string          `json:"userId"`
	PlanID    string          `json:"planId"`
	Amount    decimal.Decimal `json:"amount"`
	Status    string          `json:"status"`
	Reference string          `json:"reference,omitempty"`
	PaidAt    time.Time       `json:"paidAt"`
}

// UserMembership is the single membership record a user holds. It is created
// on first subscribe and updated in place on plan changes; entitlement
// requires both tier rank and a non-expired window.
type UserMembership struct {
	UserID     string              `json:"userId"`
	PlanID     string              `json:"planId"`
	Tier       Tier                `json:"tier"`
	StartDate  time.Time           `json:"startDate"`
	ExpiryDate time.Time           `json:"expiryDate"`
	AutoRenew  bool                `json:"autoRenew"`
	Payments   []MembershipPayment `json:"paymentHistory"`
}

// Clone returns a deep copy including the payment history.
func (m *UserMembership) Clone() UserMembership {
	out := *m
	out.Payments = append([]MembershipPayment(nil), m.Payments...)
	return out
}
