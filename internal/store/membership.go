package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"budokan-backend-go/internal/models"
	"budokan-backend-go/internal/payment"
)

var (
	// ErrPlanNotFound is returned when a plan id is not in the catalog.
	ErrPlanNotFound = errors.New("membership plan not found")
	// ErrMembershipNotFound is returned when a user has no membership
	// record.
	ErrMembershipNotFound = errors.New("membership not found")
)

// MembershipStore owns the plan catalog, per-user membership records and
// their payment histories. One membership record exists per user; it is
// created on first subscribe and updated in place afterwards.
type MembershipStore struct {
	mu          sync.RWMutex
	plans       []models.MembershipPlan
	memberships map[string]*models.UserMembership
	provider    payment.Provider
	now         func() time.Time
}

// NewMembershipStore creates the store with the static plan catalog.
func NewMembershipStore(provider payment.Provider, plans []models.MembershipPlan) *MembershipStore {
	return &MembershipStore{
		plans:       append([]models.MembershipPlan(nil), plans...),
		memberships: make(map[string]*models.UserMembership),
		provider:    provider,
		now:         time.Now,
	}
}

// Plans returns a copy of the plan catalog.
func (s *MembershipStore) Plans() []models.MembershipPlan {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.MembershipPlan(nil), s.plans...)
}

// PlanByID looks up a catalog entry.
func (s *MembershipStore) PlanByID(id string) (models.MembershipPlan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.plans {
		if p.ID == id {
			return p, nil
		}
	}
	return models.MembershipPlan{}, ErrPlanNotFound
}

// Subscribe charges the plan price through the payment provider, appends the
// receipt to the user's payment history and upserts the membership record.
// The expiry window follows the plan's billing period and auto-renew is
// switched on.
func (s *MembershipStore) Subscribe(ctx context.Context, userID, planID string, billing models.BillingInfo) (models.UserMembership, error) {
	plan, err := s.PlanByID(planID)
	if err != nil {
		return models.UserMembership{}, fmt.Errorf("%w: %s", ErrPlanNotFound, planID)
	}

	receipt, err := s.provider.Charge(ctx, userID, plan.Price, fmt.Sprintf("%s membership (%s)", plan.Name, plan.BillingPeriod))
	if err != nil {
		return models.UserMembership{}, fmt.Errorf("charge plan %s: %w", planID, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UTC()
	record := models.MembershipPayment{
		ID:        uuid.NewString(),
		UserID:    userID,
		PlanID:    planID,
		Amount:    receipt.Amount,
		Status:    receipt.Status,
		Reference: receipt.Reference,
		PaidAt:    receipt.PaidAt,
	}

	membership, ok := s.memberships[userID]
	if !ok {
		membership = &models.UserMembership{UserID: userID}
		s.memberships[userID] = membership
	}
	membership.PlanID = planID
	membership.Tier = plan.Tier
	membership.StartDate = now
	membership.ExpiryDate = expiryFor(plan.BillingPeriod, now)
	membership.AutoRenew = true
	membership.Payments = append(membership.Payments, record)

	return membership.Clone(), nil
}

// Cancel switches auto-renew off. Access for the already-paid period is
// kept.
func (s *MembershipStore) Cancel(userID string) (models.UserMembership, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	membership, ok := s.memberships[userID]
	if !ok {
		return models.UserMembership{}, ErrMembershipNotFound
	}
	membership.AutoRenew = false
	return membership.Clone(), nil
}

// Membership returns a copy of the user's record.
func (s *MembershipStore) Membership(userID string) (models.UserMembership, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	membership, ok := s.memberships[userID]
	if !ok {
		return models.UserMembership{}, ErrMembershipNotFound
	}
	return membership.Clone(), nil
}

// HasMembership reports entitlement: a user with no record holds only the
// free tier; otherwise the tier must rank at or above the required one and
// the expiry must not have passed. Auto-renew has no effect on an already
// expired record.
func (s *MembershipStore) HasMembership(userID string, required models.Tier) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	membership, ok := s.memberships[userID]
	if !ok {
		return required == models.TierFree
	}
	if !membership.Tier.AtLeast(required) {
		return false
	}
	return !s.now().UTC().After(membership.ExpiryDate)
}

func expiryFor(period models.BillingPeriod, from time.Time) time.Time {
	if period == models.BillingMonthly {
		return from.AddDate(0, 1, 0)
	}
	return from.AddDate(1, 0, 0)
}
