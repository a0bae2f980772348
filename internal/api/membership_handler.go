package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"budokan-backend-go/internal/metrics"
	"budokan-backend-go/internal/models"
	"budokan-backend-go/internal/store"
)

// MembershipHandler serves the plan catalog and the caller's membership.
type MembershipHandler struct {
	memberships *store.MembershipStore
}

// NewMembershipHandler creates a MembershipHandler.
func NewMembershipHandler(memberships *store.MembershipStore) *MembershipHandler {
	return &MembershipHandler{memberships: memberships}
}

// Plans handles GET /api/v1/membership/plans.
func (h *MembershipHandler) Plans(c *gin.Context) {
	c.JSON(http.StatusOK, h.memberships.Plans())
}

// Subscribe handles POST /api/v1/membership/subscribe.
func (h *MembershipHandler) Subscribe(c *gin.Context) {
	var req models.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	membership, err := h.memberships.Subscribe(c.Request.Context(), callerID(c), req.PlanID, req.Billing)
	if err != nil {
		if errors.Is(err, store.ErrPlanNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Membership plan not found", Details: req.PlanID})
			return
		}
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Payment failed"})
		return
	}
	metrics.Subscriptions.Inc()
	c.JSON(http.StatusCreated, membership)
}

// Cancel handles POST /api/v1/membership/cancel: auto-renew off, access for
// the paid period kept.
func (h *MembershipHandler) Cancel(c *gin.Context) {
	membership, err := h.memberships.Cancel(callerID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "No membership to cancel"})
		return
	}
	c.JSON(http.StatusOK, membership)
}

// Mine handles GET /api/v1/membership.
func (h *MembershipHandler) Mine(c *gin.Context) {
	membership, err := h.memberships.Membership(callerID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "No membership on record"})
		return
	}
	c.JSON(http.StatusOK, membership)
}

// Entitlement handles GET /api/v1/membership/entitlement?tier=premium.
func (h *MembershipHandler) Entitlement(c *gin.Context) {
	tier := models.Tier(c.DefaultQuery("tier", string(models.TierFree)))
	if !tier.Valid() {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Unknown tier", Details: string(tier)})
		return
	}
	c.JSON(http.StatusOK, EntitlementResponse{
		Tier:     tier,
		Entitled: h.memberships.HasMembership(callerID(c), tier),
	})
}
