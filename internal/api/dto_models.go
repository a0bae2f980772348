package api

import (
	"github.com/shopspring/decimal"

	"budokan-backend-go/internal/models"
)

// ErrorResponse is a generic structure for returning errors via API.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// SuccessResponse is a generic structure for simple success messages.
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// AuthResponse is returned on login and registration.
type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// CartResponse bundles the cart lines with their computed total.
type CartResponse struct {
	Items []models.CartItem `json:"items"`
	Total decimal.Decimal   `json:"total"`
}

// EntitlementResponse answers a tier-gating check.
type EntitlementResponse struct {
	Tier     models.Tier `json:"tier"`
	Entitled bool        `json:"entitled"`
}
