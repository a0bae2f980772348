package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterRequest represents the request body for creating a new account.
type RegisterRequest struct {
	Username string   `json:"username" binding:"required"`
	Email    string   `json:"email" binding:"required,email"`
	Password string   `json:"password" binding:"required,min=6"`
	UserType UserType `json:"userType" binding:"required,oneof=student teacher"`
}

// LoginRequest represents the request body for signing in.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ProgressRequest records completion of a technique and/or a training
// course. At least one id must be provided.
type ProgressRequest struct {
	TechniqueID string `json:"techniqueId,omitempty"`
	TrainingID  string `json:"trainingId,omitempty"`
}

// CreateProductRequest represents the request body for adding a marketplace
// item to the teacher's catalog.
type CreateProductRequest struct {
	Name    string          `json:"name" binding:"required"`
	Price   decimal.Decimal `json:"price" binding:"required"`
	Type    ProductType     `json:"type" binding:"required,oneof=painting weapon tool equipment"`
	InStock bool            `json:"inStock"`
	Digital bool            `json:"isDigital"`
}

// UpdateProductRequest represents the request body for editing a product.
// Pointers distinguish omitted fields from zero values.
type UpdateProductRequest struct {
	Name    *string          `json:"name,omitempty"`
	Price   *decimal.Decimal `json:"price,omitempty"`
	Type    *ProductType     `json:"type,omitempty"`
	InStock *bool            `json:"inStock,omitempty"`
	Digital *bool            `json:"isDigital,omitempty"`
}

// AddToCartRequest represents the request body for adding a product to the
// caller's cart.
type AddToCartRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// UpdateQuantityRequest sets the quantity of a cart line. Zero or negative
// removes the line.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CheckoutRequest represents the request body for turning the cart into an
// order.
type CheckoutRequest struct {
	Billing BillingInfo `json:"billingInfo" binding:"required"`
}

// SubscribeRequest represents the request body for subscribing to a
// membership plan.
type SubscribeRequest struct {
	PlanID  string      `json:"planId" binding:"required"`
	Billing BillingInfo `json:"billingInfo" binding:"required"`
}

// SessionRequest represents the request body for asking a teacher for a
// help session.
type SessionRequest struct {
	Type          SessionType `json:"type" binding:"required,oneof=technique training"`
	ItemID        string      `json:"itemId" binding:"required"`
	Message       string      `json:"message,omitempty"`
	PreferredDate time.Time   `json:"preferredDate" binding:"required"`
	PreferredTime string      `json:"preferredTime,omitempty"`
}

// ApproveSessionRequest represents the request body for approving a pending
// session.
type ApproveSessionRequest struct {
	Note string `json:"note,omitempty"`
}

// RejectSessionRequest represents the request body for rejecting a pending
// session.
type RejectSessionRequest struct {
	Note string `json:"note,omitempty"`
}
