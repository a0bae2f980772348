package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"budokan-backend-go/internal/metrics"
	"budokan-backend-go/internal/middleware"
	"budokan-backend-go/internal/models"
	"budokan-backend-go/internal/store"
	"budokan-backend-go/internal/token"
)

// AuthHandler handles registration, login and logout.
type AuthHandler struct {
	identity *store.IdentityStore
	tokens   *token.Manager
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(identity *store.IdentityStore, tokens *token.Manager) *AuthHandler {
	return &AuthHandler{identity: identity, tokens: tokens}
}

// Register handles POST /api/v1/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	user, ok := h.identity.Register(c.Request.Context(), req.Username, req.Email, req.Password, req.UserType)
	if !ok {
		// The store's boolean contract carries no detail; the only
		// caller-correctable cause is a taken username.
		c.JSON(http.StatusConflict, ErrorResponse{Error: "Username is already taken"})
		return
	}
	metrics.Registrations.Inc()

	signed, err := h.tokens.Issue(user.ID, user.Username, string(user.Type))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to issue token"})
		return
	}
	c.JSON(http.StatusCreated, AuthResponse{Token: signed, User: user})
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	user, ok := h.identity.Login(c.Request.Context(), req.Username, req.Password)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid username or password"})
		return
	}
	metrics.Logins.Inc()

	signed, err := h.tokens.Issue(user.ID, user.Username, string(user.Type))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to issue token"})
		return
	}
	c.JSON(http.StatusOK, AuthResponse{Token: signed, User: user})
}

// Logout handles POST /api/v1/auth/logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.identity.Logout(c.Request.Context())
	c.JSON(http.StatusOK, SuccessResponse{Message: "Logged out"})
}

func callerID(c *gin.Context) string {
	return c.GetString(middleware.ContextUserID)
}
