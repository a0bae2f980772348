package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"budokan-backend-go/internal/models"
	"budokan-backend-go/internal/token"
)

// ErrorResponse mirrors the API error shape. Defined locally to avoid an
// import cycle with internal/api.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// Context keys populated by VerifyToken.
const (
	ContextUserID   = "userID"
	ContextUsername = "username"
	ContextUserType = "userType"
)

// AuthMiddleware provides Gin middleware for bearer-token authentication.
type AuthMiddleware struct {
	tokens *token.Manager
}

// NewAuthMiddleware creates an AuthMiddleware. It panics on a nil token
// manager, which is a setup error.
func NewAuthMiddleware(tokens *token.Manager) *AuthMiddleware {
	if tokens == nil {
		panic("token manager is not initialized for AuthMiddleware")
	}
	return &AuthMiddleware{tokens: tokens}
}

// VerifyToken validates the Authorization header and sets the caller's
// identity in the Gin context.
func (m *AuthMiddleware) VerifyToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Authorization header is required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Authorization header format must be 'Bearer {token}'"})
			return
		}

		claims, err := m.tokens.Verify(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid or expired authentication token"})
			return
		}

		c.Set(ContextUserID, claims.Subject)
		c.Set(ContextUsername, claims.Username)
		c.Set(ContextUserType, claims.UserType)
		c.Next()
	}
}

// RequireTeacher aborts with 403 unless the authenticated caller is a
// teacher. It must run after VerifyToken.
func (m *AuthMiddleware) RequireTeacher() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextUserType) != string(models.UserTypeTeacher) {
			c.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{Error: "Teacher account required"})
			return
		}
		c.Next()
	}
}
