package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"budokan-backend-go/internal/models"
	"budokan-backend-go/internal/store"
)

// UserHandler serves the authenticated user's profile and training progress.
type UserHandler struct {
	identity *store.IdentityStore
	content  *store.ContentStore
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(identity *store.IdentityStore, content *store.ContentStore) *UserHandler {
	return &UserHandler{identity: identity, content: content}
}

// Me handles GET /api/v1/users/me.
func (h *UserHandler) Me(c *gin.Context) {
	user, err := h.identity.UserByID(callerID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateProgress handles POST /api/v1/users/me/progress. Completed ids must
// reference existing techniques or courses.
func (h *UserHandler) UpdateProgress(c *gin.Context) {
	var req models.ProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}
	if req.TechniqueID == "" && req.TrainingID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Provide a technique id or a training id"})
		return
	}

	if req.TechniqueID != "" {
		if _, err := h.content.TechniqueByID(req.TechniqueID); err != nil {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Technique not found", Details: req.TechniqueID})
			return
		}
	}
	if req.TrainingID != "" {
		if _, err := h.content.CourseByID(req.TrainingID); err != nil {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Training course not found", Details: req.TrainingID})
			return
		}
	}

	user, err := h.identity.UpdateProgress(c.Request.Context(), callerID(c), req.TechniqueID, req.TrainingID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update progress"})
		return
	}
	c.JSON(http.StatusOK, user)
}
