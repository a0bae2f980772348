package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"budokan-backend-go/internal/metrics"
	"budokan-backend-go/internal/models"
	"budokan-backend-go/internal/store"
)

// SessionHandler serves the help-session request workflow: students file
// requests, teachers decide them.
type SessionHandler struct {
	sessions *store.SessionRequestStore
	content  *store.ContentStore
}

// NewSessionHandler creates a SessionHandler.
func NewSessionHandler(sessions *store.SessionRequestStore, content *store.ContentStore) *SessionHandler {
	return &SessionHandler{sessions: sessions, content: content}
}

// Create handles POST /api/v1/sessions.
func (h *SessionHandler) Create(c *gin.Context) {
	var req models.SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}
	if !h.itemExists(req.Type, req.ItemID) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Requested item not found", Details: req.ItemID})
		return
	}

	session := h.sessions.RequestHelp(callerID(c), req)
	metrics.SessionRequests.Inc()
	c.JSON(http.StatusCreated, session)
}

// Mine handles GET /api/v1/sessions: the caller's requests, newest first.
func (h *SessionHandler) Mine(c *gin.Context) {
	c.JSON(http.StatusOK, h.sessions.StudentSessions(callerID(c)))
}

// Get handles GET /api/v1/sessions/:id.
func (h *SessionHandler) Get(c *gin.Context) {
	session, err := h.sessions.SessionByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Session not found"})
		return
	}
	c.JSON(http.StatusOK, session)
}

// Pending handles GET /api/v1/sessions/pending (teachers only).
func (h *SessionHandler) Pending(c *gin.Context) {
	c.JSON(http.StatusOK, h.sessions.PendingSessions())
}

// Approve handles POST /api/v1/sessions/:id/approve (teachers only).
func (h *SessionHandler) Approve(c *gin.Context) {
	var req models.ApproveSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}
	session, err := h.sessions.Approve(c.Param("id"), callerID(c), req.Note)
	if err != nil {
		writeSessionError(c, err)
		return
	}
	metrics.SessionDecisions.WithLabelValues("approved").Inc()
	c.JSON(http.StatusOK, session)
}

// Reject handles POST /api/v1/sessions/:id/reject (teachers only).
func (h *SessionHandler) Reject(c *gin.Context) {
	var req models.RejectSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}
	session, err := h.sessions.Reject(c.Param("id"), req.Note)
	if err != nil {
		writeSessionError(c, err)
		return
	}
	metrics.SessionDecisions.WithLabelValues("rejected").Inc()
	c.JSON(http.StatusOK, session)
}

// Queue handles GET /api/v1/sessions/queue (teachers only): approved sessions
// by soonest preferred date.
func (h *SessionHandler) Queue(c *gin.Context) {
	c.JSON(http.StatusOK, h.sessions.TeacherQueue(callerID(c)))
}

func (h *SessionHandler) itemExists(sessionType models.SessionType, itemID string) bool {
	if sessionType == models.SessionTraining {
		_, err := h.content.CourseByID(itemID)
		return err == nil
	}
	_, err := h.content.TechniqueByID(itemID)
	return err == nil
}

func writeSessionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrSessionClosed):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "Session already decided"})
	case errors.Is(err, store.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Session not found"})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Session operation failed"})
	}
}
