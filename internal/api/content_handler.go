package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"budokan-backend-go/internal/store"
)

// ContentHandler serves the technique library, training courses and the
// marketing-site content. Listing is public; full entries above the free tier
// require a matching membership.
type ContentHandler struct {
	content     *store.ContentStore
	memberships *store.MembershipStore
}

// NewContentHandler creates a ContentHandler.
func NewContentHandler(content *store.ContentStore, memberships *store.MembershipStore) *ContentHandler {
	return &ContentHandler{content: content, memberships: memberships}
}

// Techniques handles GET /api/v1/techniques.
func (h *ContentHandler) Techniques(c *gin.Context) {
	c.JSON(http.StatusOK, h.content.Techniques())
}

// Technique handles GET /api/v1/techniques/:id. The full entry is gated by
// the technique's minimum tier.
func (h *ContentHandler) Technique(c *gin.Context) {
	technique, err := h.content.TechniqueByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Technique not found"})
		return
	}
	if !h.memberships.HasMembership(callerID(c), technique.MinTier) {
		c.JSON(http.StatusForbidden, ErrorResponse{
			Error:   "Membership tier too low",
			Details: string(technique.MinTier),
		})
		return
	}
	c.JSON(http.StatusOK, technique)
}

// Courses handles GET /api/v1/training.
func (h *ContentHandler) Courses(c *gin.Context) {
	c.JSON(http.StatusOK, h.content.Courses())
}

// Course handles GET /api/v1/training/:id. The full entry is gated by the
// course's minimum tier.
func (h *ContentHandler) Course(c *gin.Context) {
	course, err := h.content.CourseByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Training course not found"})
		return
	}
	if !h.memberships.HasMembership(callerID(c), course.MinTier) {
		c.JSON(http.StatusForbidden, ErrorResponse{
			Error:   "Membership tier too low",
			Details: string(course.MinTier),
		})
		return
	}
	c.JSON(http.StatusOK, course)
}

// Events handles GET /api/v1/events: upcoming events, soonest first.
func (h *ContentHandler) Events(c *gin.Context) {
	c.JSON(http.StatusOK, h.content.UpcomingEvents(time.Now().UTC()))
}

// Testimonials handles GET /api/v1/testimonials.
func (h *ContentHandler) Testimonials(c *gin.Context) {
	c.JSON(http.StatusOK, h.content.Testimonials())
}
