package consents

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"babybites/internal/api/handlers"
	"babybites/internal/api/middleware"
	"babybites/internal/core/consent"
	"babybites/internal/pkg/common"
)

// SetRequest is an explicit accept/reject decision.
type SetRequest struct {
	Analytics   bool `json:"analytics"`
	Advertising bool `json:"advertising"`
}

// Handler serves the cookie-consent endpoints.
type Handler struct {
	store *consent.Store
}

func NewHandler(store *consent.Store) *Handler {
	return &Handler{store: store}
}

// HandleGet returns the stored decision. "decided" false with a null decision
// tells the client to show the consent prompt.
func (h *Handler) HandleGet(c *gin.Context) {
	claims, ok := middleware.SessionClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "you must be logged in", "code": common.ErrCodeUnauthorized})
		return
	}

	decision, err := h.store.Get(claims.UserID)
	if err != nil {
		handlers.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"decided":  decision != nil,
		"decision": decision,
	})
}

// HandleSet records an accept/reject decision.
func (h *Handler) HandleSet(c *gin.Context) {
	claims, ok := middleware.SessionClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "you must be logged in", "code": common.ErrCodeUnauthorized})
		return
	}

	var req SetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	err := h.store.Set(claims.UserID, consent.Decision{
		Analytics:   req.Analytics,
		Advertising: req.Advertising,
	})
	if err != nil {
		handlers.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// HandleReset clears the decision so the client re-arms the prompt.
func (h *Handler) HandleReset(c *gin.Context) {
	claims, ok := middleware.SessionClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "you must be logged in", "code": common.ErrCodeUnauthorized})
		return
	}

	if err := h.store.Reset(claims.UserID); err != nil {
		handlers.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
