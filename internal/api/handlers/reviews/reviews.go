package reviews

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"babybites/internal/api/handlers"
	"babybites/internal/core/review"
	"babybites/internal/pkg/common"
)

// CreateRequest is one submitted review.
type CreateRequest struct {
	Name    string `json:"name"`
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

// Review is the client view of a stored review.
type Review struct {
	Name      string    `json:"name"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Handler serves the review endpoints.
type Handler struct {
	reviewService *review.Service
}

func NewHandler(reviewService *review.Service) *Handler {
	return &Handler{reviewService: reviewService}
}

// HandleCreate stores a review.
func (h *Handler) HandleCreate(c *gin.Context) {
	requestID := handlers.RequestID(c)

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	created, err := h.reviewService.Create(review.CreateInput{
		Name:    req.Name,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		common.LogWarn("Review rejected",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		handlers.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, Review{
		Name:      created.Name,
		Rating:    created.Rating,
		Comment:   created.Comment,
		CreatedAt: created.CreatedAt,
	})
}

// HandleList returns all reviews with the average rating.
func (h *Handler) HandleList(c *gin.Context) {
	stored, average, err := h.reviewService.List()
	if err != nil {
		handlers.Error(c, err)
		return
	}

	reviews := make([]Review, len(stored))
	for i, r := range stored {
		reviews[i] = Review{
			Name:      r.Name,
			Rating:    r.Rating,
			Comment:   r.Comment,
			CreatedAt: r.CreatedAt,
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"reviews":        reviews,
		"average_rating": average,
	})
}
