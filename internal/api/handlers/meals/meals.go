package meals

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"babybites/internal/api/handlers"
	"babybites/internal/api/middleware"
	"babybites/internal/core/meal"
	"babybites/internal/core/mealbook"
	"babybites/internal/models"
	"babybites/internal/pkg/common"
)

// GenerateRequest is one generation call from the form.
type GenerateRequest struct {
	Age         string          `json:"age" binding:"required"`
	Ingredients string          `json:"ingredients" binding:"required"`
	Allergies   map[string]bool `json:"allergies"`
	Preferences []string        `json:"preferences,omitempty"`
}

// GenerateResponse carries the normalized ideas plus presentation flags.
// Degraded marks a blob fallback, distinct from a clean under-count.
type GenerateResponse struct {
	MealIdeas     []meal.Idea `json:"meal_ideas"`
	AllergyNotice string      `json:"allergy_notice,omitempty"`
	UnderCount    bool        `json:"under_count,omitempty"`
	Degraded      bool        `json:"degraded,omitempty"`
}

// SaveRequest is one idea the user chose to keep.
type SaveRequest struct {
	Title       string   `json:"title"`
	Ingredients []string `json:"ingredients,omitempty"`
	Steps       []string `json:"steps,omitempty"`
	Tip         string   `json:"tip,omitempty"`
	RawText     string   `json:"raw_text,omitempty"`
}

// RemoveRequest names one saved meal by id.
type RemoveRequest struct {
	ID string `json:"id" binding:"required"`
}

// SavedMeal is the client view of a stored meal.
type SavedMeal struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Ingredients []string  `json:"ingredients,omitempty"`
	Steps       []string  `json:"steps,omitempty"`
	Tip         string    `json:"tip,omitempty"`
	RawText     string    `json:"raw_text,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Handler serves generation and the saved-meal book.
type Handler struct {
	mealService *meal.Service
	bookService *mealbook.Service
}

func NewHandler(mealService *meal.Service, bookService *mealbook.Service) *Handler {
	return &Handler{
		mealService: mealService,
		bookService: bookService,
	}
}

// HandleGenerate runs the full generation pipeline for one request.
func (h *Handler) HandleGenerate(c *gin.Context) {
	requestID := handlers.RequestID(c)
	claims, ok := middleware.SessionClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "you must be logged in", "code": common.ErrCodeUnauthorized})
		return
	}

	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("Invalid generate request",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	common.LogInfo("Generating meal ideas",
		zap.String("age", req.Age),
		zap.Uint("user_id", claims.UserID),
		zap.String("request_id", requestID),
	)

	start := time.Now()
	result, err := h.mealService.Generate(c.Request.Context(), meal.Request{
		Age:         req.Age,
		Ingredients: req.Ingredients,
		Allergies:   req.Allergies,
		Preferences: req.Preferences,
	})
	common.LogAICall(time.Since(start), err, requestID)
	if err != nil {
		handlers.Error(c, err)
		return
	}

	ideas := result.Ideas
	if ideas == nil {
		ideas = []meal.Idea{}
	}
	c.JSON(http.StatusOK, GenerateResponse{
		MealIdeas:     ideas,
		AllergyNotice: result.AllergyNotice,
		UnderCount:    result.UnderCount,
		Degraded:      result.Degraded,
	})
}

// HandleSave stores one idea in the caller's meal book.
func (h *Handler) HandleSave(c *gin.Context) {
	requestID := handlers.RequestID(c)
	claims, ok := middleware.SessionClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "you must be logged in", "code": common.ErrCodeUnauthorized})
		return
	}

	var req SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	saved, err := h.bookService.Save(claims.UserID, mealbook.SaveInput{
		Title:       req.Title,
		Ingredients: req.Ingredients,
		Steps:       req.Steps,
		Tip:         req.Tip,
		RawText:     req.RawText,
	})
	if err != nil {
		common.LogError("Failed to save meal",
			zap.Error(err),
			zap.Uint("user_id", claims.UserID),
			zap.String("request_id", requestID),
		)
		handlers.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "id": saved.ID})
}

// HandleRemove deletes one saved meal owned by the caller.
func (h *Handler) HandleRemove(c *gin.Context) {
	requestID := handlers.RequestID(c)
	claims, ok := middleware.SessionClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "you must be logged in", "code": common.ErrCodeUnauthorized})
		return
	}

	var req RemoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.bookService.Remove(claims.UserID, req.ID); err != nil {
		common.LogWarn("Failed to remove meal",
			zap.Error(err),
			zap.String("meal_id", req.ID),
			zap.Uint("user_id", claims.UserID),
			zap.String("request_id", requestID),
		)
		handlers.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// HandleSaved lists the caller's meal book, newest first.
func (h *Handler) HandleSaved(c *gin.Context) {
	claims, ok := middleware.SessionClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "you must be logged in", "code": common.ErrCodeUnauthorized})
		return
	}

	stored, err := h.bookService.List(claims.UserID)
	if err != nil {
		handlers.Error(c, err)
		return
	}

	meals := make([]SavedMeal, len(stored))
	for i, m := range stored {
		meals[i] = toSavedMeal(m)
	}
	c.JSON(http.StatusOK, gin.H{"meals": meals})
}

func toSavedMeal(m models.SavedMeal) SavedMeal {
	return SavedMeal{
		ID:          m.ID,
		Title:       m.Title,
		Ingredients: m.Ingredients,
		Steps:       m.Steps,
		Tip:         m.Tip,
		RawText:     m.RawText,
		CreatedAt:   m.CreatedAt,
	}
}
