package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"babybites/internal/api/handlers"
	"babybites/internal/models"
)

// Handler serves admin-only endpoints.
type Handler struct {
	db *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

// HandleMarketingEmails lists the addresses of accounts that opted into
// marketing mail.
func (h *Handler) HandleMarketingEmails(c *gin.Context) {
	var emails []string
	err := h.db.Model(&models.User{}).
		Where("marketing_consent = ?", true).
		Order("email ASC").
		Pluck("email", &emails).Error
	if err != nil {
		handlers.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"emails": emails,
		"count":  len(emails),
	})
}
