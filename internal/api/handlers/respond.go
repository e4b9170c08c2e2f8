package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"babybites/internal/pkg/common"
)

// RequestID echoes the inbound request id or mints one.
func RequestID(c *gin.Context) string {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.New().String()
		c.Header("X-Request-ID", requestID)
	}
	return requestID
}

// Error maps a service error onto the response. Validation failures carry
// their message to the client; CustomErrors carry their status and code;
// anything else is a generic 500 with the cause kept server-side.
func Error(c *gin.Context, err error) {
	if common.IsValidationError(err) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	var ce *common.CustomError
	if errors.As(err, &ce) {
		c.JSON(ce.Status, gin.H{
			"error": ce.Message,
			"code":  ce.Code,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "internal server error",
		"code":  common.ErrCodeInternalError,
	})
}
