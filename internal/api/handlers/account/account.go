package account

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"babybites/internal/api/handlers"
	"babybites/internal/api/middleware"
	"babybites/internal/core/auth"
	"babybites/internal/models"
	"babybites/internal/pkg/common"
)

// SignupRequest is the registration payload.
type SignupRequest struct {
	Email            string `json:"email" binding:"required"`
	Password         string `json:"password" binding:"required"`
	TermsAccepted    bool   `json:"terms_accepted"`
	MarketingConsent bool   `json:"marketing_consent"`
}

// LoginRequest is the credential payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SessionResponse is returned by signup, login and the session probe.
type SessionResponse struct {
	Token string      `json:"token,omitempty"`
	User  UserSummary `json:"user"`
}

// UserSummary is the client-visible slice of an account.
type UserSummary struct {
	ID      uint   `json:"id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin,omitempty"`
}

// Handler serves the account endpoints.
type Handler struct {
	authService *auth.Service
}

func NewHandler(authService *auth.Service) *Handler {
	return &Handler{authService: authService}
}

// HandleSignup registers an account and opens a session.
func (h *Handler) HandleSignup(c *gin.Context) {
	requestID := handlers.RequestID(c)

	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("Invalid signup request",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	token, user, err := h.authService.Signup(auth.SignupInput{
		Email:            req.Email,
		Password:         req.Password,
		TermsAccepted:    req.TermsAccepted,
		MarketingConsent: req.MarketingConsent,
	})
	if err != nil {
		common.LogWarn("Signup rejected",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		handlers.Error(c, err)
		return
	}

	common.LogInfo("Account created",
		zap.Uint("user_id", user.ID),
		zap.String("request_id", requestID),
	)

	c.JSON(http.StatusCreated, sessionResponse(token, user))
}

// HandleLogin checks credentials and opens a session.
func (h *Handler) HandleLogin(c *gin.Context) {
	requestID := handlers.RequestID(c)

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	token, user, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		common.LogWarn("Login failed",
			zap.String("request_id", requestID),
			zap.String("client_ip", c.ClientIP()),
		)
		handlers.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, sessionResponse(token, user))
}

// HandleLogout acknowledges session end. Tokens are stateless, so the client
// discarding its copy is the whole operation.
func (h *Handler) HandleLogout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// HandleSession returns the identity behind the current token, letting the
// client restore its signed-in state after a reload.
func (h *Handler) HandleSession(c *gin.Context) {
	claims, ok := middleware.SessionClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "you must be logged in",
			"code":  common.ErrCodeUnauthorized,
		})
		return
	}

	c.JSON(http.StatusOK, SessionResponse{
		User: UserSummary{
			ID:      claims.UserID,
			Email:   claims.Email,
			IsAdmin: claims.IsAdmin,
		},
	})
}

func sessionResponse(token string, user *models.User) SessionResponse {
	return SessionResponse{
		Token: token,
		User: UserSummary{
			ID:      user.ID,
			Email:   user.Email,
			IsAdmin: user.IsAdmin,
		},
	}
}
