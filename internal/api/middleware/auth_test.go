package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"babybites/internal/core/auth"
	"babybites/internal/infrastructure/config"
	"babybites/internal/models"
)

func newGateFixture(t *testing.T) (*gin.Engine, *auth.Service, *int) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	authSvc := auth.NewService(&config.Config{
		Auth: config.AuthConfig{JWTSecret: "test-secret", TokenTTL: time.Hour},
	}, db)

	reached := 0
	router := gin.New()
	router.POST("/protected", RequireAuth(authSvc), func(c *gin.Context) {
		reached++
		claims, ok := SessionClaims(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"user_id": claims.UserID})
	})
	router.GET("/admin", RequireAuth(authSvc), RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router, authSvc, &reached
}

func TestRequireAuthRejectsMissingToken(t *testing.T) {
	router, _, reached := newGateFixture(t)

	for _, header := range []string{"", "Bearer ", "Bearer garbage", "Basic abc"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/protected", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}

	// the handler behind the gate never ran
	assert.Zero(t, *reached)
}

func TestRequireAuthPassesValidToken(t *testing.T) {
	router, authSvc, reached := newGateFixture(t)

	token, _, err := authSvc.Signup(auth.SignupInput{
		Email:         "parent@example.com",
		Password:      "longenough",
		TermsAccepted: true,
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, *reached)
}

func TestRequireAdminRejectsRegularUser(t *testing.T) {
	router, authSvc, _ := newGateFixture(t)

	token, _, err := authSvc.Signup(auth.SignupInput{
		Email:         "parent@example.com",
		Password:      "longenough",
		TermsAccepted: true,
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
