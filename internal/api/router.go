package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	accountHandler "babybites/internal/api/handlers/account"
	adminHandler "babybites/internal/api/handlers/admin"
	consentHandler "babybites/internal/api/handlers/consents"
	"babybites/internal/api/handlers/health"
	mealsHandler "babybites/internal/api/handlers/meals"
	reviewsHandler "babybites/internal/api/handlers/reviews"
	"babybites/internal/api/middleware"
	"babybites/internal/core/ai/cache"
	aiService "babybites/internal/core/ai/service"
	"babybites/internal/core/auth"
	"babybites/internal/core/consent"
	"babybites/internal/core/meal"
	"babybites/internal/core/mealbook"
	"babybites/internal/core/review"
	"babybites/internal/infrastructure/config"
	"babybites/internal/pkg/common"
)

const (
	timeoutDuration = 120 * time.Second
	// generous for a JSON API; no image uploads here
	maxBodySize = 1 << 20
)

// SetupRouter wires middleware, services and routes into a gin engine.
func SetupRouter(cfg *config.Config, db *gorm.DB, cacheManager *cache.Manager) (*gin.Engine, error) {
	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(requestid.New())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(middleware.BodySizeLimit(maxBodySize))

	common.LogInfo("Initializing services",
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
		zap.String("model", cfg.OpenAI.Model),
		zap.String("response_format", cfg.AI.ResponseFormat),
		zap.Duration("timeout", timeoutDuration),
	)

	completionSvc, err := aiService.NewService(cfg, cacheManager)
	if err != nil || completionSvc == nil {
		common.LogError("Failed to initialize AI service", zap.Error(err))
		return nil, fmt.Errorf("failed to initialize AI service: %w", err)
	}

	mealSvc := meal.NewService(cfg, completionSvc)
	bookSvc := mealbook.NewService(db)
	authSvc := auth.NewService(cfg, db)
	reviewSvc := review.NewService(db)
	consentStore := consent.NewStore(db)

	// Per-request deadline; a stuck completion call must not pin the
	// connection forever.
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)

		c.Next()

		if ctx.Err() == context.DeadlineExceeded {
			common.LogError("Request timeout",
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", c.GetHeader("X-Request-ID")),
				zap.Duration("timeout", timeoutDuration),
			)
			c.JSON(http.StatusGatewayTimeout, gin.H{
				"error": "Request timeout",
				"code":  "REQUEST_TIMEOUT",
				"details": gin.H{
					"timeout": timeoutDuration.String(),
				},
			})
			c.Abort()
			return
		}
	})

	router.GET("/health", health.HealthCheck(cfg, cacheManager))
	router.GET("/ready", health.ReadinessCheck(db))
	router.GET("/live", health.LivenessCheck)

	api := router.Group("/api/v1")
	{
		accounts := accountHandler.NewHandler(authSvc)
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/signup", accounts.HandleSignup)
			authGroup.POST("/login", accounts.HandleLogin)
			authGroup.POST("/logout", middleware.RequireAuth(authSvc), accounts.HandleLogout)
			authGroup.GET("/session", middleware.RequireAuth(authSvc), accounts.HandleSession)
		}

		mealsH := mealsHandler.NewHandler(mealSvc, bookSvc)
		mealGroup := api.Group("/meals")
		mealGroup.Use(middleware.RequireAuth(authSvc))
		{
			// generation burns a metered upstream call; rate-limit and
			// dedup apply only here
			generateChain := []gin.HandlerFunc{middleware.Deduplication(cfg), mealsH.HandleGenerate}
			if cfg.RateLimit.Enabled {
				generateChain = append(
					[]gin.HandlerFunc{middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window)},
					generateChain...,
				)
			}
			mealGroup.POST("/generate", generateChain...)
			mealGroup.POST("/save", mealsH.HandleSave)
			mealGroup.POST("/remove", mealsH.HandleRemove)
			mealGroup.GET("/saved", mealsH.HandleSaved)
		}

		// reviews are open to visitors, no session required
		reviewsH := reviewsHandler.NewHandler(reviewSvc)
		reviewGroup := api.Group("/reviews")
		{
			reviewGroup.GET("", reviewsH.HandleList)
			reviewGroup.POST("", reviewsH.HandleCreate)
		}

		consentH := consentHandler.NewHandler(consentStore)
		consentGroup := api.Group("/consent")
		consentGroup.Use(middleware.RequireAuth(authSvc))
		{
			consentGroup.GET("", consentH.HandleGet)
			consentGroup.PUT("", consentH.HandleSet)
			consentGroup.DELETE("", consentH.HandleReset)
		}

		adminH := adminHandler.NewHandler(db)
		adminGroup := api.Group("/admin")
		adminGroup.Use(middleware.RequireAuth(authSvc), middleware.RequireAdmin())
		{
			adminGroup.GET("/marketing-emails", adminH.HandleMarketingEmails)
		}
	}

	common.LogInfo("Router setup completed successfully",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
		zap.Duration("timeout", timeoutDuration),
		zap.Int64("max_body_size", maxBodySize),
	)

	return router, nil
}
