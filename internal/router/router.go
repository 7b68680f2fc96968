package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/quizdeck/quiz-backend/internal/config"
	"github.com/quizdeck/quiz-backend/internal/handler"
	"github.com/quizdeck/quiz-backend/internal/middleware"
	"github.com/quizdeck/quiz-backend/internal/response"
	"github.com/quizdeck/quiz-backend/internal/service"
	"github.com/quizdeck/quiz-backend/internal/session"
	"github.com/rs/zerolog"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth *handler.AuthHandler
	Quiz *handler.QuizHandler
}

// SetupRouter configures the Gin engine with global middleware and routes.
// The dot-segment route names mirror the public API contract.
func SetupRouter(
	cfg *config.Config,
	log zerolog.Logger,
	sessions session.Store,
	adminService *service.AdminService,
	handlers *Handlers,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.New()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
		corsConfig.AllowCredentials = true
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	router.Use(response.RequestIDMiddleware())
	router.Use(response.Recovery(log))

	// Identity resolution runs on every route; enforcement is per-route.
	router.Use(middleware.SessionAuth(cfg, sessions, adminService))

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.OK(c, gin.H{"status": "ok"})
	})

	// ─── Public ────────────────────────────────────────────────────────
	router.POST("/admin.login", handlers.Auth.Login)

	// ─── Session required ──────────────────────────────────────────────
	authed := router.Group("", middleware.RequireAdmin())
	{
		authed.GET("/admin.current", handlers.Auth.Current)
		authed.POST("/admin.logout", handlers.Auth.Logout)
		authed.POST("/quiz.create_theme", handlers.Quiz.CreateTheme)
		authed.GET("/quiz.list_themes", handlers.Quiz.ListThemes)
		authed.POST("/quiz.create_question", handlers.Quiz.CreateQuestion)
		authed.GET("/quiz.list_questions", handlers.Quiz.ListQuestions)
	}

	return router
}
