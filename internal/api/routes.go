package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"cvlab/internal/api/middleware"
	"cvlab/internal/auth"
	"cvlab/internal/config"
	"cvlab/internal/pdf"
	"cvlab/internal/store"
)

// RegisterRoutes wires every handler into the engine.
func RegisterRoutes(
	router *gin.Engine,
	cfg *config.Config,
	db *gorm.DB,
	documentStore store.Store,
	authService *auth.Service,
	loginTokens *auth.LoginTokenService,
	redisClient *redis.Client,
	asynqClient TaskEnqueuer,
	storageClient ObjectStorage,
	generator pdf.Generator,
	sender LinkSender,
	logger *slog.Logger,
) {
	revocations := auth.NewRevocationList(redisClient)

	authHandler := NewAuthHandler(
		db,
		authService,
		loginTokens,
		revocations,
		redisClient,
		sender,
		logger,
		cfg.API.PublicBaseURL,
		cfg.Auth.LoginRatePerHour,
		cfg.Auth.ExposeLoginLink,
		cfg.API.CookieDomain,
	)
	resumeHandler := NewResumeHandler(documentStore, storageClient, asynqClient, cfg.Editor.MaxResumes)
	exportHandler := NewExportHandler(documentStore, generator, storageClient)
	editorWs := NewEditorWsHandler(documentStore, redisClient, authService, asynqClient, logger, cfg.Editor.AutosaveDebounce, cfg.API.AllowedOrigins)
	pageHandler := NewPageHandler(documentStore)
	catalogHandler := NewCatalogHandler()

	authMiddleware := middleware.AuthMiddleware(authService)
	pageGuard := middleware.PageGuard(authService, revocations)
	sessionGuard := middleware.SessionGuard(authService, revocations)

	router.GET("/login", pageHandler.Login)
	router.GET("/builder/:id", pageGuard, pageHandler.Builder)
	router.GET("/export/:id", sessionGuard, exportHandler.Export)

	v1 := router.Group("/v1")
	{
		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/login", authHandler.Login)
			authGroup.GET("/callback", authHandler.Callback)
			authGroup.POST("/refresh", authHandler.Refresh)
			authGroup.POST("/logout", authHandler.Logout)
		}

		resumeGroup := v1.Group("/resumes")
		resumeGroup.Use(authMiddleware)
		{
			resumeGroup.POST("", resumeHandler.CreateResume)
			resumeGroup.GET("", resumeHandler.ListResumes)
			resumeGroup.GET("/:id", resumeHandler.GetResume)
			resumeGroup.PUT("/:id", resumeHandler.UpdateResume)
			resumeGroup.DELETE("/:id", resumeHandler.DeleteResume)
			resumeGroup.GET("/:id/preview", resumeHandler.Preview)
			resumeGroup.GET("/:id/download-link", resumeHandler.GetDownloadLink)
		}

		v1.GET("/templates", catalogHandler.ListTemplates)
		v1.GET("/fonts", catalogHandler.ListFonts)

		v1.GET("/ws/editor/:id", editorWs.HandleConnection)
	}
}
