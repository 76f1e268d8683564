package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	"bloom/docs"
	"bloom/internal/config"
	"bloom/internal/handler"
	"bloom/internal/middleware"
)

// Handlers groups the HTTP handlers mounted by Setup.
type Handlers struct {
	Assistant   *handler.AssistantHandler
	HealthScore *handler.HealthScoreHandler
	Import      *handler.ImportHandler
	Health      *handler.HealthHandler
}

// Setup configures the Gin engine with all routes and middleware. A nil
// verifier leaves the /bloomLogic routes open.
func Setup(cfg *config.Config, log *zap.Logger, verifier *middleware.TokenVerifier, h Handlers) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(log))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	if cfg.Tracing.Enabled {
		r.Use(otelgin.Middleware(cfg.Tracing.ServiceName))
	}

	// Health checks
	r.GET("/", h.Health.Root)
	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)

	docs.SwaggerInfo.BasePath = "/"
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/bloomLogic")
	api.Use(middleware.Auth(verifier))

	api.POST("/chat", h.Assistant.Chat)
	api.POST("/insights", h.Assistant.Insights)
	api.GET("/geminiResponse", h.Assistant.GeminiResponse)
	api.POST("/healthScore", h.HealthScore.Calculate)

	// Upload routes
	uploads := api.Group("")
	uploads.Use(middleware.BodyLimit(cfg.Server.MaxUploadBytes()))
	uploads.POST("/processFile", h.Assistant.ProcessFile)
	uploads.POST("/importCSV", h.Import.ImportCSV)
	uploads.POST("/importCSV/export", h.Import.Export)

	return r
}
