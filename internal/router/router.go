package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"docuextract/internal/config"
	"docuextract/internal/handler"
	"docuextract/internal/middleware"

	_ "docuextract/docs" // registers the generated OpenAPI spec
)

// maxMultipartMemory keeps the largest accepted upload (10 MiB) plus form fields in memory.
const maxMultipartMemory = 12 << 20

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	logger *zap.Logger,
	extractionH *handler.ExtractionHandler,
	formatH *handler.FormatHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()
	r.MaxMultipartMemory = maxMultipartMemory

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	// API docs
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	v1.Use(middleware.StaticToken(cfg.Auth.Token))

	v1.GET("/formats", formatH.List)

	extractions := v1.Group("/extractions")
	extractions.POST("", extractionH.Create)
	extractions.GET("/status", extractionH.Status)

	return r
}
