package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "sellersuite/docs"
	"sellersuite/internal/config"
	"sellersuite/internal/handler"
	"sellersuite/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	healthH *handler.HealthHandler,
	uploadH *handler.UploadHandler,
	reportH *handler.ReportHandler,
) *gin.Engine {
	r := gin.New()

	// Each multipart upload is buffered in memory up to the configured limit.
	r.MaxMultipartMemory = cfg.Storage.MaxFileSize()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	api := r.Group("/api")
	api.GET("/health", healthH.Status)
	api.POST("/upload", uploadH.Upload)
	api.POST("/generate-csv", reportH.GenerateCSV)
	api.POST("/generate-b2b", reportH.GenerateB2B)
	api.GET("/download/:filename", reportH.Download)

	if !cfg.Server.IsProduction() {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
