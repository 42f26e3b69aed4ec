package server

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/mushafhub/mushaf-backend/internal/handlers"
	"github.com/mushafhub/mushaf-backend/internal/logger"
	"github.com/mushafhub/mushaf-backend/internal/middleware"
)

type RouterConfig struct {
	Log              *logger.Logger
	HealthHandler    *handlers.HealthHandler
	MushafHandler    *handlers.MushafHandler
	PageHandler      *handlers.PageHandler
	NarratorHandler  *handlers.NarratorHandler
	WordHandler      *handlers.WordHandler
	VariationHandler *handlers.VariationHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(otelgin.Middleware("mushaf-backend"))
	router.Use(middleware.AttachTraceContext())
	router.Use(middleware.RequestLogger(cfg.Log))

	router.GET("/up", cfg.HealthHandler.Up)

	api := router.Group("/api")
	{
		api.GET("/mushafs", cfg.MushafHandler.Index)
		api.GET("/mushafs/:mushaf_id", cfg.MushafHandler.Show)
		// :id here is the page position within the mushaf
		api.GET("/mushafs/:mushaf_id/pages/:id", cfg.PageHandler.Show)

		api.GET("/narrators", cfg.NarratorHandler.Index)

		api.GET("/words", cfg.WordHandler.Index)
		api.GET("/words/:id", cfg.WordHandler.Show)

		api.GET("/variations", cfg.VariationHandler.Index)
		api.POST("/variations", cfg.VariationHandler.Create)
		api.DELETE("/variations", cfg.VariationHandler.DestroyByKeys)
		api.GET("/variations/:id", cfg.VariationHandler.Show)
		api.DELETE("/variations/:id", cfg.VariationHandler.Destroy)
	}

	return router
}
