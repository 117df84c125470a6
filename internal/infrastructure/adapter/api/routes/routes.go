package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/port/core"
	"github.com/amirhossein-jamali/greeting-rewards-bot/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/greeting-rewards-bot/internal/infrastructure/adapter/api/middleware"
)

// SetupRoutes configures all the routes for the bot's HTTP surface.
// metricsHandler may be nil when metrics are disabled.
func SetupRoutes(
	router *gin.Engine,
	healthHandler *handler.HealthHandler,
	webhookHandler *handler.WebhookHandler,
	metricsPath string,
	metricsHandler http.Handler,
) {
	router.GET("/", healthHandler.Index)
	router.GET("/health", healthHandler.Health)
	router.GET("/set_webhook", webhookHandler.SetWebhook)

	if metricsHandler != nil {
		router.GET(metricsPath, gin.WrapH(metricsHandler))
	}

	// POST /{secret}
	router.POST("/:secret", webhookHandler.Receive)
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, observer middleware.RequestObserver) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	if observer != nil {
		router.Use(middleware.Metrics(observer))
	}
}
