package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"todoweb/internal/adapter/http/handler"
	"todoweb/internal/adapter/http/middleware"
	"todoweb/internal/adapter/telemetry"
	"todoweb/pkg/config"
)

type HandlersConfig struct {
	TodoHandler *handler.TodoHandler
}

func SetupRouter(handlers HandlersConfig, metrics *telemetry.AppMetrics, logger zerolog.Logger, cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(metrics.GinMiddleware())

	if cfg.RateLimitEnabled {
		router.Use(middleware.NewRateLimiter(logger, metrics).RateLimitMiddleware())
	}

	router.Use(middleware.CSRF())
	router.LoadHTMLGlob(cfg.TemplatesGlob)

	setupTodoRoutes(router, handlers.TodoHandler)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	return router
}

func setupTodoRoutes(router *gin.Engine, todoHandler *handler.TodoHandler) {
	router.GET("/", todoHandler.Home)

	todos := router.Group("/todos")
	{
		todos.GET("/", todoHandler.List)
		todos.GET("/new/", todoHandler.NewForm)
		todos.POST("/new/", todoHandler.Create)
		todos.GET("/:id/edit/", todoHandler.EditForm)
		todos.POST("/:id/edit/", todoHandler.Update)
		todos.GET("/:id/delete/", todoHandler.ConfirmDelete)
		todos.POST("/:id/delete/", todoHandler.Delete)
		todos.POST("/:id/toggle-complete/", todoHandler.ToggleComplete)
		todos.GET("/:id/toggle-complete/", todoHandler.ToggleCompleteRedirect)
	}
}
