package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"product-service/internal/shared/middleware"
	"product-service/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	router.GET("/health", healthCheckHandler(c))

	setupProductRoutes(router, c)

	return router
}

// ========================================
// PRODUCT ROUTES
// ========================================
func setupProductRoutes(router *gin.Engine, c *container.Container) {
	products := router.Group("/products")
	{
		products.POST("", c.ProductHandler.Create)
		products.GET("", c.ProductHandler.List)
		products.GET("/:id", c.ProductHandler.Get)
		products.PATCH("/:id", c.ProductHandler.Update)
		products.DELETE("/:id", c.ProductHandler.Delete)
	}
}

// ========================================
// HEALTH CHECK
// ========================================
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		checks := gin.H{
			"database": "ok",
			"cache":    "ok",
			"broker":   "ok",
		}
		healthy := true

		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			checks["database"] = err.Error()
			healthy = false
		}
		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			checks["cache"] = err.Error()
			healthy = false
		}
		if err := c.Producer.Ping(ctx.Request.Context()); err != nil {
			checks["broker"] = err.Error()
			healthy = false
		}

		status := http.StatusOK
		if !healthy {
			status = http.StatusServiceUnavailable
		}

		ctx.JSON(status, gin.H{
			"status":  checks,
			"version": c.Config.App.Version,
		})
	}
}
