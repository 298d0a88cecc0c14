package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/scorpaust/conex-blog/internal/shared/middleware"
	"github.com/scorpaust/conex-blog/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS())

	// Mutations require a bearer token only when a JWT secret is configured.
	protect := func(handlers ...gin.HandlerFunc) []gin.HandlerFunc {
		if c.Config.AuthEnabled() {
			return append([]gin.HandlerFunc{middleware.Auth(c.JWTManager)}, handlers...)
		}
		return handlers
	}

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		authors := v1.Group("/authors")
		{
			authors.GET("", c.AuthorHandler.List)
			authors.GET("/:id", c.AuthorHandler.GetByID)
			authors.POST("", protect(c.AuthorHandler.Create)...)
			authors.PUT("/:id", protect(c.AuthorHandler.Update)...)
			authors.DELETE("/:id", protect(c.AuthorHandler.Delete)...)
		}

		posts := v1.Group("/posts")
		{
			posts.GET("", c.PostHandler.List)
			posts.GET("/:id", c.PostHandler.GetByID)
			posts.GET("/slug/:slug", c.PostHandler.GetBySlug)
			posts.POST("", protect(c.PostHandler.Create)...)
			posts.POST("/:id/publish", protect(c.PostHandler.Publish)...)
			posts.POST("/:id/unpublish", protect(c.PostHandler.Unpublish)...)
		}
	}

	return router
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := gin.H{
			"status":  "ok",
			"app":     c.Config.App.Name,
			"storage": c.Config.App.Storage,
		}

		if c.DB != nil {
			if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
				status["status"] = "degraded"
				status["database"] = err.Error()
			} else {
				status["database"] = "ok"
			}
		}
		if c.Cache != nil {
			if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
				status["status"] = "degraded"
				status["cache"] = err.Error()
			} else {
				status["cache"] = "ok"
			}
		}

		code := http.StatusOK
		if status["status"] != "ok" {
			code = http.StatusServiceUnavailable
		}
		ctx.JSON(code, status)
	}
}
