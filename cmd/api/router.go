package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lilfrek386-a11y/library/internal/shared/middleware"
	"github.com/lilfrek386-a11y/library/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"message": "Hello"})
	})
	router.GET("/health", healthCheckHandler(c))

	setupAuthorRoutes(router, c)
	setupBookRoutes(router, c)

	return router
}

func setupAuthorRoutes(router *gin.Engine, c *container.Container) {
	ns := c.Config.Cache.Namespaces
	ttl := c.Config.Cache.TTL

	authors := router.Group("/authors")
	{
		authors.GET("/:id", middleware.CacheResponse(middleware.CacheOptions{
			Cache:        c.Cache,
			Keys:         c.KeyBuilder,
			Namespace:    ns.Author,
			TTL:          ttl,
			ElementParam: "id",
		}), c.AuthorHandler.GetByID)

		authors.GET("/", middleware.CacheResponse(middleware.CacheOptions{
			Cache:     c.Cache,
			Keys:      c.KeyBuilder,
			Namespace: ns.AuthorsList,
			TTL:       ttl,
		}), c.AuthorHandler.GetAll)

		authors.POST("/", c.AuthorHandler.Create)
		authors.PUT("/:id", c.AuthorHandler.Update)
		authors.PATCH("/:id", c.AuthorHandler.UpdatePartial)
		authors.DELETE("/:id", c.AuthorHandler.Delete)
		authors.DELETE("/", c.AuthorHandler.DeleteAll)
	}
}

func setupBookRoutes(router *gin.Engine, c *container.Container) {
	ns := c.Config.Cache.Namespaces
	ttl := c.Config.Cache.TTL

	books := router.Group("/books")
	{
		books.GET("/:id", middleware.CacheResponse(middleware.CacheOptions{
			Cache:        c.Cache,
			Keys:         c.KeyBuilder,
			Namespace:    ns.Book,
			TTL:          ttl,
			ElementParam: "id",
		}), c.BookHandler.GetByID)

		books.GET("/", middleware.CacheResponse(middleware.CacheOptions{
			Cache:     c.Cache,
			Keys:      c.KeyBuilder,
			Namespace: ns.BooksList,
			TTL:       ttl,
		}), c.BookHandler.GetAll)

		books.POST("/", c.BookHandler.Create)
		books.PUT("/:id", c.BookHandler.Update)
		books.PATCH("/:id", c.BookHandler.UpdatePartial)
		books.DELETE("/:id", c.BookHandler.Delete)
		books.DELETE("/", c.BookHandler.DeleteAll)
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		dbStatus := "ok"
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			dbStatus = "unavailable"
		}

		cacheStatus := "ok"
		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			cacheStatus = "unavailable"
		}

		status := http.StatusOK
		if dbStatus != "ok" {
			status = http.StatusServiceUnavailable
		}

		ctx.JSON(status, gin.H{
			"database": dbStatus,
			"cache":    cacheStatus,
			"version":  c.Config.App.Version,
		})
	}
}
