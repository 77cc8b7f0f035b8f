package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"sanad-backend/internal/shared/middleware"
)

// Public inquiry submissions are throttled per client IP.
const (
	inquiryRateLimit  = 5
	inquiryRateWindow = time.Minute
)

func SetupRouter(app *application) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(app.cfg.App.AllowedOrigin),
	)

	auth := middleware.Auth(app.tokens, app.redis)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(app))

		setupAuthRoutes(v1, app, auth)
		setupPageRoutes(v1, app, auth)
		setupPostRoutes(v1, app, auth)
		setupPartnerRoutes(v1, app, auth)
		setupUserRoutes(v1, app, auth)
	}

	return router
}

func setupAuthRoutes(v1 *gin.RouterGroup, app *application, auth gin.HandlerFunc) {
	group := v1.Group("/auth")
	{
		group.POST("/login", app.users.Login)
		group.POST("/logout", auth, app.users.Logout)
		group.GET("/user", auth, app.users.Me)
		group.PUT("/user", auth, app.users.UpdateMe)
	}
}

func setupPageRoutes(v1 *gin.RouterGroup, app *application, auth gin.HandlerFunc) {
	group := v1.Group("/pages")
	{
		group.GET("", app.pages.Index)
		group.GET("/:section", app.pages.Show)
		group.GET("/:section/both-languages", app.pages.ShowBothLanguages)
		group.PUT("/:section", auth, app.pages.Update)
	}
}

func setupPostRoutes(v1 *gin.RouterGroup, app *application, auth gin.HandlerFunc) {
	group := v1.Group("/posts")
	{
		group.GET("", app.posts.Index)
		group.GET("/published", app.posts.Published)
		group.GET("/featured", app.posts.Featured)
		group.GET("/:id", app.posts.Show)

		group.GET("/statistics", auth, app.posts.Statistics)
		group.POST("", auth, app.posts.Store)
		group.PUT("/:id", auth, app.posts.Update)
		group.PUT("/:id/status", auth, app.posts.UpdateStatus)
		group.DELETE("/:id", auth, app.posts.Destroy)
	}
}

func setupPartnerRoutes(v1 *gin.RouterGroup, app *application, auth gin.HandlerFunc) {
	group := v1.Group("/partners")
	{
		group.POST("", middleware.RateLimit(app.redis, inquiryRateLimit, inquiryRateWindow), app.partners.Store)

		group.GET("", auth, app.partners.Index)
		group.GET("/statistics", auth, app.partners.Statistics)
		group.GET("/:id", auth, app.partners.Show)
		group.PUT("/:id/status", auth, app.partners.UpdateStatus)
		group.DELETE("/:id", auth, app.partners.Destroy)
	}
}

func setupUserRoutes(v1 *gin.RouterGroup, app *application, auth gin.HandlerFunc) {
	group := v1.Group("/users")
	group.Use(auth)
	{
		group.GET("", app.users.Index)
		group.POST("", app.users.Store)
		group.GET("/:id", app.users.Show)
		group.PUT("/:id", app.users.Update)
		group.DELETE("/:id", app.users.Destroy)
	}
}

func healthCheckHandler(app *application) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := http.StatusOK
		checks := gin.H{"database": "ok", "redis": "ok"}

		if err := app.db.HealthCheck(c.Request.Context()); err != nil {
			checks["database"] = err.Error()
			status = http.StatusServiceUnavailable
		}
		if err := app.redis.HealthCheck(c.Request.Context()); err != nil {
			checks["redis"] = err.Error()
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"name":    app.cfg.App.Name,
			"version": app.cfg.App.Version,
			"status":  http.StatusText(status),
			"checks":  checks,
		})
	}
}
