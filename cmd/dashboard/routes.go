package main

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	// Health check endpoint
	app.router.GET("/ping", app.handlePing)

	// Prometheus metrics
	app.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := app.router.Group("/api/v1")

	// Dashboard endpoints
	dash := v1.Group("/dashboard")
	dash.GET("/locations", app.handleListLocations)
	dash.GET("/current/:location", app.handleGetCurrent)
	dash.GET("/forecast/:location", app.handleGetForecast)
	dash.GET("/history/:location", app.handleGetHistory)
	dash.GET("/overview/:location", app.handleGetOverview)
	dash.GET("/status", app.handleGetStatus)
	dash.POST("/refresh/:location", app.handleRefresh)
	dash.GET("/export/:location", app.handleExport)

	// Alert endpoints
	alerts := v1.Group("/alerts")
	alerts.GET("", app.handleListAlerts)
	alerts.POST("", app.handleCreateAlert)
	alerts.PUT("/:id", app.handleUpdateAlert)
	alerts.DELETE("/:id", app.handleDeleteAlert)
	alerts.POST("/:id/toggle", app.handleToggleAlert)

	// Swagger documentation
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(301, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})
}
