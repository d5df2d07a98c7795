// Package api wires the HTTP routes of the bill tracker.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mmynk/billtracker/internal/api/handlers"
	"github.com/mmynk/billtracker/internal/config"
	"github.com/mmynk/billtracker/internal/middleware"
)

// SetupRouter configures and returns the main Gin engine.
// A nil metrics creates a private registry.
func SetupRouter(cfg *config.Config, bills handlers.BillService, metrics *middleware.Metrics) *gin.Engine {
	if metrics == nil {
		metrics = middleware.NewMetrics()
	}

	r := gin.New()

	// Apply global middleware first (order matters)
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging())
	r.Use(metrics.Middleware())
	r.Use(middleware.CORS())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	billHandler := handlers.NewBillHandler(bills)
	dashboardHandler := handlers.NewDashboardHandler(bills)
	exportHandler := handlers.NewExportHandler(bills)
	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)

	api := r.Group(cfg.Server.APIPrefix)
	api.Use(rateLimiter.Limit())
	{
		api.GET("/bills", billHandler.ListBills)
		api.POST("/bills", billHandler.CreateBill)
		api.GET("/bills/views", billHandler.ListViews)
		api.GET("/bills/:id", billHandler.GetBill)
		api.PUT("/bills/:id", billHandler.UpdateBill)
		api.DELETE("/bills/:id", billHandler.DeleteBill)
		api.PATCH("/bills/:id/paid", billHandler.SetPaid)

		api.GET("/dashboard", dashboardHandler.Dashboard)
		api.GET("/export", exportHandler.Export)

		api.GET("/categories", handlers.Categories)
		api.GET("/payment-methods", handlers.PaymentMethods)
	}

	return r
}
