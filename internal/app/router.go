// internal/app/router.go
package app

import (
	"github.com/gin-gonic/gin"

	metricsHandler "thelook-service/internal/handlers/metrics"
	tablesHandler "thelook-service/internal/handlers/tables"
)

type Handlers struct {
	Metrics *metricsHandler.MetricsHandler
	Tables  *tablesHandler.TablesHandler
}

func SetupRouter(r *gin.Engine, h *Handlers) {
	api := r.Group("/api/v1")

	// ==================== Health Check ====================
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "version": "1.0.0"})
	})

	// ==================== Metrics ====================
	metrics := api.Group("/metrics")
	{
		metrics.GET("/daily", h.Metrics.GetDailySeries)
		metrics.GET("/daily/:date", h.Metrics.GetDaily)
		metrics.GET("/top-products", h.Metrics.GetTopProducts)
		metrics.GET("/regions", h.Metrics.GetRegionRevenue)
	}

	// ==================== Tables ====================
	tables := api.Group("/tables")
	{
		tables.GET("/counts", h.Tables.GetCounts)
		tables.GET("/customers", h.Tables.ListCustomers)
		tables.GET("/products", h.Tables.ListProducts)
		tables.GET("/orders", h.Tables.ListOrders)
		tables.GET("/orders/:id", h.Tables.GetOrder)
	}
}
