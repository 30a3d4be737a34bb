// internal/handlers/metrics/metrics_handler.go
package metrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"thelook-service/internal/domain/catalog"
	"thelook-service/internal/domain/metrics"
	"thelook-service/internal/pkg/response"
)

const (
	defaultTopLimit = 5
	maxTopLimit     = 50
)

// Cache reads the published dashboard keys.
type Cache interface {
	Daily(ctx context.Context, date time.Time) (metrics.Daily, bool, error)
	TopProducts(ctx context.Context, limit int) ([]metrics.ProductQuantity, error)
	RegionRevenue(ctx context.Context, regions []string) ([]metrics.RegionRevenue, error)
}

// Source computes aggregates from the system of record, for the full
// series endpoints the cache does not carry.
type Source interface {
	DailyMetrics(ctx context.Context) ([]metrics.Daily, error)
}

type MetricsHandler struct {
	cache  Cache
	source Source
}

func NewMetricsHandler(cache Cache, source Source) *MetricsHandler {
	return &MetricsHandler{cache: cache, source: source}
}

// GetDailySeries returns the full per-day series, computed from storage.
func (h *MetricsHandler) GetDailySeries(c *gin.Context) {
	series, err := h.source.DailyMetrics(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to compute daily metrics", err)
		return
	}
	response.Success(c, http.StatusOK, "daily metrics retrieved", series)
}

// GetDaily returns the cached aggregates for one day.
func (h *MetricsHandler) GetDaily(c *gin.Context) {
	date, err := time.Parse("2006-01-02", c.Param("date"))
	if err != nil {
		response.ValidationError(c, "invalid date, expected YYYY-MM-DD", err)
		return
	}

	daily, ok, err := h.cache.Daily(c.Request.Context(), date)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to read daily metrics", err)
		return
	}
	if !ok {
		response.NotFound(c, "no cached metrics for that date")
		return
	}
	response.Success(c, http.StatusOK, "daily metrics retrieved", daily)
}

// GetTopProducts returns the cached product ranking.
func (h *MetricsHandler) GetTopProducts(c *gin.Context) {
	limit := defaultTopLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > maxTopLimit {
			response.ValidationError(c, "invalid limit", err)
			return
		}
		limit = n
	}

	products, err := h.cache.TopProducts(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to read top products", err)
		return
	}
	response.Success(c, http.StatusOK, "top products retrieved", products)
}

// GetRegionRevenue returns the cached per-region totals for every region
// in the catalog, zeros included.
func (h *MetricsHandler) GetRegionRevenue(c *gin.Context) {
	regions, err := h.cache.RegionRevenue(c.Request.Context(), catalog.Regions)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to read region revenue", err)
		return
	}
	response.Success(c, http.StatusOK, "region revenue retrieved", regions)
}
