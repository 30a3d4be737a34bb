// internal/handlers/metrics/metrics_handler_test.go
package metrics

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thelook-service/internal/domain/metrics"
	"thelook-service/internal/pkg/response"
)

type fakeCache struct {
	daily    metrics.Daily
	dailyOK  bool
	dailyErr error

	top    []metrics.ProductQuantity
	topErr error

	regions    []metrics.RegionRevenue
	regionsErr error
}

func (f *fakeCache) Daily(ctx context.Context, date time.Time) (metrics.Daily, bool, error) {
	return f.daily, f.dailyOK, f.dailyErr
}

func (f *fakeCache) TopProducts(ctx context.Context, limit int) ([]metrics.ProductQuantity, error) {
	return f.top, f.topErr
}

func (f *fakeCache) RegionRevenue(ctx context.Context, regions []string) ([]metrics.RegionRevenue, error) {
	return f.regions, f.regionsErr
}

type fakeSource struct {
	series []metrics.Daily
	err    error
}

func (f *fakeSource) DailyMetrics(ctx context.Context) ([]metrics.Daily, error) {
	return f.series, f.err
}

func setupRouter(cache *fakeCache, source *fakeSource) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewMetricsHandler(cache, source)
	r := gin.New()
	r.GET("/metrics/daily", h.GetDailySeries)
	r.GET("/metrics/daily/:date", h.GetDaily)
	r.GET("/metrics/top-products", h.GetTopProducts)
	r.GET("/metrics/regions", h.GetRegionRevenue)
	return r
}

func doGet(t *testing.T, r *gin.Engine, path string) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()
	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(t, err)
	r.ServeHTTP(w, req)

	var body response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func Test_MetricsHandler_GetDaily(t *testing.T) {
	tests := []struct {
		name       string
		cache      *fakeCache
		path       string
		wantStatus int
	}{
		{
			name: "cached_day_returned",
			cache: &fakeCache{
				daily:   metrics.Daily{Revenue: 1500, Orders: 12, ActiveCustomers: 9},
				dailyOK: true,
			},
			path:       "/metrics/daily/2023-11-24",
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing_day_is_not_found",
			cache:      &fakeCache{dailyOK: false},
			path:       "/metrics/daily/2023-11-24",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "malformed_date_is_bad_request",
			cache:      &fakeCache{},
			path:       "/metrics/daily/24-11-2023",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "cache_error_is_server_error",
			cache:      &fakeCache{dailyErr: errors.New("redis down")},
			path:       "/metrics/daily/2023-11-24",
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := setupRouter(tt.cache, &fakeSource{})
			w, body := doGet(t, r, tt.path)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantStatus == http.StatusOK, body.Success)
		})
	}
}

func Test_MetricsHandler_GetDailySeries(t *testing.T) {
	source := &fakeSource{series: []metrics.Daily{
		{Revenue: 100, Orders: 2, ActiveCustomers: 2},
		{Revenue: 250, Orders: 3, ActiveCustomers: 3},
	}}
	r := setupRouter(&fakeCache{}, source)

	w, body := doGet(t, r, "/metrics/daily")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, body.Success)

	series, ok := body.Data.([]interface{})
	require.True(t, ok)
	assert.Len(t, series, 2)
}

func Test_MetricsHandler_GetTopProducts(t *testing.T) {
	cache := &fakeCache{top: []metrics.ProductQuantity{
		{Name: "Produto 3", Quantity: 40},
		{Name: "Produto 1", Quantity: 25},
	}}
	r := setupRouter(cache, &fakeSource{})

	w, body := doGet(t, r, "/metrics/top-products")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, body.Success)

	w, _ = doGet(t, r, "/metrics/top-products?limit=0")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doGet(t, r, "/metrics/top-products?limit=abc")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func Test_MetricsHandler_GetRegionRevenue(t *testing.T) {
	cache := &fakeCache{regions: []metrics.RegionRevenue{
		{Region: "Sudeste", Revenue: 900},
		{Region: "Norte", Revenue: 0},
	}}
	r := setupRouter(cache, &fakeSource{})

	w, body := doGet(t, r, "/metrics/regions")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, body.Success)

	regions, ok := body.Data.([]interface{})
	require.True(t, ok)
	assert.Len(t, regions, 2)
}
