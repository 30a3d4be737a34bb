// internal/cache/metrics.go
package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"thelook-service/internal/domain/metrics"
)

const (
	revenueKeyPrefix = "revenue:"
	ordersKeyPrefix  = "orders_count:"
	activeKeyPrefix  = "active_customers:"
	regionKeyPrefix  = "region_sales:"
	topProductsKey   = "top_products"
	dateKeyLayout    = "2006-01-02"
	defaultTTL       = 24 * time.Hour
)

// MetricsCache stores the derived aggregates in Redis under the dashboard
// key contract: per-day scalars as plain string keys, the product ranking
// as a sorted set, per-region revenue as one key per region. All entries
// share a TTL so a stale cache ages out rather than lingering.
type MetricsCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewMetricsCache(rdb *redis.Client, ttl time.Duration) *MetricsCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &MetricsCache{rdb: rdb, ttl: ttl}
}

func dateKey(prefix string, date time.Time) string {
	return prefix + date.Format(dateKeyLayout)
}

// StoreDaily writes the three per-day scalars for every day in one pipeline.
func (c *MetricsCache) StoreDaily(ctx context.Context, days []metrics.Daily) error {
	pipe := c.rdb.Pipeline()
	for _, d := range days {
		pipe.Set(ctx, dateKey(revenueKeyPrefix, d.Date), fmt.Sprintf("%.2f", d.Revenue), c.ttl)
		pipe.Set(ctx, dateKey(ordersKeyPrefix, d.Date), strconv.FormatInt(d.Orders, 10), c.ttl)
		pipe.Set(ctx, dateKey(activeKeyPrefix, d.Date), strconv.FormatInt(d.ActiveCustomers, 10), c.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to cache daily metrics: %w", err)
	}
	return nil
}

// StoreTopProducts replaces the product ranking sorted set. The key is
// deleted first so products that fell out of the ranking disappear.
func (c *MetricsCache) StoreTopProducts(ctx context.Context, products []metrics.ProductQuantity) error {
	pipe := c.rdb.Pipeline()
	pipe.Del(ctx, topProductsKey)
	if len(products) > 0 {
		members := make([]redis.Z, len(products))
		for i, p := range products {
			members[i] = redis.Z{Score: float64(p.Quantity), Member: p.Name}
		}
		pipe.ZAdd(ctx, topProductsKey, members...)
		pipe.Expire(ctx, topProductsKey, c.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to cache top products: %w", err)
	}
	return nil
}

// StoreRegionRevenue writes one key per region in a single pipeline.
func (c *MetricsCache) StoreRegionRevenue(ctx context.Context, regions []metrics.RegionRevenue) error {
	pipe := c.rdb.Pipeline()
	for _, r := range regions {
		pipe.Set(ctx, regionKeyPrefix+r.Region, fmt.Sprintf("%.2f", r.Revenue), c.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to cache region revenue: %w", err)
	}
	return nil
}

// Daily reads the cached scalars for one day. Missing keys come back as
// zero values with ok=false so callers can fall through to the source.
func (c *MetricsCache) Daily(ctx context.Context, date time.Time) (metrics.Daily, bool, error) {
	keys := []string{
		dateKey(revenueKeyPrefix, date),
		dateKey(ordersKeyPrefix, date),
		dateKey(activeKeyPrefix, date),
	}
	vals, err := c.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return metrics.Daily{}, false, fmt.Errorf("failed to read daily metrics: %w", err)
	}

	d := metrics.Daily{Date: date}
	ok := true
	for i, v := range vals {
		s, isStr := v.(string)
		if !isStr {
			ok = false
			continue
		}
		switch i {
		case 0:
			d.Revenue, _ = strconv.ParseFloat(s, 64)
		case 1:
			d.Orders, _ = strconv.ParseInt(s, 10, 64)
		case 2:
			d.ActiveCustomers, _ = strconv.ParseInt(s, 10, 64)
		}
	}
	return d, ok, nil
}

// TopProducts reads the ranking, highest quantity first.
func (c *MetricsCache) TopProducts(ctx context.Context, limit int) ([]metrics.ProductQuantity, error) {
	entries, err := c.rdb.ZRevRangeWithScores(ctx, topProductsKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read top products: %w", err)
	}

	out := make([]metrics.ProductQuantity, 0, len(entries))
	for _, z := range entries {
		name, _ := z.Member.(string)
		out = append(out, metrics.ProductQuantity{Name: name, Quantity: int64(z.Score)})
	}
	return out, nil
}

// RegionRevenue reads the cached totals for the given regions, in order.
// Absent keys report zero revenue.
func (c *MetricsCache) RegionRevenue(ctx context.Context, regions []string) ([]metrics.RegionRevenue, error) {
	keys := make([]string, len(regions))
	for i, r := range regions {
		keys[i] = regionKeyPrefix + r
	}
	vals, err := c.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read region revenue: %w", err)
	}

	out := make([]metrics.RegionRevenue, len(regions))
	for i, region := range regions {
		out[i] = metrics.RegionRevenue{Region: region}
		if s, isStr := vals[i].(string); isStr {
			out[i].Revenue, _ = strconv.ParseFloat(s, 64)
		}
	}
	return out, nil
}
