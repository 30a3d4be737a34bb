// internal/service/aggregation/publisher.go
package aggregation

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"thelook-service/internal/domain/catalog"
	"thelook-service/internal/domain/metrics"
	xerrors "thelook-service/internal/pkg/errors"
)

// TopProductCount is how many products the ranking carries downstream.
const TopProductCount = 5

// Source computes aggregates from the system of record.
type Source interface {
	DailyMetrics(ctx context.Context) ([]metrics.Daily, error)
	TopProducts(ctx context.Context, limit int) ([]metrics.ProductQuantity, error)
	RegionRevenue(ctx context.Context) ([]metrics.RegionRevenue, error)
}

// Cache receives the computed aggregates. Implementations overwrite what
// is already there, so publishing is idempotent.
type Cache interface {
	StoreDaily(ctx context.Context, days []metrics.Daily) error
	StoreTopProducts(ctx context.Context, products []metrics.ProductQuantity) error
	StoreRegionRevenue(ctx context.Context, regions []metrics.RegionRevenue) error
}

// Publisher recomputes the dashboard aggregates from the source and pushes
// them to the cache. Source failures abort the publish; cache writes are
// best effort, readers fall back to the source when a key is missing.
type Publisher struct {
	source Source
	cache  Cache
	logger *zap.Logger
}

func NewPublisher(source Source, cache Cache, logger *zap.Logger) *Publisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Publisher{source: source, cache: cache, logger: logger}
}

// Publish computes all three aggregate families and stores them. The
// region totals are zero-filled over the full region catalog before they
// are cached, so every region key always exists.
func (p *Publisher) Publish(ctx context.Context) error {
	days, err := p.source.DailyMetrics(ctx)
	if err != nil {
		return xerrors.InPhase(xerrors.PhaseAggregation, fmt.Errorf("failed to compute daily metrics: %w", err))
	}

	top, err := p.source.TopProducts(ctx, TopProductCount)
	if err != nil {
		return xerrors.InPhase(xerrors.PhaseAggregation, fmt.Errorf("failed to compute top products: %w", err))
	}

	regions, err := p.source.RegionRevenue(ctx)
	if err != nil {
		return xerrors.InPhase(xerrors.PhaseAggregation, fmt.Errorf("failed to compute region revenue: %w", err))
	}
	regions = fillRegions(regions)

	if err := p.cache.StoreDaily(ctx, days); err != nil {
		p.logger.Warn("daily metrics not cached", zap.Error(err))
	}
	if err := p.cache.StoreTopProducts(ctx, top); err != nil {
		p.logger.Warn("top products not cached", zap.Error(err))
	}
	if err := p.cache.StoreRegionRevenue(ctx, regions); err != nil {
		p.logger.Warn("region revenue not cached", zap.Error(err))
	}

	p.logger.Info("aggregates published",
		zap.Int("days", len(days)),
		zap.Int("top_products", len(top)),
		zap.Int("regions", len(regions)))
	return nil
}

// fillRegions returns one entry per catalog region, taking computed totals
// where present and zero elsewhere, in catalog order.
func fillRegions(computed []metrics.RegionRevenue) []metrics.RegionRevenue {
	byRegion := make(map[string]float64, len(computed))
	for _, r := range computed {
		byRegion[r.Region] = r.Revenue
	}

	out := make([]metrics.RegionRevenue, len(catalog.Regions))
	for i, region := range catalog.Regions {
		out[i] = metrics.RegionRevenue{Region: region, Revenue: byRegion[region]}
	}
	return out
}
