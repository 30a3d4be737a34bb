// internal/service/simulation/runner.go
package simulation

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"thelook-service/internal/domain/catalog"
	"thelook-service/internal/domain/sales"
	xerrors "thelook-service/internal/pkg/errors"
	sim "thelook-service/internal/simulation"
)

// Store is the persistence side of a run: schema bootstrap, optional
// wipe, and the atomic bulk flush.
type Store interface {
	EnsureSchema(ctx context.Context) error
	DeleteAll(ctx context.Context) error
	PersistRun(ctx context.Context, customers []*catalog.Customer,
		products []*catalog.Product, orders []*sales.Order) error
}

// Aggregator republishes derived metrics after a successful persist.
type Aggregator interface {
	Publish(ctx context.Context) error
}

// RunOptions adjust a single run without touching the generative params.
type RunOptions struct {
	// Reset wipes the tables before persisting.
	Reset bool
	// SkipCache suppresses the aggregate publish step.
	SkipCache bool
	// PersistTimeout bounds the bulk write; zero means no deadline.
	PersistTimeout time.Duration
}

// Summary is what a completed run reports back to the operator.
type Summary struct {
	RunID     string `json:"run_id"`
	Customers int    `json:"customers"`
	Products  int    `json:"products"`
	Orders    int    `json:"orders"`
	Items     int    `json:"items"`
}

// Runner drives one full simulation run: generate in memory, persist
// atomically, republish aggregates. Failures carry the phase they
// happened in.
type Runner struct {
	store      Store
	aggregator Aggregator
	logger     *zap.Logger
}

func NewRunner(store Store, aggregator Aggregator, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{store: store, aggregator: aggregator, logger: logger}
}

// Run executes a simulation with the given params and options.
func (r *Runner) Run(ctx context.Context, params sim.Params, opts RunOptions) (*Summary, error) {
	runID := newRunID(params.Seed)
	logger := r.logger.With(zap.String("run_id", runID))

	logger.Info("simulation run starting",
		zap.Time("start", params.Start),
		zap.Time("end", params.End),
		zap.Int64("seed", params.Seed),
		zap.Bool("organic", params.Organic))

	engine := sim.NewEngine(params, logger)
	data, err := engine.Generate()
	if err != nil {
		return nil, xerrors.InPhase(xerrors.PhaseGeneration, err)
	}
	for _, o := range data.Orders {
		o.RunID = runID
	}

	if err := r.store.EnsureSchema(ctx); err != nil {
		return nil, xerrors.InPhase(xerrors.PhasePersistence, err)
	}
	if opts.Reset {
		logger.Info("resetting tables before persist")
		if err := r.store.DeleteAll(ctx); err != nil {
			return nil, xerrors.InPhase(xerrors.PhasePersistence, err)
		}
	}

	persistCtx := ctx
	if opts.PersistTimeout > 0 {
		var cancel context.CancelFunc
		persistCtx, cancel = context.WithTimeout(ctx, opts.PersistTimeout)
		defer cancel()
	}
	if err := r.store.PersistRun(persistCtx, data.Customers, data.Products, data.Orders); err != nil {
		return nil, xerrors.InPhase(xerrors.PhasePersistence, fmt.Errorf("failed to persist run: %w", err))
	}

	if opts.SkipCache || r.aggregator == nil {
		logger.Info("cache publish skipped")
	} else if err := r.aggregator.Publish(ctx); err != nil {
		// The persisted data is good; a failed publish only leaves the
		// cache cold until the next run.
		logger.Warn("aggregate publish failed", zap.Error(err))
	}

	summary := &Summary{
		RunID:     runID,
		Customers: len(data.Customers),
		Products:  len(data.Products),
		Orders:    len(data.Orders),
		Items:     data.ItemCount(),
	}
	logger.Info("simulation run complete",
		zap.Int("customers", summary.Customers),
		zap.Int("products", summary.Products),
		zap.Int("orders", summary.Orders),
		zap.Int("items", summary.Items))
	return summary, nil
}

func newRunID(seed int64) string {
	entropy := ulid.Monotonic(rand.New(rand.NewSource(seed^time.Now().UnixNano())), 0)
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}
