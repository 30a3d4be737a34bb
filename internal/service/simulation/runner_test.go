// internal/service/simulation/runner_test.go
package simulation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thelook-service/internal/domain/catalog"
	"thelook-service/internal/domain/sales"
	xerrors "thelook-service/internal/pkg/errors"
	sim "thelook-service/internal/simulation"
)

type fakeStore struct {
	ensureCalls  int
	deleteCalls  int
	persistCalls int

	persisted struct {
		customers []*catalog.Customer
		products  []*catalog.Product
		orders    []*sales.Order
	}

	ensureErr  error
	deleteErr  error
	persistErr error
}

func (f *fakeStore) EnsureSchema(ctx context.Context) error {
	f.ensureCalls++
	return f.ensureErr
}

func (f *fakeStore) DeleteAll(ctx context.Context) error {
	f.deleteCalls++
	return f.deleteErr
}

func (f *fakeStore) PersistRun(ctx context.Context, customers []*catalog.Customer,
	products []*catalog.Product, orders []*sales.Order) error {
	f.persistCalls++
	f.persisted.customers = customers
	f.persisted.products = products
	f.persisted.orders = orders
	return f.persistErr
}

type fakeAggregator struct {
	calls int
	err   error
}

func (f *fakeAggregator) Publish(ctx context.Context) error {
	f.calls++
	return f.err
}

func testParams() sim.Params {
	return sim.Params{
		Start:         time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		End:           time.Date(2023, 3, 31, 0, 0, 0, 0, time.UTC),
		CustomerCount: 20,
		ProductCount:  10,
		Seed:          42,
	}
}

func Test_Runner_Run_Success(t *testing.T) {
	store := &fakeStore{}
	agg := &fakeAggregator{}
	runner := NewRunner(store, agg, nil)

	summary, err := runner.Run(context.Background(), testParams(), RunOptions{})
	require.NoError(t, err)

	assert.NotEmpty(t, summary.RunID)
	assert.Equal(t, 20, summary.Customers)
	assert.Equal(t, 10, summary.Products)
	assert.Equal(t, len(store.persisted.orders), summary.Orders)
	assert.Positive(t, summary.Items)

	assert.Equal(t, 1, store.ensureCalls)
	assert.Zero(t, store.deleteCalls)
	assert.Equal(t, 1, store.persistCalls)
	assert.Equal(t, 1, agg.calls)

	for _, o := range store.persisted.orders {
		assert.Equal(t, summary.RunID, o.RunID)
	}
}

func Test_Runner_Run_SmallFixedScenario(t *testing.T) {
	store := &fakeStore{}
	runner := NewRunner(store, &fakeAggregator{}, nil)

	params := sim.Params{
		Start:         time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC),
		End:           time.Date(2022, 12, 31, 0, 0, 0, 0, time.UTC),
		CustomerCount: 10,
		ProductCount:  5,
		Seed:          42,
	}

	summary, err := runner.Run(context.Background(), params, RunOptions{})
	require.NoError(t, err)

	assert.Equal(t, 10, summary.Customers)
	assert.Equal(t, 5, summary.Products)
	assert.Positive(t, summary.Orders)
	assert.Positive(t, summary.Items)

	// Every item references one of the run's five products.
	known := map[*catalog.Product]bool{}
	for _, p := range store.persisted.products {
		known[p] = true
	}
	for _, o := range store.persisted.orders {
		for i := range o.Items {
			assert.True(t, known[o.Items[i].Product])
		}
	}
}

func Test_Runner_Run_ResetWipesFirst(t *testing.T) {
	store := &fakeStore{}
	runner := NewRunner(store, &fakeAggregator{}, nil)

	_, err := runner.Run(context.Background(), testParams(), RunOptions{Reset: true})
	require.NoError(t, err)
	assert.Equal(t, 1, store.deleteCalls)
}

func Test_Runner_Run_SkipCache(t *testing.T) {
	agg := &fakeAggregator{}
	runner := NewRunner(&fakeStore{}, agg, nil)

	_, err := runner.Run(context.Background(), testParams(), RunOptions{SkipCache: true})
	require.NoError(t, err)
	assert.Zero(t, agg.calls)
}

func Test_Runner_Run_FailureTagging(t *testing.T) {
	tests := []struct {
		name      string
		store     *fakeStore
		params    sim.Params
		wantPhase string
	}{
		{
			name:      "invalid_params_fail_in_generation",
			store:     &fakeStore{},
			params:    sim.Params{},
			wantPhase: xerrors.PhaseGeneration,
		},
		{
			name:      "schema_failure_tagged_persistence",
			store:     &fakeStore{ensureErr: errors.New("ddl refused")},
			params:    testParams(),
			wantPhase: xerrors.PhasePersistence,
		},
		{
			name:      "persist_failure_tagged_persistence",
			store:     &fakeStore{persistErr: errors.New("connection lost")},
			params:    testParams(),
			wantPhase: xerrors.PhasePersistence,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := NewRunner(tt.store, &fakeAggregator{}, nil)
			_, err := runner.Run(context.Background(), tt.params, RunOptions{})
			require.Error(t, err)

			var phaseErr *xerrors.PhaseError
			require.ErrorAs(t, err, &phaseErr)
			assert.Equal(t, tt.wantPhase, phaseErr.Phase)
		})
	}
}

func Test_Runner_Run_CacheFailureIsNonFatal(t *testing.T) {
	agg := &fakeAggregator{err: errors.New("redis down")}
	runner := NewRunner(&fakeStore{}, agg, nil)

	summary, err := runner.Run(context.Background(), testParams(), RunOptions{})
	require.NoError(t, err)
	assert.NotNil(t, summary)
	assert.Equal(t, 1, agg.calls)
}

func Test_Runner_Run_NilAggregator(t *testing.T) {
	runner := NewRunner(&fakeStore{}, nil, nil)
	_, err := runner.Run(context.Background(), testParams(), RunOptions{})
	assert.NoError(t, err)
}

func Test_Runner_Run_ResetFailureAborts(t *testing.T) {
	store := &fakeStore{deleteErr: errors.New("truncate refused")}
	runner := NewRunner(store, &fakeAggregator{}, nil)

	_, err := runner.Run(context.Background(), testParams(), RunOptions{Reset: true})
	require.Error(t, err)
	assert.Zero(t, store.persistCalls)
}
