package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"thelook-service/internal/cache"
	"thelook-service/internal/config"
	"thelook-service/internal/db"
	"thelook-service/internal/repository/postgres"
	"thelook-service/internal/service/aggregation"
	simservice "thelook-service/internal/service/simulation"
	sim "thelook-service/internal/simulation"
)

// runStore composes the schema and bulk repositories into the run
// service's persistence surface.
type runStore struct {
	*postgres.SchemaRepository
	*postgres.BulkRepository
}

func main() {
	years := flag.Int("years", 3, "how many years of history to generate")
	customers := flag.Int("customers", 0, "fixed customer count (ignored with --organic)")
	products := flag.Int("products", 0, "fixed product count (ignored with --organic)")
	organic := flag.Bool("organic", true, "inject populations per simulated year instead of up front")
	customerGrowth := flag.Int("customer-growth", 200, "organic mode: target new customers per year")
	productGrowth := flag.Int("product-growth", 50, "organic mode: target new products per year")
	batchSize := flag.Int("batch-size", 0, "rows per insert chunk (0 = configured default)")
	seed := flag.Int64("seed", time.Now().UnixNano(), "RNG seed; fix it to reproduce a run")
	reset := flag.Bool("reset", false, "wipe existing tables before persisting")
	skipCache := flag.Bool("skip-cache", false, "skip the aggregate cache publish")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("[MAIN] No .env file found, relying on system env vars")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	cfg := config.Load()
	if *batchSize <= 0 {
		*batchSize = cfg.BatchSize
	}

	ctx := context.Background()

	pool, err := db.ConnectDB(ctx, cfg.PostgresDSN)
	if err != nil {
		logger.Fatal("failed to connect to PostgreSQL", zap.Error(err))
	}
	defer pool.Close()

	store := &runStore{
		SchemaRepository: postgres.NewSchemaRepository(pool),
		BulkRepository:   postgres.NewBulkRepository(postgres.NewDB(pool), *batchSize),
	}

	var aggregator simservice.Aggregator
	if !*skipCache {
		redisClient, err := db.NewRedisClient(db.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPass,
			DB:       cfg.RedisDB,
			PoolSize: 10,
		})
		if err != nil {
			logger.Fatal("failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()

		aggregator = aggregation.NewPublisher(
			postgres.NewMetricsRepository(pool),
			cache.NewMetricsCache(redisClient, cfg.CacheTTL),
			logger,
		)
	}

	now := time.Now().UTC().Truncate(24 * time.Hour)
	params := sim.Params{
		Start:            time.Date(now.Year()-*years, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:              now,
		CustomerCount:    *customers,
		ProductCount:     *products,
		Organic:          *organic,
		CustomersPerYear: *customerGrowth,
		ProductsPerYear:  *productGrowth,
		BaseDailyRate:    cfg.BaseDailyRate,
		Seed:             *seed,
	}

	runner := simservice.NewRunner(store, aggregator, logger)
	summary, err := runner.Run(ctx, params, simservice.RunOptions{
		Reset:          *reset,
		SkipCache:      *skipCache,
		PersistTimeout: cfg.PersistTimeout,
	})
	if err != nil {
		logger.Error("simulation run failed", zap.Error(err))
		os.Exit(1)
	}

	fmt.Printf("run %s: %d customers, %d products, %d orders, %d items\n",
		summary.RunID, summary.Customers, summary.Products, summary.Orders, summary.Items)
}
