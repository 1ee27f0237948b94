package di

import (
	"context"
	"fmt"
	"time"

	"PairLens/internal/domain/repository"
	"PairLens/internal/handler/api"
	internalrepo "PairLens/internal/repository"
	"PairLens/internal/service/cache"
	"PairLens/internal/service/marketdata"
	"PairLens/internal/usecase"
	pkgch "PairLens/pkg/clickhouse"
	"PairLens/pkg/config"
	pkgkafka "PairLens/pkg/kafka"
	"PairLens/pkg/logger"
	"PairLens/pkg/metrics"
	"PairLens/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*logger.Logger, error) {
	return logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideSeriesFetcher creates the CSV source client.
func ProvideSeriesFetcher(cfg *config.Config) usecase.SeriesFetcher {
	return marketdata.New(cfg.Sources.FetchTimeout, cfg.Sources.MaxBodyBytes)
}

// ProvideCache creates the response cache, Redis-backed when configured,
// in-process TTL otherwise. Returns nil when caching is disabled.
func ProvideCache(cfg *config.Config) cache.BytesCache {
	if !cfg.Cache.Enabled {
		return nil
	}
	if cfg.Cache.Redis.Enabled {
		return cache.NewRedisCache(cache.RedisConfig{
			Addr:     cfg.Cache.Redis.Addr,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
		})
	}
	return cache.NewTTLCache()
}

// ProvideClickHouseClient creates a ClickHouse client when the sink needs
// one; otherwise returns nil.
func ProvideClickHouseClient(cfg *config.Config) (*pkgch.Client, error) {
	if cfg.Sink.Backend != usecase.BackendClickHouse {
		return nil, nil
	}

	client, err := pkgch.NewClient(
		pkgch.WithHost(cfg.ClickHouse.Host),
		pkgch.WithPort(cfg.ClickHouse.Port),
		pkgch.WithDatabase(cfg.ClickHouse.Database),
		pkgch.WithCredentials(cfg.ClickHouse.User, cfg.ClickHouse.Password),
		pkgch.WithMaxConnections(10, 5),
		pkgch.WithHTTP(cfg.ClickHouse.UseHTTP),
		pkgch.WithAsyncInsert(cfg.ClickHouse.AsyncInsert, cfg.ClickHouse.WaitForAsync),
		pkgch.WithTimeouts(cfg.ClickHouse.DialTimeout, cfg.ClickHouse.ReadTimeout, cfg.ClickHouse.WriteTimeout),
		pkgch.WithMaxExecutionTime(cfg.ClickHouse.MaxExecutionTime),
	)
	if err != nil {
		return nil, fmt.Errorf("clickhouse client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.InitSchema(ctx, []string{
		"CREATE DATABASE IF NOT EXISTS " + cfg.ClickHouse.Database,
		"CREATE TABLE IF NOT EXISTS " + cfg.ClickHouse.Database + ".pair_signals (" +
			"pair String, date DateTime, price_a Float64, price_b Float64, " +
			"alpha Float64, beta Float64, spread Float64, " +
			"z_score Nullable(Float64), adf_statistic Nullable(Float64)" +
			") ENGINE=MergeTree ORDER BY (pair, date)",
	}); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("clickhouse schema: %w", err)
	}

	return client, nil
}

// ProvideKafkaProducer creates a Kafka producer when the sink needs one;
// otherwise returns nil.
func ProvideKafkaProducer(cfg *config.Config) (*pkgkafka.Producer, error) {
	if cfg.Sink.Backend != usecase.BackendKafka {
		return nil, nil
	}

	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.Kafka.Brokers),
		pkgkafka.WithCompression(cfg.Kafka.Compression),
		pkgkafka.WithRequiredAcks(cfg.Kafka.RequiredAcks),
		pkgkafka.WithBatchSize(cfg.Kafka.Producer.BatchSize),
		pkgkafka.WithBatchBytes(cfg.Kafka.Producer.BatchBytes),
		pkgkafka.WithBatchTimeout(cfg.Kafka.Producer.Linger),
		pkgkafka.WithTimeouts(cfg.Kafka.Producer.WriteTimeout, cfg.Kafka.Producer.ReadTimeout),
		pkgkafka.WithMaxAttempts(cfg.Kafka.Producer.MaxAttempts),
		pkgkafka.WithAsync(cfg.Kafka.Producer.Async),
		pkgkafka.WithHashByKey(true),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}

	return producer, nil
}

// ProvideSignalStorage creates ClickHouse signal storage.
func ProvideSignalStorage(chClient *pkgch.Client, cfg *config.Config) repository.Storage {
	if chClient == nil {
		return nil
	}
	return internalrepo.NewClickHouseSignalStore(chClient.DB(), cfg.ClickHouse.Database+".pair_signals")
}

// ProvideSignalPublisher creates the Kafka signal publisher.
func ProvideSignalPublisher(producer *pkgkafka.Producer, cfg *config.Config) repository.Publisher {
	if producer == nil {
		return nil
	}
	return internalrepo.NewKafkaSignalPublisher(producer, cfg.Kafka.Topic)
}

// ProvideSignalSink creates the configured signal sink.
func ProvideSignalSink(
	pub repository.Publisher,
	store repository.Storage,
	m repository.Metrics,
	cfg *config.Config,
) *usecase.SignalSink {
	return usecase.NewSignalSink(pub, store, m, cfg.Sink.Backend)
}

// ProvideUnitRootUseCase creates the unit-root use case.
func ProvideUnitRootUseCase(
	fetcher usecase.SeriesFetcher,
	m repository.Metrics,
	log *logger.Logger,
	cfg *config.Config,
) *usecase.UnitRootUseCase {
	return usecase.NewUnitRootUseCase(fetcher, m, log, cfg.Analysis.Lags)
}

// ProvidePairsUseCase creates the pairs analysis use case.
func ProvidePairsUseCase(
	fetcher usecase.SeriesFetcher,
	c cache.BytesCache,
	sink *usecase.SignalSink,
	m repository.Metrics,
	log *logger.Logger,
	cfg *config.Config,
) *usecase.PairsUseCase {
	return usecase.NewPairsUseCase(fetcher, c, cfg.Cache.TTL, sink, m, log, cfg.Analysis.Window)
}

// ProvideHandler creates the Echo API handler.
func ProvideHandler(
	log *logger.Logger,
	unitroot *usecase.UnitRootUseCase,
	pairs *usecase.PairsUseCase,
	cfg *config.Config,
) *api.AnalysisEchoHandler {
	return api.NewAnalysisEchoHandler(
		log,
		unitroot,
		pairs,
		float64(cfg.Analysis.RateCapacity),
		float64(cfg.Analysis.RateRefill),
	)
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	log *logger.Logger,
	handler *api.AnalysisEchoHandler,
	sink *usecase.SignalSink,
	chClient *pkgch.Client,
) *server.App {
	return server.New(cfg, log, handler, sink, chClient)
}
