package usecase

import (
	"context"
	"fmt"
	"time"

	"PairLens/internal/domain/models"
	drepo "PairLens/internal/domain/repository"
)

// Sink backends.
const (
	BackendKafka      = "kafka"
	BackendClickHouse = "clickhouse"
	BackendNone       = "none"
)

// SignalSink routes computed signal records to the configured backend.
// With the "none" backend every dispatch is a no-op.
type SignalSink struct {
	pub     drepo.Publisher
	store   drepo.Storage
	metrics drepo.Metrics
	backend string
}

// NewSignalSink creates a sink for the given backend. pub and store may be
// nil when the backend does not need them.
func NewSignalSink(pub drepo.Publisher, store drepo.Storage, metrics drepo.Metrics, backend string) *SignalSink {
	return &SignalSink{pub: pub, store: store, metrics: metrics, backend: backend}
}

// Dispatch hands a batch of signal records to the backend.
func (s *SignalSink) Dispatch(ctx context.Context, pair string, records []models.RollingSignalRecord) error {
	if len(records) == 0 || s.backend == BackendNone {
		return nil
	}

	start := time.Now()
	var err error
	switch s.backend {
	case BackendKafka:
		err = s.pub.PublishBatch(ctx, pair, records)
	case BackendClickHouse:
		err = s.store.StoreBatch(ctx, pair, records)
	default:
		err = fmt.Errorf("unknown sink backend: %s", s.backend)
	}

	if err != nil {
		s.metrics.RecordError("sink_dispatch")
		return fmt.Errorf("dispatch signals: %w", err)
	}
	s.metrics.RecordLatency("sink_dispatch", time.Since(start).Seconds())
	return nil
}

// Close closes underlying resources if present.
func (s *SignalSink) Close() {
	if s.pub != nil {
		_ = s.pub.Close()
	}
	if s.store != nil {
		_ = s.store.Close()
	}
}
