package repository

import (
	"context"

	"PairLens/internal/domain/models"
)

// Publisher pushes computed signal records to a message backend.
type Publisher interface {
	PublishBatch(ctx context.Context, pair string, records []models.RollingSignalRecord) error
	Close() error
}

// Storage persists computed signal records.
type Storage interface {
	StoreBatch(ctx context.Context, pair string, records []models.RollingSignalRecord) error
	Health(ctx context.Context) error
	Close() error
}

// Metrics records operational counters for the analysis service.
type Metrics interface {
	RecordAnalysis(endpoint, symbol string)
	RecordError(kind string)
	RecordLastStatistic(pair string, stat float64)
	RecordLatency(op string, seconds float64)
}
