package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"PairLens/internal/domain/models"
	"PairLens/internal/domain/repository"
	"PairLens/pkg/util"

	pkgkafka "PairLens/pkg/kafka"
)

// ClickHouseSignalStore implements Storage for ClickHouse.
type ClickHouseSignalStore struct {
	db    *sql.DB
	table string
}

// NewClickHouseSignalStore creates ClickHouse signal storage.
func NewClickHouseSignalStore(db *sql.DB, table string) repository.Storage {
	return &ClickHouseSignalStore{db: db, table: table}
}

func (s *ClickHouseSignalStore) StoreBatch(ctx context.Context, pair string, records []models.RollingSignalRecord) error {
	if len(records) == 0 {
		return nil
	}
	// Batch insert using VALUES multi-row to reduce round-trips.
	const chunkSize = 2000
	for start := 0; start < len(records); start += chunkSize {
		end := start + chunkSize
		if end > len(records) {
			end = len(records)
		}

		values := make([]string, 0, end-start)
		args := make([]interface{}, 0, (end-start)*9)
		for _, r := range records[start:end] {
			values = append(values, "(?, ?, ?, ?, ?, ?, ?, ?, ?)")
			args = append(args,
				pair,
				r.Date,
				r.PriceA,
				r.PriceB,
				r.Alpha,
				r.Beta,
				r.Spread,
				nullableFloat(r.ZScore),
				nullableFloat(r.ADFStatistic),
			)
		}
		q := fmt.Sprintf("INSERT INTO %s (pair, date, price_a, price_b, alpha, beta, spread, z_score, adf_statistic) VALUES %s",
			s.table, strings.Join(values, ","))
		if _, err := s.db.ExecContext(ctx, q, args...); err != nil {
			return err
		}
	}
	return nil
}

func (s *ClickHouseSignalStore) Health(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *ClickHouseSignalStore) Close() error {
	return nil // Pool managed by pkg
}

// nullableFloat maps a missing or non-finite statistic to SQL NULL.
func nullableFloat(v *float64) sql.NullFloat64 {
	if p := models.FinitePtr(v); p != nil {
		return sql.NullFloat64{Float64: *p, Valid: true}
	}
	return sql.NullFloat64{}
}

// KafkaSignalPublisher implements Publisher for Kafka.
type KafkaSignalPublisher struct {
	producer *pkgkafka.Producer
	topic    string
}

// NewKafkaSignalPublisher creates Kafka publisher.
func NewKafkaSignalPublisher(producer *pkgkafka.Producer, topic string) repository.Publisher {
	return &KafkaSignalPublisher{producer: producer, topic: topic}
}

func (p *KafkaSignalPublisher) PublishBatch(ctx context.Context, pair string, records []models.RollingSignalRecord) error {
	if len(records) == 0 {
		return nil
	}
	msgs := make([]pkgkafka.Message, len(records))
	for i, r := range records {
		msgs[i] = pkgkafka.Message{
			Key: []byte(pair),
			Value: map[string]interface{}{
				"pair":          pair,
				"date":          util.FormatDate(r.Date),
				"price_a":       r.PriceA,
				"price_b":       r.PriceB,
				"alpha":         r.Alpha,
				"beta":          r.Beta,
				"spread":        r.Spread,
				"z_score":       models.FinitePtr(r.ZScore),
				"adf_statistic": models.FinitePtr(r.ADFStatistic),
			},
		}
	}
	return p.producer.PublishBatch(ctx, p.topic, msgs)
}

func (p *KafkaSignalPublisher) Close() error {
	if p.producer != nil {
		return p.producer.Close()
	}
	return nil
}
