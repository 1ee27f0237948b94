package usecase

import (
	"context"

	"PairLens/internal/domain/models"
)

// SeriesFetcher retrieves a price series from a source URL.
type SeriesFetcher interface {
	FetchSeries(ctx context.Context, url string) (models.PriceSeries, error)
}
