package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"
	"sync"
	"time"

	"PairLens/internal/domain/models"
	drepo "PairLens/internal/domain/repository"
	"PairLens/internal/pairs"
	"PairLens/internal/series"
	"PairLens/internal/service/cache"
	xhttp "PairLens/pkg/http"
	"PairLens/pkg/logger"
)

// PairsUseCase runs the rolling pairs pipeline: fetch both legs, align on
// common dates, slide the regression window, and hand the computed records
// to the signal sink. Responses are cached by source URLs and window.
type PairsUseCase struct {
	fetcher       SeriesFetcher
	cache         cache.BytesCache
	cacheTTL      time.Duration
	sink          *SignalSink
	metrics       drepo.Metrics
	log           *logger.Logger
	timeout       time.Duration
	defaultWindow int
}

// NewPairsUseCase builds the use case. defaultWindow is applied when a
// request leaves the window unset.
func NewPairsUseCase(
	fetcher SeriesFetcher,
	c cache.BytesCache,
	cacheTTL time.Duration,
	sink *SignalSink,
	metrics drepo.Metrics,
	log *logger.Logger,
	defaultWindow int,
) *PairsUseCase {
	if defaultWindow < 2 {
		defaultWindow = pairs.DefaultWindow
	}
	return &PairsUseCase{
		fetcher:       fetcher,
		cache:         c,
		cacheTTL:      cacheTTL,
		sink:          sink,
		metrics:       metrics,
		log:           log,
		timeout:       30 * time.Second,
		defaultWindow: defaultWindow,
	}
}

// Run computes the rolling signal series for the requested pair.
func (uc *PairsUseCase) Run(ctx context.Context, req models.PairsRequest) (*models.PairAnalysis, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	window := req.Window
	if window <= 0 {
		window = uc.defaultWindow
	}

	key := fmt.Sprintf("pairs:%s|%s|%d", req.SymbolAURL, req.SymbolBURL, window)
	if uc.cache != nil {
		if b, ok, err := uc.cache.GetBytes(key); err == nil && ok {
			var cached models.PairAnalysis
			if err := json.Unmarshal(b, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	seriesA, seriesB, err := uc.fetchBoth(ctx, req.SymbolAURL, req.SymbolBURL)
	if err != nil {
		uc.metrics.RecordError("fetch")
		return nil, xhttp.BadGatewayError(err.Error())
	}

	aligned, err := series.Align(seriesA, seriesB, window)
	if err != nil {
		var de *series.DataError
		if errors.As(err, &de) {
			return nil, xhttp.BadRequestError(de.Error())
		}
		return nil, xhttp.InternalErrorf("align series: %v", err)
	}

	records, last := pairs.Run(aligned, window)
	analysis := &models.PairAnalysis{Results: records, LastStatistic: last}

	pair := pairLabel(req.SymbolAURL, req.SymbolBURL)
	uc.metrics.RecordAnalysis("pairs", pair)
	if last != nil {
		uc.metrics.RecordLastStatistic(pair, *last)
	}

	// Sink delivery is best-effort: a broker or storage hiccup must not
	// fail a request whose analysis already succeeded.
	if uc.sink != nil {
		if err := uc.sink.Dispatch(ctx, pair, records); err != nil {
			uc.log.Warn("signal sink dispatch failed",
				logger.String("pair", pair),
				logger.Error(err))
		}
	}

	if uc.cache != nil {
		if b, err := json.Marshal(analysis); err == nil {
			if err := uc.cache.SetBytes(key, b, uc.cacheTTL); err != nil {
				uc.log.Warn("response cache write failed", logger.Error(err))
			}
		}
	}

	return analysis, nil
}

// fetchBoth downloads the two legs concurrently. Either failure fails the
// pair request: unlike the unit-root endpoint, pairs analysis cannot
// proceed with one leg.
func (uc *PairsUseCase) fetchBoth(ctx context.Context, urlA, urlB string) (models.PriceSeries, models.PriceSeries, error) {
	var (
		wg   sync.WaitGroup
		a, b models.PriceSeries
		errA error
		errB error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		a, errA = uc.fetcher.FetchSeries(ctx, urlA)
	}()
	go func() {
		defer wg.Done()
		b, errB = uc.fetcher.FetchSeries(ctx, urlB)
	}()
	wg.Wait()

	if errA != nil {
		return nil, nil, fmt.Errorf("symbol_a: %w", errA)
	}
	if errB != nil {
		return nil, nil, fmt.Errorf("symbol_b: %w", errB)
	}
	return a, b, nil
}

// pairLabel derives a compact pair name from the source URLs for metrics
// and sink keys, e.g. "AAPL-MSFT" from .../AAPL.csv and .../MSFT.csv.
func pairLabel(urlA, urlB string) string {
	return symbolFromURL(urlA) + "-" + symbolFromURL(urlB)
}

func symbolFromURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Path == "" {
		return "unknown"
	}
	base := path.Base(u.Path)
	if i := strings.LastIndexByte(base, '.'); i > 0 {
		base = base[:i]
	}
	if base == "" || base == "/" || base == "." {
		return "unknown"
	}
	return base
}
