package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"PairLens/internal/domain/models"
	drepo "PairLens/internal/domain/repository"
	"PairLens/internal/stats"
	"PairLens/pkg/logger"
)

// UnitRootUseCase runs the ADF unit-root test on two price series fetched
// from CSV sources. Each symbol is tested independently: a fetch or test
// failure on one symbol produces an error entry for that symbol and never
// blocks the other.
type UnitRootUseCase struct {
	fetcher     SeriesFetcher
	metrics     drepo.Metrics
	log         *logger.Logger
	timeout     time.Duration
	defaultLags int
}

// NewUnitRootUseCase builds the use case. defaultLags is applied when a
// request leaves the lag order unset.
func NewUnitRootUseCase(fetcher SeriesFetcher, metrics drepo.Metrics, log *logger.Logger, defaultLags int) *UnitRootUseCase {
	if defaultLags < 0 {
		defaultLags = 0
	}
	return &UnitRootUseCase{
		fetcher:     fetcher,
		metrics:     metrics,
		log:         log,
		timeout:     30 * time.Second,
		defaultLags: defaultLags,
	}
}

// Run fetches both series and tests each for a unit root. The returned map
// is keyed "symbol_a" / "symbol_b"; every key is always present.
func (uc *UnitRootUseCase) Run(ctx context.Context, req models.UnitRootRequest) (map[string]models.SymbolReport, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	lags := req.Lags
	if lags == 0 {
		lags = uc.defaultLags
	}

	type item struct {
		name   string
		report models.SymbolReport
	}
	ch := make(chan item, 2)
	var wg sync.WaitGroup

	run := func(name, url string) {
		defer wg.Done()
		ch <- item{name, uc.testSymbol(ctx, name, url, lags)}
	}
	wg.Add(2)
	go run("symbol_a", req.SymbolAURL)
	go run("symbol_b", req.SymbolBURL)

	go func() { wg.Wait(); close(ch) }()

	res := make(map[string]models.SymbolReport, 2)
	for it := range ch {
		res[it.name] = it.report
	}
	return res, nil
}

// testSymbol fetches one series and runs the test. Panics inside the
// numeric engine are contained here and surface as an error entry for the
// symbol rather than tearing down the request.
func (uc *UnitRootUseCase) testSymbol(ctx context.Context, name, url string, lags int) (report models.SymbolReport) {
	defer func() {
		if r := recover(); r != nil {
			uc.log.Error("unit-root test panicked",
				logger.String("symbol", name),
				logger.Any("panic", r))
			uc.metrics.RecordError("panic")
			report = models.SymbolReport{Error: fmt.Sprintf("internal error: %v", r)}
		}
	}()

	s, err := uc.fetcher.FetchSeries(ctx, url)
	if err != nil {
		uc.metrics.RecordError("fetch")
		return models.SymbolReport{Error: fmt.Sprintf("fetch series: %v", err)}
	}

	result, err := stats.ADFTest(s.Prices(), lags)
	if err != nil {
		uc.metrics.RecordError("adf")
		return models.SymbolReport{Error: err.Error()}
	}

	uc.metrics.RecordAnalysis("unitroot", name)
	return models.SymbolReport{Result: &result}
}
