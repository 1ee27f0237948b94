package pairs

import (
	"math"

	"PairLens/internal/domain/models"
	"PairLens/internal/stats"
)

// DefaultWindow is the rolling analysis window applied when the caller
// does not supply one.
const DefaultWindow = 60

// minADFWindow: spread windows at or below this length skip the rolling
// unit-root test entirely.
const minADFWindow = 10

// rollingLags is the fixed lag truncation used for every rolling ADF
// run. The window is short, so no truncation is applied.
const rollingLags = 0

// Run slides a window of the given size over the aligned pair series and
// emits one signal record per window end-point: hedge ratio and alpha
// from an OLS fit of priceB on priceA, the current spread, the window
// z-score of that spread, and a rolling ADF statistic on the window
// spread series. Windows whose z-score or statistic cannot be computed
// emit nil for those fields; a failed window never aborts the batch.
//
// The second return value is the most recently computable rolling
// statistic, nil when no window produced one.
func Run(aligned []models.AlignedRecord, window int) ([]models.RollingSignalRecord, *float64) {
	if window < 2 || len(aligned) < window {
		return nil, nil
	}

	results := make([]models.RollingSignalRecord, 0, len(aligned)-window+1)
	var lastStat *float64

	x := make([]float64, window)
	y := make([]float64, window)

	for i := window - 1; i < len(aligned); i++ {
		win := aligned[i-window+1 : i+1]
		for k, rec := range win {
			x[k] = rec.PriceA
			y[k] = rec.PriceB
		}

		fit := stats.FitOLS(x, y)
		if !isFinite(fit.Alpha) || !isFinite(fit.Beta) {
			// Numerically singular window; skip this end-point and
			// keep going.
			continue
		}

		// Spread of every window point against the fitted line; the
		// current spread is the last element.
		spreads := make([]float64, window)
		for k := range win {
			spreads[k] = y[k] - (fit.Alpha + fit.Beta*x[k])
		}
		spread := spreads[window-1]

		rec := models.RollingSignalRecord{
			Date:   aligned[i].Date,
			PriceA: aligned[i].PriceA,
			PriceB: aligned[i].PriceB,
			Alpha:  fit.Alpha,
			Beta:   fit.Beta,
			Spread: spread,
		}

		if z, ok := zScore(spreads, spread); ok {
			rec.ZScore = &z
		}

		if s, ok := rollingStatistic(spreads); ok {
			rec.ADFStatistic = &s
			lastStat = rec.ADFStatistic
		}

		results = append(results, rec)
	}

	return results, lastStat
}

// zScore computes (v - mean) / populationStdDev over the window spread
// series. A zero-variance window has no defined z-score.
func zScore(spreads []float64, v float64) (float64, bool) {
	if len(spreads) < 2 {
		return 0, false
	}
	m := stats.Mean(spreads)
	sum2 := 0.0
	for _, s := range spreads {
		d := s - m
		sum2 += d * d
	}
	if sum2 == 0 {
		return 0, false
	}
	std := populationStdDev(sum2, len(spreads))
	return (v - m) / std, true
}

func populationStdDev(sumSquares float64, n int) float64 {
	return math.Sqrt(sumSquares / float64(n))
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// rollingStatistic runs the unit-root engine on the window spread series
// with the fixed lag policy. Degenerate windows (too short, constant
// spread) and engine validation failures all resolve to "not computable".
func rollingStatistic(spreads []float64) (float64, bool) {
	if len(spreads) <= minADFWindow || allEqual(spreads) {
		return 0, false
	}
	res, err := stats.ADFTest(spreads, rollingLags)
	if err != nil {
		return 0, false
	}
	return res.Statistic, true
}

func allEqual(xs []float64) bool {
	for _, v := range xs[1:] {
		if v != xs[0] {
			return false
		}
	}
	return true
}
