package stats

import (
	"fmt"
	"math"

	"PairLens/internal/domain/models"
)

// MinSeriesLength is the minimum number of observations accepted by the
// unit-root test.
const MinSeriesLength = 20

// ValidationError reports caller-supplied input that violates a test
// precondition. It is reported, never retried.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func validationErrorf(format string, a ...interface{}) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, a...)}
}

// CriticalValues returns approximate Dickey-Fuller critical value
// thresholds bucketed by sample size. These are coarse table
// approximations; no finite-sample p-value is computed.
func CriticalValues(n int) map[string]float64 {
	switch {
	case n <= 25:
		return map[string]float64{"1%": -3.75, "5%": -3.00, "10%": -2.63}
	case n <= 50:
		return map[string]float64{"1%": -3.58, "5%": -2.93, "10%": -2.60}
	case n <= 100:
		return map[string]float64{"1%": -3.50, "5%": -2.89, "10%": -2.58}
	default:
		return map[string]float64{"1%": -3.46, "5%": -2.88, "10%": -2.57}
	}
}

// ADFTest runs a Dickey-Fuller unit-root test on the series: it regresses
// first differences on lagged levels and compares the slope t-statistic
// against the bucketed critical values. A positive lags value truncates
// the leading observations before the regression; no lagged-difference
// augmentation terms are fitted.
func ADFTest(series []float64, lags int) (models.UnitRootResult, error) {
	n := len(series)
	if n < MinSeriesLength {
		return models.UnitRootResult{}, validationErrorf("series too short for ADF test (minimum %d data points, got %d)", MinSeriesLength, n)
	}
	if lags < 0 {
		return models.UnitRootResult{}, validationErrorf("lags cannot be negative")
	}
	if lags >= n-1 {
		return models.UnitRootResult{}, validationErrorf("lags must be less than series length - 1")
	}

	// d[t] = s[t] - s[t-1], yLag[t] = s[t-1], both length n-1.
	diff := make([]float64, n-1)
	yLag := make([]float64, n-1)
	for t := 1; t < n; t++ {
		diff[t-1] = series[t] - series[t-1]
		yLag[t-1] = series[t-1]
	}

	y := diff
	x := yLag
	if lags > 0 {
		if len(diff) <= lags {
			return models.UnitRootResult{}, validationErrorf("not enough data points after differencing for %d lags", lags)
		}
		y = diff[lags:]
		x = yLag[lags:]
	}
	if len(x) < 2 {
		return models.UnitRootResult{}, validationErrorf("not enough data points for regression after differencing and lags")
	}

	fit := FitOLS(x, y)
	se := StandardError(x, fit.Residuals)

	// se == 0 means a perfect fit; an infinite se means no usable
	// degrees of freedom or regressor spread. Both resolve to sentinels,
	// never a division error.
	var tStat float64
	switch {
	case se == 0 || math.IsInf(se, 1):
		if fit.Beta != 0 {
			tStat = math.Inf(1)
		}
	default:
		tStat = fit.Beta / se
	}

	// Critical values are keyed on the original series length, not the
	// truncated regression sample.
	crit := CriticalValues(n)

	return models.UnitRootResult{
		Statistic:      tStat,
		CriticalValues: crit,
		SampleLength:   n,
		LagUsed:        lags,
		IsStationary:   tStat <= crit["5%"],
	}, nil
}
