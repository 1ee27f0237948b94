package stats

import (
	"math"

	"PairLens/internal/domain/models"
)

// Mean returns the arithmetic mean, 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// variance is the sum of squared deviations from the mean (not divided
// by n); the OLS slope only needs the ratio against the covariance sum.
func variance(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	m := Mean(values)
	sum := 0.0
	for _, v := range values {
		d := v - m
		sum += d * d
	}
	return sum
}

func covariance(x, y []float64) float64 {
	if len(x) != len(y) || len(x) == 0 {
		return 0
	}
	xm := Mean(x)
	ym := Mean(y)
	sum := 0.0
	for i := range x {
		sum += (x[i] - xm) * (y[i] - ym)
	}
	return sum
}

// FitOLS fits y = alpha + beta*x by least squares over equal-length
// slices. A zero-variance regressor or fewer than 2 points is not an
// error: the fit degenerates to beta=0, alpha=mean(y), residuals
// y_i - mean(y), so callers can keep processing flat-price windows.
func FitOLS(x, y []float64) models.RegressionFit {
	if len(x) < 2 || variance(x) == 0 {
		m := Mean(y)
		res := make([]float64, len(y))
		for i, yi := range y {
			res[i] = yi - m
		}
		return models.RegressionFit{Alpha: m, Beta: 0, Residuals: res}
	}

	beta := covariance(x, y) / variance(x)
	alpha := Mean(y) - beta*Mean(x)
	res := make([]float64, len(y))
	for i := range y {
		res[i] = y[i] - (alpha + beta*x[i])
	}
	return models.RegressionFit{Alpha: alpha, Beta: beta, Residuals: res}
}

// StandardError computes the standard error of the OLS slope:
// sqrt((sum(r^2)/(n-2)) / sum((x-mean(x))^2)). It returns +Inf when
// n <= 2 or the regressor is constant; the sentinel keeps downstream
// t-statistics well-defined without division failures.
func StandardError(x, residuals []float64) float64 {
	n := len(x)
	if n <= 2 {
		// n == 2 fits exactly; there are no degrees of freedom left.
		return math.Inf(1)
	}

	xm := Mean(x)
	sx := 0.0
	for _, xi := range x {
		d := xi - xm
		sx += d * d
	}
	if sx == 0 {
		return math.Inf(1)
	}

	se2 := 0.0
	for _, r := range residuals {
		se2 += r * r
	}
	se2 /= float64(n - 2)
	if se2 < 0 {
		se2 = 0
	}
	return math.Sqrt(se2 / sx)
}
