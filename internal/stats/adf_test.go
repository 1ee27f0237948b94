package stats

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func TestADFTestRejectsShortSeries(t *testing.T) {
	series := make([]float64, 19)
	_, err := ADFTest(series, 0)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for 19 points, got %v", err)
	}
}

func TestADFTestRejectsNegativeLags(t *testing.T) {
	series := randomWalk(rand.New(rand.NewSource(1)), 50)
	_, err := ADFTest(series, -1)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for negative lags, got %v", err)
	}
}

func TestADFTestRejectsExcessiveLags(t *testing.T) {
	series := randomWalk(rand.New(rand.NewSource(1)), 30)
	_, err := ADFTest(series, 29)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for lags >= n-1, got %v", err)
	}
}

func TestADFTestLagTruncation(t *testing.T) {
	series := randomWalk(rand.New(rand.NewSource(7)), 100)
	res, err := ADFTest(series, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.LagUsed != 3 {
		t.Fatalf("lag_used = %d, want 3", res.LagUsed)
	}
	if res.SampleLength != 100 {
		t.Fatalf("sample_length = %d, want original length 100", res.SampleLength)
	}
}

func TestCriticalValueBuckets(t *testing.T) {
	cases := []struct {
		n    int
		want map[string]float64
	}{
		{25, map[string]float64{"1%": -3.75, "5%": -3.00, "10%": -2.63}},
		{26, map[string]float64{"1%": -3.58, "5%": -2.93, "10%": -2.60}},
		{50, map[string]float64{"1%": -3.58, "5%": -2.93, "10%": -2.60}},
		{51, map[string]float64{"1%": -3.50, "5%": -2.89, "10%": -2.58}},
		{100, map[string]float64{"1%": -3.50, "5%": -2.89, "10%": -2.58}},
		{101, map[string]float64{"1%": -3.46, "5%": -2.88, "10%": -2.57}},
	}
	for _, tc := range cases {
		got := CriticalValues(tc.n)
		for level, want := range tc.want {
			if got[level] != want {
				t.Fatalf("n=%d level=%s: got %v, want %v", tc.n, level, got[level], want)
			}
		}
	}
}

func TestADFConstantSeriesDoesNotDivide(t *testing.T) {
	series := make([]float64, 40)
	for i := range series {
		series[i] = 100
	}
	res, err := ADFTest(series, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.IsNaN(res.Statistic) {
		t.Fatalf("statistic = NaN for constant series")
	}
}

// Classification of random walks vs white noise is probabilistic: a 5%
// test falsely flags roughly one random walk in twenty. Each property is
// checked over repeated seeded trials with a generous failure budget.

func TestADFRandomWalkNonStationary(t *testing.T) {
	const trials = 50
	failures := 0
	for seed := int64(0); seed < trials; seed++ {
		series := randomWalk(rand.New(rand.NewSource(seed)), 200)
		res, err := ADFTest(series, 0)
		if err != nil {
			t.Fatalf("seed %d: unexpected error: %v", seed, err)
		}
		if res.IsStationary {
			failures++
		}
	}
	if failures > trials/5 {
		t.Fatalf("random walk classified stationary in %d/%d trials", failures, trials)
	}
}

func TestADFWhiteNoiseStationary(t *testing.T) {
	const trials = 50
	failures := 0
	for seed := int64(0); seed < trials; seed++ {
		rng := rand.New(rand.NewSource(seed))
		series := make([]float64, 200)
		for i := range series {
			series[i] = rng.NormFloat64()
		}
		res, err := ADFTest(series, 0)
		if err != nil {
			t.Fatalf("seed %d: unexpected error: %v", seed, err)
		}
		if !res.IsStationary {
			failures++
		}
	}
	if failures > trials/10 {
		t.Fatalf("white noise classified non-stationary in %d/%d trials", failures, trials)
	}
}

func randomWalk(rng *rand.Rand, n int) []float64 {
	series := make([]float64, n)
	for i := 1; i < n; i++ {
		series[i] = series[i-1] + rng.NormFloat64()
	}
	return series
}
