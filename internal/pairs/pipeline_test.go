package pairs

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"PairLens/internal/domain/models"
)

func alignedSeries(n int, priceA, priceB func(i int) float64) []models.AlignedRecord {
	out := make([]models.AlignedRecord, n)
	for i := range out {
		out[i] = models.AlignedRecord{
			Date:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i),
			PriceA: priceA(i),
			PriceB: priceB(i),
		}
	}
	return out
}

func TestRunEmitsOneRecordPerWindowEnd(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	const L, W = 100, 60
	aligned := alignedSeries(L,
		func(i int) float64 { return 100 + float64(i) + rng.NormFloat64() },
		func(i int) float64 { return 50 + 0.5*float64(i) + rng.NormFloat64() },
	)

	results, _ := Run(aligned, W)
	if len(results) != L-W+1 {
		t.Fatalf("got %d records, want %d", len(results), L-W+1)
	}
	if !results[0].Date.Equal(aligned[W-1].Date) {
		t.Fatalf("first record date = %v, want window end at index %d (%v)", results[0].Date, W-1, aligned[W-1].Date)
	}
	if !results[len(results)-1].Date.Equal(aligned[L-1].Date) {
		t.Fatalf("last record date = %v, want %v", results[len(results)-1].Date, aligned[L-1].Date)
	}
}

func TestRunConstantSpreadWindow(t *testing.T) {
	// priceB moves in perfect lockstep with priceA, so every window
	// spread is identically zero: no z-score, no rolling statistic.
	aligned := alignedSeries(80,
		func(i int) float64 { return 100 + float64(i) },
		func(i int) float64 { return 10 + 2*(100+float64(i)) },
	)

	results, last := Run(aligned, 60)
	if len(results) == 0 {
		t.Fatalf("expected records for constant spread input")
	}
	for i, r := range results {
		if r.ZScore != nil {
			t.Fatalf("record %d: z-score = %v, want nil for zero-variance spread", i, *r.ZScore)
		}
		if r.ADFStatistic != nil {
			t.Fatalf("record %d: adf statistic = %v, want nil for constant spread", i, *r.ADFStatistic)
		}
		if math.Abs(r.Beta-2) > 1e-6 {
			t.Fatalf("record %d: beta = %v, want 2", i, r.Beta)
		}
	}
	if last != nil {
		t.Fatalf("last statistic = %v, want nil", *last)
	}
}

func TestRunFlatPriceAWindow(t *testing.T) {
	// Constant priceA exercises the degenerate OLS policy: beta = 0,
	// alpha = mean(priceB). The pipeline must keep emitting records.
	rng := rand.New(rand.NewSource(3))
	aligned := alignedSeries(70,
		func(i int) float64 { return 55 },
		func(i int) float64 { return 20 + rng.NormFloat64() },
	)

	results, _ := Run(aligned, 60)
	if len(results) != 11 {
		t.Fatalf("got %d records, want 11", len(results))
	}
	for i, r := range results {
		if r.Beta != 0 {
			t.Fatalf("record %d: beta = %v, want 0 for flat priceA", i, r.Beta)
		}
	}
}

func TestRunTracksLastStatistic(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	aligned := alignedSeries(90,
		func(i int) float64 { return 100 + rng.NormFloat64() },
		func(i int) float64 { return 80 + rng.NormFloat64() },
	)

	results, last := Run(aligned, 60)
	if last == nil {
		t.Fatalf("expected a last rolling statistic")
	}
	final := results[len(results)-1]
	if final.ADFStatistic == nil {
		t.Fatalf("final record has no statistic but pipeline reported one")
	}
	if *final.ADFStatistic != *last {
		t.Fatalf("last statistic = %v, want final record's %v", *last, *final.ADFStatistic)
	}
}

func TestRunWindowLargerThanSeries(t *testing.T) {
	aligned := alignedSeries(10,
		func(i int) float64 { return float64(i) },
		func(i int) float64 { return float64(i) },
	)
	results, last := Run(aligned, 60)
	if results != nil || last != nil {
		t.Fatalf("expected no output for window larger than series")
	}
}

func TestRunSpreadMatchesCurrentPoint(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	aligned := alignedSeries(70,
		func(i int) float64 { return 100 + float64(i) + rng.NormFloat64() },
		func(i int) float64 { return 40 + 1.5*float64(i) + rng.NormFloat64() },
	)

	results, _ := Run(aligned, 60)
	for i, r := range results {
		want := r.PriceB - (r.Alpha + r.Beta*r.PriceA)
		if math.Abs(r.Spread-want) > 1e-9 {
			t.Fatalf("record %d: spread = %v, want %v", i, r.Spread, want)
		}
	}
}
