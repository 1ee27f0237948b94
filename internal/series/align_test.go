package series

import (
	"errors"
	"math"
	"testing"
	"time"

	"PairLens/internal/domain/models"
)

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func points(prices map[int]float64) []models.PricePoint {
	out := make([]models.PricePoint, 0, len(prices))
	for d, p := range prices {
		out = append(out, models.PricePoint{Date: day(d), Price: p})
	}
	return out
}

func TestAlignIntersection(t *testing.T) {
	a := New(points(map[int]float64{1: 10, 2: 20, 3: 30, 5: 50}))
	b := New(points(map[int]float64{2: 200, 3: 300, 4: 400, 5: 500}))

	got, err := Align(a, b, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantDays := []int{2, 3, 5}
	if len(got) != len(wantDays) {
		t.Fatalf("got %d records, want %d", len(got), len(wantDays))
	}
	for i, d := range wantDays {
		if !got[i].Date.Equal(day(d)) {
			t.Fatalf("record %d date = %v, want %v", i, got[i].Date, day(d))
		}
	}
	if got[0].PriceA != 20 || got[0].PriceB != 200 {
		t.Fatalf("record 0 = %+v, want prices 20/200", got[0])
	}
	for i := 1; i < len(got); i++ {
		if !got[i-1].Date.Before(got[i].Date) {
			t.Fatalf("records not strictly ascending at %d", i)
		}
	}
}

func TestAlignInsufficientData(t *testing.T) {
	a := New(points(map[int]float64{1: 10, 2: 20}))
	b := New(points(map[int]float64{2: 200, 3: 300}))

	_, err := Align(a, b, 60)
	var derr *DataError
	if !errors.As(err, &derr) {
		t.Fatalf("expected DataError, got %v", err)
	}
}

func TestNewSortsAndDedupes(t *testing.T) {
	raw := []models.PricePoint{
		{Date: day(3), Price: 30},
		{Date: day(1), Price: 10},
		{Date: day(3), Price: 31}, // duplicate date, first kept
		{Date: day(2), Price: math.NaN()},
		{Date: day(4), Price: math.Inf(1)},
	}
	s := New(raw)
	if len(s) != 2 {
		t.Fatalf("got %d points, want 2 (dupes and non-finite dropped)", len(s))
	}
	if !s[0].Date.Equal(day(1)) || !s[1].Date.Equal(day(3)) {
		t.Fatalf("series not sorted: %+v", s)
	}
	if s[1].Price != 30 {
		t.Fatalf("duplicate resolution kept %v, want first value 30", s[1].Price)
	}
}

func TestNewNormalizesClockTimes(t *testing.T) {
	raw := []models.PricePoint{
		{Date: time.Date(2024, 1, 1, 15, 30, 0, 0, time.UTC), Price: 10},
		{Date: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC), Price: 11},
	}
	s := New(raw)
	if len(s) != 1 {
		t.Fatalf("got %d points, want 1 (same calendar day)", len(s))
	}
	if !s[0].Date.Equal(day(1)) {
		t.Fatalf("date = %v, want midnight UTC", s[0].Date)
	}
}
