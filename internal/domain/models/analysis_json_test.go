package models

import (
	"encoding/json"
	"math"
	"strings"
	"testing"
	"time"
)

func TestUnitRootResultMarshalsInfStatisticAsNull(t *testing.T) {
	res := UnitRootResult{
		Statistic:      math.Inf(1),
		CriticalValues: map[string]float64{"1%": -3.75, "5%": -3.00, "10%": -2.63},
		SampleLength:   24,
		LagUsed:        0,
		IsStationary:   false,
	}
	b, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if !strings.Contains(string(b), `"statistic":null`) {
		t.Fatalf("statistic not null: %s", b)
	}
	if !strings.Contains(string(b), `"sample_length":24`) {
		t.Fatalf("sibling fields lost: %s", b)
	}
}

func TestUnitRootResultMarshalKeepsFiniteStatistic(t *testing.T) {
	res := UnitRootResult{Statistic: -3.25, CriticalValues: map[string]float64{}}
	b, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if !strings.Contains(string(b), `"statistic":-3.25`) {
		t.Fatalf("finite statistic altered: %s", b)
	}
}

func TestRollingSignalRecordMarshalsNonFiniteAsNull(t *testing.T) {
	inf := math.Inf(1)
	nan := math.NaN()
	rec := RollingSignalRecord{
		Date:         time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		PriceA:       10,
		PriceB:       20,
		Beta:         2,
		ZScore:       &nan,
		ADFStatistic: &inf,
	}
	b, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	s := string(b)
	if !strings.Contains(s, `"z_score":null`) || !strings.Contains(s, `"adf_statistic":null`) {
		t.Fatalf("non-finite fields not null: %s", s)
	}
	if !strings.Contains(s, `"beta":2`) {
		t.Fatalf("finite fields lost: %s", s)
	}
}

func TestPairAnalysisMarshalRoundTripsThroughCachePayload(t *testing.T) {
	inf := math.Inf(1)
	z := 1.5
	p := PairAnalysis{
		Results: []RollingSignalRecord{{
			Date:         time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			ZScore:       &z,
			ADFStatistic: &inf,
		}},
		LastStatistic: &inf,
	}
	b, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var back PairAnalysis
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if back.LastStatistic != nil {
		t.Fatalf("last statistic = %v, want nil after round trip", *back.LastStatistic)
	}
	if back.Results[0].ADFStatistic != nil {
		t.Fatalf("record statistic = %v, want nil after round trip", *back.Results[0].ADFStatistic)
	}
	if back.Results[0].ZScore == nil || *back.Results[0].ZScore != 1.5 {
		t.Fatalf("finite z-score lost in round trip")
	}
}

func TestFinitePtr(t *testing.T) {
	v := 2.5
	if got := FinitePtr(&v); got == nil || *got != 2.5 {
		t.Fatalf("finite value altered")
	}
	inf := math.Inf(-1)
	if FinitePtr(&inf) != nil {
		t.Fatalf("expected nil for -Inf")
	}
	if FinitePtr(nil) != nil {
		t.Fatalf("expected nil for nil input")
	}
}
