package models

import (
	"encoding/json"
	"math"
	"time"
)

// RegressionFit is a single-regressor least-squares fit y = alpha + beta*x.
// Residuals are positionally aligned with the regression inputs.
type RegressionFit struct {
	Alpha     float64
	Beta      float64
	Residuals []float64
}

// UnitRootResult is the outcome of an ADF unit-root test.
// IsStationary holds iff Statistic <= CriticalValues["5%"]; more negative
// statistics are stronger evidence of stationarity.
type UnitRootResult struct {
	Statistic      float64            `json:"statistic"`
	CriticalValues map[string]float64 `json:"critical_values"`
	SampleLength   int                `json:"sample_length"`
	LagUsed        int                `json:"lag_used"`
	IsStationary   bool               `json:"is_stationary"`
}

// RollingSignalRecord is one per-date output of the rolling pairs pipeline.
// ZScore and ADFStatistic are nil when not computable for the window
// (zero-variance spread, short window, engine failure); nil serializes
// as JSON null, never as zero.
type RollingSignalRecord struct {
	Date         time.Time `json:"date"`
	PriceA       float64   `json:"price_a"`
	PriceB       float64   `json:"price_b"`
	Alpha        float64   `json:"alpha"`
	Beta         float64   `json:"beta"`
	Spread       float64   `json:"spread"`
	ZScore       *float64  `json:"z_score"`
	ADFStatistic *float64  `json:"adf_statistic"`
}

// PairAnalysis is the full result of a rolling pairs computation.
// LastStatistic is the most recently computable rolling ADF statistic,
// nil when no window produced one.
type PairAnalysis struct {
	Results       []RollingSignalRecord `json:"results"`
	LastStatistic *float64              `json:"last_adf_statistic"`
}

// SymbolReport is one symbol's entry in a multi-symbol response: either
// a unit-root result or an error message, never both.
type SymbolReport struct {
	Result *UnitRootResult `json:"result,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// The engine uses +Inf and NaN as internal sentinels (perfect fits,
// degenerate regressors). encoding/json refuses non-finite values, so
// every statistic crossing the JSON boundary is mapped to null instead.

func finiteOrNil(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// FinitePtr returns p unless it points at a non-finite value, in which
// case it returns nil. Shared by every serializer that carries optional
// statistics (JSON responses, cache payloads, message values).
func FinitePtr(p *float64) *float64 {
	if p == nil {
		return nil
	}
	return finiteOrNil(*p)
}

func (r UnitRootResult) MarshalJSON() ([]byte, error) {
	type alias UnitRootResult
	return json.Marshal(struct {
		alias
		Statistic *float64 `json:"statistic"`
	}{
		alias:     alias(r),
		Statistic: finiteOrNil(r.Statistic),
	})
}

func (r RollingSignalRecord) MarshalJSON() ([]byte, error) {
	type alias RollingSignalRecord
	return json.Marshal(struct {
		alias
		ZScore       *float64 `json:"z_score"`
		ADFStatistic *float64 `json:"adf_statistic"`
	}{
		alias:        alias(r),
		ZScore:       FinitePtr(r.ZScore),
		ADFStatistic: FinitePtr(r.ADFStatistic),
	})
}

func (p PairAnalysis) MarshalJSON() ([]byte, error) {
	type alias PairAnalysis
	return json.Marshal(struct {
		alias
		LastStatistic *float64 `json:"last_adf_statistic"`
	}{
		alias:         alias(p),
		LastStatistic: FinitePtr(p.LastStatistic),
	})
}
