package models

import "time"

// PricePoint is a single close price observed on a calendar date.
type PricePoint struct {
	Date  time.Time
	Price float64
}

// PriceSeries is an ordered sequence of price points, strictly ascending
// by date with one point per date. Construct via series.New to get the
// ordering and dedup guarantees.
type PriceSeries []PricePoint

// Prices returns the price column of the series.
func (s PriceSeries) Prices() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.Price
	}
	return out
}

// AlignedRecord holds both pair legs on a date present in both series.
type AlignedRecord struct {
	Date   time.Time
	PriceA float64
	PriceB float64
}
