package series

import (
	"PairLens/internal/domain/models"
)

// Align intersects two price series on their common dates and returns
// the aligned records sorted ascending by date. Both inputs must already
// be deduplicated (series.New guarantees this). A result shorter than
// minLen is a DataError: the caller's analysis window cannot be filled.
func Align(a, b models.PriceSeries, minLen int) ([]models.AlignedRecord, error) {
	bByDate := make(map[int64]float64, len(b))
	for _, p := range b {
		bByDate[p.Date.Unix()] = p.Price
	}

	out := make([]models.AlignedRecord, 0, min(len(a), len(b)))
	for _, p := range a {
		pb, ok := bByDate[p.Date.Unix()]
		if !ok {
			continue
		}
		out = append(out, models.AlignedRecord{Date: p.Date, PriceA: p.Price, PriceB: pb})
	}

	if len(out) < minLen {
		return nil, dataErrorf("insufficient aligned data: %d points for a %d-point window", len(out), minLen)
	}
	return out, nil
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
