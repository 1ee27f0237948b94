package series

import (
	"fmt"
	"math"
	"sort"
	"time"

	"PairLens/internal/domain/models"
)

// DataError reports a series that cannot support the requested analysis.
type DataError struct {
	Msg string
}

func (e *DataError) Error() string { return e.Msg }

func dataErrorf(format string, a ...interface{}) *DataError {
	return &DataError{Msg: fmt.Sprintf(format, a...)}
}

// dateKey collapses a timestamp to its calendar day in UTC so that two
// points on the same date compare equal regardless of clock time.
func dateKey(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// New builds a PriceSeries from raw points: non-finite prices are
// dropped, points are sorted ascending by date, and duplicate dates keep
// the first occurrence.
func New(points []models.PricePoint) models.PriceSeries {
	clean := make([]models.PricePoint, 0, len(points))
	for _, p := range points {
		if math.IsNaN(p.Price) || math.IsInf(p.Price, 0) {
			continue
		}
		clean = append(clean, models.PricePoint{Date: dateKey(p.Date), Price: p.Price})
	}

	sort.SliceStable(clean, func(i, j int) bool {
		return clean[i].Date.Before(clean[j].Date)
	})

	out := clean[:0]
	for _, p := range clean {
		if len(out) > 0 && out[len(out)-1].Date.Equal(p.Date) {
			continue
		}
		out = append(out, p)
	}
	return models.PriceSeries(out)
}
