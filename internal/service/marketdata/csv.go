package marketdata

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"PairLens/internal/domain/models"
	"PairLens/internal/series"
	"PairLens/pkg/util"
)

// ParseCSV extracts (date, price) rows from CSV content in the
// Date,Symbol,Price layout with no header row. Malformed rows (bad
// dates, non-numeric prices, too few columns) are skipped rather than
// failing the whole document.
func ParseCSV(content string) (models.PriceSeries, error) {
	reader := csv.NewReader(strings.NewReader(content))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	points := make([]models.PricePoint, 0, 256)
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Skip unparseable lines, keep going.
			continue
		}
		if len(row) < 3 {
			continue
		}
		date, ok := util.ParseDate(strings.TrimSpace(row[0]))
		if !ok {
			continue
		}
		price, ok := util.ParseFloat(strings.TrimSpace(row[2]))
		if !ok {
			continue
		}
		points = append(points, models.PricePoint{Date: date, Price: price})
	}

	if len(points) == 0 {
		return nil, fmt.Errorf("no valid price rows in CSV content")
	}
	return series.New(points), nil
}
