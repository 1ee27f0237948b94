package marketdata

import (
	"context"
	"fmt"
	"io"
	"time"

	"PairLens/internal/domain/models"
	xhttp "PairLens/pkg/http"
)

// Client fetches price series from CSV sources over HTTP. It is the
// boundary collaborator for the analysis core: everything it returns is
// already parsed, sorted, deduplicated and numerically validated.
type Client struct {
	http    *xhttp.Client
	maxBody int64
}

// New creates a marketdata client with the given fetch timeout and
// response size cap.
func New(timeout time.Duration, maxBodyBytes int64) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	if maxBodyBytes <= 0 {
		maxBodyBytes = 16 << 20
	}
	return &Client{
		http:    xhttp.NewClient(xhttp.WithTimeout(timeout)),
		maxBody: maxBodyBytes,
	}
}

// FetchSeries downloads a CSV document from url and parses it into a
// price series. An empty result (no parseable rows) is an error: the
// source exists but carries no usable data. The body is read through a
// limit reader so an oversized upstream document fails before it is
// buffered whole.
func (c *Client) FetchSeries(ctx context.Context, url string) (models.PriceSeries, error) {
	resp, err := c.http.SendRequest(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    url,
	})
	if err != nil {
		return nil, fmt.Errorf("fetch csv: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch csv: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return nil, fmt.Errorf("fetch csv: read body: %w", err)
	}
	if int64(len(body)) > c.maxBody {
		return nil, fmt.Errorf("fetch csv: response exceeds %d bytes", c.maxBody)
	}

	s, err := ParseCSV(string(body))
	if err != nil {
		return nil, err
	}
	return s, nil
}
