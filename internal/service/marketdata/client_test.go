package marketdata

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestFetchSeriesParsesUpstreamCSV(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, "2024-01-02,AAPL,185.64\n2024-01-03,AAPL,184.25\n")
	}))
	defer srv.Close()

	c := New(5*time.Second, 1<<20)
	s, err := c.FetchSeries(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("FetchSeries failed: %v", err)
	}
	if len(s) != 2 {
		t.Fatalf("got %d points, want 2", len(s))
	}
}

func TestFetchSeriesEnforcesBodyCap(t *testing.T) {
	row := "2024-01-02,AAPL,185.64\n"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, strings.Repeat(row, 200))
	}))
	defer srv.Close()

	c := New(5*time.Second, 256)
	_, err := c.FetchSeries(context.Background(), srv.URL)
	if err == nil {
		t.Fatalf("expected error for body over the configured cap")
	}
	if !strings.Contains(err.Error(), "exceeds") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestFetchSeriesUpstreamErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := New(5*time.Second, 1<<20)
	if _, err := c.FetchSeries(context.Background(), srv.URL); err == nil {
		t.Fatalf("expected error for 503 upstream")
	}
}
