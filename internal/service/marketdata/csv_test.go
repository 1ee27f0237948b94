package marketdata

import (
	"testing"
)

func TestParseCSVBasic(t *testing.T) {
	content := "2024-01-02,AAPL,185.64\n" +
		"2024-01-03,AAPL,184.25\n" +
		"2024-01-04,AAPL,181.91\n"

	s, err := ParseCSV(content)
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}
	if len(s) != 3 {
		t.Fatalf("got %d points, want 3", len(s))
	}
	if s[0].Price != 185.64 || s[2].Price != 181.91 {
		t.Fatalf("unexpected prices: %v", s.Prices())
	}
}

func TestParseCSVSkipsMalformedRows(t *testing.T) {
	content := "Date,Symbol,Price\n" + // header line, date fails to parse
		"2024-01-02,AAPL,185.64\n" +
		"not-a-date,AAPL,10\n" +
		"2024-01-03,AAPL,n/a\n" +
		"2024-01-04,AAPL\n" + // too few columns
		"2024-01-05,AAPL,181.91\n"

	s, err := ParseCSV(content)
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}
	if len(s) != 2 {
		t.Fatalf("got %d points, want 2", len(s))
	}
}

func TestParseCSVEmptyIsError(t *testing.T) {
	if _, err := ParseCSV(""); err == nil {
		t.Fatalf("expected error for empty content")
	}
	if _, err := ParseCSV("garbage line\nanother\n"); err == nil {
		t.Fatalf("expected error when no row is usable")
	}
}

func TestParseCSVSortsAndDedupes(t *testing.T) {
	content := "2024-01-05,AAPL,105\n" +
		"2024-01-02,AAPL,102\n" +
		"2024-01-05,AAPL,999\n" // duplicate date, first wins

	s, err := ParseCSV(content)
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}
	if len(s) != 2 {
		t.Fatalf("got %d points, want 2", len(s))
	}
	if !s[0].Date.Before(s[1].Date) {
		t.Fatalf("series not sorted: %v >= %v", s[0].Date, s[1].Date)
	}
	if s[1].Price != 105 {
		t.Fatalf("duplicate resolution kept %v, want 105", s[1].Price)
	}
}
