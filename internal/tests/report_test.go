package tests

import (
	"bytes"
	"errors"
	"net/http"
	"testing"

	"github.com/xuri/excelize/v2"

	"drivelog/internal/domain"
	"drivelog/internal/export"
)

func TestSummary_TotalsForDay(t *testing.T) {
	env := newTestEnv(t)

	env.do(http.MethodPost, "/trips", map[string]any{
		"driver_id": "A", "total_trips": 4, "working_hours": "6h",
		"earnings_ola": 300, "earnings_uber": 200, "gross_earnings": 550,
	})
	env.do(http.MethodPost, "/trips", map[string]any{
		"driver_id": "A", "trip_date": "2026-03-13", "total_trips": 9,
		"working_hours": "9h", "gross_earnings": 900,
	})
	env.do(http.MethodPost, "/expenses", map[string]any{
		"driver_id": "A", "fuel": 120.4, "other": 30,
	})

	w := env.do(http.MethodGet, "/summary?driver_id=A", nil)
	expectStatus(t, w, http.StatusOK)

	var summary domain.DailySummary
	decode(t, w, &summary)
	if summary.Date != "2026-03-14" {
		t.Errorf("Expected today's date, got %q", summary.Date)
	}
	if summary.TripEntries != 1 || summary.TotalTrips != 4 {
		t.Errorf("Unexpected trip totals: %+v", summary)
	}
	if summary.Expenses != 150 {
		t.Errorf("Expected expenses 150, got %d", summary.Expenses)
	}
	if summary.NetEarnings != 400 {
		t.Errorf("Expected net 400, got %d", summary.NetEarnings)
	}
}

func TestSummary_RejectsBadDate(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/summary?date=14-03-2026", nil)
	expectStatus(t, w, http.StatusUnprocessableEntity)
}

func TestExport_Workbook(t *testing.T) {
	env := newTestEnv(t)

	env.do(http.MethodPost, "/trips", map[string]any{
		"driver_id": "A", "total_trips": 4, "working_hours": "6h", "gross_earnings": 550,
	})

	w := env.do(http.MethodGet, "/trips/export?driver_id=A", nil)
	expectStatus(t, w, http.StatusOK)
	if ct := w.Header().Get("Content-Type"); ct != export.ContentType {
		t.Errorf("Expected content type %q, got %q", export.ContentType, ct)
	}

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	if err != nil {
		t.Fatalf("Failed to open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Trips")
	if err != nil {
		t.Fatalf("Failed to read Trips sheet: %v", err)
	}
	if len(rows) != 2 {
		t.Errorf("Expected header plus 1 row, got %d rows", len(rows))
	}
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	expectStatus(t, env.do(http.MethodGet, "/", nil), http.StatusOK)
	expectStatus(t, env.do(http.MethodGet, "/health", nil), http.StatusOK)

	env.pinger.Err = errors.New("server selection timeout")
	expectStatus(t, env.do(http.MethodGet, "/health", nil), http.StatusServiceUnavailable)
}
