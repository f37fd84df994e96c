package service

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

var fixedNow = time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)

func newTestNormalizer(policy NumberPolicy) *Normalizer {
	return NewNormalizer(policy, "dad", WithClock(func() time.Time { return fixedNow }))
}

func requireValidationError(t *testing.T, err error, field string) {
	t.Helper()
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError on %q, got %v", field, err)
	}
	if ve.Field != field {
		t.Errorf("expected field %q, got %q (%s)", field, ve.Field, ve.Message)
	}
}

func TestNormalizer_TripRoundsEarnings(t *testing.T) {
	t.Parallel()

	n := newTestNormalizer(NumberPolicyLenient)
	trip, err := n.Trip(Record{
		"total_trips":     5,
		"working_hours":   "8h",
		"earnings_ola":    120.6,
		"earnings_uber":   0,
		"earnings_rapido": 0,
		"gross_earnings":  120.6,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if trip.EarningsOla != 121 {
		t.Errorf("expected earnings_ola 121, got %d", trip.EarningsOla)
	}
	if trip.GrossEarnings != 121 {
		t.Errorf("expected gross_earnings 121, got %d", trip.GrossEarnings)
	}
	if trip.TotalTrips != 5 {
		t.Errorf("expected total_trips 5, got %d", trip.TotalTrips)
	}
	if trip.DriverID != "dad" {
		t.Errorf("expected default driver id, got %q", trip.DriverID)
	}
	if !trip.Date.Equal(fixedNow) {
		t.Errorf("expected defaulted timestamp %v, got %v", fixedNow, trip.Date)
	}
	if trip.TripDate != "2026-10-15" {
		t.Errorf("expected trip_date derived from timestamp, got %q", trip.TripDate)
	}
}

func TestNormalizer_NumberFormsRoundTheSame(t *testing.T) {
	t.Parallel()

	n := newTestNormalizer(NumberPolicyLenient)
	inputs := []any{
		120.6,
		json.Number("120.6"),
		"120.6",
		" 120.6 ",
	}
	for _, in := range inputs {
		trip, err := n.Trip(Record{
			"total_trips":    1,
			"working_hours":  "4h",
			"earnings_uber":  in,
			"gross_earnings": in,
		})
		if err != nil {
			t.Fatalf("input %#v: unexpected error: %v", in, err)
		}
		if trip.EarningsUber != 121 || trip.GrossEarnings != 121 {
			t.Errorf("input %#v: expected 121, got uber=%d gross=%d", in, trip.EarningsUber, trip.GrossEarnings)
		}
	}
}

func TestNormalizer_RoundsHalfAwayFromZero(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want int
	}{
		{"0.5", 1},
		{"1.5", 2},
		{"2.5", 3},
		{"2.49", 2},
		{"0.49999999999999999", 0},
		{"120.50000000000000001", 121},
		{"1200", 1200},
	}
	for _, tt := range tests {
		if got := roundInt(decimal.RequireFromString(tt.in)); got != tt.want {
			t.Errorf("roundInt(%s) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestNormalizer_RoundsSubmittedDigitsExactly(t *testing.T) {
	t.Parallel()

	n := newTestNormalizer(NumberPolicyStrict)
	expense, err := n.Expense(Record{
		"fuel":  json.Number("0.49999999999999999"),
		"other": "2.4999999999999999999",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if expense.Fuel != 0 {
		t.Errorf("expected fuel 0, got %d", expense.Fuel)
	}
	if expense.Other != 2 {
		t.Errorf("expected other 2, got %d", expense.Other)
	}
}

func TestNormalizer_RejectsOversizedAmounts(t *testing.T) {
	t.Parallel()

	values := []any{
		json.Number("1e19"),
		json.Number("1e400"),
		"1e999999999",
		json.Number("1000000000000000"),
		1e19,
	}

	for _, policy := range []NumberPolicy{NumberPolicyLenient, NumberPolicyStrict} {
		n := newTestNormalizer(policy)
		for _, v := range values {
			trip, err := n.Trip(Record{
				"total_trips":    "5",
				"working_hours":  "8h",
				"gross_earnings": v,
			})
			if trip != nil {
				t.Errorf("%s %v: stored gross_earnings %d", policy, v, trip.GrossEarnings)
			}
			requireValidationError(t, err, "gross_earnings")

			_, err = n.Expense(Record{"fuel": v})
			requireValidationError(t, err, "fuel")

			_, err = n.Profile(Record{"name": "Ramesh", "car_model": "Dzire", "rating": v})
			requireValidationError(t, err, "rating")
		}
	}
}

func TestNormalizer_LargestAcceptedAmount(t *testing.T) {
	t.Parallel()

	n := newTestNormalizer(NumberPolicyStrict)
	trip, err := n.Trip(Record{
		"total_trips":    "5",
		"working_hours":  "8h",
		"gross_earnings": json.Number("999999999999999.4"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if trip.GrossEarnings != 999999999999999 {
		t.Errorf("expected 999999999999999, got %d", trip.GrossEarnings)
	}
}

func TestNormalizer_TooManyDecimalPlaces(t *testing.T) {
	t.Parallel()

	_, err := newTestNormalizer(NumberPolicyStrict).Expense(Record{"fuel": "1e-400"})
	requireValidationError(t, err, "fuel")

	expense, err := newTestNormalizer(NumberPolicyLenient).Expense(Record{"fuel": "1e-400"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if expense.Fuel != 0 {
		t.Errorf("expected fuel 0, got %d", expense.Fuel)
	}
}

func TestNormalizer_ThousandsSeparator(t *testing.T) {
	t.Parallel()

	n := newTestNormalizer(NumberPolicyStrict)
	expense, err := n.Expense(Record{"fuel": "1,200", "other": "0"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if expense.Fuel != 1200 {
		t.Errorf("expected fuel 1200, got %d", expense.Fuel)
	}
}

func TestNormalizer_TripMissingRequiredFields(t *testing.T) {
	t.Parallel()

	n := newTestNormalizer(NumberPolicyLenient)
	base := func() Record {
		return Record{"total_trips": 2, "working_hours": "3h", "gross_earnings": 300}
	}

	for _, field := range []string{"total_trips", "working_hours", "gross_earnings"} {
		rec := base()
		delete(rec, field)
		_, err := n.Trip(rec)
		requireValidationError(t, err, field)
	}

	rec := base()
	rec["gross_earnings"] = nil
	_, err := n.Trip(rec)
	requireValidationError(t, err, "gross_earnings")
}

func TestNormalizer_ZeroIsNotMissing(t *testing.T) {
	t.Parallel()

	n := newTestNormalizer(NumberPolicyLenient)
	trip, err := n.Trip(Record{"total_trips": 0, "working_hours": "0h", "gross_earnings": 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if trip.TotalTrips != 0 || trip.GrossEarnings != 0 {
		t.Errorf("expected zeros, got %+v", trip)
	}
}

func TestNormalizer_RejectsNegativeBeforeRounding(t *testing.T) {
	t.Parallel()

	n := newTestNormalizer(NumberPolicyLenient)

	_, err := n.Trip(Record{"total_trips": 1, "working_hours": "1h", "gross_earnings": 10, "earnings_ola": -0.4})
	requireValidationError(t, err, "earnings_ola")

	_, err = n.Trip(Record{"total_trips": -1, "working_hours": "1h", "gross_earnings": 10})
	requireValidationError(t, err, "total_trips")

	_, err = n.Expense(Record{"fuel": 10, "other": "-5"})
	requireValidationError(t, err, "other")
}

func TestNormalizer_ExpenseDefaults(t *testing.T) {
	t.Parallel()

	n := newTestNormalizer(NumberPolicyLenient)
	expense, err := n.Expense(Record{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if expense.Fuel != 0 || expense.Other != 0 {
		t.Errorf("expected zero amounts, got %+v", expense)
	}
	if expense.ExpenseDate != "2026-10-15" {
		t.Errorf("expected derived expense_date, got %q", expense.ExpenseDate)
	}
	if expense.DriverID != "dad" {
		t.Errorf("expected default driver, got %q", expense.DriverID)
	}
}

func TestNormalizer_DayDerivedFromSubmittedTimestamp(t *testing.T) {
	t.Parallel()

	n := newTestNormalizer(NumberPolicyLenient)
	expense, err := n.Expense(Record{"date": "2026-01-02T23:15:00Z", "fuel": 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if expense.ExpenseDate != "2026-01-02" {
		t.Errorf("expected 2026-01-02, got %q", expense.ExpenseDate)
	}
}

func TestNormalizer_RejectsMalformedDay(t *testing.T) {
	t.Parallel()

	n := newTestNormalizer(NumberPolicyLenient)
	_, err := n.Trip(Record{
		"trip_date":      "15/10/2026",
		"total_trips":    1,
		"working_hours":  "1h",
		"gross_earnings": 1,
	})
	requireValidationError(t, err, "trip_date")
}

func TestNormalizer_LenientUnparseableBecomesZero(t *testing.T) {
	t.Parallel()

	n := newTestNormalizer(NumberPolicyLenient)
	trip, err := n.Trip(Record{
		"total_trips":    "five",
		"working_hours":  "8h",
		"earnings_ola":   true,
		"gross_earnings": "n/a",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if trip.TotalTrips != 0 || trip.EarningsOla != 0 || trip.GrossEarnings != 0 {
		t.Errorf("expected unparseable values to become 0, got %+v", trip)
	}
}

func TestNormalizer_StrictUnparseableRejected(t *testing.T) {
	t.Parallel()

	n := newTestNormalizer(NumberPolicyStrict)
	_, err := n.Trip(Record{
		"total_trips":    2,
		"working_hours":  "8h",
		"gross_earnings": "n/a",
	})
	requireValidationError(t, err, "gross_earnings")

	_, err = n.Expense(Record{"date": "yesterday"})
	requireValidationError(t, err, "date")
}

func TestNormalizer_ProfileRating(t *testing.T) {
	t.Parallel()

	n := newTestNormalizer(NumberPolicyLenient)

	tests := []struct {
		name    string
		rating  any
		want    int
		wantErr bool
	}{
		{"integer", 4, 4, false},
		{"rounds up", 4.5, 5, false},
		{"string", "3.2", 3, false},
		{"upper bound", 5, 5, false},
		{"lower bound", 0, 0, false},
		{"above range before rounding", 5.6, 0, true},
		{"barely above", 5.01, 0, true},
		{"negative", -0.2, 0, true},
	}

	for _, tt := range tests {
		profile, err := n.Profile(Record{"name": "Ramesh", "car_model": "Dzire", "rating": tt.rating})
		if tt.wantErr {
			requireValidationError(t, err, "rating")
			continue
		}
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.name, err)
		}
		if profile.Rating != tt.want {
			t.Errorf("%s: expected rating %d, got %d", tt.name, tt.want, profile.Rating)
		}
	}
}

func TestNormalizer_ProfileDefaultsAndRequired(t *testing.T) {
	t.Parallel()

	n := newTestNormalizer(NumberPolicyLenient)

	profile, err := n.Profile(Record{"name": " Ramesh ", "car_model": "Dzire", "driver_id": "d-7"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.Rating != 5 {
		t.Errorf("expected default rating 5, got %d", profile.Rating)
	}
	if profile.Name != "Ramesh" {
		t.Errorf("expected trimmed name, got %q", profile.Name)
	}
	if profile.DriverID != "d-7" {
		t.Errorf("expected driver d-7, got %q", profile.DriverID)
	}

	_, err = n.Profile(Record{"car_model": "Dzire"})
	requireValidationError(t, err, "name")

	_, err = n.Profile(Record{"name": "Ramesh", "car_model": "  "})
	requireValidationError(t, err, "car_model")
}

func TestParseNumberPolicy(t *testing.T) {
	if ParseNumberPolicy("STRICT") != NumberPolicyStrict {
		t.Error("expected strict")
	}
	if ParseNumberPolicy("") != NumberPolicyLenient {
		t.Error("expected lenient default")
	}
	if ParseNumberPolicy("whatever") != NumberPolicyLenient {
		t.Error("expected lenient fallback")
	}
}
