package service

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"drivelog/internal/domain"
)

// NumberPolicy decides what happens to numeric fields that cannot be parsed.
type NumberPolicy string

const (
	// NumberPolicyLenient stores unparseable numbers as 0.
	NumberPolicyLenient NumberPolicy = "lenient"
	// NumberPolicyStrict rejects unparseable numbers with a ValidationError.
	NumberPolicyStrict NumberPolicy = "strict"
)

// ParseNumberPolicy maps a config value to a policy, defaulting to lenient.
func ParseNumberPolicy(s string) NumberPolicy {
	if strings.EqualFold(strings.TrimSpace(s), string(NumberPolicyStrict)) {
		return NumberPolicyStrict
	}
	return NumberPolicyLenient
}

// Record is an untyped submission decoded from a JSON object.
type Record map[string]any

// Normalizer validates submitted records and converts them to domain values.
// Numbers are rounded to the nearest integer, ties away from zero. Range
// checks run on the submitted value, before rounding.
type Normalizer struct {
	policy          NumberPolicy
	defaultDriverID string
	now             func() time.Time
	validate        *validator.Validate
}

// NormalizerOption configures a Normalizer.
type NormalizerOption func(*Normalizer)

// WithClock overrides the clock used for defaulted timestamps.
func WithClock(now func() time.Time) NormalizerOption {
	return func(n *Normalizer) {
		n.now = now
	}
}

// NewNormalizer creates a Normalizer.
func NewNormalizer(policy NumberPolicy, defaultDriverID string, opts ...NormalizerOption) *Normalizer {
	n := &Normalizer{
		policy:          policy,
		defaultDriverID: defaultDriverID,
		now:             time.Now,
		validate:        newValidator(),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// DriverID returns id, or the default driver when id is blank.
func (n *Normalizer) DriverID(id string) string {
	if id = strings.TrimSpace(id); id != "" {
		return id
	}
	return n.defaultDriverID
}

// Today returns the current calendar day in DayLayout.
func (n *Normalizer) Today() string {
	return n.now().UTC().Format(domain.DayLayout)
}

// Trip validates and normalizes a trip submission.
func (n *Normalizer) Trip(rec Record) (*domain.Trip, error) {
	stamp, err := n.timestamp(rec)
	if err != nil {
		return nil, err
	}

	in := tripInput{
		DriverID:     n.DriverID(stringField(rec, "driver_id")),
		TripDate:     dayField(rec, "trip_date", stamp),
		WorkingHours: stringField(rec, "working_hours"),
	}

	if in.TotalTrips, err = n.number(rec, "total_trips"); err != nil {
		return nil, err
	}
	if in.GrossEarnings, err = n.number(rec, "gross_earnings"); err != nil {
		return nil, err
	}
	if in.EarningsOla, err = n.optionalNumber(rec, "earnings_ola", decimal.Zero); err != nil {
		return nil, err
	}
	if in.EarningsUber, err = n.optionalNumber(rec, "earnings_uber", decimal.Zero); err != nil {
		return nil, err
	}
	if in.EarningsRapido, err = n.optionalNumber(rec, "earnings_rapido", decimal.Zero); err != nil {
		return nil, err
	}

	if err := n.check(in); err != nil {
		return nil, err
	}

	return &domain.Trip{
		Date:           stamp,
		TripDate:       in.TripDate,
		DriverID:       in.DriverID,
		TotalTrips:     roundInt(*in.TotalTrips),
		WorkingHours:   in.WorkingHours,
		EarningsOla:    roundInt(in.EarningsOla),
		EarningsUber:   roundInt(in.EarningsUber),
		EarningsRapido: roundInt(in.EarningsRapido),
		GrossEarnings:  roundInt(*in.GrossEarnings),
	}, nil
}

// Expense validates and normalizes an expense submission.
func (n *Normalizer) Expense(rec Record) (*domain.Expense, error) {
	stamp, err := n.timestamp(rec)
	if err != nil {
		return nil, err
	}

	in := expenseInput{
		DriverID:    n.DriverID(stringField(rec, "driver_id")),
		ExpenseDate: dayField(rec, "expense_date", stamp),
	}
	if in.Fuel, err = n.optionalNumber(rec, "fuel", decimal.Zero); err != nil {
		return nil, err
	}
	if in.Other, err = n.optionalNumber(rec, "other", decimal.Zero); err != nil {
		return nil, err
	}

	if err := n.check(in); err != nil {
		return nil, err
	}

	return &domain.Expense{
		Date:        stamp,
		ExpenseDate: in.ExpenseDate,
		DriverID:    in.DriverID,
		Fuel:        roundInt(in.Fuel),
		Other:       roundInt(in.Other),
	}, nil
}

// Profile validates and normalizes a profile submission.
func (n *Normalizer) Profile(rec Record) (*domain.Profile, error) {
	in := profileInput{
		DriverID: n.DriverID(stringField(rec, "driver_id")),
		Name:     strings.TrimSpace(stringField(rec, "name")),
		CarModel: strings.TrimSpace(stringField(rec, "car_model")),
	}

	var err error
	if in.Rating, err = n.optionalNumber(rec, "rating", decimal.NewFromInt(domain.DefaultRating)); err != nil {
		return nil, err
	}

	if err := n.check(in); err != nil {
		return nil, err
	}

	return &domain.Profile{
		DriverID: in.DriverID,
		Name:     in.Name,
		CarModel: in.CarModel,
		Rating:   roundInt(in.Rating),
	}, nil
}

// ValidateDay checks a YYYY-MM-DD query value.
func (n *Normalizer) ValidateDay(field, day string) error {
	if _, err := time.Parse(domain.DayLayout, day); err != nil {
		return newValidationError(field, "must be a date in YYYY-MM-DD format")
	}
	return nil
}

// Amounts must stay below 10^maxAmountDigits. Values at or above it are
// rejected before any rounding.
const maxAmountDigits = 15

// minExponent bounds how many decimal places a submitted number may carry.
const minExponent = -64

var maxAmount = decimal.New(1, maxAmountDigits)

// number reads a numeric field. A missing or null field yields nil.
func (n *Normalizer) number(rec Record, key string) (*decimal.Decimal, error) {
	v, ok := rec[key]
	if !ok || v == nil {
		return nil, nil
	}
	d, ok := parseNumber(v)
	if !ok {
		if n.policy == NumberPolicyStrict {
			return nil, newValidationError(key, "must be a number")
		}
		d = decimal.Zero
	}
	if tooLarge(d) {
		return nil, newValidationError(key, "must be less than "+maxAmount.String())
	}
	return &d, nil
}

// optionalNumber reads a numeric field, falling back to def when missing.
func (n *Normalizer) optionalNumber(rec Record, key string, def decimal.Decimal) (decimal.Decimal, error) {
	d, err := n.number(rec, key)
	if err != nil {
		return decimal.Zero, err
	}
	if d == nil {
		return def, nil
	}
	return *d, nil
}

// timestamp reads the capture instant, defaulting to now.
func (n *Normalizer) timestamp(rec Record) (time.Time, error) {
	switch v := rec["date"].(type) {
	case time.Time:
		return v.UTC(), nil
	case string:
		if t, ok := parseInstant(v); ok {
			return t, nil
		}
		if n.policy == NumberPolicyStrict {
			return time.Time{}, newValidationError("date", "must be an RFC 3339 timestamp")
		}
	}
	return n.now().UTC(), nil
}

// parseNumber converts JSON numbers and numeric strings to a decimal.
// Strings may carry thousands separators and surrounding spaces.
func parseNumber(v any) (decimal.Decimal, bool) {
	switch x := v.(type) {
	case json.Number:
		return parseNumericString(x.String())
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return decimal.Zero, false
		}
		return checkExponent(decimal.NewFromFloat(x))
	case float32:
		return parseNumber(float64(x))
	case int:
		return decimal.NewFromInt(int64(x)), true
	case int32:
		return decimal.NewFromInt32(x), true
	case int64:
		return decimal.NewFromInt(x), true
	case string:
		return parseNumericString(x)
	default:
		return decimal.Zero, false
	}
}

func parseNumericString(s string) (decimal.Decimal, bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return checkExponent(d)
}

// checkExponent refuses numbers with more than -minExponent decimal places.
func checkExponent(d decimal.Decimal) (decimal.Decimal, bool) {
	if d.Exponent() < minExponent {
		return decimal.Zero, false
	}
	return d, true
}

// tooLarge reports whether |d| >= maxAmount. The digit count is checked
// first so huge exponents are never expanded.
func tooLarge(d decimal.Decimal) bool {
	if d.IsZero() {
		return false
	}
	if int64(d.NumDigits())+int64(d.Exponent()) > maxAmountDigits+1 {
		return true
	}
	return d.Abs().GreaterThanOrEqual(maxAmount)
}

// roundInt rounds half away from zero. d must be below maxAmount.
func roundInt(d decimal.Decimal) int {
	return int(d.Round(0).IntPart())
}

func stringField(rec Record, key string) string {
	switch v := rec[key].(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	default:
		return ""
	}
}

// dayField reads a calendar-day field, deriving it from stamp when missing.
func dayField(rec Record, key string, stamp time.Time) string {
	if s := strings.TrimSpace(stringField(rec, key)); s != "" {
		return s
	}
	return stamp.Format(domain.DayLayout)
}

var instantLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
}

func parseInstant(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range instantLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
