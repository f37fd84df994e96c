package service

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// tripInput holds a trip submission after parsing, before rounding.
// Required numbers are pointers so absence is distinguishable from zero.
type tripInput struct {
	DriverID       string           `json:"driver_id" validate:"required"`
	TripDate       string           `json:"trip_date" validate:"required,datetime=2006-01-02"`
	TotalTrips     *decimal.Decimal `json:"total_trips" validate:"required,gte=0"`
	WorkingHours   string           `json:"working_hours" validate:"required"`
	EarningsOla    decimal.Decimal  `json:"earnings_ola" validate:"gte=0"`
	EarningsUber   decimal.Decimal  `json:"earnings_uber" validate:"gte=0"`
	EarningsRapido decimal.Decimal  `json:"earnings_rapido" validate:"gte=0"`
	GrossEarnings  *decimal.Decimal `json:"gross_earnings" validate:"required,gte=0"`
}

type expenseInput struct {
	DriverID    string          `json:"driver_id" validate:"required"`
	ExpenseDate string          `json:"expense_date" validate:"required,datetime=2006-01-02"`
	Fuel        decimal.Decimal `json:"fuel" validate:"gte=0"`
	Other       decimal.Decimal `json:"other" validate:"gte=0"`
}

type profileInput struct {
	DriverID string          `json:"driver_id" validate:"required"`
	Name     string          `json:"name" validate:"required"`
	CarModel string          `json:"car_model" validate:"required"`
	Rating   decimal.Decimal `json:"rating" validate:"gte=0,lte=5"`
}

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// Range tags see decimals as float64; magnitudes are already capped.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// check runs struct validation and converts the first failure to a
// ValidationError.
func (n *Normalizer) check(in any) error {
	err := n.validate.Struct(in)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	fe := fieldErrs[0]
	return newValidationError(fe.Field(), fieldMessage(fe))
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "gte", "min":
		return "must be greater than or equal to " + fe.Param()
	case "lte", "max":
		return "must be less than or equal to " + fe.Param()
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	default:
		return "is invalid"
	}
}
