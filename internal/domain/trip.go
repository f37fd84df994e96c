package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DayLayout is the calendar-day format used by trip_date and expense_date.
const DayLayout = "2006-01-02"

// Trip is one day's driving record for a driver.
// GrossEarnings is entered independently of the per-platform earnings.
type Trip struct {
	ID             primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Date           time.Time          `json:"date" bson:"date"`
	TripDate       string             `json:"trip_date" bson:"trip_date"`
	DriverID       string             `json:"driver_id" bson:"driver_id"`
	TotalTrips     int                `json:"total_trips" bson:"total_trips"`
	WorkingHours   string             `json:"working_hours" bson:"working_hours"`
	EarningsOla    int                `json:"earnings_ola" bson:"earnings_ola"`
	EarningsUber   int                `json:"earnings_uber" bson:"earnings_uber"`
	EarningsRapido int                `json:"earnings_rapido" bson:"earnings_rapido"`
	GrossEarnings  int                `json:"gross_earnings" bson:"gross_earnings"`
}
