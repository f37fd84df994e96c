package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Expense is a driver's spend for a day.
type Expense struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Date        time.Time          `json:"date" bson:"date"`
	ExpenseDate string             `json:"expense_date" bson:"expense_date"`
	DriverID    string             `json:"driver_id" bson:"driver_id"`
	Fuel        int                `json:"fuel" bson:"fuel"`
	Other       int                `json:"other" bson:"other"`
}

// Total returns fuel plus other spend.
func (e Expense) Total() int {
	return e.Fuel + e.Other
}
