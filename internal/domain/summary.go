package domain

// DailySummary aggregates one driver's trips and expenses for a calendar day.
type DailySummary struct {
	DriverID       string `json:"driver_id"`
	Date           string `json:"date"`
	TripEntries    int    `json:"trip_entries"`
	ExpenseEntries int    `json:"expense_entries"`
	TotalTrips     int    `json:"total_trips"`
	EarningsOla    int    `json:"earnings_ola"`
	EarningsUber   int    `json:"earnings_uber"`
	EarningsRapido int    `json:"earnings_rapido"`
	GrossEarnings  int    `json:"gross_earnings"`
	Fuel           int    `json:"fuel"`
	Other          int    `json:"other"`
	Expenses       int    `json:"expenses"`
	NetEarnings    int    `json:"net_earnings"`
}
