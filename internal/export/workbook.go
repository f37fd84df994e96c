// Package export renders a driver's records as an XLSX workbook.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"drivelog/internal/domain"
)

const (
	TripsSheet    = "Trips"
	ExpensesSheet = "Expenses"

	// ContentType is the MIME type of the rendered workbook.
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var (
	tripHeader    = []any{"Date", "Trips", "Working Hours", "Ola", "Uber", "Rapido", "Gross Earnings", "Recorded At"}
	expenseHeader = []any{"Date", "Fuel", "Other", "Total", "Recorded At"}
)

// WriteWorkbook writes trips and expenses to w as two sheets, one row per
// record after a header row.
func WriteWorkbook(w io.Writer, trips []*domain.Trip, expenses []*domain.Expense) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", TripsSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(ExpensesSheet); err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}

	tripRows := make([][]any, 0, len(trips))
	for _, t := range trips {
		tripRows = append(tripRows, []any{
			t.TripDate,
			t.TotalTrips,
			t.WorkingHours,
			t.EarningsOla,
			t.EarningsUber,
			t.EarningsRapido,
			t.GrossEarnings,
			t.Date.UTC().Format("2006-01-02 15:04:05"),
		})
	}
	if err := writeRows(f, TripsSheet, tripHeader, tripRows); err != nil {
		return err
	}

	expenseRows := make([][]any, 0, len(expenses))
	for _, e := range expenses {
		expenseRows = append(expenseRows, []any{
			e.ExpenseDate,
			e.Fuel,
			e.Other,
			e.Total(),
			e.Date.UTC().Format("2006-01-02 15:04:05"),
		})
	}
	if err := writeRows(f, ExpensesSheet, expenseHeader, expenseRows); err != nil {
		return err
	}

	return f.Write(w)
}

func writeRows(f *excelize.File, sheet string, header []any, rows [][]any) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("%s header: %w", sheet, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("%s row %d: %w", sheet, i+2, err)
		}
	}
	return nil
}
