package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"drivelog/internal/service"
)

// ExpenseHandler handles HTTP requests for expenses.
type ExpenseHandler struct {
	expenseService *service.ExpenseService
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(expenseService *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// Create handles POST /expenses
func (h *ExpenseHandler) Create(c *gin.Context) {
	rec, err := bindRecord(c)
	if err != nil {
		respondError(c, err)
		return
	}

	expense, err := h.expenseService.RecordExpense(c.Request.Context(), rec)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, expense)
}

// List handles GET /expenses
func (h *ExpenseHandler) List(c *gin.Context) {
	expenses, err := h.expenseService.ListExpenses(c.Request.Context(), c.Query("driver_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, expenses)
}
