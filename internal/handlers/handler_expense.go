package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
	"github.com/SscSPs/household_ledger/internal/dto"
	"github.com/SscSPs/household_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// expenseHandler handles HTTP requests for the expense log of a workspace.
type expenseHandler struct {
	expenseService portssvc.ExpenseSvcFacade
	loc            *time.Location
}

func newExpenseHandler(es portssvc.ExpenseSvcFacade, loc *time.Location) *expenseHandler {
	return &expenseHandler{
		expenseService: es,
		loc:            loc,
	}
}

// registerExpenseRoutes registers expense routes under a workspace-specific group.
func registerExpenseRoutes(workspaceGroup *gin.RouterGroup, expenseService portssvc.ExpenseSvcFacade, loc *time.Location) {
	h := newExpenseHandler(expenseService, loc)

	expenses := workspaceGroup.Group("/expenses")
	{
		expenses.POST("", h.createExpense)
		expenses.GET("", h.listExpenses)
		expenses.GET("/:expense_id", h.getExpense)
		expenses.PATCH("/:expense_id", h.updateExpense)
		expenses.DELETE("/:expense_id", h.deleteExpense)
	}
}

// createExpense godoc
// @Summary Record an expense
// @Description Records an expense. The payer defaults to the caller; splitDetails, when present, must name current members and sum to the amount.
// @Tags expenses
// @Accept  json
// @Produce  json
// @Param   workspace_id path string true "Workspace ID"
// @Param   expense body dto.CreateExpenseRequest true "Expense details"
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Not a member"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/expenses [post]
func (h *expenseHandler) createExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateExpense", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), c.Param("workspace_id"), req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to create expense")
		return
	}

	c.JSON(http.StatusCreated, dto.ToExpenseResponse(expense))
}

// listExpenses godoc
// @Summary List expenses
// @Description Lists expenses newest first with token-based pagination, optionally bounded by date.
// @Tags expenses
// @Produce  json
// @Param   workspace_id path string true "Workspace ID"
// @Param   limit query int false "Page size (1-100)" default(20)
// @Param   nextToken query string false "Token from the previous page"
// @Param   from query string false "Inclusive lower bound, RFC 3339 or YYYY-MM-DD"
// @Param   to query string false "Inclusive upper bound, RFC 3339 or YYYY-MM-DD"
// @Success 200 {object} dto.ListExpensesResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 403 {object} map[string]string "Not a member"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/expenses [get]
func (h *expenseHandler) listExpenses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListExpensesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListExpenses", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	from, to, err := parseWindowQuery(c, h.loc)
	if err != nil {
		respondWithError(c, err, "Invalid date range")
		return
	}
	params.From, params.To = from, to

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	expenses, nextToken, err := h.expenseService.ListExpenses(c.Request.Context(), c.Param("workspace_id"), userID, params)
	if err != nil {
		respondWithError(c, err, "Failed to list expenses")
		return
	}

	c.JSON(http.StatusOK, dto.ToListExpensesResponse(expenses, nextToken))
}

// getExpense godoc
// @Summary Get an expense
// @Tags expenses
// @Produce  json
// @Param   workspace_id path string true "Workspace ID"
// @Param   expense_id path string true "Expense ID"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 403 {object} map[string]string "Not a member"
// @Failure 404 {object} map[string]string "Expense not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/expenses/{expense_id} [get]
func (h *expenseHandler) getExpense(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	expense, err := h.expenseService.GetExpenseByID(c.Request.Context(), c.Param("workspace_id"), c.Param("expense_id"), userID)
	if err != nil {
		respondWithError(c, err, "Failed to get expense")
		return
	}

	c.JSON(http.StatusOK, dto.ToExpenseResponse(expense))
}

// updateExpense godoc
// @Summary Update an expense
// @Description Patches amount, category, description, date, recurring flag or split details. Allowed for the payer or an owner/admin.
// @Tags expenses
// @Accept  json
// @Produce  json
// @Param   workspace_id path string true "Workspace ID"
// @Param   expense_id path string true "Expense ID"
// @Param   patch body dto.UpdateExpenseRequest true "Fields to change"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Expense not found or modified concurrently"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/expenses/{expense_id} [patch]
func (h *expenseHandler) updateExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateExpense", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	expense, err := h.expenseService.UpdateExpense(c.Request.Context(), c.Param("workspace_id"), c.Param("expense_id"), req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to update expense")
		return
	}

	c.JSON(http.StatusOK, dto.ToExpenseResponse(expense))
}

// deleteExpense godoc
// @Summary Delete an expense
// @Description Permanently deletes an expense. Allowed for the payer or an owner/admin.
// @Tags expenses
// @Param   workspace_id path string true "Workspace ID"
// @Param   expense_id path string true "Expense ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Expense not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/expenses/{expense_id} [delete]
func (h *expenseHandler) deleteExpense(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.expenseService.DeleteExpense(c.Request.Context(), c.Param("workspace_id"), c.Param("expense_id"), userID); err != nil {
		respondWithError(c, err, "Failed to delete expense")
		return
	}

	c.Status(http.StatusNoContent)
}
