package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
	"github.com/SscSPs/household_ledger/internal/dto"
	"github.com/SscSPs/household_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// budgetHandler handles category limits and the overall monthly limit.
type budgetHandler struct {
	budgetService    portssvc.BudgetSvcFacade
	workspaceService portssvc.WorkspaceWriterSvc
}

func newBudgetHandler(bs portssvc.BudgetSvcFacade, ws portssvc.WorkspaceWriterSvc) *budgetHandler {
	return &budgetHandler{
		budgetService:    bs,
		workspaceService: ws,
	}
}

// registerBudgetRoutes registers budget routes under a workspace-specific group.
func registerBudgetRoutes(workspaceGroup *gin.RouterGroup, budgetService portssvc.BudgetSvcFacade, workspaceService portssvc.WorkspaceWriterSvc) {
	h := newBudgetHandler(budgetService, workspaceService)

	budgets := workspaceGroup.Group("/budgets")
	{
		budgets.GET("", h.listCategoryBudgets)
		budgets.PUT("/overall", h.setOverallLimit)
		budgets.PUT("/categories/:category", h.setCategoryBudget)
		budgets.DELETE("/categories/:category", h.deleteCategoryBudget)
	}
}

// listCategoryBudgets godoc
// @Summary List category limits
// @Tags budgets
// @Produce  json
// @Param   workspace_id path string true "Workspace ID"
// @Success 200 {object} dto.ListCategoryBudgetsResponse
// @Failure 403 {object} map[string]string "Not a member"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/budgets [get]
func (h *budgetHandler) listCategoryBudgets(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	budgets, err := h.budgetService.ListCategoryBudgets(c.Request.Context(), c.Param("workspace_id"), userID)
	if err != nil {
		respondWithError(c, err, "Failed to list budgets")
		return
	}

	c.JSON(http.StatusOK, dto.ToListCategoryBudgetsResponse(budgets))
}

// setCategoryBudget godoc
// @Summary Set a category limit
// @Description Creates or replaces the monthly limit of one category. A limit of 0 counts as not budgeted.
// @Tags budgets
// @Accept  json
// @Produce  json
// @Param   workspace_id path string true "Workspace ID"
// @Param   category path string true "Category ID"
// @Param   budget body dto.SetCategoryBudgetRequest true "Limit"
// @Success 200 {object} dto.CategoryBudgetResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Owner or admin required"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/budgets/categories/{category} [put]
func (h *budgetHandler) setCategoryBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SetCategoryBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetCategoryBudget", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	budget, err := h.budgetService.SetCategoryBudget(c.Request.Context(), c.Param("workspace_id"), c.Param("category"), req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to set budget")
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryBudgetResponse(budget))
}

// deleteCategoryBudget godoc
// @Summary Remove a category limit
// @Tags budgets
// @Param   workspace_id path string true "Workspace ID"
// @Param   category path string true "Category ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string "Owner or admin required"
// @Failure 404 {object} map[string]string "No limit configured"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/budgets/categories/{category} [delete]
func (h *budgetHandler) deleteCategoryBudget(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.budgetService.DeleteCategoryBudget(c.Request.Context(), c.Param("workspace_id"), c.Param("category"), userID); err != nil {
		respondWithError(c, err, "Failed to delete budget")
		return
	}

	c.Status(http.StatusNoContent)
}

// setOverallLimit godoc
// @Summary Set the overall monthly limit
// @Description Sets the monthly target of a joint workspace or the monthly budget of any other. Omit limit to clear it.
// @Tags budgets
// @Accept  json
// @Produce  json
// @Param   workspace_id path string true "Workspace ID"
// @Param   limit body dto.SetOverallLimitRequest true "Limit"
// @Success 200 {object} dto.WorkspaceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Owner or admin required"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/budgets/overall [put]
func (h *budgetHandler) setOverallLimit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SetOverallLimitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetOverallLimit", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	workspace, err := h.workspaceService.UpdateOverallLimit(c.Request.Context(), c.Param("workspace_id"), req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to set overall limit")
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkspaceResponse(workspace))
}
