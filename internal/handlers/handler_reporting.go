package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
	"github.com/SscSPs/household_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

// reportingHandler serves the aggregate views of a workspace.
type reportingHandler struct {
	reportingService portssvc.ReportingService
	loc              *time.Location
}

func newReportingHandler(rs portssvc.ReportingService, loc *time.Location) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
		loc:              loc,
	}
}

// registerReportingRoutes registers report routes under a workspace-specific group.
func registerReportingRoutes(workspaceGroup *gin.RouterGroup, reportingService portssvc.ReportingService, loc *time.Location) {
	h := newReportingHandler(reportingService, loc)

	reports := workspaceGroup.Group("/reports")
	{
		reports.GET("/categories", h.categoryBreakdown)
		reports.GET("/members", h.memberBreakdown)
		reports.GET("/trend", h.trend)
		reports.GET("/settlement", h.settlement)
		reports.GET("/budget", h.budgetComparison)
		reports.GET("/remaining", h.pooledRemaining)
		reports.GET("/summary", h.summary)
	}
}

// categoryBreakdown godoc
// @Summary Spend per category
// @Description Totals spend per category, largest first. Missing bounds default to the current month.
// @Tags reports
// @Produce  json
// @Param   workspace_id path string true "Workspace ID"
// @Param   from query string false "Window start, RFC 3339 or YYYY-MM-DD"
// @Param   to query string false "Window end, RFC 3339 or YYYY-MM-DD"
// @Success 200 {object} dto.CategoryBreakdownResponse
// @Failure 400 {object} map[string]string "Invalid window"
// @Failure 403 {object} map[string]string "Not a member"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/reports/categories [get]
func (h *reportingHandler) categoryBreakdown(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	from, to, err := parseWindowQuery(c, h.loc)
	if err != nil {
		respondWithError(c, err, "Invalid date range")
		return
	}

	report, err := h.reportingService.CategoryBreakdown(c.Request.Context(), c.Param("workspace_id"), userID, from, to)
	if err != nil {
		respondWithError(c, err, "Failed to compute category breakdown")
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryBreakdownResponse(report))
}

// memberBreakdown godoc
// @Summary Spend per member and category
// @Tags reports
// @Produce  json
// @Param   workspace_id path string true "Workspace ID"
// @Param   from query string false "Window start, RFC 3339 or YYYY-MM-DD"
// @Param   to query string false "Window end, RFC 3339 or YYYY-MM-DD"
// @Success 200 {object} dto.MemberBreakdownResponse
// @Failure 400 {object} map[string]string "Invalid window"
// @Failure 403 {object} map[string]string "Not a member"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/reports/members [get]
func (h *reportingHandler) memberBreakdown(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	from, to, err := parseWindowQuery(c, h.loc)
	if err != nil {
		respondWithError(c, err, "Invalid date range")
		return
	}

	report, err := h.reportingService.MemberBreakdown(c.Request.Context(), c.Param("workspace_id"), userID, from, to)
	if err != nil {
		respondWithError(c, err, "Failed to compute member breakdown")
		return
	}

	c.JSON(http.StatusOK, dto.ToMemberBreakdownResponse(report))
}

// trend godoc
// @Summary Monthly spend trend
// @Description Monthly totals, oldest first, ending with the current month.
// @Tags reports
// @Produce  json
// @Param   workspace_id path string true "Workspace ID"
// @Param   months query int false "Number of months (1-60)"
// @Success 200 {object} dto.TrendResponse
// @Failure 400 {object} map[string]string "Invalid months"
// @Failure 403 {object} map[string]string "Not a member"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/reports/trend [get]
func (h *reportingHandler) trend(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	months := 0
	if raw := c.Query("months"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			respondWithError(c, apperrors.NewValidationFailedError("'months' must be a positive integer"), "Invalid months")
			return
		}
		months = n
	}

	trend, err := h.reportingService.Trend(c.Request.Context(), c.Param("workspace_id"), userID, months)
	if err != nil {
		respondWithError(c, err, "Failed to compute trend")
		return
	}

	c.JSON(http.StatusOK, dto.ToTrendResponse(trend))
}

// settlement godoc
// @Summary Member balances
// @Description All-time settlement of a split workspace. Positive balances are owed money, negative balances owe.
// @Tags reports
// @Produce  json
// @Param   workspace_id path string true "Workspace ID"
// @Success 200 {object} dto.SettlementResponse
// @Failure 400 {object} map[string]string "Not a split workspace"
// @Failure 403 {object} map[string]string "Not a member"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/reports/settlement [get]
func (h *reportingHandler) settlement(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	settlement, err := h.reportingService.Settlement(c.Request.Context(), c.Param("workspace_id"), userID)
	if err != nil {
		respondWithError(c, err, "Failed to compute settlement")
		return
	}

	c.JSON(http.StatusOK, dto.ToSettlementResponse(settlement))
}

// budgetComparison godoc
// @Summary Budget versus actual
// @Description Current month spend against the category limits and the overall limit.
// @Tags reports
// @Produce  json
// @Param   workspace_id path string true "Workspace ID"
// @Success 200 {object} dto.BudgetComparisonResponse
// @Failure 403 {object} map[string]string "Not a member"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/reports/budget [get]
func (h *reportingHandler) budgetComparison(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	report, err := h.reportingService.BudgetComparison(c.Request.Context(), c.Param("workspace_id"), userID)
	if err != nil {
		respondWithError(c, err, "Failed to compute budget comparison")
		return
	}

	c.JSON(http.StatusOK, dto.ToBudgetComparisonResponse(report.Window, &report.Comparison))
}

// pooledRemaining godoc
// @Summary Remaining monthly target
// @Description What is left of a joint workspace's monthly target this month; negative when over.
// @Tags reports
// @Produce  json
// @Param   workspace_id path string true "Workspace ID"
// @Success 200 {object} dto.PooledRemainingResponse
// @Failure 400 {object} map[string]string "Not a joint workspace"
// @Failure 403 {object} map[string]string "Not a member"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/reports/remaining [get]
func (h *reportingHandler) pooledRemaining(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	report, err := h.reportingService.PooledRemaining(c.Request.Context(), c.Param("workspace_id"), userID)
	if err != nil {
		respondWithError(c, err, "Failed to compute remaining target")
		return
	}

	c.JSON(http.StatusOK, dto.ToPooledRemainingResponse(report))
}

// summary godoc
// @Summary Dashboard summary
// @Description Category totals, recent trend, budget comparison and settlement or remaining target, computed from one snapshot.
// @Tags reports
// @Produce  json
// @Param   workspace_id path string true "Workspace ID"
// @Success 200 {object} dto.SummaryResponse
// @Failure 403 {object} map[string]string "Not a member"
// @Failure 404 {object} map[string]string "Workspace not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/reports/summary [get]
func (h *reportingHandler) summary(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	summary, err := h.reportingService.Summary(c.Request.Context(), c.Param("workspace_id"), userID)
	if err != nil {
		respondWithError(c, err, "Failed to compute summary")
		return
	}

	c.JSON(http.StatusOK, dto.ToSummaryResponse(summary))
}
