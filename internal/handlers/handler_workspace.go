package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
	"github.com/SscSPs/household_ledger/internal/dto"
	"github.com/SscSPs/household_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// workspaceHandler handles HTTP requests related to workspaces and their members.
type workspaceHandler struct {
	workspaceService portssvc.WorkspaceSvcFacade
}

// newWorkspaceHandler creates a new workspaceHandler.
func newWorkspaceHandler(ws portssvc.WorkspaceSvcFacade) *workspaceHandler {
	return &workspaceHandler{
		workspaceService: ws,
	}
}

// registerWorkspaceRoutes registers workspace routes; expense, budget and report
// routes are nested under the returned workspace-specific group.
func registerWorkspaceRoutes(rg *gin.RouterGroup, workspaceService portssvc.WorkspaceSvcFacade) *gin.RouterGroup {
	h := newWorkspaceHandler(workspaceService)

	workspaces := rg.Group("/workspaces")
	{
		workspaces.POST("", h.createWorkspace)
		workspaces.GET("", h.listUserWorkspaces)
	}

	workspaceSpecific := rg.Group("/workspaces/:workspace_id")
	{
		workspaceSpecific.GET("", h.getWorkspace)
		workspaceSpecific.PUT("/split-policy", h.updateSplitPolicy)

		members := workspaceSpecific.Group("/members")
		{
			members.GET("", h.listMembers)
			members.POST("", h.addMember)
			members.DELETE("/:user_id", h.removeMember)
		}
	}
	return workspaceSpecific
}

// createWorkspace godoc
// @Summary Create a new workspace
// @Description Creates a personal, split or joint workspace and makes the creator its owner.
// @Tags workspaces
// @Accept  json
// @Produce  json
// @Param   workspace body dto.CreateWorkspaceRequest true "Workspace details"
// @Success 201 {object} dto.WorkspaceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create workspace"
// @Security BearerAuth
// @Router /workspaces [post]
func (h *workspaceHandler) createWorkspace(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateWorkspace", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	workspace, err := h.workspaceService.CreateWorkspace(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondWithError(c, err, "Failed to create workspace")
		return
	}

	c.JSON(http.StatusCreated, dto.ToWorkspaceResponse(workspace))
}

// listUserWorkspaces godoc
// @Summary List workspaces for current user
// @Description Retrieves the workspaces the authenticated user currently belongs to.
// @Tags workspaces
// @Produce  json
// @Success 200 {object} dto.ListWorkspacesResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list workspaces"
// @Security BearerAuth
// @Router /workspaces [get]
func (h *workspaceHandler) listUserWorkspaces(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	workspaces, err := h.workspaceService.ListUserWorkspaces(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err, "Failed to list workspaces")
		return
	}

	c.JSON(http.StatusOK, dto.ToListWorkspacesResponse(workspaces))
}

// getWorkspace godoc
// @Summary Get a workspace
// @Tags workspaces
// @Produce  json
// @Param   workspace_id path string true "Workspace ID"
// @Success 200 {object} dto.WorkspaceResponse
// @Failure 403 {object} map[string]string "Not a member"
// @Failure 404 {object} map[string]string "Workspace not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id} [get]
func (h *workspaceHandler) getWorkspace(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	workspace, err := h.workspaceService.FindWorkspaceByID(c.Request.Context(), c.Param("workspace_id"), userID)
	if err != nil {
		respondWithError(c, err, "Failed to get workspace")
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkspaceResponse(workspace))
}

// updateSplitPolicy godoc
// @Summary Change the split policy
// @Description Sets the default split method of a split workspace. Custom splits need an owner share in percent.
// @Tags workspaces
// @Accept  json
// @Produce  json
// @Param   workspace_id path string true "Workspace ID"
// @Param   policy body dto.UpdateSplitPolicyRequest true "Split policy"
// @Success 200 {object} dto.WorkspaceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Owner or admin required"
// @Failure 404 {object} map[string]string "Workspace not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/split-policy [put]
func (h *workspaceHandler) updateSplitPolicy(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateSplitPolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateSplitPolicy", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	workspace, err := h.workspaceService.UpdateSplitPolicy(c.Request.Context(), c.Param("workspace_id"), req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to update split policy")
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkspaceResponse(workspace))
}

// listMembers godoc
// @Summary List workspace members
// @Tags workspaces
// @Produce  json
// @Param   workspace_id path string true "Workspace ID"
// @Param   includeRemoved query bool false "Include members who left"
// @Success 200 {object} dto.ListMembersResponse
// @Failure 403 {object} map[string]string "Not a member"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/members [get]
func (h *workspaceHandler) listMembers(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	includeRemoved, _ := strconv.ParseBool(c.Query("includeRemoved"))

	members, err := h.workspaceService.ListWorkspaceMembers(c.Request.Context(), c.Param("workspace_id"), userID, includeRemoved)
	if err != nil {
		respondWithError(c, err, "Failed to list members")
		return
	}

	c.JSON(http.StatusOK, dto.ToListMembersResponse(members))
}

// addMember godoc
// @Summary Add a member to a workspace
// @Description Adds a user with the ADMIN or MEMBER role (requires owner or admin).
// @Tags workspaces
// @Accept  json
// @Produce  json
// @Param   workspace_id path string true "Workspace ID"
// @Param   member body dto.AddMemberRequest true "User ID and role"
// @Success 201 {object} dto.MemberResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Owner or admin required"
// @Failure 409 {object} map[string]string "Already a member"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/members [post]
func (h *workspaceHandler) addMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddMember", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	addingUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	member, err := h.workspaceService.AddMember(c.Request.Context(), c.Param("workspace_id"), req, addingUserID)
	if err != nil {
		respondWithError(c, err, "Failed to add member")
		return
	}

	c.JSON(http.StatusCreated, dto.ToMemberResponse(member))
}

// removeMember godoc
// @Summary Remove a member from a workspace
// @Description Marks the membership as removed. Members may remove themselves; removing others requires owner or admin.
// @Tags workspaces
// @Param   workspace_id path string true "Workspace ID"
// @Param   user_id path string true "User ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "The owner cannot be removed"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Member not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/members/{user_id} [delete]
func (h *workspaceHandler) removeMember(c *gin.Context) {
	requestingUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	err := h.workspaceService.RemoveMember(c.Request.Context(), c.Param("workspace_id"), c.Param("user_id"), requestingUserID)
	if err != nil {
		respondWithError(c, err, "Failed to remove member")
		return
	}

	c.Status(http.StatusNoContent)
}
