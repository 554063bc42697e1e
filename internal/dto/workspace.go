package dto

import (
	"encoding/json"
	"time"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// --- Workspace DTOs ---

// CreateWorkspaceRequest defines data for creating a new workspace.
type CreateWorkspaceRequest struct {
	Name          string               `json:"name" binding:"required,max=100"`
	Type          domain.WorkspaceType `json:"type" binding:"required,workspacetype"`
	SplitMethod   domain.SplitMethod   `json:"splitMethod" binding:"omitempty,splitmethod"`
	OwnerShare    *decimal.Decimal     `json:"ownerShare" binding:"omitempty,gte=0,lte=100"` // percent, custom split only
	MonthlyTarget *decimal.Decimal     `json:"monthlyTarget" binding:"omitempty,gte=0"`
	MonthlyBudget *decimal.Decimal     `json:"monthlyBudget" binding:"omitempty,gte=0"`
}

// UpdateSplitPolicyRequest changes the default split policy.
type UpdateSplitPolicyRequest struct {
	SplitMethod domain.SplitMethod `json:"splitMethod" binding:"required,splitmethod"`
	OwnerShare  *decimal.Decimal   `json:"ownerShare" binding:"omitempty,gte=0,lte=100"`
}

// SetOverallLimitRequest sets the monthly ceiling; a null limit clears it.
type SetOverallLimitRequest struct {
	Limit *decimal.Decimal `json:"limit" binding:"omitempty,gte=0"`
}

// WorkspaceResponse defines data returned for a workspace.
type WorkspaceResponse struct {
	WorkspaceID       string               `json:"workspaceID"`
	Name              string               `json:"name"`
	Type              domain.WorkspaceType `json:"type"`
	SplitMethod       domain.SplitMethod   `json:"splitMethod"`
	CustomSplitConfig json.RawMessage      `json:"customSplitConfig,omitempty"`
	MonthlyTarget     *Money               `json:"monthlyTarget,omitempty"`
	MonthlyBudget     *Money               `json:"monthlyBudget,omitempty"`
	CreatedAt         time.Time            `json:"createdAt"`
	CreatedBy         string               `json:"createdBy"`
	LastUpdatedAt     time.Time            `json:"lastUpdatedAt"`
	LastUpdatedBy     string               `json:"lastUpdatedBy"`
}

// ToWorkspaceResponse converts domain.Workspace to DTO.
func ToWorkspaceResponse(w *domain.Workspace) WorkspaceResponse {
	return WorkspaceResponse{
		WorkspaceID:       w.WorkspaceID,
		Name:              w.Name,
		Type:              w.Type,
		SplitMethod:       w.SplitMethod,
		CustomSplitConfig: w.CustomSplitConfig,
		MonthlyTarget:     NewMoneyPtr(w.MonthlyTarget),
		MonthlyBudget:     NewMoneyPtr(w.MonthlyBudget),
		CreatedAt:         w.CreatedAt,
		CreatedBy:         w.CreatedBy,
		LastUpdatedAt:     w.LastUpdatedAt,
		LastUpdatedBy:     w.LastUpdatedBy,
	}
}

// ListWorkspacesResponse wraps a list of workspaces.
type ListWorkspacesResponse struct {
	Workspaces []WorkspaceResponse `json:"workspaces"`
}

// ToListWorkspacesResponse converts a slice of domain.Workspace to DTO.
func ToListWorkspacesResponse(ws []domain.Workspace) ListWorkspacesResponse {
	list := make([]WorkspaceResponse, len(ws))
	for i := range ws {
		list[i] = ToWorkspaceResponse(&ws[i])
	}
	return ListWorkspacesResponse{Workspaces: list}
}

// --- Membership DTOs ---

// AddMemberRequest defines data for adding a user to a workspace.
type AddMemberRequest struct {
	UserID   string            `json:"userID" binding:"required"`
	UserName string            `json:"userName" binding:"max=100"`
	Role     domain.MemberRole `json:"role" binding:"required,oneof=ADMIN MEMBER"`
}

// MemberResponse defines data returned about a membership.
type MemberResponse struct {
	UserID      string            `json:"userID"`
	UserName    string            `json:"userName"`
	WorkspaceID string            `json:"workspaceID"`
	Role        domain.MemberRole `json:"role"`
	JoinedAt    time.Time         `json:"joinedAt"`
}

// ToMemberResponse converts domain.Member to DTO.
func ToMemberResponse(m *domain.Member) MemberResponse {
	return MemberResponse{
		UserID:      m.UserID,
		UserName:    m.UserName,
		WorkspaceID: m.WorkspaceID,
		Role:        m.Role,
		JoinedAt:    m.JoinedAt,
	}
}

// ListMembersResponse wraps a list of memberships.
type ListMembersResponse struct {
	Members []MemberResponse `json:"members"`
}

// ToListMembersResponse converts a slice of domain.Member to DTO.
func ToListMembersResponse(members []domain.Member) ListMembersResponse {
	list := make([]MemberResponse, len(members))
	for i := range members {
		list[i] = ToMemberResponse(&members[i])
	}
	return ListMembersResponse{Members: list}
}
