package services

import (
	"context"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/SscSPs/household_ledger/internal/dto"
)

// WorkspaceReaderSvc defines read operations for workspace data
type WorkspaceReaderSvc interface {
	// FindWorkspaceByID retrieves a workspace the requesting user is a current member of.
	FindWorkspaceByID(ctx context.Context, workspaceID string, requestingUserID string) (*domain.Workspace, error)

	// ListUserWorkspaces retrieves the workspaces a user currently belongs to.
	ListUserWorkspaces(ctx context.Context, userID string) ([]domain.Workspace, error)

	// ListWorkspaceMembers retrieves the memberships of a workspace.
	// Removed members are only included when includeRemoved is true.
	ListWorkspaceMembers(ctx context.Context, workspaceID string, requestingUserID string, includeRemoved bool) ([]domain.Member, error)
}

// WorkspaceWriterSvc defines write operations for workspace data
type WorkspaceWriterSvc interface {
	// CreateWorkspace persists a new workspace and makes the creator its owner.
	CreateWorkspace(ctx context.Context, req dto.CreateWorkspaceRequest, creatorUserID string) (*domain.Workspace, error)

	// UpdateSplitPolicy changes the default split policy of a workspace.
	UpdateSplitPolicy(ctx context.Context, workspaceID string, req dto.UpdateSplitPolicyRequest, requestingUserID string) (*domain.Workspace, error)

	// UpdateOverallLimit sets or clears the monthly ceiling (target for joint, budget otherwise).
	UpdateOverallLimit(ctx context.Context, workspaceID string, req dto.SetOverallLimitRequest, requestingUserID string) (*domain.Workspace, error)
}

// WorkspaceMembershipSvc defines operations for managing workspace membership
type WorkspaceMembershipSvc interface {
	// AddMember adds a user to a workspace. Only owners and admins can add members.
	AddMember(ctx context.Context, workspaceID string, req dto.AddMemberRequest, addingUserID string) (*domain.Member, error)

	// RemoveMember marks a membership as removed. History stays, future settlements exclude the member.
	RemoveMember(ctx context.Context, workspaceID, targetUserID, requestingUserID string) error
}

// WorkspaceAuthorizerSvc defines operations for workspace authorization
type WorkspaceAuthorizerSvc interface {
	// AuthorizeUserAction checks if a user holds at least requiredRole in a workspace.
	AuthorizeUserAction(ctx context.Context, userID, workspaceID string, requiredRole domain.MemberRole) error
}

// WorkspaceSvcFacade combines all workspace-related service interfaces
type WorkspaceSvcFacade interface {
	WorkspaceReaderSvc
	WorkspaceWriterSvc
	WorkspaceMembershipSvc
	WorkspaceAuthorizerSvc
}
