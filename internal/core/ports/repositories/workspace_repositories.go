package repositories

import (
	"context"

	"github.com/SscSPs/household_ledger/internal/core/domain"
)

// WorkspaceReader defines read operations for workspace data
type WorkspaceReader interface {
	// FindWorkspaceByID retrieves a specific workspace by its ID.
	FindWorkspaceByID(ctx context.Context, workspaceID string) (*domain.Workspace, error)

	// ListWorkspacesByUserID retrieves all workspaces a user currently belongs to.
	ListWorkspacesByUserID(ctx context.Context, userID string) ([]domain.Workspace, error)
}

// WorkspaceWriter defines write operations for workspace data
type WorkspaceWriter interface {
	// SaveWorkspace persists a new workspace together with its owner membership.
	SaveWorkspace(ctx context.Context, workspace domain.Workspace, owner domain.Member) error

	// UpdateWorkspace updates settings of an existing workspace (split policy, limits, name).
	UpdateWorkspace(ctx context.Context, workspace domain.Workspace) error
}

// WorkspaceMembershipManager defines operations for managing workspace memberships
type WorkspaceMembershipManager interface {
	// AddMember adds a user to a workspace, reactivating a removed membership if present.
	AddMember(ctx context.Context, member domain.Member) error

	// FindMember retrieves the membership of a user in a workspace.
	FindMember(ctx context.Context, workspaceID, userID string) (*domain.Member, error)

	// ListMembers retrieves every membership of a workspace, including removed ones.
	ListMembers(ctx context.Context, workspaceID string) ([]domain.Member, error)

	// UpdateMemberRole changes a user's role in a workspace.
	UpdateMemberRole(ctx context.Context, workspaceID, userID string, role domain.MemberRole) error
}

// WorkspaceRepositoryFacade combines all workspace-related repository interfaces
type WorkspaceRepositoryFacade interface {
	WorkspaceReader
	WorkspaceWriter
	WorkspaceMembershipManager
}
