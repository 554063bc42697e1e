package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/SscSPs/household_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/household_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
	"github.com/SscSPs/household_ledger/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// workspaceService implements the WorkspaceSvcFacade interface
type workspaceService struct {
	BaseService
	workspaceRepo portsrepo.WorkspaceRepositoryFacade
	now           func() time.Time
}

// WorkspaceServiceOption is a functional option for configuring the workspace service
type WorkspaceServiceOption func(*workspaceService)

// WithWorkspaceClock overrides the clock used for audit timestamps.
func WithWorkspaceClock(now func() time.Time) WorkspaceServiceOption {
	return func(s *workspaceService) {
		s.now = now
	}
}

// NewWorkspaceService creates a new workspace service. The service authorizes its own calls.
func NewWorkspaceService(workspaceRepo portsrepo.WorkspaceRepositoryFacade, options ...WorkspaceServiceOption) portssvc.WorkspaceSvcFacade {
	svc := &workspaceService{
		workspaceRepo: workspaceRepo,
		now:           time.Now,
	}
	svc.WorkspaceAuthorizer = svc
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure workspaceService implements the WorkspaceSvcFacade interface
var _ portssvc.WorkspaceSvcFacade = (*workspaceService)(nil)

// FindWorkspaceByID retrieves a workspace the requesting user belongs to
func (s *workspaceService) FindWorkspaceByID(ctx context.Context, workspaceID string, requestingUserID string) (*domain.Workspace, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, workspaceID, domain.RoleMember); err != nil {
		return nil, err
	}

	workspace, err := s.workspaceRepo.FindWorkspaceByID(ctx, workspaceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find workspace by ID",
				slog.String("workspace_id", workspaceID))
		}
		return nil, err
	}
	return workspace, nil
}

// ListUserWorkspaces retrieves all workspaces a user currently belongs to
func (s *workspaceService) ListUserWorkspaces(ctx context.Context, userID string) ([]domain.Workspace, error) {
	workspaces, err := s.workspaceRepo.ListWorkspacesByUserID(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list workspaces for user",
			slog.String("user_id", userID))
		return nil, err
	}
	if workspaces == nil {
		return []domain.Workspace{}, nil
	}

	s.LogDebug(ctx, "Workspaces listed successfully",
		slog.Int("count", len(workspaces)),
		slog.String("user_id", userID))
	return workspaces, nil
}

// ListWorkspaceMembers retrieves the members of a workspace
func (s *workspaceService) ListWorkspaceMembers(ctx context.Context, workspaceID string, requestingUserID string, includeRemoved bool) ([]domain.Member, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, workspaceID, domain.RoleMember); err != nil {
		return nil, err
	}

	members, err := s.workspaceRepo.ListMembers(ctx, workspaceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list workspace members",
			slog.String("workspace_id", workspaceID))
		return nil, err
	}

	result := make([]domain.Member, 0, len(members))
	for _, m := range members {
		if includeRemoved || m.IsCurrent() {
			result = append(result, m)
		}
	}
	return result, nil
}

// CreateWorkspace creates a new workspace with the creator as its owner
func (s *workspaceService) CreateWorkspace(ctx context.Context, req dto.CreateWorkspaceRequest, creatorUserID string) (*domain.Workspace, error) {
	now := s.now()
	workspace := domain.Workspace{
		WorkspaceID:   uuid.NewString(),
		Name:          req.Name,
		Type:          req.Type,
		SplitMethod:   domain.SplitEqual,
		MonthlyTarget: req.MonthlyTarget,
		MonthlyBudget: req.MonthlyBudget,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
			Version:       1,
		},
	}
	if !workspace.Type.IsValid() {
		return nil, apperrors.NewValidationFailedError("unknown workspace type " + string(req.Type))
	}
	if req.SplitMethod != "" {
		if err := applySplitPolicy(&workspace, req.SplitMethod, req.OwnerShare); err != nil {
			return nil, err
		}
	}

	owner := domain.Member{
		UserID:      creatorUserID,
		WorkspaceID: workspace.WorkspaceID,
		Role:        domain.RoleOwner,
		JoinedAt:    now,
	}
	if err := s.workspaceRepo.SaveWorkspace(ctx, workspace, owner); err != nil {
		s.LogError(ctx, err, "Failed to save workspace",
			slog.String("workspace_id", workspace.WorkspaceID))
		return nil, err
	}

	s.LogInfo(ctx, "Workspace created successfully",
		slog.String("workspace_id", workspace.WorkspaceID),
		slog.String("type", string(workspace.Type)),
		slog.String("creator_id", creatorUserID))
	return &workspace, nil
}

var hundredPercent = decimal.NewFromInt(100)

// applySplitPolicy validates and stores a split method on the workspace.
func applySplitPolicy(workspace *domain.Workspace, method domain.SplitMethod, ownerShare *decimal.Decimal) error {
	if !method.IsValid() {
		return apperrors.NewValidationFailedError("unknown split method " + string(method))
	}
	workspace.SplitMethod = method
	workspace.CustomSplitConfig = nil
	if method != domain.SplitCustom {
		return nil
	}
	if ownerShare == nil {
		return apperrors.NewValidationFailedError("ownerShare is required for a custom split")
	}
	if ownerShare.IsNegative() || ownerShare.GreaterThan(hundredPercent) {
		return apperrors.NewValidationFailedError("ownerShare must be between 0 and 100")
	}
	workspace.CustomSplitConfig = domain.EncodeCustomSplitConfig(*ownerShare)
	return nil
}

// UpdateSplitPolicy changes the default split policy of a split workspace
func (s *workspaceService) UpdateSplitPolicy(ctx context.Context, workspaceID string, req dto.UpdateSplitPolicyRequest, requestingUserID string) (*domain.Workspace, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, workspaceID, domain.RoleAdmin); err != nil {
		return nil, err
	}

	workspace, err := s.workspaceRepo.FindWorkspaceByID(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	if workspace.Type != domain.WorkspaceSplit {
		return nil, apperrors.NewValidationFailedError("split policy only applies to split workspaces")
	}
	if err := applySplitPolicy(workspace, req.SplitMethod, req.OwnerShare); err != nil {
		return nil, err
	}

	return s.saveSettings(ctx, workspace, requestingUserID)
}

// UpdateOverallLimit sets or clears the monthly ceiling of a workspace
func (s *workspaceService) UpdateOverallLimit(ctx context.Context, workspaceID string, req dto.SetOverallLimitRequest, requestingUserID string) (*domain.Workspace, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, workspaceID, domain.RoleAdmin); err != nil {
		return nil, err
	}
	if req.Limit != nil && req.Limit.IsNegative() {
		return nil, apperrors.NewValidationFailedError("limit must not be negative")
	}

	workspace, err := s.workspaceRepo.FindWorkspaceByID(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	if workspace.Type == domain.WorkspaceJoint {
		workspace.MonthlyTarget = req.Limit
	} else {
		workspace.MonthlyBudget = req.Limit
	}

	return s.saveSettings(ctx, workspace, requestingUserID)
}

func (s *workspaceService) saveSettings(ctx context.Context, workspace *domain.Workspace, userID string) (*domain.Workspace, error) {
	workspace.LastUpdatedAt = s.now()
	workspace.LastUpdatedBy = userID
	if err := s.workspaceRepo.UpdateWorkspace(ctx, *workspace); err != nil {
		s.LogError(ctx, err, "Failed to update workspace",
			slog.String("workspace_id", workspace.WorkspaceID))
		return nil, err
	}
	workspace.Version++

	s.LogInfo(ctx, "Workspace settings updated",
		slog.String("workspace_id", workspace.WorkspaceID),
		slog.String("split_method", string(workspace.SplitMethod)),
		slog.String("user_id", userID))
	return workspace, nil
}

// AddMember adds a user to a workspace with a specific role
func (s *workspaceService) AddMember(ctx context.Context, workspaceID string, req dto.AddMemberRequest, addingUserID string) (*domain.Member, error) {
	if err := s.AuthorizeUser(ctx, addingUserID, workspaceID, domain.RoleAdmin); err != nil {
		return nil, err
	}
	if req.Role != domain.RoleAdmin && req.Role != domain.RoleMember {
		return nil, apperrors.NewValidationFailedError("role must be ADMIN or MEMBER")
	}

	existing, err := s.workspaceRepo.FindMember(ctx, workspaceID, req.UserID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil && existing.IsCurrent() {
		return nil, apperrors.NewConflictError("user " + req.UserID + " is already a member")
	}

	member := domain.Member{
		UserID:      req.UserID,
		UserName:    req.UserName,
		WorkspaceID: workspaceID,
		Role:        req.Role,
		JoinedAt:    s.now(),
	}
	if err := s.workspaceRepo.AddMember(ctx, member); err != nil {
		s.LogError(ctx, err, "Failed to add member to workspace",
			slog.String("target_user_id", req.UserID),
			slog.String("workspace_id", workspaceID))
		return nil, err
	}

	s.LogInfo(ctx, "Member added to workspace",
		slog.String("target_user_id", req.UserID),
		slog.String("workspace_id", workspaceID),
		slog.String("role", string(req.Role)),
		slog.String("added_by", addingUserID))
	return &member, nil
}

// RemoveMember marks a member as removed. Members may leave on their own;
// removing someone else requires OWNER or ADMIN. The owner cannot be removed.
func (s *workspaceService) RemoveMember(ctx context.Context, workspaceID, targetUserID, requestingUserID string) error {
	required := domain.RoleAdmin
	if targetUserID == requestingUserID {
		required = domain.RoleMember
	}
	if err := s.AuthorizeUser(ctx, requestingUserID, workspaceID, required); err != nil {
		return err
	}

	target, err := s.workspaceRepo.FindMember(ctx, workspaceID, targetUserID)
	if err != nil {
		return err
	}
	if !target.IsCurrent() {
		return apperrors.NewNotFoundError("member " + targetUserID + " not found")
	}
	if target.Role == domain.RoleOwner {
		return apperrors.NewValidationFailedError("the workspace owner cannot be removed")
	}

	if err := s.workspaceRepo.UpdateMemberRole(ctx, workspaceID, targetUserID, domain.RoleRemoved); err != nil {
		s.LogError(ctx, err, "Failed to remove member",
			slog.String("target_user_id", targetUserID),
			slog.String("workspace_id", workspaceID))
		return err
	}

	s.LogInfo(ctx, "Member removed from workspace",
		slog.String("target_user_id", targetUserID),
		slog.String("workspace_id", workspaceID),
		slog.String("removed_by", requestingUserID))
	return nil
}

// AuthorizeUserAction checks if a user holds at least requiredRole in a workspace
func (s *workspaceService) AuthorizeUserAction(ctx context.Context, userID, workspaceID string, requiredRole domain.MemberRole) error {
	if userID == "" {
		return apperrors.ErrUnauthorized
	}

	member, err := s.workspaceRepo.FindMember(ctx, workspaceID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "User not a member of workspace",
				slog.String("user_id", userID),
				slog.String("workspace_id", workspaceID))
			return apperrors.NewForbiddenError("not a member of this workspace")
		}
		s.LogError(ctx, err, "Failed to find workspace membership",
			slog.String("user_id", userID),
			slog.String("workspace_id", workspaceID))
		return err
	}

	if !hasRequiredRole(member.Role, requiredRole) {
		s.LogDebug(ctx, "User does not have required role",
			slog.String("user_id", userID),
			slog.String("workspace_id", workspaceID),
			slog.String("user_role", string(member.Role)),
			slog.String("required_role", string(requiredRole)))
		return apperrors.NewForbiddenError("insufficient role for this action")
	}
	return nil
}
