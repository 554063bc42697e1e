package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/SscSPs/household_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
	"github.com/SscSPs/household_ledger/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	WorkspaceAuthorizer portssvc.WorkspaceAuthorizerSvc
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogWarn logs a warning with consistent formatting
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Warn(msg, keyvals...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// AuthorizeUser checks if a user has the required role for a workspace.
// Without an authorizer every request is denied.
func (s *BaseService) AuthorizeUser(ctx context.Context, userID, workspaceID string, requiredRole domain.MemberRole) error {
	if s.WorkspaceAuthorizer != nil {
		return s.WorkspaceAuthorizer.AuthorizeUserAction(ctx, userID, workspaceID, requiredRole)
	}
	s.LogWarn(ctx, "No workspace authorizer configured, denying access",
		slog.String("user_id", userID),
		slog.String("workspace_id", workspaceID),
		slog.String("required_role", string(requiredRole)))
	return apperrors.NewForbiddenError("access denied")
}

// roleRank orders roles so that a higher rank satisfies any lower requirement.
var roleRank = map[domain.MemberRole]int{
	domain.RoleOwner:  3,
	domain.RoleAdmin:  2,
	domain.RoleMember: 1,
}

// hasRequiredRole checks if the user's role meets or exceeds the required role.
// Removed and unknown roles satisfy nothing.
func hasRequiredRole(userRole, requiredRole domain.MemberRole) bool {
	rank, ok := roleRank[userRole]
	if !ok {
		return false
	}
	return rank >= roleRank[requiredRole]
}
