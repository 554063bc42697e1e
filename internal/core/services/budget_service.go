package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/SscSPs/household_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/household_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
	"github.com/SscSPs/household_ledger/internal/dto"
)

// budgetService implements the BudgetSvcFacade interface
type budgetService struct {
	BaseService
	budgetRepo portsrepo.CategoryBudgetRepositoryFacade
	now        func() time.Time
}

// BudgetServiceOption is a functional option for configuring the budget service
type BudgetServiceOption func(*budgetService)

// WithBudgetWorkspaceAuthorizer sets the workspace authorizer for the budget service.
func WithBudgetWorkspaceAuthorizer(authorizer portssvc.WorkspaceAuthorizerSvc) BudgetServiceOption {
	return func(s *budgetService) {
		s.WorkspaceAuthorizer = authorizer
	}
}

// NewBudgetService creates a new budget service with the provided options
func NewBudgetService(budgetRepo portsrepo.CategoryBudgetRepositoryFacade, options ...BudgetServiceOption) portssvc.BudgetSvcFacade {
	svc := &budgetService{
		budgetRepo: budgetRepo,
		now:        time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

// ListCategoryBudgets retrieves the category limits of a workspace
func (s *budgetService) ListCategoryBudgets(ctx context.Context, workspaceID, userID string) ([]domain.CategoryBudget, error) {
	if err := s.AuthorizeUser(ctx, userID, workspaceID, domain.RoleMember); err != nil {
		return nil, err
	}

	budgets, err := s.budgetRepo.ListCategoryBudgets(ctx, workspaceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list category budgets",
			slog.String("workspace_id", workspaceID))
		return nil, err
	}
	if budgets == nil {
		budgets = []domain.CategoryBudget{}
	}
	return budgets, nil
}

// SetCategoryBudget creates or replaces the limit of one category
func (s *budgetService) SetCategoryBudget(ctx context.Context, workspaceID, category string, req dto.SetCategoryBudgetRequest, userID string) (*domain.CategoryBudget, error) {
	if err := s.AuthorizeUser(ctx, userID, workspaceID, domain.RoleAdmin); err != nil {
		return nil, err
	}

	category = normalizeCategory(category)
	if category == "" {
		return nil, apperrors.NewValidationFailedError("category is required")
	}
	if req.Limit.IsNegative() {
		return nil, apperrors.NewValidationFailedError("limit must not be negative")
	}

	budget := domain.CategoryBudget{
		WorkspaceID:   workspaceID,
		Category:      category,
		Limit:         req.Limit,
		LastUpdatedAt: s.now(),
		LastUpdatedBy: userID,
	}
	if err := s.budgetRepo.UpsertCategoryBudget(ctx, budget); err != nil {
		s.LogError(ctx, err, "Failed to save category budget",
			slog.String("workspace_id", workspaceID),
			slog.String("category", category))
		return nil, err
	}

	s.LogInfo(ctx, "Category budget set",
		slog.String("workspace_id", workspaceID),
		slog.String("category", category),
		slog.String("limit", budget.Limit.String()))
	return &budget, nil
}

// DeleteCategoryBudget removes the limit of one category
func (s *budgetService) DeleteCategoryBudget(ctx context.Context, workspaceID, category, userID string) error {
	if err := s.AuthorizeUser(ctx, userID, workspaceID, domain.RoleAdmin); err != nil {
		return err
	}

	category = normalizeCategory(category)
	if err := s.budgetRepo.DeleteCategoryBudget(ctx, workspaceID, category); err != nil {
		return err
	}

	s.LogInfo(ctx, "Category budget removed",
		slog.String("workspace_id", workspaceID),
		slog.String("category", category))
	return nil
}
