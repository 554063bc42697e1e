package services

import (
	"context"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/SscSPs/household_ledger/internal/dto"
)

// BudgetSvcFacade defines operations on per-category spending limits
type BudgetSvcFacade interface {
	// ListCategoryBudgets retrieves the category limits of a workspace.
	ListCategoryBudgets(ctx context.Context, workspaceID, userID string) ([]domain.CategoryBudget, error)

	// SetCategoryBudget creates or replaces the limit of one category.
	SetCategoryBudget(ctx context.Context, workspaceID, category string, req dto.SetCategoryBudgetRequest, userID string) (*domain.CategoryBudget, error)

	// DeleteCategoryBudget removes the limit of one category.
	DeleteCategoryBudget(ctx context.Context, workspaceID, category, userID string) error
}
