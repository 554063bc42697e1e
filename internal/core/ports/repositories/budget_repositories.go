package repositories

import (
	"context"

	"github.com/SscSPs/household_ledger/internal/core/domain"
)

// CategoryBudgetReader defines read operations for category limits
type CategoryBudgetReader interface {
	// ListCategoryBudgets retrieves all category limits configured for a workspace.
	ListCategoryBudgets(ctx context.Context, workspaceID string) ([]domain.CategoryBudget, error)
}

// CategoryBudgetWriter defines write operations for category limits
type CategoryBudgetWriter interface {
	// UpsertCategoryBudget creates or replaces the limit for a (workspace, category) pair.
	UpsertCategoryBudget(ctx context.Context, budget domain.CategoryBudget) error

	// DeleteCategoryBudget removes the limit for a (workspace, category) pair.
	DeleteCategoryBudget(ctx context.Context, workspaceID, category string) error
}

// CategoryBudgetRepositoryFacade combines all category budget repository interfaces
type CategoryBudgetRepositoryFacade interface {
	CategoryBudgetReader
	CategoryBudgetWriter
}
