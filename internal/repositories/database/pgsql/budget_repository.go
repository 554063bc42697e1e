package pgsql

import (
	"context"
	"net/http"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/SscSPs/household_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/household_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/household_ledger/internal/models"
	"github.com/SscSPs/household_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCategoryBudgetRepository struct {
	BaseRepository
}

func newPgxCategoryBudgetRepository(pool *pgxpool.Pool) portsrepo.CategoryBudgetRepositoryFacade {
	return &PgxCategoryBudgetRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CategoryBudgetRepositoryFacade = (*PgxCategoryBudgetRepository)(nil)

func (r *PgxCategoryBudgetRepository) ListCategoryBudgets(ctx context.Context, workspaceID string) ([]domain.CategoryBudget, error) {
	query := `
		SELECT workspace_id, category, limit_amount, last_updated_at, last_updated_by
		FROM category_budgets
		WHERE workspace_id = $1
		ORDER BY category;
	`
	rows, err := r.Pool.Query(ctx, query, workspaceID)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query category budgets for workspace "+workspaceID, err)
	}
	budgets, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.CategoryBudget])
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to collect category budget rows", err)
	}
	return mapping.ToDomainCategoryBudgetSlice(budgets), nil
}

// UpsertCategoryBudget keeps one limit per (workspace, category).
func (r *PgxCategoryBudgetRepository) UpsertCategoryBudget(ctx context.Context, budget domain.CategoryBudget) error {
	m := mapping.ToModelCategoryBudget(budget)
	query := `
		INSERT INTO category_budgets (workspace_id, category, limit_amount, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (workspace_id, category) DO UPDATE
		SET limit_amount = EXCLUDED.limit_amount,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query, m.WorkspaceID, m.Category, m.LimitAmount, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return apperrors.NewNotFoundError("workspace " + budget.WorkspaceID + " not found")
		}
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to save budget for category "+budget.Category, err)
	}
	return nil
}

func (r *PgxCategoryBudgetRepository) DeleteCategoryBudget(ctx context.Context, workspaceID, category string) error {
	result, err := r.Pool.Exec(ctx, `DELETE FROM category_budgets WHERE workspace_id = $1 AND category = $2;`, workspaceID, category)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to delete budget for category "+category, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("no budget configured for category " + category)
	}
	return nil
}
