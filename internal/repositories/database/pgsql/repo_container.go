package pgsql

import (
	portsrepo "github.com/SscSPs/household_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ExpenseRepo:   newPgxExpenseRepository(dbPool),
		WorkspaceRepo: newPgxWorkspaceRepository(dbPool),
		BudgetRepo:    newPgxCategoryBudgetRepository(dbPool),
	}
}
