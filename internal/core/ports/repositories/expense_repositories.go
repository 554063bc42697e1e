package repositories

import (
	"context"

	"github.com/SscSPs/household_ledger/internal/core/domain"
)

// ExpenseReader defines read operations for expense data
type ExpenseReader interface {
	// FindExpenseByID retrieves a specific expense by its unique identifier.
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)

	// ListExpenses retrieves every expense of a workspace, optionally restricted to a date range.
	// The result is the snapshot all aggregate views are computed from.
	ListExpenses(ctx context.Context, workspaceID string, dateRange *domain.DateRange) ([]domain.Expense, error)

	// ListExpensesPage retrieves one page of expenses ordered by date and creation time, newest first.
	// It returns the expenses, a token for the next page, and an error.
	ListExpensesPage(ctx context.Context, workspaceID string, dateRange *domain.DateRange, limit int, nextToken *string) ([]domain.Expense, *string, error)
}

// ExpenseWriter defines write operations for expense data
type ExpenseWriter interface {
	// SaveExpense persists a new expense.
	SaveExpense(ctx context.Context, expense domain.Expense) error

	// UpdateExpense overwrites the mutable fields of an expense, guarded by its version.
	UpdateExpense(ctx context.Context, expense domain.Expense) error

	// DeleteExpense removes an expense permanently.
	DeleteExpense(ctx context.Context, expenseID string) error
}

// ExpenseRepositoryFacade combines all expense-related repository interfaces
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}
