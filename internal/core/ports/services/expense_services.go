package services

import (
	"context"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/SscSPs/household_ledger/internal/dto"
)

// ExpenseReaderSvc defines read operations for expense data
type ExpenseReaderSvc interface {
	// GetExpenseByID retrieves a single expense of a workspace.
	GetExpenseByID(ctx context.Context, workspaceID, expenseID, userID string) (*domain.Expense, error)

	// ListExpenses retrieves one page of a workspace's expenses, newest first.
	ListExpenses(ctx context.Context, workspaceID, userID string, params dto.ListExpensesParams) ([]domain.Expense, *string, error)
}

// ExpenseWriterSvc defines write operations for expense data
type ExpenseWriterSvc interface {
	// CreateExpense records a new expense. The payer defaults to the caller.
	CreateExpense(ctx context.Context, workspaceID string, req dto.CreateExpenseRequest, userID string) (*domain.Expense, error)

	// UpdateExpense patches an expense. Allowed for its payer or a workspace owner/admin.
	UpdateExpense(ctx context.Context, workspaceID, expenseID string, req dto.UpdateExpenseRequest, userID string) (*domain.Expense, error)

	// DeleteExpense removes an expense. Allowed for its payer or a workspace owner/admin.
	DeleteExpense(ctx context.Context, workspaceID, expenseID, userID string) error
}

// ExpenseSvcFacade combines all expense-related service interfaces
type ExpenseSvcFacade interface {
	ExpenseReaderSvc
	ExpenseWriterSvc
}
