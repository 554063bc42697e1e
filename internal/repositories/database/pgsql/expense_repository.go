package pgsql

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/SscSPs/household_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/household_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/household_ledger/internal/models"
	"github.com/SscSPs/household_ledger/internal/utils/mapping"
	"github.com/SscSPs/household_ledger/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultExpensePageSize = 20

type PgxExpenseRepository struct {
	BaseRepository
}

// newPgxExpenseRepository creates a new repository for expense data.
func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxExpenseRepository implements portsrepo.ExpenseRepositoryFacade
var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

const expenseSelectQuery = `
SELECT
	e.expense_id, e.workspace_id, e.payer_id, e.amount, e.category, e.description,
	e.expense_date, e.is_recurring, e.split_details,
	e.created_at, e.created_by, e.last_updated_at, e.last_updated_by, e.version
FROM expenses e
`

// queryExpenses runs the select with filterQuery appended and maps the rows.
func (r *PgxExpenseRepository) queryExpenses(ctx context.Context, filterQuery string, args ...any) ([]models.Expense, error) {
	rows, err := r.Pool.Query(ctx, expenseSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query expenses", err)
	}
	modelExpenses, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Expense])
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to collect expense rows", err)
	}
	return modelExpenses, nil
}

func toDomainExpenses(ms []models.Expense) ([]domain.Expense, error) {
	expenses, err := mapping.ToDomainExpenseSlice(ms)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to map expense rows", err)
	}
	return expenses, nil
}

// workspaceFilter builds the WHERE clause for a workspace and an optional
// inclusive date range. A zero bound is open.
func workspaceFilter(workspaceID string, dateRange *domain.DateRange) (string, []any) {
	var sb strings.Builder
	sb.WriteString("WHERE e.workspace_id = $1")
	args := []any{workspaceID}
	if dateRange != nil {
		if !dateRange.From.IsZero() {
			args = append(args, dateRange.From)
			sb.WriteString(" AND e.expense_date >= $" + strconv.Itoa(len(args)))
		}
		if !dateRange.To.IsZero() {
			args = append(args, dateRange.To)
			sb.WriteString(" AND e.expense_date <= $" + strconv.Itoa(len(args)))
		}
	}
	return sb.String(), args
}

func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	m, err := mapping.ToModelExpense(expense)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to map expense", err)
	}

	query := `
		INSERT INTO expenses (
			expense_id, workspace_id, payer_id, amount, category, description,
			expense_date, is_recurring, split_details,
			created_at, created_by, last_updated_at, last_updated_by, version
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err = r.Pool.Exec(ctx, query,
		m.ExpenseID,
		m.WorkspaceID,
		m.PayerID,
		m.Amount,
		m.Category,
		m.Description,
		m.ExpenseDate,
		m.IsRecurring,
		m.SplitDetails,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		1,
	)
	if err != nil {
		switch pgErrorCode(err) {
		case pgUniqueViolation:
			return apperrors.NewConflictError("expense ID " + expense.ExpenseID + " already exists")
		case pgForeignKeyViolation:
			return apperrors.NewNotFoundError("workspace " + expense.WorkspaceID + " not found")
		}
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to save expense "+expense.ExpenseID, err)
	}
	return nil
}

func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	rows, err := r.queryExpenses(ctx, "WHERE e.expense_id = $1", expenseID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, apperrors.NewNotFoundError("expense " + expenseID + " not found")
	}
	expense, err := mapping.ToDomainExpense(rows[0])
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to map expense "+expenseID, err)
	}
	return &expense, nil
}

// ListExpenses returns the whole (optionally date-bounded) log of a workspace.
func (r *PgxExpenseRepository) ListExpenses(ctx context.Context, workspaceID string, dateRange *domain.DateRange) ([]domain.Expense, error) {
	filter, args := workspaceFilter(workspaceID, dateRange)
	rows, err := r.queryExpenses(ctx, filter+" ORDER BY e.expense_date, e.created_at, e.expense_id;", args...)
	if err != nil {
		return nil, err
	}
	return toDomainExpenses(rows)
}

// ListExpensesPage retrieves a page of expenses, newest first, using token-based pagination.
func (r *PgxExpenseRepository) ListExpensesPage(ctx context.Context, workspaceID string, dateRange *domain.DateRange, limit int, nextToken *string) ([]domain.Expense, *string, error) {
	if limit <= 0 {
		limit = defaultExpensePageSize
	}
	// One extra row tells us whether another page exists.
	fetchLimit := limit + 1

	filter, args := workspaceFilter(workspaceID, dateRange)
	if nextToken != nil && *nextToken != "" {
		cursor, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(http.StatusBadRequest, "invalid nextToken", errors.Join(apperrors.ErrValidation, err))
		}
		args = append(args, cursor.Date, cursor.CreatedAt, cursor.ID)
		n := len(args)
		filter += " AND (e.expense_date, e.created_at, e.expense_id) < ($" + strconv.Itoa(n-2) + ", $" + strconv.Itoa(n-1) + ", $" + strconv.Itoa(n) + ")"
	}
	args = append(args, fetchLimit)
	query := filter + " ORDER BY e.expense_date DESC, e.created_at DESC, e.expense_id DESC LIMIT $" + strconv.Itoa(len(args)) + ";"

	rows, err := r.queryExpenses(ctx, query, args...)
	if err != nil {
		return nil, nil, err
	}

	var nextTokenVal *string
	if len(rows) > limit {
		last := rows[limit-1]
		token := pagination.EncodeToken(pagination.Cursor{Date: last.ExpenseDate, CreatedAt: last.CreatedAt, ID: last.ExpenseID})
		nextTokenVal = &token
		rows = rows[:limit]
	}

	expenses, err := toDomainExpenses(rows)
	if err != nil {
		return nil, nil, err
	}
	return expenses, nextTokenVal, nil
}

// UpdateExpense writes the mutable fields, bumping the version only if it still matches.
func (r *PgxExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	m, err := mapping.ToModelExpense(expense)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to map expense", err)
	}

	query := `
		UPDATE expenses
		SET amount = $1, category = $2, description = $3, expense_date = $4,
			is_recurring = $5, split_details = $6,
			last_updated_at = $7, last_updated_by = $8, version = version + 1
		WHERE expense_id = $9 AND version = $10;
	`
	result, err := r.Pool.Exec(ctx, query,
		m.Amount,
		m.Category,
		m.Description,
		m.ExpenseDate,
		m.IsRecurring,
		m.SplitDetails,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.ExpenseID,
		m.Version,
	)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to update expense "+expense.ExpenseID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("expense " + expense.ExpenseID + " not found or version mismatch")
	}
	return nil
}

func (r *PgxExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	result, err := r.Pool.Exec(ctx, `DELETE FROM expenses WHERE expense_id = $1;`, expenseID)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to delete expense "+expenseID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("expense " + expenseID + " not found")
	}
	return nil
}
