package services

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/SscSPs/household_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/household_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
	"github.com/SscSPs/household_ledger/internal/dto"
	"github.com/google/uuid"
)

const defaultExpensePageSize = 20

// expenseService implements the ExpenseSvcFacade interface
type expenseService struct {
	BaseService
	expenseRepo portsrepo.ExpenseRepositoryFacade
	memberRepo  portsrepo.WorkspaceMembershipManager
	now         func() time.Time
}

// ExpenseServiceOption is a functional option for configuring the expense service
type ExpenseServiceOption func(*expenseService)

// WithExpenseWorkspaceAuthorizer sets the workspace authorizer for the expense service.
func WithExpenseWorkspaceAuthorizer(authorizer portssvc.WorkspaceAuthorizerSvc) ExpenseServiceOption {
	return func(s *expenseService) {
		s.WorkspaceAuthorizer = authorizer
	}
}

// WithExpenseClock overrides the clock used for audit timestamps.
func WithExpenseClock(now func() time.Time) ExpenseServiceOption {
	return func(s *expenseService) {
		s.now = now
	}
}

// NewExpenseService creates a new expense service with the provided options
func NewExpenseService(expenseRepo portsrepo.ExpenseRepositoryFacade, memberRepo portsrepo.WorkspaceMembershipManager, options ...ExpenseServiceOption) portssvc.ExpenseSvcFacade {
	svc := &expenseService{
		expenseRepo: expenseRepo,
		memberRepo:  memberRepo,
		now:         time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure expenseService implements the ExpenseSvcFacade interface
var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

// CreateExpense records a new expense in a workspace
func (s *expenseService) CreateExpense(ctx context.Context, workspaceID string, req dto.CreateExpenseRequest, userID string) (*domain.Expense, error) {
	if err := s.AuthorizeUser(ctx, userID, workspaceID, domain.RoleMember); err != nil {
		return nil, err
	}

	current, err := s.currentMembers(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	payerID := req.PayerID
	if payerID == "" {
		payerID = userID
	}
	if _, ok := current[payerID]; !ok {
		return nil, apperrors.NewValidationFailedError("payer " + payerID + " is not a member of this workspace")
	}

	now := s.now()
	expense := domain.Expense{
		ExpenseID:    uuid.NewString(),
		WorkspaceID:  workspaceID,
		PayerID:      payerID,
		Amount:       req.Amount,
		Category:     normalizeCategory(req.Category),
		Description:  strings.TrimSpace(req.Description),
		Date:         req.Date,
		IsRecurring:  req.IsRecurring,
		SplitDetails: req.SplitDetails,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
			Version:       1,
		},
	}
	if err := validateExpense(&expense, current, true); err != nil {
		return nil, err
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		s.LogError(ctx, err, "Failed to save expense",
			slog.String("workspace_id", workspaceID),
			slog.String("expense_id", expense.ExpenseID))
		return nil, err
	}

	s.LogInfo(ctx, "Expense recorded",
		slog.String("workspace_id", workspaceID),
		slog.String("expense_id", expense.ExpenseID),
		slog.String("payer_id", payerID),
		slog.Bool("split_override", expense.HasSplitOverride()))
	return &expense, nil
}

// GetExpenseByID retrieves a single expense of a workspace
func (s *expenseService) GetExpenseByID(ctx context.Context, workspaceID, expenseID, userID string) (*domain.Expense, error) {
	if err := s.AuthorizeUser(ctx, userID, workspaceID, domain.RoleMember); err != nil {
		return nil, err
	}
	return s.findInWorkspace(ctx, workspaceID, expenseID)
}

// ListExpenses retrieves one page of expenses, newest first
func (s *expenseService) ListExpenses(ctx context.Context, workspaceID, userID string, params dto.ListExpensesParams) ([]domain.Expense, *string, error) {
	if err := s.AuthorizeUser(ctx, userID, workspaceID, domain.RoleMember); err != nil {
		return nil, nil, err
	}

	var dateRange *domain.DateRange
	if params.From != nil || params.To != nil {
		dateRange = &domain.DateRange{}
		if params.From != nil {
			dateRange.From = *params.From
		}
		if params.To != nil {
			dateRange.To = *params.To
		}
		if !dateRange.From.IsZero() && !dateRange.To.IsZero() && dateRange.To.Before(dateRange.From) {
			return nil, nil, apperrors.NewValidationFailedError("'to' must not be before 'from'")
		}
	}

	limit := params.Limit
	if limit <= 0 {
		limit = defaultExpensePageSize
	}

	expenses, nextToken, err := s.expenseRepo.ListExpensesPage(ctx, workspaceID, dateRange, limit, params.NextToken)
	if err != nil {
		if !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to list expenses",
				slog.String("workspace_id", workspaceID))
		}
		return nil, nil, err
	}
	if expenses == nil {
		expenses = []domain.Expense{}
	}
	return expenses, nextToken, nil
}

// UpdateExpense patches an expense; allowed for its payer or a workspace owner/admin
func (s *expenseService) UpdateExpense(ctx context.Context, workspaceID, expenseID string, req dto.UpdateExpenseRequest, userID string) (*domain.Expense, error) {
	existing, err := s.authorizeExpenseWrite(ctx, workspaceID, expenseID, userID)
	if err != nil {
		return nil, err
	}

	patch := req.ToPatch()
	if patch.Category != nil {
		category := normalizeCategory(*patch.Category)
		patch.Category = &category
	}
	if patch.Description != nil {
		description := strings.TrimSpace(*patch.Description)
		patch.Description = &description
	}
	updated := patch.Apply(*existing)
	updated.LastUpdatedAt = s.now()
	updated.LastUpdatedBy = userID

	// Only newly supplied shares are checked against current membership;
	// historic overrides may legitimately name members who have since left.
	var current map[string]domain.Member
	checkMembers := patch.SplitDetails != nil && !patch.ClearSplit
	if checkMembers {
		if current, err = s.currentMembers(ctx, workspaceID); err != nil {
			return nil, err
		}
	}
	if err := validateExpense(&updated, current, checkMembers); err != nil {
		return nil, err
	}

	if err := s.expenseRepo.UpdateExpense(ctx, updated); err != nil {
		s.LogError(ctx, err, "Failed to update expense",
			slog.String("workspace_id", workspaceID),
			slog.String("expense_id", expenseID))
		return nil, err
	}
	updated.Version++

	s.LogInfo(ctx, "Expense updated",
		slog.String("workspace_id", workspaceID),
		slog.String("expense_id", expenseID),
		slog.String("user_id", userID))
	return &updated, nil
}

// DeleteExpense removes an expense; allowed for its payer or a workspace owner/admin
func (s *expenseService) DeleteExpense(ctx context.Context, workspaceID, expenseID, userID string) error {
	if _, err := s.authorizeExpenseWrite(ctx, workspaceID, expenseID, userID); err != nil {
		return err
	}

	if err := s.expenseRepo.DeleteExpense(ctx, expenseID); err != nil {
		s.LogError(ctx, err, "Failed to delete expense",
			slog.String("workspace_id", workspaceID),
			slog.String("expense_id", expenseID))
		return err
	}

	s.LogInfo(ctx, "Expense deleted",
		slog.String("workspace_id", workspaceID),
		slog.String("expense_id", expenseID),
		slog.String("user_id", userID))
	return nil
}

// authorizeExpenseWrite loads the expense and checks that userID is its payer or can manage the workspace.
func (s *expenseService) authorizeExpenseWrite(ctx context.Context, workspaceID, expenseID, userID string) (*domain.Expense, error) {
	if err := s.AuthorizeUser(ctx, userID, workspaceID, domain.RoleMember); err != nil {
		return nil, err
	}

	expense, err := s.findInWorkspace(ctx, workspaceID, expenseID)
	if err != nil {
		return nil, err
	}
	if expense.PayerID == userID {
		return expense, nil
	}

	member, err := s.memberRepo.FindMember(ctx, workspaceID, userID)
	if err != nil {
		return nil, err
	}
	if !member.CanManage() {
		s.LogDebug(ctx, "User may not modify expense of another payer",
			slog.String("user_id", userID),
			slog.String("expense_id", expenseID))
		return nil, apperrors.NewForbiddenError("only the payer or a workspace admin can modify this expense")
	}
	return expense, nil
}

func (s *expenseService) findInWorkspace(ctx context.Context, workspaceID, expenseID string) (*domain.Expense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find expense",
				slog.String("expense_id", expenseID))
		}
		return nil, err
	}
	if expense.WorkspaceID != workspaceID {
		return nil, apperrors.NewNotFoundError("expense " + expenseID + " not found")
	}
	return expense, nil
}

func (s *expenseService) currentMembers(ctx context.Context, workspaceID string) (map[string]domain.Member, error) {
	members, err := s.memberRepo.ListMembers(ctx, workspaceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list workspace members",
			slog.String("workspace_id", workspaceID))
		return nil, err
	}
	current := make(map[string]domain.Member, len(members))
	for _, m := range members {
		if m.IsCurrent() {
			current[m.UserID] = m
		}
	}
	return current, nil
}

// validateExpense enforces the write-time invariants. When checkMembers is set,
// every split share must name a current member.
func validateExpense(e *domain.Expense, current map[string]domain.Member, checkMembers bool) error {
	if err := e.Validate(); err != nil {
		return apperrors.NewValidationFailedError(err.Error())
	}
	if !checkMembers {
		return nil
	}
	var unknown []string
	for memberID := range e.SplitDetails {
		if _, ok := current[memberID]; !ok {
			unknown = append(unknown, memberID)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return apperrors.NewValidationFailedError("split details name non-members: " + strings.Join(unknown, ", "))
	}
	return nil
}

func normalizeCategory(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}
