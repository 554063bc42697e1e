package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/SscSPs/household_ledger/internal/dto"
	"github.com/stretchr/testify/mock"
)

type MockWorkspaceService struct {
	mock.Mock
}

func (m *MockWorkspaceService) FindWorkspaceByID(ctx context.Context, workspaceID string, requestingUserID string) (*domain.Workspace, error) {
	args := m.Called(ctx, workspaceID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workspace), args.Error(1)
}

func (m *MockWorkspaceService) ListUserWorkspaces(ctx context.Context, userID string) ([]domain.Workspace, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Workspace), args.Error(1)
}

func (m *MockWorkspaceService) ListWorkspaceMembers(ctx context.Context, workspaceID string, requestingUserID string, includeRemoved bool) ([]domain.Member, error) {
	args := m.Called(ctx, workspaceID, requestingUserID, includeRemoved)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Member), args.Error(1)
}

func (m *MockWorkspaceService) CreateWorkspace(ctx context.Context, req dto.CreateWorkspaceRequest, creatorUserID string) (*domain.Workspace, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workspace), args.Error(1)
}

func (m *MockWorkspaceService) UpdateSplitPolicy(ctx context.Context, workspaceID string, req dto.UpdateSplitPolicyRequest, requestingUserID string) (*domain.Workspace, error) {
	args := m.Called(ctx, workspaceID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workspace), args.Error(1)
}

func (m *MockWorkspaceService) UpdateOverallLimit(ctx context.Context, workspaceID string, req dto.SetOverallLimitRequest, requestingUserID string) (*domain.Workspace, error) {
	args := m.Called(ctx, workspaceID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workspace), args.Error(1)
}

func (m *MockWorkspaceService) AddMember(ctx context.Context, workspaceID string, req dto.AddMemberRequest, addingUserID string) (*domain.Member, error) {
	args := m.Called(ctx, workspaceID, req, addingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockWorkspaceService) RemoveMember(ctx context.Context, workspaceID, targetUserID, requestingUserID string) error {
	args := m.Called(ctx, workspaceID, targetUserID, requestingUserID)
	return args.Error(0)
}

func (m *MockWorkspaceService) AuthorizeUserAction(ctx context.Context, userID, workspaceID string, requiredRole domain.MemberRole) error {
	args := m.Called(ctx, userID, workspaceID, requiredRole)
	return args.Error(0)
}

type MockExpenseService struct {
	mock.Mock
}

func (m *MockExpenseService) GetExpenseByID(ctx context.Context, workspaceID, expenseID, userID string) (*domain.Expense, error) {
	args := m.Called(ctx, workspaceID, expenseID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseService) ListExpenses(ctx context.Context, workspaceID, userID string, params dto.ListExpensesParams) ([]domain.Expense, *string, error) {
	args := m.Called(ctx, workspaceID, userID, params)
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	if args.Get(0) == nil {
		return nil, next, args.Error(2)
	}
	return args.Get(0).([]domain.Expense), next, args.Error(2)
}

func (m *MockExpenseService) CreateExpense(ctx context.Context, workspaceID string, req dto.CreateExpenseRequest, userID string) (*domain.Expense, error) {
	args := m.Called(ctx, workspaceID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseService) UpdateExpense(ctx context.Context, workspaceID, expenseID string, req dto.UpdateExpenseRequest, userID string) (*domain.Expense, error) {
	args := m.Called(ctx, workspaceID, expenseID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseService) DeleteExpense(ctx context.Context, workspaceID, expenseID, userID string) error {
	args := m.Called(ctx, workspaceID, expenseID, userID)
	return args.Error(0)
}

type MockBudgetService struct {
	mock.Mock
}

func (m *MockBudgetService) ListCategoryBudgets(ctx context.Context, workspaceID, userID string) ([]domain.CategoryBudget, error) {
	args := m.Called(ctx, workspaceID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategoryBudget), args.Error(1)
}

func (m *MockBudgetService) SetCategoryBudget(ctx context.Context, workspaceID, category string, req dto.SetCategoryBudgetRequest, userID string) (*domain.CategoryBudget, error) {
	args := m.Called(ctx, workspaceID, category, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CategoryBudget), args.Error(1)
}

func (m *MockBudgetService) DeleteCategoryBudget(ctx context.Context, workspaceID, category, userID string) error {
	args := m.Called(ctx, workspaceID, category, userID)
	return args.Error(0)
}

type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) CategoryBreakdown(ctx context.Context, workspaceID, userID string, from, to *time.Time) (*domain.CategoryReport, error) {
	args := m.Called(ctx, workspaceID, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CategoryReport), args.Error(1)
}

func (m *MockReportingService) MemberBreakdown(ctx context.Context, workspaceID, userID string, from, to *time.Time) (*domain.MemberReport, error) {
	args := m.Called(ctx, workspaceID, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MemberReport), args.Error(1)
}

func (m *MockReportingService) Trend(ctx context.Context, workspaceID, userID string, months int) ([]domain.MonthTotal, error) {
	args := m.Called(ctx, workspaceID, userID, months)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthTotal), args.Error(1)
}

func (m *MockReportingService) Settlement(ctx context.Context, workspaceID, userID string) (*domain.Settlement, error) {
	args := m.Called(ctx, workspaceID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Settlement), args.Error(1)
}

func (m *MockReportingService) BudgetComparison(ctx context.Context, workspaceID, userID string) (*domain.BudgetReport, error) {
	args := m.Called(ctx, workspaceID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BudgetReport), args.Error(1)
}

func (m *MockReportingService) PooledRemaining(ctx context.Context, workspaceID, userID string) (*domain.PooledRemainingReport, error) {
	args := m.Called(ctx, workspaceID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PooledRemainingReport), args.Error(1)
}

func (m *MockReportingService) Summary(ctx context.Context, workspaceID, userID string) (*domain.WorkspaceSummary, error) {
	args := m.Called(ctx, workspaceID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkspaceSummary), args.Error(1)
}
