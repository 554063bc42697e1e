package services_test

import (
	"context"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// MockWorkspaceRepository is a mock type for the WorkspaceRepositoryFacade interface
type MockWorkspaceRepository struct {
	mock.Mock
}

func (m *MockWorkspaceRepository) FindWorkspaceByID(ctx context.Context, workspaceID string) (*domain.Workspace, error) {
	args := m.Called(ctx, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workspace), args.Error(1)
}

func (m *MockWorkspaceRepository) ListWorkspacesByUserID(ctx context.Context, userID string) ([]domain.Workspace, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Workspace), args.Error(1)
}

func (m *MockWorkspaceRepository) SaveWorkspace(ctx context.Context, workspace domain.Workspace, owner domain.Member) error {
	args := m.Called(ctx, workspace, owner)
	return args.Error(0)
}

func (m *MockWorkspaceRepository) UpdateWorkspace(ctx context.Context, workspace domain.Workspace) error {
	args := m.Called(ctx, workspace)
	return args.Error(0)
}

func (m *MockWorkspaceRepository) AddMember(ctx context.Context, member domain.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockWorkspaceRepository) FindMember(ctx context.Context, workspaceID, userID string) (*domain.Member, error) {
	args := m.Called(ctx, workspaceID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockWorkspaceRepository) ListMembers(ctx context.Context, workspaceID string) ([]domain.Member, error) {
	args := m.Called(ctx, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Member), args.Error(1)
}

func (m *MockWorkspaceRepository) UpdateMemberRole(ctx context.Context, workspaceID, userID string, role domain.MemberRole) error {
	args := m.Called(ctx, workspaceID, userID, role)
	return args.Error(0)
}

// MockExpenseRepository is a mock type for the ExpenseRepositoryFacade interface
type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	args := m.Called(ctx, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) ListExpenses(ctx context.Context, workspaceID string, dateRange *domain.DateRange) ([]domain.Expense, error) {
	args := m.Called(ctx, workspaceID, dateRange)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) ListExpensesPage(ctx context.Context, workspaceID string, dateRange *domain.DateRange, limit int, nextToken *string) ([]domain.Expense, *string, error) {
	args := m.Called(ctx, workspaceID, dateRange, limit, nextToken)
	var token *string
	if t := args.Get(1); t != nil {
		token = t.(*string)
	}
	if args.Get(0) == nil {
		return nil, token, args.Error(2)
	}
	return args.Get(0).([]domain.Expense), token, args.Error(2)
}

func (m *MockExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	args := m.Called(ctx, expenseID)
	return args.Error(0)
}

// MockBudgetRepository is a mock type for the CategoryBudgetRepositoryFacade interface
type MockBudgetRepository struct {
	mock.Mock
}

func (m *MockBudgetRepository) ListCategoryBudgets(ctx context.Context, workspaceID string) ([]domain.CategoryBudget, error) {
	args := m.Called(ctx, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategoryBudget), args.Error(1)
}

func (m *MockBudgetRepository) UpsertCategoryBudget(ctx context.Context, budget domain.CategoryBudget) error {
	args := m.Called(ctx, budget)
	return args.Error(0)
}

func (m *MockBudgetRepository) DeleteCategoryBudget(ctx context.Context, workspaceID, category string) error {
	args := m.Called(ctx, workspaceID, category)
	return args.Error(0)
}

func memberOf(workspaceID, userID string, role domain.MemberRole) *domain.Member {
	return &domain.Member{UserID: userID, WorkspaceID: workspaceID, Role: role}
}

// MockWorkspaceAuthorizer is a mock type for the WorkspaceAuthorizerSvc interface
type MockWorkspaceAuthorizer struct {
	mock.Mock
}

func (m *MockWorkspaceAuthorizer) AuthorizeUserAction(ctx context.Context, userID, workspaceID string, requiredRole domain.MemberRole) error {
	args := m.Called(ctx, userID, workspaceID, requiredRole)
	return args.Error(0)
}
