package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/SscSPs/household_ledger/internal/core/services"
	"github.com/SscSPs/household_ledger/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBudgetService_SetCategoryBudget(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		category  string
		limit     decimal.Decimal
		authErr   error
		wantErr   error
		wantSaved string
	}{
		{name: "admin sets limit", category: " Groceries", limit: decimal.NewFromInt(300), wantSaved: "groceries"},
		{name: "zero limit is allowed", category: "dining", limit: decimal.Zero, wantSaved: "dining"},
		{name: "negative limit", category: "dining", limit: decimal.NewFromInt(-1), wantErr: apperrors.ErrValidation},
		{name: "blank category", category: "  ", limit: decimal.NewFromInt(1), wantErr: apperrors.ErrValidation},
		{name: "member may not", category: "dining", limit: decimal.NewFromInt(1), authErr: apperrors.NewForbiddenError("insufficient role for this action"), wantErr: apperrors.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockBudgetRepository)
			authorizer := new(MockWorkspaceAuthorizer)
			authorizer.On("AuthorizeUserAction", ctx, "u", "ws", domain.RoleAdmin).Return(tt.authErr)
			repo.On("UpsertCategoryBudget", ctx, mock.AnythingOfType("domain.CategoryBudget")).Return(nil).Maybe()
			svc := services.NewBudgetService(repo, services.WithBudgetWorkspaceAuthorizer(authorizer))

			budget, err := svc.SetCategoryBudget(ctx, "ws", tt.category, dto.SetCategoryBudgetRequest{Limit: tt.limit}, "u")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				repo.AssertNotCalled(t, "UpsertCategoryBudget", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSaved, budget.Category)
			assert.Equal(t, "u", budget.LastUpdatedBy)
			repo.AssertCalled(t, "UpsertCategoryBudget", ctx, *budget)
		})
	}
}

func TestBudgetService_ListAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := new(MockBudgetRepository)
	authorizer := new(MockWorkspaceAuthorizer)
	authorizer.On("AuthorizeUserAction", ctx, "u", "ws", mock.Anything).Return(nil)
	repo.On("ListCategoryBudgets", ctx, "ws").Return(nil, nil)
	repo.On("DeleteCategoryBudget", ctx, "ws", "rent").Return(nil).Once()
	svc := services.NewBudgetService(repo, services.WithBudgetWorkspaceAuthorizer(authorizer))

	budgets, err := svc.ListCategoryBudgets(ctx, "ws", "u")
	require.NoError(t, err)
	assert.NotNil(t, budgets)
	assert.Empty(t, budgets)

	require.NoError(t, svc.DeleteCategoryBudget(ctx, "ws", "Rent", "u"))
	repo.AssertExpectations(t)
	authorizer.AssertCalled(t, "AuthorizeUserAction", ctx, "u", "ws", domain.RoleAdmin)
}
