package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validExpense() domain.Expense {
	return domain.Expense{
		ExpenseID:   "exp_1",
		WorkspaceID: "ws_1",
		PayerID:     "alice",
		Amount:      decimal.NewFromInt(100),
		Category:    "groceries",
		Date:        time.Date(2026, time.March, 31, 23, 59, 0, 0, time.UTC),
	}
}

func TestExpense_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(e *domain.Expense)
		wantErr string
	}{
		{name: "valid without override", mutate: func(e *domain.Expense) {}},
		{name: "zero amount is allowed", mutate: func(e *domain.Expense) { e.Amount = decimal.Zero }},
		{
			name: "valid override",
			mutate: func(e *domain.Expense) {
				e.SplitDetails = map[string]decimal.Decimal{"alice": decimal.NewFromInt(70), "bob": decimal.NewFromInt(30)}
			},
		},
		{name: "missing workspace", mutate: func(e *domain.Expense) { e.WorkspaceID = "" }, wantErr: "workspace ID is required"},
		{name: "missing payer", mutate: func(e *domain.Expense) { e.PayerID = "" }, wantErr: "payer ID is required"},
		{name: "negative amount", mutate: func(e *domain.Expense) { e.Amount = decimal.NewFromInt(-1) }, wantErr: "must not be negative"},
		{name: "missing category", mutate: func(e *domain.Expense) { e.Category = "" }, wantErr: "category is required"},
		{name: "missing date", mutate: func(e *domain.Expense) { e.Date = time.Time{} }, wantErr: "date is required"},
		{
			name: "override does not sum to amount",
			mutate: func(e *domain.Expense) {
				e.SplitDetails = map[string]decimal.Decimal{"alice": decimal.NewFromInt(50), "bob": decimal.NewFromInt(30)}
			},
			wantErr: "split details sum to 80 but amount is 100",
		},
		{
			name: "negative override share",
			mutate: func(e *domain.Expense) {
				e.SplitDetails = map[string]decimal.Decimal{"alice": decimal.NewFromInt(110), "bob": decimal.NewFromInt(-10)}
			},
			wantErr: "split share for member bob must not be negative",
		},
		{
			name:   "four decimal places are kept",
			mutate: func(e *domain.Expense) { e.Amount = decimal.RequireFromString("10.0001") },
		},
		{
			name:    "amount finer than the stored scale",
			mutate:  func(e *domain.Expense) { e.Amount = decimal.RequireFromString("10.00005") },
			wantErr: "amount must have at most 4 decimal places",
		},
		{
			name: "share finer than the stored scale",
			mutate: func(e *domain.Expense) {
				e.Amount = decimal.RequireFromString("10.0001")
				e.SplitDetails = map[string]decimal.Decimal{
					"alice": decimal.RequireFromString("5.00005"),
					"bob":   decimal.RequireFromString("5.00005"),
				}
			},
			wantErr: "split share for member",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := validExpense()
			tt.mutate(&e)
			err := e.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestExpensePatch_Apply(t *testing.T) {
	base := validExpense()
	base.SplitDetails = map[string]decimal.Decimal{"alice": decimal.NewFromInt(100)}

	newAmount := decimal.NewFromInt(42)
	newCategory := "dining"
	recurring := true

	patched := domain.ExpensePatch{
		Amount:      &newAmount,
		Category:    &newCategory,
		IsRecurring: &recurring,
		ClearSplit:  true,
	}.Apply(base)

	assert.True(t, newAmount.Equal(patched.Amount))
	assert.Equal(t, "dining", patched.Category)
	assert.True(t, patched.IsRecurring)
	assert.False(t, patched.HasSplitOverride())
	assert.Equal(t, base.Date, patched.Date)
	assert.Equal(t, base.WorkspaceID, patched.WorkspaceID)

	// the original is untouched
	assert.Equal(t, "groceries", base.Category)
	assert.True(t, base.HasSplitOverride())
}
