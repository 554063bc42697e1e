package mapping_test

import (
	"testing"
	"time"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/SscSPs/household_ledger/internal/models"
	"github.com/SscSPs/household_ledger/internal/utils/mapping"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpenseMapping_SplitDetails(t *testing.T) {
	date := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)
	d := domain.Expense{
		ExpenseID:   "e1",
		WorkspaceID: "ws",
		PayerID:     "alice",
		Amount:      decimal.RequireFromString("12.50"),
		Category:    "groceries",
		Date:        date,
		SplitDetails: map[string]decimal.Decimal{
			"alice": decimal.RequireFromString("2.50"),
			"bob":   decimal.NewFromInt(10),
		},
		AuditFields: domain.AuditFields{Version: 4, CreatedBy: "alice"},
	}

	m, err := mapping.ToModelExpense(d)
	require.NoError(t, err)
	assert.NotEmpty(t, m.SplitDetails)
	assert.Equal(t, date, m.ExpenseDate)

	back, err := mapping.ToDomainExpense(m)
	require.NoError(t, err)
	require.Len(t, back.SplitDetails, 2)
	assert.True(t, d.SplitDetails["alice"].Equal(back.SplitDetails["alice"]))
	assert.True(t, d.SplitDetails["bob"].Equal(back.SplitDetails["bob"]))
	assert.Equal(t, int64(4), back.Version)
}

func TestExpenseMapping_NoOverrideIsNull(t *testing.T) {
	m, err := mapping.ToModelExpense(domain.Expense{ExpenseID: "e1", SplitDetails: map[string]decimal.Decimal{}})
	require.NoError(t, err)
	assert.Nil(t, m.SplitDetails)

	for _, raw := range [][]byte{nil, []byte("null")} {
		d, err := mapping.ToDomainExpense(models.Expense{ExpenseID: "e1", SplitDetails: raw})
		require.NoError(t, err)
		assert.False(t, d.HasSplitOverride())
	}
}

func TestExpenseMapping_CorruptSplitDetails(t *testing.T) {
	_, err := mapping.ToDomainExpense(models.Expense{ExpenseID: "e1", SplitDetails: []byte(`[1,2]`)})
	assert.Error(t, err)
}

func TestWorkspaceMapping_OptionalLimits(t *testing.T) {
	target := decimal.NewFromInt(900)
	d := domain.Workspace{WorkspaceID: "ws", Type: domain.WorkspaceJoint, SplitMethod: domain.SplitEqual, MonthlyTarget: &target}

	m := mapping.ToModelWorkspace(d)
	assert.True(t, m.MonthlyTarget.Valid)
	assert.False(t, m.MonthlyBudget.Valid)

	back := mapping.ToDomainWorkspace(m)
	require.NotNil(t, back.MonthlyTarget)
	assert.True(t, target.Equal(*back.MonthlyTarget))
	assert.Nil(t, back.MonthlyBudget)
	assert.Equal(t, domain.WorkspaceJoint, back.Type)
}
