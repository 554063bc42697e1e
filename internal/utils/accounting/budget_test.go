package accounting_test

import (
	"testing"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/SscSPs/household_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func total(category string, amount int64) domain.CategoryTotal {
	display := domain.DefaultCatalog.Display(category)
	return domain.CategoryTotal{Category: category, Name: display.Name, Icon: display.Icon, Total: decimal.NewFromInt(amount)}
}

func limit(category string, amount int64) domain.CategoryBudget {
	return domain.CategoryBudget{WorkspaceID: "ws_1", Category: category, Limit: decimal.NewFromInt(amount)}
}

func decPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func TestCompareBudgets_SplitsByStatus(t *testing.T) {
	totals := []domain.CategoryTotal{total("groceries", 120), total("dining", 30)}
	limits := []domain.CategoryBudget{limit("groceries", 100), limit("dining", 0)}

	got := accounting.CompareBudgets(totals, limits, nil, decimal.NewFromInt(150), domain.DefaultCatalog)

	require.Len(t, got.Budgeted, 1)
	assert.Equal(t, "groceries", got.Budgeted[0].Category)
	assert.True(t, got.Budgeted[0].IsOver)
	assert.True(t, decimal.NewFromInt(120).Equal(got.Budgeted[0].Spent))
	assert.True(t, decimal.NewFromInt(100).Equal(got.Budgeted[0].Limit))

	require.Len(t, got.Unbudgeted, 1)
	assert.Equal(t, "dining", got.Unbudgeted[0].Category)

	assert.Nil(t, got.OverallRemaining, "no overall limit means no remaining figure")
	assert.Nil(t, got.OverallLimit)
}

func TestCompareBudgets_LimitWithoutSpendIsReported(t *testing.T) {
	totals := []domain.CategoryTotal{total("rent", 900)}
	limits := []domain.CategoryBudget{limit("travel", 200), limit("rent", 1000)}

	got := accounting.CompareBudgets(totals, limits, decPtr(1500), decimal.NewFromInt(900), nil)

	require.Len(t, got.Budgeted, 2)
	assert.Equal(t, "rent", got.Budgeted[0].Category)
	assert.False(t, got.Budgeted[0].IsOver)
	assert.Equal(t, "travel", got.Budgeted[1].Category)
	assert.Equal(t, "Travel", got.Budgeted[1].Name)
	assert.True(t, got.Budgeted[1].Spent.IsZero())
	assert.Empty(t, got.Unbudgeted)

	require.NotNil(t, got.OverallRemaining)
	assert.True(t, decimal.NewFromInt(600).Equal(*got.OverallRemaining))
}

func TestCompareBudgets_SpendEqualToLimitIsNotOver(t *testing.T) {
	got := accounting.CompareBudgets([]domain.CategoryTotal{total("utilities", 100)}, []domain.CategoryBudget{limit("utilities", 100)}, nil, decimal.NewFromInt(100), nil)

	require.Len(t, got.Budgeted, 1)
	assert.False(t, got.Budgeted[0].IsOver)
}

func TestCompareBudgets_NeverInBothGroups(t *testing.T) {
	totals := []domain.CategoryTotal{total("groceries", 50), total("dining", 40), total("pets", 10), total("health", 0)}
	limits := []domain.CategoryBudget{limit("dining", 10), limit("pets", 0)}

	got := accounting.CompareBudgets(totals, limits, nil, decimal.NewFromInt(100), nil)

	seen := map[string]int{}
	for _, b := range got.Budgeted {
		seen[b.Category]++
	}
	for _, u := range got.Unbudgeted {
		seen[u.Category]++
	}
	for category, count := range seen {
		assert.Equalf(t, 1, count, "%s reported %d times", category, count)
	}
	assert.NotContains(t, seen, "health", "zero spend without a limit is not reported")
}

func TestPooledRemaining(t *testing.T) {
	assert.Nil(t, accounting.PooledRemaining(nil, decimal.NewFromInt(10)))

	over := accounting.PooledRemaining(decPtr(100), decimal.NewFromInt(130))
	require.NotNil(t, over)
	assert.True(t, decimal.NewFromInt(-30).Equal(*over))
}
