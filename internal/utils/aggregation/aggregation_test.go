package aggregation_test

import (
	"testing"
	"time"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/SscSPs/household_ledger/internal/utils/aggregation"
	"github.com/SscSPs/household_ledger/internal/utils/timewindow"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var resolver = timewindow.NewResolver(time.UTC, "en")

func expense(payer, category string, amount int64, date time.Time) domain.Expense {
	return domain.Expense{
		WorkspaceID: "ws_1",
		PayerID:     payer,
		Category:    category,
		Amount:      decimal.NewFromInt(amount),
		Date:        date,
	}
}

func day(month time.Month, d int) time.Time {
	return time.Date(2026, month, d, 12, 0, 0, 0, time.UTC)
}

func categoryIDs(totals []domain.CategoryTotal) []string {
	ids := make([]string, len(totals))
	for i, c := range totals {
		ids[i] = c.Category
	}
	return ids
}

func TestByCategory_SortsDescendingAndFiltersWindow(t *testing.T) {
	march := resolver.MonthWindow(day(time.March, 10), nil, nil)
	expenses := []domain.Expense{
		expense("alice", "groceries", 40, day(time.March, 2)),
		expense("bob", "rent", 900, day(time.March, 1)),
		expense("alice", "groceries", 35, day(time.March, 20)),
		expense("bob", "dining", 500, day(time.February, 28)), // outside
		expense("bob", "dining", 20, day(time.April, 1)),      // outside
	}

	got := aggregation.ByCategory(expenses, march, domain.DefaultCatalog)

	require.Len(t, got, 2)
	assert.Equal(t, []string{"rent", "groceries"}, categoryIDs(got))
	assert.True(t, decimal.NewFromInt(75).Equal(got[1].Total))
	assert.Equal(t, "Groceries", got[1].Name)
}

func TestByCategory_TiesKeepFirstSeenOrder(t *testing.T) {
	march := resolver.MonthWindow(day(time.March, 10), nil, nil)
	expenses := []domain.Expense{
		expense("alice", "utilities", 50, day(time.March, 1)),
		expense("alice", "transport", 50, day(time.March, 2)),
		expense("alice", "health", 80, day(time.March, 3)),
		expense("alice", "dining", 50, day(time.March, 4)),
	}

	got := aggregation.ByCategory(expenses, march, domain.DefaultCatalog)

	assert.Equal(t, []string{"health", "utilities", "transport", "dining"}, categoryIDs(got))
}

func TestByCategory_UnknownCategoryPreserved(t *testing.T) {
	march := resolver.MonthWindow(day(time.March, 10), nil, nil)
	got := aggregation.ByCategory([]domain.Expense{expense("alice", "pets", 12, day(time.March, 5))}, march, domain.DefaultCatalog)

	require.Len(t, got, 1)
	assert.Equal(t, "pets", got[0].Category)
	assert.Equal(t, "Other", got[0].Name)
}

func TestByCategory_EmptyWindowYieldsEmptySlice(t *testing.T) {
	march := resolver.MonthWindow(day(time.March, 10), nil, nil)

	got := aggregation.ByCategory(nil, march, nil)

	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.True(t, aggregation.Total(nil, march).IsZero())
}

func TestByCategory_LastInstantOfMonthIncludedOnce(t *testing.T) {
	march := resolver.MonthWindow(day(time.March, 10), nil, nil)
	april := resolver.MonthWindow(day(time.April, 10), nil, nil)
	boundary := expense("alice", "rent", 10, time.UnixMilli(march.EndMs()).UTC())

	assert.Len(t, aggregation.ByCategory([]domain.Expense{boundary}, march, nil), 1)
	assert.Empty(t, aggregation.ByCategory([]domain.Expense{boundary}, april, nil))
}

func TestByCategory_Idempotent(t *testing.T) {
	march := resolver.MonthWindow(day(time.March, 10), nil, nil)
	expenses := []domain.Expense{
		expense("alice", "groceries", 40, day(time.March, 2)),
		expense("bob", "rent", 900, day(time.March, 1)),
	}

	first := aggregation.ByCategory(expenses, march, domain.DefaultCatalog)
	second := aggregation.ByCategory(expenses, march, domain.DefaultCatalog)

	assert.Equal(t, first, second)
}

func TestByMemberCategory(t *testing.T) {
	march := resolver.MonthWindow(day(time.March, 10), nil, nil)
	expenses := []domain.Expense{
		expense("alice", "groceries", 40, day(time.March, 2)),
		expense("bob", "rent", 900, day(time.March, 1)),
		expense("alice", "dining", 60, day(time.March, 3)),
		expense("alice", "groceries", 10, day(time.March, 4)),
		expense("carol", "travel", 5, day(time.January, 4)), // outside
	}

	got := aggregation.ByMemberCategory(expenses, march, domain.DefaultCatalog)

	require.Len(t, got, 2)
	assert.Equal(t, "bob", got[0].MemberID)
	assert.True(t, decimal.NewFromInt(900).Equal(got[0].Total))
	assert.Equal(t, "alice", got[1].MemberID)
	assert.True(t, decimal.NewFromInt(110).Equal(got[1].Total))
	assert.Equal(t, []string{"dining", "groceries"}, categoryIDs(got[1].Categories))
	assert.True(t, decimal.NewFromInt(50).Equal(got[1].Categories[1].Total))
}

func TestTrend_EmptyHasExactlyMonthCountZeroEntries(t *testing.T) {
	got := aggregation.Trend(nil, resolver, day(time.March, 10), 6)

	require.Len(t, got, 6)
	for _, m := range got {
		assert.NotEmpty(t, m.Label)
		assert.True(t, m.Total.IsZero())
	}
	assert.Equal(t, "Oct", got[0].Label)
	assert.Equal(t, "Mar", got[5].Label)
}

func TestTrend_SumsPerMonth(t *testing.T) {
	expenses := []domain.Expense{
		expense("alice", "groceries", 40, day(time.January, 2)),
		expense("bob", "rent", 900, day(time.March, 1)),
		expense("alice", "dining", 60, day(time.March, 31)),
		expense("alice", "dining", 999, day(time.April, 1)), // after reference month
	}

	got := aggregation.Trend(expenses, resolver, day(time.March, 10), 3)

	require.Len(t, got, 3)
	assert.Equal(t, []string{"Jan", "Feb", "Mar"}, []string{got[0].Label, got[1].Label, got[2].Label})
	assert.True(t, decimal.NewFromInt(40).Equal(got[0].Total))
	assert.True(t, got[1].Total.IsZero())
	assert.True(t, decimal.NewFromInt(960).Equal(got[2].Total))
}
