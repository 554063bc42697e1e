package aggregation

import (
	"time"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/SscSPs/household_ledger/internal/utils/timewindow"
)

// Trend returns one total per calendar month, oldest first, ending with the
// month containing reference. Empty months are present with a zero total.
func Trend(expenses []domain.Expense, resolver *timewindow.Resolver, reference time.Time, monthCount int) []domain.MonthTotal {
	months := resolver.RecentMonths(reference, monthCount)
	out := make([]domain.MonthTotal, len(months))
	for i, m := range months {
		out[i] = domain.MonthTotal{
			Label: m.Label,
			Start: m.Start,
			End:   m.End,
			Total: Total(expenses, m.Window),
		}
	}
	return out
}
