// Package aggregation folds expense snapshots into category and trend totals.
// Every function is pure: same inputs, same outputs, no retained state.
package aggregation

import (
	"sort"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ByCategory sums in-window expenses per category, largest total first.
// Categories with equal totals keep the order in which they were first seen.
func ByCategory(expenses []domain.Expense, window domain.Window, catalog *domain.CategoryCatalog) []domain.CategoryTotal {
	return sumByCategory(expenses, window, catalog, func(domain.Expense) bool { return true })
}

// ByMemberCategory partitions in-window expenses by payer and sums each
// payer's spend per category. Payers are ordered by their grand total,
// largest first, ties in first-seen order.
func ByMemberCategory(expenses []domain.Expense, window domain.Window, catalog *domain.CategoryCatalog) []domain.MemberCategoryTotals {
	var payers []string
	totals := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		if !window.Contains(e.Date) {
			continue
		}
		if _, seen := totals[e.PayerID]; !seen {
			payers = append(payers, e.PayerID)
			totals[e.PayerID] = decimal.Zero
		}
		totals[e.PayerID] = totals[e.PayerID].Add(e.Amount)
	}

	out := make([]domain.MemberCategoryTotals, 0, len(payers))
	for _, payerID := range payers {
		out = append(out, domain.MemberCategoryTotals{
			MemberID: payerID,
			Total:    totals[payerID],
			Categories: sumByCategory(expenses, window, catalog, func(e domain.Expense) bool {
				return e.PayerID == payerID
			}),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Total.GreaterThan(out[j].Total)
	})
	return out
}

// Total sums the amounts of every expense inside window.
func Total(expenses []domain.Expense, window domain.Window) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		if window.Contains(e.Date) {
			total = total.Add(e.Amount)
		}
	}
	return total
}

func sumByCategory(expenses []domain.Expense, window domain.Window, catalog *domain.CategoryCatalog, keep func(domain.Expense) bool) []domain.CategoryTotal {
	index := make(map[string]int)
	out := []domain.CategoryTotal{}
	for _, e := range expenses {
		if !window.Contains(e.Date) || !keep(e) {
			continue
		}
		i, seen := index[e.Category]
		if !seen {
			display := displayFor(catalog, e.Category)
			out = append(out, domain.CategoryTotal{
				Category: e.Category,
				Name:     display.Name,
				Icon:     display.Icon,
				Total:    decimal.Zero,
			})
			i = len(out) - 1
			index[e.Category] = i
		}
		out[i].Total = out[i].Total.Add(e.Amount)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Total.GreaterThan(out[j].Total)
	})
	return out
}

func displayFor(catalog *domain.CategoryCatalog, id string) domain.Category {
	if catalog == nil {
		catalog = domain.DefaultCatalog
	}
	return catalog.Display(id)
}
