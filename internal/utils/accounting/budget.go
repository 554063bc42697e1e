package accounting

import (
	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CompareBudgets merges category totals with configured limits. Categories
// with a positive limit land in Budgeted (even with no spend); categories
// with spend and no positive limit land in Unbudgeted. A limit of zero
// counts as not configured.
func CompareBudgets(
	totals []domain.CategoryTotal,
	limits []domain.CategoryBudget,
	overallLimit *decimal.Decimal,
	overallSpent decimal.Decimal,
	catalog *domain.CategoryCatalog,
) domain.BudgetComparison {
	if catalog == nil {
		catalog = domain.DefaultCatalog
	}

	var limitOrder []string
	limitBy := make(map[string]decimal.Decimal, len(limits))
	for _, l := range limits {
		if !l.Limit.IsPositive() {
			continue
		}
		if _, seen := limitBy[l.Category]; !seen {
			limitOrder = append(limitOrder, l.Category)
		}
		limitBy[l.Category] = l.Limit
	}

	result := domain.BudgetComparison{
		Budgeted:     []domain.CategoryBudgetStatus{},
		Unbudgeted:   []domain.CategoryTotal{},
		OverallLimit: overallLimit,
		OverallSpent: overallSpent,
	}

	reported := make(map[string]bool, len(totals))
	for _, t := range totals {
		limit, budgeted := limitBy[t.Category]
		switch {
		case budgeted:
			result.Budgeted = append(result.Budgeted, domain.CategoryBudgetStatus{
				Category: t.Category,
				Name:     t.Name,
				Icon:     t.Icon,
				Spent:    t.Total,
				Limit:    limit,
				IsOver:   t.Total.GreaterThan(limit),
			})
			reported[t.Category] = true
		case t.Total.IsPositive():
			result.Unbudgeted = append(result.Unbudgeted, t)
		}
	}

	for _, category := range limitOrder {
		if reported[category] {
			continue
		}
		display := catalog.Display(category)
		result.Budgeted = append(result.Budgeted, domain.CategoryBudgetStatus{
			Category: category,
			Name:     display.Name,
			Icon:     display.Icon,
			Spent:    decimal.Zero,
			Limit:    limitBy[category],
		})
	}

	result.OverallRemaining = PooledRemaining(overallLimit, overallSpent)
	return result
}

// PooledRemaining is limit - spent, or nil when no limit is configured.
// A negative result means the limit is exceeded.
func PooledRemaining(limit *decimal.Decimal, spent decimal.Decimal) *decimal.Decimal {
	if limit == nil {
		return nil
	}
	remaining := limit.Sub(spent)
	return &remaining
}
