package mapping

import (
	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/SscSPs/household_ledger/internal/models"
)

// ToModelCategoryBudget converts a domain CategoryBudget to a model CategoryBudget
func ToModelCategoryBudget(d domain.CategoryBudget) models.CategoryBudget {
	return models.CategoryBudget{
		WorkspaceID:   d.WorkspaceID,
		Category:      d.Category,
		LimitAmount:   d.Limit,
		LastUpdatedAt: d.LastUpdatedAt,
		LastUpdatedBy: d.LastUpdatedBy,
	}
}

// ToDomainCategoryBudget converts a model CategoryBudget to a domain CategoryBudget
func ToDomainCategoryBudget(m models.CategoryBudget) domain.CategoryBudget {
	return domain.CategoryBudget{
		WorkspaceID:   m.WorkspaceID,
		Category:      m.Category,
		Limit:         m.LimitAmount,
		LastUpdatedAt: m.LastUpdatedAt,
		LastUpdatedBy: m.LastUpdatedBy,
	}
}

// ToDomainCategoryBudgetSlice converts a slice of model CategoryBudgets to a slice of domain CategoryBudgets
func ToDomainCategoryBudgetSlice(ms []models.CategoryBudget) []domain.CategoryBudget {
	ds := make([]domain.CategoryBudget, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCategoryBudget(m)
	}
	return ds
}
