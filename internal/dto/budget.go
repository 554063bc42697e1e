package dto

import (
	"time"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SetCategoryBudgetRequest sets the limit of one category. A limit of 0 counts as not budgeted.
type SetCategoryBudgetRequest struct {
	Limit decimal.Decimal `json:"limit" binding:"gte=0"`
}

// CategoryBudgetResponse defines data returned for a category limit.
type CategoryBudgetResponse struct {
	Category      string    `json:"category"`
	Name          string    `json:"name"`
	Icon          string    `json:"icon"`
	Limit         Money     `json:"limit"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// ToCategoryBudgetResponse converts a domain.CategoryBudget to DTO.
func ToCategoryBudgetResponse(b *domain.CategoryBudget) CategoryBudgetResponse {
	category := domain.DefaultCatalog.Display(b.Category)
	return CategoryBudgetResponse{
		Category:      b.Category,
		Name:          category.Name,
		Icon:          category.Icon,
		Limit:         NewMoney(b.Limit),
		LastUpdatedAt: b.LastUpdatedAt,
		LastUpdatedBy: b.LastUpdatedBy,
	}
}

// ListCategoryBudgetsResponse wraps the category limits of a workspace.
type ListCategoryBudgetsResponse struct {
	Budgets []CategoryBudgetResponse `json:"budgets"`
}

// ToListCategoryBudgetsResponse converts category limits to DTO.
func ToListCategoryBudgetsResponse(budgets []domain.CategoryBudget) ListCategoryBudgetsResponse {
	list := make([]CategoryBudgetResponse, len(budgets))
	for i := range budgets {
		list[i] = ToCategoryBudgetResponse(&budgets[i])
	}
	return ListCategoryBudgetsResponse{Budgets: list}
}

// CategoryResponse describes one catalog entry.
type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// ToListCategoryResponse converts the catalog to DTO.
func ToListCategoryResponse(categories []domain.Category) []CategoryResponse {
	res := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		res[i] = CategoryResponse{ID: c.ID, Name: c.Name, Icon: c.Icon}
	}
	return res
}
