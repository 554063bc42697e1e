package dto

import (
	"time"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest defines the data needed to record an expense.
type CreateExpenseRequest struct {
	PayerID      string                     `json:"payerID"` // Optional, defaults to the caller
	Amount       decimal.Decimal            `json:"amount" binding:"gte=0"`
	Category     string                     `json:"category" binding:"required,max=64"`
	Description  string                     `json:"description" binding:"max=500"`
	Date         time.Time                  `json:"date" binding:"required"`
	IsRecurring  bool                       `json:"isRecurring"`
	SplitDetails map[string]decimal.Decimal `json:"splitDetails" binding:"omitempty,dive,gte=0"`
}

// UpdateExpenseRequest defines the patchable fields of an expense.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateExpenseRequest struct {
	Amount       *decimal.Decimal           `json:"amount" binding:"omitempty,gte=0"`
	Category     *string                    `json:"category" binding:"omitempty,min=1,max=64"`
	Description  *string                    `json:"description" binding:"omitempty,max=500"`
	Date         *time.Time                 `json:"date"`
	IsRecurring  *bool                      `json:"isRecurring"`
	SplitDetails map[string]decimal.Decimal `json:"splitDetails" binding:"omitempty,dive,gte=0"`
	ClearSplit   bool                       `json:"clearSplit"` // drop the override, back to the workspace policy
}

// ToPatch converts the request to a domain patch.
func (r UpdateExpenseRequest) ToPatch() domain.ExpensePatch {
	return domain.ExpensePatch{
		Amount:       r.Amount,
		Category:     r.Category,
		Description:  r.Description,
		Date:         r.Date,
		IsRecurring:  r.IsRecurring,
		SplitDetails: r.SplitDetails,
		ClearSplit:   r.ClearSplit,
	}
}

// ListExpensesParams defines query parameters for listing expenses.
// From and To are parsed by the handler and are not bound from the query directly.
type ListExpensesParams struct {
	Limit     int        `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken *string    `form:"nextToken"`
	From      *time.Time `form:"-"`
	To        *time.Time `form:"-"`
}

// ExpenseResponse defines the data returned for an expense.
type ExpenseResponse struct {
	ExpenseID     string                     `json:"expenseID"`
	WorkspaceID   string                     `json:"workspaceID"`
	PayerID       string                     `json:"payerID"`
	Amount        decimal.Decimal            `json:"amount"`
	Display       string                     `json:"display"`
	Category      string                     `json:"category"`
	CategoryName  string                     `json:"categoryName"`
	CategoryIcon  string                     `json:"categoryIcon"`
	Description   string                     `json:"description"`
	Date          time.Time                  `json:"date"`
	DateMs        int64                      `json:"dateMs"`
	IsRecurring   bool                       `json:"isRecurring"`
	SplitDetails  map[string]decimal.Decimal `json:"splitDetails,omitempty"`
	CreatedAt     time.Time                  `json:"createdAt"`
	CreatedBy     string                     `json:"createdBy"`
	LastUpdatedAt time.Time                  `json:"lastUpdatedAt"`
	LastUpdatedBy string                     `json:"lastUpdatedBy"`
}

// ToExpenseResponse converts a domain.Expense to its DTO.
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	category := domain.DefaultCatalog.Display(e.Category)
	return ExpenseResponse{
		ExpenseID:     e.ExpenseID,
		WorkspaceID:   e.WorkspaceID,
		PayerID:       e.PayerID,
		Amount:        e.Amount,
		Display:       NewMoney(e.Amount).Display,
		Category:      e.Category,
		CategoryName:  category.Name,
		CategoryIcon:  category.Icon,
		Description:   e.Description,
		Date:          e.Date,
		DateMs:        e.Date.UnixMilli(),
		IsRecurring:   e.IsRecurring,
		SplitDetails:  e.SplitDetails,
		CreatedAt:     e.CreatedAt,
		CreatedBy:     e.CreatedBy,
		LastUpdatedAt: e.LastUpdatedAt,
		LastUpdatedBy: e.LastUpdatedBy,
	}
}

// ListExpensesResponse wraps a page of expenses.
type ListExpensesResponse struct {
	Expenses  []ExpenseResponse `json:"expenses"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToListExpensesResponse converts a page of expenses to DTO.
func ToListExpensesResponse(expenses []domain.Expense, nextToken *string) ListExpensesResponse {
	list := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		list[i] = ToExpenseResponse(&expenses[i])
	}
	return ListExpensesResponse{Expenses: list, NextToken: nextToken}
}
