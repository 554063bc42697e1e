package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// AmountScale is the number of decimal places the store keeps for amounts and shares.
const AmountScale = 4

// exceedsScale reports whether d carries more decimal places than the store keeps.
func exceedsScale(d decimal.Decimal) bool {
	return !d.Truncate(AmountScale).Equal(d)
}

// Expense is one recorded household transaction.
type Expense struct {
	ExpenseID    string                     `json:"expenseID"`
	WorkspaceID  string                     `json:"workspaceID"` // immutable after creation
	PayerID      string                     `json:"payerID"`     // member who fronted the money
	Amount       decimal.Decimal            `json:"amount"`
	Category     string                     `json:"category"`
	Description  string                     `json:"description"`
	Date         time.Time                  `json:"date"` // when the expense occurred, not when it was recorded
	IsRecurring  bool                       `json:"isRecurring"`
	SplitDetails map[string]decimal.Decimal `json:"splitDetails,omitempty"` // memberID -> share amount, overrides the workspace policy
	AuditFields
}

// HasSplitOverride reports whether the expense carries explicit per-member shares.
func (e *Expense) HasSplitOverride() bool {
	return len(e.SplitDetails) > 0
}

// SplitDetailsTotal sums the override shares.
func (e *Expense) SplitDetailsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, share := range e.SplitDetails {
		total = total.Add(share)
	}
	return total
}

// Validate checks the invariants enforced when an expense is written.
// Historical records are not re-validated on read.
func (e *Expense) Validate() error {
	if e.WorkspaceID == "" {
		return fmt.Errorf("workspace ID is required")
	}
	if e.PayerID == "" {
		return fmt.Errorf("payer ID is required")
	}
	if e.Amount.IsNegative() {
		return fmt.Errorf("amount must not be negative")
	}
	if exceedsScale(e.Amount) {
		return fmt.Errorf("amount must have at most %d decimal places", AmountScale)
	}
	if e.Category == "" {
		return fmt.Errorf("category is required")
	}
	if e.Date.IsZero() {
		return fmt.Errorf("date is required")
	}
	if !e.HasSplitOverride() {
		return nil
	}
	for memberID, share := range e.SplitDetails {
		if share.IsNegative() {
			return fmt.Errorf("split share for member %s must not be negative", memberID)
		}
		if exceedsScale(share) {
			return fmt.Errorf("split share for member %s must have at most %d decimal places", memberID, AmountScale)
		}
	}
	if total := e.SplitDetailsTotal(); !total.Equal(e.Amount) {
		return fmt.Errorf("split details sum to %s but amount is %s", total.String(), e.Amount.String())
	}
	return nil
}

// ExpensePatch holds the mutable fields of an expense; nil means unchanged.
type ExpensePatch struct {
	Amount       *decimal.Decimal
	Category     *string
	Description  *string
	Date         *time.Time
	IsRecurring  *bool
	SplitDetails map[string]decimal.Decimal
	ClearSplit   bool // drop the override and fall back to the workspace policy
}

// Apply returns a copy of e with the patch applied.
func (p ExpensePatch) Apply(e Expense) Expense {
	if p.Amount != nil {
		e.Amount = *p.Amount
	}
	if p.Category != nil {
		e.Category = *p.Category
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.IsRecurring != nil {
		e.IsRecurring = *p.IsRecurring
	}
	if p.ClearSplit {
		e.SplitDetails = nil
	} else if p.SplitDetails != nil {
		e.SplitDetails = p.SplitDetails
	}
	return e
}

// DateRange is an optional inclusive filter for expense retrieval.
type DateRange struct {
	From time.Time
	To   time.Time
}
