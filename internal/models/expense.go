package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is the row shape of the expenses table.
type Expense struct {
	ExpenseID    string          `db:"expense_id"`
	WorkspaceID  string          `db:"workspace_id"`
	PayerID      string          `db:"payer_id"`
	Amount       decimal.Decimal `db:"amount"`
	Category     string          `db:"category"`
	Description  string          `db:"description"`
	ExpenseDate  time.Time       `db:"expense_date"`
	IsRecurring  bool            `db:"is_recurring"`
	SplitDetails []byte          `db:"split_details"` // JSONB object of memberID -> amount; NULL when no override
	AuditFields
}
