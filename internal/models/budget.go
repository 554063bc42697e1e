package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryBudget is the row shape of the category_budgets table.
type CategoryBudget struct {
	WorkspaceID   string          `db:"workspace_id"`
	Category      string          `db:"category"`
	LimitAmount   decimal.Decimal `db:"limit_amount"`
	LastUpdatedAt time.Time       `db:"last_updated_at"`
	LastUpdatedBy string          `db:"last_updated_by"`
}
