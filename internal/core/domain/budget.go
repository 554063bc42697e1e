package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryBudget is a per-workspace, per-category spending limit.
// At most one exists per (WorkspaceID, Category).
type CategoryBudget struct {
	WorkspaceID   string          `json:"workspaceID"`
	Category      string          `json:"category"`
	Limit         decimal.Decimal `json:"limit"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy string          `json:"lastUpdatedBy"`
}
