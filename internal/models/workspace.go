package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Workspace is the row shape of the workspaces table.
type Workspace struct {
	WorkspaceID       string              `db:"workspace_id"`
	Name              string              `db:"name"`
	WorkspaceType     string              `db:"workspace_type"`
	SplitMethod       string              `db:"split_method"`
	CustomSplitConfig []byte              `db:"custom_split_config"`
	MonthlyTarget     decimal.NullDecimal `db:"monthly_target"`
	MonthlyBudget     decimal.NullDecimal `db:"monthly_budget"`
	AuditFields
}

// WorkspaceMember is the row shape of the workspace_members table.
type WorkspaceMember struct {
	WorkspaceID string    `db:"workspace_id"`
	UserID      string    `db:"user_id"`
	UserName    string    `db:"user_name"`
	Role        string    `db:"role"`
	JoinedAt    time.Time `db:"joined_at"`
}
