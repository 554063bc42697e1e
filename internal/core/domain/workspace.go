package domain

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// WorkspaceType decides which aggregate views a workspace exposes.
type WorkspaceType string

const (
	WorkspacePersonal WorkspaceType = "personal" // single pooled budget, no settlement
	WorkspaceSplit    WorkspaceType = "split"    // cost-splitting, per-member settlement ledger
	WorkspaceJoint    WorkspaceType = "joint"    // pooled money against a monthly target
)

// IsValid reports whether t is one of the known workspace types.
func (t WorkspaceType) IsValid() bool {
	switch t {
	case WorkspacePersonal, WorkspaceSplit, WorkspaceJoint:
		return true
	}
	return false
}

// SplitMethod is the stored tag for the default split policy of a split workspace.
type SplitMethod string

const (
	SplitEqual  SplitMethod = "50/50"
	SplitIncome SplitMethod = "income"
	SplitCustom SplitMethod = "custom"
)

// IsValid reports whether m is one of the known split methods.
func (m SplitMethod) IsValid() bool {
	switch m {
	case SplitEqual, SplitIncome, SplitCustom:
		return true
	}
	return false
}

// Workspace is the scoping container for expenses, members and budget configuration.
type Workspace struct {
	WorkspaceID       string           `json:"workspaceID"`
	Name              string           `json:"name"`
	Type              WorkspaceType    `json:"type"`
	SplitMethod       SplitMethod      `json:"splitMethod"`
	CustomSplitConfig json.RawMessage  `json:"customSplitConfig,omitempty"` // {"ownerShare": 60}; only read when SplitMethod is custom
	MonthlyTarget     *decimal.Decimal `json:"monthlyTarget,omitempty"`     // joint workspaces
	MonthlyBudget     *decimal.Decimal `json:"monthlyBudget,omitempty"`     // personal and split workspaces
	AuditFields
}

// OverallLimit returns the spending ceiling that applies to the workspace type.
func (w *Workspace) OverallLimit() *decimal.Decimal {
	if w.Type == WorkspaceJoint {
		return w.MonthlyTarget
	}
	return w.MonthlyBudget
}

// MemberRole defines the possible roles a user can have within a workspace.
type MemberRole string

const (
	RoleOwner   MemberRole = "OWNER"
	RoleAdmin   MemberRole = "ADMIN"
	RoleMember  MemberRole = "MEMBER"
	RoleRemoved MemberRole = "REMOVED" // members who left; history stays, balances do not
)

// Member links a user to a workspace.
type Member struct {
	UserID      string     `json:"userID"`
	UserName    string     `json:"userName"`
	WorkspaceID string     `json:"workspaceID"`
	Role        MemberRole `json:"role"`
	JoinedAt    time.Time  `json:"joinedAt"`
}

// IsCurrent reports whether the membership is still active.
func (m Member) IsCurrent() bool {
	return m.Role != RoleRemoved
}

// CanManage reports whether the member may manage workspace-wide settings
// and other members' expenses.
func (m Member) CanManage() bool {
	return m.Role == RoleOwner || m.Role == RoleAdmin
}
