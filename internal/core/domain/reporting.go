package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Window is an inclusive [Start, End] time range.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls inside the window, both ends inclusive.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// StartMs returns the window start in epoch milliseconds.
func (w Window) StartMs() int64 { return w.Start.UnixMilli() }

// EndMs returns the window end in epoch milliseconds.
func (w Window) EndMs() int64 { return w.End.UnixMilli() }

// MonthWindow is a calendar-month window with its short label.
type MonthWindow struct {
	Label string `json:"label"`
	Window
}

// CategoryTotal is the spend of one category within a window.
type CategoryTotal struct {
	Category string          `json:"category"`
	Name     string          `json:"name"`
	Icon     string          `json:"icon"`
	Total    decimal.Decimal `json:"total"`
}

// MemberCategoryTotals is one payer's spend broken down by category.
type MemberCategoryTotals struct {
	MemberID   string          `json:"memberID"`
	Total      decimal.Decimal `json:"total"`
	Categories []CategoryTotal `json:"categories"`
}

// MonthTotal is one point of a monthly trend.
type MonthTotal struct {
	Label string          `json:"label"`
	Start time.Time       `json:"start"`
	End   time.Time       `json:"end"`
	Total decimal.Decimal `json:"total"`
}

// Settlement is the per-member ledger of a split workspace.
// Positive balances are owed money, negative balances owe the group.
type Settlement struct {
	WorkspaceID string                     `json:"workspaceID"`
	Policy      SplitMethod                `json:"policy"`
	Balances    map[string]decimal.Decimal `json:"balances"`
	MyBalance   *decimal.Decimal           `json:"myBalance,omitempty"`
}

// CategoryBudgetStatus compares one budgeted category against its limit.
type CategoryBudgetStatus struct {
	Category string          `json:"category"`
	Name     string          `json:"name"`
	Icon     string          `json:"icon"`
	Spent    decimal.Decimal `json:"spent"`
	Limit    decimal.Decimal `json:"limit"`
	IsOver   bool            `json:"isOver"`
}

// BudgetComparison splits category spend into budgeted and unbudgeted groups.
type BudgetComparison struct {
	Budgeted         []CategoryBudgetStatus `json:"budgeted"`
	Unbudgeted       []CategoryTotal        `json:"unbudgeted"`
	OverallLimit     *decimal.Decimal       `json:"overallLimit,omitempty"`
	OverallSpent     decimal.Decimal        `json:"overallSpent"`
	OverallRemaining *decimal.Decimal       `json:"overallRemaining,omitempty"`
}

// WorkspaceSummary is the dashboard view computed from a single snapshot.
type WorkspaceSummary struct {
	Workspace       Workspace        `json:"workspace"`
	Window          Window           `json:"window"`
	Categories      []CategoryTotal  `json:"categories"`
	Trend           []MonthTotal     `json:"trend"`
	Budget          BudgetComparison `json:"budget"`
	Settlement      *Settlement      `json:"settlement,omitempty"`
	PooledRemaining *decimal.Decimal `json:"pooledRemaining,omitempty"`
}

// CategoryReport is the category breakdown of one window.
type CategoryReport struct {
	Window     Window          `json:"window"`
	Total      decimal.Decimal `json:"total"`
	Categories []CategoryTotal `json:"categories"`
}

// MemberReport is the per-payer category breakdown of one window.
type MemberReport struct {
	Window  Window                 `json:"window"`
	Members []MemberCategoryTotals `json:"members"`
}

// BudgetReport is the budget comparison for one window.
type BudgetReport struct {
	Window     Window           `json:"window"`
	Comparison BudgetComparison `json:"comparison"`
}

// PooledRemainingReport is the monthly target position of a joint workspace.
type PooledRemainingReport struct {
	Window    Window           `json:"window"`
	Target    *decimal.Decimal `json:"target,omitempty"`
	Spent     decimal.Decimal  `json:"spent"`
	Remaining *decimal.Decimal `json:"remaining,omitempty"`
}
