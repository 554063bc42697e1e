package services

import (
	"context"
	"time"

	"github.com/SscSPs/household_ledger/internal/core/domain"
)

// ReportingService defines the aggregate views computed from a workspace's expense log.
// Nothing here is persisted; every call recomputes from a fresh snapshot.
type ReportingService interface {
	// CategoryBreakdown totals spend per category for a window.
	// Missing bounds default to the current calendar month.
	CategoryBreakdown(ctx context.Context, workspaceID, userID string, from, to *time.Time) (*domain.CategoryReport, error)

	// MemberBreakdown totals spend per payer and category for a window.
	MemberBreakdown(ctx context.Context, workspaceID, userID string, from, to *time.Time) (*domain.MemberReport, error)

	// Trend returns monthly totals for the last months calendar months, oldest first.
	// A non-positive months uses the configured default.
	Trend(ctx context.Context, workspaceID, userID string, months int) ([]domain.MonthTotal, error)

	// Settlement computes the all-time member balances of a split workspace.
	Settlement(ctx context.Context, workspaceID, userID string) (*domain.Settlement, error)

	// BudgetComparison compares the current month's spend against the configured limits.
	BudgetComparison(ctx context.Context, workspaceID, userID string) (*domain.BudgetReport, error)

	// PooledRemaining reports what is left of a joint workspace's monthly target.
	PooledRemaining(ctx context.Context, workspaceID, userID string) (*domain.PooledRemainingReport, error)

	// Summary builds the dashboard view from a single snapshot.
	Summary(ctx context.Context, workspaceID, userID string) (*domain.WorkspaceSummary, error)
}
