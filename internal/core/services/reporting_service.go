package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/SscSPs/household_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/household_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
	"github.com/SscSPs/household_ledger/internal/utils/accounting"
	"github.com/SscSPs/household_ledger/internal/utils/aggregation"
	"github.com/SscSPs/household_ledger/internal/utils/timewindow"
	"golang.org/x/sync/errgroup"
)

// maxTrendMonths bounds the trend window a caller may request.
const maxTrendMonths = 60

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	expenseRepo   portsrepo.ExpenseReader
	workspaceRepo portsrepo.WorkspaceRepositoryFacade
	budgetRepo    portsrepo.CategoryBudgetReader
	resolver      *timewindow.Resolver
	catalog       *domain.CategoryCatalog
	trendMonths   int
	summaryMonths int
	now           func() time.Time
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithReportingWorkspaceAuthorizer sets the workspace authorizer for the reporting service.
func WithReportingWorkspaceAuthorizer(authorizer portssvc.WorkspaceAuthorizerSvc) ReportingServiceOption {
	return func(s *reportingService) {
		s.WorkspaceAuthorizer = authorizer
	}
}

// WithTimeWindowResolver sets the resolver that defines calendar months.
func WithTimeWindowResolver(resolver *timewindow.Resolver) ReportingServiceOption {
	return func(s *reportingService) {
		s.resolver = resolver
	}
}

// WithCategoryCatalog sets the catalog used for display names and icons.
func WithCategoryCatalog(catalog *domain.CategoryCatalog) ReportingServiceOption {
	return func(s *reportingService) {
		s.catalog = catalog
	}
}

// WithReportMonths sets the default trend length and the dashboard trend length.
func WithReportMonths(trend, summary int) ReportingServiceOption {
	return func(s *reportingService) {
		if trend > 0 {
			s.trendMonths = trend
		}
		if summary > 0 {
			s.summaryMonths = summary
		}
	}
}

// WithReportingClock overrides the clock that decides the current month.
func WithReportingClock(now func() time.Time) ReportingServiceOption {
	return func(s *reportingService) {
		s.now = now
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(
	expenseRepo portsrepo.ExpenseReader,
	workspaceRepo portsrepo.WorkspaceRepositoryFacade,
	budgetRepo portsrepo.CategoryBudgetReader,
	options ...ReportingServiceOption,
) portssvc.ReportingService {
	svc := &reportingService{
		expenseRepo:   expenseRepo,
		workspaceRepo: workspaceRepo,
		budgetRepo:    budgetRepo,
		resolver:      timewindow.NewResolver(time.UTC, "en"),
		catalog:       domain.DefaultCatalog,
		trendMonths:   timewindow.DefaultTrendMonths,
		summaryMonths: timewindow.DefaultSummaryMonths,
		now:           time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// snapshotRequest selects what loadSnapshot reads. Expenses are always read.
type snapshotRequest struct {
	workspace bool
	members   bool
	budgets   bool
	dateRange *domain.DateRange // nil reads the whole log
}

// snapshot is one consistent-enough view of a workspace for the pure folds.
type snapshot struct {
	workspace *domain.Workspace
	members   []domain.Member
	budgets   []domain.CategoryBudget
	expenses  []domain.Expense
}

// loadSnapshot fans the collaborator reads out concurrently. The first failure cancels the rest.
func (s *reportingService) loadSnapshot(ctx context.Context, workspaceID string, req snapshotRequest) (*snapshot, error) {
	snap := &snapshot{}
	g, gctx := errgroup.WithContext(ctx)

	if req.workspace {
		g.Go(func() error {
			ws, err := s.workspaceRepo.FindWorkspaceByID(gctx, workspaceID)
			if err != nil {
				return err
			}
			snap.workspace = ws
			return nil
		})
	}
	if req.members {
		g.Go(func() error {
			members, err := s.workspaceRepo.ListMembers(gctx, workspaceID)
			if err != nil {
				return fmt.Errorf("failed to load members: %w", err)
			}
			snap.members = members
			return nil
		})
	}
	if req.budgets {
		g.Go(func() error {
			budgets, err := s.budgetRepo.ListCategoryBudgets(gctx, workspaceID)
			if err != nil {
				return fmt.Errorf("failed to load category budgets: %w", err)
			}
			snap.budgets = budgets
			return nil
		})
	}
	g.Go(func() error {
		expenses, err := s.expenseRepo.ListExpenses(gctx, workspaceID, req.dateRange)
		if err != nil {
			return fmt.Errorf("failed to load expenses: %w", err)
		}
		snap.expenses = expenses
		return nil
	})

	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to load workspace snapshot",
			slog.String("workspace_id", workspaceID))
		return nil, err
	}
	return snap, nil
}

func rangeOf(w domain.Window) *domain.DateRange {
	return &domain.DateRange{From: w.Start, To: w.End}
}

// CategoryBreakdown totals spend per category for a window
func (s *reportingService) CategoryBreakdown(ctx context.Context, workspaceID, userID string, from, to *time.Time) (*domain.CategoryReport, error) {
	if err := s.AuthorizeUser(ctx, userID, workspaceID, domain.RoleMember); err != nil {
		return nil, err
	}
	window, err := s.window(from, to)
	if err != nil {
		return nil, err
	}

	snap, err := s.loadSnapshot(ctx, workspaceID, snapshotRequest{dateRange: rangeOf(window)})
	if err != nil {
		return nil, err
	}

	report := &domain.CategoryReport{
		Window:     window,
		Total:      aggregation.Total(snap.expenses, window),
		Categories: aggregation.ByCategory(snap.expenses, window, s.catalog),
	}
	s.LogDebug(ctx, "Category breakdown computed",
		slog.String("workspace_id", workspaceID),
		slog.Int("categories", len(report.Categories)))
	return report, nil
}

// MemberBreakdown totals spend per payer and category for a window
func (s *reportingService) MemberBreakdown(ctx context.Context, workspaceID, userID string, from, to *time.Time) (*domain.MemberReport, error) {
	if err := s.AuthorizeUser(ctx, userID, workspaceID, domain.RoleMember); err != nil {
		return nil, err
	}
	window, err := s.window(from, to)
	if err != nil {
		return nil, err
	}

	snap, err := s.loadSnapshot(ctx, workspaceID, snapshotRequest{dateRange: rangeOf(window)})
	if err != nil {
		return nil, err
	}

	return &domain.MemberReport{
		Window:  window,
		Members: aggregation.ByMemberCategory(snap.expenses, window, s.catalog),
	}, nil
}

// Trend returns monthly totals for the last months calendar months
func (s *reportingService) Trend(ctx context.Context, workspaceID, userID string, months int) ([]domain.MonthTotal, error) {
	if err := s.AuthorizeUser(ctx, userID, workspaceID, domain.RoleMember); err != nil {
		return nil, err
	}
	if months <= 0 {
		months = s.trendMonths
	}
	if months > maxTrendMonths {
		return nil, apperrors.NewValidationFailedError(fmt.Sprintf("months must not exceed %d", maxTrendMonths))
	}

	now := s.now()
	windows := s.resolver.RecentMonths(now, months)
	span := domain.Window{Start: windows[0].Start, End: windows[len(windows)-1].End}

	snap, err := s.loadSnapshot(ctx, workspaceID, snapshotRequest{dateRange: rangeOf(span)})
	if err != nil {
		return nil, err
	}
	return aggregation.Trend(snap.expenses, s.resolver, now, months), nil
}

// Settlement computes the all-time member balances of a split workspace
func (s *reportingService) Settlement(ctx context.Context, workspaceID, userID string) (*domain.Settlement, error) {
	if err := s.AuthorizeUser(ctx, userID, workspaceID, domain.RoleMember); err != nil {
		return nil, err
	}

	snap, err := s.loadSnapshot(ctx, workspaceID, snapshotRequest{workspace: true, members: true})
	if err != nil {
		return nil, err
	}
	if snap.workspace.Type != domain.WorkspaceSplit {
		return nil, apperrors.NewValidationFailedError("settlement is only available for split workspaces")
	}

	settlement := s.settle(ctx, snap, userID)
	return &settlement, nil
}

func (s *reportingService) settle(ctx context.Context, snap *snapshot, userID string) domain.Settlement {
	logger := s.GetLogger(ctx).With(slog.String("workspace_id", snap.workspace.WorkspaceID))
	settlement := accounting.Settle(snap.expenses, snap.members, *snap.workspace, logger)
	settlement.MyBalance = accounting.MyBalance(settlement, userID)
	return settlement
}

// BudgetComparison compares the current month's spend against the configured limits
func (s *reportingService) BudgetComparison(ctx context.Context, workspaceID, userID string) (*domain.BudgetReport, error) {
	if err := s.AuthorizeUser(ctx, userID, workspaceID, domain.RoleMember); err != nil {
		return nil, err
	}
	window := s.resolver.MonthWindow(s.now(), nil, nil)

	snap, err := s.loadSnapshot(ctx, workspaceID, snapshotRequest{workspace: true, budgets: true, dateRange: rangeOf(window)})
	if err != nil {
		return nil, err
	}

	return &domain.BudgetReport{
		Window:     window,
		Comparison: s.compare(snap, window),
	}, nil
}

func (s *reportingService) compare(snap *snapshot, window domain.Window) domain.BudgetComparison {
	totals := aggregation.ByCategory(snap.expenses, window, s.catalog)
	spent := aggregation.Total(snap.expenses, window)
	return accounting.CompareBudgets(totals, snap.budgets, snap.workspace.OverallLimit(), spent, s.catalog)
}

// PooledRemaining reports what is left of a joint workspace's monthly target
func (s *reportingService) PooledRemaining(ctx context.Context, workspaceID, userID string) (*domain.PooledRemainingReport, error) {
	if err := s.AuthorizeUser(ctx, userID, workspaceID, domain.RoleMember); err != nil {
		return nil, err
	}
	window := s.resolver.MonthWindow(s.now(), nil, nil)

	snap, err := s.loadSnapshot(ctx, workspaceID, snapshotRequest{workspace: true, dateRange: rangeOf(window)})
	if err != nil {
		return nil, err
	}
	if snap.workspace.Type != domain.WorkspaceJoint {
		return nil, apperrors.NewValidationFailedError("pooled remaining is only available for joint workspaces")
	}

	spent := aggregation.Total(snap.expenses, window)
	return &domain.PooledRemainingReport{
		Window:    window,
		Target:    snap.workspace.MonthlyTarget,
		Spent:     spent,
		Remaining: accounting.PooledRemaining(snap.workspace.MonthlyTarget, spent),
	}, nil
}

// Summary builds the dashboard view. The whole log is read once because the
// settlement of a split workspace spans all time; the other views filter it.
func (s *reportingService) Summary(ctx context.Context, workspaceID, userID string) (*domain.WorkspaceSummary, error) {
	if err := s.AuthorizeUser(ctx, userID, workspaceID, domain.RoleMember); err != nil {
		return nil, err
	}

	snap, err := s.loadSnapshot(ctx, workspaceID, snapshotRequest{workspace: true, members: true, budgets: true})
	if err != nil {
		return nil, err
	}

	now := s.now()
	window := s.resolver.MonthWindow(now, nil, nil)
	summary := &domain.WorkspaceSummary{
		Workspace:  *snap.workspace,
		Window:     window,
		Categories: aggregation.ByCategory(snap.expenses, window, s.catalog),
		Trend:      aggregation.Trend(snap.expenses, s.resolver, now, s.summaryMonths),
		Budget:     s.compare(snap, window),
	}

	switch snap.workspace.Type {
	case domain.WorkspaceSplit:
		settlement := s.settle(ctx, snap, userID)
		summary.Settlement = &settlement
	case domain.WorkspaceJoint:
		summary.PooledRemaining = accounting.PooledRemaining(snap.workspace.MonthlyTarget, summary.Budget.OverallSpent)
	}

	s.LogInfo(ctx, "Workspace summary computed",
		slog.String("workspace_id", workspaceID),
		slog.String("type", string(snap.workspace.Type)),
		slog.Int("expenses", len(snap.expenses)))
	return summary, nil
}

// window resolves explicit bounds. A missing bound comes from the current
// month, unless the supplied bound lies outside the side of the current month
// it would be paired with; then it comes from the month of the supplied bound.
func (s *reportingService) window(from, to *time.Time) (domain.Window, error) {
	reference := s.now()
	current := s.resolver.MonthWindow(reference, nil, nil)
	switch {
	case from == nil && to != nil && to.Before(current.Start):
		reference = *to
	case to == nil && from != nil && from.After(current.End):
		reference = *from
	}
	window := s.resolver.MonthWindow(reference, from, to)
	if window.End.Before(window.Start) {
		return domain.Window{}, apperrors.NewValidationFailedError("'to' must not be before 'from'")
	}
	return window, nil
}
