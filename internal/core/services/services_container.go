package services

import (
	"github.com/SscSPs/household_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/household_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
	"github.com/SscSPs/household_ledger/internal/platform/config"
	"github.com/SscSPs/household_ledger/internal/utils/timewindow"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The workspace service is the authorizer every other service delegates to.
	container.Workspace = NewWorkspaceService(repos.WorkspaceRepo)
	authorizer := container.Workspace.(portssvc.WorkspaceAuthorizerSvc)

	container.Expense = NewExpenseService(
		repos.ExpenseRepo,
		repos.WorkspaceRepo,
		WithExpenseWorkspaceAuthorizer(authorizer),
	)
	container.Budget = NewBudgetService(
		repos.BudgetRepo,
		WithBudgetWorkspaceAuthorizer(authorizer),
	)
	container.Reporting = NewReportingService(
		repos.ExpenseRepo,
		repos.WorkspaceRepo,
		repos.BudgetRepo,
		WithReportingWorkspaceAuthorizer(authorizer),
		WithTimeWindowResolver(timewindow.NewResolver(cfg.Location, cfg.Locale)),
		WithCategoryCatalog(domain.DefaultCatalog),
		WithReportMonths(cfg.TrendMonths, cfg.SummaryMonths),
	)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.WorkspaceSvcFacade = (*workspaceService)(nil)
	_ portssvc.ExpenseSvcFacade   = (*expenseService)(nil)
	_ portssvc.BudgetSvcFacade    = (*budgetService)(nil)
	_ portssvc.ReportingService   = (*reportingService)(nil)
)
