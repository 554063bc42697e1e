package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/SscSPs/household_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
	"github.com/SscSPs/household_ledger/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	ctx           context.Context
	now           time.Time
	expenseRepo   *MockExpenseRepository
	workspaceRepo *MockWorkspaceRepository
	budgetRepo    *MockBudgetRepository
	authorizer    *MockWorkspaceAuthorizer
	service       portssvc.ReportingService
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.now = time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)
	suite.expenseRepo = new(MockExpenseRepository)
	suite.workspaceRepo = new(MockWorkspaceRepository)
	suite.budgetRepo = new(MockBudgetRepository)
	suite.authorizer = new(MockWorkspaceAuthorizer)
	suite.authorizer.On("AuthorizeUserAction", mock.Anything, "alice", "ws", domain.RoleMember).Return(nil).Maybe()
	suite.service = services.NewReportingService(suite.expenseRepo, suite.workspaceRepo, suite.budgetRepo,
		services.WithReportingWorkspaceAuthorizer(suite.authorizer),
		services.WithReportingClock(func() time.Time { return suite.now }),
		services.WithReportMonths(6, 3),
	)
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func expenseOn(id, payer, category string, amount int64, date time.Time) domain.Expense {
	return domain.Expense{
		ExpenseID:   id,
		WorkspaceID: "ws",
		PayerID:     payer,
		Amount:      decimal.NewFromInt(amount),
		Category:    category,
		Date:        date,
	}
}

func (suite *ReportingServiceTestSuite) log() []domain.Expense {
	return []domain.Expense{
		expenseOn("e1", "alice", "groceries", 120, time.Date(2026, time.March, 3, 12, 0, 0, 0, time.UTC)),
		expenseOn("e2", "bob", "dining", 40, time.Date(2026, time.March, 10, 20, 0, 0, 0, time.UTC)),
		expenseOn("e3", "bob", "groceries", 60, time.Date(2026, time.February, 20, 9, 0, 0, 0, time.UTC)),
	}
}

func (suite *ReportingServiceTestSuite) members() []domain.Member {
	return []domain.Member{
		{UserID: "alice", WorkspaceID: "ws", Role: domain.RoleOwner, JoinedAt: suite.now.AddDate(-1, 0, 0)},
		{UserID: "bob", WorkspaceID: "ws", Role: domain.RoleMember, JoinedAt: suite.now.AddDate(0, -6, 0)},
	}
}

func currentMonth(r *domain.DateRange) bool {
	return r != nil &&
		r.From.Equal(time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)) &&
		r.To.Equal(time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond))
}

func (suite *ReportingServiceTestSuite) TestCategoryBreakdown_DefaultsToCurrentMonth() {
	suite.expenseRepo.On("ListExpenses", mock.Anything, "ws", mock.MatchedBy(currentMonth)).Return(suite.log(), nil).Once()

	report, err := suite.service.CategoryBreakdown(suite.ctx, "ws", "alice", nil, nil)

	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(160).Equal(report.Total))
	suite.Require().Len(report.Categories, 2)
	suite.Equal("groceries", report.Categories[0].Category)
	suite.True(decimal.NewFromInt(120).Equal(report.Categories[0].Total))
	suite.Equal("dining", report.Categories[1].Category)
	suite.expenseRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestCategoryBreakdown_InvertedWindow() {
	from := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	_, err := suite.service.CategoryBreakdown(suite.ctx, "ws", "alice", &from, &to)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.expenseRepo.AssertNotCalled(suite.T(), "ListExpenses", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReportingServiceTestSuite) TestCategoryBreakdown_SingleBoundOutsideCurrentMonth() {
	tests := []struct {
		name      string
		from      *time.Time
		to        *time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "only to, in an earlier month",
			to:        timePtr(time.Date(2026, time.January, 31, 23, 59, 59, 0, time.UTC)),
			wantStart: time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, time.January, 31, 23, 59, 59, 0, time.UTC),
		},
		{
			name:      "only to, inside the current month",
			to:        timePtr(time.Date(2026, time.March, 12, 0, 0, 0, 0, time.UTC)),
			wantStart: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, time.March, 12, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "only from, in an earlier month",
			from:      timePtr(time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)),
			wantStart: time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond),
		},
		{
			name:      "only from, in a later month",
			from:      timePtr(time.Date(2026, time.May, 10, 0, 0, 0, 0, time.UTC)),
			wantStart: time.Date(2026, time.May, 10, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond),
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.SetupTest()
			suite.expenseRepo.On("ListExpenses", mock.Anything, "ws", mock.MatchedBy(func(r *domain.DateRange) bool {
				return r != nil && r.From.Equal(tt.wantStart) && r.To.Equal(tt.wantEnd)
			})).Return(suite.log(), nil).Once()

			report, err := suite.service.CategoryBreakdown(suite.ctx, "ws", "alice", tt.from, tt.to)

			suite.Require().NoError(err)
			suite.True(report.Window.Start.Equal(tt.wantStart))
			suite.True(report.Window.End.Equal(tt.wantEnd))
			suite.expenseRepo.AssertExpectations(suite.T())
		})
	}
}

func (suite *ReportingServiceTestSuite) TestMemberBreakdown() {
	suite.expenseRepo.On("ListExpenses", mock.Anything, "ws", mock.MatchedBy(currentMonth)).Return(suite.log(), nil)

	report, err := suite.service.MemberBreakdown(suite.ctx, "ws", "alice", nil, nil)

	suite.Require().NoError(err)
	suite.Require().Len(report.Members, 2)
	suite.Equal("alice", report.Members[0].MemberID)
	suite.Equal("bob", report.Members[1].MemberID)
	suite.True(decimal.NewFromInt(40).Equal(report.Members[1].Total))
}

func (suite *ReportingServiceTestSuite) TestTrend() {
	suite.expenseRepo.On("ListExpenses", mock.Anything, "ws", mock.AnythingOfType("*domain.DateRange")).Return(suite.log(), nil)

	trend, err := suite.service.Trend(suite.ctx, "ws", "alice", 0)

	suite.Require().NoError(err)
	suite.Require().Len(trend, 6)
	suite.Equal("Oct", trend[0].Label)
	suite.True(decimal.NewFromInt(60).Equal(trend[4].Total))
	suite.True(decimal.NewFromInt(160).Equal(trend[5].Total))
	suite.True(trend[0].Total.IsZero())
}

func (suite *ReportingServiceTestSuite) TestTrend_TooManyMonths() {
	_, err := suite.service.Trend(suite.ctx, "ws", "alice", 61)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ReportingServiceTestSuite) TestSettlement() {
	suite.workspaceRepo.On("FindWorkspaceByID", mock.Anything, "ws").Return(&domain.Workspace{
		WorkspaceID: "ws", Type: domain.WorkspaceSplit, SplitMethod: domain.SplitEqual,
	}, nil)
	suite.workspaceRepo.On("ListMembers", mock.Anything, "ws").Return(suite.members(), nil)
	suite.expenseRepo.On("ListExpenses", mock.Anything, "ws", (*domain.DateRange)(nil)).Return(suite.log(), nil)

	settlement, err := suite.service.Settlement(suite.ctx, "ws", "alice")

	suite.Require().NoError(err)
	// total 220, each owes 110; alice paid 120, bob paid 100
	suite.True(decimal.NewFromInt(10).Equal(settlement.Balances["alice"]))
	suite.True(decimal.NewFromInt(-10).Equal(settlement.Balances["bob"]))
	suite.Require().NotNil(settlement.MyBalance)
	suite.True(decimal.NewFromInt(10).Equal(*settlement.MyBalance))
}

func (suite *ReportingServiceTestSuite) TestSettlement_RequiresSplitWorkspace() {
	suite.workspaceRepo.On("FindWorkspaceByID", mock.Anything, "ws").Return(&domain.Workspace{WorkspaceID: "ws", Type: domain.WorkspacePersonal}, nil)
	suite.workspaceRepo.On("ListMembers", mock.Anything, "ws").Return(suite.members(), nil)
	suite.expenseRepo.On("ListExpenses", mock.Anything, "ws", (*domain.DateRange)(nil)).Return(suite.log(), nil)

	settlement, err := suite.service.Settlement(suite.ctx, "ws", "alice")

	suite.Nil(settlement)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ReportingServiceTestSuite) TestSettlement_CollaboratorFailurePropagates() {
	storeErr := errors.New("connection reset")
	suite.workspaceRepo.On("FindWorkspaceByID", mock.Anything, "ws").Return(&domain.Workspace{WorkspaceID: "ws", Type: domain.WorkspaceSplit}, nil).Maybe()
	suite.workspaceRepo.On("ListMembers", mock.Anything, "ws").Return(nil, storeErr)
	suite.expenseRepo.On("ListExpenses", mock.Anything, "ws", (*domain.DateRange)(nil)).Return(suite.log(), nil).Maybe()

	_, err := suite.service.Settlement(suite.ctx, "ws", "alice")

	suite.ErrorIs(err, storeErr)
}

func (suite *ReportingServiceTestSuite) TestBudgetComparison() {
	budget := decimal.NewFromInt(500)
	suite.workspaceRepo.On("FindWorkspaceByID", mock.Anything, "ws").Return(&domain.Workspace{
		WorkspaceID: "ws", Type: domain.WorkspacePersonal, MonthlyBudget: &budget,
	}, nil)
	suite.budgetRepo.On("ListCategoryBudgets", mock.Anything, "ws").Return([]domain.CategoryBudget{
		{WorkspaceID: "ws", Category: "groceries", Limit: decimal.NewFromInt(100)},
	}, nil)
	suite.expenseRepo.On("ListExpenses", mock.Anything, "ws", mock.MatchedBy(currentMonth)).Return(suite.log(), nil)

	report, err := suite.service.BudgetComparison(suite.ctx, "ws", "alice")

	suite.Require().NoError(err)
	comparison := report.Comparison
	suite.Require().Len(comparison.Budgeted, 1)
	suite.True(comparison.Budgeted[0].IsOver)
	suite.Require().Len(comparison.Unbudgeted, 1)
	suite.Equal("dining", comparison.Unbudgeted[0].Category)
	suite.Require().NotNil(comparison.OverallRemaining)
	suite.True(decimal.NewFromInt(340).Equal(*comparison.OverallRemaining))
}

func (suite *ReportingServiceTestSuite) TestPooledRemaining() {
	target := decimal.NewFromInt(100)
	suite.workspaceRepo.On("FindWorkspaceByID", mock.Anything, "ws").Return(&domain.Workspace{
		WorkspaceID: "ws", Type: domain.WorkspaceJoint, MonthlyTarget: &target,
	}, nil)
	suite.expenseRepo.On("ListExpenses", mock.Anything, "ws", mock.MatchedBy(currentMonth)).Return(suite.log(), nil)

	report, err := suite.service.PooledRemaining(suite.ctx, "ws", "alice")

	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(160).Equal(report.Spent))
	suite.Require().NotNil(report.Remaining)
	suite.True(decimal.NewFromInt(-60).Equal(*report.Remaining))
}

func (suite *ReportingServiceTestSuite) TestSummary_SplitWorkspace() {
	suite.workspaceRepo.On("FindWorkspaceByID", mock.Anything, "ws").Return(&domain.Workspace{
		WorkspaceID: "ws", Type: domain.WorkspaceSplit, SplitMethod: domain.SplitCustom,
		CustomSplitConfig: []byte(`{"ownerShare": 60}`),
	}, nil)
	suite.workspaceRepo.On("ListMembers", mock.Anything, "ws").Return(suite.members(), nil)
	suite.budgetRepo.On("ListCategoryBudgets", mock.Anything, "ws").Return([]domain.CategoryBudget{}, nil)
	suite.expenseRepo.On("ListExpenses", mock.Anything, "ws", (*domain.DateRange)(nil)).Return(suite.log(), nil).Once()

	summary, err := suite.service.Summary(suite.ctx, "ws", "alice")

	suite.Require().NoError(err)
	suite.Len(summary.Trend, 3)
	suite.Len(summary.Categories, 2)
	suite.True(decimal.NewFromInt(160).Equal(summary.Budget.OverallSpent))
	suite.Nil(summary.PooledRemaining)
	suite.Require().NotNil(summary.Settlement)
	// owner carries 60% of 220 = 132 against 120 paid
	suite.True(decimal.NewFromInt(-12).Equal(summary.Settlement.Balances["alice"]))
	suite.True(decimal.NewFromInt(12).Equal(summary.Settlement.Balances["bob"]))
	suite.expenseRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestSummary_JointWorkspace() {
	target := decimal.NewFromInt(1000)
	suite.workspaceRepo.On("FindWorkspaceByID", mock.Anything, "ws").Return(&domain.Workspace{
		WorkspaceID: "ws", Type: domain.WorkspaceJoint, MonthlyTarget: &target,
	}, nil)
	suite.workspaceRepo.On("ListMembers", mock.Anything, "ws").Return(suite.members(), nil)
	suite.budgetRepo.On("ListCategoryBudgets", mock.Anything, "ws").Return(nil, nil)
	suite.expenseRepo.On("ListExpenses", mock.Anything, "ws", (*domain.DateRange)(nil)).Return(suite.log(), nil)

	summary, err := suite.service.Summary(suite.ctx, "ws", "alice")

	suite.Require().NoError(err)
	suite.Nil(summary.Settlement)
	suite.Require().NotNil(summary.PooledRemaining)
	suite.True(decimal.NewFromInt(840).Equal(*summary.PooledRemaining))
}

func (suite *ReportingServiceTestSuite) TestForbiddenUser() {
	suite.authorizer.On("AuthorizeUserAction", mock.Anything, "mallory", "ws", domain.RoleMember).
		Return(apperrors.NewForbiddenError("not a member of this workspace"))

	_, err := suite.service.Summary(suite.ctx, "ws", "mallory")

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.expenseRepo.AssertNotCalled(suite.T(), "ListExpenses", mock.Anything, mock.Anything, mock.Anything)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
