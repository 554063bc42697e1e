package dto

import (
	"sort"

	"github.com/SscSPs/household_ledger/internal/core/domain"
)

// WindowResponse describes the time window a report covers.
type WindowResponse struct {
	StartMs int64 `json:"startMs"`
	EndMs   int64 `json:"endMs"`
}

// ToWindowResponse converts a domain.Window to DTO.
func ToWindowResponse(w domain.Window) WindowResponse {
	return WindowResponse{StartMs: w.StartMs(), EndMs: w.EndMs()}
}

// CategoryTotalResponse is one row of a category breakdown.
type CategoryTotalResponse struct {
	Category string `json:"category"`
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	Total    Money  `json:"total"`
}

func toCategoryTotals(totals []domain.CategoryTotal) []CategoryTotalResponse {
	res := make([]CategoryTotalResponse, len(totals))
	for i, t := range totals {
		res[i] = CategoryTotalResponse{Category: t.Category, Name: t.Name, Icon: t.Icon, Total: NewMoney(t.Total)}
	}
	return res
}

// CategoryBreakdownResponse is the category report of one window.
type CategoryBreakdownResponse struct {
	Window     WindowResponse          `json:"window"`
	Total      Money                   `json:"total"`
	Categories []CategoryTotalResponse `json:"categories"`
}

// ToCategoryBreakdownResponse converts a domain.CategoryReport to DTO.
func ToCategoryBreakdownResponse(r *domain.CategoryReport) CategoryBreakdownResponse {
	return CategoryBreakdownResponse{
		Window:     ToWindowResponse(r.Window),
		Total:      NewMoney(r.Total),
		Categories: toCategoryTotals(r.Categories),
	}
}

// MemberTotalsResponse is one payer's spend by category.
type MemberTotalsResponse struct {
	MemberID   string                  `json:"memberID"`
	Total      Money                   `json:"total"`
	Categories []CategoryTotalResponse `json:"categories"`
}

// MemberBreakdownResponse is the per-payer report of one window.
type MemberBreakdownResponse struct {
	Window  WindowResponse         `json:"window"`
	Members []MemberTotalsResponse `json:"members"`
}

// ToMemberBreakdownResponse converts a domain.MemberReport to DTO.
func ToMemberBreakdownResponse(r *domain.MemberReport) MemberBreakdownResponse {
	members := make([]MemberTotalsResponse, len(r.Members))
	for i, m := range r.Members {
		members[i] = MemberTotalsResponse{
			MemberID:   m.MemberID,
			Total:      NewMoney(m.Total),
			Categories: toCategoryTotals(m.Categories),
		}
	}
	return MemberBreakdownResponse{Window: ToWindowResponse(r.Window), Members: members}
}

// MonthTotalResponse is one point of a monthly trend.
type MonthTotalResponse struct {
	Label   string `json:"label"`
	StartMs int64  `json:"startMs"`
	EndMs   int64  `json:"endMs"`
	Total   Money  `json:"total"`
}

// TrendResponse wraps a monthly trend, oldest month first.
type TrendResponse struct {
	Months []MonthTotalResponse `json:"months"`
}

// ToTrendResponse converts monthly totals to DTO.
func ToTrendResponse(months []domain.MonthTotal) TrendResponse {
	res := make([]MonthTotalResponse, len(months))
	for i, m := range months {
		res[i] = MonthTotalResponse{
			Label:   m.Label,
			StartMs: m.Start.UnixMilli(),
			EndMs:   m.End.UnixMilli(),
			Total:   NewMoney(m.Total),
		}
	}
	return TrendResponse{Months: res}
}

// MemberBalanceResponse is one member's settlement position.
// Positive means the group owes the member, negative means the member owes the group.
type MemberBalanceResponse struct {
	MemberID string `json:"memberID"`
	Balance  Money  `json:"balance"`
}

// SettlementResponse is the settlement ledger of a split workspace.
type SettlementResponse struct {
	WorkspaceID string                  `json:"workspaceID"`
	Policy      domain.SplitMethod      `json:"policy"`
	Balances    []MemberBalanceResponse `json:"balances"`
	MyBalance   *Money                  `json:"myBalance,omitempty"`
}

// ToSettlementResponse converts a domain.Settlement to DTO.
// Balances are ordered from most owed to most owing, then by member ID.
func ToSettlementResponse(s *domain.Settlement) SettlementResponse {
	balances := make([]MemberBalanceResponse, 0, len(s.Balances))
	for id, b := range s.Balances {
		balances = append(balances, MemberBalanceResponse{MemberID: id, Balance: NewMoney(b)})
	}
	sort.Slice(balances, func(i, j int) bool {
		if c := balances[i].Balance.Value.Cmp(balances[j].Balance.Value); c != 0 {
			return c > 0
		}
		return balances[i].MemberID < balances[j].MemberID
	})
	return SettlementResponse{
		WorkspaceID: s.WorkspaceID,
		Policy:      s.Policy,
		Balances:    balances,
		MyBalance:   NewMoneyPtr(s.MyBalance),
	}
}

// CategoryBudgetStatusResponse compares one category against its limit.
type CategoryBudgetStatusResponse struct {
	Category string `json:"category"`
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	Spent    Money  `json:"spent"`
	Limit    Money  `json:"limit"`
	IsOver   bool   `json:"isOver"`
}

// BudgetComparisonResponse is the budget-vs-actual view of one window.
type BudgetComparisonResponse struct {
	Window           WindowResponse                 `json:"window"`
	Budgeted         []CategoryBudgetStatusResponse `json:"budgeted"`
	Unbudgeted       []CategoryTotalResponse        `json:"unbudgeted"`
	OverallLimit     *Money                         `json:"overallLimit,omitempty"`
	OverallSpent     Money                          `json:"overallSpent"`
	OverallRemaining *Money                         `json:"overallRemaining,omitempty"`
}

// ToBudgetComparisonResponse converts a budget comparison and its window to DTO.
func ToBudgetComparisonResponse(window domain.Window, c *domain.BudgetComparison) BudgetComparisonResponse {
	budgeted := make([]CategoryBudgetStatusResponse, len(c.Budgeted))
	for i, b := range c.Budgeted {
		budgeted[i] = CategoryBudgetStatusResponse{
			Category: b.Category,
			Name:     b.Name,
			Icon:     b.Icon,
			Spent:    NewMoney(b.Spent),
			Limit:    NewMoney(b.Limit),
			IsOver:   b.IsOver,
		}
	}
	return BudgetComparisonResponse{
		Window:           ToWindowResponse(window),
		Budgeted:         budgeted,
		Unbudgeted:       toCategoryTotals(c.Unbudgeted),
		OverallLimit:     NewMoneyPtr(c.OverallLimit),
		OverallSpent:     NewMoney(c.OverallSpent),
		OverallRemaining: NewMoneyPtr(c.OverallRemaining),
	}
}

// PooledRemainingResponse is the monthly target position of a joint workspace.
type PooledRemainingResponse struct {
	Window    WindowResponse `json:"window"`
	Target    *Money         `json:"target,omitempty"`
	Spent     Money          `json:"spent"`
	Remaining *Money         `json:"remaining,omitempty"`
}

// ToPooledRemainingResponse converts a domain.PooledRemainingReport to DTO.
func ToPooledRemainingResponse(r *domain.PooledRemainingReport) PooledRemainingResponse {
	return PooledRemainingResponse{
		Window:    ToWindowResponse(r.Window),
		Target:    NewMoneyPtr(r.Target),
		Spent:     NewMoney(r.Spent),
		Remaining: NewMoneyPtr(r.Remaining),
	}
}

// SummaryResponse is the dashboard view of a workspace.
type SummaryResponse struct {
	Workspace       WorkspaceResponse        `json:"workspace"`
	Window          WindowResponse           `json:"window"`
	Categories      []CategoryTotalResponse  `json:"categories"`
	Trend           []MonthTotalResponse     `json:"trend"`
	Budget          BudgetComparisonResponse `json:"budget"`
	Settlement      *SettlementResponse      `json:"settlement,omitempty"`
	PooledRemaining *Money                   `json:"pooledRemaining,omitempty"`
}

// ToSummaryResponse converts a domain.WorkspaceSummary to DTO.
func ToSummaryResponse(s *domain.WorkspaceSummary) SummaryResponse {
	res := SummaryResponse{
		Workspace:       ToWorkspaceResponse(&s.Workspace),
		Window:          ToWindowResponse(s.Window),
		Categories:      toCategoryTotals(s.Categories),
		Trend:           ToTrendResponse(s.Trend).Months,
		Budget:          ToBudgetComparisonResponse(s.Window, &s.Budget),
		PooledRemaining: NewMoneyPtr(s.PooledRemaining),
	}
	if s.Settlement != nil {
		settlement := ToSettlementResponse(s.Settlement)
		res.Settlement = &settlement
	}
	return res
}
