package accounting

import (
	"log/slog"
	"sort"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Settle computes the running balance of every current member of a split
// workspace from the full expense history. Each expense credits its payer
// the whole amount and debits the members' shares: the explicit SplitDetails
// when present, otherwise the workspace policy. Ids that are not current
// members are dropped, not reassigned.
func Settle(expenses []domain.Expense, members []domain.Member, workspace domain.Workspace, logger *slog.Logger) domain.Settlement {
	if logger == nil {
		logger = slog.Default()
	}
	current := CurrentMembers(members)
	balances := make(map[string]decimal.Decimal, len(current))
	for _, m := range current {
		balances[m.UserID] = decimal.Zero
	}

	policy, err := workspace.SplitPolicy()
	if err != nil {
		logger.Warn("Falling back to equal split",
			slog.String("workspace_id", workspace.WorkspaceID),
			slog.String("error", err.Error()))
	}
	result := domain.Settlement{
		WorkspaceID: workspace.WorkspaceID,
		Policy:      policy.Method(),
		Balances:    balances,
	}
	if len(current) == 0 {
		return result
	}

	shares := ResolveShares(policy, current, logger)

	for _, e := range expenses {
		if _, ok := balances[e.PayerID]; ok {
			balances[e.PayerID] = balances[e.PayerID].Add(e.Amount)
		}

		if e.HasSplitOverride() {
			if total := e.SplitDetailsTotal(); !total.Equal(e.Amount) {
				logger.Warn("Split details do not sum to expense amount",
					slog.String("expense_id", e.ExpenseID),
					slog.String("amount", e.Amount.String()),
					slog.String("split_total", total.String()))
			}
			for memberID, share := range e.SplitDetails {
				if _, ok := balances[memberID]; ok {
					balances[memberID] = balances[memberID].Sub(share)
				}
			}
			continue
		}

		for memberID, share := range shares {
			balances[memberID] = balances[memberID].Sub(e.Amount.Mul(share))
		}
	}
	return result
}

// ResolveShares maps every member to their fraction of an expense under
// policy. Fractions sum to 1 within decimal division precision.
func ResolveShares(policy domain.SplitPolicy, members []domain.Member, logger *slog.Logger) map[string]decimal.Decimal {
	shares := make(map[string]decimal.Decimal, len(members))
	if len(members) == 0 {
		return shares
	}

	switch p := policy.(type) {
	case domain.CustomSplit:
		owner, ok := designatedOwner(members, logger)
		if !ok {
			if logger != nil {
				logger.Warn("Custom split without an owner, falling back to equal split")
			}
			return equalShares(members)
		}
		others := len(members) - 1
		if others == 0 {
			// Nobody to hand the remainder to.
			shares[owner.UserID] = decimal.NewFromInt(1)
			return shares
		}
		ownerFraction := p.OwnerFraction()
		otherFraction := decimal.NewFromInt(1).Sub(ownerFraction).Div(decimal.NewFromInt(int64(others)))
		for _, m := range members {
			if m.UserID == owner.UserID {
				shares[m.UserID] = ownerFraction
			} else {
				shares[m.UserID] = otherFraction
			}
		}
		return shares
	case domain.EqualSplit, domain.IncomeWeightedSplit:
		return equalShares(members)
	default:
		return equalShares(members)
	}
}

// CurrentMembers filters out removed memberships and duplicate user ids.
func CurrentMembers(members []domain.Member) []domain.Member {
	seen := make(map[string]bool, len(members))
	out := make([]domain.Member, 0, len(members))
	for _, m := range members {
		if !m.IsCurrent() || seen[m.UserID] {
			continue
		}
		seen[m.UserID] = true
		out = append(out, m)
	}
	return out
}

// MyBalance picks one member's balance out of a settlement.
func MyBalance(s domain.Settlement, userID string) *decimal.Decimal {
	balance, ok := s.Balances[userID]
	if !ok {
		return nil
	}
	return &balance
}

var zeroSumTolerance = decimal.New(1, -6)

// NetsToZero reports whether balances sum to zero within
// 1e-6 * max(1, totalSpent).
func NetsToZero(balances map[string]decimal.Decimal, totalSpent decimal.Decimal) bool {
	sum := decimal.Zero
	for _, b := range balances {
		sum = sum.Add(b)
	}
	scale := decimal.Max(decimal.NewFromInt(1), totalSpent.Abs())
	return sum.Abs().LessThanOrEqual(zeroSumTolerance.Mul(scale))
}

func equalShares(members []domain.Member) map[string]decimal.Decimal {
	shares := make(map[string]decimal.Decimal, len(members))
	each := decimal.NewFromInt(1).Div(decimal.NewFromInt(int64(len(members))))
	for _, m := range members {
		shares[m.UserID] = each
	}
	return shares
}

// designatedOwner picks the earliest-joined OWNER; ties break on user id.
func designatedOwner(members []domain.Member, logger *slog.Logger) (domain.Member, bool) {
	var owners []domain.Member
	for _, m := range members {
		if m.Role == domain.RoleOwner {
			owners = append(owners, m)
		}
	}
	if len(owners) == 0 {
		return domain.Member{}, false
	}
	sort.SliceStable(owners, func(i, j int) bool {
		if !owners[i].JoinedAt.Equal(owners[j].JoinedAt) {
			return owners[i].JoinedAt.Before(owners[j].JoinedAt)
		}
		return owners[i].UserID < owners[j].UserID
	})
	if len(owners) > 1 && logger != nil {
		logger.Warn("Workspace has several owners, using the earliest",
			slog.String("owner_id", owners[0].UserID),
			slog.Int("owner_count", len(owners)))
	}
	return owners[0], true
}
