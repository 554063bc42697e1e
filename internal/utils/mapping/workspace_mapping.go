package mapping

import (
	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/SscSPs/household_ledger/internal/models"
	"github.com/shopspring/decimal"
)

func toNullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

func fromNullDecimal(n decimal.NullDecimal) *decimal.Decimal {
	if !n.Valid {
		return nil
	}
	d := n.Decimal
	return &d
}

// ToModelWorkspace converts a domain Workspace to a model Workspace
func ToModelWorkspace(d domain.Workspace) models.Workspace {
	return models.Workspace{
		WorkspaceID:       d.WorkspaceID,
		Name:              d.Name,
		WorkspaceType:     string(d.Type),
		SplitMethod:       string(d.SplitMethod),
		CustomSplitConfig: d.CustomSplitConfig,
		MonthlyTarget:     toNullDecimal(d.MonthlyTarget),
		MonthlyBudget:     toNullDecimal(d.MonthlyBudget),
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainWorkspace converts a model Workspace to a domain Workspace
func ToDomainWorkspace(m models.Workspace) domain.Workspace {
	return domain.Workspace{
		WorkspaceID:       m.WorkspaceID,
		Name:              m.Name,
		Type:              domain.WorkspaceType(m.WorkspaceType),
		SplitMethod:       domain.SplitMethod(m.SplitMethod),
		CustomSplitConfig: m.CustomSplitConfig,
		MonthlyTarget:     fromNullDecimal(m.MonthlyTarget),
		MonthlyBudget:     fromNullDecimal(m.MonthlyBudget),
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainWorkspaceSlice converts a slice of model Workspaces to a slice of domain Workspaces
func ToDomainWorkspaceSlice(ms []models.Workspace) []domain.Workspace {
	ds := make([]domain.Workspace, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainWorkspace(m)
	}
	return ds
}

// ToModelMember converts a domain Member to a model WorkspaceMember
func ToModelMember(d domain.Member) models.WorkspaceMember {
	return models.WorkspaceMember{
		WorkspaceID: d.WorkspaceID,
		UserID:      d.UserID,
		UserName:    d.UserName,
		Role:        string(d.Role),
		JoinedAt:    d.JoinedAt,
	}
}

// ToDomainMember converts a model WorkspaceMember to a domain Member
func ToDomainMember(m models.WorkspaceMember) domain.Member {
	return domain.Member{
		UserID:      m.UserID,
		UserName:    m.UserName,
		WorkspaceID: m.WorkspaceID,
		Role:        domain.MemberRole(m.Role),
		JoinedAt:    m.JoinedAt,
	}
}

// ToDomainMemberSlice converts a slice of model WorkspaceMembers to a slice of domain Members
func ToDomainMemberSlice(ms []models.WorkspaceMember) []domain.Member {
	ds := make([]domain.Member, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainMember(m)
	}
	return ds
}
