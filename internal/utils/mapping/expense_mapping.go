package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/SscSPs/household_ledger/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelExpense converts a domain Expense to a model Expense.
// An empty override is stored as NULL.
func ToModelExpense(d domain.Expense) (models.Expense, error) {
	var splitDetails []byte
	if d.HasSplitOverride() {
		raw, err := json.Marshal(d.SplitDetails)
		if err != nil {
			return models.Expense{}, fmt.Errorf("encode split details of expense %s: %w", d.ExpenseID, err)
		}
		splitDetails = raw
	}
	return models.Expense{
		ExpenseID:    d.ExpenseID,
		WorkspaceID:  d.WorkspaceID,
		PayerID:      d.PayerID,
		Amount:       d.Amount,
		Category:     d.Category,
		Description:  d.Description,
		ExpenseDate:  d.Date,
		IsRecurring:  d.IsRecurring,
		SplitDetails: splitDetails,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}, nil
}

// ToDomainExpense converts a model Expense to a domain Expense
func ToDomainExpense(m models.Expense) (domain.Expense, error) {
	var splitDetails map[string]decimal.Decimal
	if len(m.SplitDetails) > 0 && string(m.SplitDetails) != "null" {
		if err := json.Unmarshal(m.SplitDetails, &splitDetails); err != nil {
			return domain.Expense{}, fmt.Errorf("decode split details of expense %s: %w", m.ExpenseID, err)
		}
	}
	return domain.Expense{
		ExpenseID:    m.ExpenseID,
		WorkspaceID:  m.WorkspaceID,
		PayerID:      m.PayerID,
		Amount:       m.Amount,
		Category:     m.Category,
		Description:  m.Description,
		Date:         m.ExpenseDate,
		IsRecurring:  m.IsRecurring,
		SplitDetails: splitDetails,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}, nil
}

// ToDomainExpenseSlice converts a slice of model Expenses to a slice of domain Expenses
func ToDomainExpenseSlice(ms []models.Expense) ([]domain.Expense, error) {
	ds := make([]domain.Expense, len(ms))
	for i, m := range ms {
		d, err := ToDomainExpense(m)
		if err != nil {
			return nil, err
		}
		ds[i] = d
	}
	return ds, nil
}
