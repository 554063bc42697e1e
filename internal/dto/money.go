package dto

import (
	"github.com/SscSPs/household_ledger/internal/utils"
	"github.com/shopspring/decimal"
)

// displayPrecision is the number of decimal places used for display strings.
const displayPrecision = 2

// Money carries an exact amount together with its rounded display form.
type Money struct {
	Value   decimal.Decimal `json:"value"`
	Display string          `json:"display"`
}

// NewMoney wraps an amount for a response.
func NewMoney(d decimal.Decimal) Money {
	return Money{Value: d, Display: utils.FormatWithPrecision(d, displayPrecision)}
}

// NewMoneyPtr wraps an optional amount, keeping nil as nil.
func NewMoneyPtr(d *decimal.Decimal) *Money {
	if d == nil {
		return nil
	}
	m := NewMoney(*d)
	return &m
}
