package domain

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// SplitPolicy is the closed set of rules for dividing an expense among members.
// The variants are EqualSplit, IncomeWeightedSplit and CustomSplit.
type SplitPolicy interface {
	splitPolicy()
	Method() SplitMethod
}

// EqualSplit gives every current member 1/n of each expense.
type EqualSplit struct{}

// IncomeWeightedSplit is a reserved tag. No weighting data exists, so it
// resolves to equal shares.
type IncomeWeightedSplit struct{}

// CustomSplit makes the workspace owner absorb OwnerShare percent of every
// expense; the rest is divided equally among the other members.
type CustomSplit struct {
	OwnerShare decimal.Decimal // percent, 0..100
}

func (EqualSplit) splitPolicy()          {}
func (IncomeWeightedSplit) splitPolicy() {}
func (CustomSplit) splitPolicy()         {}

func (EqualSplit) Method() SplitMethod          { return SplitEqual }
func (IncomeWeightedSplit) Method() SplitMethod { return SplitIncome }
func (CustomSplit) Method() SplitMethod         { return SplitCustom }

// OwnerFraction returns the owner share as a fraction of 1.
func (c CustomSplit) OwnerFraction() decimal.Decimal {
	return c.OwnerShare.Div(hundred)
}

// ErrMalformedSplitConfig is returned when a custom split config cannot be used.
var ErrMalformedSplitConfig = errors.New("malformed custom split config")

type customSplitConfig struct {
	OwnerShare *decimal.Decimal `json:"ownerShare"`
}

// ParseCustomSplitConfig decodes {"ownerShare": N} with 0 <= N <= 100.
func ParseCustomSplitConfig(raw []byte) (CustomSplit, error) {
	if len(raw) == 0 {
		return CustomSplit{}, fmt.Errorf("%w: empty config", ErrMalformedSplitConfig)
	}
	var cfg customSplitConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return CustomSplit{}, fmt.Errorf("%w: %v", ErrMalformedSplitConfig, err)
	}
	if cfg.OwnerShare == nil {
		return CustomSplit{}, fmt.Errorf("%w: ownerShare missing", ErrMalformedSplitConfig)
	}
	if cfg.OwnerShare.IsNegative() || cfg.OwnerShare.GreaterThan(hundred) {
		return CustomSplit{}, fmt.Errorf("%w: ownerShare %s out of range", ErrMalformedSplitConfig, cfg.OwnerShare.String())
	}
	return CustomSplit{OwnerShare: *cfg.OwnerShare}, nil
}

// EncodeCustomSplitConfig is the inverse of ParseCustomSplitConfig.
func EncodeCustomSplitConfig(ownerShare decimal.Decimal) json.RawMessage {
	raw, _ := json.Marshal(struct {
		OwnerShare json.Number `json:"ownerShare"`
	}{OwnerShare: json.Number(ownerShare.String())})
	return raw
}

// SplitPolicy resolves the workspace's effective default policy. When the
// method is custom but the config is unusable it returns EqualSplit together
// with the parse error so the caller can report the anomaly.
func (w *Workspace) SplitPolicy() (SplitPolicy, error) {
	switch w.SplitMethod {
	case SplitCustom:
		custom, err := ParseCustomSplitConfig(w.CustomSplitConfig)
		if err != nil {
			return EqualSplit{}, err
		}
		return custom, nil
	case SplitIncome:
		return IncomeWeightedSplit{}, nil
	default:
		return EqualSplit{}, nil
	}
}
