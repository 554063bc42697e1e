package dto

import (
	"reflect"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// RegisterValidators installs the custom binding rules used by the request DTOs.
// Decimal fields are validated as float64 so the built-in gte/lte tags apply.
func RegisterValidators(v *validator.Validate) error {
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	if err := v.RegisterValidation("workspacetype", validWorkspaceType); err != nil {
		return err
	}
	return v.RegisterValidation("splitmethod", validSplitMethod)
}

func decimalValue(field reflect.Value) interface{} {
	d, ok := field.Interface().(decimal.Decimal)
	if !ok {
		return nil
	}
	f, _ := d.Float64()
	return f
}

func validWorkspaceType(fl validator.FieldLevel) bool {
	return domain.WorkspaceType(fl.Field().String()).IsValid()
}

func validSplitMethod(fl validator.FieldLevel) bool {
	return domain.SplitMethod(fl.Field().String()).IsValid()
}
