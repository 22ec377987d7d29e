package service

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Skotchmaster/storefront/pkg/validate"
)

type Validator struct {
	v *validator.Validate
}

// NewValidator adds the Brazilian document and digit-count rules to the shared validator.
func NewValidator() *Validator {
	v := validate.New()

	_ = v.RegisterValidation("cpfcnpj", func(fl validator.FieldLevel) bool {
		n := len(Digits(fl.Field().String()))
		return n == 11 || n == 14
	})
	_ = v.RegisterValidation("digitsn", func(fl validator.FieldLevel) bool {
		want, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return len(Digits(fl.Field().String())) == want
	})

	return &Validator{v: v}
}

// Struct validates s and returns a *ValidationError keyed by json field name.
func (v *Validator) Struct(s any) error {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}
	fields, ok := validate.Fields(err)
	if !ok {
		return err
	}
	return &ValidationError{Fields: fields}
}

// Digits drops every non-digit rune from s.
func Digits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}
