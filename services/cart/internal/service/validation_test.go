package service

import (
	"errors"
	"testing"

	"github.com/Skotchmaster/storefront/services/cart/internal/transport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAddress() transport.CreateShippingAddressRequest {
	return transport.CreateShippingAddressRequest{
		Email:        "maria@example.com",
		FullName:     "Maria Silva",
		Document:     "123.456.789-01",
		Phone:        "(11) 98765-4321",
		ZipCode:      "01234-567",
		Address:      "Rua das Flores",
		Number:       "42",
		Neighborhood: "Centro",
		City:         "Sao Paulo",
		State:        "SP",
	}
}

func TestValidator_AcceptsValidAddress(t *testing.T) {
	assert.NoError(t, NewValidator().Struct(validAddress()))
}

func TestValidator_Document(t *testing.T) {
	v := NewValidator()
	cases := []struct {
		name     string
		document string
		ok       bool
	}{
		{"cpf plain", "12345678901", true},
		{"cpf formatted", "123.456.789-01", true},
		{"cnpj formatted", "12.345.678/0001-95", true},
		{"cnpj plain", "12345678000195", true},
		{"ten digits", "1234567890", false},
		{"twelve digits", "123456789012", false},
		{"empty", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validAddress()
			req.Document = tc.document
			err := v.Struct(req)
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrValidation))
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, "document")
		})
	}
}

func TestValidator_FieldRules(t *testing.T) {
	v := NewValidator()
	cases := []struct {
		field  string
		mutate func(r *transport.CreateShippingAddressRequest)
	}{
		{"email", func(r *transport.CreateShippingAddressRequest) { r.Email = "not-an-email" }},
		{"email", func(r *transport.CreateShippingAddressRequest) { r.Email = "" }},
		{"fullName", func(r *transport.CreateShippingAddressRequest) { r.FullName = "M" }},
		{"phone", func(r *transport.CreateShippingAddressRequest) { r.Phone = "1198765432" }},
		{"zipCode", func(r *transport.CreateShippingAddressRequest) { r.ZipCode = "0123-456" }},
		{"address", func(r *transport.CreateShippingAddressRequest) { r.Address = "Rua" }},
		{"number", func(r *transport.CreateShippingAddressRequest) { r.Number = "42A" }},
		{"number", func(r *transport.CreateShippingAddressRequest) { r.Number = "" }},
		{"neighborhood", func(r *transport.CreateShippingAddressRequest) { r.Neighborhood = "C" }},
		{"city", func(r *transport.CreateShippingAddressRequest) { r.City = "" }},
		{"state", func(r *transport.CreateShippingAddressRequest) { r.State = "SPX" }},
	}

	for _, tc := range cases {
		t.Run(tc.field, func(t *testing.T) {
			req := validAddress()
			tc.mutate(&req)

			var verr *ValidationError
			require.ErrorAs(t, v.Struct(req), &verr)
			assert.Len(t, verr.Fields, 1)
			assert.NotEmpty(t, verr.Fields[tc.field])
		})
	}
}

func TestValidator_ComplementOptional(t *testing.T) {
	req := validAddress()
	c := "Apto 12"
	req.Complement = &c
	assert.NoError(t, NewValidator().Struct(req))
}

func TestDigits(t *testing.T) {
	assert.Equal(t, "12345678000195", Digits("12.345.678/0001-95"))
	assert.Equal(t, "", Digits("abc"))
	assert.Equal(t, "1", Digits("١1"))
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{"phone": "must have 11 digits", "city": "is required"}}
	assert.Equal(t, "validation: city: is required; phone: must have 11 digits", err.Error())
	assert.ErrorIs(t, err, ErrValidation)
	assert.NotErrorIs(t, err, ErrNotFound)
}
