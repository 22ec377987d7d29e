package views

import (
	"testing"

	"github.com/Skotchmaster/storefront/services/cart/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBRL(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{0, "R$ 0,00"},
		{5, "R$ 0,05"},
		{1990, "R$ 19,90"},
		{123456, "R$ 1.234,56"},
		{100000000, "R$ 1.000.000,00"},
		{-2550, "-R$ 25,50"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, BRL(tc.cents), "cents=%d", tc.cents)
	}
}

func item(price int64, qty int) models.CartItem {
	return models.CartItem{
		ID:       uuid.New(),
		Quantity: qty,
		ProductVariant: models.ProductVariant{
			ID:           uuid.New(),
			Name:         "Preto",
			PriceInCents: price,
			Product:      models.Product{Name: "Camiseta"},
		},
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize([]models.CartItem{item(1990, 2), item(500, 3)})

	assert.EqualValues(t, 1990*2+500*3, s.SubtotalInCents)
	assert.EqualValues(t, 0, s.ShippingInCents)
	assert.Equal(t, s.SubtotalInCents, s.TotalInCents)
	assert.Equal(t, "R$ 54,80", s.Subtotal)
	assert.Equal(t, "R$ 0,00", s.Shipping)
	assert.Equal(t, s.Subtotal, s.Total)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	assert.Zero(t, s.TotalInCents)
	assert.Equal(t, "R$ 0,00", s.Total)
}

func TestFormatAddress(t *testing.T) {
	comp := "Apto 12"
	a := models.ShippingAddress{
		RecipientName: "Maria Silva",
		Street:        "Rua das Flores",
		Number:        "42",
		Complement:    &comp,
		Neighborhood:  "Centro",
		City:          "Sao Paulo",
		State:         "sp",
		ZipCode:       "01234567",
	}

	got := FormatAddress(a)
	assert.Equal(t, Address{
		Name:     "Maria Silva",
		Address:  "Rua das Flores, 42, Apto 12",
		Location: "Centro, Sao Paulo/SP",
		Zip:      "CEP: 01234-567",
	}, got)

	blank := " "
	a.Complement = &blank
	assert.Equal(t, "Rua das Flores, 42", FormatAddress(a).Address)
	a.Complement = nil
	assert.Equal(t, "Rua das Flores, 42", FormatAddress(a).Address)
}

func TestCartOf(t *testing.T) {
	empty := CartOf(nil)
	assert.Nil(t, empty.ID)
	assert.NotNil(t, empty.Items)
	assert.Empty(t, empty.Items)
	assert.Zero(t, empty.Summary.TotalInCents)

	addrID := uuid.New()
	cart := &models.Cart{
		ID:                uuid.New(),
		ShippingAddressID: &addrID,
		ShippingAddress:   &models.ShippingAddress{ID: addrID, Street: "Rua A", Number: "1", Neighborhood: "B", City: "C", State: "RJ", ZipCode: "20000000"},
		Items:             []models.CartItem{item(1000, 3)},
	}

	v := CartOf(cart)
	require.NotNil(t, v.ID)
	assert.Equal(t, cart.ID, *v.ID)
	require.Len(t, v.Items, 1)
	assert.Equal(t, "Camiseta", v.Items[0].ProductName)
	assert.EqualValues(t, 3000, v.Items[0].LineTotalInCents)
	assert.Equal(t, "R$ 30,00", v.Items[0].LineTotal)
	assert.Equal(t, "R$ 10,00", v.Items[0].UnitPrice)
	assert.EqualValues(t, 3000, v.Summary.TotalInCents)
	require.NotNil(t, v.ShippingAddress)
	assert.Equal(t, "CEP: 20000-000", v.ShippingAddress.Zip)
}
