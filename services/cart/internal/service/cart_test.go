package service

import (
	"context"
	"testing"

	"github.com/Skotchmaster/storefront/services/cart/internal/models"
	"github.com/Skotchmaster/storefront/services/cart/internal/repo"
	"github.com/Skotchmaster/storefront/services/cart/internal/testdb"
	"github.com/Skotchmaster/storefront/services/cart/internal/transport"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newService(t *testing.T) (*CartService, *gorm.DB) {
	gdb := testdb.Open(t)
	return NewCartService(&repo.GormRepo{DB: gdb}), gdb
}

func TestAnonymousCallerRejected(t *testing.T) {
	s, _ := newService(t)
	ctx := context.Background()

	_, err := s.GetCart(ctx, uuid.Nil)
	assert.ErrorIs(t, err, ErrUnauthorized)
	_, err = s.AddItem(ctx, uuid.Nil, uuid.New(), 1)
	assert.ErrorIs(t, err, ErrUnauthorized)
	_, err = s.FinalizeOrder(ctx, uuid.Nil)
	assert.ErrorIs(t, err, ErrUnauthorized)
	_, err = s.CreateShippingAddress(ctx, uuid.Nil, validAddress())
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.ErrorIs(t, s.RemoveItem(ctx, uuid.Nil, uuid.New()), ErrUnauthorized)
}

func TestAddItem_CreatesCartThenAccumulates(t *testing.T) {
	s, gdb := newService(t)
	ctx := context.Background()
	u := testdb.User(t, gdb)
	v := testdb.Variant(t, gdb, 1990)

	view, err := s.AddItem(ctx, u.ID, v.ID, 2)
	require.NoError(t, err)
	require.NotNil(t, view.ID)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 2, view.Items[0].Quantity)

	view, err = s.AddItem(ctx, u.ID, v.ID, 3)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 5, view.Items[0].Quantity)

	var carts, items int64
	require.NoError(t, gdb.Model(&models.Cart{}).Where("user_id = ?", u.ID).Count(&carts).Error)
	require.NoError(t, gdb.Model(&models.CartItem{}).Count(&items).Error)
	assert.EqualValues(t, 1, carts)
	assert.EqualValues(t, 1, items)

	assert.EqualValues(t, 5*1990, view.Summary.SubtotalInCents)
	assert.Equal(t, view.Summary.SubtotalInCents, view.Summary.TotalInCents)
}

func TestAddItem_Validation(t *testing.T) {
	s, gdb := newService(t)
	ctx := context.Background()
	u := testdb.User(t, gdb)
	v := testdb.Variant(t, gdb, 100)

	for _, q := range []int{0, -1} {
		_, err := s.AddItem(ctx, u.ID, v.ID, q)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "quantity")
	}

	_, err := s.AddItem(ctx, u.ID, uuid.New(), 1)
	assert.ErrorIs(t, err, ErrNotFound)

	var carts int64
	require.NoError(t, gdb.Model(&models.Cart{}).Count(&carts).Error)
	assert.Zero(t, carts)
}

func TestGetCart_EmptyWithoutCreating(t *testing.T) {
	s, gdb := newService(t)
	u := testdb.User(t, gdb)

	view, err := s.GetCart(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Nil(t, view.ID)
	assert.Empty(t, view.Items)
	assert.Equal(t, "R$ 0,00", view.Summary.Total)

	var carts int64
	require.NoError(t, gdb.Model(&models.Cart{}).Count(&carts).Error)
	assert.Zero(t, carts)
}

func TestGetOrCreateCart(t *testing.T) {
	s, gdb := newService(t)
	u := testdb.User(t, gdb)

	a, err := s.GetOrCreateCart(context.Background(), u.ID)
	require.NoError(t, err)
	b, err := s.GetOrCreateCart(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, a.ID, b.ID)
}

func TestIncreaseAndDecreaseItem(t *testing.T) {
	s, gdb := newService(t)
	ctx := context.Background()
	u := testdb.User(t, gdb)
	v := testdb.Variant(t, gdb, 1000)

	view, err := s.AddItem(ctx, u.ID, v.ID, 1)
	require.NoError(t, err)
	itemID := view.Items[0].ID

	view, err = s.IncreaseItem(ctx, u.ID, itemID)
	require.NoError(t, err)
	assert.Equal(t, 2, view.Items[0].Quantity)

	view, err = s.DecreaseItem(ctx, u.ID, itemID)
	require.NoError(t, err)
	assert.Equal(t, 1, view.Items[0].Quantity)

	view, err = s.DecreaseItem(ctx, u.ID, itemID)
	require.NoError(t, err)
	assert.Empty(t, view.Items, "decrease at quantity 1 removes the line")

	_, err = s.DecreaseItem(ctx, u.ID, itemID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.IncreaseItem(ctx, u.ID, itemID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestItemOwnership(t *testing.T) {
	s, gdb := newService(t)
	ctx := context.Background()
	owner := testdb.User(t, gdb)
	intruder := testdb.User(t, gdb)
	v := testdb.Variant(t, gdb, 1000)

	view, err := s.AddItem(ctx, owner.ID, v.ID, 2)
	require.NoError(t, err)
	itemID := view.Items[0].ID

	_, err = s.IncreaseItem(ctx, intruder.ID, itemID)
	assert.ErrorIs(t, err, ErrUnauthorized)
	_, err = s.DecreaseItem(ctx, intruder.ID, itemID)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.ErrorIs(t, s.RemoveItem(ctx, intruder.ID, itemID), ErrUnauthorized)

	view, err = s.GetCart(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, view.Items[0].Quantity)

	require.NoError(t, s.RemoveItem(ctx, owner.ID, itemID))
	assert.ErrorIs(t, s.RemoveItem(ctx, owner.ID, itemID), ErrNotFound)
}

func TestCreateShippingAddress_NormalisesDigits(t *testing.T) {
	s, gdb := newService(t)
	ctx := context.Background()
	u := testdb.User(t, gdb)

	req := validAddress()
	req.Document = "12.345.678/0001-95"
	req.State = "sp"
	blank := "  "
	req.Complement = &blank

	addr, err := s.CreateShippingAddress(ctx, u.ID, req)
	require.NoError(t, err)
	assert.Equal(t, "12345678000195", addr.Document)
	assert.Equal(t, "11987654321", addr.Phone)
	assert.Equal(t, "01234567", addr.ZipCode)
	assert.Equal(t, "SP", addr.State)
	assert.Nil(t, addr.Complement)

	list, err := s.ListShippingAddresses(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, addr.ID, list[0].ID)
}

func TestCreateShippingAddress_RejectedBeforeStore(t *testing.T) {
	s, gdb := newService(t)
	u := testdb.User(t, gdb)

	req := validAddress()
	req.Document = "1234567890"

	_, err := s.CreateShippingAddress(context.Background(), u.ID, req)
	assert.ErrorIs(t, err, ErrValidation)

	var n int64
	require.NoError(t, gdb.Model(&models.ShippingAddress{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestCreateShippingAddress_ValidatesTrimmedValues(t *testing.T) {
	s, gdb := newService(t)
	ctx := context.Background()
	u := testdb.User(t, gdb)

	cases := []struct {
		field  string
		mutate func(r *transport.CreateShippingAddressRequest)
	}{
		{"fullName", func(r *transport.CreateShippingAddressRequest) { r.FullName = " A" }},
		{"address", func(r *transport.CreateShippingAddressRequest) { r.Address = "  Rua" }},
		{"city", func(r *transport.CreateShippingAddressRequest) { r.City = "  " }},
		{"neighborhood", func(r *transport.CreateShippingAddressRequest) { r.Neighborhood = " C  " }},
		{"email", func(r *transport.CreateShippingAddressRequest) { r.Email = "   " }},
	}
	for _, tc := range cases {
		t.Run(tc.field, func(t *testing.T) {
			req := validAddress()
			tc.mutate(&req)

			_, err := s.CreateShippingAddress(ctx, u.ID, req)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, tc.field)
		})
	}

	var n int64
	require.NoError(t, gdb.Model(&models.ShippingAddress{}).Count(&n).Error)
	assert.Zero(t, n)

	req := validAddress()
	req.FullName = "  Maria Silva "
	req.City = " São Paulo"
	req.State = " sp "
	addr, err := s.CreateShippingAddress(ctx, u.ID, req)
	require.NoError(t, err)
	assert.Equal(t, "Maria Silva", addr.RecipientName)
	assert.Equal(t, "São Paulo", addr.City)
	assert.Equal(t, "SP", addr.State)
}

func TestLinkShippingAddress(t *testing.T) {
	s, gdb := newService(t)
	ctx := context.Background()
	u := testdb.User(t, gdb)
	other := testdb.User(t, gdb)
	v := testdb.Variant(t, gdb, 1000)
	mine := testdb.Address(t, gdb, u.ID)
	theirs := testdb.Address(t, gdb, other.ID)

	assert.ErrorIs(t, s.LinkShippingAddress(ctx, u.ID, mine.ID), ErrNotFound, "no cart")

	_, err := s.AddItem(ctx, u.ID, v.ID, 1)
	require.NoError(t, err)

	assert.ErrorIs(t, s.LinkShippingAddress(ctx, u.ID, uuid.New()), ErrNotFound)
	assert.ErrorIs(t, s.LinkShippingAddress(ctx, u.ID, theirs.ID), ErrUnauthorized)
	assert.ErrorIs(t, s.LinkShippingAddress(ctx, u.ID, uuid.Nil), ErrValidation)
	require.NoError(t, s.LinkShippingAddress(ctx, u.ID, mine.ID))

	view, err := s.GetCart(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, view.ShippingAddress)
	assert.Equal(t, "CEP: 01234-567", view.ShippingAddress.Zip)
}

func TestFinalizeOrder_InvalidStates(t *testing.T) {
	s, gdb := newService(t)
	ctx := context.Background()
	u := testdb.User(t, gdb)
	v := testdb.Variant(t, gdb, 1000)

	_, err := s.FinalizeOrder(ctx, u.ID)
	assert.ErrorIs(t, err, ErrInvalidState, "empty cart")

	_, err = s.AddItem(ctx, u.ID, v.ID, 1)
	require.NoError(t, err)

	_, err = s.FinalizeOrder(ctx, u.ID)
	assert.ErrorIs(t, err, ErrInvalidState, "missing address")
	assert.ErrorContains(t, err, "no shipping address")
}

func TestFinalizeOrder_Scenario(t *testing.T) {
	s, gdb := newService(t)
	ctx := context.Background()
	u := testdb.User(t, gdb)
	v1 := testdb.Variant(t, gdb, 1990)
	v2 := testdb.Variant(t, gdb, 4500)
	addr := testdb.Address(t, gdb, u.ID)

	_, err := s.AddItem(ctx, u.ID, v1.ID, 2)
	require.NoError(t, err)
	_, err = s.AddItem(ctx, u.ID, v2.ID, 1)
	require.NoError(t, err)
	require.NoError(t, s.LinkShippingAddress(ctx, u.ID, addr.ID))

	order, err := s.FinalizeOrder(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, addr.ID, order.ShippingAddressID)
	assert.EqualValues(t, 2*1990+4500, order.TotalPriceInCents)

	got, err := s.GetOrder(ctx, u.ID, order.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 2)
	qty := map[uuid.UUID]int{}
	for _, it := range got.Items {
		qty[it.ProductVariantID] = it.Quantity
	}
	assert.Equal(t, map[uuid.UUID]int{v1.ID: 2, v2.ID: 1}, qty)

	_, err = s.FinalizeOrder(ctx, u.ID)
	assert.ErrorIs(t, err, ErrInvalidState)

	var orders int64
	require.NoError(t, gdb.Model(&models.Order{}).Where("user_id = ?", u.ID).Count(&orders).Error)
	assert.EqualValues(t, 1, orders)

	view, err := s.GetCart(ctx, u.ID)
	require.NoError(t, err)
	assert.Nil(t, view.ID)

	view, err = s.AddItem(ctx, u.ID, v1.ID, 1)
	require.NoError(t, err)
	require.NotNil(t, view.ID)
	assert.NotEqual(t, order.CartID, *view.ID, "a fresh cart follows a finalized one")
}

func TestGetOrder_Ownership(t *testing.T) {
	s, gdb := newService(t)
	ctx := context.Background()
	u := testdb.User(t, gdb)
	other := testdb.User(t, gdb)
	v := testdb.Variant(t, gdb, 1000)
	addr := testdb.Address(t, gdb, u.ID)

	_, err := s.AddItem(ctx, u.ID, v.ID, 1)
	require.NoError(t, err)
	require.NoError(t, s.LinkShippingAddress(ctx, u.ID, addr.ID))
	order, err := s.FinalizeOrder(ctx, u.ID)
	require.NoError(t, err)

	_, err = s.GetOrder(ctx, other.ID, order.ID)
	assert.ErrorIs(t, err, ErrUnauthorized)
	_, err = s.GetOrder(ctx, u.ID, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetVariant(t *testing.T) {
	s, gdb := newService(t)
	v := testdb.Variant(t, gdb, 1000)

	got, err := s.GetVariant(context.Background(), v.Slug)
	require.NoError(t, err)
	assert.Equal(t, v.ID, got.ID)

	_, err = s.GetVariant(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.GetVariant(context.Background(), " ")
	assert.ErrorIs(t, err, ErrValidation)
}
