// Package testdb builds throwaway in-memory stores and fixtures for cart tests.
package testdb

import (
	"context"
	"fmt"
	"testing"

	"github.com/Skotchmaster/storefront/pkg/db"
	"github.com/Skotchmaster/storefront/services/cart/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func Open(t *testing.T) *gorm.DB {
	t.Helper()

	ctx := context.Background()
	gdb, err := db.Open(ctx, db.DriverSQLite, ":memory:")
	require.NoError(t, err)
	require.NoError(t, db.Migrate(ctx, gdb, db.DriverSQLite, "", models.All()...))

	t.Cleanup(func() { _ = db.Close(gdb) })
	return gdb
}

func User(t *testing.T, gdb *gorm.DB) models.User {
	t.Helper()

	id := uuid.New()
	u := models.User{
		ID:           id,
		Name:         "Test User",
		Email:        fmt.Sprintf("%s@example.com", id),
		PasswordHash: "x",
	}
	require.NoError(t, gdb.Create(&u).Error)
	return u
}

// Variant creates a product with one variant priced at priceInCents.
func Variant(t *testing.T, gdb *gorm.DB, priceInCents int64) models.ProductVariant {
	t.Helper()

	suffix := uuid.NewString()[:8]
	p := models.Product{Name: "Tenis " + suffix, Slug: "tenis-" + suffix}
	require.NoError(t, gdb.Create(&p).Error)

	v := models.ProductVariant{
		ProductID:    p.ID,
		Name:         "Azul",
		Slug:         "tenis-azul-" + suffix,
		Color:        "#0000FF",
		PriceInCents: priceInCents,
	}
	require.NoError(t, gdb.Omit("Product").Create(&v).Error)
	v.Product = p
	return v
}

func Address(t *testing.T, gdb *gorm.DB, userID uuid.UUID) models.ShippingAddress {
	t.Helper()

	a := models.ShippingAddress{
		UserID:        userID,
		RecipientName: "Maria Silva",
		Email:         "maria@example.com",
		Document:      "12345678901",
		Phone:         "11987654321",
		ZipCode:       "01234567",
		Street:        "Rua das Flores",
		Number:        "42",
		Neighborhood:  "Centro",
		City:          "Sao Paulo",
		State:         "SP",
	}
	require.NoError(t, gdb.Create(&a).Error)
	return a
}
