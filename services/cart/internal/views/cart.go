package views

import (
	"github.com/Skotchmaster/storefront/services/cart/internal/models"
	"github.com/google/uuid"
)

type CartItem struct {
	ID               uuid.UUID `json:"id"`
	ProductVariantID uuid.UUID `json:"product_variant_id"`
	ProductName      string    `json:"product_name"`
	VariantName      string    `json:"variant_name"`
	Slug             string    `json:"slug"`
	Color            string    `json:"color"`
	ImageURL         string    `json:"image_url"`
	Quantity         int       `json:"quantity"`
	UnitPriceInCents int64     `json:"unit_price_in_cents"`
	LineTotalInCents int64     `json:"line_total_in_cents"`
	UnitPrice        string    `json:"unit_price"`
	LineTotal        string    `json:"line_total"`
}

type Cart struct {
	ID                *uuid.UUID `json:"id"`
	Items             []CartItem `json:"items"`
	ShippingAddressID *uuid.UUID `json:"shipping_address_id"`
	ShippingAddress   *Address   `json:"shipping_address,omitempty"`
	Summary           Summary    `json:"summary"`
}

// CartOf projects a loaded cart. A nil cart yields the empty view.
func CartOf(cart *models.Cart) Cart {
	if cart == nil {
		return Cart{Items: []CartItem{}, Summary: Summarize(nil)}
	}

	items := make([]CartItem, 0, len(cart.Items))
	for _, it := range cart.Items {
		pv := it.ProductVariant
		line := pv.PriceInCents * int64(it.Quantity)
		items = append(items, CartItem{
			ID:               it.ID,
			ProductVariantID: it.ProductVariantID,
			ProductName:      pv.Product.Name,
			VariantName:      pv.Name,
			Slug:             pv.Slug,
			Color:            pv.Color,
			ImageURL:         pv.ImageURL,
			Quantity:         it.Quantity,
			UnitPriceInCents: pv.PriceInCents,
			LineTotalInCents: line,
			UnitPrice:        BRL(pv.PriceInCents),
			LineTotal:        BRL(line),
		})
	}

	id := cart.ID
	view := Cart{
		ID:                &id,
		Items:             items,
		ShippingAddressID: cart.ShippingAddressID,
		Summary:           Summarize(cart.Items),
	}
	if cart.ShippingAddress != nil {
		addr := FormatAddress(*cart.ShippingAddress)
		view.ShippingAddress = &addr
	}
	return view
}
