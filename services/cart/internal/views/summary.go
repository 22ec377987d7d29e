package views

import "github.com/Skotchmaster/storefront/services/cart/internal/models"

type Summary struct {
	SubtotalInCents int64  `json:"subtotal_in_cents"`
	ShippingInCents int64  `json:"shipping_in_cents"`
	TotalInCents    int64  `json:"total_in_cents"`
	Subtotal        string `json:"subtotal"`
	Shipping        string `json:"shipping"`
	Total           string `json:"total"`
}

// Summarize totals the cart lines. Shipping is free, so the total equals the subtotal.
func Summarize(items []models.CartItem) Summary {
	var subtotal int64
	for _, it := range items {
		subtotal += it.ProductVariant.PriceInCents * int64(it.Quantity)
	}
	var shipping int64
	total := subtotal + shipping

	return Summary{
		SubtotalInCents: subtotal,
		ShippingInCents: shipping,
		TotalInCents:    total,
		Subtotal:        BRL(subtotal),
		Shipping:        BRL(shipping),
		Total:           BRL(total),
	}
}
