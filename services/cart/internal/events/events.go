package events

import "github.com/google/uuid"

const (
	TopicCart  = "cart_events"
	TopicOrder = "order_events"
)

const (
	TypeCartItemAdded       = "cart_item_added"
	TypeCartItemDecreased   = "cart_item_decreased"
	TypeCartItemRemoved     = "cart_item_removed"
	TypeShippingAddressLink = "cart_shipping_address_linked"
	TypeOrderCreated        = "order_created"
)

type CartItemAdded struct {
	CartID           uuid.UUID `json:"cart_id"`
	CartItemID       uuid.UUID `json:"cart_item_id"`
	ProductVariantID uuid.UUID `json:"product_variant_id"`
	Added            int       `json:"added"`
	Quantity         int       `json:"quantity"`
}

type CartItemDecreased struct {
	CartID           uuid.UUID `json:"cart_id"`
	CartItemID       uuid.UUID `json:"cart_item_id"`
	ProductVariantID uuid.UUID `json:"product_variant_id"`
	Quantity         int       `json:"quantity"`
	Removed          bool      `json:"removed"`
}

type CartItemRemoved struct {
	CartID           uuid.UUID `json:"cart_id"`
	CartItemID       uuid.UUID `json:"cart_item_id"`
	ProductVariantID uuid.UUID `json:"product_variant_id"`
}

type ShippingAddressLinked struct {
	CartID            uuid.UUID `json:"cart_id"`
	ShippingAddressID uuid.UUID `json:"shipping_address_id"`
}

type OrderItem struct {
	ProductVariantID uuid.UUID `json:"product_variant_id"`
	Quantity         int       `json:"quantity"`
	PriceInCents     int64     `json:"price_in_cents"`
}

type OrderCreated struct {
	OrderID           uuid.UUID   `json:"order_id"`
	UserID            uuid.UUID   `json:"user_id"`
	CartID            uuid.UUID   `json:"cart_id"`
	ShippingAddressID uuid.UUID   `json:"shipping_address_id"`
	TotalPriceInCents int64       `json:"total_price_in_cents"`
	Items             []OrderItem `json:"items"`
}
