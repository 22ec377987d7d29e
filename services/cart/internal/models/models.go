package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	OrderStatusPending = "pending"
)

// User is owned by the auth service. The cart service only references it.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"        json:"id"`
	Name         string    `gorm:"not null"                    json:"name"`
	Email        string    `gorm:"uniqueIndex;not null"        json:"email"`
	PasswordHash string    `gorm:"not null"                    json:"-"`
	CreatedAt    time.Time `                                   json:"created_at"`
}

type Product struct {
	ID          uuid.UUID        `gorm:"type:uuid;primaryKey"   json:"id"`
	Name        string           `gorm:"not null"               json:"name"`
	Slug        string           `gorm:"uniqueIndex;not null"   json:"slug"`
	Description string           `gorm:"not null;default:''"    json:"description"`
	Variants    []ProductVariant `gorm:"foreignKey:ProductID"   json:"variants,omitempty"`
}

type ProductVariant struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"                  json:"id"`
	ProductID    uuid.UUID `gorm:"type:uuid;not null;index"              json:"product_id"`
	Product      Product   `gorm:"foreignKey:ProductID"                  json:"product"`
	Name         string    `gorm:"not null"                              json:"name"`
	Slug         string    `gorm:"uniqueIndex;not null"                  json:"slug"`
	Color        string    `gorm:"not null;default:''"                   json:"color"`
	ImageURL     string    `gorm:"not null;default:''"                   json:"image_url"`
	PriceInCents int64     `gorm:"not null;check:price_in_cents >= 0"    json:"price_in_cents"`
}

type ShippingAddress struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"        json:"id"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index"    json:"user_id"`
	RecipientName string    `gorm:"not null"                    json:"recipient_name"`
	Email         string    `gorm:"not null"                    json:"email"`
	Document      string    `gorm:"not null"                    json:"document"`
	Phone         string    `gorm:"not null"                    json:"phone"`
	ZipCode       string    `gorm:"not null"                    json:"zip_code"`
	Street        string    `gorm:"not null"                    json:"street"`
	Number        string    `gorm:"not null"                    json:"number"`
	Complement    *string   `                                   json:"complement,omitempty"`
	Neighborhood  string    `gorm:"not null"                    json:"neighborhood"`
	City          string    `gorm:"not null"                    json:"city"`
	State         string    `gorm:"size:2;not null"             json:"state"`
	CreatedAt     time.Time `                                   json:"created_at"`
}

type Cart struct {
	ID                uuid.UUID        `gorm:"type:uuid;primaryKey"               json:"id"`
	UserID            uuid.UUID        `gorm:"type:uuid;uniqueIndex;not null"     json:"user_id"`
	ShippingAddressID *uuid.UUID       `gorm:"type:uuid"                          json:"shipping_address_id"`
	ShippingAddress   *ShippingAddress `gorm:"foreignKey:ShippingAddressID"       json:"shipping_address,omitempty"`
	Items             []CartItem       `gorm:"foreignKey:CartID"                  json:"items"`
	CreatedAt         time.Time        `                                          json:"created_at"`
}

type CartItem struct {
	ID               uuid.UUID      `gorm:"type:uuid;primaryKey"                                json:"id"`
	CartID           uuid.UUID      `gorm:"type:uuid;uniqueIndex:idx_cart_variant;not null"     json:"cart_id"`
	ProductVariantID uuid.UUID      `gorm:"type:uuid;uniqueIndex:idx_cart_variant;not null"     json:"product_variant_id"`
	ProductVariant   ProductVariant `gorm:"foreignKey:ProductVariantID"                         json:"product_variant"`
	Quantity         int            `gorm:"not null;check:quantity > 0"                         json:"quantity"`
	CreatedAt        time.Time      `                                                           json:"created_at"`
}

type Order struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"            json:"id"`
	UserID            uuid.UUID       `gorm:"type:uuid;not null;index"        json:"user_id"`
	ShippingAddressID uuid.UUID       `gorm:"type:uuid;not null"              json:"shipping_address_id"`
	ShippingAddress   ShippingAddress `gorm:"foreignKey:ShippingAddressID"    json:"shipping_address"`
	CartID            uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null"  json:"cart_id"`
	Status            string          `gorm:"not null;default:pending"        json:"status"`
	TotalPriceInCents int64           `gorm:"not null"                        json:"total_price_in_cents"`
	Items             []OrderItem     `gorm:"foreignKey:OrderID"              json:"items"`
	CreatedAt         time.Time       `                                       json:"created_at"`
}

type OrderItem struct {
	ID               uuid.UUID      `gorm:"type:uuid;primaryKey"            json:"id"`
	OrderID          uuid.UUID      `gorm:"type:uuid;not null;index"        json:"order_id"`
	ProductVariantID uuid.UUID      `gorm:"type:uuid;not null"              json:"product_variant_id"`
	ProductVariant   ProductVariant `gorm:"foreignKey:ProductVariantID"     json:"product_variant"`
	Quantity         int            `gorm:"not null;check:quantity > 0"     json:"quantity"`
	PriceInCents     int64          `gorm:"not null"                        json:"price_in_cents"`
}

// OutboxEvent is a domain event waiting to be relayed to kafka.
type OutboxEvent struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Topic       string     `gorm:"not null"`
	Key         string     `gorm:"not null"`
	Type        string     `gorm:"not null"`
	Payload     string     `gorm:"type:text;not null"`
	CreatedAt   time.Time  `gorm:"index"`
	PublishedAt *time.Time
}

func (User) TableName() string            { return "users" }
func (Product) TableName() string         { return "products" }
func (ProductVariant) TableName() string  { return "product_variants" }
func (ShippingAddress) TableName() string { return "shipping_addresses" }
func (Cart) TableName() string            { return "carts" }
func (CartItem) TableName() string        { return "cart_items" }
func (Order) TableName() string           { return "orders" }
func (OrderItem) TableName() string       { return "order_items" }
func (OutboxEvent) TableName() string     { return "outbox_events" }

func newID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

func (u *User) BeforeCreate(tx *gorm.DB) error            { newID(&u.ID); return nil }
func (p *Product) BeforeCreate(tx *gorm.DB) error         { newID(&p.ID); return nil }
func (v *ProductVariant) BeforeCreate(tx *gorm.DB) error  { newID(&v.ID); return nil }
func (a *ShippingAddress) BeforeCreate(tx *gorm.DB) error { newID(&a.ID); return nil }
func (c *Cart) BeforeCreate(tx *gorm.DB) error            { newID(&c.ID); return nil }
func (i *CartItem) BeforeCreate(tx *gorm.DB) error        { newID(&i.ID); return nil }
func (o *Order) BeforeCreate(tx *gorm.DB) error           { newID(&o.ID); return nil }
func (i *OrderItem) BeforeCreate(tx *gorm.DB) error       { newID(&i.ID); return nil }
func (e *OutboxEvent) BeforeCreate(tx *gorm.DB) error     { newID(&e.ID); return nil }

// All lists every model in dependency order, for AutoMigrate.
func All() []any {
	return []any{
		&User{},
		&Product{},
		&ProductVariant{},
		&ShippingAddress{},
		&Cart{},
		&CartItem{},
		&Order{},
		&OrderItem{},
		&OutboxEvent{},
	}
}
