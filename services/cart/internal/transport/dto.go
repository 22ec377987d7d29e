package transport

import "github.com/google/uuid"

type AddItemRequest struct {
	ProductVariantID uuid.UUID `json:"product_variant_id"`
	Quantity         int       `json:"quantity"`
}

type LinkShippingAddressRequest struct {
	ShippingAddressID uuid.UUID `json:"shipping_address_id"`
}

// CreateShippingAddressRequest mirrors the checkout address form.
type CreateShippingAddressRequest struct {
	Email        string  `json:"email"        validate:"required,email"`
	FullName     string  `json:"fullName"     validate:"required,min=2"`
	Document     string  `json:"document"     validate:"cpfcnpj"`
	Phone        string  `json:"phone"        validate:"digitsn=11"`
	ZipCode      string  `json:"zipCode"      validate:"digitsn=8"`
	Address      string  `json:"address"      validate:"required,min=5"`
	Number       string  `json:"number"       validate:"required,number"`
	Complement   *string `json:"complement"`
	Neighborhood string  `json:"neighborhood" validate:"required,min=2"`
	City         string  `json:"city"         validate:"required,min=2"`
	State        string  `json:"state"        validate:"len=2"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type FinalizeOrderResponse struct {
	OrderID uuid.UUID `json:"order_id"`
}

type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}
