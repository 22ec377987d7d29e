package views

import (
	"strings"

	"github.com/Skotchmaster/storefront/services/cart/internal/models"
)

type Address struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	Location string `json:"location"`
	Zip      string `json:"zip"`
}

func FormatAddress(a models.ShippingAddress) Address {
	line := a.Street + ", " + a.Number
	if a.Complement != nil && strings.TrimSpace(*a.Complement) != "" {
		line += ", " + strings.TrimSpace(*a.Complement)
	}

	return Address{
		Name:     a.RecipientName,
		Address:  line,
		Location: a.Neighborhood + ", " + a.City + "/" + strings.ToUpper(a.State),
		Zip:      "CEP: " + formatZip(a.ZipCode),
	}
}

func formatZip(zip string) string {
	if len(zip) != 8 {
		return zip
	}
	return zip[:5] + "-" + zip[5:]
}
