package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Skotchmaster/storefront/services/cart/internal/models"
	"github.com/Skotchmaster/storefront/services/cart/internal/repo"
	"github.com/Skotchmaster/storefront/services/cart/internal/transport"
	"github.com/Skotchmaster/storefront/services/cart/internal/views"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CartService runs every cart and checkout operation for an explicit user.
// A uuid.Nil user is treated as an anonymous caller.
type CartService struct {
	Repo      *repo.GormRepo
	Validator *Validator
}

func NewCartService(r *repo.GormRepo) *CartService {
	return &CartService{Repo: r, Validator: NewValidator()}
}

func requireUser(userID uuid.UUID) error {
	if userID == uuid.Nil {
		return fmt.Errorf("no session: %w", ErrUnauthorized)
	}
	return nil
}

func (s *CartService) GetOrCreateCart(ctx context.Context, userID uuid.UUID) (*models.Cart, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	return s.Repo.GetOrCreateCart(ctx, userID)
}

// GetCart never creates a cart. Users without one get the empty view.
func (s *CartService) GetCart(ctx context.Context, userID uuid.UUID) (views.Cart, error) {
	if err := requireUser(userID); err != nil {
		return views.Cart{}, err
	}

	cart, err := s.Repo.FindCart(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return views.CartOf(nil), nil
	}
	if err != nil {
		return views.Cart{}, err
	}
	return views.CartOf(cart), nil
}

func (s *CartService) AddItem(ctx context.Context, userID, variantID uuid.UUID, quantity int) (views.Cart, error) {
	if err := requireUser(userID); err != nil {
		return views.Cart{}, err
	}
	if variantID == uuid.Nil {
		return views.Cart{}, fieldError("product_variant_id", "is required")
	}
	if quantity < 1 {
		return views.Cart{}, fieldError("quantity", "must be at least 1")
	}

	if _, err := s.Repo.AddItem(ctx, userID, variantID, quantity); err != nil {
		return views.Cart{}, translate(err, "product variant")
	}
	return s.GetCart(ctx, userID)
}

func (s *CartService) IncreaseItem(ctx context.Context, userID, itemID uuid.UUID) (views.Cart, error) {
	if err := requireUser(userID); err != nil {
		return views.Cart{}, err
	}

	if _, err := s.Repo.IncreaseItem(ctx, userID, itemID); err != nil {
		return views.Cart{}, translate(err, "cart item")
	}
	return s.GetCart(ctx, userID)
}

// DecreaseItem removes one unit. The line disappears when its last unit goes.
func (s *CartService) DecreaseItem(ctx context.Context, userID, itemID uuid.UUID) (views.Cart, error) {
	if err := requireUser(userID); err != nil {
		return views.Cart{}, err
	}

	if _, err := s.Repo.DecreaseItem(ctx, userID, itemID); err != nil {
		return views.Cart{}, translate(err, "cart item")
	}
	return s.GetCart(ctx, userID)
}

func (s *CartService) RemoveItem(ctx context.Context, userID, itemID uuid.UUID) error {
	if err := requireUser(userID); err != nil {
		return err
	}
	return translate(s.Repo.RemoveItem(ctx, userID, itemID), "cart item")
}

func (s *CartService) LinkShippingAddress(ctx context.Context, userID, addressID uuid.UUID) error {
	if err := requireUser(userID); err != nil {
		return err
	}
	if addressID == uuid.Nil {
		return fieldError("shipping_address_id", "is required")
	}
	return translate(s.Repo.LinkShippingAddress(ctx, userID, addressID), "cart or shipping address")
}

// trimAddress strips surrounding whitespace so validation sees what gets stored.
func trimAddress(req transport.CreateShippingAddressRequest) transport.CreateShippingAddressRequest {
	req.Email = strings.TrimSpace(req.Email)
	req.FullName = strings.TrimSpace(req.FullName)
	req.Document = strings.TrimSpace(req.Document)
	req.Phone = strings.TrimSpace(req.Phone)
	req.ZipCode = strings.TrimSpace(req.ZipCode)
	req.Address = strings.TrimSpace(req.Address)
	req.Number = strings.TrimSpace(req.Number)
	req.Neighborhood = strings.TrimSpace(req.Neighborhood)
	req.City = strings.TrimSpace(req.City)
	req.State = strings.ToUpper(strings.TrimSpace(req.State))
	if req.Complement != nil {
		c := strings.TrimSpace(*req.Complement)
		if c == "" {
			req.Complement = nil
		} else {
			req.Complement = &c
		}
	}
	return req
}

func (s *CartService) CreateShippingAddress(ctx context.Context, userID uuid.UUID, req transport.CreateShippingAddressRequest) (*models.ShippingAddress, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	req = trimAddress(req)
	if err := s.Validator.Struct(req); err != nil {
		return nil, err
	}

	addr := models.ShippingAddress{
		UserID:        userID,
		RecipientName: req.FullName,
		Email:         req.Email,
		Document:      Digits(req.Document),
		Phone:         Digits(req.Phone),
		ZipCode:       Digits(req.ZipCode),
		Street:        req.Address,
		Number:        req.Number,
		Neighborhood:  req.Neighborhood,
		City:          req.City,
		State:         req.State,
		Complement:    req.Complement,
	}

	if err := s.Repo.CreateShippingAddress(ctx, &addr); err != nil {
		return nil, err
	}
	return &addr, nil
}

func (s *CartService) ListShippingAddresses(ctx context.Context, userID uuid.UUID) ([]models.ShippingAddress, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	return s.Repo.ListShippingAddresses(ctx, userID)
}

func (s *CartService) GetVariant(ctx context.Context, slug string) (*models.ProductVariant, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, fieldError("slug", "is required")
	}

	v, err := s.Repo.GetVariantBySlug(ctx, slug)
	if err != nil {
		return nil, translate(err, "product variant")
	}
	return v, nil
}
