package service

import (
	"context"
	"fmt"

	"github.com/Skotchmaster/storefront/services/cart/internal/models"
	"github.com/google/uuid"
)

// FinalizeOrder converts the user's cart into a pending order. The cart is
// consumed, so submitting twice fails with ErrInvalidState.
func (s *CartService) FinalizeOrder(ctx context.Context, userID uuid.UUID) (*models.Order, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}

	order, err := s.Repo.FinalizeOrder(ctx, userID)
	if err != nil {
		return nil, translate(err, "order")
	}
	return order, nil
}

func (s *CartService) GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*models.Order, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}

	order, err := s.Repo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, translate(err, "order")
	}
	if order.UserID != userID {
		return nil, fmt.Errorf("order belongs to another user: %w", ErrUnauthorized)
	}
	return order, nil
}
