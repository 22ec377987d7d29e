package repo

import (
	"context"

	"github.com/Skotchmaster/storefront/services/cart/internal/models"
	"github.com/google/uuid"
)

func (r *GormRepo) CreateShippingAddress(ctx context.Context, addr *models.ShippingAddress) error {
	return r.DB.WithContext(ctx).Create(addr).Error
}

func (r *GormRepo) ListShippingAddresses(ctx context.Context, userID uuid.UUID) ([]models.ShippingAddress, error) {
	addrs := []models.ShippingAddress{}
	if err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&addrs).Error; err != nil {
		return nil, err
	}
	return addrs, nil
}
