package repo

import (
	"context"

	"github.com/Skotchmaster/storefront/services/cart/internal/models"
)

func (r *GormRepo) GetVariantBySlug(ctx context.Context, slug string) (*models.ProductVariant, error) {
	var v models.ProductVariant
	if err := r.DB.WithContext(ctx).Preload("Product").Where("slug = ?", slug).First(&v).Error; err != nil {
		return nil, err
	}
	return &v, nil
}
