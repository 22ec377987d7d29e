package repo

import (
	"context"
	"time"

	"github.com/Skotchmaster/storefront/services/cart/internal/models"
	"github.com/google/uuid"
)

// PendingEvents returns up to limit unpublished outbox rows, oldest first.
func (r *GormRepo) PendingEvents(ctx context.Context, limit int) ([]models.OutboxEvent, error) {
	var evs []models.OutboxEvent
	if err := r.DB.WithContext(ctx).
		Where("published_at IS NULL").
		Order("created_at ASC").
		Limit(limit).
		Find(&evs).Error; err != nil {
		return nil, err
	}
	return evs, nil
}

func (r *GormRepo) MarkPublished(ctx context.Context, ids []uuid.UUID, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	return r.DB.WithContext(ctx).Model(&models.OutboxEvent{}).
		Where("id IN ?", ids).
		Update("published_at", at).Error
}
