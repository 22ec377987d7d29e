package repo

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Skotchmaster/storefront/services/cart/internal/models"
	"gorm.io/gorm"
)

var (
	ErrNotOwner          = errors.New("resource belongs to another user")
	ErrCartEmpty         = errors.New("cart is empty")
	ErrNoShippingAddress = errors.New("no shipping address")
)

type GormRepo struct {
	DB *gorm.DB
}

// enqueue writes an outbox row on tx so the event commits with the change it describes.
func enqueue(tx *gorm.DB, topic, eventType, key string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", eventType, err)
	}
	ev := models.OutboxEvent{
		Topic:   topic,
		Key:     key,
		Type:    eventType,
		Payload: string(body),
	}
	return tx.Create(&ev).Error
}
