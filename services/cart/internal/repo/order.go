package repo

import (
	"context"
	"errors"

	"github.com/Skotchmaster/storefront/services/cart/internal/events"
	"github.com/Skotchmaster/storefront/services/cart/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FinalizeOrder turns the user's cart into an order and consumes the cart.
// Nothing is written unless every step succeeds.
func (r *GormRepo) FinalizeOrder(ctx context.Context, userID uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("user_id = ?", userID).First(&cart).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCartEmpty
		}
		if err != nil {
			return err
		}

		// item writers share-lock the cart first, so these rows stay put until commit
		var items []models.CartItem
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Preload("ProductVariant").
			Where("cart_id = ?", cart.ID).
			Order("created_at ASC").
			Find(&items).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return ErrCartEmpty
		}
		if cart.ShippingAddressID == nil {
			return ErrNoShippingAddress
		}

		order = models.Order{
			UserID:            userID,
			ShippingAddressID: *cart.ShippingAddressID,
			CartID:            cart.ID,
			Status:            models.OrderStatusPending,
		}
		lines := make([]models.OrderItem, 0, len(items))
		payload := make([]events.OrderItem, 0, len(items))
		for _, it := range items {
			price := it.ProductVariant.PriceInCents
			order.TotalPriceInCents += price * int64(it.Quantity)
			lines = append(lines, models.OrderItem{
				ProductVariantID: it.ProductVariantID,
				Quantity:         it.Quantity,
				PriceInCents:     price,
			})
			payload = append(payload, events.OrderItem{
				ProductVariantID: it.ProductVariantID,
				Quantity:         it.Quantity,
				PriceInCents:     price,
			})
		}

		if err := tx.Omit(clause.Associations).Create(&order).Error; err != nil {
			return err
		}
		for i := range lines {
			lines[i].OrderID = order.ID
		}
		if err := tx.Omit(clause.Associations).Create(&lines).Error; err != nil {
			return err
		}
		order.Items = lines

		if err := enqueue(tx, events.TopicOrder, events.TypeOrderCreated, userID.String(), events.OrderCreated{
			OrderID:           order.ID,
			UserID:            userID,
			CartID:            cart.ID,
			ShippingAddressID: order.ShippingAddressID,
			TotalPriceInCents: order.TotalPriceInCents,
			Items:             payload,
		}); err != nil {
			return err
		}

		if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", cart.ID).Delete(&models.Cart{}).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormRepo) GetOrder(ctx context.Context, orderID uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := r.DB.WithContext(ctx).
		Preload("Items.ProductVariant.Product").
		Preload("ShippingAddress").
		Where("id = ?", orderID).
		First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}
