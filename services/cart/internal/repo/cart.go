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

// getOrCreateCart returns the user's cart row holding a share lock, so a
// concurrent finalize either completes first or waits for this transaction.
func getOrCreateCart(tx *gorm.DB, userID uuid.UUID) (*models.Cart, error) {
	var cart models.Cart
	var err error
	// a finalize committing between the insert and the read deletes the row, so try again once
	for attempt := 0; attempt < 2; attempt++ {
		fresh := models.Cart{UserID: userID}
		if err = tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoNothing: true,
		}).Omit(clause.Associations).Create(&fresh).Error; err != nil {
			return nil, err
		}

		err = tx.Clauses(clause.Locking{Strength: "SHARE"}).Where("user_id = ?", userID).First(&cart).Error
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			break
		}
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *GormRepo) GetOrCreateCart(ctx context.Context, userID uuid.UUID) (*models.Cart, error) {
	var cart *models.Cart
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		cart, err = getOrCreateCart(tx, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return cart, nil
}

// FindCart loads the user's cart with items, variants, products and the linked address.
func (r *GormRepo) FindCart(ctx context.Context, userID uuid.UUID) (*models.Cart, error) {
	var cart models.Cart
	err := r.DB.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("cart_items.created_at ASC")
		}).
		Preload("Items.ProductVariant.Product").
		Preload("ShippingAddress").
		Where("user_id = ?", userID).
		First(&cart).Error
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *GormRepo) AddItem(ctx context.Context, userID, variantID uuid.UUID, quantity int) (*models.CartItem, error) {
	var item models.CartItem
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var variant models.ProductVariant
		if err := tx.Select("id").Where("id = ?", variantID).First(&variant).Error; err != nil {
			return err
		}

		cart, err := getOrCreateCart(tx, userID)
		if err != nil {
			return err
		}

		row := models.CartItem{CartID: cart.ID, ProductVariantID: variantID, Quantity: quantity}
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "cart_id"}, {Name: "product_variant_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"quantity": gorm.Expr("cart_items.quantity + excluded.quantity"),
			}),
		}).Omit(clause.Associations).Create(&row).Error; err != nil {
			return err
		}

		// on conflict the generated id was never stored, so read the row back by its natural key
		if err := tx.Where("cart_id = ? AND product_variant_id = ?", cart.ID, variantID).First(&item).Error; err != nil {
			return err
		}

		return enqueue(tx, events.TopicCart, events.TypeCartItemAdded, userID.String(), events.CartItemAdded{
			CartID:           cart.ID,
			CartItemID:       item.ID,
			ProductVariantID: variantID,
			Added:            quantity,
			Quantity:         item.Quantity,
		})
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// lockOwnedItem share-locks the item's cart, then locks the item row and checks
// that the cart belongs to userID. Locks are always taken cart first, item second.
func lockOwnedItem(tx *gorm.DB, userID, itemID uuid.UUID) (*models.CartItem, error) {
	var ref models.CartItem
	if err := tx.Select("id", "cart_id").Where("id = ?", itemID).First(&ref).Error; err != nil {
		return nil, err
	}

	var cart models.Cart
	if err := tx.Clauses(clause.Locking{Strength: "SHARE"}).Where("id = ?", ref.CartID).First(&cart).Error; err != nil {
		return nil, err
	}

	var item models.CartItem
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", itemID).First(&item).Error; err != nil {
		return nil, err
	}
	if cart.UserID != userID {
		return nil, ErrNotOwner
	}
	return &item, nil
}

func (r *GormRepo) IncreaseItem(ctx context.Context, userID, itemID uuid.UUID) (*models.CartItem, error) {
	var item *models.CartItem
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		item, err = lockOwnedItem(tx, userID, itemID)
		if err != nil {
			return err
		}

		if err := tx.Model(&models.CartItem{}).Where("id = ?", item.ID).
			Update("quantity", gorm.Expr("quantity + ?", 1)).Error; err != nil {
			return err
		}
		if err := tx.Where("id = ?", item.ID).First(item).Error; err != nil {
			return err
		}

		return enqueue(tx, events.TopicCart, events.TypeCartItemAdded, userID.String(), events.CartItemAdded{
			CartID:           item.CartID,
			CartItemID:       item.ID,
			ProductVariantID: item.ProductVariantID,
			Added:            1,
			Quantity:         item.Quantity,
		})
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// DecreaseItem takes one unit off the item. It reports whether the row was deleted
// because its quantity reached zero.
func (r *GormRepo) DecreaseItem(ctx context.Context, userID, itemID uuid.UUID) (bool, error) {
	deleted := false
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		item, err := lockOwnedItem(tx, userID, itemID)
		if err != nil {
			return err
		}

		remaining := item.Quantity - 1
		if remaining > 0 {
			if err := tx.Model(&models.CartItem{}).Where("id = ?", item.ID).
				Update("quantity", gorm.Expr("quantity - ?", 1)).Error; err != nil {
				return err
			}
		} else {
			if err := tx.Where("id = ?", item.ID).Delete(&models.CartItem{}).Error; err != nil {
				return err
			}
			remaining = 0
			deleted = true
		}

		return enqueue(tx, events.TopicCart, events.TypeCartItemDecreased, userID.String(), events.CartItemDecreased{
			CartID:           item.CartID,
			CartItemID:       item.ID,
			ProductVariantID: item.ProductVariantID,
			Quantity:         remaining,
			Removed:          deleted,
		})
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}

func (r *GormRepo) RemoveItem(ctx context.Context, userID, itemID uuid.UUID) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		item, err := lockOwnedItem(tx, userID, itemID)
		if err != nil {
			return err
		}

		if err := tx.Where("id = ?", item.ID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}

		return enqueue(tx, events.TopicCart, events.TypeCartItemRemoved, userID.String(), events.CartItemRemoved{
			CartID:           item.CartID,
			CartItemID:       item.ID,
			ProductVariantID: item.ProductVariantID,
		})
	})
}

func (r *GormRepo) LinkShippingAddress(ctx context.Context, userID, addressID uuid.UUID) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("user_id = ?", userID).First(&cart).Error; err != nil {
			return err
		}

		var addr models.ShippingAddress
		if err := tx.Select("id", "user_id").Where("id = ?", addressID).First(&addr).Error; err != nil {
			return err
		}
		if addr.UserID != userID {
			return ErrNotOwner
		}

		if err := tx.Model(&models.Cart{}).Where("id = ?", cart.ID).
			Update("shipping_address_id", addr.ID).Error; err != nil {
			return err
		}

		return enqueue(tx, events.TopicCart, events.TypeShippingAddressLink, userID.String(), events.ShippingAddressLinked{
			CartID:            cart.ID,
			ShippingAddressID: addr.ID,
		})
	})
}
