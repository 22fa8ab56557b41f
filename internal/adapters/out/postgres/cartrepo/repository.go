package cartrepo

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"

	"gorm.io/gorm"
)

// GormCartRepository implements CartRepository using GORM.
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository creates a new GORM cart repository.
func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// Get retrieves the consumer's cart, empty if no rows exist.
func (r *GormCartRepository) Get(ctx context.Context, consumerID kernel.UUID) (*user.Cart, error) {
	if err := consumerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []CartItemDTO
	err := r.db.WithContext(ctx).
		Order("position").
		Find(&dtos, "consumer_id = ?", consumerID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	items := make([]user.CartItem, 0, len(dtos))
	for _, dto := range dtos {
		itemID, idErr := kernel.UUIDFromBytes(dto.ItemID[:])
		if idErr != nil {
			return nil, idErr
		}
		item, itemErr := user.NewCartItem(itemID, dto.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return user.RestoreCart(consumerID, items)
}

// AddQuantity upserts the entry with one statement. The clamp at
// MaxCartQuantity happens in SQL so two concurrent adds cannot overshoot it.
func (r *GormCartRepository) AddQuantity(
	ctx context.Context,
	consumerID, itemID kernel.UUID,
	quantity int,
) (int, error) {
	if err := consumerID.Validate(); err != nil {
		return 0, err
	}
	if err := itemID.Validate(); err != nil {
		return 0, err
	}

	var resulting int
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO cart_items (consumer_id, item_id, quantity)
		VALUES (?, ?, LEAST(?, ?))
		ON CONFLICT (consumer_id, item_id)
		DO UPDATE SET quantity = LEAST(?, cart_items.quantity + EXCLUDED.quantity)
		RETURNING quantity
	`,
		consumerID.Bytes(),
		itemID.Bytes(),
		user.MaxCartQuantity,
		quantity,
		user.MaxCartQuantity,
	).Scan(&resulting).Error
	if err != nil {
		return 0, err
	}

	return resulting, nil
}

// RemoveItem deletes the entry for the item, silently if absent.
func (r *GormCartRepository) RemoveItem(ctx context.Context, consumerID, itemID kernel.UUID) error {
	if err := consumerID.Validate(); err != nil {
		return err
	}
	if err := itemID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Where("consumer_id = ? AND item_id = ?", consumerID.Bytes(), itemID.Bytes()).
		Delete(&CartItemDTO{}).Error
}

// Clear deletes every entry of the consumer's cart.
func (r *GormCartRepository) Clear(ctx context.Context, consumerID kernel.UUID) error {
	if err := consumerID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Where("consumer_id = ?", consumerID.Bytes()).
		Delete(&CartItemDTO{}).Error
}
