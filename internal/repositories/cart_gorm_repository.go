package repositories

import (
	"fmt"

	"techmart/internal/models"

	"gorm.io/gorm"
)

// GORMCartRepository is a GORM implementation of CartRepository.
type GORMCartRepository struct {
	db *gorm.DB
}

// NewGORMCartRepository creates a new instance of GORMCartRepository.
func NewGORMCartRepository(db *gorm.DB) *GORMCartRepository {
	return &GORMCartRepository{
		db: db,
	}
}

// GetByUser returns all cart entries for a user, products preloaded,
// oldest entry first.
func (r *GORMCartRepository) GetByUser(userID string) ([]models.CartItem, error) {
	items := make([]models.CartItem, 0)
	err := r.db.Preload("Product").
		Order("created_at ASC").
		Find(&items, "user_id = ?", userID).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get cart for user %s: %w", userID, err)
	}
	return items, nil
}

// Get retrieves one cart entry by user and product.
func (r *GORMCartRepository) Get(userID, productID string) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.First(&item, "user_id = ? AND product_id = ?", userID, productID).Error
	if err != nil {
		return nil, fmt.Errorf("cart entry for product %s: %w", productID, err)
	}
	return &item, nil
}

// Create inserts a new cart entry.
func (r *GORMCartRepository) Create(item *models.CartItem) error {
	if err := r.db.Omit("Product").Create(item).Error; err != nil {
		return fmt.Errorf("failed to create cart entry: %w", err)
	}
	return nil
}

// Update persists a changed cart entry.
func (r *GORMCartRepository) Update(item *models.CartItem) error {
	res := r.db.Omit("Product").Save(item)
	if res.Error != nil {
		return fmt.Errorf("failed to update cart entry: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("cart entry %d: %w", item.ID, gorm.ErrRecordNotFound)
	}
	return nil
}

// Delete removes one product from the user's cart.
func (r *GORMCartRepository) Delete(userID, productID string) error {
	res := r.db.Delete(&models.CartItem{}, "user_id = ? AND product_id = ?", userID, productID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete cart entry: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("cart entry for product %s: %w", productID, gorm.ErrRecordNotFound)
	}
	return nil
}

// DeleteForProducts removes the given products from the user's cart.
// Missing entries are not an error.
func (r *GORMCartRepository) DeleteForProducts(userID string, productIDs []string) error {
	if len(productIDs) == 0 {
		return nil
	}
	err := r.db.Delete(&models.CartItem{}, "user_id = ? AND product_id IN ?", userID, productIDs).Error
	if err != nil {
		return fmt.Errorf("failed to clear ordered cart entries: %w", err)
	}
	return nil
}
