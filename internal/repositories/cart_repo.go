package repositories

import "techmart/internal/models"

// CartRepository defines the interface for cart data access. Every
// operation is scoped to a single user.
type CartRepository interface {
	// GetByUser returns the user's cart entries with their products
	// preloaded.
	GetByUser(userID string) ([]models.CartItem, error)
	Get(userID, productID string) (*models.CartItem, error)
	Create(item *models.CartItem) error
	Update(item *models.CartItem) error
	Delete(userID, productID string) error
	// DeleteForProducts removes the given products from the user's
	// cart, used to clear ordered items after checkout.
	DeleteForProducts(userID string, productIDs []string) error
}
