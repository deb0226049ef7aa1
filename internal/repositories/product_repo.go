package repositories

import "techmart/internal/models"

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	// List returns one page of products matching the filter, newest
	// first, plus the total match count. The count and the page fetch
	// are two independent reads.
	List(filter models.ProductFilter, offset, limit int) ([]models.Product, int64, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
	// DecrementStock atomically subtracts qty from a product's stock,
	// guarded so stock never goes negative. Returns false when the
	// product is missing or has insufficient stock.
	DecrementStock(id string, qty int) (bool, error)
	Count() (int64, error)
}
