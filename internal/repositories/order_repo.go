package repositories

import "techmart/internal/models"

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(id string) (*models.Order, error)
	GetByUser(userID string) ([]models.Order, error)
	UpdateStatus(id, status string) error
	Count() (int64, error)
	TotalRevenue() (float64, error)
	Recent(limit int) ([]models.Order, error)
	SalesByRegion() ([]models.RegionSales, error)
}
