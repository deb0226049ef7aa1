package repositories

import (
	"fmt"

	"techmart/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// Create inserts an order together with its items.
func (r *GORMOrderRepository) Create(order *models.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	if err := r.db.Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// GetByID retrieves a single order with its items.
func (r *GORMOrderRepository) GetByID(id string) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Items").First(&order, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("order with ID %s: %w", id, err)
	}
	return &order, nil
}

// GetByUser returns a user's orders, newest first, items preloaded.
func (r *GORMOrderRepository) GetByUser(userID string) ([]models.Order, error) {
	orders := make([]models.Order, 0)
	err := r.db.Preload("Items").
		Order("created_at DESC").
		Find(&orders, "user_id = ?", userID).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get orders for user %s: %w", userID, err)
	}
	return orders, nil
}

// UpdateStatus sets the status of an existing order.
func (r *GORMOrderRepository) UpdateStatus(id, status string) error {
	res := r.db.Model(&models.Order{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("failed to update order status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("order with ID %s: %w", id, gorm.ErrRecordNotFound)
	}
	return nil
}

// Count returns the total number of orders.
func (r *GORMOrderRepository) Count() (int64, error) {
	var total int64
	if err := r.db.Model(&models.Order{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return total, nil
}

// TotalRevenue sums the total amount across all orders.
func (r *GORMOrderRepository) TotalRevenue() (float64, error) {
	var revenue float64
	err := r.db.Model(&models.Order{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&revenue).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum order revenue: %w", err)
	}
	return revenue, nil
}

// Recent returns the latest orders, newest first.
func (r *GORMOrderRepository) Recent(limit int) ([]models.Order, error) {
	orders := make([]models.Order, 0, limit)
	err := r.db.Preload("Items").
		Order("created_at DESC").
		Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get recent orders: %w", err)
	}
	return orders, nil
}

// SalesByRegion aggregates order count and revenue per shipping
// region, highest revenue first.
func (r *GORMOrderRepository) SalesByRegion() ([]models.RegionSales, error) {
	rows := make([]models.RegionSales, 0)
	err := r.db.Model(&models.Order{}).
		Select("shipping_region AS region, COUNT(*) AS orders, COALESCE(SUM(total_amount), 0) AS total").
		Group("shipping_region").
		Order("total DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate sales by region: %w", err)
	}
	return rows, nil
}
