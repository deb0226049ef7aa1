package services

import (
	"techmart/internal/models"
	"techmart/internal/repositories"
)

// How many orders the dashboard's recent-orders widget shows.
const recentOrdersLimit = 5

// AdminService aggregates the dashboard statistics.
type AdminService struct {
	userRepo    repositories.UserRepository
	productRepo repositories.ProductRepository
	orderRepo   repositories.OrderRepository
}

// NewAdminService creates a new AdminService.
func NewAdminService(userRepo repositories.UserRepository, productRepo repositories.ProductRepository, orderRepo repositories.OrderRepository) *AdminService {
	return &AdminService{
		userRepo:    userRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
	}
}

// Stats returns the headline store totals.
func (s *AdminService) Stats() (*models.StoreStats, error) {
	products, err := s.productRepo.Count()
	if err != nil {
		return nil, err
	}
	users, err := s.userRepo.Count()
	if err != nil {
		return nil, err
	}
	orders, err := s.orderRepo.Count()
	if err != nil {
		return nil, err
	}
	revenue, err := s.orderRepo.TotalRevenue()
	if err != nil {
		return nil, err
	}

	return &models.StoreStats{
		TotalProducts: products,
		TotalUsers:    users,
		TotalOrders:   orders,
		TotalRevenue:  revenue,
	}, nil
}

// RecentOrders returns the latest orders for the dashboard.
func (s *AdminService) RecentOrders() ([]models.Order, error) {
	return s.orderRepo.Recent(recentOrdersLimit)
}

// SalesByRegion returns revenue grouped by shipping region.
func (s *AdminService) SalesByRegion() ([]models.RegionSales, error) {
	return s.orderRepo.SalesByRegion()
}
