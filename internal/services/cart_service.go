package services

import (
	"errors"
	"fmt"

	"techmart/internal/models"
	"techmart/internal/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CartService manages per-user shopping carts.
type CartService struct {
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository
}

// NewCartService creates a new CartService.
func NewCartService(cartRepo repositories.CartRepository, productRepo repositories.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// GetCart returns the user's cart entries with product details.
func (s *CartService) GetCart(userID string) ([]models.CartItem, error) {
	return s.cartRepo.GetByUser(userID)
}

// AddItem puts a product into the user's cart. Adding a product that
// is already in the cart accumulates the quantity.
func (s *CartService) AddItem(userID, productID string, quantity int) (*models.CartItem, error) {
	if _, err := uuid.Parse(productID); err != nil {
		return nil, ErrInvalidID
	}
	if quantity < 1 {
		quantity = 1
	}

	if _, err := s.productRepo.GetByID(productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	existing, err := s.cartRepo.Get(userID, productID)
	switch {
	case err == nil:
		existing.Quantity += quantity
		if err := s.cartRepo.Update(existing); err != nil {
			return nil, fmt.Errorf("failed to update cart entry: %w", err)
		}
		return existing, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		item := &models.CartItem{
			UserID:    userID,
			ProductID: productID,
			Quantity:  quantity,
		}
		if err := s.cartRepo.Create(item); err != nil {
			return nil, fmt.Errorf("failed to add cart entry: %w", err)
		}
		return item, nil
	default:
		return nil, err
	}
}

// UpdateItem sets the absolute quantity of a cart entry.
func (s *CartService) UpdateItem(userID, productID string, quantity int) (*models.CartItem, error) {
	item, err := s.cartRepo.Get(userID, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	item.Quantity = quantity
	if err := s.cartRepo.Update(item); err != nil {
		return nil, fmt.Errorf("failed to update cart entry: %w", err)
	}
	return item, nil
}

// RemoveItem deletes one product from the user's cart.
func (s *CartService) RemoveItem(userID, productID string) error {
	if err := s.cartRepo.Delete(userID, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
