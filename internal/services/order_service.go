package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"techmart/internal/models"
	"techmart/internal/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventPublisher publishes domain events to a message broker. A nil
// publisher disables eventing without touching the order flow.
type EventPublisher interface {
	Publish(routingKey string, body []byte) error
}

var validOrderStatuses = map[string]bool{
	models.OrderStatusPending:    true,
	models.OrderStatusProcessing: true,
	models.OrderStatusShipped:    true,
	models.OrderStatusDelivered:  true,
	models.OrderStatusCancelled:  true,
}

// OrderService handles order placement and management.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
	cartRepo    repositories.CartRepository
	publisher   EventPublisher
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, productRepo repositories.ProductRepository, cartRepo repositories.CartRepository, publisher EventPublisher) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		cartRepo:    cartRepo,
		publisher:   publisher,
	}
}

// Create places an order. Every requested product must exist and have
// sufficient stock; the charged price is the product's current price.
// Stock is decremented per item with a non-negative guard — there is
// no cross-product transaction, which is acceptable for this domain.
func (s *OrderService) Create(userID string, req models.CreateOrderRequest) (*models.Order, error) {
	var totalAmount float64
	items := make([]models.OrderItem, 0, len(req.Items))

	for _, line := range req.Items {
		product, err := s.productRepo.GetByID(line.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("product %s: %w", line.ProductID, ErrNotFound)
			}
			return nil, err
		}
		if product.Stock < line.Quantity {
			return nil, fmt.Errorf("product %s: %w", product.Name, ErrInsufficientStock)
		}

		items = append(items, models.OrderItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     product.Price,
		})
		totalAmount += product.Price * float64(line.Quantity)
	}

	orderedIDs := make([]string, 0, len(items))
	for _, item := range items {
		ok, err := s.productRepo.DecrementStock(item.ProductID, item.Quantity)
		if err != nil {
			return nil, err
		}
		if !ok {
			// A concurrent order drained the stock between the check
			// and the decrement.
			return nil, fmt.Errorf("product %s: %w", item.ProductID, ErrInsufficientStock)
		}
		orderedIDs = append(orderedIDs, item.ProductID)
	}

	order := &models.Order{
		ID:             uuid.New().String(),
		UserID:         userID,
		Items:          items,
		TotalAmount:    totalAmount,
		Status:         models.OrderStatusPending,
		ShippingRegion: req.ShippingRegion,
	}
	if err := s.orderRepo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if err := s.cartRepo.DeleteForProducts(userID, orderedIDs); err != nil {
		log.Printf("Failed to clear cart entries after order %s: %v", order.ID, err)
	}

	s.publishOrderCreated(order)

	return order, nil
}

// publishOrderCreated emits an order.created event. Publishing
// failures are logged, never surfaced to the buyer.
func (s *OrderService) publishOrderCreated(order *models.Order) {
	if s.publisher == nil {
		return
	}

	event := map[string]interface{}{
		"orderID": order.ID,
		"userID":  order.UserID,
		"status":  order.Status,
		"total":   order.TotalAmount,
		"region":  order.ShippingRegion,
	}
	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal order event for order %s: %v", order.ID, err)
		return
	}
	if err := s.publisher.Publish("order.created", body); err != nil {
		log.Printf("Warning: failed to publish order created event for order %s: %v", order.ID, err)
	}
}

// ListByUser returns the caller's orders, newest first.
func (s *OrderService) ListByUser(userID string) ([]models.Order, error) {
	return s.orderRepo.GetByUser(userID)
}

// Get retrieves one order. Customers can only read their own orders;
// admins can read any.
func (s *OrderService) Get(id, callerID, callerRole string) (*models.Order, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidID
	}
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if order.UserID != callerID && callerRole != models.RoleAdmin {
		return nil, ErrForbidden
	}
	return order, nil
}

// UpdateStatus moves an order to a new status from the known set.
func (s *OrderService) UpdateStatus(id, status string) error {
	if !validOrderStatuses[status] {
		return ErrInvalidStatus
	}
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidID
	}
	if err := s.orderRepo.UpdateStatus(id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
