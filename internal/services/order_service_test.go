package services_test

import (
	"encoding/json"
	"testing"

	"techmart/internal/models"
	"techmart/internal/repositories"
	"techmart/internal/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockEventPublisher is a mock implementation of services.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(routingKey string, body []byte) error {
	args := m.Called(routingKey, body)
	return args.Error(0)
}

func orderRequest(productID string, quantity int) models.CreateOrderRequest {
	return models.CreateOrderRequest{
		Items:          []models.OrderItemRequest{{ProductID: productID, Quantity: quantity}},
		ShippingRegion: "EU",
	}
}

func TestOrderService_CreatePublishesEvent(t *testing.T) {
	mockOrders := repositories.NewMockOrderRepository()
	mockProducts := repositories.NewMockProductRepository()
	mockCart := repositories.NewMockCartRepository()
	mockMQ := new(MockEventPublisher)
	orderService := services.NewOrderService(mockOrders, mockProducts, mockCart, mockMQ)

	productID := uuid.New().String()
	product := &models.Product{ID: productID, Name: "Bluetooth Speaker", Price: 89.50, Stock: 100}

	mockProducts.On("GetByID", productID).Return(product, nil).Once()
	mockProducts.On("DecrementStock", productID, 2).Return(true, nil).Once()
	mockOrders.On("Create", mock.AnythingOfType("*models.Order")).Return(nil).Once()
	mockCart.On("DeleteForProducts", "user-1", []string{productID}).Return(nil).Once()
	mockMQ.On("Publish", "order.created", mock.Anything).Return(nil).Once()

	order, err := orderService.Create("user-1", orderRequest(productID, 2))
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, 179.00, order.TotalAmount)
	assert.Len(t, order.Items, 1)
	assert.Equal(t, 89.50, order.Items[0].Price)

	// the event body names the order
	body := mockMQ.Calls[0].Arguments.Get(1).([]byte)
	var event map[string]interface{}
	assert.NoError(t, json.Unmarshal(body, &event))
	assert.Equal(t, order.ID, event["orderID"])

	mockOrders.AssertExpectations(t)
	mockProducts.AssertExpectations(t)
	mockCart.AssertExpectations(t)
	mockMQ.AssertExpectations(t)
}

func TestOrderService_CreateInsufficientStock(t *testing.T) {
	mockOrders := repositories.NewMockOrderRepository()
	mockProducts := repositories.NewMockProductRepository()
	mockCart := repositories.NewMockCartRepository()
	orderService := services.NewOrderService(mockOrders, mockProducts, mockCart, nil)

	productID := uuid.New().String()
	product := &models.Product{ID: productID, Name: "Action Camera", Price: 150.00, Stock: 1}
	mockProducts.On("GetByID", productID).Return(product, nil).Once()

	_, err := orderService.Create("user-1", orderRequest(productID, 2))
	assert.ErrorIs(t, err, services.ErrInsufficientStock)
	mockOrders.AssertNotCalled(t, "Create", mock.Anything)
}

func TestOrderService_CreateRaceOnStock(t *testing.T) {
	// The stock check passes but a concurrent order drains the stock
	// before the guarded decrement lands.
	mockOrders := repositories.NewMockOrderRepository()
	mockProducts := repositories.NewMockProductRepository()
	mockCart := repositories.NewMockCartRepository()
	orderService := services.NewOrderService(mockOrders, mockProducts, mockCart, nil)

	productID := uuid.New().String()
	product := &models.Product{ID: productID, Name: "Keyboard", Price: 125.00, Stock: 5}
	mockProducts.On("GetByID", productID).Return(product, nil).Once()
	mockProducts.On("DecrementStock", productID, 5).Return(false, nil).Once()

	_, err := orderService.Create("user-1", orderRequest(productID, 5))
	assert.ErrorIs(t, err, services.ErrInsufficientStock)
	mockOrders.AssertNotCalled(t, "Create", mock.Anything)
}

func TestOrderService_GetEnforcesOwnership(t *testing.T) {
	mockOrders := repositories.NewMockOrderRepository()
	mockProducts := repositories.NewMockProductRepository()
	mockCart := repositories.NewMockCartRepository()
	orderService := services.NewOrderService(mockOrders, mockProducts, mockCart, nil)

	orderID := uuid.New().String()
	order := &models.Order{ID: orderID, UserID: "owner-1"}
	mockOrders.On("GetByID", orderID).Return(order, nil).Times(3)

	// owner reads fine
	got, err := orderService.Get(orderID, "owner-1", models.RoleCustomer)
	assert.NoError(t, err)
	assert.Equal(t, orderID, got.ID)

	// another customer is rejected
	_, err = orderService.Get(orderID, "stranger", models.RoleCustomer)
	assert.ErrorIs(t, err, services.ErrForbidden)

	// admins can read any order
	_, err = orderService.Get(orderID, "stranger", models.RoleAdmin)
	assert.NoError(t, err)
	mockOrders.AssertExpectations(t)
}

func TestOrderService_UpdateStatusValidation(t *testing.T) {
	mockOrders := repositories.NewMockOrderRepository()
	mockProducts := repositories.NewMockProductRepository()
	mockCart := repositories.NewMockCartRepository()
	orderService := services.NewOrderService(mockOrders, mockProducts, mockCart, nil)

	err := orderService.UpdateStatus(uuid.New().String(), "misplaced")
	assert.ErrorIs(t, err, services.ErrInvalidStatus)
	mockOrders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)

	orderID := uuid.New().String()
	mockOrders.On("UpdateStatus", orderID, models.OrderStatusShipped).Return(nil).Once()
	assert.NoError(t, orderService.UpdateStatus(orderID, models.OrderStatusShipped))
	mockOrders.AssertExpectations(t)
}
