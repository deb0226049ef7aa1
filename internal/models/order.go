package models

import "time"

// Order statuses. Transitions are not restricted beyond membership in
// this set.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// OrderItem records one product line of an order. Price is the unit
// price at the time the order was placed.
type OrderItem struct {
	ID        uint    `json:"-" gorm:"primaryKey"`
	OrderID   string  `json:"-" gorm:"type:varchar(36);index"`
	ProductID string  `json:"productId" gorm:"type:varchar(36)"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// Order represents a customer order.
type Order struct {
	ID             string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID         string      `json:"userId" gorm:"type:varchar(36);index"`
	Items          []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
	TotalAmount    float64     `json:"totalAmount"`
	Status         string      `json:"status" gorm:"type:varchar(20)"`
	ShippingRegion string      `json:"shippingRegion" gorm:"type:varchar(100);index"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}

// OrderItemRequest is one requested product line.
type OrderItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gte=1"`
}

// CreateOrderRequest is the body for placing an order.
type CreateOrderRequest struct {
	Items          []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	ShippingRegion string             `json:"shippingRegion" validate:"required"`
}

// UpdateOrderStatusRequest is the admin status-change body.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// StoreStats aggregates the headline numbers for the admin dashboard.
type StoreStats struct {
	TotalProducts int64   `json:"totalProducts"`
	TotalUsers    int64   `json:"totalUsers"`
	TotalOrders   int64   `json:"totalOrders"`
	TotalRevenue  float64 `json:"totalRevenue"`
}

// RegionSales is one row of the sales-by-region aggregate.
type RegionSales struct {
	Region string  `json:"region"`
	Orders int64   `json:"orders"`
	Total  float64 `json:"total"`
}
