package handlers

import (
	"errors"
	"log"

	"techmart/internal/middleware"
	"techmart/internal/models"
	"techmart/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service  *services.OrderService
	validate *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the order routes. Status changes are admin
// only.
func (h *OrderHandler) RegisterRoutes(router fiber.Router, auth, admin fiber.Handler) {
	orderRoutes := router.Group("/orders", auth)
	orderRoutes.Get("/", h.HandleListMine)
	orderRoutes.Get("/:id", h.HandleGet)
	orderRoutes.Post("/", h.HandleCreate)
	orderRoutes.Patch("/:id/status", admin, h.HandleUpdateStatus)
}

// HandleCreate places an order for the token holder.
func (h *OrderHandler) HandleCreate(c *fiber.Ctx) error {
	var req models.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "At least one item and a shipping region are required.",
		})
	}

	order, err := h.service.Create(callerID(c), req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "One or more products do not exist.",
			})
		case errors.Is(err, services.ErrInsufficientStock):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Order creation failed due to insufficient stock.",
			})
		default:
			log.Printf("Error creating order: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Server error while creating order",
			})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// HandleListMine returns the caller's orders.
func (h *OrderHandler) HandleListMine(c *fiber.Ctx) error {
	orders, err := h.service.ListByUser(callerID(c))
	if err != nil {
		log.Printf("Error listing orders: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Server error while fetching orders",
		})
	}
	return c.JSON(orders)
}

// HandleGet returns one order, enforcing ownership for customers.
func (h *OrderHandler) HandleGet(c *fiber.Ctx) error {
	role, _ := c.Locals(middleware.LocalRole).(string)
	order, err := h.service.Get(c.Params("id"), callerID(c), role)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidID):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid order ID",
			})
		case errors.Is(err, services.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Order not found",
			})
		case errors.Is(err, services.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "You cannot view this order",
			})
		default:
			log.Printf("Error fetching order: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Server error while fetching order",
			})
		}
	}
	return c.JSON(order)
}

// HandleUpdateStatus moves an order to a new status (admin only).
func (h *OrderHandler) HandleUpdateStatus(c *fiber.Ctx) error {
	var req models.UpdateOrderStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Status is required",
		})
	}

	if err := h.service.UpdateStatus(c.Params("id"), req.Status); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid order status",
			})
		case errors.Is(err, services.ErrInvalidID):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid order ID",
			})
		case errors.Is(err, services.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Order not found",
			})
		default:
			log.Printf("Error updating order status: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Server error while updating order",
			})
		}
	}
	return c.JSON(fiber.Map{
		"message": "Order status updated successfully",
	})
}
