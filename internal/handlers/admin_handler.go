package handlers

import (
	"log"

	"techmart/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler serves the dashboard aggregate endpoints.
type AdminHandler struct {
	service *services.AdminService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(service *services.AdminService) *AdminHandler {
	return &AdminHandler{
		service: service,
	}
}

// RegisterRoutes registers the admin routes; everything under /admin
// requires an admin bearer token.
func (h *AdminHandler) RegisterRoutes(router fiber.Router, auth, admin fiber.Handler) {
	adminRoutes := router.Group("/admin", auth, admin)
	adminRoutes.Get("/stats", h.HandleStats)
	adminRoutes.Get("/recent-orders", h.HandleRecentOrders)
	adminRoutes.Get("/sales-by-region", h.HandleSalesByRegion)
}

// HandleStats returns the headline store totals.
func (h *AdminHandler) HandleStats(c *fiber.Ctx) error {
	stats, err := h.service.Stats()
	if err != nil {
		log.Printf("Error aggregating stats: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Server error while fetching stats",
		})
	}
	return c.JSON(stats)
}

// HandleRecentOrders returns the latest orders.
func (h *AdminHandler) HandleRecentOrders(c *fiber.Ctx) error {
	orders, err := h.service.RecentOrders()
	if err != nil {
		log.Printf("Error fetching recent orders: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Server error while fetching recent orders",
		})
	}
	return c.JSON(orders)
}

// HandleSalesByRegion returns revenue grouped by shipping region.
func (h *AdminHandler) HandleSalesByRegion(c *fiber.Ctx) error {
	sales, err := h.service.SalesByRegion()
	if err != nil {
		log.Printf("Error aggregating sales by region: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Server error while fetching sales",
		})
	}
	return c.JSON(sales)
}
