package handlers

import (
	"errors"
	"log"

	"giftshop/internal/repositories"
	"giftshop/internal/services"

	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service *services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service: service,
	}
}

// RegisterRoutes registers the order routes with the Fiber app. Checkout and
// user listings require a token; reading a single order is public (used by
// the order confirmation page); the status update route accepts anonymous
// callers but records the acting user when a token is present.
func (h *OrderHandler) RegisterRoutes(router fiber.Router, authRequired, authOptional fiber.Handler) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Post("/", authRequired, h.HandleCreateOrder)
	orderRoutes.Get("/", authRequired, h.HandleGetOrders)
	orderRoutes.Get("/user/:userId", authRequired, h.HandleGetUserOrders)
	orderRoutes.Get("/:id", h.HandleGetOrderByID)
	orderRoutes.Put("/:id/status", authOptional, h.HandleUpdateOrderStatus)
}

// HandleCreateOrder creates a new order from a checkout request.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var input services.CreateOrderInput
	if err := c.BodyParser(&input); err != nil {
		log.Printf("Error parsing order request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	// Guest checkout is allowed, but when the caller is authenticated and
	// did not name a user, attribute the order to them.
	if input.UserID == "" {
		if userID, ok := c.Locals("user_id").(string); ok {
			input.UserID = userID
		}
	}

	order, err := h.service.CreateOrder(input)
	if err != nil {
		var validationErr *services.ValidationError
		if errors.As(err, &validationErr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message":        "Missing required fields",
				"requiredFields": validationErr.Fields,
			})
		}
		log.Printf("Error creating order: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to create order",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(order)
}

// HandleGetOrders retrieves all orders. Admin only.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	if isAdmin, ok := c.Locals("is_admin").(bool); !ok || !isAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Access denied. Admin only.",
		})
	}

	orders, err := h.service.GetAllOrders()
	if err != nil {
		log.Printf("Error fetching all orders: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch orders",
		})
	}
	return c.JSON(orders)
}

// HandleGetUserOrders retrieves the orders placed by a user, for the
// profile page.
func (h *OrderHandler) HandleGetUserOrders(c *fiber.Ctx) error {
	userID := c.Params("userId")

	// Users may only read their own orders; admins may read anyone's.
	requesterID, _ := c.Locals("user_id").(string)
	isAdmin, _ := c.Locals("is_admin").(bool)
	if requesterID != userID && !isAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Not authorized to access these orders",
		})
	}

	orders, err := h.service.GetOrdersByUser(userID)
	if err != nil {
		log.Printf("Error fetching orders for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch user orders",
		})
	}
	return c.JSON(orders)
}

// HandleGetOrderByID retrieves a single order by its ID.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	orderID := c.Params("id")
	order, err := h.service.GetOrderByID(orderID)
	if err != nil {
		if errors.Is(err, repositories.ErrOrderNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Order not found",
			})
		}
		log.Printf("Error fetching order %s: %v", orderID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch order",
		})
	}
	return c.JSON(order)
}

// HandleUpdateOrderStatus applies a status transition to an order.
func (h *OrderHandler) HandleUpdateOrderStatus(c *fiber.Ctx) error {
	orderID := c.Params("id")

	var input services.StatusUpdateInput
	if err := c.BodyParser(&input); err != nil {
		log.Printf("Error parsing status update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	// Record the acting user when authenticated; public updates are
	// allowed and logged for audit.
	if userID, ok := c.Locals("user_id").(string); ok {
		input.UpdatedBy = userID
	}
	log.Printf("Order status update request: order %s, status %q, by %q", orderID, input.Status, input.UpdatedBy)

	order, err := h.service.UpdateStatus(orderID, input)
	if err != nil {
		var validationErr *services.ValidationError
		switch {
		case errors.As(err, &validationErr):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message":      "Invalid status",
				"validOptions": validationErr.ValidOptions,
			})
		case errors.Is(err, repositories.ErrOrderNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Order not found",
			})
		default:
			log.Printf("Error updating order status for order %s: %v", orderID, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Failed to update order status",
			})
		}
	}

	return c.JSON(order)
}
