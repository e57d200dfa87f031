package handlers

import (
	"errors"
	"log"

	"giftshop/internal/repositories"
	"giftshop/internal/services"

	"github.com/gofiber/fiber/v2"
)

// NotificationHandler handles HTTP requests for user notifications.
type NotificationHandler struct {
	service *services.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(service *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		service: service,
	}
}

// RegisterRoutes registers the notification routes with the Fiber app.
// All routes require authentication.
func (h *NotificationHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	notificationRoutes := router.Group("/notifications", authRequired)
	notificationRoutes.Get("/user/:userId", h.HandleGetUserNotifications)
	notificationRoutes.Put("/user/:userId/read-all", h.HandleMarkAllRead)
	notificationRoutes.Put("/:notificationId/read", h.HandleMarkRead)
}

// HandleGetUserNotifications returns a user's most recent notifications.
func (h *NotificationHandler) HandleGetUserNotifications(c *fiber.Ctx) error {
	userID := c.Params("userId")

	if requesterID, _ := c.Locals("user_id").(string); requesterID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Not authorized to access these notifications",
		})
	}

	notifications, err := h.service.GetForUser(userID)
	if err != nil {
		log.Printf("Error fetching notifications for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch notifications",
		})
	}
	return c.JSON(notifications)
}

// HandleMarkAllRead marks every unread notification for a user as read.
func (h *NotificationHandler) HandleMarkAllRead(c *fiber.Ctx) error {
	userID := c.Params("userId")

	if requesterID, _ := c.Locals("user_id").(string); requesterID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Not authorized to modify these notifications",
		})
	}

	modified, err := h.service.MarkAllRead(userID)
	if err != nil {
		log.Printf("Error marking notifications read for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to update notifications",
		})
	}
	return c.JSON(fiber.Map{
		"message":  "All notifications marked as read",
		"modified": modified,
	})
}

// HandleMarkRead marks a single notification as read.
func (h *NotificationHandler) HandleMarkRead(c *fiber.Ctx) error {
	notificationID := c.Params("notificationId")

	notification, err := h.service.GetByID(notificationID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotificationNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Notification not found",
			})
		}
		log.Printf("Error fetching notification %s: %v", notificationID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch notification",
		})
	}

	if requesterID, _ := c.Locals("user_id").(string); requesterID != notification.UserID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Not authorized to modify this notification",
		})
	}

	updated, err := h.service.MarkRead(notificationID)
	if err != nil {
		log.Printf("Error marking notification %s read: %v", notificationID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to update notification",
		})
	}
	return c.JSON(fiber.Map{
		"message":      "Notification marked as read",
		"notification": updated,
	})
}
