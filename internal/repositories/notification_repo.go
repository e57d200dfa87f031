package repositories

import (
	"giftshop/internal/models"
)

// NotificationRepository defines the interface for notification data access.
type NotificationRepository interface {
	Create(notification *models.Notification) error
	GetByID(id string) (*models.Notification, error)
	GetByUser(userID string, limit int) ([]models.Notification, error)
	Save(notification *models.Notification) error
	MarkAllRead(userID string) (int64, error)
}
