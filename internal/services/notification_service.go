package services

import (
	"giftshop/internal/models"
	"giftshop/internal/repositories"
)

// defaultNotificationLimit caps how many notifications a single listing
// returns, to avoid overwhelming the client.
const defaultNotificationLimit = 20

// NotificationService handles business logic for user notifications.
type NotificationService struct {
	repo repositories.NotificationRepository
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(repo repositories.NotificationRepository) *NotificationService {
	return &NotificationService{
		repo: repo,
	}
}

// GetForUser retrieves a user's most recent notifications, newest first.
func (s *NotificationService) GetForUser(userID string) ([]models.Notification, error) {
	return s.repo.GetByUser(userID, defaultNotificationLimit)
}

// GetByID retrieves a single notification by its ID.
func (s *NotificationService) GetByID(id string) (*models.Notification, error) {
	return s.repo.GetByID(id)
}

// MarkRead flags a single notification as read.
func (s *NotificationService) MarkRead(id string) (*models.Notification, error) {
	notification, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if notification.IsRead {
		return notification, nil
	}
	notification.IsRead = true
	if err := s.repo.Save(notification); err != nil {
		return nil, err
	}
	return notification, nil
}

// MarkAllRead flags every unread notification for a user as read and
// returns how many were modified.
func (s *NotificationService) MarkAllRead(userID string) (int64, error) {
	return s.repo.MarkAllRead(userID)
}
