package repositories

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"giftshop/internal/models"

	"github.com/google/uuid"
)

// MockNotificationRepository is an in-memory implementation of NotificationRepository.
type MockNotificationRepository struct {
	notifications map[string]models.Notification
	mu            sync.RWMutex
}

// NewMockNotificationRepository creates a new instance of MockNotificationRepository.
func NewMockNotificationRepository() *MockNotificationRepository {
	return &MockNotificationRepository{
		notifications: make(map[string]models.Notification),
	}
}

// Create adds a new notification.
func (r *MockNotificationRepository) Create(notification *models.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if notification.ID == "" {
		notification.ID = uuid.New().String()
	}
	notification.CreatedAt = time.Now()
	notification.UpdatedAt = time.Now()
	r.notifications[notification.ID] = *notification
	return nil
}

// GetByID returns a notification by its ID.
func (r *MockNotificationRepository) GetByID(id string) (*models.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	notification, ok := r.notifications[id]
	if !ok {
		return nil, fmt.Errorf("notification with ID %s: %w", id, ErrNotificationNotFound)
	}
	return &notification, nil
}

// GetByUser returns a user's notifications, newest first, capped at limit.
func (r *MockNotificationRepository) GetByUser(userID string, limit int) ([]models.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var list []models.Notification
	for _, n := range r.notifications {
		if n.UserID == userID {
			list = append(list, n)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

// Save replaces the stored notification.
func (r *MockNotificationRepository) Save(notification *models.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.notifications[notification.ID]; !ok {
		return fmt.Errorf("notification with ID %s: %w", notification.ID, ErrNotificationNotFound)
	}
	notification.UpdatedAt = time.Now()
	r.notifications[notification.ID] = *notification
	return nil
}

// MarkAllRead flags every unread notification for the user as read.
func (r *MockNotificationRepository) MarkAllRead(userID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var modified int64
	for id, n := range r.notifications {
		if n.UserID == userID && !n.IsRead {
			n.IsRead = true
			n.UpdatedAt = time.Now()
			r.notifications[id] = n
			modified++
		}
	}
	return modified, nil
}
