package services_test

import (
	"fmt"
	"testing"

	"giftshop/internal/models"
	"giftshop/internal/repositories"
	"giftshop/internal/services"

	"github.com/stretchr/testify/assert"
)

func TestNotificationService_GetForUser(t *testing.T) {
	repo := new(MockNotificationRepository)
	service := services.NewNotificationService(repo)

	expected := []models.Notification{
		{ID: "n-2", UserID: "user-1", Message: "Your order #abc123 has been shipped."},
		{ID: "n-1", UserID: "user-1", Message: "Your order #abc123 is now being processed."},
	}
	repo.On("GetByUser", "user-1", 20).Return(expected, nil).Once()

	notifications, err := service.GetForUser("user-1")

	assert.NoError(t, err)
	assert.Equal(t, expected, notifications)
	repo.AssertExpectations(t)
}

func TestNotificationService_MarkRead(t *testing.T) {
	repo := new(MockNotificationRepository)
	service := services.NewNotificationService(repo)

	unread := &models.Notification{ID: "n-1", UserID: "user-1", IsRead: false}
	repo.On("GetByID", "n-1").Return(unread, nil).Once()
	repo.On("Save", unread).Return(nil).Once()

	notification, err := service.MarkRead("n-1")

	assert.NoError(t, err)
	assert.True(t, notification.IsRead)
	repo.AssertExpectations(t)
}

func TestNotificationService_MarkRead_AlreadyRead(t *testing.T) {
	repo := new(MockNotificationRepository)
	service := services.NewNotificationService(repo)

	read := &models.Notification{ID: "n-1", UserID: "user-1", IsRead: true}
	repo.On("GetByID", "n-1").Return(read, nil).Once()

	notification, err := service.MarkRead("n-1")

	// Already read, nothing to write.
	assert.NoError(t, err)
	assert.True(t, notification.IsRead)
	repo.AssertNotCalled(t, "Save", read)
	repo.AssertExpectations(t)
}

func TestNotificationService_MarkRead_NotFound(t *testing.T) {
	repo := new(MockNotificationRepository)
	service := services.NewNotificationService(repo)

	repo.On("GetByID", "missing").
		Return(nil, fmt.Errorf("notification with ID missing: %w", repositories.ErrNotificationNotFound)).Once()

	notification, err := service.MarkRead("missing")

	assert.Error(t, err)
	assert.Nil(t, notification)
	assert.ErrorIs(t, err, repositories.ErrNotificationNotFound)
	repo.AssertExpectations(t)
}

func TestNotificationService_MarkAllRead(t *testing.T) {
	repo := new(MockNotificationRepository)
	service := services.NewNotificationService(repo)

	repo.On("MarkAllRead", "user-1").Return(int64(3), nil).Once()

	modified, err := service.MarkAllRead("user-1")

	assert.NoError(t, err)
	assert.Equal(t, int64(3), modified)
	repo.AssertExpectations(t)
}
