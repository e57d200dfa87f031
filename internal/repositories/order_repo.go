package repositories

import (
	"giftshop/internal/models"
)

// OrderRepository defines the interface for order data access.
// Save persists the whole order (status, tracking number and history) as a
// single atomic write; orders are never physically deleted.
type OrderRepository interface {
	GetAll() ([]models.Order, error)
	GetByID(id string) (*models.Order, error)
	GetByUser(userID string) ([]models.Order, error)
	Create(order *models.Order) error
	Save(order *models.Order) error
}
