package services

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"giftshop/internal/models"
	"giftshop/internal/repositories"
	"giftshop/pkg/rabbitmq"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// timeOfDayFormat matches the human-readable time string the storefront
// shows next to each history entry.
const timeOfDayFormat = "3:04:05 PM"

// createdComment is the comment attached to the initial history entry.
const createdComment = "Order received and is being processed."

// OrderService is the sole authority for creating orders and changing their
// status. Every status change appends an immutable history entry, and a
// change on an order with an associated user fans out a notification. The
// notification is strictly best-effort: it runs after the order write
// commits, and its failure is logged and swallowed, never returned.
type OrderService struct {
	orderRepo        repositories.OrderRepository
	notificationRepo repositories.NotificationRepository
	mqClient         *rabbitmq.Client // May be nil when messaging is disabled
	validate         *validator.Validate
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, notificationRepo repositories.NotificationRepository, mqClient *rabbitmq.Client) *OrderService {
	return &OrderService{
		orderRepo:        orderRepo,
		notificationRepo: notificationRepo,
		mqClient:         mqClient,
		validate:         validator.New(),
	}
}

// OrderItemInput is one requested line item at checkout. Title, price and
// image become immutable snapshots on the stored order.
type OrderItemInput struct {
	ProductID string  `json:"product"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image"`
}

// CreateOrderInput is the checkout request.
type CreateOrderInput struct {
	CustomerName  string           `json:"customerName" validate:"required"`
	Email         string           `json:"email" validate:"required,email"`
	Address       string           `json:"address" validate:"required"`
	Phone         string           `json:"phone" validate:"required"`
	Items         []OrderItemInput `json:"items" validate:"required,min=1"`
	Total         float64          `json:"total" validate:"required"`
	UserID        string           `json:"userId"` // Optional; empty for guest checkout
	PaymentMethod string           `json:"paymentMethod" validate:"omitempty,oneof=card upi cod wallet"`
}

// StatusUpdateInput is a requested status transition.
type StatusUpdateInput struct {
	Status         string `json:"status"`
	Comment        string `json:"comment"`
	TrackingNumber string `json:"trackingNumber"`
	UpdatedBy      string `json:"-"` // Acting user, taken from the auth context when present
}

// CreateOrder validates the checkout request and persists a new order with
// status Pending and a single history entry. Line items are normalized so
// title, price, quantity and image are always populated even when the
// caller supplies partial data.
func (s *OrderService) CreateOrder(input CreateOrderInput) (*models.Order, error) {
	if err := s.validate.Struct(input); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return nil, fmt.Errorf("failed to validate order input: %w", err)
		}
		fields := make([]string, 0, len(validationErrors))
		for _, e := range validationErrors {
			fields = append(fields, jsonFieldName(e.Field()))
		}
		return nil, &ValidationError{Message: "missing required fields", Fields: fields}
	}

	paymentMethod := models.PaymentMethod(input.PaymentMethod)
	if paymentMethod == "" {
		paymentMethod = models.PaymentCOD
	}

	items := make([]models.OrderItem, 0, len(input.Items))
	for _, item := range input.Items {
		items = append(items, normalizeItem(item))
	}

	now := time.Now()
	order := &models.Order{
		ID:            uuid.New().String(),
		CustomerName:  input.CustomerName,
		Email:         input.Email,
		Address:       input.Address,
		Phone:         input.Phone,
		Items:         items,
		Total:         input.Total,
		Status:        models.StatusPending,
		PaymentMethod: paymentMethod,
		UserID:        input.UserID,
		StatusUpdates: []models.StatusUpdate{
			{
				Status:   models.StatusPending,
				Date:     now,
				Time:     now.Format(timeOfDayFormat),
				Comments: createdComment,
			},
		},
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create order in repository: %w", err)
	}

	s.publishEvent("order.created", map[string]interface{}{
		"orderID": order.ID,
		"userID":  order.UserID,
		"status":  order.Status,
		"total":   order.Total,
	})

	return order, nil
}

// UpdateStatus applies a status transition to an order. The status set is
// flat: any status may follow any other. When the requested status equals
// the current one and no new tracking number is supplied, the call is a
// no-op returning the unmodified order, so redundant client retries do not
// pollute the history.
func (s *OrderService) UpdateStatus(orderID string, input StatusUpdateInput) (*models.Order, error) {
	status := models.OrderStatus(input.Status)
	if !status.IsValid() {
		validOptions := make([]string, 0, len(models.ValidOrderStatuses))
		for _, v := range models.ValidOrderStatuses {
			validOptions = append(validOptions, string(v))
		}
		return nil, &ValidationError{Message: "invalid status", ValidOptions: validOptions}
	}

	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}

	statusChanged := order.Status != status
	trackingChanged := input.TrackingNumber != "" && order.TrackingNumber != input.TrackingNumber
	if !statusChanged && !trackingChanged {
		// Nothing to do, return the order as-is.
		return order, nil
	}

	// Build the history comment. The tracking number is noted in the
	// comment only the first time one is attached.
	comments := input.Comment
	if input.TrackingNumber != "" && order.TrackingNumber == "" {
		if comments != "" {
			comments += fmt.Sprintf(" Tracking number: %s", input.TrackingNumber)
		} else {
			comments = fmt.Sprintf("Tracking number: %s", input.TrackingNumber)
		}
	}

	order.Status = status
	if input.TrackingNumber != "" {
		order.TrackingNumber = input.TrackingNumber
	}

	now := time.Now()
	order.StatusUpdates = append(order.StatusUpdates, models.StatusUpdate{
		Status:    status,
		Date:      now,
		Time:      now.Format(timeOfDayFormat),
		Comments:  comments,
		UpdatedBy: input.UpdatedBy,
	})

	// Status, tracking number and history persist as one atomic write.
	if err := s.orderRepo.Save(order); err != nil {
		return nil, fmt.Errorf("failed to update order status for order %s: %w", orderID, err)
	}

	// Notification fan-out runs strictly after the order write commits.
	// Single attempt, no retry; a failure must never undo or fail the
	// status update.
	if order.UserID != "" {
		notification := buildStatusNotification(order, status, input.Comment, input.TrackingNumber)
		if err := s.notificationRepo.Create(notification); err != nil {
			log.Printf("Error creating notification for order %s: %v", order.ID, err)
		} else {
			log.Printf("Notification created for user %s about order %s", order.UserID, order.ID)
		}
	}

	s.publishEvent("order.status_updated", map[string]interface{}{
		"orderID": order.ID,
		"userID":  order.UserID,
		"status":  order.Status,
	})

	return order, nil
}

// GetAllOrders retrieves all orders, newest first.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// GetOrdersByUser retrieves all orders placed by a user, newest first.
func (s *OrderService) GetOrdersByUser(userID string) ([]models.Order, error) {
	return s.orderRepo.GetByUser(userID)
}

// normalizeItem fills in defaults so a stored line item always has a title,
// quantity and image, even if the caller supplied partial data. Checkout
// favors availability over strict item validation.
func normalizeItem(item OrderItemInput) models.OrderItem {
	title := item.Title
	if title == "" {
		title = "Unknown Item"
	}
	quantity := item.Quantity
	if quantity < 1 {
		quantity = 1
	}
	return models.OrderItem{
		ProductID: item.ProductID,
		Title:     title,
		Price:     item.Price,
		Quantity:  quantity,
		Image:     item.Image,
	}
}

// buildStatusNotification derives the customer-facing message and category
// for a status change. trackingNumber is the value supplied with this
// update, not the stored one, so the shipped message mentions tracking only
// when this update carried it.
func buildStatusNotification(order *models.Order, status models.OrderStatus, comment, trackingNumber string) *models.Notification {
	var message string
	notificationType := models.NotificationOrderStatus

	switch status {
	case models.StatusProcessing:
		message = fmt.Sprintf("Your order #%s is now being processed.", order.ShortID())
		notificationType = models.NotificationOrderUpdate
	case models.StatusShipped:
		message = fmt.Sprintf("Your order #%s has been shipped.", order.ShortID())
		if trackingNumber != "" {
			message += fmt.Sprintf(" Tracking number: %s", trackingNumber)
		}
		notificationType = models.NotificationOrderShipped
	case models.StatusOutForDelivery:
		message = fmt.Sprintf("Your order #%s is out for delivery today!", order.ShortID())
		notificationType = models.NotificationDeliveryUpdate
	case models.StatusDelivered:
		message = fmt.Sprintf("Your order #%s has been delivered.", order.ShortID())
		notificationType = models.NotificationDeliveryUpdate
	case models.StatusCancelled:
		message = fmt.Sprintf("Your order #%s has been cancelled.", order.ShortID())
		notificationType = models.NotificationOrderStatus
	default:
		message = fmt.Sprintf("Your order #%s status has been updated to %s.", order.ShortID(), status)
	}

	if comment != "" {
		message += fmt.Sprintf(" Note: %s", comment)
	}

	return &models.Notification{
		UserID:  order.UserID,
		OrderID: order.ID,
		Message: message,
		Type:    notificationType,
	}
}

// publishEvent sends an order event to RabbitMQ, best effort. Publishing
// never fails the operation that produced the event.
func (s *OrderService) publishEvent(routingKey string, payload map[string]interface{}) {
	if s.mqClient == nil {
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", routingKey, err)
		return
	}
	if err := s.mqClient.Publish(routingKey, body); err != nil {
		log.Printf("Warning: Failed to publish %s event: %v", routingKey, err)
	}
}

// jsonFieldName converts an exported struct field name into the camelCase
// name used on the wire, so validation errors point at the JSON key the
// client actually sent.
func jsonFieldName(field string) string {
	if field == "" {
		return field
	}
	return string(field[0]|0x20) + field[1:]
}
