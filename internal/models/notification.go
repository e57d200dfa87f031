package models

import "time"

// NotificationType categorizes a notification for the client UI.
type NotificationType string

const (
	NotificationOrderStatus      NotificationType = "order_status"
	NotificationOrderUpdate      NotificationType = "order_update"
	NotificationOrderShipped     NotificationType = "order_shipped"
	NotificationOrderDelivered   NotificationType = "order_delivered"
	NotificationPaymentConfirmed NotificationType = "payment_confirmed"
	NotificationDeliveryUpdate   NotificationType = "delivery_update"
	NotificationGeneral          NotificationType = "general"
)

// Notification is a user-facing record created as a side effect of an order
// status change. It is owned independently of the order: failing to persist
// one must never fail or roll back the order write that triggered it.
type Notification struct {
	ID        string           `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string           `json:"userId" gorm:"index;type:varchar(36)"`
	OrderID   string           `json:"orderId" gorm:"type:varchar(36)"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	IsRead    bool             `json:"isRead"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}
