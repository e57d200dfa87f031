package models

import "time"

// OrderStatus is the lifecycle status of an order.
type OrderStatus string

const (
	StatusPending        OrderStatus = "Pending"
	StatusProcessing     OrderStatus = "Processing"
	StatusShipped        OrderStatus = "Shipped"
	StatusOutForDelivery OrderStatus = "Out for Delivery"
	StatusDelivered      OrderStatus = "Delivered"
	StatusCancelled      OrderStatus = "Cancelled"
)

// ValidOrderStatuses lists every accepted status value, in display order.
// The set is deliberately flat: any status may follow any other, matching
// how the storefront's admin panel drives updates.
var ValidOrderStatuses = []OrderStatus{
	StatusPending,
	StatusProcessing,
	StatusShipped,
	StatusOutForDelivery,
	StatusDelivered,
	StatusCancelled,
}

// IsValid reports whether s is a member of the status enumeration.
func (s OrderStatus) IsValid() bool {
	for _, valid := range ValidOrderStatuses {
		if s == valid {
			return true
		}
	}
	return false
}

// PaymentMethod is how the customer paid for an order.
type PaymentMethod string

const (
	PaymentCard   PaymentMethod = "card"
	PaymentUPI    PaymentMethod = "upi"
	PaymentCOD    PaymentMethod = "cod"
	PaymentWallet PaymentMethod = "wallet"
)

// OrderItem is a line item within an order. Title, price and image are
// snapshots taken at checkout so the order stays accurate even if the
// catalog entry is edited or deleted later.
type OrderItem struct {
	ProductID string  `json:"product,omitempty"` // Empty if the product was deleted or never catalogued
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image,omitempty"`
}

// StatusUpdate is one immutable entry in an order's status history.
type StatusUpdate struct {
	Status    OrderStatus `json:"status"`
	Date      time.Time   `json:"date"`
	Time      string      `json:"time"` // Human-readable time of day, e.g. "3:04:05 PM"
	Comments  string      `json:"comments,omitempty"`
	UpdatedBy string      `json:"updatedBy,omitempty"` // Acting user ID; empty for system/public updates
}

// Order represents a customer purchase. Items and StatusUpdates are stored
// as JSON columns so the whole order persists as a single row and a Save is
// one atomic write, like the document store this schema grew out of.
type Order struct {
	ID             string         `json:"id" gorm:"primaryKey;type:varchar(36)"`
	CustomerName   string         `json:"customerName"`
	Email          string         `json:"email"`
	Address        string         `json:"address"`
	Phone          string         `json:"phone"`
	Items          []OrderItem    `json:"items" gorm:"serializer:json"`
	Total          float64        `json:"total"`
	Status         OrderStatus    `json:"status"`
	StatusUpdates  []StatusUpdate `json:"statusUpdates" gorm:"serializer:json"`
	TrackingNumber string         `json:"trackingNumber,omitempty"`
	PaymentMethod  PaymentMethod  `json:"paymentMethod"`
	UserID         string         `json:"userId,omitempty" gorm:"index;type:varchar(36)"` // Empty for guest checkout
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

// ShortID returns the last six characters of the order ID, the short form
// shown to customers in notifications ("Your order #a1b2c3 ...").
func (o *Order) ShortID() string {
	if len(o.ID) <= 6 {
		return o.ID
	}
	return o.ID[len(o.ID)-6:]
}
