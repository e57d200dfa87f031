package models

import "gorm.io/gorm"

// Product represents a gift item in the catalog.
type Product struct {
	ID                 string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Title              string  `json:"title" validate:"required,min=3,max=100"`
	Description        string  `json:"description" validate:"omitempty,max=500"`
	Price              float64 `json:"price" validate:"required,gt=0"`
	OriginalPrice      float64 `json:"originalPrice" validate:"omitempty,gte=0"`
	DiscountPercentage float64 `json:"discountPercentage" validate:"gte=0,lte=100"`
	Stock              int     `json:"stock" validate:"gte=0"`
	Category           string  `json:"category" validate:"required"`
	Image              string  `json:"image"`
	Rating             float64 `json:"rating" validate:"gte=0,lte=5"`
	Featured           bool    `json:"featured"`
	IsActive           bool    `json:"isActive"`
	gorm.Model         // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// CurrentPrice returns the effective price after any discount.
func (p *Product) CurrentPrice() float64 {
	if p.DiscountPercentage > 0 {
		return p.Price * (1 - p.DiscountPercentage/100)
	}
	return p.Price
}
