package entity

import (
	"gorm.io/gorm"
)

type OrderItemAddon struct {
	gorm.Model
	Quantity     int   `json:"quantity"`
	PriceAtOrder int64 `json:"priceAtOrder"`

	OrderItemID uint      `json:"orderItemId"`
	OrderItem   OrderItem `json:"-"`

	AddonID uint  `json:"addonId"`
	Addon   Addon `json:"-"`
}
