package entity

import (
	"gorm.io/gorm"
)

// PriceAtOrder is a snapshot of the catalog price at creation time.
// Later catalog edits must never change a stored line.
type OrderItem struct {
	gorm.Model
	Quantity     int   `json:"quantity"`
	PriceAtOrder int64 `json:"priceAtOrder"`
	LineTotal    int64 `json:"lineTotal"`

	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"` // preload when the display needs the name

	Addons []OrderItemAddon `json:"-"`
}
