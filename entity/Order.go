package entity

import (
	"gorm.io/gorm"
)

// Order and its items/addons are created in one transaction and never
// partially persisted. TotalAmount is fixed once the creation commits.
type Order struct {
	gorm.Model
	CustomerName  string        `json:"customerName"`
	OrderType     OrderType     `json:"orderType"`
	Status        OrderStatus   `json:"status"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	TotalAmount   int64         `json:"totalAmount"`
	FromWhatsapp  bool          `json:"fromWhatsapp"`

	// preload only for detail/snapshot
	Items []OrderItem `json:"-"`
}
