package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	ImageURL    string `json:"imageUrl"`
	IsAvailable bool   `json:"isAvailable" gorm:"default:true"`

	CategoryID uint     `json:"categoryId"`
	Category   Category `json:"-"` // preload only for catalog detail

	Addons     []Addon     `gorm:"many2many:menu_item_addons;" json:"-"`
	OrderItems []OrderItem `json:"-"`
}
