package entity

import (
	"gorm.io/gorm"
)

type Addon struct {
	gorm.Model
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	IsActive bool   `json:"isActive" gorm:"default:true"`

	MenuItems       []MenuItem       `gorm:"many2many:menu_item_addons;" json:"-"`
	OrderItemAddons []OrderItemAddon `json:"-"`
}
