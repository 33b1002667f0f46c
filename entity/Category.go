package entity

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    bool   `json:"isActive" gorm:"default:true"`

	MenuItems []MenuItem `json:"-"`
}
