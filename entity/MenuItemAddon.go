package entity

// Join table Menu Item <-> Addon, registered via SetupJoinTable in main.
type MenuItemAddon struct {
	MenuItemID uint `gorm:"primaryKey" json:"menuItemId"`
	AddonID    uint `gorm:"primaryKey" json:"addonId"`
}
