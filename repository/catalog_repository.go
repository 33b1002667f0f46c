package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

// CatalogRepository is the read side of the catalog. Order creation only
// ever point-reads prices here; it never mutates catalog rows.
type CatalogRepository struct {
	DB *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{DB: db}
}

// Narrow read used for price snapshotting.
func (r *CatalogRepository) GetMenuItem(id uint) (entity.MenuItem, error) {
	var m entity.MenuItem
	err := r.DB.Select("id, name, price, is_available").First(&m, id).Error
	return m, err
}

func (r *CatalogRepository) GetAddon(id uint) (entity.Addon, error) {
	var a entity.Addon
	err := r.DB.Select("id, name, price, is_active").First(&a, id).Error
	return a, err
}

func (r *CatalogRepository) ListActiveCategories() ([]entity.Category, error) {
	var cats []entity.Category
	err := r.DB.Where("is_active = ?", true).Order("name").Find(&cats).Error
	return cats, err
}

func (r *CatalogRepository) ListAvailableMenuItems() ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Preload("Addons", "is_active = ?", true).
		Where("is_available = ?", true).
		Order("name").Find(&items).Error
	return items, err
}

// Compact list for the external bot: id, name, price only.
type MenuEntry struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

func (r *CatalogRepository) ListMenuEntries() ([]MenuEntry, error) {
	var out []MenuEntry
	err := r.DB.Model(&entity.MenuItem{}).
		Select("id, name, price").
		Order("name").Scan(&out).Error
	return out, err
}
