package configs

import (
	"log"

	"backend/entity"

	"golang.org/x/crypto/bcrypt"
)

// First-run admin account for the kitchen/admin pages.
func SeedAdmin(cfg *Config) error {
	db := DB()
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.Staff{}).Where("email = ?", cfg.AdminEmail).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", cfg.AdminEmail)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	admin := entity.Staff{
		Email:    cfg.AdminEmail,
		Password: string(hash),
		Name:     "Admin",
		Role:     "admin",
	}
	return db.Create(&admin).Error
}

// Small demo catalog so a fresh install has something to order.
func SeedDemoCatalog() error {
	db := DB()

	var mains entity.Category
	db.FirstOrCreate(&mains, entity.Category{Name: "Mains", IsActive: true})
	var drinks entity.Category
	db.FirstOrCreate(&drinks, entity.Category{Name: "Drinks", IsActive: true})

	var cheese entity.Addon
	db.FirstOrCreate(&cheese, entity.Addon{Name: "Extra Cheese", Price: 20, IsActive: true})
	var fries entity.Addon
	db.FirstOrCreate(&fries, entity.Addon{Name: "Fries", Price: 35, IsActive: true})

	var burger entity.MenuItem
	db.FirstOrCreate(&burger, entity.MenuItem{Name: "Classic Burger", Price: 150, CategoryID: mains.ID, IsAvailable: true})
	var cola entity.MenuItem
	db.FirstOrCreate(&cola, entity.MenuItem{Name: "Cola", Price: 25, CategoryID: drinks.ID, IsAvailable: true})

	if err := db.Model(&burger).Association("Addons").Append(&cheese, &fries); err != nil {
		return err
	}
	return nil
}
