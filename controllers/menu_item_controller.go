package controllers

import (
	"errors"
	"strconv"

	"backend/entity"
	"backend/pkg/resp"
	"backend/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MenuItemController struct {
	DB      *gorm.DB
	Catalog *repository.CatalogRepository
}

func NewMenuItemController(db *gorm.DB, catalog *repository.CatalogRepository) *MenuItemController {
	return &MenuItemController{DB: db, Catalog: catalog}
}

// ===== Public menu =====

type MenuAddonOut struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}
type MenuItemOut struct {
	ID          uint           `json:"id"`
	CategoryID  uint           `json:"categoryId"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Price       int64          `json:"price"`
	ImageURL    string         `json:"imageUrl"`
	Addons      []MenuAddonOut `json:"addons"`
}

// GET /menu — active categories and available items, the web/kiosk
// cart builds itself from this.
func (ctl *MenuItemController) Menu(c *gin.Context) {
	cats, err := ctl.Catalog.ListActiveCategories()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	items, err := ctl.Catalog.ListAvailableMenuItems()
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	out := make([]MenuItemOut, 0, len(items))
	for _, m := range items {
		mo := MenuItemOut{
			ID: m.ID, CategoryID: m.CategoryID, Name: m.Name,
			Description: m.Description, Price: m.Price, ImageURL: m.ImageURL,
			Addons: make([]MenuAddonOut, 0, len(m.Addons)),
		}
		for _, a := range m.Addons {
			mo.Addons = append(mo.Addons, MenuAddonOut{ID: a.ID, Name: a.Name, Price: a.Price})
		}
		out = append(out, mo)
	}

	resp.OK(c, gin.H{"categories": cats, "menuItems": out})
}

// ===== Admin CRUD =====

type MenuItemIn struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	ImageURL    string `json:"imageUrl"`
	CategoryID  uint   `json:"categoryId"`
	IsAvailable *bool  `json:"isAvailable"`
	AddonIDs    []uint `json:"addonIds"`
}

// GET /admin/menu-items
func (ctl *MenuItemController) List(c *gin.Context) {
	var items []entity.MenuItem
	if err := ctl.DB.Preload("Addons").Order("name").Find(&items).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// POST /admin/menu-items
func (ctl *MenuItemController) Create(c *gin.Context) {
	var in MenuItemIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item := entity.MenuItem{
		Name: in.Name, Description: in.Description, Price: in.Price,
		ImageURL: in.ImageURL, CategoryID: in.CategoryID, IsAvailable: true,
	}
	if in.IsAvailable != nil {
		item.IsAvailable = *in.IsAvailable
	}

	err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&item).Error; err != nil {
			return err
		}
		return ctl.linkAddons(tx, &item, in.AddonIDs)
	})
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, item)
}

// PATCH /admin/menu-items/:id
func (ctl *MenuItemController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var item entity.MenuItem
	if err := ctl.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "menu item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	var in MenuItemIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item.Name = in.Name
	item.Description = in.Description
	item.Price = in.Price
	item.ImageURL = in.ImageURL
	item.CategoryID = in.CategoryID
	if in.IsAvailable != nil {
		item.IsAvailable = *in.IsAvailable
	}

	err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&item).Error; err != nil {
			return err
		}
		if in.AddonIDs != nil {
			if err := tx.Model(&item).Association("Addons").Clear(); err != nil {
				return err
			}
			return ctl.linkAddons(tx, &item, in.AddonIDs)
		}
		return nil
	})
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /admin/menu-items/:id
// Stored orders keep their snapshot prices and names; deleting a menu
// item only removes it from the catalog going forward.
func (ctl *MenuItemController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := ctl.DB.Delete(&entity.MenuItem{}, id).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

func (ctl *MenuItemController) linkAddons(tx *gorm.DB, item *entity.MenuItem, addonIDs []uint) error {
	if len(addonIDs) == 0 {
		return nil
	}
	var addons []entity.Addon
	if err := tx.Find(&addons, addonIDs).Error; err != nil {
		return err
	}
	return tx.Model(item).Association("Addons").Append(&addons)
}
