package controllers

import (
	"errors"
	"strconv"

	"backend/entity"
	"backend/pkg/resp"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AddonController struct{ DB *gorm.DB }

func NewAddonController(db *gorm.DB) *AddonController { return &AddonController{DB: db} }

type AddonIn struct {
	Name     string `json:"name" binding:"required"`
	Price    int64  `json:"price"`
	IsActive *bool  `json:"isActive"`
}

// GET /admin/addons
func (ctl *AddonController) List(c *gin.Context) {
	var addons []entity.Addon
	if err := ctl.DB.Order("name").Find(&addons).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": addons})
}

// POST /admin/addons
func (ctl *AddonController) Create(c *gin.Context) {
	var in AddonIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	addon := entity.Addon{Name: in.Name, Price: in.Price, IsActive: true}
	if in.IsActive != nil {
		addon.IsActive = *in.IsActive
	}
	if err := ctl.DB.Create(&addon).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, addon)
}

// PATCH /admin/addons/:id
// Editing a price here never touches stored order lines; those carry
// their own snapshot.
func (ctl *AddonController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var addon entity.Addon
	if err := ctl.DB.First(&addon, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "addon not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	var in AddonIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	addon.Name = in.Name
	addon.Price = in.Price
	if in.IsActive != nil {
		addon.IsActive = *in.IsActive
	}
	if err := ctl.DB.Save(&addon).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, addon)
}

// DELETE /admin/addons/:id
func (ctl *AddonController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := ctl.DB.Delete(&entity.Addon{}, id).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
