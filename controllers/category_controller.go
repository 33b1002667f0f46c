package controllers

import (
	"errors"
	"strconv"

	"backend/entity"
	"backend/pkg/resp"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CategoryController struct{ DB *gorm.DB }

func NewCategoryController(db *gorm.DB) *CategoryController { return &CategoryController{DB: db} }

type CategoryIn struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	IsActive    *bool  `json:"isActive"`
}

// GET /admin/categories
func (ctl *CategoryController) List(c *gin.Context) {
	var cats []entity.Category
	if err := ctl.DB.Order("name").Find(&cats).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": cats})
}

// POST /admin/categories
func (ctl *CategoryController) Create(c *gin.Context) {
	var in CategoryIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cat := entity.Category{Name: in.Name, Description: in.Description, IsActive: true}
	if in.IsActive != nil {
		cat.IsActive = *in.IsActive
	}
	if err := ctl.DB.Create(&cat).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, cat)
}

// PATCH /admin/categories/:id
func (ctl *CategoryController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var cat entity.Category
	if err := ctl.DB.First(&cat, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "category not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	var in CategoryIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cat.Name = in.Name
	cat.Description = in.Description
	if in.IsActive != nil {
		cat.IsActive = *in.IsActive
	}
	if err := ctl.DB.Save(&cat).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cat)
}

// DELETE /admin/categories/:id
func (ctl *CategoryController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := ctl.DB.Delete(&entity.Category{}, id).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
