package controllers

import (
	"net/http"
	"strings"

	"backend/configs"
	"backend/entity"
	"backend/pkg/resp"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	DB  *gorm.DB
	Cfg *configs.Config
}

func NewAuthController(db *gorm.DB, cfg *configs.Config) *AuthController {
	return &AuthController{DB: db, Cfg: cfg}
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	var staff entity.Staff
	if err := a.DB.Where("email = ?", strings.ToLower(req.Email)).First(&staff).Error; err != nil {
		resp.Unauthorized(c, "invalid credentials")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(staff.Password), []byte(req.Password)); err != nil {
		resp.Unauthorized(c, "invalid credentials")
		return
	}

	token, err := utils.GenerateToken(staff.ID, staff.Role, a.Cfg.JWTSecret, a.Cfg.JWTTTL)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":    true,
		"token": token,
		"staff": gin.H{"id": staff.ID, "email": staff.Email, "name": staff.Name, "role": staff.Role},
	})
}

// GET /auth/me
func (a *AuthController) Me(c *gin.Context) {
	var staff entity.Staff
	if err := a.DB.First(&staff, utils.CurrentStaffID(c)).Error; err != nil {
		resp.BadRequest(c, "staff not found")
		return
	}
	resp.OK(c, gin.H{"id": staff.ID, "email": staff.Email, "name": staff.Name, "role": staff.Role})
}
