package routes

import (
	"backend/configs"
	"backend/controllers"
	"backend/middlewares"
	"backend/repository"
	"backend/services"
	"backend/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, hub *ws.OrderHub) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true, "displays": hub.ClientCount()}) })

	// Repositories & services
	orderRepo := repository.NewOrderRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	orderSvc := services.NewOrderService(db, orderRepo, catalogRepo, hub)

	// Controllers
	authCtrl := controllers.NewAuthController(db, cfg)
	orderCtrl := controllers.NewOrderController(orderSvc)
	apiCtrl := controllers.NewApiOrderController(orderSvc, orderRepo, catalogRepo)
	menuCtrl := controllers.NewMenuItemController(db, catalogRepo)
	catCtrl := controllers.NewCategoryController(db)
	addonCtrl := controllers.NewAddonController(db)

	// Auth
	r.POST("/auth/login", authCtrl.Login)
	r.GET("/auth/me", middlewares.AuthMiddleware(), authCtrl.Me)

	// Public menu + checkout
	r.GET("/menu", menuCtrl.Menu)
	r.POST("/orders", orderCtrl.Create)

	// External bot channel
	api := r.Group("/api/orders")
	{
		api.POST("/create-external", apiCtrl.CreateExternal)
		api.GET("/menu", apiCtrl.Menu)
		api.GET("/:id/status", apiCtrl.OrderStatus)
	}

	// Staff (kitchen displays, counter)
	staff := r.Group("/orders", middlewares.AuthMiddleware("staff", "admin"))
	{
		staff.GET("", orderCtrl.List)
		staff.GET("/kitchen", orderCtrl.Kitchen)
		staff.GET("/:id", orderCtrl.Detail)
		staff.POST("/status", orderCtrl.UpdateStatus)
		staff.POST("/:id/payment-complete", orderCtrl.PaymentComplete)
	}

	// Fan-out channel (token via query or header)
	r.GET("/ws/kitchen", middlewares.WSAuthMiddleware(cfg.JWTSecret), hub.HandleWebSocket)

	// Admin catalog management
	admin := r.Group("/admin", middlewares.AuthMiddleware("admin"))
	{
		admin.GET("/categories", catCtrl.List)
		admin.POST("/categories", catCtrl.Create)
		admin.PATCH("/categories/:id", catCtrl.Update)
		admin.DELETE("/categories/:id", catCtrl.Delete)

		admin.GET("/menu-items", menuCtrl.List)
		admin.POST("/menu-items", menuCtrl.Create)
		admin.PATCH("/menu-items/:id", menuCtrl.Update)
		admin.DELETE("/menu-items/:id", menuCtrl.Delete)

		admin.GET("/addons", addonCtrl.List)
		admin.POST("/addons", addonCtrl.Create)
		admin.PATCH("/addons/:id", addonCtrl.Update)
		admin.DELETE("/addons/:id", addonCtrl.Delete)
	}
}
