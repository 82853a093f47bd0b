package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/minsmanse/bar/controllers"
	"github.com/minsmanse/bar/repository"
	"github.com/minsmanse/bar/services"
	"github.com/minsmanse/bar/ws"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, hub *ws.OrderHub) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	orderRepo := repository.NewOrderRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	ingRepo := repository.NewIngredientRepository(db)

	// Services (the hub is the injected order notifier)
	orderSvc := services.NewOrderService(orderRepo, menuRepo, hub)
	menuSvc := services.NewMenuService(menuRepo, ingRepo)
	ingSvc := services.NewIngredientService(ingRepo)

	// Controllers
	orderCtrl := controllers.NewOrderController(orderSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	ingCtrl := controllers.NewIngredientController(ingSvc)

	// Orders
	r.GET("/orders", orderCtrl.List)
	r.POST("/orders", orderCtrl.Create)
	r.POST("/orders/batch", orderCtrl.Batch)
	r.PUT("/orders/:id/status", orderCtrl.UpdateStatus)

	// Menu
	r.GET("/menu", menuCtrl.List)
	r.POST("/menu", menuCtrl.Create)

	// Ingredients
	r.GET("/ingredients", ingCtrl.List)
	r.POST("/ingredients", ingCtrl.Create)
	r.DELETE("/ingredients/:id", ingCtrl.Delete)

	// Realtime order feed
	r.GET("/ws/orders", hub.HandleWebSocket)
}
