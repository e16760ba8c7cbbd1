package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cartelroasters/storefront/assistant"
	"github.com/cartelroasters/storefront/catalog"
	"github.com/cartelroasters/storefront/config"
	"github.com/cartelroasters/storefront/controllers"
	"github.com/cartelroasters/storefront/inventory"
	"github.com/cartelroasters/storefront/live"
	"github.com/cartelroasters/storefront/middlewares"
	"github.com/cartelroasters/storefront/order"
	"github.com/cartelroasters/storefront/storage"
	"github.com/cartelroasters/storefront/utils"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	store := storage.NewGormStore(db)
	if err := store.Migrate(); err != nil {
		utils.ErrorLogger.Fatalf("Failed to migrate store: %v", err)
	}

	inventoryService := inventory.NewService(store)
	registry := order.NewRegistry()

	// Inventory writes fan out to connected storefront tabs. The hub
	// skips the writer's own session.
	for _, branch := range catalog.Branches() {
		store.Subscribe(inventory.StorageKey(branch.ID), "live-hub", func(key, writerID string) {
			live.NotifyKey(key, writerID)
		})
	}

	sessionController := controllers.NewSessionController(registry)
	menuController := controllers.NewMenuController(inventoryService)
	trayController := controllers.NewTrayController(registry, inventoryService)
	adminController := controllers.NewAdminController(inventoryService, config.AdminAccessCode())
	chatController := controllers.NewChatController(registry, assistant.GetBridge())
	loginLimiter := middlewares.NewLoginRateLimiter()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	r.GET("/branches", menuController.GetBranches)
	r.GET("/menus", menuController.GetMenu)

	r.POST("/session", sessionController.CreateSession)
	r.POST("/session/branch", sessionController.SelectBranch)

	r.POST("/tray/items", trayController.AddItem)
	r.PATCH("/tray/customize", trayController.UpdateSelection)
	r.POST("/tray/confirm", trayController.ConfirmSelection)
	r.POST("/tray/cancel", trayController.CancelSelection)
	r.GET("/tray", trayController.GetTray)
	r.DELETE("/tray/:index", trayController.RemoveLine)
	r.POST("/tray/close", trayController.CloseTray)

	r.POST("/chat", chatController.PostChat)
	r.GET("/chat", chatController.GetTranscript)

	r.GET("/live/ws", controllers.LiveHandler)

	r.POST("/admin/login", loginLimiter.Limit(), adminController.Login)

	admin := r.Group("/admin")
	admin.Use(middlewares.AdminAuthMiddleware())
	{
		admin.GET("/inventory", adminController.ListInventory)
		admin.POST("/inventory", adminController.AddItem)
		admin.POST("/inventory/:id/toggle-active", adminController.ToggleActive)
		admin.POST("/inventory/:id/toggle-sold-out", adminController.ToggleSoldOut)
		admin.PATCH("/inventory/:id/price", adminController.SetPrice)
		admin.DELETE("/inventory/:id", adminController.DeleteItem)
		admin.POST("/report/end-of-day", adminController.EndOfDay)
	}

	return r
}
