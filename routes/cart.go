package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/faukiofficial/Tokokita/controllers/cart"
	"github.com/faukiofficial/Tokokita/middleware"
	"github.com/faukiofficial/Tokokita/models"
)

// SetupCartRoutes registers the per-user shopping cart endpoints.
func SetupCartRoutes(api *gin.RouterGroup, db *gorm.DB) {
	cart := api.Group("/cart", middleware.RequireRoles(db, models.RoleUser))
	{
		cart.GET("", cartControllers.GetCartHandler(db))
		cart.POST("/add", cartControllers.AddToCartHandler(db))
		cart.POST("/remove", cartControllers.RemoveFromCartHandler(db))
		cart.POST("/update", cartControllers.UpdateCartItemHandler(db))
		cart.POST("/clear", cartControllers.ClearCartHandler(db))
	}
}
