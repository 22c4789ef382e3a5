package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	storeProfileControllers "github.com/faukiofficial/Tokokita/controllers/storeprofile"
	"github.com/faukiofficial/Tokokita/middleware"
	"github.com/faukiofficial/Tokokita/models"
)

// SetupStoreProfileRoutes registers the singleton store identity endpoints.
// The profile is public to read so the shop page can render it.
func SetupStoreProfileRoutes(api *gin.RouterGroup, db *gorm.DB) {
	store := api.Group("/store-profile")
	{
		store.GET("/get", storeProfileControllers.GetStoreProfileHandler(db))

		admin := store.Group("", middleware.RequireRoles(db, models.RoleAdmin))
		{
			admin.POST("/add", storeProfileControllers.CreateStoreProfileHandler(db))
			admin.PUT("/update", storeProfileControllers.UpdateStoreProfileHandler(db))
		}
	}
}
