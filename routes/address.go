package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	addressControllers "github.com/faukiofficial/Tokokita/controllers/address"
	"github.com/faukiofficial/Tokokita/middleware"
	"github.com/faukiofficial/Tokokita/models"
)

// SetupAddressRoutes registers the per-user address book endpoints.
func SetupAddressRoutes(api *gin.RouterGroup, db *gorm.DB) {
	address := api.Group("/address", middleware.RequireRoles(db, models.RoleUser, models.RoleAdmin))
	{
		address.POST("/add", addressControllers.CreateAddressHandler(db))
		address.GET("/get", addressControllers.GetAllAddressesHandler(db))
		address.GET("/get/:id", addressControllers.GetAddressByIDHandler(db))
		address.PUT("/edit/:id", addressControllers.UpdateAddressHandler(db))
		address.DELETE("/delete/:id", addressControllers.DeleteAddressHandler(db))
	}
}
