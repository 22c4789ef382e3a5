package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	rajaongkirControllers "github.com/faukiofficial/Tokokita/controllers/rajaongkir"
	"github.com/faukiofficial/Tokokita/middleware"
)

// SetupRajaOngkirRoutes registers the shipping rate proxy. Auth-gated so the
// upstream quota is not burned by anonymous traffic.
func SetupRajaOngkirRoutes(api *gin.RouterGroup, db *gorm.DB) {
	client := rajaongkirControllers.NewClient()

	raja := api.Group("/rajaongkir", middleware.RequireRoles(db))
	{
		raja.POST("/get-shipping-cost", rajaongkirControllers.GetShippingCostHandler(client))
		raja.GET("/provinces", rajaongkirControllers.GetProvincesHandler(client))
		raja.GET("/cities", rajaongkirControllers.GetCitiesHandler(client))
	}
}
