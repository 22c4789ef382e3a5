package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/faukiofficial/Tokokita/config"
	productControllers "github.com/faukiofficial/Tokokita/controllers/product"
	"github.com/faukiofficial/Tokokita/middleware"
	"github.com/faukiofficial/Tokokita/models"
)

// SetupProductRoutes registers the catalog endpoints. Reads are public,
// writes and the excel tooling are admin only.
func SetupProductRoutes(api *gin.RouterGroup, db *gorm.DB, images config.ImageService) {
	products := api.Group("/products")
	{
		products.GET("", productControllers.GetProducts(db))

		admin := products.Group("", middleware.RequireRoles(db, models.RoleAdmin))
		{
			admin.POST("", productControllers.CreateProduct(db, images))
			admin.PUT("/:id", productControllers.UpdateProduct(db, images))
			admin.DELETE("/:id", productControllers.DeleteProduct(db, images))
			admin.GET("/export-excel", productControllers.ExportProductsToExcel(db))
			admin.POST("/import-excel", productControllers.ImportProductsFromExcel(db))
		}

		products.GET("/:id", productControllers.GetProductByID(db))
	}
}
