package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/faukiofficial/Tokokita/config"
	orderControllers "github.com/faukiofficial/Tokokita/controllers/order"
	"github.com/faukiofficial/Tokokita/middleware"
	"github.com/faukiofficial/Tokokita/models"
)

// SetupOrderRoutes registers checkout, the order lists, the status state
// machine, and the realtime feed.
func SetupOrderRoutes(api *gin.RouterGroup, db *gorm.DB, images config.ImageService) {
	order := api.Group("/order")
	{
		user := order.Group("", middleware.RequireRoles(db, models.RoleUser))
		{
			user.POST("/checkout", orderControllers.CreateOrderHandler(db))
			user.POST("/upload-payment-proof", orderControllers.UploadPaymentProofHandler(db, images))
		}

		authed := order.Group("", middleware.RequireRoles(db, models.RoleUser, models.RoleAdmin))
		{
			authed.GET("/user-orders", orderControllers.GetUserOrdersHandler(db))
			authed.PUT("/update-status/:orderId", orderControllers.UpdateOrderStatusHandler(db))
		}

		admin := order.Group("", middleware.RequireRoles(db, models.RoleAdmin))
		{
			admin.GET("/all", orderControllers.GetAllOrdersHandler(db))
			admin.GET("/export-excel", orderControllers.ExportOrdersToExcel(db))
			admin.GET("/ws", orderControllers.OrderWebSocketHandler)
		}
	}
}
