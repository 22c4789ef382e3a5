package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/faukiofficial/Tokokita/config"
)

// SetupRoutes is the single entry point that wires up every route group
// under /api.
func SetupRoutes(r *gin.Engine, db *gorm.DB, images config.ImageService) {
	api := r.Group("/api")

	SetupProductRoutes(api, db, images)
	SetupUserRoutes(api, db, images)
	SetupCartRoutes(api, db)
	SetupAddressRoutes(api, db)
	SetupStoreProfileRoutes(api, db)
	SetupOrderRoutes(api, db, images)
	SetupRajaOngkirRoutes(api, db)
}
