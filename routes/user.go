package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/faukiofficial/Tokokita/config"
	userControllers "github.com/faukiofficial/Tokokita/controllers/user"
	"github.com/faukiofficial/Tokokita/middleware"
)

// SetupUserRoutes registers registration, session, and profile endpoints.
func SetupUserRoutes(api *gin.RouterGroup, db *gorm.DB, images config.ImageService) {
	user := api.Group("/user")
	{
		user.POST("/register", userControllers.RegisterHandler(db))
		user.POST("/login", userControllers.LoginHandler(db))
		user.POST("/logout", userControllers.LogoutHandler())

		authed := user.Group("", middleware.RequireRoles(db))
		{
			authed.GET("/check-auth", userControllers.CheckAuthHandler())
			authed.PUT("/edit-profile/:id", userControllers.EditProfileHandler(db, images))
			authed.DELETE("/delete-profile/:id", userControllers.DeleteProfileHandler(db, images))
		}
	}
}
