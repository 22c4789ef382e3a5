package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/faukiofficial/Tokokita/auth"
	"github.com/faukiofficial/Tokokita/models"
)

const userContextKey = "user"

// RequireRoles resolves the session cookie to a user and enforces the roles
// allowed on the route group. An empty role list means any authenticated
// user.
func RequireRoles(db *gorm.DB, roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(auth.CookieName)
		if err != nil || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized: No token provided"})
			return
		}

		claims, err := auth.ParseToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized: Invalid token"})
			return
		}

		var user models.User
		if err := db.Preload("Addresses").First(&user, claims.UserID).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized: User not found"})
			return
		}

		if !Authorize(&user, roles) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "message": "Forbidden: Insufficient permissions"})
			return
		}

		c.Set(userContextKey, &user)
		c.Next()
	}
}

// Authorize is the single policy check for role-gated routes: allowed when no
// roles are required or the principal holds one of them.
func Authorize(user *models.User, roles []models.Role) bool {
	if len(roles) == 0 {
		return true
	}
	for _, role := range roles {
		if user.Role == role {
			return true
		}
	}
	return false
}

// CurrentUser returns the authenticated user set by RequireRoles.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	val, ok := c.Get(userContextKey)
	if !ok {
		return nil, false
	}
	user, ok := val.(*models.User)
	return user, ok
}
