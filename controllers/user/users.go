package userControllers

import (
	"errors"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/faukiofficial/Tokokita/apperrors"
	"github.com/faukiofficial/Tokokita/auth"
	"github.com/faukiofficial/Tokokita/config"
	"github.com/faukiofficial/Tokokita/middleware"
	"github.com/faukiofficial/Tokokita/models"
)

const bcryptCost = 12

type RegisterInput struct {
	FullName    string `json:"fullName" binding:"required"`
	UserName    string `json:"userName" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Password    string `json:"password" binding:"required,min=6"`
}

type LoginInput struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

func isImageFilename(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpeg", ".jpg", ".png", ".gif", ".svg", ".webp":
		return true
	}
	return false
}

func fail(c *gin.Context, err error) {
	c.JSON(apperrors.Status(err), gin.H{"success": false, "message": err.Error()})
}

// Register creates the account after checking both unique identities, so the
// caller learns which one collided.
func Register(db *gorm.DB, input RegisterInput) (*models.User, error) {
	var existing models.User
	err := db.Where("email = ? OR user_name = ?", input.Email, input.UserName).First(&existing).Error
	if err == nil {
		if existing.Email == input.Email {
			return nil, apperrors.New(apperrors.Conflict, "Email already used.")
		}
		return nil, apperrors.New(apperrors.Conflict, "Username already used.")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		FullName:    input.FullName,
		UserName:    input.UserName,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
		Password:    string(hashed),
		Role:        models.RoleUser,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Login resolves the identifier as an email when it contains '@', otherwise
// as a username. Both unknown user and wrong password answer the same
// message.
func Login(db *gorm.DB, identifier, password string) (*models.User, error) {
	column := "user_name"
	if strings.Contains(identifier, "@") {
		column = "email"
	}

	var user models.User
	err := db.Preload("Addresses").Where(column+" = ?", identifier).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.New(apperrors.NotFound, "Invalid user or password")
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperrors.New(apperrors.Validation, "Invalid user or password")
	}
	return &user, nil
}

// POST /api/user/register
func RegisterHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input: " + err.Error()})
			return
		}

		user, err := Register(db, input)
		if err != nil {
			fail(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Register Successfully.", "user": user})
	}
}

// POST /api/user/login
func LoginHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input: " + err.Error()})
			return
		}

		user, err := Login(db, input.Identifier, input.Password)
		if err != nil {
			fail(c, err)
			return
		}

		token, err := auth.GenerateToken(user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Login Failed"})
			return
		}
		auth.SetAuthCookie(c, token)

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Login Successfully", "user": user})
	}
}

// POST /api/user/logout
func LogoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth.ClearAuthCookie(c)
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logout Successfully"})
	}
}

// GET /api/user/check-auth
func CheckAuthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
	}
}

// ownProfileOrAdmin lets users touch only their own account; admins may touch
// any.
func ownProfileOrAdmin(c *gin.Context) (*models.User, uint, bool) {
	current, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
		return nil, 0, false
	}

	targetID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid user id"})
		return nil, 0, false
	}

	if current.Role != models.RoleAdmin && current.ID != uint(targetID) {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Forbidden: Insufficient permissions"})
		return nil, 0, false
	}
	return current, uint(targetID), true
}

// PUT /api/user/edit-profile/:id  (multipart; optional "profilePicture" file)
func EditProfileHandler(db *gorm.DB, images config.ImageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, targetID, ok := ownProfileOrAdmin(c)
		if !ok {
			return
		}

		var user models.User
		if err := db.First(&user, targetID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User tidak ditemukan."})
				return
			}
			fail(c, err)
			return
		}

		if fileHeader, err := c.FormFile("profilePicture"); err == nil {
			if !isImageFilename(fileHeader.Filename) {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Error: Images Only!"})
				return
			}
			file, err := fileHeader.Open()
			if err != nil {
				fail(c, err)
				return
			}
			defer file.Close()

			if user.ProfilePicture.PublicID != "" {
				if err := images.Delete(c.Request.Context(), user.ProfilePicture.PublicID); err != nil {
					fail(c, err)
					return
				}
			}
			url, publicID, err := images.Upload(c.Request.Context(), file)
			if err != nil {
				fail(c, err)
				return
			}
			user.ProfilePicture = models.ProfilePicture{URL: url, PublicID: publicID}
		}

		if fullName := c.PostForm("fullName"); fullName != "" {
			user.FullName = fullName
		}
		if phoneNumber := c.PostForm("phoneNumber"); phoneNumber != "" {
			user.PhoneNumber = phoneNumber
		}
		if email := c.PostForm("email"); email != "" {
			user.Email = email
		}
		if userName := c.PostForm("userName"); userName != "" {
			user.UserName = userName
		}

		if err := db.Save(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Terjadi kesalahan saat memperbarui profil."})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Profil berhasil diperbarui.", "user": user})
	}
}

// DELETE /api/user/delete-profile/:id
func DeleteProfileHandler(db *gorm.DB, images config.ImageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, targetID, ok := ownProfileOrAdmin(c)
		if !ok {
			return
		}

		var user models.User
		if err := db.First(&user, targetID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User tidak ditemukan."})
				return
			}
			fail(c, err)
			return
		}

		if user.ProfilePicture.PublicID != "" {
			if err := images.Delete(c.Request.Context(), user.ProfilePicture.PublicID); err != nil {
				fail(c, err)
				return
			}
		}

		if err := db.Select("Addresses", "Cart").Delete(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Terjadi kesalahan saat menghapus akun."})
			return
		}

		auth.ClearAuthCookie(c)
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Akun berhasil dihapus."})
	}
}
