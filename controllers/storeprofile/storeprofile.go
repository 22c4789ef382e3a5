package storeProfileControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/faukiofficial/Tokokita/apperrors"
	"github.com/faukiofficial/Tokokita/models"
)

type StoreProfileInput struct {
	StoreName   string               `json:"namaToko" binding:"required"`
	PhoneNumber string               `json:"nomorTelepon" binding:"required"`
	Email       string               `json:"email" binding:"required,email"`
	Address     *models.StoreAddress `json:"alamat" binding:"required"`
	SocialMedia *models.SocialMedia  `json:"mediaSosial"`
}

func validateStoreAddress(addr *models.StoreAddress) error {
	if addr == nil || addr.Street == "" || addr.Kelurahan == "" || addr.Kecamatan == "" {
		return apperrors.New(apperrors.Validation, "Data alamat tidak lengkap.")
	}
	if addr.Province.ProvinceID == "" || addr.Province.Province == "" {
		return apperrors.New(apperrors.Validation, "Provinsi tidak lengkap.")
	}
	if addr.City.CityID == "" || addr.City.CityName == "" || addr.City.Type == "" || addr.City.PostalCode == "" {
		return apperrors.New(apperrors.Validation, "Kota tidak lengkap.")
	}
	return nil
}

func fail(c *gin.Context, err error) {
	c.JSON(apperrors.Status(err), gin.H{"success": false, "message": err.Error()})
}

// POST /api/store-profile/add  (admin)
func CreateStoreProfileHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var existing models.StoreProfile
		err := db.First(&existing).Error
		if err == nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Store profile sudah ada. Gunakan update untuk mengubah profil.",
			})
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			fail(c, err)
			return
		}

		var input StoreProfileInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input: " + err.Error()})
			return
		}
		if err := validateStoreAddress(input.Address); err != nil {
			fail(c, err)
			return
		}

		profile := models.StoreProfile{
			StoreName:   input.StoreName,
			PhoneNumber: input.PhoneNumber,
			Email:       input.Email,
			Address:     *input.Address,
		}
		if input.SocialMedia != nil {
			profile.SocialMedia = *input.SocialMedia
		}

		if err := db.Create(&profile).Error; err != nil {
			fail(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"success":      true,
			"message":      "Store profile berhasil dibuat.",
			"storeProfile": profile,
		})
	}
}

// GET /api/store-profile/get  (public)
func GetStoreProfileHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var profile models.StoreProfile
		if err := db.First(&profile).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{
					"success": false,
					"message": "Anda belum menambahkan data store profile.",
				})
				return
			}
			fail(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "storeProfile": profile})
	}
}

// PUT /api/store-profile/update  (admin)
func UpdateStoreProfileHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var profile models.StoreProfile
		if err := db.First(&profile).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Store profile tidak ditemukan."})
				return
			}
			fail(c, err)
			return
		}

		var input struct {
			StoreName   string               `json:"namaToko"`
			PhoneNumber string               `json:"nomorTelepon"`
			Email       string               `json:"email"`
			Address     *models.StoreAddress `json:"alamat"`
			SocialMedia *models.SocialMedia  `json:"mediaSosial"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input: " + err.Error()})
			return
		}

		if input.StoreName != "" {
			profile.StoreName = input.StoreName
		}
		if input.PhoneNumber != "" {
			profile.PhoneNumber = input.PhoneNumber
		}
		if input.Email != "" {
			profile.Email = input.Email
		}
		if input.Address != nil {
			if err := validateStoreAddress(input.Address); err != nil {
				fail(c, err)
				return
			}
			profile.Address = *input.Address
		}
		if input.SocialMedia != nil {
			profile.SocialMedia = *input.SocialMedia
		}

		if err := db.Save(&profile).Error; err != nil {
			fail(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":      true,
			"message":      "Profil toko berhasil diperbarui.",
			"storeProfile": profile,
		})
	}
}
