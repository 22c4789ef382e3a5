package addressControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/faukiofficial/Tokokita/apperrors"
	"github.com/faukiofficial/Tokokita/middleware"
	"github.com/faukiofficial/Tokokita/models"
)

type AddressInput struct {
	RecipientName string           `json:"namaPenerima" binding:"required"`
	PhoneNumber   string           `json:"nomorTelepon" binding:"required"`
	Street        string           `json:"jalan" binding:"required"`
	RTRW          string           `json:"rtrw"`
	Kelurahan     string           `json:"kelurahan" binding:"required"`
	Kecamatan     string           `json:"kecamatan" binding:"required"`
	City          *models.City     `json:"kota" binding:"required"`
	Province      *models.Province `json:"provinsi" binding:"required"`
}

// validateRegions checks the RajaOngkir snapshots carry everything the
// shipping-cost lookup needs.
func validateRegions(city *models.City, province *models.Province) error {
	if province == nil || province.ProvinceID == "" || province.Province == "" {
		return apperrors.New(apperrors.Validation, "Provinsi tidak lengkap.")
	}
	if city == nil || city.CityID == "" || city.CityName == "" || city.Type == "" || city.PostalCode == "" {
		return apperrors.New(apperrors.Validation, "Kota tidak lengkap.")
	}
	return nil
}

// findOwnedAddress scopes the lookup to the requesting user so nobody can
// read or mutate someone else's address book.
func findOwnedAddress(db *gorm.DB, userID uint, addressID string) (*models.Address, error) {
	var address models.Address
	err := db.Where("id = ? AND user_id = ?", addressID, userID).First(&address).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.New(apperrors.NotFound, "Address not found")
	}
	if err != nil {
		return nil, err
	}
	return &address, nil
}

func fail(c *gin.Context, err error) {
	c.JSON(apperrors.Status(err), gin.H{"success": false, "message": err.Error()})
}

// POST /api/address/add
func CreateAddressHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}

		var input AddressInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input: " + err.Error()})
			return
		}
		if err := validateRegions(input.City, input.Province); err != nil {
			fail(c, err)
			return
		}

		address := models.Address{
			UserID:        user.ID,
			RecipientName: input.RecipientName,
			PhoneNumber:   input.PhoneNumber,
			Street:        input.Street,
			RTRW:          input.RTRW,
			Kelurahan:     input.Kelurahan,
			Kecamatan:     input.Kecamatan,
			City:          *input.City,
			Province:      *input.Province,
		}
		if err := db.Create(&address).Error; err != nil {
			fail(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{"success": true, "address": address})
	}
}

// GET /api/address/get
func GetAllAddressesHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}

		var addressList []models.Address
		if err := db.Where("user_id = ?", user.ID).Order("created_at DESC").Find(&addressList).Error; err != nil {
			fail(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "addressList": addressList})
	}
}

// GET /api/address/get/:id
func GetAddressByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}

		address, err := findOwnedAddress(db, user.ID, c.Param("id"))
		if err != nil {
			fail(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "address": address})
	}
}

// PUT /api/address/edit/:id
func UpdateAddressHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}

		var input AddressInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input: " + err.Error()})
			return
		}
		if err := validateRegions(input.City, input.Province); err != nil {
			fail(c, err)
			return
		}

		address, err := findOwnedAddress(db, user.ID, c.Param("id"))
		if err != nil {
			fail(c, err)
			return
		}

		address.RecipientName = input.RecipientName
		address.PhoneNumber = input.PhoneNumber
		address.Street = input.Street
		address.RTRW = input.RTRW
		address.Kelurahan = input.Kelurahan
		address.Kecamatan = input.Kecamatan
		address.City = *input.City
		address.Province = *input.Province

		if err := db.Save(address).Error; err != nil {
			fail(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "address": address})
	}
}

// DELETE /api/address/delete/:id
func DeleteAddressHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}

		address, err := findOwnedAddress(db, user.ID, c.Param("id"))
		if err != nil {
			fail(c, err)
			return
		}

		if err := db.Delete(address).Error; err != nil {
			fail(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Address deleted successfully"})
	}
}
