package models

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openAddressDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "address.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Address{}))
	return db
}

func TestAddressRejectsProvinceMismatch(t *testing.T) {
	db := openAddressDB(t)

	address := Address{
		UserID:        1,
		RecipientName: "Budi Santoso",
		PhoneNumber:   "08123456789",
		Street:        "Jl. Merdeka No. 1",
		Kelurahan:     "Gambir",
		Kecamatan:     "Gambir",
		City:          City{CityID: "152", CityName: "Jakarta Pusat", Type: "Kota", PostalCode: "10110", ProvinceID: "6"},
		Province:      Province{ProvinceID: "9", Province: "Jawa Barat"},
	}

	err := db.Create(&address).Error
	require.Error(t, err)
	assert.EqualError(t, err, "province_id pada kota tidak cocok dengan province_id pada provinsi.")
}

func TestAddressAcceptsMatchingProvince(t *testing.T) {
	db := openAddressDB(t)

	address := Address{
		UserID:        1,
		RecipientName: "Budi Santoso",
		PhoneNumber:   "08123456789",
		Street:        "Jl. Merdeka No. 1",
		Kelurahan:     "Gambir",
		Kecamatan:     "Gambir",
		City:          City{CityID: "152", CityName: "Jakarta Pusat", Type: "Kota", PostalCode: "10110", ProvinceID: "6"},
		Province:      Province{ProvinceID: "6", Province: "DKI Jakarta"},
	}

	require.NoError(t, db.Create(&address).Error)

	var reloaded Address
	require.NoError(t, db.First(&reloaded, address.ID).Error)
	assert.Equal(t, "Jakarta Pusat", reloaded.City.CityName)
	assert.Equal(t, "DKI Jakarta", reloaded.Province.Province)
}
