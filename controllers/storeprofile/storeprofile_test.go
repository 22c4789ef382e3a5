package storeProfileControllers

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/faukiofficial/Tokokita/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "store.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.StoreProfile{}))
	return db
}

const profileBody = `{
	"namaToko": "Tokokita",
	"nomorTelepon": "08123456789",
	"email": "halo@tokokita.id",
	"alamat": {
		"jalan": "Jl. Merdeka No. 1",
		"kelurahan": "Gambir",
		"kecamatan": "Gambir",
		"kota": {"city_id": "152", "city_name": "Jakarta Pusat", "type": "Kota", "postal_code": "10110", "province_id": "6"},
		"provinsi": {"province_id": "6", "province": "DKI Jakarta"}
	}
}`

func postJSON(t *testing.T, handler gin.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	handler(c)
	return w
}

func TestCreateStoreProfileIsSingleton(t *testing.T) {
	db := openTestDB(t)
	handler := CreateStoreProfileHandler(db)

	w := postJSON(t, handler, profileBody)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, handler, profileBody)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Store profile sudah ada. Gunakan update untuk mengubah profil.")

	var count int64
	require.NoError(t, db.Model(&models.StoreProfile{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCreateStoreProfileValidatesRegions(t *testing.T) {
	db := openTestDB(t)
	handler := CreateStoreProfileHandler(db)

	body := strings.Replace(profileBody, `"province_id": "6", "province": "DKI Jakarta"`, `"province_id": "", "province": ""`, 1)
	w := postJSON(t, handler, body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Provinsi tidak lengkap.")
}

func TestGetStoreProfileEmptyIs404(t *testing.T) {
	db := openTestDB(t)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	GetStoreProfileHandler(db)(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Anda belum menambahkan data store profile.")
}
