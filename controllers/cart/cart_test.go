package cartControllers

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/faukiofficial/Tokokita/apperrors"
	"github.com/faukiofficial/Tokokita/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "cart.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Product{}, &models.Cart{}, &models.CartItem{},
	))
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, title string, price float64, stock int) models.Product {
	t.Helper()
	product := models.Product{Title: title, Category: "umum", SalePrice: price, Weight: 100, Stock: stock}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func TestAddToCartCreatesCartLazily(t *testing.T) {
	db := openTestDB(t)
	product := seedProduct(t, db, "Kaos Polos", 5000, 10)

	cart, err := AddToCart(db, 1, product.ID, 2)
	require.NoError(t, err)

	assert.Equal(t, uint(1), cart.UserID)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, 10000.0, cart.TotalPrice)
}

func TestAddToCartIsAdditive(t *testing.T) {
	db := openTestDB(t)
	product := seedProduct(t, db, "Kaos Polos", 5000, 10)

	_, err := AddToCart(db, 1, product.ID, 2)
	require.NoError(t, err)
	cart, err := AddToCart(db, 1, product.ID, 3)
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.Equal(t, 25000.0, cart.TotalPrice)
}

func TestAddToCartUnknownProduct(t *testing.T) {
	db := openTestDB(t)

	_, err := AddToCart(db, 1, 999, 1)
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.NotFound))
	assert.EqualError(t, err, "Product does not exist")
}

func TestUpdateCartItemSetsQuantityAbsolutely(t *testing.T) {
	db := openTestDB(t)
	product := seedProduct(t, db, "Kaos Polos", 5000, 10)

	_, err := AddToCart(db, 1, product.ID, 4)
	require.NoError(t, err)
	cart, err := UpdateCartItem(db, 1, product.ID, 2)
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, 10000.0, cart.TotalPrice)
}

func TestUpdateCartItemNotInCart(t *testing.T) {
	db := openTestDB(t)
	product := seedProduct(t, db, "Kaos Polos", 5000, 10)
	other := seedProduct(t, db, "Mug Keramik", 15000, 10)

	_, err := AddToCart(db, 1, product.ID, 1)
	require.NoError(t, err)

	_, err = UpdateCartItem(db, 1, other.ID, 2)
	require.Error(t, err)
	assert.EqualError(t, err, "Product not found in cart")
}

func TestRemoveFromCartIsNoOpForAbsentProduct(t *testing.T) {
	db := openTestDB(t)
	product := seedProduct(t, db, "Kaos Polos", 5000, 10)

	_, err := AddToCart(db, 1, product.ID, 2)
	require.NoError(t, err)

	cart, err := RemoveFromCart(db, 1, 999)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 10000.0, cart.TotalPrice)
}

func TestRemoveFromCartWithoutCartIs404(t *testing.T) {
	db := openTestDB(t)

	_, err := RemoveFromCart(db, 1, 1)
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.NotFound))
	assert.EqualError(t, err, "Cart not found")
}

func TestRemoveFromCartDeletesEntry(t *testing.T) {
	db := openTestDB(t)
	shirt := seedProduct(t, db, "Kaos Polos", 5000, 10)
	mug := seedProduct(t, db, "Mug Keramik", 15000, 10)

	_, err := AddToCart(db, 1, shirt.ID, 2)
	require.NoError(t, err)
	_, err = AddToCart(db, 1, mug.ID, 1)
	require.NoError(t, err)

	cart, err := RemoveFromCart(db, 1, mug.ID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 10000.0, cart.TotalPrice)
}

func TestClearCartKeepsCartRow(t *testing.T) {
	db := openTestDB(t)
	product := seedProduct(t, db, "Kaos Polos", 5000, 10)

	_, err := AddToCart(db, 1, product.ID, 2)
	require.NoError(t, err)

	cart, err := ClearCart(db, 1)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Equal(t, 0.0, cart.TotalPrice)

	// still loadable afterwards
	again, err := loadCart(db, 1)
	require.NoError(t, err)
	assert.Empty(t, again.Items)
}

// The stored total always matches live catalog prices times quantities.
func TestTotalTracksCatalogPrice(t *testing.T) {
	db := openTestDB(t)
	product := seedProduct(t, db, "Kaos Polos", 5000, 10)

	_, err := AddToCart(db, 1, product.ID, 2)
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.Product{}).Where("id = ?", product.ID).
		Update("sale_price", 7500).Error)

	// next mutation recomputes with the new price
	cart, err := AddToCart(db, 1, product.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 22500.0, cart.TotalPrice)
}

func TestCartsAreIsolatedPerUser(t *testing.T) {
	db := openTestDB(t)
	product := seedProduct(t, db, "Kaos Polos", 5000, 10)

	_, err := AddToCart(db, 1, product.ID, 2)
	require.NoError(t, err)
	_, err = AddToCart(db, 2, product.ID, 5)
	require.NoError(t, err)

	first, err := loadCart(db, 1)
	require.NoError(t, err)
	second, err := loadCart(db, 2)
	require.NoError(t, err)

	assert.Equal(t, 10000.0, first.TotalPrice)
	assert.Equal(t, 25000.0, second.TotalPrice)
}
