package cartControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/faukiofficial/Tokokita/apperrors"
	"github.com/faukiofficial/Tokokita/middleware"
	"github.com/faukiofficial/Tokokita/models"
)

type AddToCartInput struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type RemoveFromCartInput struct {
	ProductID uint `json:"productId" binding:"required"`
}

type UpdateCartItemInput struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

// lockCart takes the per-user cart row lock so concurrent mutations cannot
// lose updates. sqlite (tests) has no row locks; its single writer serializes
// anyway.
func lockCart(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

// loadCart returns the user's cart with items resolved against the live
// catalog, most recently touched first.
func loadCart(db *gorm.DB, userID uint) (*models.Cart, error) {
	var cart models.Cart
	err := db.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("cart_items.updated_at DESC")
		}).
		Preload("Items.Product").
		Where("user_id = ?", userID).
		First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.New(apperrors.NotFound, "Cart not found")
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// recalculateTotalPrice recomputes the derived total from current catalog
// prices. Always called inside the mutation transaction.
func recalculateTotalPrice(tx *gorm.DB, cartID uint) error {
	var items []models.CartItem
	if err := tx.Preload("Product").Where("cart_id = ?", cartID).Find(&items).Error; err != nil {
		return err
	}
	return tx.Model(&models.Cart{}).Where("id = ?", cartID).
		Update("total_price", models.CartTotal(items)).Error
}

// AddToCart creates the cart lazily on first use and increments the quantity
// when the product is already present.
func AddToCart(db *gorm.DB, userID, productID uint, quantity int) (*models.Cart, error) {
	if quantity < 1 {
		return nil, apperrors.New(apperrors.Validation, "Quantity must be at least 1")
	}

	var product models.Product
	if err := db.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.NotFound, "Product does not exist")
		}
		return nil, err
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		err := lockCart(tx).Where("user_id = ?", userID).First(&cart).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			cart = models.Cart{UserID: userID}
			if err := tx.Create(&cart).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		var item models.CartItem
		err = tx.Where("cart_id = ? AND product_id = ?", cart.ID, productID).First(&item).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			item = models.CartItem{CartID: cart.ID, ProductID: productID, Quantity: quantity}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			item.Quantity += quantity
			if err := tx.Save(&item).Error; err != nil {
				return err
			}
		}

		return recalculateTotalPrice(tx, cart.ID)
	})
	if err != nil {
		return nil, err
	}
	return loadCart(db, userID)
}

// RemoveFromCart drops the matching entry. A product that is not in the cart
// is a no-op, not an error.
func RemoveFromCart(db *gorm.DB, userID, productID uint) (*models.Cart, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		err := lockCart(tx).Where("user_id = ?", userID).First(&cart).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.New(apperrors.NotFound, "Cart not found")
		}
		if err != nil {
			return err
		}

		if err := tx.Where("cart_id = ? AND product_id = ?", cart.ID, productID).
			Delete(&models.CartItem{}).Error; err != nil {
			return err
		}

		return recalculateTotalPrice(tx, cart.ID)
	})
	if err != nil {
		return nil, err
	}
	return loadCart(db, userID)
}

// UpdateCartItem sets the quantity directly (not additive) for an existing
// entry.
func UpdateCartItem(db *gorm.DB, userID, productID uint, quantity int) (*models.Cart, error) {
	if quantity < 1 {
		return nil, apperrors.New(apperrors.Validation, "Quantity must be at least 1")
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		err := lockCart(tx).Where("user_id = ?", userID).First(&cart).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.New(apperrors.NotFound, "Cart not found")
		}
		if err != nil {
			return err
		}

		var item models.CartItem
		err = tx.Where("cart_id = ? AND product_id = ?", cart.ID, productID).First(&item).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.New(apperrors.NotFound, "Product not found in cart")
		}
		if err != nil {
			return err
		}

		item.Quantity = quantity
		if err := tx.Save(&item).Error; err != nil {
			return err
		}

		return recalculateTotalPrice(tx, cart.ID)
	})
	if err != nil {
		return nil, err
	}
	return loadCart(db, userID)
}

// ClearCart empties the items and zeroes the total. The cart document itself
// survives.
func ClearCart(db *gorm.DB, userID uint) (*models.Cart, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		err := lockCart(tx).Where("user_id = ?", userID).First(&cart).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.New(apperrors.NotFound, "Cart not found")
		}
		if err != nil {
			return err
		}

		if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}

		return tx.Model(&models.Cart{}).Where("id = ?", cart.ID).Update("total_price", 0).Error
	})
	if err != nil {
		return nil, err
	}
	return loadCart(db, userID)
}

func fail(c *gin.Context, err error) {
	c.JSON(apperrors.Status(err), gin.H{"success": false, "message": err.Error()})
}

// GET /api/cart
func GetCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}

		cart, err := loadCart(db, user.ID)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Cart found", "cart": cart})
	}
}

// POST /api/cart/add
func AddToCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}

		var input AddToCartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input: " + err.Error()})
			return
		}

		cart, err := AddToCart(db, user.ID, input.ProductID, input.Quantity)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product added to cart", "cart": cart})
	}
}

// POST /api/cart/remove
func RemoveFromCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}

		var input RemoveFromCartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input: " + err.Error()})
			return
		}

		cart, err := RemoveFromCart(db, user.ID, input.ProductID)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product removed from cart", "cart": cart})
	}
}

// POST /api/cart/update
func UpdateCartItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}

		var input UpdateCartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input: " + err.Error()})
			return
		}

		cart, err := UpdateCartItem(db, user.ID, input.ProductID, input.Quantity)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Cart item updated", "cart": cart})
	}
}

// POST /api/cart/clear
func ClearCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}

		cart, err := ClearCart(db, user.ID)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Cart cleared", "cart": cart})
	}
}
