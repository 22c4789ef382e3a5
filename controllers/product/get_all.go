package productControllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/faukiofficial/Tokokita/models"
)

// sortColumns whitelists the sortable fields; everything else falls back to
// created_at.
var sortColumns = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"title":     "title",
	"salePrice": "sale_price",
	"stock":     "stock",
	"sold":      "sold",
}

// GET /api/products?category=&search=&sortField=&sortDirection=&page=&limit=
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		category := c.Query("category")
		search := c.Query("search")
		sortField := c.DefaultQuery("sortField", "createdAt")
		sortDirection, _ := strconv.Atoi(c.DefaultQuery("sortDirection", "-1"))
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		if limit < 1 {
			limit = 10
		}
		if page < 1 {
			page = 1
		}

		column, ok := sortColumns[sortField]
		if !ok {
			column = "created_at"
		}
		direction := "DESC"
		if sortDirection == 1 {
			direction = "ASC"
		}

		query := db.Model(&models.Product{})
		if category != "" {
			query = query.Where("category = ?", category)
		}
		if search != "" {
			query = query.Where("title ILIKE ?", "%"+search+"%")
		}

		var totalProducts int64
		if err := query.Count(&totalProducts).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch products"})
			return
		}

		var products []models.Product
		if err := query.
			Order(fmt.Sprintf("%s %s", column, direction)).
			Offset((page - 1) * limit).
			Limit(limit).
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch products"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":       true,
			"message":       "Products fetched successfully",
			"products":      products,
			"totalProducts": totalProducts,
		})
	}
}
