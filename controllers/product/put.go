package productControllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/faukiofficial/Tokokita/config"
	"github.com/faukiofficial/Tokokita/models"
)

// publicIDFromURL recovers the Cloudinary public id from a secure URL: last
// path segment without the extension.
func publicIDFromURL(url string) string {
	parts := strings.Split(url, "/")
	last := parts[len(parts)-1]
	if dot := strings.LastIndex(last, "."); dot != -1 {
		last = last[:dot]
	}
	return last
}

func removeStrings(from []string, remove []string) []string {
	drop := make(map[string]bool, len(remove))
	for _, s := range remove {
		drop[s] = true
	}
	var kept []string
	for _, s := range from {
		if !drop[s] {
			kept = append(kept, s)
		}
	}
	return kept
}

// PUT /api/products/:id  (admin, multipart; deletedImages is a JSON array of
// URLs to drop, new files arrive under "images")
func UpdateProduct(db *gorm.DB, images config.ImageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch product"})
			return
		}

		if deletedImages := c.PostForm("deletedImages"); deletedImages != "" {
			var toDelete []string
			if err := json.Unmarshal([]byte(deletedImages), &toDelete); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid deletedImages format"})
				return
			}
			for _, url := range toDelete {
				if err := images.Delete(c.Request.Context(), publicIDFromURL(url)); err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Update Failed"})
					return
				}
			}
			product.Images = removeStrings(product.Images, toDelete)
		}

		if form, err := c.MultipartForm(); err == nil {
			files := form.File["images"]
			if len(product.Images)+len(files) > maxProductImages {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Too many images (max 5)"})
				return
			}
			urls, err := uploadImages(c, images, files)
			if err != nil {
				fail(c, err)
				return
			}
			product.Images = append(product.Images, urls...)
		}

		if title := c.PostForm("title"); title != "" {
			product.Title = title
		}
		if description, ok := c.GetPostForm("description"); ok {
			product.Description = description
		}
		if category := c.PostForm("category"); category != "" {
			product.Category = category
		}
		if tags, ok := c.GetPostForm("tags"); ok {
			product.Tags = splitTags(tags)
		}
		if s := c.PostForm("originalPrice"); s != "" {
			if v, err := strconv.ParseFloat(s, 64); err == nil {
				product.OriginalPrice = v
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid originalPrice"})
				return
			}
		}
		if s := c.PostForm("salePrice"); s != "" {
			if v, err := strconv.ParseFloat(s, 64); err == nil {
				product.SalePrice = v
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid salePrice"})
				return
			}
		}
		if s := c.PostForm("weight"); s != "" {
			if v, err := strconv.ParseFloat(s, 64); err == nil {
				product.Weight = v
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid weight"})
				return
			}
		}
		if s := c.PostForm("stock"); s != "" {
			if v, err := strconv.Atoi(s); err == nil {
				product.Stock = v
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid stock"})
				return
			}
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Update Failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "product": product, "message": "Updated Succesfully"})
	}
}
