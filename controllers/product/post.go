package productControllers

import (
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/faukiofficial/Tokokita/apperrors"
	"github.com/faukiofficial/Tokokita/config"
	"github.com/faukiofficial/Tokokita/models"
)

const maxProductImages = 5

func fail(c *gin.Context, err error) {
	c.JSON(apperrors.Status(err), gin.H{"success": false, "message": err.Error()})
}

func isImageFilename(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpeg", ".jpg", ".png", ".gif", ".svg", ".webp":
		return true
	}
	return false
}

// uploadImages pushes each multipart file to Cloudinary and returns the
// secure URLs.
func uploadImages(c *gin.Context, images config.ImageService, files []*multipart.FileHeader) ([]string, error) {
	var urls []string
	for _, fileHeader := range files {
		if !isImageFilename(fileHeader.Filename) {
			return nil, apperrors.New(apperrors.Validation, "Error: Images Only!")
		}
		file, err := fileHeader.Open()
		if err != nil {
			return nil, err
		}
		url, _, err := images.Upload(c.Request.Context(), file)
		file.Close()
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

func splitTags(raw string) []string {
	var tags []string
	for _, tag := range strings.Split(raw, ",") {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// POST /api/products  (admin, multipart with up to 5 images)
func CreateProduct(db *gorm.DB, images config.ImageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		title := c.PostForm("title")
		category := c.PostForm("category")
		salePriceStr := c.PostForm("salePrice")
		weightStr := c.PostForm("weight")
		stockStr := c.PostForm("stock")
		if title == "" || category == "" || salePriceStr == "" || weightStr == "" || stockStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "title, category, salePrice, weight, and stock are required"})
			return
		}

		salePrice, err := strconv.ParseFloat(salePriceStr, 64)
		if err != nil || salePrice < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid salePrice"})
			return
		}
		weight, err := strconv.ParseFloat(weightStr, 64)
		if err != nil || weight < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid weight"})
			return
		}
		stock, err := strconv.Atoi(stockStr)
		if err != nil || stock < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid stock"})
			return
		}

		var originalPrice float64
		if s := c.PostForm("originalPrice"); s != "" {
			if op, parseErr := strconv.ParseFloat(s, 64); parseErr == nil {
				originalPrice = op
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid originalPrice"})
				return
			}
		}

		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid multipart form"})
			return
		}
		files := form.File["images"]
		if len(files) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "At least one image is required"})
			return
		}
		if len(files) > maxProductImages {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Too many images (max 5)"})
			return
		}

		urls, err := uploadImages(c, images, files)
		if err != nil {
			fail(c, err)
			return
		}

		product := models.Product{
			Title:         title,
			Description:   c.PostForm("description"),
			Category:      category,
			Tags:          splitTags(c.PostForm("tags")),
			OriginalPrice: originalPrice,
			SalePrice:     salePrice,
			Weight:        weight,
			Stock:         stock,
			Images:        urls,
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Upload Failed"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"success": true, "product": product, "message": "Uploaded Succesfully"})
	}
}
