package productControllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/faukiofficial/Tokokita/models"
)

// POST /api/products/import-excel  (admin)
// Columns: ID, Title, Description, Category, Tags, SalePrice, OriginalPrice,
// Weight, Stock, Images. A filled ID column updates the matching product.
func ImportProductsFromExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Excel file is required"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to parse Excel file"})
			return
		}

		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Excel file is empty or missing header row"})
			return
		}

		sheet := xlFile.Sheets[0]
		createdCount, updatedCount, skippedCount := 0, 0, 0

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]

			get := func(index int) string {
				if index < len(row.Cells) {
					return strings.TrimSpace(row.Cells[index].String())
				}
				return ""
			}

			idStr := get(0)
			title := get(1)
			description := get(2)
			category := get(3)
			tags := splitTags(get(4))
			salePrice, err1 := strconv.ParseFloat(get(5), 64)
			originalPrice, _ := strconv.ParseFloat(get(6), 64)
			weight, err2 := strconv.ParseFloat(get(7), 64)
			stock, err3 := strconv.Atoi(get(8))
			imageURLs := splitTags(get(9))

			if title == "" || category == "" || err1 != nil || err2 != nil || err3 != nil {
				skippedCount++
				continue
			}

			product := models.Product{
				Title:         title,
				Description:   description,
				Category:      category,
				Tags:          tags,
				SalePrice:     salePrice,
				OriginalPrice: originalPrice,
				Weight:        weight,
				Stock:         stock,
				Images:        imageURLs,
			}

			if idStr != "" {
				if id, err := strconv.Atoi(idStr); err == nil {
					var existing models.Product
					if err := db.First(&existing, id).Error; err == nil {
						existing.Title = product.Title
						existing.Description = product.Description
						existing.Category = product.Category
						existing.Tags = product.Tags
						existing.SalePrice = product.SalePrice
						existing.OriginalPrice = product.OriginalPrice
						existing.Weight = product.Weight
						existing.Stock = product.Stock
						if len(product.Images) > 0 {
							existing.Images = product.Images
						}

						if err := db.Save(&existing).Error; err == nil {
							updatedCount++
							continue
						}
						skippedCount++
						continue
					}
				}
			}

			if err := db.Create(&product).Error; err == nil {
				createdCount++
			} else {
				skippedCount++
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"success":       true,
			"message":       "Import completed",
			"created_count": createdCount,
			"updated_count": updatedCount,
			"skipped_count": skippedCount,
		})
	}
}
