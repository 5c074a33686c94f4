package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hafiz1379/shopsphere/models"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// Column layout shared by import and export:
// ID, Name, Description, Price, OriginalPrice, Category, Brand, Stock, Featured, IsActive, Image
const excelColumns = 11

func ImportProductsFromExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse Excel file"})
			return
		}

		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is empty or missing header row"})
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

			name := get(1)
			priceStr := get(3)
			category := get(5)
			if name == "" || priceStr == "" || category == "" {
				skippedCount++
				continue
			}

			price, err := strconv.ParseFloat(priceStr, 64)
			if err != nil {
				skippedCount++
				continue
			}
			originalPrice, _ := strconv.ParseFloat(get(4), 64)
			stock, _ := strconv.Atoi(get(7))

			product := models.Product{
				Name:          name,
				Description:   get(2),
				Price:         price,
				OriginalPrice: originalPrice,
				Category:      category,
				Brand:         get(6),
				Stock:         stock,
				Featured:      strings.EqualFold(get(8), "true"),
				IsActive:      get(9) == "" || strings.EqualFold(get(9), "true"),
				Image:         get(10),
			}

			// Rows with an ID update the existing product; the rest are created
			if idStr := get(0); idStr != "" {
				id, err := strconv.ParseUint(idStr, 10, 64)
				if err != nil {
					skippedCount++
					continue
				}
				var existing models.Product
				if err := db.First(&existing, "id = ?", uint(id)).Error; err != nil {
					skippedCount++
					continue
				}
				product.ID = existing.ID
				product.CreatedBy = existing.CreatedBy
				if err := db.Save(&product).Error; err != nil {
					skippedCount++
					continue
				}
				updatedCount++
				continue
			}

			if err := db.Create(&product).Error; err != nil {
				skippedCount++
				continue
			}
			createdCount++
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Import complete",
			"created": createdCount,
			"updated": updatedCount,
			"skipped": skippedCount,
		})
	}
}
