package productcontroller

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hafiz1379/shopsphere/models"
	"gorm.io/gorm"
)

// UploadDir is where product images land; served statically under /uploads.
var UploadDir = envOr("UPLOAD_DIR", "./uploads/products")

const productPublicPath = "/uploads/products"

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// saveProductImage stores an uploaded image and returns its public URL.
func saveProductImage(c *gin.Context, field string) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(UploadDir, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create upload folder: %v", err)
	}

	ext := filepath.Ext(file.Filename)
	base := strings.TrimSuffix(filepath.Base(file.Filename), ext)
	base = strings.ReplaceAll(base, " ", "_")

	filename := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), base, ext)
	savePath := filepath.Join(UploadDir, filename)

	if err := c.SaveUploadedFile(file, savePath); err != nil {
		return "", fmt.Errorf("failed to save image: %v", err)
	}

	return fmt.Sprintf("%s/%s", productPublicPath, filename), nil
}

// CreateProduct creates a new product with an optional image upload.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Required fields
		name := c.PostForm("name")
		priceStr := c.PostForm("price")
		category := c.PostForm("category")
		if name == "" || priceStr == "" || category == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name, price, and category are required"})
			return
		}

		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}

		// Optional fields
		description := c.PostForm("description")
		brand := c.PostForm("brand")

		var originalPrice float64
		if s := c.PostForm("original_price"); s != "" {
			if op, parseErr := strconv.ParseFloat(s, 64); parseErr == nil {
				originalPrice = op
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid original_price"})
				return
			}
		}

		var stock int
		if s := c.PostForm("stock"); s != "" {
			if n, parseErr := strconv.Atoi(s); parseErr == nil {
				stock = n
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stock"})
				return
			}
		}

		featured := c.PostForm("featured") == "true"

		var imageURL string
		if url, upErr := saveProductImage(c, "image"); upErr == nil {
			imageURL = url
		}

		userID, _ := c.Get("user_id")
		createdBy, _ := userID.(string)

		product := models.Product{
			Name:          name,
			Description:   description,
			Price:         price,
			OriginalPrice: originalPrice,
			Category:      category,
			Brand:         brand,
			Image:         imageURL,
			Stock:         stock,
			Featured:      featured,
			IsActive:      true,
			CreatedBy:     createdBy,
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}
