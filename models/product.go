package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID            uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string  `gorm:"not null;index" json:"name"`
	Description   string  `json:"description"`
	Price         float64 `gorm:"not null" json:"price"`
	OriginalPrice float64 `json:"original_price"`
	Category      string  `gorm:"index" json:"category"`
	Brand         string  `json:"brand"`
	Image         string  `json:"image"`
	Stock         int     `gorm:"default:0" json:"stock"`
	Featured      bool    `gorm:"default:false" json:"featured"`
	IsActive      bool    `gorm:"default:true" json:"is_active"`
	Rating        float64 `gorm:"default:0" json:"rating"`
	NumReviews    int     `gorm:"default:0" json:"num_reviews"`
	Reviews       []Review `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"reviews,omitempty"`
	CreatedBy     string   `json:"created_by"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProductID uint      `gorm:"index" json:"product_id"`
	UserID    string    `gorm:"index" json:"user_id"`
	Name      string    `json:"name"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}
