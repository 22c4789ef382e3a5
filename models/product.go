package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID            uint           `gorm:"primaryKey;autoIncrement" json:"_id"`
	Title         string         `gorm:"not null" json:"title"`
	Description   string         `json:"description"`
	Category      string         `gorm:"not null;index" json:"category"`
	Tags          []string       `gorm:"serializer:json" json:"tags"`
	OriginalPrice float64        `json:"originalPrice"`
	SalePrice     float64        `gorm:"not null" json:"salePrice"`
	Sold          int            `gorm:"not null;default:0" json:"sold"`
	Weight        float64        `gorm:"not null" json:"weight"`
	Stock         int            `gorm:"not null" json:"stock"`
	Images        []string       `gorm:"serializer:json" json:"images"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
