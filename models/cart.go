package models

import "time"

type Cart struct {
	ID         uint       `gorm:"primaryKey" json:"_id"`
	UserID     uint       `gorm:"uniqueIndex;not null" json:"user"` // one cart per user
	Items      []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	TotalPrice float64    `gorm:"not null;default:0" json:"totalPrice"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

type CartItem struct {
	ID        uint      `gorm:"primaryKey" json:"_id"`
	CartID    uint      `gorm:"index:idx_cart_product,unique;not null" json:"-"`
	ProductID uint      `gorm:"index:idx_cart_product,unique;not null" json:"-"`
	Product   Product   `gorm:"foreignKey:ProductID" json:"product"`
	Quantity  int       `gorm:"not null;default:1" json:"quantity"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CartTotal derives the authoritative total from the resolved items. The cart
// shows live catalog pricing; a product that left the catalog contributes
// nothing.
func CartTotal(items []CartItem) float64 {
	var total float64
	for _, item := range items {
		if item.Product.ID == 0 {
			continue
		}
		total += item.Product.SalePrice * float64(item.Quantity)
	}
	return total
}
