package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCartTotal(t *testing.T) {
	shirt := Product{ID: 1, Title: "Kaos Polos", SalePrice: 5000}
	mug := Product{ID: 2, Title: "Mug Keramik", SalePrice: 15000}

	items := []CartItem{
		{ProductID: shirt.ID, Product: shirt, Quantity: 2},
		{ProductID: mug.ID, Product: mug, Quantity: 1},
	}
	assert.Equal(t, 25000.0, CartTotal(items))
}

func TestCartTotalEmpty(t *testing.T) {
	assert.Equal(t, 0.0, CartTotal(nil))
}

// A product removed from the catalog resolves to a zero-value Product and
// contributes nothing.
func TestCartTotalSkipsMissingProducts(t *testing.T) {
	items := []CartItem{
		{ProductID: 99, Product: Product{}, Quantity: 3},
		{ProductID: 1, Product: Product{ID: 1, SalePrice: 1000}, Quantity: 2},
	}
	assert.Equal(t, 2000.0, CartTotal(items))
}
