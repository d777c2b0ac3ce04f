package models

import "time"

// CartItem is one product line inside a cart. A product appears at most
// once per cart; adding it again merges into the existing quantity.
type CartItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CartID    uint      `gorm:"uniqueIndex:idx_cart_items_cart_product;not null" json:"cart_id"`
	ProductID uint      `gorm:"uniqueIndex:idx_cart_items_cart_product;not null" json:"product_id"`
	Quantity  int       `gorm:"not null;default:1" json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName fixes the table name
func (CartItem) TableName() string {
	return "cart_items"
}
