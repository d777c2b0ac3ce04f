package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem is one line of a placed order. UnitPrice is a snapshot of
// the product price at placement time and never changes afterwards.
type OrderItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	OrderID   uint      `gorm:"index;not null" json:"order_id"`
	ProductID uint      `gorm:"index;not null" json:"product_id"`
	Quantity  int       `gorm:"not null;default:1" json:"quantity"`
	UnitPrice Money     `gorm:"type:decimal(20,2);not null;default:0" json:"unit_price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName fixes the table name
func (OrderItem) TableName() string {
	return "order_items"
}

// LineTotal is quantity times the snapshot unit price.
func (i *OrderItem) LineTotal() Money {
	return Money{Decimal: i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))}
}
