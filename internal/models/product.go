package models

import "time"

// Product catalog entry. Address is a free-text storefront/pickup label
// the supplier side also uses as a sales filter dimension.
type Product struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	SupplierID  uint      `gorm:"index;not null" json:"supplier_id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Price       Money     `gorm:"type:decimal(20,2);not null;default:0" json:"price"`
	ImageURL    string    `json:"image_url"`
	Address     string    `gorm:"index" json:"address"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Supplier *User `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
}

// TableName fixes the table name
func (Product) TableName() string {
	return "products"
}
