package models

import "time"

// Cart holds the pending selection for one user. One cart per user,
// created lazily on first add.
type Cart struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Items []CartItem `gorm:"foreignKey:CartID" json:"items,omitempty"`
}

// TableName fixes the table name
func (Cart) TableName() string {
	return "carts"
}
