package models

import "time"

// Order is a placed purchase. Status moves between "en cours" and
// "livrée"; orders are removed with a hard delete.
type Order struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Status    string    `gorm:"type:varchar(20);not null;default:'en cours';index" json:"status"`
	OrderDate time.Time `gorm:"index;not null" json:"order_date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User  *User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// TableName fixes the table name
func (Order) TableName() string {
	return "orders"
}

// Total sums quantity times the snapshot unit price over all lines.
func (o *Order) Total() Money {
	total := NewMoneyFromFloat(0)
	for _, item := range o.Items {
		total = Money{Decimal: total.Add(item.LineTotal().Decimal)}
	}
	return total
}
