package models

import "time"

// AccessToken is the validity record behind one issued bearer token.
// Each login produces its own row; logout deletes only the row of the
// token presented with the request, so other sessions keep working.
type AccessToken struct {
	ID        uint       `gorm:"primarykey" json:"id"`
	TokenID   string     `gorm:"uniqueIndex;not null;type:varchar(64)" json:"-"`
	UserID    uint       `gorm:"index;not null" json:"user_id"`
	Name      string     `gorm:"type:varchar(100);default:'auth_token'" json:"name"`
	ExpiresAt *time.Time `gorm:"index" json:"expires_at"`
	CreatedAt time.Time  `json:"created_at"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}

// TableName fixes the table name
func (AccessToken) TableName() string {
	return "access_tokens"
}
