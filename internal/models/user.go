package models

import (
	"time"

	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/constants"
)

// Role is the closed set of account roles. Authorization decisions go
// through the predicates below instead of comparing raw strings at call
// sites.
type Role string

const (
	RoleClient   Role = constants.RoleClient
	RoleSupplier Role = constants.RoleSupplier
	RoleAdmin    Role = constants.RoleAdmin
)

// IsAdmin reports whether the role is the admin role.
func (r Role) IsAdmin() bool { return r == RoleAdmin }

// IsSupplier reports whether the role is the supplier role.
func (r Role) IsSupplier() bool { return r == RoleSupplier }

// IsClient reports whether the role is the client role.
func (r Role) IsClient() bool { return r == RoleClient }

// CanManageCatalog reports whether the role may mutate products at all.
// Ownership of individual products is checked separately.
func (r Role) CanManageCatalog() bool { return r == RoleSupplier || r == RoleAdmin }

// CanManageAnyOrder reports whether the role may act on every order.
// A supplier is deliberately NOT included: its authority over an order
// derives from the inclusion rule, not from the role itself.
func (r Role) CanManageAnyOrder() bool { return r == RoleAdmin }

// User account record
type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         Role      `gorm:"type:varchar(20);not null;default:'client';index" json:"role"`
	ProfileImage *string   `json:"profile_image"`
	CreatedAt    time.Time `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName fixes the table name
func (User) TableName() string {
	return "users"
}
