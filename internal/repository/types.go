package repository

import (
	"time"

	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/models"
)

// ProductListFilter filters catalog listings.
type ProductListFilter struct {
	Page       int
	PageSize   int
	SupplierID uint
	Search     string
	Address    string
}

// OrderListFilter filters order listings.
type OrderListFilter struct {
	Page     int
	PageSize int
	UserID   uint
	Status   string
	DateFrom *time.Time
	DateTo   *time.Time
}

// SalesFilter scopes the sales evolution query.
type SalesFilter struct {
	SupplierID uint
	Period     string
	ProductID  uint
	Address    string
	DateFrom   *time.Time
	DateTo     *time.Time
}

// SalesBucket is one aggregated point of the sales evolution series.
type SalesBucket struct {
	Bucket   string       `json:"bucket"`
	Quantity int64        `json:"quantity"`
	Revenue  models.Money `json:"revenue"`
}
