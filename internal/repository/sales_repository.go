package repository

import (
	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/models"

	"gorm.io/gorm"
)

// SalesRepository aggregates the sales evolution series for suppliers.
type SalesRepository interface {
	Evolution(filter SalesFilter) ([]SalesBucket, error)
	StatusCounts(supplierID uint) (map[string]int64, error)
}

// GormSalesRepository is the GORM implementation.
type GormSalesRepository struct {
	db *gorm.DB
}

// NewSalesRepository creates the sales repository.
func NewSalesRepository(db *gorm.DB) *GormSalesRepository {
	return &GormSalesRepository{db: db}
}

// Evolution returns revenue and quantity per period bucket for the
// supplier's order lines, ascending by bucket key. Revenue is computed
// from the snapshot unit price, not the current product price.
func (r *GormSalesRepository) Evolution(filter SalesFilter) ([]SalesBucket, error) {
	bucketExpr := salesBucketExpr(r.db, filter.Period)

	query := r.db.Model(&models.OrderItem{}).
		Select(bucketExpr+" AS bucket, SUM(order_items.quantity) AS quantity, SUM(order_items.quantity * order_items.unit_price) AS revenue").
		Joins("JOIN products ON products.id = order_items.product_id").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("products.supplier_id = ?", filter.SupplierID)

	if filter.ProductID != 0 {
		query = query.Where("order_items.product_id = ?", filter.ProductID)
	}
	if filter.Address != "" {
		query = query.Where("products.address = ?", filter.Address)
	}
	if filter.DateFrom != nil {
		query = query.Where("orders.order_date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("orders.order_date <= ?", *filter.DateTo)
	}

	var buckets []SalesBucket
	err := query.Group(bucketExpr).Order("bucket ASC").Scan(&buckets).Error
	if err != nil {
		return nil, err
	}
	return buckets, nil
}

// StatusCounts returns order counts per status over orders containing
// at least one of the supplier's products.
func (r *GormSalesRepository) StatusCounts(supplierID uint) (map[string]int64, error) {
	type row struct {
		Status string
		Count  int64
	}
	var rows []row
	err := r.db.Model(&models.Order{}).
		Select("orders.status AS status, COUNT(DISTINCT orders.id) AS count").
		Joins("JOIN order_items ON order_items.order_id = orders.id").
		Joins("JOIN products ON products.id = order_items.product_id").
		Where("products.supplier_id = ?", supplierID).
		Group("orders.status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Count
	}
	return counts, nil
}
