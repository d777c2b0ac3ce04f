package repository

import (
	"errors"

	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/models"

	"gorm.io/gorm"
)

// OrderRepository is the order data access interface.
type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(id uint) (*models.Order, error)
	ListByUser(userID uint, filter OrderListFilter) ([]models.Order, int64, error)
	ListAll(filter OrderListFilter) ([]models.Order, int64, error)
	ListBySupplier(supplierID uint, filter OrderListFilter) ([]models.Order, int64, error)
	SupplierHasLine(orderID, supplierID uint) (bool, error)
	UpdateStatus(orderID uint, status string) error
	Delete(orderID uint) error
	WithTx(tx *gorm.DB) *GormOrderRepository
}

// GormOrderRepository is the GORM implementation.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates the order repository.
func NewOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormOrderRepository) WithTx(tx *gorm.DB) *GormOrderRepository {
	if tx == nil {
		return r
	}
	return &GormOrderRepository{db: tx}
}

// Create inserts an order with its lines in one call.
func (r *GormOrderRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

// GetByID fetches an order with lines and products preloaded.
func (r *GormOrderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items").Preload("Items.Product").Preload("User").First(&order, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *GormOrderRepository) applyFilter(query *gorm.DB, filter OrderListFilter) *gorm.DB {
	if filter.Status != "" {
		query = query.Where("orders.status = ?", filter.Status)
	}
	if filter.DateFrom != nil {
		query = query.Where("orders.order_date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("orders.order_date <= ?", *filter.DateTo)
	}
	return query
}

func (r *GormOrderRepository) listWithQuery(query *gorm.DB, filter OrderListFilter) ([]models.Order, int64, error) {
	query = r.applyFilter(query, filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var orders []models.Order
	err := query.Preload("Items").Preload("Items.Product").Preload("User").
		Order("orders.id DESC").Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// ListByUser lists the orders placed by one client.
func (r *GormOrderRepository) ListByUser(userID uint, filter OrderListFilter) ([]models.Order, int64, error) {
	query := r.db.Model(&models.Order{}).Where("orders.user_id = ?", userID)
	return r.listWithQuery(query, filter)
}

// ListAll lists every order.
func (r *GormOrderRepository) ListAll(filter OrderListFilter) ([]models.Order, int64, error) {
	return r.listWithQuery(r.db.Model(&models.Order{}), filter)
}

// ListBySupplier lists orders containing at least one line whose
// product belongs to the supplier. Matching orders are returned whole,
// including lines for other suppliers' products.
func (r *GormOrderRepository) ListBySupplier(supplierID uint, filter OrderListFilter) ([]models.Order, int64, error) {
	query := r.db.Model(&models.Order{}).
		Where("EXISTS (SELECT 1 FROM order_items JOIN products ON products.id = order_items.product_id WHERE order_items.order_id = orders.id AND products.supplier_id = ?)", supplierID)
	return r.listWithQuery(query, filter)
}

// SupplierHasLine reports whether an order contains a line for one of
// the supplier's products.
func (r *GormOrderRepository) SupplierHasLine(orderID, supplierID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.OrderItem{}).
		Joins("JOIN products ON products.id = order_items.product_id").
		Where("order_items.order_id = ? AND products.supplier_id = ?", orderID, supplierID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateStatus sets an order's status.
func (r *GormOrderRepository) UpdateStatus(orderID uint, status string) error {
	return r.db.Model(&models.Order{}).Where("id = ?", orderID).Update("status", status).Error
}

// Delete removes an order and its lines. Hard delete.
func (r *GormOrderRepository) Delete(orderID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", orderID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Order{}, orderID).Error
	})
}
