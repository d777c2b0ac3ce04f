package repository

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/constants"
	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupOrderRepositoryTest(t *testing.T) (*GormOrderRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Product{}, &models.Order{}, &models.OrderItem{}); err != nil {
		t.Fatalf("migrate order models failed: %v", err)
	}
	return NewOrderRepository(db), db
}

func createOrderTestSupplierWithProduct(t *testing.T, db *gorm.DB, email string) (*models.User, *models.Product) {
	t.Helper()
	supplier := &models.User{
		Name:         "Atelier " + email,
		Email:        email,
		PasswordHash: "x",
		Role:         models.RoleSupplier,
	}
	if err := db.Create(supplier).Error; err != nil {
		t.Fatalf("create supplier failed: %v", err)
	}
	product := &models.Product{
		SupplierID:  supplier.ID,
		Name:        "Vase en terre cuite",
		Description: "Fait main",
		Price:       models.NewMoneyFromDecimal(decimal.NewFromInt(45)),
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return supplier, product
}

func TestListBySupplierReturnsWholeOrder(t *testing.T) {
	repo, db := setupOrderRepositoryTest(t)

	supplierA, productA := createOrderTestSupplierWithProduct(t, db, "a@atelier.test")
	_, productB := createOrderTestSupplierWithProduct(t, db, "b@atelier.test")

	client := &models.User{Name: "Client", Email: "client@test", PasswordHash: "x", Role: models.RoleClient}
	if err := db.Create(client).Error; err != nil {
		t.Fatalf("create client failed: %v", err)
	}

	// Mixed order: one line per supplier.
	order := &models.Order{
		UserID:    client.ID,
		Status:    constants.OrderStatusPending,
		OrderDate: time.Now(),
		Items: []models.OrderItem{
			{ProductID: productA.ID, Quantity: 1, UnitPrice: productA.Price},
			{ProductID: productB.ID, Quantity: 2, UnitPrice: productB.Price},
		},
	}
	if err := repo.Create(order); err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	// An order only touching supplier B must stay invisible to A.
	otherOrder := &models.Order{
		UserID:    client.ID,
		Status:    constants.OrderStatusPending,
		OrderDate: time.Now(),
		Items: []models.OrderItem{
			{ProductID: productB.ID, Quantity: 1, UnitPrice: productB.Price},
		},
	}
	if err := repo.Create(otherOrder); err != nil {
		t.Fatalf("create other order failed: %v", err)
	}

	orders, total, err := repo.ListBySupplier(supplierA.ID, OrderListFilter{Page: 1, PageSize: 20})
	if err != nil {
		t.Fatalf("list by supplier failed: %v", err)
	}
	if total != 1 || len(orders) != 1 {
		t.Fatalf("expected exactly one order for supplier A, got total=%d len=%d", total, len(orders))
	}
	if orders[0].ID != order.ID {
		t.Fatalf("wrong order returned: got %d want %d", orders[0].ID, order.ID)
	}
	// The matching order comes back whole, other suppliers' lines included.
	if len(orders[0].Items) != 2 {
		t.Fatalf("expected whole order with 2 lines, got %d", len(orders[0].Items))
	}
}

func TestSupplierHasLine(t *testing.T) {
	repo, db := setupOrderRepositoryTest(t)

	supplierA, productA := createOrderTestSupplierWithProduct(t, db, "a@atelier.test")
	supplierB, productB := createOrderTestSupplierWithProduct(t, db, "b@atelier.test")

	order := &models.Order{
		UserID:    1,
		Status:    constants.OrderStatusPending,
		OrderDate: time.Now(),
		Items: []models.OrderItem{
			{ProductID: productA.ID, Quantity: 1, UnitPrice: productA.Price},
		},
	}
	if err := repo.Create(order); err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	_ = productB

	has, err := repo.SupplierHasLine(order.ID, supplierA.ID)
	if err != nil {
		t.Fatalf("supplier has line failed: %v", err)
	}
	if !has {
		t.Fatalf("supplier A should own a line of the order")
	}

	has, err = repo.SupplierHasLine(order.ID, supplierB.ID)
	if err != nil {
		t.Fatalf("supplier has line failed: %v", err)
	}
	if has {
		t.Fatalf("supplier B should not own any line of the order")
	}
}

func TestDeleteRemovesOrderAndLines(t *testing.T) {
	repo, db := setupOrderRepositoryTest(t)

	_, product := createOrderTestSupplierWithProduct(t, db, "a@atelier.test")

	order := &models.Order{
		UserID:    1,
		Status:    constants.OrderStatusDelivered,
		OrderDate: time.Now(),
		Items: []models.OrderItem{
			{ProductID: product.ID, Quantity: 3, UnitPrice: product.Price},
		},
	}
	if err := repo.Create(order); err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	if err := repo.Delete(order.ID); err != nil {
		t.Fatalf("delete order failed: %v", err)
	}

	var orderCount, itemCount int64
	db.Model(&models.Order{}).Count(&orderCount)
	db.Model(&models.OrderItem{}).Count(&itemCount)
	if orderCount != 0 {
		t.Fatalf("expected no orders, got %d", orderCount)
	}
	if itemCount != 0 {
		t.Fatalf("expected no order lines, got %d", itemCount)
	}
}
