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

func setupSalesRepositoryTest(t *testing.T) (*GormSalesRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Product{}, &models.Order{}, &models.OrderItem{}); err != nil {
		t.Fatalf("migrate sales models failed: %v", err)
	}
	return NewSalesRepository(db), db
}

func seedSalesOrder(t *testing.T, db *gorm.DB, product *models.Product, orderDate time.Time, quantity int, unitPrice int64) {
	t.Helper()
	order := &models.Order{
		UserID:    1,
		Status:    constants.OrderStatusDelivered,
		OrderDate: orderDate,
		Items: []models.OrderItem{
			{ProductID: product.ID, Quantity: quantity, UnitPrice: models.NewMoneyFromDecimal(decimal.NewFromInt(unitPrice))},
		},
	}
	if err := db.Create(order).Error; err != nil {
		t.Fatalf("create sales order failed: %v", err)
	}
}

func seedSalesSupplier(t *testing.T, db *gorm.DB, email, address string) (*models.User, *models.Product) {
	t.Helper()
	supplier := &models.User{Name: "Atelier", Email: email, PasswordHash: "x", Role: models.RoleSupplier}
	if err := db.Create(supplier).Error; err != nil {
		t.Fatalf("create supplier failed: %v", err)
	}
	product := &models.Product{
		SupplierID:  supplier.ID,
		Name:        "Panier tressé",
		Description: "Osier",
		Price:       models.NewMoneyFromDecimal(decimal.NewFromInt(30)),
		Address:     address,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return supplier, product
}

func TestEvolutionDayBuckets(t *testing.T) {
	repo, db := setupSalesRepositoryTest(t)
	supplier, product := seedSalesSupplier(t, db, "a@atelier.test", "Cotonou")

	day1 := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC)
	seedSalesOrder(t, db, product, day1, 2, 45)
	seedSalesOrder(t, db, product, day1, 1, 45)
	seedSalesOrder(t, db, product, day2, 3, 45)

	buckets, err := repo.Evolution(SalesFilter{SupplierID: supplier.ID, Period: constants.SalesPeriodDay})
	if err != nil {
		t.Fatalf("evolution failed: %v", err)
	}
	if len(buckets) != 2 {
		t.Fatalf("expected 2 day buckets, got %d", len(buckets))
	}
	if buckets[0].Bucket != "2025-03-10" || buckets[1].Bucket != "2025-03-11" {
		t.Fatalf("unexpected bucket keys: %s / %s", buckets[0].Bucket, buckets[1].Bucket)
	}
	if buckets[0].Quantity != 3 {
		t.Fatalf("first bucket quantity want 3 got %d", buckets[0].Quantity)
	}
	if !buckets[0].Revenue.Equal(decimal.NewFromInt(135)) {
		t.Fatalf("first bucket revenue want 135 got %s", buckets[0].Revenue.String())
	}
}

func TestEvolutionWeekBucketsUseISOWeek(t *testing.T) {
	repo, db := setupSalesRepositoryTest(t)
	supplier, product := seedSalesSupplier(t, db, "a@atelier.test", "")

	// 2024-12-30 falls in ISO week 2025-01.
	seedSalesOrder(t, db, product, time.Date(2024, 12, 30, 8, 0, 0, 0, time.UTC), 1, 10)
	seedSalesOrder(t, db, product, time.Date(2025, 1, 2, 8, 0, 0, 0, time.UTC), 1, 10)

	buckets, err := repo.Evolution(SalesFilter{SupplierID: supplier.ID, Period: constants.SalesPeriodWeek})
	if err != nil {
		t.Fatalf("evolution failed: %v", err)
	}
	if len(buckets) != 1 {
		t.Fatalf("expected both days in one ISO week bucket, got %d buckets", len(buckets))
	}
	if buckets[0].Bucket != "2025-01" {
		t.Fatalf("unexpected ISO week bucket key: %s", buckets[0].Bucket)
	}
	if buckets[0].Quantity != 2 {
		t.Fatalf("bucket quantity want 2 got %d", buckets[0].Quantity)
	}
}

func TestEvolutionScopedToSupplierAndAddress(t *testing.T) {
	repo, db := setupSalesRepositoryTest(t)
	supplierA, productA := seedSalesSupplier(t, db, "a@atelier.test", "Cotonou")
	_, productB := seedSalesSupplier(t, db, "b@atelier.test", "Porto-Novo")

	when := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	seedSalesOrder(t, db, productA, when, 1, 20)
	seedSalesOrder(t, db, productB, when, 5, 99)

	buckets, err := repo.Evolution(SalesFilter{SupplierID: supplierA.ID, Period: constants.SalesPeriodDay})
	if err != nil {
		t.Fatalf("evolution failed: %v", err)
	}
	if len(buckets) != 1 || buckets[0].Quantity != 1 {
		t.Fatalf("expected only supplier A sales, got %+v", buckets)
	}

	// Address filter that matches nothing for this supplier.
	buckets, err = repo.Evolution(SalesFilter{SupplierID: supplierA.ID, Period: constants.SalesPeriodDay, Address: "Porto-Novo"})
	if err != nil {
		t.Fatalf("evolution failed: %v", err)
	}
	if len(buckets) != 0 {
		t.Fatalf("expected no buckets for foreign address, got %d", len(buckets))
	}
}

func TestEvolutionRevenueUsesSnapshotPrice(t *testing.T) {
	repo, db := setupSalesRepositoryTest(t)
	supplier, product := seedSalesSupplier(t, db, "a@atelier.test", "")

	when := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	seedSalesOrder(t, db, product, when, 2, 45)

	// Raising the catalog price afterwards must not change past revenue.
	if err := db.Model(product).Update("price", models.NewMoneyFromDecimal(decimal.NewFromInt(90))).Error; err != nil {
		t.Fatalf("update price failed: %v", err)
	}

	buckets, err := repo.Evolution(SalesFilter{SupplierID: supplier.ID, Period: constants.SalesPeriodDay})
	if err != nil {
		t.Fatalf("evolution failed: %v", err)
	}
	if len(buckets) != 1 {
		t.Fatalf("expected 1 bucket, got %d", len(buckets))
	}
	if !buckets[0].Revenue.Equal(decimal.NewFromInt(90)) {
		t.Fatalf("revenue want 90 got %s", buckets[0].Revenue.String())
	}
}

func TestStatusCounts(t *testing.T) {
	repo, db := setupSalesRepositoryTest(t)
	supplier, product := seedSalesSupplier(t, db, "a@atelier.test", "")

	when := time.Now()
	seedSalesOrder(t, db, product, when, 1, 10)
	seedSalesOrder(t, db, product, when, 1, 10)
	pending := &models.Order{
		UserID:    1,
		Status:    constants.OrderStatusPending,
		OrderDate: when,
		Items: []models.OrderItem{
			{ProductID: product.ID, Quantity: 1, UnitPrice: models.NewMoneyFromDecimal(decimal.NewFromInt(10))},
		},
	}
	if err := db.Create(pending).Error; err != nil {
		t.Fatalf("create pending order failed: %v", err)
	}

	counts, err := repo.StatusCounts(supplier.ID)
	if err != nil {
		t.Fatalf("status counts failed: %v", err)
	}
	if counts[constants.OrderStatusDelivered] != 2 {
		t.Fatalf("delivered count want 2 got %d", counts[constants.OrderStatusDelivered])
	}
	if counts[constants.OrderStatusPending] != 1 {
		t.Fatalf("pending count want 1 got %d", counts[constants.OrderStatusPending])
	}
}
