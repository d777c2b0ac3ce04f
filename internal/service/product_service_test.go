package service

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/models"
	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupProductServiceTest(t *testing.T) (*ProductService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Product{}); err != nil {
		t.Fatalf("migrate models failed: %v", err)
	}
	return NewProductService(repository.NewProductRepository(db)), db
}

func TestProductOwnershipRules(t *testing.T) {
	productService, db := setupProductServiceTest(t)

	owner := createTestUser(t, db, "owner@atelier.test", models.RoleSupplier)
	rival := createTestUser(t, db, "rival@atelier.test", models.RoleSupplier)
	admin := createTestUser(t, db, "admin@test", models.RoleAdmin)
	client := createTestUser(t, db, "client@test", models.RoleClient)

	product, err := productService.Create(owner.ID, ProductInput{
		Name:        "Poterie émaillée",
		Description: "Pièce unique",
		Price:       decimal.NewFromInt(75),
		Address:     "Cotonou",
	})
	if err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	input := ProductInput{Name: "Poterie émaillée", Description: "Retouche", Price: decimal.NewFromInt(80)}

	if _, err := productService.Update(rival, product.ID, input); !errors.Is(err, ErrForbidden) {
		t.Fatalf("rival supplier update: expected ErrForbidden, got %v", err)
	}
	if _, err := productService.Update(client, product.ID, input); !errors.Is(err, ErrForbidden) {
		t.Fatalf("client update: expected ErrForbidden, got %v", err)
	}
	if _, err := productService.Update(owner, product.ID, input); err != nil {
		t.Fatalf("owner update failed: %v", err)
	}
	if _, err := productService.Update(admin, product.ID, input); err != nil {
		t.Fatalf("admin update failed: %v", err)
	}

	if err := productService.Delete(rival, product.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("rival delete: expected ErrForbidden, got %v", err)
	}
	if err := productService.Delete(owner, product.ID); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if _, err := productService.Get(product.ID); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound after delete, got %v", err)
	}
}

func TestProductInputValidation(t *testing.T) {
	productService, db := setupProductServiceTest(t)
	supplier := createTestUser(t, db, "supplier@atelier.test", models.RoleSupplier)

	if _, err := productService.Create(supplier.ID, ProductInput{Name: "  ", Price: decimal.NewFromInt(10)}); !errors.Is(err, ErrNameRequired) {
		t.Fatalf("expected ErrNameRequired, got %v", err)
	}
	if _, err := productService.Create(supplier.ID, ProductInput{Name: "Bol", Price: decimal.NewFromInt(-1)}); !errors.Is(err, ErrInvalidPrice) {
		t.Fatalf("expected ErrInvalidPrice, got %v", err)
	}
}

func TestListAddressesIsScopedToSupplier(t *testing.T) {
	productService, db := setupProductServiceTest(t)
	supplierA := createTestUser(t, db, "a@atelier.test", models.RoleSupplier)
	supplierB := createTestUser(t, db, "b@atelier.test", models.RoleSupplier)

	mustCreate := func(supplierID uint, name, address string) {
		if _, err := productService.Create(supplierID, ProductInput{Name: name, Price: decimal.NewFromInt(10), Address: address}); err != nil {
			t.Fatalf("create product failed: %v", err)
		}
	}
	mustCreate(supplierA.ID, "Bol", "Cotonou")
	mustCreate(supplierA.ID, "Vase", "Cotonou")
	mustCreate(supplierA.ID, "Tapis", "Abomey")
	mustCreate(supplierB.ID, "Masque", "Porto-Novo")

	addresses, err := productService.ListAddresses(supplierA.ID)
	if err != nil {
		t.Fatalf("list addresses failed: %v", err)
	}
	if len(addresses) != 2 {
		t.Fatalf("expected 2 distinct addresses, got %v", addresses)
	}
	if addresses[0] != "Abomey" || addresses[1] != "Cotonou" {
		t.Fatalf("expected sorted addresses, got %v", addresses)
	}
}
