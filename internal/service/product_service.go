package service

import (
	"strings"
	"time"

	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/models"
	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/repository"

	"github.com/shopspring/decimal"
)

// ProductInput carries the writable product fields.
type ProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	ImageURL    string
	Address     string
}

// ProductService handles the catalog. Suppliers manage their own
// products; the admin may touch any of them.
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates the product service.
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// List returns catalog products. The public listing passes an empty
// supplier filter.
func (s *ProductService) List(filter repository.ProductListFilter) ([]models.Product, int64, error) {
	return s.productRepo.List(filter)
}

// Get fetches one product.
func (s *ProductService) Get(id uint) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// Create adds a product to the supplier's catalog.
func (s *ProductService) Create(supplierID uint, input ProductInput) (*models.Product, error) {
	if err := validateProductInput(&input); err != nil {
		return nil, err
	}

	now := time.Now()
	product := &models.Product{
		SupplierID:  supplierID,
		Name:        input.Name,
		Description: input.Description,
		Price:       models.NewMoneyFromDecimal(input.Price),
		ImageURL:    input.ImageURL,
		Address:     input.Address,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update modifies a product. The actor must own it or be allowed to
// manage the whole catalog.
func (s *ProductService) Update(actor *models.User, productID uint, input ProductInput) (*models.Product, error) {
	product, err := s.Get(productID)
	if err != nil {
		return nil, err
	}
	if !canManageProduct(actor, product) {
		return nil, ErrForbidden
	}
	if err := validateProductInput(&input); err != nil {
		return nil, err
	}

	product.Name = input.Name
	product.Description = input.Description
	product.Price = models.NewMoneyFromDecimal(input.Price)
	product.ImageURL = input.ImageURL
	product.Address = input.Address
	product.UpdatedAt = time.Now()

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete removes a product under the same authorization rule as Update.
// Existing order lines keep their snapshot data.
func (s *ProductService) Delete(actor *models.User, productID uint) error {
	product, err := s.Get(productID)
	if err != nil {
		return err
	}
	if !canManageProduct(actor, product) {
		return ErrForbidden
	}
	return s.productRepo.Delete(productID)
}

// ListAddresses returns the distinct product addresses of a supplier.
func (s *ProductService) ListAddresses(supplierID uint) ([]string, error) {
	return s.productRepo.ListAddresses(supplierID)
}

func canManageProduct(actor *models.User, product *models.Product) bool {
	if actor == nil || product == nil {
		return false
	}
	if actor.Role.IsAdmin() {
		return true
	}
	return actor.Role.IsSupplier() && product.SupplierID == actor.ID
}

func validateProductInput(input *ProductInput) error {
	input.Name = strings.TrimSpace(input.Name)
	input.Description = strings.TrimSpace(input.Description)
	input.Address = strings.TrimSpace(input.Address)
	if input.Name == "" {
		return ErrNameRequired
	}
	if input.Price.IsNegative() {
		return ErrInvalidPrice
	}
	return nil
}
