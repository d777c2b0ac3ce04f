package service

import (
	"time"

	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/models"
	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/repository"
)

// CartService handles per-user carts. Adding a product that already
// sits in the cart merges quantities instead of creating a second line.
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartService creates the cart service.
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// Get returns the user's cart. A user who never added anything gets an
// empty cart rather than an error.
func (s *CartService) Get(userID uint) (*models.Cart, error) {
	cart, err := s.cartRepo.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return &models.Cart{UserID: userID, Items: []models.CartItem{}}, nil
	}
	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}
	return cart, nil
}

// AddItem puts a product into the cart, merging into an existing line.
func (s *CartService) AddItem(userID, productID uint, quantity int) (*models.Cart, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	cart, err := s.cartRepo.GetOrCreateByUser(userID)
	if err != nil {
		return nil, err
	}

	existing, err := s.cartRepo.GetItem(cart.ID, productID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if err := s.cartRepo.UpdateItemQuantity(existing.ID, existing.Quantity+quantity); err != nil {
			return nil, err
		}
	} else {
		item := &models.CartItem{
			CartID:    cart.ID,
			ProductID: productID,
			Quantity:  quantity,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if err := s.cartRepo.CreateItem(item); err != nil {
			return nil, err
		}
	}

	return s.Get(userID)
}

// UpdateItemQuantity sets the quantity of a cart line. The line is
// addressed by its own id; touching a line in someone else's cart is
// ErrForbidden.
func (s *CartService) UpdateItemQuantity(userID, itemID uint, quantity int) (*models.Cart, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	if _, err := s.ownedItem(userID, itemID); err != nil {
		return nil, err
	}
	if err := s.cartRepo.UpdateItemQuantity(itemID, quantity); err != nil {
		return nil, err
	}
	return s.Get(userID)
}

// RemoveItem drops one line from the cart. Same ownership rule as
// UpdateItemQuantity.
func (s *CartService) RemoveItem(userID, itemID uint) (*models.Cart, error) {
	if _, err := s.ownedItem(userID, itemID); err != nil {
		return nil, err
	}
	if err := s.cartRepo.DeleteItem(itemID); err != nil {
		return nil, err
	}
	return s.Get(userID)
}

func (s *CartService) ownedItem(userID, itemID uint) (*models.CartItem, error) {
	item, err := s.cartRepo.GetItemByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrCartItemNotFound
	}
	cart, err := s.cartRepo.GetByID(item.CartID)
	if err != nil {
		return nil, err
	}
	if cart == nil || cart.UserID != userID {
		return nil, ErrForbidden
	}
	return item, nil
}

// Clear empties the cart.
func (s *CartService) Clear(userID uint) error {
	cart, err := s.cartRepo.GetByUser(userID)
	if err != nil {
		return err
	}
	if cart == nil {
		return nil
	}
	return s.cartRepo.ClearItems(cart.ID)
}
