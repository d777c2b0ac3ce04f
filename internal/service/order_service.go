package service

import (
	"fmt"
	"time"

	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/constants"
	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/logger"
	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/models"
	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/repository"

	"gorm.io/gorm"
)

// OrderService handles order placement and lifecycle. Placement runs in
// one transaction: the cart is read, each product's current price is
// snapshot into the order line, and the cart is cleared. Any failure
// rolls the whole placement back and leaves the cart untouched.
type OrderService struct {
	db          *gorm.DB
	orderRepo   repository.OrderRepository
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	salesRepo   repository.SalesRepository
}

// NewOrderService creates the order service.
func NewOrderService(db *gorm.DB, orderRepo repository.OrderRepository, cartRepo repository.CartRepository, productRepo repository.ProductRepository, salesRepo repository.SalesRepository) *OrderService {
	return &OrderService{
		db:          db,
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		productRepo: productRepo,
		salesRepo:   salesRepo,
	}
}

// Place turns the user's cart into an order.
func (s *OrderService) Place(userID uint) (*models.Order, error) {
	var orderID uint

	err := s.db.Transaction(func(tx *gorm.DB) error {
		cartRepo := s.cartRepo.WithTx(tx)
		productRepo := s.productRepo.WithTx(tx)
		orderRepo := s.orderRepo.WithTx(tx)

		// The cart row is locked so two concurrent placements cannot
		// both read the same item list; the loser re-reads after the
		// winner cleared the cart and fails with ErrEmptyCart.
		cart, err := cartRepo.GetByUserForUpdate(userID)
		if err != nil {
			return err
		}
		if cart == nil || len(cart.Items) == 0 {
			return ErrEmptyCart
		}

		now := time.Now()
		order := &models.Order{
			UserID:    userID,
			Status:    constants.OrderStatusPending,
			OrderDate: now,
			CreatedAt: now,
			UpdatedAt: now,
		}

		for _, item := range cart.Items {
			product, err := productRepo.GetByIDForUpdate(item.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				// A line can reference a product deleted since it was
				// added; the placement fails as a whole.
				return fmt.Errorf("%w: product %d", ErrProductNotFound, item.ProductID)
			}
			order.Items = append(order.Items, models.OrderItem{
				ProductID: product.ID,
				Quantity:  item.Quantity,
				UnitPrice: product.Price,
				CreatedAt: now,
				UpdatedAt: now,
			})
		}

		if err := orderRepo.Create(order); err != nil {
			return fmt.Errorf("%w: %v", ErrOrderCreationFailed, err)
		}
		if err := cartRepo.ClearItems(cart.ID); err != nil {
			return err
		}

		orderID = order.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	placed, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	logger.Infow("order_placed", "order_id", orderID, "user_id", userID, "lines", len(placed.Items))
	return placed, nil
}

// Get fetches one order if the actor may see it: the owner, the admin,
// or a supplier holding at least one line of it.
func (s *OrderService) Get(actor *models.User, orderID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	allowed, err := s.canAccess(actor, order)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, ErrForbidden
	}
	return order, nil
}

// ListForUser lists a client's own orders.
func (s *OrderService) ListForUser(userID uint, filter repository.OrderListFilter) ([]models.Order, int64, error) {
	return s.orderRepo.ListByUser(userID, filter)
}

// ListAll lists every order. Admin surface only.
func (s *OrderService) ListAll(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	return s.orderRepo.ListAll(filter)
}

// ListForSupplier lists orders containing the supplier's products.
// Matching orders come back whole, including other suppliers' lines.
func (s *OrderService) ListForSupplier(supplierID uint, filter repository.OrderListFilter) ([]models.Order, int64, error) {
	return s.orderRepo.ListBySupplier(supplierID, filter)
}

// UpdateStatus moves an order between "en cours" and "livrée". The
// admin may touch any order; a supplier only those carrying one of its
// lines. Both directions are accepted.
func (s *OrderService) UpdateStatus(actor *models.User, orderID uint, status string) (*models.Order, error) {
	if !constants.KnownOrderStatus(status) {
		return nil, ErrInvalidOrderStatus
	}

	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	if actor == nil {
		return nil, ErrForbidden
	}
	if !actor.Role.CanManageAnyOrder() {
		if !actor.Role.IsSupplier() {
			return nil, ErrForbidden
		}
		has, err := s.orderRepo.SupplierHasLine(orderID, actor.ID)
		if err != nil {
			return nil, err
		}
		if !has {
			return nil, ErrForbidden
		}
	}

	if err := s.orderRepo.UpdateStatus(orderID, status); err != nil {
		return nil, err
	}
	logger.Infow("order_status_updated", "order_id", orderID, "status", status, "actor_id", actor.ID)
	return s.orderRepo.GetByID(orderID)
}

// Delete removes an order. Only the owner may delete, and only once the
// order was delivered.
func (s *OrderService) Delete(actor *models.User, orderID uint) error {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return ErrOrderNotFound
	}
	if actor == nil || order.UserID != actor.ID {
		return ErrForbidden
	}
	if order.Status != constants.OrderStatusDelivered {
		return ErrOrderNotDeletable
	}

	if err := s.orderRepo.Delete(orderID); err != nil {
		return err
	}
	logger.Infow("order_deleted", "order_id", orderID, "user_id", actor.ID)
	return nil
}

// SupplierStats returns pending/delivered counts over the orders that
// contain the supplier's products.
func (s *OrderService) SupplierStats(supplierID uint) (map[string]int64, error) {
	counts, err := s.salesRepo.StatusCounts(supplierID)
	if err != nil {
		return nil, err
	}
	// Always expose both statuses, even at zero.
	if _, ok := counts[constants.OrderStatusPending]; !ok {
		counts[constants.OrderStatusPending] = 0
	}
	if _, ok := counts[constants.OrderStatusDelivered]; !ok {
		counts[constants.OrderStatusDelivered] = 0
	}
	return counts, nil
}

func (s *OrderService) canAccess(actor *models.User, order *models.Order) (bool, error) {
	if actor == nil {
		return false, nil
	}
	if actor.Role.CanManageAnyOrder() || order.UserID == actor.ID {
		return true, nil
	}
	if actor.Role.IsSupplier() {
		return s.orderRepo.SupplierHasLine(order.ID, actor.ID)
	}
	return false, nil
}
