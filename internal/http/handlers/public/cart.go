package public

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	handlershared "github.com/sodjinoucarrache2006/artisanat-virtuel/internal/http/handlers/shared"
	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/http/response"
	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/service"
)

// AddCartItemRequest adds a quantity of one product to the cart.
type AddCartItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,gt=0"`
}

// UpdateCartItemRequest replaces the quantity of one cart line.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,gt=0"`
}

// GetCart returns the caller's cart. An account without a cart row yet
// gets an empty cart, not an error.
func (h *Handler) GetCart(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	cart, err := h.CartService.Get(uid)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, gin.H{"cart": cart})
}

// AddCartItem adds a product to the cart; an existing line for the same
// product merges by adding the quantities.
func (h *Handler) AddCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req AddCartItemRequest
	if !handlershared.BindJSON(c, &req) {
		return
	}
	cart, err := h.CartService.AddItem(uid, req.ProductID, req.Quantity)
	if err != nil {
		// An unknown product is a field error on the submitted id, not
		// a missing-resource lookup.
		if errors.Is(err, service.ErrProductNotFound) {
			response.ValidationFailed(c, "validation failed", map[string]string{"product_id": "product not found"})
			return
		}
		respondCartError(c, err)
		return
	}
	response.SuccessWithMsg(c, "product added to cart", gin.H{"cart": cart})
}

// UpdateCartItem sets the exact quantity of one cart line. The :id is
// the cart line id, not the product id.
func (h *Handler) UpdateCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	itemID, ok := parseCartItemID(c)
	if !ok {
		return
	}
	var req UpdateCartItemRequest
	if !handlershared.BindJSON(c, &req) {
		return
	}
	cart, err := h.CartService.UpdateItemQuantity(uid, itemID, req.Quantity)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.SuccessWithMsg(c, "cart updated", gin.H{"cart": cart})
}

// RemoveCartItem deletes one cart line.
func (h *Handler) RemoveCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	itemID, ok := parseCartItemID(c)
	if !ok {
		return
	}
	cart, err := h.CartService.RemoveItem(uid, itemID)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.SuccessWithMsg(c, "product removed from cart", gin.H{"cart": cart})
}

func parseCartItemID(c *gin.Context) (uint, bool) {
	rawID := c.Param("id")
	itemID, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil || itemID == 0 {
		respondError(c, response.CodeBadRequest, "invalid cart item id", nil)
		return 0, false
	}
	return uint(itemID), true
}
