package admin

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	handlershared "github.com/sodjinoucarrache2006/artisanat-virtuel/internal/http/handlers/shared"
	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/http/response"
	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/service"
)

// ProductRequest is the admin create/update body for a product. On
// create, supplier_id attaches the product to a supplier; without it
// the product belongs to the admin account itself.
type ProductRequest struct {
	Name        string          `json:"name" binding:"required,max=255"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	ImageURL    string          `json:"image_url"`
	Address     string          `json:"address"`
	SupplierID  uint            `json:"supplier_id"`
}

func (r ProductRequest) toServiceInput() service.ProductInput {
	return service.ProductInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		ImageURL:    r.ImageURL,
		Address:     r.Address,
	}
}

// CreateProduct adds a product on behalf of a supplier.
func (h *Handler) CreateProduct(c *gin.Context) {
	uid, ok := getAdminID(c)
	if !ok {
		return
	}
	var req ProductRequest
	if !handlershared.BindJSON(c, &req) {
		return
	}
	ownerID := req.SupplierID
	if ownerID == 0 {
		ownerID = uid
	}
	product, err := h.ProductService.Create(ownerID, req.toServiceInput())
	if err != nil {
		respondProductError(c, err)
		return
	}
	response.Created(c, "product created", gin.H{"product": product})
}

// UpdateProduct edits any product.
func (h *Handler) UpdateProduct(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		return
	}
	productID, ok := parseProductID(c)
	if !ok {
		return
	}
	var req ProductRequest
	if !handlershared.BindJSON(c, &req) {
		return
	}
	product, err := h.ProductService.Update(actor, productID, req.toServiceInput())
	if err != nil {
		respondProductError(c, err)
		return
	}
	response.SuccessWithMsg(c, "product updated", gin.H{"product": product})
}

// DeleteProduct removes any product.
func (h *Handler) DeleteProduct(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		return
	}
	productID, ok := parseProductID(c)
	if !ok {
		return
	}
	if err := h.ProductService.Delete(actor, productID); err != nil {
		respondProductError(c, err)
		return
	}
	response.SuccessWithMsg(c, "product deleted", nil)
}

func parseProductID(c *gin.Context) (uint, bool) {
	rawID := c.Param("id")
	productID, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil || productID == 0 {
		respondError(c, response.CodeBadRequest, "invalid product id", nil)
		return 0, false
	}
	return uint(productID), true
}

func respondProductError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrProductNotFound):
		response.NotFound(c, "product not found")
	case errors.Is(err, service.ErrForbidden):
		response.Forbidden(c, "access denied")
	case errors.Is(err, service.ErrNameRequired):
		response.ValidationFailed(c, "validation failed", map[string]string{"name": "name is required"})
	case errors.Is(err, service.ErrInvalidPrice):
		response.ValidationFailed(c, "validation failed", map[string]string{"price": "price must not be negative"})
	default:
		respondError(c, response.CodeInternal, "product operation failed", err)
	}
}
