package supplier

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	handlershared "github.com/sodjinoucarrache2006/artisanat-virtuel/internal/http/handlers/shared"
	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/http/response"
	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/repository"
	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/service"
)

// ProductRequest is the create/update body for a product.
type ProductRequest struct {
	Name        string          `json:"name" binding:"required,max=255"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	ImageURL    string          `json:"image_url"`
	Address     string          `json:"address"`
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

// ListProducts returns the supplier's own catalog.
func (h *Handler) ListProducts(c *gin.Context) {
	uid, ok := getSupplierID(c)
	if !ok {
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = handlershared.NormalizePagination(page, pageSize)

	filter := repository.ProductListFilter{
		Page:       page,
		PageSize:   pageSize,
		SupplierID: uid,
		Search:     strings.TrimSpace(c.Query("search")),
		Address:    strings.TrimSpace(c.Query("address")),
	}
	products, total, err := h.ProductService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "product list failed", err)
		return
	}
	totalPage := (total + int64(pageSize) - 1) / int64(pageSize)
	response.SuccessWithPage(c, gin.H{"products": products}, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: totalPage,
	})
}

// CreateProduct adds a product owned by the supplier.
func (h *Handler) CreateProduct(c *gin.Context) {
	uid, ok := getSupplierID(c)
	if !ok {
		return
	}
	var req ProductRequest
	if !handlershared.BindJSON(c, &req) {
		return
	}
	product, err := h.ProductService.Create(uid, req.toServiceInput())
	if err != nil {
		respondProductError(c, err)
		return
	}
	response.Created(c, "product created", gin.H{"product": product})
}

// UpdateProduct edits one of the supplier's products.
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

// DeleteProduct removes one of the supplier's products.
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

// ListAddresses returns the distinct delivery addresses of the
// supplier's catalog, for the sales report filter.
func (h *Handler) ListAddresses(c *gin.Context) {
	uid, ok := getSupplierID(c)
	if !ok {
		return
	}
	addresses, err := h.ProductService.ListAddresses(uid)
	if err != nil {
		respondError(c, response.CodeInternal, "address list failed", err)
		return
	}
	response.Success(c, gin.H{"addresses": addresses})
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
