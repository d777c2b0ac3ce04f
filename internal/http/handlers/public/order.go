package public

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	handlershared "github.com/sodjinoucarrache2006/artisanat-virtuel/internal/http/handlers/shared"
	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/http/response"
	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/repository"
)

// CreateOrder turns the caller's cart into an order. Prices are frozen
// at this moment and the cart is emptied in the same transaction.
func (h *Handler) CreateOrder(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	order, err := h.OrderService.Place(uid)
	if err != nil {
		respondOrderError(c, err)
		return
	}
	response.Created(c, "order placed", gin.H{"order": order})
}

// ListOrders returns the caller's own orders.
func (h *Handler) ListOrders(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	filter := orderListFilterFromQuery(c)
	orders, total, err := h.OrderService.ListForUser(uid, filter)
	if err != nil {
		respondOrderError(c, err)
		return
	}
	respondOrderPage(c, orders, total, filter)
}

// GetOrder returns one order the caller may see.
func (h *Handler) GetOrder(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		return
	}
	orderID, ok := parseOrderID(c)
	if !ok {
		return
	}
	order, err := h.OrderService.Get(actor, orderID)
	if err != nil {
		respondOrderError(c, err)
		return
	}
	response.Success(c, gin.H{"order": order})
}

// DeleteOrder removes one of the caller's delivered orders.
func (h *Handler) DeleteOrder(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		return
	}
	orderID, ok := parseOrderID(c)
	if !ok {
		return
	}
	if err := h.OrderService.Delete(actor, orderID); err != nil {
		respondOrderError(c, err)
		return
	}
	response.SuccessWithMsg(c, "order deleted", nil)
}

func parseOrderID(c *gin.Context) (uint, bool) {
	rawID := c.Param("id")
	orderID, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil || orderID == 0 {
		respondError(c, response.CodeBadRequest, "invalid order id", nil)
		return 0, false
	}
	return uint(orderID), true
}

func orderListFilterFromQuery(c *gin.Context) repository.OrderListFilter {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = handlershared.NormalizePagination(page, pageSize)
	return repository.OrderListFilter{
		Page:     page,
		PageSize: pageSize,
		Status:   strings.TrimSpace(c.Query("status")),
	}
}

func respondOrderPage(c *gin.Context, orders interface{}, total int64, filter repository.OrderListFilter) {
	totalPage := (total + int64(filter.PageSize) - 1) / int64(filter.PageSize)
	response.SuccessWithPage(c, gin.H{"orders": orders}, response.Pagination{
		Page:      filter.Page,
		PageSize:  filter.PageSize,
		Total:     total,
		TotalPage: totalPage,
	})
}
