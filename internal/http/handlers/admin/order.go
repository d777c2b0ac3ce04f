package admin

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	handlershared "github.com/sodjinoucarrache2006/artisanat-virtuel/internal/http/handlers/shared"
	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/http/response"
	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/repository"
	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/service"
)

// UpdateOrderStatusRequest moves an order between statuses.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ListOrders returns every order in the marketplace.
func (h *Handler) ListOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = handlershared.NormalizePagination(page, pageSize)

	filter := repository.OrderListFilter{
		Page:     page,
		PageSize: pageSize,
		Status:   strings.TrimSpace(c.Query("status")),
	}
	orders, total, err := h.OrderService.ListAll(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "order list failed", err)
		return
	}
	totalPage := (total + int64(pageSize) - 1) / int64(pageSize)
	response.SuccessWithPage(c, gin.H{"orders": orders}, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: totalPage,
	})
}

// UpdateOrderStatus changes the status of any order.
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		return
	}
	rawID := c.Param("id")
	orderID, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil || orderID == 0 {
		respondError(c, response.CodeBadRequest, "invalid order id", nil)
		return
	}
	var req UpdateOrderStatusRequest
	if !handlershared.BindJSON(c, &req) {
		return
	}

	order, updateErr := h.OrderService.UpdateStatus(actor, uint(orderID), req.Status)
	if updateErr != nil {
		switch {
		case errors.Is(updateErr, service.ErrInvalidOrderStatus):
			response.ValidationFailed(c, "validation failed", map[string]string{"status": "status must be one of: en cours, livrée"})
		case errors.Is(updateErr, service.ErrOrderNotFound):
			response.NotFound(c, "order not found")
		case errors.Is(updateErr, service.ErrForbidden):
			response.Forbidden(c, "access denied")
		default:
			respondError(c, response.CodeInternal, "order status update failed", updateErr)
		}
		return
	}
	response.SuccessWithMsg(c, "order status updated", gin.H{"order": order})
}
