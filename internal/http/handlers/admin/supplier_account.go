package admin

import (
	"errors"

	"github.com/gin-gonic/gin"

	handlershared "github.com/sodjinoucarrache2006/artisanat-virtuel/internal/http/handlers/shared"
	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/http/response"
	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/service"
)

// CreateSupplierRequest creates a new supplier account. Suppliers never
// self-register; making one is an admin decision.
type CreateSupplierRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// CreateSupplier provisions a supplier account.
func (h *Handler) CreateSupplier(c *gin.Context) {
	var req CreateSupplierRequest
	if !handlershared.BindJSON(c, &req) {
		return
	}

	user, err := h.AuthService.CreateSupplier(req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidEmail):
			response.ValidationFailed(c, "validation failed", map[string]string{"email": "email is invalid"})
		case errors.Is(err, service.ErrEmailExists):
			response.ValidationFailed(c, "validation failed", map[string]string{"email": "email is already taken"})
		case errors.Is(err, service.ErrNameRequired):
			response.ValidationFailed(c, "validation failed", map[string]string{"name": "name is required"})
		case errors.Is(err, service.ErrPasswordTooWeak):
			response.ValidationFailed(c, "validation failed", map[string]string{"password": err.Error()})
		default:
			respondError(c, response.CodeInternal, "supplier creation failed", err)
		}
		return
	}
	response.Created(c, "supplier account created", gin.H{"user": user})
}
