package public

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/constants"
	handlershared "github.com/sodjinoucarrache2006/artisanat-virtuel/internal/http/handlers/shared"
	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/http/response"
	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/service"
)

// RegisterRequest is the self-registration body. Whatever the caller
// claims, the created account is always a client.
type RegisterRequest struct {
	Name                 string                `json:"name" binding:"required,max=100"`
	Email                string                `json:"email" binding:"required,email"`
	Password             string                `json:"password" binding:"required"`
	PasswordConfirmation string                `json:"password_confirmation" binding:"required,eqfield=Password"`
	CaptchaPayload       CaptchaPayloadRequest `json:"captcha_payload"`
}

// LoginRequest is the credential login body.
type LoginRequest struct {
	Email          string                `json:"email" binding:"required,email"`
	Password       string                `json:"password" binding:"required"`
	CaptchaPayload CaptchaPayloadRequest `json:"captcha_payload"`
}

// Register creates a client account and logs it in.
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if !handlershared.BindJSON(c, &req) {
		return
	}
	if !h.verifyCaptcha(c, constants.CaptchaSceneRegister, req.CaptchaPayload) {
		return
	}

	user, token, expiresAt, err := h.AuthService.Register(req.Name, req.Email, req.Password)
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
			respondError(c, response.CodeInternal, "registration failed", err)
		}
		return
	}

	response.Created(c, "account created", gin.H{
		"user":       user,
		"token":      token,
		"expires_at": expiresAt.Format(time.RFC3339),
	})
}

// Login authenticates by email and password.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if !handlershared.BindJSON(c, &req) {
		return
	}
	if !h.verifyCaptcha(c, constants.CaptchaSceneLogin, req.CaptchaPayload) {
		return
	}

	user, token, expiresAt, err := h.AuthService.Login(req.Email, req.Password)
	if err != nil {
		switch {
		// One message for unknown account and wrong password, so the
		// endpoint does not leak which emails exist.
		case errors.Is(err, service.ErrInvalidCredentials):
			response.ValidationFailed(c, "invalid credentials", map[string]string{"email": "invalid credentials"})
		default:
			respondError(c, response.CodeInternal, "login failed", err)
		}
		return
	}

	response.Success(c, gin.H{
		"user":       user,
		"token":      token,
		"expires_at": expiresAt.Format(time.RFC3339),
	})
}

// Logout revokes the token used on this request. Other sessions of the
// same account stay logged in.
func (h *Handler) Logout(c *gin.Context) {
	tokenID, ok := getTokenID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}
	if err := h.AuthService.Logout(c.Request.Context(), tokenID); err != nil {
		respondError(c, response.CodeInternal, "logout failed", err)
		return
	}
	response.SuccessWithMsg(c, "logged out", nil)
}

// CurrentUser returns the authenticated account.
func (h *Handler) CurrentUser(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	user, err := h.AuthService.GetUserByID(uid)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			response.NotFound(c, "user not found")
		default:
			respondError(c, response.CodeInternal, "user lookup failed", err)
		}
		return
	}
	response.Success(c, gin.H{"user": user})
}

// RemoveProfileImage clears the account's profile image.
func (h *Handler) RemoveProfileImage(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	user, err := h.AuthService.RemoveProfileImage(uid)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			response.NotFound(c, "user not found")
		case errors.Is(err, service.ErrNoProfileImage):
			respondError(c, response.CodeBadRequest, "no profile image to remove", nil)
		default:
			respondError(c, response.CodeInternal, "profile image removal failed", err)
		}
		return
	}
	response.SuccessWithMsg(c, "profile image removed", gin.H{"user": user})
}
