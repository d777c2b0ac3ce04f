package admin

import (
	"github.com/gin-gonic/gin"

	handlershared "github.com/sodjinoucarrache2006/artisanat-virtuel/internal/http/handlers/shared"
	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/models"
)

func getAdminID(c *gin.Context) (uint, bool) {
	return handlershared.GetContextUint(c, "user_id")
}

func getActor(c *gin.Context) (*models.User, bool) {
	uid, ok := getAdminID(c)
	if !ok {
		return nil, false
	}
	role, _ := handlershared.GetContextString(c, "user_role")
	return &models.User{ID: uid, Role: models.Role(role)}, true
}

func respondError(c *gin.Context, code int, msg string, err error) {
	handlershared.RespondError(c, code, msg, err)
}
