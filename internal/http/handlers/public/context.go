package public

import (
	"github.com/gin-gonic/gin"

	handlershared "github.com/sodjinoucarrache2006/artisanat-virtuel/internal/http/handlers/shared"
	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/models"
)

func getUserID(c *gin.Context) (uint, bool) {
	return handlershared.GetContextUint(c, "user_id")
}

func getTokenID(c *gin.Context) (string, bool) {
	return handlershared.GetContextString(c, "token_id")
}

func respondError(c *gin.Context, code int, msg string, err error) {
	handlershared.RespondError(c, code, msg, err)
}

// getActor rebuilds the acting account from the request context. The
// services only need the id and the role for their decisions.
func getActor(c *gin.Context) (*models.User, bool) {
	uid, ok := getUserID(c)
	if !ok {
		return nil, false
	}
	role, _ := handlershared.GetContextString(c, "user_role")
	return &models.User{ID: uid, Role: models.Role(role)}, true
}
