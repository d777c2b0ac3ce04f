package supplier

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/constants"
	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/http/response"
)

// SalesEvolution returns revenue and quantity per time bucket for the
// supplier's own product lines. Buckets group by day, ISO week or
// month; unknown periods fall back to day.
func (h *Handler) SalesEvolution(c *gin.Context) {
	uid, ok := getSupplierID(c)
	if !ok {
		return
	}
	period := constants.NormalizeSalesPeriod(strings.TrimSpace(c.Query("period")))
	address := strings.TrimSpace(c.Query("address"))

	buckets, err := h.SalesService.Evolution(uid, period, address)
	if err != nil {
		respondError(c, response.CodeInternal, "sales evolution failed", err)
		return
	}
	response.Success(c, gin.H{
		"period": period,
		"series": buckets,
	})
}
