package api

import (
	"github.com/gin-gonic/gin"
)

type refreshQuotesResponse struct {
	Updated int `json:"updated"`
	Live    int `json:"live"`
	Total   int `json:"total"`
}

// refreshQuotes pulls live prices for the whole catalog. When a calculation
// has already been published, the refresh listener recomputes it silently
// with the same parameters, so the next read of the snapshot reflects live
// pricing.
func (m ApiHandler) refreshQuotes(c *gin.Context) {
	updated := m.PriceService.RefreshQuotes(c.Request.Context())
	live, total := m.PriceService.Coverage()

	c.JSON(200, refreshQuotesResponse{
		Updated: updated,
		Live:    live,
		Total:   total,
	})
}
