package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gopher0727/RaidLedger/internal/service"
)

type PlayerHandler struct {
	gearingService service.IGearingService
}

func NewPlayerHandler(gearingService service.IGearingService) *PlayerHandler {
	return &PlayerHandler{
		gearingService: gearingService,
	}
}

// OutstandingItems returns the target items the player still lacks
func (h *PlayerHandler) OutstandingItems(c *gin.Context) {
	result, err := h.gearingService.ComputeOutstandingItems(c.Request.Context(), c.Param("id"))
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// CurrencyNeeds returns the per-currency totals for the player's
// outstanding items.
func (h *PlayerHandler) CurrencyNeeds(c *gin.Context) {
	result, err := h.gearingService.ComputeCurrencyNeeds(c.Request.Context(), c.Param("id"))
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
