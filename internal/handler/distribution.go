package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gopher0727/RaidLedger/internal/service"
)

type DistributionHandler struct {
	distributionService service.IDistributionService
}

func NewDistributionHandler(distributionService service.IDistributionService) *DistributionHandler {
	return &DistributionHandler{
		distributionService: distributionService,
	}
}

// Record appends a loot award to the group's log. Leader only.
func (h *DistributionHandler) Record(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req service.RecordDistributionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	dist, err := h.distributionService.Record(c.Request.Context(), userID, c.Param("id"), &req)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dist)
}

// History lists the group's distribution log, newest first
func (h *DistributionHandler) History(c *gin.Context) {
	history, err := h.distributionService.History(c.Request.Context(), c.Param("id"))
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, history)
}
