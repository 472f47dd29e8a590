package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gopher0727/RaidLedger/internal/service"
)

type EquipmentHandler struct {
	equipmentService service.IEquipmentService
	gearingService   service.IGearingService
}

func NewEquipmentHandler(equipmentService service.IEquipmentService, gearingService service.IGearingService) *EquipmentHandler {
	return &EquipmentHandler{
		equipmentService: equipmentService,
		gearingService:   gearingService,
	}
}

// CreateSet creates an empty equipment set for one of the caller's players
func (h *EquipmentHandler) CreateSet(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req service.CreateSetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	set, err := h.equipmentService.CreateSet(c.Request.Context(), userID, &req)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, set)
}

// GetSet returns a set with its computed gear level
func (h *EquipmentHandler) GetSet(c *gin.Context) {
	detail, err := h.equipmentService.GetSet(c.Request.Context(), c.Param("id"))
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// ListSetsByPlayer lists a player's sets with computed gear levels
func (h *EquipmentHandler) ListSetsByPlayer(c *gin.Context) {
	details, err := h.equipmentService.ListSetsByPlayer(c.Request.Context(), c.Param("id"))
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, details)
}

// ReplaceEquipments swaps a set's contents wholesale
func (h *EquipmentHandler) ReplaceEquipments(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req service.ReplaceEquipmentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	detail, err := h.equipmentService.ReplaceEquipments(c.Request.Context(), userID, c.Param("id"), &req)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// GearLevel returns only the computed effective item level of a set
func (h *EquipmentHandler) GearLevel(c *gin.Context) {
	result, err := h.gearingService.ComputeGearLevel(c.Request.Context(), c.Param("id"))
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
