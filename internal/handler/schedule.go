package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gopher0727/RaidLedger/internal/service"
)

type ScheduleHandler struct {
	scheduleService service.IScheduleService
}

func NewScheduleHandler(scheduleService service.IScheduleService) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleService: scheduleService,
	}
}

// Create adds a schedule slot to a group. Leader only.
func (h *ScheduleHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req service.CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	schedule, err := h.scheduleService.Create(c.Request.Context(), userID, c.Param("id"), &req)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, schedule)
}

// ListByGroup lists the group's schedule
func (h *ScheduleHandler) ListByGroup(c *gin.Context) {
	schedules, err := h.scheduleService.ListByGroup(c.Request.Context(), c.Param("id"))
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, schedules)
}

// Update applies partial schedule changes. Leader only.
func (h *ScheduleHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req service.UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	schedule, err := h.scheduleService.Update(c.Request.Context(), userID, c.Param("id"), &req)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, schedule)
}

// Delete removes a schedule slot. Leader only.
func (h *ScheduleHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.scheduleService.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "schedule deleted"})
}
