package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Gopher0727/RaidLedger/internal/service"
)

type GroupHandler struct {
	rosterService  service.IRosterService
	gearingService service.IGearingService
}

func NewGroupHandler(rosterService service.IRosterService, gearingService service.IGearingService) *GroupHandler {
	return &GroupHandler{
		rosterService:  rosterService,
		gearingService: gearingService,
	}
}

// CreateGroup handles raid group creation; the caller becomes the leader
func (h *GroupHandler) CreateGroup(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req service.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	group, err := h.rosterService.CreateGroup(c.Request.Context(), userID, &req)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, group)
}

// GetGroup returns a group with its active roster
func (h *GroupHandler) GetGroup(c *gin.Context) {
	detail, err := h.rosterService.GetGroup(c.Request.Context(), c.Param("id"))
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// MyGroups lists every group the caller leads or belongs to
func (h *GroupHandler) MyGroups(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	groups, err := h.rosterService.MyGroups(c.Request.Context(), userID)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, groups)
}

// JoinGroup adds the caller to a group
func (h *GroupHandler) JoinGroup(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req service.JoinGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	player, err := h.rosterService.JoinGroup(c.Request.Context(), userID, c.Param("id"), &req)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, player)
}

// LeaveGroup deactivates the caller's membership
func (h *GroupHandler) LeaveGroup(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.rosterService.LeaveGroup(c.Request.Context(), userID, c.Param("id")); err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "left group"})
}

// ListPlayers lists a group's players; ?all=true includes inactive ones
func (h *GroupHandler) ListPlayers(c *gin.Context) {
	all, _ := strconv.ParseBool(c.Query("all"))

	players, err := h.rosterService.ListPlayers(c.Request.Context(), c.Param("id"), !all)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, players)
}

// DistributionPriority returns the group's loot priority ranking
func (h *GroupHandler) DistributionPriority(c *gin.Context) {
	ranking, err := h.gearingService.ComputeDistributionPriority(c.Request.Context(), c.Param("id"))
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"priority": ranking})
}
