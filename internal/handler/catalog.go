package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gopher0727/RaidLedger/internal/service"
)

type CatalogHandler struct {
	catalogService service.ICatalogService
}

func NewCatalogHandler(catalogService service.ICatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// CreateRaid handles raid definition creation
func (h *CatalogHandler) CreateRaid(c *gin.Context) {
	var req service.CreateRaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	raid, err := h.catalogService.CreateRaid(c.Request.Context(), &req)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, raid)
}

// GetRaid returns one raid definition
func (h *CatalogHandler) GetRaid(c *gin.Context) {
	raid, err := h.catalogService.GetRaid(c.Request.Context(), c.Param("id"))
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, raid)
}

// ListRaids lists every raid, newest patch first
func (h *CatalogHandler) ListRaids(c *gin.Context) {
	raids, err := h.catalogService.ListRaids(c.Request.Context())
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, raids)
}

// UpdateRaid applies partial raid changes
func (h *CatalogHandler) UpdateRaid(c *gin.Context) {
	var req service.UpdateRaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	raid, err := h.catalogService.UpdateRaid(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, raid)
}

// DeleteRaid removes a raid definition
func (h *CatalogHandler) DeleteRaid(c *gin.Context) {
	if err := h.catalogService.DeleteRaid(c.Request.Context(), c.Param("id")); err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "raid deleted"})
}

// CreateItem handles item definition creation
func (h *CatalogHandler) CreateItem(c *gin.Context) {
	var req service.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	item, err := h.catalogService.CreateItem(c.Request.Context(), &req)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

// GetItem returns one item with its type and job restrictions
func (h *CatalogHandler) GetItem(c *gin.Context) {
	item, err := h.catalogService.GetItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// ListItems lists items, optionally filtered by ?raid_id=
func (h *CatalogHandler) ListItems(c *gin.Context) {
	items, err := h.catalogService.ListItems(c.Request.Context(), c.Query("raid_id"))
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// UpdateItem applies partial item changes
func (h *CatalogHandler) UpdateItem(c *gin.Context) {
	var req service.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	item, err := h.catalogService.UpdateItem(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// DeleteItem removes an item definition
func (h *CatalogHandler) DeleteItem(c *gin.Context) {
	if err := h.catalogService.DeleteItem(c.Request.Context(), c.Param("id")); err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "item deleted"})
}

// ListItemTypes lists equipment slot categories
func (h *CatalogHandler) ListItemTypes(c *gin.Context) {
	types, err := h.catalogService.ListItemTypes(c.Request.Context())
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, types)
}

// ListJobs lists the playable jobs
func (h *CatalogHandler) ListJobs(c *gin.Context) {
	jobs, err := h.catalogService.ListJobs(c.Request.Context())
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, jobs)
}

// CreateCurrency handles currency definition creation
func (h *CatalogHandler) CreateCurrency(c *gin.Context) {
	var req service.CreateCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	currency, err := h.catalogService.CreateCurrency(c.Request.Context(), &req)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, currency)
}

// ListCurrencies lists currencies, optionally filtered by ?raid_id=
func (h *CatalogHandler) ListCurrencies(c *gin.Context) {
	currencies, err := h.catalogService.ListCurrencies(c.Request.Context(), c.Query("raid_id"))
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, currencies)
}

// CreateRequirement attaches a currency price to an item
func (h *CatalogHandler) CreateRequirement(c *gin.Context) {
	var req service.CreateRequirementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	requirement, err := h.catalogService.CreateRequirement(c.Request.Context(), &req)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, requirement)
}
