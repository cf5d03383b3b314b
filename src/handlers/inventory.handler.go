package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"percetakan-backend/src/requests"
	"percetakan-backend/src/services"
)

type InventoryHandler struct {
	Service *services.InventoryService
}

// CreateItem registers a new stock item.
func (h *InventoryHandler) CreateItem(c *gin.Context) {
	var req requests.CreateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.Service.CreateItem(services.CreateInventoryItemRequest(req))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Inventory item created",
		"data":    item,
	})
}

// UseStock draws stock: the balance goes down and a usage record is added.
func (h *InventoryHandler) UseStock(c *gin.Context) {
	var req requests.UseStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.Service.UseStock(services.UseStockRequest(req))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Stock usage recorded",
		"data":    item,
	})
}
