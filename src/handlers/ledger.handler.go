package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"percetakan-backend/src/requests"
	"percetakan-backend/src/services"
)

type LedgerHandler struct {
	Service *services.LedgerService
}

// ============ LEGACY BALANCES ============

func (h *LedgerHandler) SetLegacyIncome(c *gin.Context) {
	var req requests.SetLegacyBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.SetLegacyIncome(services.SetLegacyBalanceRequest(req)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Legacy income updated"})
}

func (h *LedgerHandler) ClearLegacyIncome(c *gin.Context) {
	if err := h.Service.ClearLegacyIncome(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Legacy income cleared"})
}

func (h *LedgerHandler) SetLegacyExpense(c *gin.Context) {
	var req requests.SetLegacyBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.SetLegacyExpense(services.SetLegacyBalanceRequest(req)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Legacy expense updated"})
}

func (h *LedgerHandler) ClearLegacyExpense(c *gin.Context) {
	if err := h.Service.ClearLegacyExpense(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Legacy expense cleared"})
}

// ============ LEGACY RECEIVABLES ============

func (h *LedgerHandler) AddLegacyReceivable(c *gin.Context) {
	var req requests.LegacyReceivableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := h.Service.AddLegacyReceivable(services.LegacyReceivableRequest(req))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Legacy receivable added", "data": item})
}

func (h *LedgerHandler) UpdateLegacyReceivable(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req requests.LegacyReceivableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.UpdateLegacyReceivable(uint(id), services.LegacyReceivableRequest(req)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Legacy receivable updated"})
}

func (h *LedgerHandler) DeleteLegacyReceivable(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.Service.DeleteLegacyReceivable(uint(id)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Legacy receivable deleted"})
}

// SettleLegacyReceivable settles: the old receivable disappears, an expense
// sebesar nilainya. Atomic dari sisi pemanggil.
func (h *LedgerHandler) SettleLegacyReceivable(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req requests.SettleLegacyReceivableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.SettleLegacyReceivable(uint(id), req.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Legacy receivable settled"})
}

// ============ EXPENSES / ASSETS / DEBTS ============

func (h *LedgerHandler) AddExpense(c *gin.Context) {
	var req requests.AddExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := h.Service.AddExpense(services.AddExpenseRequest(req))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Expense added", "data": item})
}

func (h *LedgerHandler) AddAsset(c *gin.Context) {
	var req requests.AddAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := h.Service.AddAsset(services.AddAssetRequest(req))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Asset added", "data": item})
}

func (h *LedgerHandler) AddDebt(c *gin.Context) {
	var req requests.AddDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := h.Service.AddDebt(services.AddDebtRequest(req))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Debt added", "data": item})
}
