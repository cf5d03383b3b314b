package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"percetakan-backend/src/requests"
	"percetakan-backend/src/services"
	"percetakan-backend/src/utils"
)

type KanbanHandler struct {
	Service *services.KanbanService
}

// MoveCard moves a production card between stages.
func (h *KanbanHandler) MoveCard(c *gin.Context) {
	var req requests.MoveCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date := req.Date
	if date == "" {
		date = utils.Today()
	}

	err := h.Service.MoveCard(services.MoveCardRequest{
		NotaID:    req.NotaID,
		FromStage: req.FromStage,
		ToStage:   req.ToStage,
		Date:      date,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Card moved successfully"})
}

// CancelQueue - batalkan nota dari antrian.
func (h *KanbanHandler) CancelQueue(c *gin.Context) {
	var req requests.CancelQueueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Service.CancelQueue(req.NotaID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Queue cancelled successfully"})
}
