package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"percetakan-backend/src/requests"
	"percetakan-backend/src/services"
)

type OrderHandler struct {
	Service *services.OrderService
}

// CreateOrder handles new order intake.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req requests.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items := make([]services.CreateOrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, services.CreateOrderItem{
			ProductID:     it.ProductID,
			FinishingName: it.FinishingName,
			Description:   it.Description,
			Length:        it.Length,
			Width:         it.Width,
			Qty:           it.Qty,
			CustomPrice:   it.CustomPrice,
		})
	}

	order, err := h.Service.CreateOrder(services.CreateOrderRequest{
		NotaID:       req.NotaID,
		CustomerName: req.CustomerName,
		OrderDate:    req.OrderDate,
		Items:        items,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order created successfully",
		"data":    order,
	})
}

// ProcessForPayment turns an order into a receivable plus a queue card.
func (h *OrderHandler) ProcessForPayment(c *gin.Context) {
	var req requests.ProcessPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	receivable, err := h.Service.ProcessForPayment(services.ProcessPaymentRequest{
		NotaID:   req.NotaID,
		Discount: req.Discount,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order processed for payment",
		"data":    receivable,
	})
}

// AddPayment records a payment against a receivable.
func (h *OrderHandler) AddPayment(c *gin.Context) {
	var req requests.AddPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	receivable, err := h.Service.AddPayment(services.AddPaymentRequest{
		NotaID: req.NotaID,
		Amount: req.Amount,
		Date:   req.Date,
		Method: req.Method,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Payment recorded successfully",
		"data":    receivable,
	})
}
