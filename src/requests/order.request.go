package requests

// ============ ORDER INTAKE ============
type CreateOrderRequest struct {
	NotaID       string                   `json:"nota_id" binding:"required"`
	CustomerName string                   `json:"customer_name" binding:"required"`
	OrderDate    string                   `json:"order_date" binding:"required"`
	Items        []CreateOrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

type CreateOrderItemRequest struct {
	ProductID     uint     `json:"product_id"`
	FinishingName string   `json:"finishing_name"`
	Description   string   `json:"description" binding:"required"`
	Length        string   `json:"length"`
	Width         string   `json:"width"`
	Qty           float64  `json:"qty" binding:"required,gt=0"`
	CustomPrice   *float64 `json:"custom_price,omitempty"`
}

// ============ PAYMENT ============
type ProcessPaymentRequest struct {
	NotaID   string  `json:"nota_id" binding:"required"`
	Discount float64 `json:"discount" binding:"gte=0"`
}

type AddPaymentRequest struct {
	NotaID string  `json:"nota_id" binding:"required"`
	Amount float64 `json:"amount" binding:"required,gt=0"`
	Date   string  `json:"date" binding:"required"`
	Method string  `json:"method"`
}
