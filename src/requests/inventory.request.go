package requests

// ============ INVENTORY ============
type CreateInventoryItemRequest struct {
	Name  string  `json:"name" binding:"required"`
	Unit  string  `json:"unit" binding:"required"`
	Type  string  `json:"type" binding:"required,oneof='Bahan Baku' 'Barang Jadi'"`
	Stock float64 `json:"stock" binding:"gte=0"`
}

type UseStockRequest struct {
	ItemID uint    `json:"item_id" binding:"required"`
	Amount float64 `json:"amount" binding:"required,gt=0"`
	Date   string  `json:"date" binding:"required"`
}
