package models

import "time"

// ============ ENUMS & TYPES ============
type InventoryType string

const (
	InventoryTypeRawMaterial  InventoryType = "Bahan Baku"
	InventoryTypeFinishedGood InventoryType = "Barang Jadi"
)

// InventoryItem is material/goods stock. Stock only goes down through the
// "use stock" action that adds a StockUsage; it is never derived from orders.
type InventoryItem struct {
	ID    uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	Name  string        `gorm:"size:180;not null" json:"name"`
	Unit  string        `gorm:"size:20;not null" json:"unit"`
	Type  InventoryType `gorm:"size:20;not null" json:"type"`
	Stock float64       `gorm:"not null;default:0" json:"stock"`

	Usages []StockUsage `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"usages"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (InventoryItem) TableName() string {
	return "inventory_items"
}

type StockUsage struct {
	ID              uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	InventoryItemID uint    `gorm:"index;not null" json:"inventory_item_id"`
	Date            string  `gorm:"size:10;not null;index" json:"date"`
	Amount          float64 `gorm:"not null" json:"amount"`

	CreatedAt time.Time `json:"created_at"`
}

func (StockUsage) TableName() string {
	return "stock_usages"
}
