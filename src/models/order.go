package models

import "time"

// Order is a customer order. NotaID is the business identity (the nota
// number), not the database primary key. TotalPrice and Details are snapshots
// computed at creation and never recomputed by aggregation.
type Order struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	NotaID       string `gorm:"size:40;uniqueIndex;not null" json:"nota_id"`
	CustomerName string `gorm:"size:180;not null" json:"customer_name"`

	// Tanggal pesanan, ISO YYYY-MM-DD. Dibandingkan sebagai string.
	OrderDate string `gorm:"size:10;not null;index" json:"order_date"`

	Items []OrderItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`

	TotalPrice float64 `gorm:"not null" json:"total_price"`
	Details    string  `gorm:"type:text" json:"details"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem is one order line. Length and Width are stored as decimal strings
// (possibly blank) because non-area categories never use them.
type OrderItem struct {
	ID      uint `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID uint `gorm:"index;not null" json:"order_id"`

	// 0 berarti tidak ada referensi produk.
	ProductID uint `gorm:"index" json:"product_id"`

	FinishingName string `gorm:"size:120" json:"finishing_name"`
	Description   string `gorm:"size:255" json:"description"`

	Length string  `gorm:"size:20" json:"length"`
	Width  string  `gorm:"size:20" json:"width"`
	Qty    float64 `gorm:"not null" json:"qty"`

	// Manually pinned unit price; overrides the resolver result when the
	// order is created.
	CustomPrice *float64 `json:"custom_price,omitempty"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
