package models

import "time"

// ============ STATUS ENUMS ============
type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "Belum Lunas"
	PaymentStatusPaid   PaymentStatus = "Lunas"
)

type ProductionStatus string

const (
	ProductionStatusQueue     ProductionStatus = "Antrian"
	ProductionStatusPrinting  ProductionStatus = "Proses Cetak"
	ProductionStatusWarehouse ProductionStatus = "Gudang"
	ProductionStatusDelivered ProductionStatus = "Delivered"
)

// Receivable (piutang) is created when an order is processed for payment,
// 1:1 with an Order through NotaID.
type Receivable struct {
	ID     uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	NotaID string `gorm:"size:40;uniqueIndex;not null" json:"nota_id"`

	Amount   float64 `gorm:"not null" json:"amount"`
	Discount float64 `gorm:"not null;default:0" json:"discount"`

	Payments []Payment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"payments"`

	PaymentStatus    PaymentStatus    `gorm:"size:20;not null;index" json:"payment_status"`
	ProductionStatus ProductionStatus `gorm:"size:20;not null;index" json:"production_status"`

	// ISO YYYY-MM-DD, empty until delivered. This field, not the kanban card
	// position, feeds the "delivered today" recap.
	DeliveryDate string `gorm:"size:10" json:"delivery_date"`
	DeliveryNote string `gorm:"size:255" json:"delivery_note"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Receivable) TableName() string {
	return "receivables"
}

// Remaining is the unclamped outstanding balance. Callers that need the
// "active" value take max(0, Remaining).
func (r *Receivable) Remaining() float64 {
	paid := 0.0
	for _, p := range r.Payments {
		paid += p.Amount
	}
	return r.Amount - r.Discount - paid
}

type Payment struct {
	ID           uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	ReceivableID uint    `gorm:"index;not null" json:"receivable_id"`
	RefCode      string  `gorm:"size:40" json:"ref_code"`
	Amount       float64 `gorm:"not null" json:"amount"`
	Date         string  `gorm:"size:10;not null;index" json:"date"`
	Method       string  `gorm:"size:60" json:"method"`

	CreatedAt time.Time `json:"created_at"`
}

func (Payment) TableName() string {
	return "payments"
}
