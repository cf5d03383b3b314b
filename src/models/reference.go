package models

import "time"

// ============ PRICE TIERS ============
type CustomerLevel string

const (
	LevelEndCustomer CustomerLevel = "End Customer"
	LevelRetail      CustomerLevel = "Retail"
	LevelGrosir      CustomerLevel = "Grosir"
	LevelReseller    CustomerLevel = "Reseller"
	LevelCorporate   CustomerLevel = "Corporate"
)

// ============ CATEGORY UNIT TYPES ============
type CategoryUnitType string

const (
	// Harga dikali luas (panjang x lebar).
	UnitTypeArea CategoryUnitType = "Per Luas"
	// Harga flat per pcs, dimensi diabaikan.
	UnitTypeFlat CategoryUnitType = "Per Pcs"
)

// Product carries five price columns, one per customer tier.
type Product struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"size:180;not null" json:"name"`

	// Join ke kategori by name, bukan id. Perilaku lookup lama dipertahankan.
	CategoryName string `gorm:"size:120" json:"category_name"`

	PriceEndCustomer float64 `gorm:"not null;default:0" json:"price_end_customer"`
	PriceRetail      float64 `gorm:"not null;default:0" json:"price_retail"`
	PriceGrosir      float64 `gorm:"not null;default:0" json:"price_grosir"`
	PriceReseller    float64 `gorm:"not null;default:0" json:"price_reseller"`
	PriceCorporate   float64 `gorm:"not null;default:0" json:"price_corporate"`

	CreatedAt time.Time `json:"created_at"`
}

func (Product) TableName() string {
	return "products"
}

// TierPrice picks the price column for one tier; unknown tiers fall back to
// End Customer.
func (p *Product) TierPrice(level CustomerLevel) float64 {
	switch level {
	case LevelRetail:
		return p.PriceRetail
	case LevelGrosir:
		return p.PriceGrosir
	case LevelReseller:
		return p.PriceReseller
	case LevelCorporate:
		return p.PriceCorporate
	default:
		return p.PriceEndCustomer
	}
}

type Category struct {
	ID       uint             `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string           `gorm:"size:120;uniqueIndex;not null" json:"name"`
	UnitType CategoryUnitType `gorm:"size:20;not null" json:"unit_type"`
}

func (Category) TableName() string {
	return "categories"
}

type Finishing struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string  `gorm:"size:120;uniqueIndex;not null" json:"name"`
	Surcharge float64 `gorm:"not null;default:0" json:"surcharge"`
}

func (Finishing) TableName() string {
	return "finishings"
}

type Customer struct {
	ID    uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	Name  string        `gorm:"size:180;uniqueIndex;not null" json:"name"`
	Phone string        `gorm:"size:30" json:"phone"`
	Level CustomerLevel `gorm:"size:20;not null;default:'End Customer'" json:"level"`

	CreatedAt time.Time `json:"created_at"`
}

func (Customer) TableName() string {
	return "customers"
}

// Employee carries the flat permission list (path keys like
// "dashboard/penjualan") consumed by the permission filter.
type Employee struct {
	ID          uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string   `gorm:"size:180;not null" json:"name"`
	Role        string   `gorm:"size:60" json:"role"`
	Permissions []string `gorm:"serializer:json" json:"permissions"`

	CreatedAt time.Time `json:"created_at"`
}

func (Employee) TableName() string {
	return "employees"
}
