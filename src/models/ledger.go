package models

import "time"

// ExpenseItem is a running-system expense, dated per item.
type ExpenseItem struct {
	ID     uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name   string  `gorm:"size:180;not null" json:"name"`
	Amount float64 `gorm:"not null" json:"amount"`
	Date   string  `gorm:"size:10;not null;index" json:"date"`

	CreatedAt time.Time `json:"created_at"`
}

func (ExpenseItem) TableName() string {
	return "expense_items"
}

// ============ LEGACY LEDGER ============
// Balances carried over from the old bookkeeping: running totals with no
// per-item detail. LegacyIncome and LegacyExpense are effectively single
// rows (set replaces, clear removes); aggregation still sums every row so it
// stays total.

type LegacyIncome struct {
	ID     uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Amount float64 `gorm:"not null" json:"amount"`
	Date   string  `gorm:"size:10;not null" json:"date"`
}

func (LegacyIncome) TableName() string {
	return "legacy_incomes"
}

type LegacyExpense struct {
	ID     uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Amount float64 `gorm:"not null" json:"amount"`
	Date   string  `gorm:"size:10;not null" json:"date"`
}

func (LegacyExpense) TableName() string {
	return "legacy_expenses"
}

// LegacyReceivable is an old receivable, all-or-nothing: no installments,
// settled through an operation that turns it into an ExpenseItem.
type LegacyReceivable struct {
	ID     uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name   string  `gorm:"size:180;not null" json:"name"`
	Amount float64 `gorm:"not null" json:"amount"`
	Date   string  `gorm:"size:10;not null" json:"date"`
}

func (LegacyReceivable) TableName() string {
	return "legacy_receivables"
}

// ============ ASET & HUTANG ============

type AssetItem struct {
	ID    uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name  string  `gorm:"size:180;not null" json:"name"`
	Value float64 `gorm:"not null" json:"value"`
	Date  string  `gorm:"size:10;not null" json:"date"`
}

func (AssetItem) TableName() string {
	return "asset_items"
}

type DebtItem struct {
	ID     uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name   string  `gorm:"size:180;not null" json:"name"`
	Amount float64 `gorm:"not null" json:"amount"`
	Date   string  `gorm:"size:10;not null" json:"date"`
	Note   string  `gorm:"size:255" json:"note"`
}

func (DebtItem) TableName() string {
	return "debt_items"
}
