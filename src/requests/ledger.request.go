package requests

// ============ LEGACY BALANCES ============
type SetLegacyBalanceRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
	Date   string  `json:"date" binding:"required"`
}

// ============ LEGACY RECEIVABLES ============
type LegacyReceivableRequest struct {
	Name   string  `json:"name" binding:"required"`
	Amount float64 `json:"amount" binding:"required,gt=0"`
	Date   string  `json:"date" binding:"required"`
}

type SettleLegacyReceivableRequest struct {
	Date string `json:"date" binding:"required"`
}

// ============ EXPENSES / ASSETS / DEBTS ============
type AddExpenseRequest struct {
	Name   string  `json:"name" binding:"required"`
	Amount float64 `json:"amount" binding:"required,gt=0"`
	Date   string  `json:"date" binding:"required"`
}

type AddAssetRequest struct {
	Name  string  `json:"name" binding:"required"`
	Value float64 `json:"value" binding:"required,gt=0"`
	Date  string  `json:"date" binding:"required"`
}

type AddDebtRequest struct {
	Name   string  `json:"name" binding:"required"`
	Amount float64 `json:"amount" binding:"required,gt=0"`
	Date   string  `json:"date" binding:"required"`
	Note   string  `json:"note"`
}
