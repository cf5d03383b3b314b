package routes

import (
	"github.com/gin-gonic/gin"

	"percetakan-backend/src/handlers"
)

type Handlers struct {
	Dashboard *handlers.DashboardHandler
	Report    *handlers.ReportHandler
	Order     *handlers.OrderHandler
	Ledger    *handlers.LedgerHandler
	Inventory *handlers.InventoryHandler
	Kanban    *handlers.KanbanHandler
}

func RegisterRoutes(r *gin.RouterGroup, h Handlers) {
	// Dashboard
	r.GET("/dashboard", h.Dashboard.GetDashboard)

	// Reports
	r.GET("/reports/:type", h.Report.GetReport)
	r.GET("/reports/:type/export", h.Report.ExportReport)

	// Orders & payments
	r.POST("/orders", h.Order.CreateOrder)
	r.POST("/orders/process-payment", h.Order.ProcessForPayment)
	r.POST("/payments", h.Order.AddPayment)

	// Legacy ledger
	r.PUT("/legacy/income", h.Ledger.SetLegacyIncome)
	r.DELETE("/legacy/income", h.Ledger.ClearLegacyIncome)
	r.PUT("/legacy/expense", h.Ledger.SetLegacyExpense)
	r.DELETE("/legacy/expense", h.Ledger.ClearLegacyExpense)
	r.POST("/legacy/receivables", h.Ledger.AddLegacyReceivable)
	r.PUT("/legacy/receivables/:id", h.Ledger.UpdateLegacyReceivable)
	r.DELETE("/legacy/receivables/:id", h.Ledger.DeleteLegacyReceivable)
	r.POST("/legacy/receivables/:id/settle", h.Ledger.SettleLegacyReceivable)

	// Expenses, assets, debts
	r.POST("/expenses", h.Ledger.AddExpense)
	r.POST("/assets", h.Ledger.AddAsset)
	r.POST("/debts", h.Ledger.AddDebt)

	// Inventory
	r.POST("/inventory/items", h.Inventory.CreateItem)
	r.POST("/inventory/use", h.Inventory.UseStock)

	// Production kanban
	r.POST("/kanban/move", h.Kanban.MoveCard)
	r.POST("/kanban/cancel", h.Kanban.CancelQueue)
}
