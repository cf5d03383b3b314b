package services

import (
	"percetakan-backend/src/models"
	"percetakan-backend/src/utils"
)

// Permission key per dashboard section. The filter is exact-match: a missing
// child key hides that section even when other keys are present.
const (
	PermDashboardSales      = "dashboard/penjualan"
	PermDashboardFinance    = "dashboard/keuangan"
	PermDashboardProduction = "dashboard/produksi"
	PermReportSales         = "reports/sales"
	PermReportReceivables   = "reports/receivables"
	PermReportInventory     = "reports/inventory"
)

// ReportTabs in display order; used to reset the active tab when the
// permission set changes.
var ReportTabs = []string{PermReportSales, PermReportReceivables, PermReportInventory}

// ============ SECTION TYPES ============

type SalesSection struct {
	TodayIncome          float64              `json:"today_income"`
	TodayIncomeDisplay   string               `json:"today_income_display"`
	TodayTransactions    int                  `json:"today_transactions"`
	SalesLast30Days      []DailyPoint         `json:"sales_last_30_days"`
	OrdersLast30Days     []DailyPoint         `json:"orders_last_30_days"`
	DeliveredToday       int                  `json:"delivered_today"`
	RecentPaymentFeed    []PaymentActivity    `json:"recent_payments"`
	RecentProductionFeed []ProductionActivity `json:"recent_production_items"`
}

type FinanceSection struct {
	ActiveReceivables        float64      `json:"active_receivables"`
	ActiveReceivablesDisplay string       `json:"active_receivables_display"`
	TodayExpenses            float64      `json:"today_expenses"`
	FlowBreakdown            []FlowBucket `json:"flow_breakdown"`
	Recap                    AnnualRecap  `json:"recap"`
}

type ProductionSection struct {
	StageCounts    StageCounts `json:"stage_counts"`
	DeliveredToday int         `json:"delivered_today"`
}

// Dashboard carries only the sections the permission set allows.
type Dashboard struct {
	Date       string             `json:"date"`
	Sales      *SalesSection      `json:"sales,omitempty"`
	Finance    *FinanceSection    `json:"finance,omitempty"`
	Production *ProductionSection `json:"production,omitempty"`
}

// BuildDashboard assembles the dashboard from one snapshot, filtered by the
// permission set. Pure: no DB access, no state.
func BuildDashboard(s *models.Snapshot, today string, permissions []string) Dashboard {
	d := Dashboard{Date: today}

	if Visible(permissions, PermDashboardSales) {
		d.Sales = &SalesSection{
			TodayIncome:          TodayIncome(s, today),
			TodayIncomeDisplay:   utils.FormatRupiah(TodayIncome(s, today)),
			TodayTransactions:    TodayTransactionCount(s, today),
			SalesLast30Days:      SalesLast30Days(s, today),
			OrdersLast30Days:     OrdersLast30Days(s, today),
			DeliveredToday:       DeliveredTodayCount(s, today),
			RecentPaymentFeed:    RecentPayments(s, today),
			RecentProductionFeed: RecentProductionItems(s, today),
		}
	}

	if Visible(permissions, PermDashboardFinance) {
		total := ActiveReceivablesTotal(s)
		d.Finance = &FinanceSection{
			ActiveReceivables:        total,
			ActiveReceivablesDisplay: utils.FormatRupiah(total),
			TodayExpenses:            TodayExpenses(s, today),
			FlowBreakdown:            TodayFlowBreakdown(s, today),
			Recap:                    YearlyRecap(s, today),
		}
	}

	if Visible(permissions, PermDashboardProduction) {
		d.Production = &ProductionSection{
			StageCounts:    StageItemCounts(s),
			DeliveredToday: DeliveredTodayCount(s, today),
		}
	}

	return d
}
