package services_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"percetakan-backend/src/models"
	"percetakan-backend/src/services"
)

const today = "2024-03-15"

func dashboardSnapshot() *models.Snapshot {
	return &models.Snapshot{
		Orders: []models.Order{
			{
				NotaID: "N-0101", CustomerName: "Budi", OrderDate: today,
				TotalPrice: 100000,
				Items: []models.OrderItem{
					{Description: "Banner toko", Qty: 1},
					{Description: "Stiker", Qty: 10},
					{Description: "Kartu nama", Qty: 2},
				},
			},
			{
				NotaID: "N-0102", CustomerName: "Toko Jaya", OrderDate: today,
				TotalPrice: 50000,
				Items:      []models.OrderItem{{Description: "Spanduk", Qty: 1}},
			},
			{
				NotaID: "N-0001", CustomerName: "Budi", OrderDate: "2024-03-01",
				TotalPrice: 200000,
				Items:      []models.OrderItem{{Description: "Banner lama", Qty: 2}},
			},
		},
		Receivables: []models.Receivable{
			{
				NotaID: "N-0101", Amount: 100000, Discount: 10000,
				PaymentStatus:    models.PaymentStatusUnpaid,
				ProductionStatus: models.ProductionStatusPrinting,
				Payments: []models.Payment{
					{Amount: 50000, Date: "2024-03-01"},
					{Amount: 30000, Date: today},
				},
			},
			{
				NotaID: "N-0001", Amount: 200000,
				PaymentStatus:    models.PaymentStatusPaid,
				ProductionStatus: models.ProductionStatusDelivered,
				DeliveryDate:     today,
				Payments:         []models.Payment{{Amount: 200000, Date: "2024-03-02"}},
			},
		},
		Expenses: []models.ExpenseItem{
			{Name: "Tinta", Amount: 75000, Date: today},
			{Name: "Listrik", Amount: 500000, Date: "2024-02-28"},
			{Name: "Sewa 2023", Amount: 900000, Date: "2023-12-01"},
		},
		LegacyReceivables: []models.LegacyReceivable{
			{Name: "Pak Haji", Amount: 20000, Date: "2023-06-01"},
		},
		LegacyIncomes:  []models.LegacyIncome{{Amount: 1000000, Date: "2023-12-31"}},
		LegacyExpenses: []models.LegacyExpense{{Amount: 400000, Date: "2023-12-31"}},
		KanbanCards: []models.KanbanCard{
			{NotaID: "N-0101", Stage: models.StageQueue},
			{NotaID: "N-HILANG", Stage: models.StageQueue},
			{NotaID: "N-0102", Stage: models.StagePrinting},
			{NotaID: "N-0001", Stage: models.StageDelivered},
		},
	}
}

func TestTodaySnapshot(t *testing.T) {
	s := dashboardSnapshot()

	t.Run("today income counts only matching-date payments", func(t *testing.T) {
		assert.Equal(t, 30000.0, services.TodayIncome(s, today))
	})

	t.Run("today transaction count", func(t *testing.T) {
		assert.Equal(t, 2, services.TodayTransactionCount(s, today))
	})

	t.Run("today expenses exclude legacy and other days", func(t *testing.T) {
		assert.Equal(t, 75000.0, services.TodayExpenses(s, today))
	})
}

func TestActiveReceivablesTotal(t *testing.T) {
	s := dashboardSnapshot()

	t.Run("clamped remaining plus full legacy", func(t *testing.T) {
		// (100000 - 10000 - 80000) + 20000
		assert.Equal(t, 30000.0, services.ActiveReceivablesTotal(s))
	})

	t.Run("overpaid receivable contributes exactly zero", func(t *testing.T) {
		s := &models.Snapshot{
			Receivables: []models.Receivable{
				{
					NotaID: "N-1", Amount: 50000,
					PaymentStatus: models.PaymentStatusUnpaid,
					Payments:      []models.Payment{{Amount: 70000, Date: "2024-01-01"}},
				},
			},
		}
		assert.Equal(t, 0.0, services.ActiveReceivablesTotal(s))
	})

	t.Run("paid receivables are skipped", func(t *testing.T) {
		s := &models.Snapshot{
			Receivables: []models.Receivable{
				{NotaID: "N-1", Amount: 50000, PaymentStatus: models.PaymentStatusPaid},
			},
		}
		assert.Equal(t, 0.0, services.ActiveReceivablesTotal(s))
	})
}

func TestTodayFlowBreakdown(t *testing.T) {
	s := dashboardSnapshot()

	t.Run("four buckets with values", func(t *testing.T) {
		buckets := services.TodayFlowBreakdown(s, today)

		byLabel := map[string]float64{}
		for _, b := range buckets {
			byLabel[b.Label] = b.Amount
		}
		assert.Equal(t, 150000.0, byLabel["Omzet Pesanan"])
		assert.Equal(t, 30000.0, byLabel["Kas Masuk"])
		// N-0101 sisa 10000, N-0102 belum diproses → 50000 penuh
		assert.Equal(t, 60000.0, byLabel["Sisa Tagihan"])
		assert.Equal(t, 75000.0, byLabel["Pengeluaran"])
	})

	t.Run("zero buckets are omitted", func(t *testing.T) {
		empty := &models.Snapshot{}
		assert.Empty(t, services.TodayFlowBreakdown(empty, today))
	})
}

func TestLast30DaysSeries(t *testing.T) {
	s := dashboardSnapshot()

	t.Run("exactly 30 buckets in calendar order even when empty", func(t *testing.T) {
		points := services.SalesLast30Days(&models.Snapshot{}, today)
		assert.Len(t, points, 30)
		for i := 1; i < len(points); i++ {
			assert.Less(t, points[i-1].Date, points[i].Date)
		}
		assert.Equal(t, today, points[29].Date)
		assert.Equal(t, "2024-02-15", points[0].Date)
	})

	t.Run("orders accumulate into matching buckets", func(t *testing.T) {
		points := services.SalesLast30Days(s, today)
		byDate := map[string]float64{}
		for _, p := range points {
			byDate[p.Date] = p.Value
		}
		assert.Equal(t, 150000.0, byDate[today])
		assert.Equal(t, 200000.0, byDate["2024-03-01"])
		assert.Equal(t, 0.0, byDate["2024-02-20"])
	})

	t.Run("order count series", func(t *testing.T) {
		points := services.OrdersLast30Days(s, today)
		assert.Len(t, points, 30)
		assert.Equal(t, 2.0, points[29].Value)
	})
}

func TestStageItemCounts(t *testing.T) {
	s := dashboardSnapshot()

	t.Run("counts line items not cards, missing order contributes zero", func(t *testing.T) {
		counts := services.StageItemCounts(s)
		// N-0101 punya 3 item, N-HILANG tidak ada di tabel pesanan
		assert.Equal(t, 3, counts.Queue)
		assert.Equal(t, 1, counts.Printing)
		assert.Equal(t, 0, counts.Warehouse)
		assert.Equal(t, 1, counts.Delivered)
	})
}

func TestDeliveredTodayCount(t *testing.T) {
	s := dashboardSnapshot()

	t.Run("receivable status and date are authoritative", func(t *testing.T) {
		assert.Equal(t, 1, services.DeliveredTodayCount(s, today))
	})

	t.Run("delivered on another day does not count", func(t *testing.T) {
		assert.Equal(t, 0, services.DeliveredTodayCount(s, "2024-03-16"))
	})
}

func TestRecentActivity(t *testing.T) {
	s := dashboardSnapshot()

	t.Run("payments today sorted by nota descending", func(t *testing.T) {
		feed := services.RecentPayments(s, today)
		assert.Len(t, feed, 1)
		assert.Equal(t, "N-0101", feed[0].NotaID)
		assert.Equal(t, 30000.0, feed[0].Amount)
		assert.Equal(t, "Budi", feed[0].CustomerName)
	})

	t.Run("production items flatten order lines", func(t *testing.T) {
		feed := services.RecentProductionItems(s, today)
		assert.Len(t, feed, 4)
		// N-0102 > N-0101 leksikografis
		assert.Equal(t, "N-0102", feed[0].NotaID)
		assert.Equal(t, string(models.ProductionStatusQueue), feed[0].Status)
		assert.Equal(t, string(models.ProductionStatusPrinting), feed[1].Status)
	})

	t.Run("feed capped at ten entries", func(t *testing.T) {
		big := &models.Snapshot{}
		for i := 0; i < 15; i++ {
			nota := fmt.Sprintf("N-%04d", i)
			big.Orders = append(big.Orders, models.Order{
				NotaID: nota, OrderDate: today,
				Items: []models.OrderItem{{Description: "x", Qty: 1}},
			})
		}
		feed := services.RecentProductionItems(big, today)
		assert.Len(t, feed, 10)
		assert.Equal(t, "N-0014", feed[0].NotaID)
	})
}

func TestYearlyRecap(t *testing.T) {
	s := dashboardSnapshot()

	t.Run("year partitioned income and expense plus full legacy", func(t *testing.T) {
		recap := services.YearlyRecap(s, today)
		assert.Equal(t, 2024, recap.Year)
		// Pembayaran 2024: 50000 + 30000 + 200000, plus saldo lama 1000000
		assert.Equal(t, 1280000.0, recap.TotalIncome)
		// Pengeluaran 2024: 75000 + 500000, plus saldo lama 400000
		assert.Equal(t, 975000.0, recap.TotalExpense)
		assert.Equal(t, recap.TotalIncome-recap.TotalExpense, recap.Balance)
	})

	t.Run("twelve zero-seeded month buckets", func(t *testing.T) {
		recap := services.YearlyRecap(&models.Snapshot{}, today)
		assert.Len(t, recap.MonthlyOrders, 12)
		assert.Equal(t, "Januari", recap.MonthlyOrders[0].Label)
		assert.Equal(t, "Desember", recap.MonthlyOrders[11].Label)
		for _, m := range recap.MonthlyOrders {
			assert.Equal(t, 0, m.Count)
		}
	})

	t.Run("orders bucketed by month of reference year only", func(t *testing.T) {
		recap := services.YearlyRecap(s, today)
		assert.Equal(t, 3, recap.MonthlyOrders[2].Count) // Maret
		assert.Equal(t, 0, recap.MonthlyOrders[0].Count)
	})
}

func TestBuildDashboard(t *testing.T) {
	s := dashboardSnapshot()

	t.Run("sections follow permission set", func(t *testing.T) {
		d := services.BuildDashboard(s, today, []string{services.PermDashboardSales})
		assert.NotNil(t, d.Sales)
		assert.Nil(t, d.Finance)
		assert.Nil(t, d.Production)
	})

	t.Run("no permissions yields empty dashboard", func(t *testing.T) {
		d := services.BuildDashboard(s, today, nil)
		assert.Nil(t, d.Sales)
		assert.Nil(t, d.Finance)
		assert.Nil(t, d.Production)
	})
}
