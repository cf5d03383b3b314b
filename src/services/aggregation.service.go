package services

import (
	"sort"
	"strings"
	"time"

	"percetakan-backend/src/models"
	"percetakan-backend/src/utils"
)

// Aggregation engine: pure functions over one Snapshot plus an ISO reference
// date. No state survives between calls; every trigger recomputes in full.
// All arithmetic stays float64, rounding happens only at the display/export
// boundary.

const recentActivityLimit = 10

// ============ OUTPUT TYPES ============

// DailyPoint is one daily bucket on a time series.
type DailyPoint struct {
	Date  string  `json:"date"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// FlowBucket is one slice of today's financial-flow breakdown.
type FlowBucket struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// StageCounts holds item counts (not card counts) per production stage.
type StageCounts struct {
	Queue     int `json:"queue"`
	Printing  int `json:"printing"`
	Warehouse int `json:"warehouse"`
	Delivered int `json:"delivered"`
}

// PaymentActivity and ProductionActivity are the two activity feed variants,
// with explicit fields instead of a dynamic map.
type PaymentActivity struct {
	NotaID       string  `json:"nota_id"`
	CustomerName string  `json:"customer_name"`
	Amount       float64 `json:"amount"`
	Method       string  `json:"method"`
	Date         string  `json:"date"`
}

type ProductionActivity struct {
	NotaID       string  `json:"nota_id"`
	CustomerName string  `json:"customer_name"`
	Description  string  `json:"description"`
	Qty          float64 `json:"qty"`
	Status       string  `json:"status"`
}

type MonthBucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// AnnualRecap combines the running system's figures with the legacy balances.
type AnnualRecap struct {
	Year          int           `json:"year"`
	TotalIncome   float64       `json:"total_income"`
	TotalExpense  float64       `json:"total_expense"`
	Balance       float64       `json:"balance"`
	MonthlyOrders []MonthBucket `json:"monthly_orders"`
}

// ============ TODAY SNAPSHOT ============

// TodayIncome sums every payment dated today, across all receivables.
func TodayIncome(s *models.Snapshot, today string) float64 {
	total := 0.0
	for i := range s.Receivables {
		for _, p := range s.Receivables[i].Payments {
			if p.Date == today {
				total += p.Amount
			}
		}
	}
	return total
}

// TodayTransactionCount counts orders dated today.
func TodayTransactionCount(s *models.Snapshot, today string) int {
	count := 0
	for i := range s.Orders {
		if s.Orders[i].OrderDate == today {
			count++
		}
	}
	return count
}

// ActiveReceivablesTotal sums the remaining balance of unpaid receivables
// (clamped at zero) plus every legacy receivable. Legacy receivables are
// all-or-nothing and count in full until settled.
func ActiveReceivablesTotal(s *models.Snapshot) float64 {
	total := 0.0
	for i := range s.Receivables {
		r := &s.Receivables[i]
		if r.PaymentStatus != models.PaymentStatusUnpaid {
			continue
		}
		total += clampRemaining(r)
	}
	for i := range s.LegacyReceivables {
		total += s.LegacyReceivables[i].Amount
	}
	return total
}

// TodayExpenses sums the running system's expenses dated today. Legacy
// expenses have no daily granularity and are excluded.
func TodayExpenses(s *models.Snapshot, today string) float64 {
	total := 0.0
	for i := range s.Expenses {
		if s.Expenses[i].Date == today {
			total += s.Expenses[i].Amount
		}
	}
	return total
}

// TodayFlowBreakdown builds today's four flow buckets; zero-valued buckets
// are dropped so the chart never renders empty slices.
func TodayFlowBreakdown(s *models.Snapshot, today string) []FlowBucket {
	revenue := 0.0
	outstanding := 0.0
	for i := range s.Orders {
		o := &s.Orders[i]
		if o.OrderDate != today {
			continue
		}
		revenue += o.TotalPrice
		if r := s.ReceivableByNota(o.NotaID); r != nil {
			outstanding += clampRemaining(r)
		} else {
			// Belum diproses untuk pembayaran: seluruh total masih tagihan.
			outstanding += o.TotalPrice
		}
	}

	buckets := []FlowBucket{
		{Label: "Omzet Pesanan", Amount: revenue},
		{Label: "Kas Masuk", Amount: TodayIncome(s, today)},
		{Label: "Sisa Tagihan", Amount: outstanding},
		{Label: "Pengeluaran", Amount: TodayExpenses(s, today)},
	}

	out := make([]FlowBucket, 0, len(buckets))
	for _, b := range buckets {
		if b.Amount != 0 {
			out = append(out, b)
		}
	}
	return out
}

// ============ TIME SERIES ============

// SalesLast30Days returns revenue per day for exactly the 30 days ending
// today, zero-seeded for every day, in ascending calendar order.
func SalesLast30Days(s *models.Snapshot, today string) []DailyPoint {
	return last30Days(today, func(date string) float64 {
		total := 0.0
		for i := range s.Orders {
			if s.Orders[i].OrderDate == date {
				total += s.Orders[i].TotalPrice
			}
		}
		return total
	})
}

// OrdersLast30Days returns order counts per day, same buckets as revenue.
func OrdersLast30Days(s *models.Snapshot, today string) []DailyPoint {
	return last30Days(today, func(date string) float64 {
		count := 0.0
		for i := range s.Orders {
			if s.Orders[i].OrderDate == date {
				count++
			}
		}
		return count
	})
}

func last30Days(today string, valueAt func(date string) float64) []DailyPoint {
	end, err := time.Parse(utils.DateLayout, today)
	if err != nil {
		end = time.Now()
	}

	points := make([]DailyPoint, 0, 30)
	for i := 29; i >= 0; i-- {
		date := end.AddDate(0, 0, -i).Format(utils.DateLayout)
		points = append(points, DailyPoint{
			Date:  date,
			Label: utils.DayMonthLabel(date),
			Value: valueAt(date),
		})
	}
	return points
}

// ============ PRODUCTION ============

// StageItemCounts sums, per kanban stage, the line items of each order the
// stage's cards reference. An order with 3 items contributes 3, not 1; a card
// pointing at an unknown nota contributes 0.
func StageItemCounts(s *models.Snapshot) StageCounts {
	var counts StageCounts
	for i := range s.KanbanCards {
		card := &s.KanbanCards[i]
		items := 0
		if o := s.OrderByNota(card.NotaID); o != nil {
			items = len(o.Items)
		}
		switch card.Stage {
		case models.StageQueue:
			counts.Queue += items
		case models.StagePrinting:
			counts.Printing += items
		case models.StageWarehouse:
			counts.Warehouse += items
		case models.StageDelivered:
			counts.Delivered += items
		}
	}
	return counts
}

// DeliveredTodayCount counts order items whose receivable is Delivered AND
// whose delivery date is today. The receivable fields are authoritative, not
// the kanban card position; the two can drift apart.
func DeliveredTodayCount(s *models.Snapshot, today string) int {
	count := 0
	for i := range s.Receivables {
		r := &s.Receivables[i]
		if r.ProductionStatus != models.ProductionStatusDelivered || r.DeliveryDate != today {
			continue
		}
		if o := s.OrderByNota(r.NotaID); o != nil {
			count += len(o.Items)
		}
	}
	return count
}

// ============ RECENT ACTIVITY ============

// RecentPayments flattens today's payments out of the receivables, sorted by
// nota descending (lexicographic, not chronological), capped at 10.
func RecentPayments(s *models.Snapshot, today string) []PaymentActivity {
	var feed []PaymentActivity
	for i := range s.Receivables {
		r := &s.Receivables[i]
		customer := ""
		if o := s.OrderByNota(r.NotaID); o != nil {
			customer = o.CustomerName
		}
		for _, p := range r.Payments {
			if p.Date != today {
				continue
			}
			feed = append(feed, PaymentActivity{
				NotaID:       r.NotaID,
				CustomerName: customer,
				Amount:       p.Amount,
				Method:       p.Method,
				Date:         p.Date,
			})
		}
	}

	sort.SliceStable(feed, func(i, j int) bool {
		return feed[i].NotaID > feed[j].NotaID
	})
	if len(feed) > recentActivityLimit {
		feed = feed[:recentActivityLimit]
	}
	return feed
}

// RecentProductionItems lists today's order lines, nota descending, capped
// at 10. Orders without a receivable show up as Antrian.
func RecentProductionItems(s *models.Snapshot, today string) []ProductionActivity {
	var feed []ProductionActivity
	for i := range s.Orders {
		o := &s.Orders[i]
		if o.OrderDate != today {
			continue
		}
		status := models.ProductionStatusQueue
		if r := s.ReceivableByNota(o.NotaID); r != nil {
			status = r.ProductionStatus
		}
		for _, item := range o.Items {
			feed = append(feed, ProductionActivity{
				NotaID:       o.NotaID,
				CustomerName: o.CustomerName,
				Description:  item.Description,
				Qty:          item.Qty,
				Status:       string(status),
			})
		}
	}

	sort.SliceStable(feed, func(i, j int) bool {
		return feed[i].NotaID > feed[j].NotaID
	})
	if len(feed) > recentActivityLimit {
		feed = feed[:recentActivityLimit]
	}
	return feed
}

// ============ ANNUAL RECAP ============

// YearlyRecap partitions the running system's income/expense by the calendar
// year of the reference date; legacy balances count in full with no year
// partition. Income is cash-basis: payment date, not order date.
func YearlyRecap(s *models.Snapshot, refDate string) AnnualRecap {
	ref, err := time.Parse(utils.DateLayout, refDate)
	if err != nil {
		ref = time.Now()
	}
	yearPrefix := ref.Format("2006") + "-"

	income := 0.0
	for i := range s.Receivables {
		for _, p := range s.Receivables[i].Payments {
			if strings.HasPrefix(p.Date, yearPrefix) {
				income += p.Amount
			}
		}
	}
	for i := range s.LegacyIncomes {
		income += s.LegacyIncomes[i].Amount
	}

	expense := 0.0
	for i := range s.Expenses {
		if strings.HasPrefix(s.Expenses[i].Date, yearPrefix) {
			expense += s.Expenses[i].Amount
		}
	}
	for i := range s.LegacyExpenses {
		expense += s.LegacyExpenses[i].Amount
	}

	months := utils.MonthLabels()
	monthly := make([]MonthBucket, len(months))
	for i, label := range months {
		monthly[i] = MonthBucket{Label: label}
	}
	for i := range s.Orders {
		t, err := time.Parse(utils.DateLayout, s.Orders[i].OrderDate)
		if err != nil || t.Year() != ref.Year() {
			continue
		}
		monthly[int(t.Month())-1].Count++
	}

	return AnnualRecap{
		Year:          ref.Year(),
		TotalIncome:   income,
		TotalExpense:  expense,
		Balance:       income - expense,
		MonthlyOrders: monthly,
	}
}

// ============ HELPERS ============

func clampRemaining(r *models.Receivable) float64 {
	remaining := r.Remaining()
	if remaining < 0 {
		return 0
	}
	return remaining
}
