package services

import (
	"sort"

	"percetakan-backend/src/models"
)

// Report rollups over a date range. Ranges are inclusive on both ends and
// compared as ISO YYYY-MM-DD strings, so they always cover whole days with no
// timezone involved. An empty Start/End leaves that side unbounded.

type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func (r DateRange) Contains(date string) bool {
	if r.Start != "" && date < r.Start {
		return false
	}
	if r.End != "" && date > r.End {
		return false
	}
	return true
}

// ============ ROW TYPES ============

type ProductSalesRow struct {
	ProductName string  `json:"product_name"`
	Quantity    float64 `json:"quantity"`
	Revenue     float64 `json:"revenue"`
}

type CustomerSalesRow struct {
	CustomerName string  `json:"customer_name"`
	OrderCount   int     `json:"order_count"`
	Total        float64 `json:"total"`
}

type ReceivableRow struct {
	NotaID       string  `json:"nota_id"`
	CustomerName string  `json:"customer_name"`
	OrderDate    string  `json:"order_date"`
	Amount       float64 `json:"amount"`
	Discount     float64 `json:"discount"`
	Paid         float64 `json:"paid"`
	Remaining    float64 `json:"remaining"`
	Status       string  `json:"status"`
}

type InventoryRow struct {
	Name        string  `json:"name"`
	Unit        string  `json:"unit"`
	Type        string  `json:"type"`
	Stock       float64 `json:"stock"`
	UsedInRange float64 `json:"used_in_range"`
}

// ============ ROLLUPS ============

// SalesByProduct groups in-range sales per product, quantity descending.
// Line prices are recomputed through the pricing resolver, not read from the
// stored TotalPrice; the two may differ when product prices changed after the
// order was created.
func SalesByProduct(s *models.Snapshot, rng DateRange) []ProductSalesRow {
	type acc struct {
		qty     float64
		revenue float64
	}
	byProduct := map[string]*acc{}
	var names []string

	for i := range s.Orders {
		o := &s.Orders[i]
		if !rng.Contains(o.OrderDate) {
			continue
		}
		for _, item := range o.Items {
			product := findProduct(item.ProductID, s.Products)
			name := "(tanpa produk)"
			if product != nil {
				name = product.Name
			}
			a := byProduct[name]
			if a == nil {
				a = &acc{}
				byProduct[name] = a
				names = append(names, name)
			}
			a.qty += item.Qty
			a.revenue += PriceOrderItem(item, o.CustomerName,
				s.Products, s.Categories, s.Customers, s.Finishings)
		}
	}

	rows := make([]ProductSalesRow, 0, len(names))
	for _, name := range names {
		rows = append(rows, ProductSalesRow{
			ProductName: name,
			Quantity:    byProduct[name].qty,
			Revenue:     byProduct[name].revenue,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Quantity > rows[j].Quantity
	})
	return rows
}

// SalesByCustomer groups in-range spend per customer, total descending.
// Totals come from the resolver, same as SalesByProduct.
func SalesByCustomer(s *models.Snapshot, rng DateRange) []CustomerSalesRow {
	type acc struct {
		orders int
		total  float64
	}
	byCustomer := map[string]*acc{}
	var names []string

	for i := range s.Orders {
		o := &s.Orders[i]
		if !rng.Contains(o.OrderDate) {
			continue
		}
		a := byCustomer[o.CustomerName]
		if a == nil {
			a = &acc{}
			byCustomer[o.CustomerName] = a
			names = append(names, o.CustomerName)
		}
		a.orders++
		for _, item := range o.Items {
			a.total += PriceOrderItem(item, o.CustomerName,
				s.Products, s.Categories, s.Customers, s.Finishings)
		}
	}

	rows := make([]CustomerSalesRow, 0, len(names))
	for _, name := range names {
		rows = append(rows, CustomerSalesRow{
			CustomerName: name,
			OrderCount:   byCustomer[name].orders,
			Total:        byCustomer[name].total,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Total > rows[j].Total
	})
	return rows
}

// ReceivablesReport lists receivables whose order date falls in range (joined
// to the order by nota). Remaining is clamped at zero; an overpaid receivable
// shows 0.
func ReceivablesReport(s *models.Snapshot, rng DateRange) []ReceivableRow {
	rows := make([]ReceivableRow, 0)
	for i := range s.Receivables {
		r := &s.Receivables[i]
		orderDate := ""
		customer := ""
		if o := s.OrderByNota(r.NotaID); o != nil {
			orderDate = o.OrderDate
			customer = o.CustomerName
		}
		if !rng.Contains(orderDate) {
			continue
		}

		paid := 0.0
		for _, p := range r.Payments {
			paid += p.Amount
		}
		rows = append(rows, ReceivableRow{
			NotaID:       r.NotaID,
			CustomerName: customer,
			OrderDate:    orderDate,
			Amount:       r.Amount,
			Discount:     r.Discount,
			Paid:         paid,
			Remaining:    clampRemaining(r),
			Status:       string(r.PaymentStatus),
		})
	}
	return rows
}

// InventoryReport lists stock as-is in store order, no grouping; usage is
// summed only for draws that fall in range.
func InventoryReport(s *models.Snapshot, rng DateRange) []InventoryRow {
	rows := make([]InventoryRow, 0, len(s.InventoryItems))
	for i := range s.InventoryItems {
		item := &s.InventoryItems[i]
		used := 0.0
		for _, u := range item.Usages {
			if rng.Contains(u.Date) {
				used += u.Amount
			}
		}
		rows = append(rows, InventoryRow{
			Name:        item.Name,
			Unit:        item.Unit,
			Type:        string(item.Type),
			Stock:       item.Stock,
			UsedInRange: used,
		})
	}
	return rows
}
