package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"percetakan-backend/src/models"
	"percetakan-backend/src/services"
)

func reportSnapshot() *models.Snapshot {
	products, categories, customers, finishings := pricingFixtures()
	return &models.Snapshot{
		Products:   products,
		Categories: categories,
		Customers:  customers,
		Finishings: finishings,
		Orders: []models.Order{
			{
				NotaID: "N-0010", CustomerName: "Budi", OrderDate: "2024-03-10",
				// Total tersimpan sengaja beda dari hasil resolver
				TotalPrice: 999999,
				Items: []models.OrderItem{
					// (1x1x15000) x 2 = 30000
					{ProductID: 1, Length: "1", Width: "1", Qty: 2, Description: "Banner"},
				},
			},
			{
				NotaID: "N-0011", CustomerName: "Toko Jaya", OrderDate: "2024-03-12",
				TotalPrice: 84000,
				Items: []models.OrderItem{
					// Grosir: 28000 x 3 = 84000
					{ProductID: 2, Qty: 3, Description: "Kartu nama"},
				},
			},
			{
				NotaID: "N-0012", CustomerName: "Budi", OrderDate: "2024-04-01",
				TotalPrice: 15000,
				Items:      []models.OrderItem{{ProductID: 1, Length: "1", Width: "1", Qty: 1}},
			},
		},
		Receivables: []models.Receivable{
			{
				NotaID: "N-0010", Amount: 100000, Discount: 10000,
				PaymentStatus: models.PaymentStatusUnpaid,
				Payments:      []models.Payment{{Amount: 40000, Date: "2024-03-11"}},
			},
			{
				NotaID: "N-0011", Amount: 84000,
				PaymentStatus: models.PaymentStatusUnpaid,
				Payments:      []models.Payment{{Amount: 90000, Date: "2024-03-12"}},
			},
		},
		InventoryItems: []models.InventoryItem{
			{
				ID: 1, Name: "Flexi Roll", Unit: "meter", Type: models.InventoryTypeRawMaterial,
				Stock: 120,
				Usages: []models.StockUsage{
					{Date: "2024-03-11", Amount: 10},
					{Date: "2024-02-01", Amount: 25},
				},
			},
		},
	}
}

var marchRange = services.DateRange{Start: "2024-03-01", End: "2024-03-31"}

func TestSalesByProduct(t *testing.T) {
	s := reportSnapshot()

	t.Run("grouped by product, qty descending, resolver-priced", func(t *testing.T) {
		rows := services.SalesByProduct(s, marchRange)
		assert.Len(t, rows, 2)
		assert.Equal(t, "Art Carton", rows[0].ProductName)
		assert.Equal(t, 3.0, rows[0].Quantity)
		assert.Equal(t, 84000.0, rows[0].Revenue)
		assert.Equal(t, "Flexi 280gr", rows[1].ProductName)
		// Harga resolver, bukan TotalPrice tersimpan
		assert.Equal(t, 30000.0, rows[1].Revenue)
	})

	t.Run("out of range orders excluded", func(t *testing.T) {
		rows := services.SalesByProduct(s, services.DateRange{Start: "2024-04-01", End: "2024-04-30"})
		assert.Len(t, rows, 1)
		assert.Equal(t, 1.0, rows[0].Quantity)
	})

	t.Run("unbounded range includes everything", func(t *testing.T) {
		rows := services.SalesByProduct(s, services.DateRange{})
		total := 0.0
		for _, r := range rows {
			total += r.Quantity
		}
		assert.Equal(t, 6.0, total)
	})
}

func TestSalesByCustomer(t *testing.T) {
	s := reportSnapshot()

	t.Run("spend descending", func(t *testing.T) {
		rows := services.SalesByCustomer(s, marchRange)
		assert.Len(t, rows, 2)
		assert.Equal(t, "Toko Jaya", rows[0].CustomerName)
		assert.Equal(t, 84000.0, rows[0].Total)
		assert.Equal(t, "Budi", rows[1].CustomerName)
		assert.Equal(t, 1, rows[1].OrderCount)
	})
}

func TestReceivablesReport(t *testing.T) {
	s := reportSnapshot()

	t.Run("joined to order date, remaining clamped", func(t *testing.T) {
		rows := services.ReceivablesReport(s, marchRange)
		assert.Len(t, rows, 2)

		byNota := map[string]services.ReceivableRow{}
		for _, r := range rows {
			byNota[r.NotaID] = r
		}
		assert.Equal(t, 50000.0, byNota["N-0010"].Remaining)
		assert.Equal(t, "2024-03-10", byNota["N-0010"].OrderDate)
		// Kelebihan bayar tampil 0, bukan negatif
		assert.Equal(t, 0.0, byNota["N-0011"].Remaining)
		assert.Equal(t, 90000.0, byNota["N-0011"].Paid)
	})

	t.Run("range filter uses order date", func(t *testing.T) {
		rows := services.ReceivablesReport(s, services.DateRange{Start: "2024-03-11"})
		assert.Len(t, rows, 1)
		assert.Equal(t, "N-0011", rows[0].NotaID)
	})
}

func TestInventoryReport(t *testing.T) {
	s := reportSnapshot()

	t.Run("store order with in-range usage", func(t *testing.T) {
		rows := services.InventoryReport(s, marchRange)
		assert.Len(t, rows, 1)
		assert.Equal(t, "Flexi Roll", rows[0].Name)
		assert.Equal(t, 120.0, rows[0].Stock)
		assert.Equal(t, 10.0, rows[0].UsedInRange)
	})

	t.Run("unbounded range sums all usage", func(t *testing.T) {
		rows := services.InventoryReport(s, services.DateRange{})
		assert.Equal(t, 35.0, rows[0].UsedInRange)
	})
}
