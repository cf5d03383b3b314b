package exports_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"percetakan-backend/src/exports"
	"percetakan-backend/src/models"
	"percetakan-backend/src/services"
)

func exportSnapshot() *models.Snapshot {
	return &models.Snapshot{
		Products: []models.Product{
			{ID: 1, Name: "Flexi 280gr", CategoryName: "Banner", PriceEndCustomer: 15000},
		},
		Categories: []models.Category{
			{ID: 1, Name: "Banner", UnitType: models.UnitTypeArea},
		},
		Orders: []models.Order{
			{
				NotaID: "N-0010", CustomerName: "Budi", OrderDate: "2024-03-10",
				TotalPrice: 999999,
				Items: []models.OrderItem{
					{ProductID: 1, Length: "2", Width: "1", Qty: 1, Description: "Banner toko"},
				},
			},
		},
		Receivables: []models.Receivable{
			{
				NotaID: "N-0010", Amount: 100000,
				PaymentStatus: models.PaymentStatusUnpaid,
				Payments:      []models.Payment{{Amount: 40000, Date: "2024-03-11"}},
			},
		},
		InventoryItems: []models.InventoryItem{
			{ID: 1, Name: "Flexi Roll", Unit: "meter", Type: models.InventoryTypeRawMaterial, Stock: 120},
		},
	}
}

func TestFilename(t *testing.T) {
	t.Run("bounded range embedded", func(t *testing.T) {
		rng := services.DateRange{Start: "2024-03-01", End: "2024-03-31"}
		got := exports.Filename(exports.ReportTypeSales, rng, "2024-04-01")
		assert.Equal(t, "laporan-sales-2024-03-01-2024-03-31.xlsx", got)
	})

	t.Run("unbounded range uses awal and today", func(t *testing.T) {
		got := exports.Filename(exports.ReportTypeInventory, services.DateRange{}, "2024-04-01")
		assert.Equal(t, "laporan-inventory-awal-2024-04-01.xlsx", got)
	})
}

func TestBuildWorkbook(t *testing.T) {
	s := exportSnapshot()
	rng := services.DateRange{Start: "2024-03-01", End: "2024-03-31"}

	t.Run("unknown report type is skipped", func(t *testing.T) {
		_, err := exports.BuildWorkbook("payroll", s, rng)
		assert.ErrorIs(t, err, exports.ErrUnknownReportType)
	})

	t.Run("sales sheet flattens items with resolver price", func(t *testing.T) {
		f, err := exports.BuildWorkbook(exports.ReportTypeSales, s, rng)
		assert.NoError(t, err)

		header, _ := f.GetCellValue("Penjualan", "A1")
		assert.Equal(t, "No Nota", header)

		nota, _ := f.GetCellValue("Penjualan", "A2")
		assert.Equal(t, "N-0010", nota)
		// 2 x 1 x 15000, bukan TotalPrice tersimpan
		price, _ := f.GetCellValue("Penjualan", "H2")
		assert.Equal(t, "30000", price)
	})

	t.Run("receivables sheet carries remaining", func(t *testing.T) {
		f, err := exports.BuildWorkbook(exports.ReportTypeReceivables, s, rng)
		assert.NoError(t, err)

		header, _ := f.GetCellValue("Piutang", "G1")
		assert.Equal(t, "Sisa", header)
		remaining, _ := f.GetCellValue("Piutang", "G2")
		assert.Equal(t, "60000", remaining)
	})

	t.Run("inventory sheet lists stock", func(t *testing.T) {
		f, err := exports.BuildWorkbook(exports.ReportTypeInventory, s, rng)
		assert.NoError(t, err)

		name, _ := f.GetCellValue("Inventori", "A2")
		assert.Equal(t, "Flexi Roll", name)
		stock, _ := f.GetCellValue("Inventori", "D2")
		assert.Equal(t, "120", stock)
	})
}
