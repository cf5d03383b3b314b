package exports

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"

	"percetakan-backend/src/models"
	"percetakan-backend/src/services"
)

// Export adapter: one workbook per call, one sheet per report type,
// Indonesian headers. Pure data shaping; no retry semantics.

const (
	ReportTypeSales       = "sales"
	ReportTypeReceivables = "receivables"
	ReportTypeInventory   = "inventory"
)

var ErrUnknownReportType = errors.New("unknown report type")

var sheetNames = map[string]string{
	ReportTypeSales:       "Penjualan",
	ReportTypeReceivables: "Piutang",
	ReportTypeInventory:   "Inventori",
}

// Filename embeds the report type and range; an unbounded range falls back to
// "awal" / today's date.
func Filename(reportType string, rng services.DateRange, today string) string {
	start := rng.Start
	if start == "" {
		start = "awal"
	}
	end := rng.End
	if end == "" {
		end = today
	}
	return fmt.Sprintf("laporan-%s-%s-%s.xlsx", reportType, start, end)
}

// BuildWorkbook shapes the workbook for one report type. The sales report
// flattens per order line and reprices each one through the pricing resolver
// instead of using the order's stored total.
func BuildWorkbook(reportType string, s *models.Snapshot, rng services.DateRange) (*excelize.File, error) {
	sheet, ok := sheetNames[reportType]
	if !ok {
		return nil, ErrUnknownReportType
	}

	f := excelize.NewFile()
	f.SetSheetName("Sheet1", sheet)

	switch reportType {
	case ReportTypeSales:
		writeSalesSheet(f, sheet, s, rng)
	case ReportTypeReceivables:
		writeReceivablesSheet(f, sheet, s, rng)
	case ReportTypeInventory:
		writeInventorySheet(f, sheet, s, rng)
	}

	return f, nil
}

func writeSalesSheet(f *excelize.File, sheet string, s *models.Snapshot, rng services.DateRange) {
	setHeaderRow(f, sheet, "No Nota", "Tanggal", "Pelanggan", "Produk", "Keterangan", "Finishing", "Qty", "Harga")

	row := 2
	for i := range s.Orders {
		o := &s.Orders[i]
		if !rng.Contains(o.OrderDate) {
			continue
		}
		for _, item := range o.Items {
			productName := ""
			for j := range s.Products {
				if s.Products[j].ID == item.ProductID {
					productName = s.Products[j].Name
					break
				}
			}
			price := services.PriceOrderItem(item, o.CustomerName,
				s.Products, s.Categories, s.Customers, s.Finishings)

			setRow(f, sheet, row,
				o.NotaID, o.OrderDate, o.CustomerName,
				productName, item.Description, item.FinishingName,
				item.Qty, price)
			row++
		}
	}
}

func writeReceivablesSheet(f *excelize.File, sheet string, s *models.Snapshot, rng services.DateRange) {
	setHeaderRow(f, sheet, "No Nota", "Tanggal", "Pelanggan", "Tagihan", "Diskon", "Dibayar", "Sisa", "Status")

	rows := services.ReceivablesReport(s, rng)
	for i, r := range rows {
		setRow(f, sheet, i+2,
			r.NotaID, r.OrderDate, r.CustomerName,
			r.Amount, r.Discount, r.Paid, r.Remaining, r.Status)
	}
}

func writeInventorySheet(f *excelize.File, sheet string, s *models.Snapshot, rng services.DateRange) {
	setHeaderRow(f, sheet, "Nama", "Jenis", "Satuan", "Stok", "Pemakaian")

	rows := services.InventoryReport(s, rng)
	for i, r := range rows {
		setRow(f, sheet, i+2, r.Name, r.Type, r.Unit, r.Stock, r.UsedInRange)
	}
}

func setHeaderRow(f *excelize.File, sheet string, headers ...string) {
	col := 'A'
	for _, h := range headers {
		f.SetCellValue(sheet, fmt.Sprintf("%c1", col), h)
		col++
	}
}

func setRow(f *excelize.File, sheet string, rowNo int, values ...interface{}) {
	col := 'A'
	for _, v := range values {
		f.SetCellValue(sheet, fmt.Sprintf("%c%d", col, rowNo), v)
		col++
	}
}
