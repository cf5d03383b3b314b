package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"percetakan-backend/src/exports"
	"percetakan-backend/src/repositories"
	"percetakan-backend/src/services"
	"percetakan-backend/src/utils"
)

type ReportHandler struct {
	Repo *repositories.SnapshotRepository
}

var reportPermissions = map[string]string{
	exports.ReportTypeSales:       services.PermReportSales,
	exports.ReportTypeReceivables: services.PermReportReceivables,
	exports.ReportTypeInventory:   services.PermReportInventory,
}

// GetReport returns the report rollup for one date range.
func (h *ReportHandler) GetReport(c *gin.Context) {
	reportType := c.Param("type")
	permKey, ok := reportPermissions[reportType]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown report type"})
		return
	}

	employee, ok := requestEmployee(c, h.Repo)
	if !ok {
		return
	}
	if !services.Visible(employee.Permissions, permKey) {
		c.JSON(http.StatusForbidden, gin.H{"error": "report not permitted"})
		return
	}

	rng := services.DateRange{Start: c.Query("start"), End: c.Query("end")}

	snapshot, err := h.Repo.LoadSnapshot()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var rows interface{}
	switch reportType {
	case exports.ReportTypeSales:
		rows = gin.H{
			"by_product":  services.SalesByProduct(snapshot, rng),
			"by_customer": services.SalesByCustomer(snapshot, rng),
		}
	case exports.ReportTypeReceivables:
		rows = services.ReceivablesReport(snapshot, rng)
	case exports.ReportTypeInventory:
		rows = services.InventoryReport(snapshot, rng)
	}

	c.JSON(http.StatusOK, gin.H{
		"type":  reportType,
		"range": rng,
		"data":  rows,
	})
}

// ExportReport streams the report as an xlsx workbook download.
func (h *ReportHandler) ExportReport(c *gin.Context) {
	reportType := c.Param("type")
	permKey, ok := reportPermissions[reportType]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown report type"})
		return
	}

	employee, ok := requestEmployee(c, h.Repo)
	if !ok {
		return
	}
	if !services.Visible(employee.Permissions, permKey) {
		c.JSON(http.StatusForbidden, gin.H{"error": "report not permitted"})
		return
	}

	rng := services.DateRange{Start: c.Query("start"), End: c.Query("end")}

	snapshot, err := h.Repo.LoadSnapshot()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	f, err := exports.BuildWorkbook(reportType, snapshot, rng)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filename := exports.Filename(reportType, rng, utils.Today())
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to write workbook"})
	}
}
