package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"percetakan-backend/src/handlers"
	"percetakan-backend/src/routes"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	h := routes.Handlers{
		Dashboard: &handlers.DashboardHandler{},
		Report:    &handlers.ReportHandler{},
		Order:     &handlers.OrderHandler{},
		Ledger:    &handlers.LedgerHandler{},
		Inventory: &handlers.InventoryHandler{},
		Kanban:    &handlers.KanbanHandler{},
	}
	routes.RegisterRoutes(r.Group("/api/v1"), h)
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestEmployeeParamValidation(t *testing.T) {
	r := testRouter()

	t.Run("dashboard without employee_id", func(t *testing.T) {
		w := get(r, "/api/v1/dashboard")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid employee_id")
	})

	t.Run("report rejects the same way as dashboard", func(t *testing.T) {
		w := get(r, "/api/v1/reports/sales?employee_id=abc")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid employee_id")
	})

	t.Run("export shares the validation", func(t *testing.T) {
		w := get(r, "/api/v1/reports/sales/export")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid employee_id")
	})
}

func TestUnknownReportType(t *testing.T) {
	r := testRouter()

	w := get(r, "/api/v1/reports/payroll?employee_id=1")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unknown report type")
}
