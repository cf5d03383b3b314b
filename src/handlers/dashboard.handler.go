package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"percetakan-backend/src/repositories"
	"percetakan-backend/src/services"
	"percetakan-backend/src/utils"
)

type DashboardHandler struct {
	Repo *repositories.SnapshotRepository
}

// GetDashboard assembles the dashboard for one employee. Sections the
// employee's permission set does not cover are left out of the response.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	employee, ok := requestEmployee(c, h.Repo)
	if !ok {
		return
	}

	date := c.DefaultQuery("date", utils.Today())

	snapshot, err := h.Repo.LoadSnapshot()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	dashboard := services.BuildDashboard(snapshot, date, employee.Permissions)

	c.JSON(http.StatusOK, gin.H{
		"employee": employee.Name,
		"data":     dashboard,
	})
}
