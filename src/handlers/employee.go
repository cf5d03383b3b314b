package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"percetakan-backend/src/models"
	"percetakan-backend/src/repositories"
)

// requestEmployee resolves the employee_id query param to an employee row.
// Writes the error response itself; callers bail out when ok is false.
func requestEmployee(c *gin.Context, repo *repositories.SnapshotRepository) (*models.Employee, bool) {
	employeeID, err := strconv.Atoi(c.Query("employee_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employee_id"})
		return nil, false
	}

	employee, err := repo.GetEmployee(uint(employeeID))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "employee not found"})
		return nil, false
	}
	return employee, true
}
