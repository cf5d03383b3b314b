package repositories

import (
	"gorm.io/gorm"

	"percetakan-backend/src/models"
)

// SnapshotRepository loads a consistent picture of every record for one
// aggregation pass. The aggregation engine never touches the DB itself.
type SnapshotRepository struct {
	DB *gorm.DB
}

// LoadSnapshot loads every record plus the reference tables. Nested relations
// (items, payments, usages) come along because aggregation flattens them.
func (r *SnapshotRepository) LoadSnapshot() (*models.Snapshot, error) {
	s := &models.Snapshot{}

	if err := r.DB.Preload("Items").Order("nota_id").Find(&s.Orders).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Preload("Payments").Order("nota_id").Find(&s.Receivables).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Order("date").Find(&s.Expenses).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Preload("Usages").Order("id").Find(&s.InventoryItems).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Find(&s.LegacyIncomes).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Find(&s.LegacyExpenses).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Order("date").Find(&s.LegacyReceivables).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Order("date").Find(&s.Assets).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Order("date").Find(&s.Debts).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Find(&s.KanbanCards).Error; err != nil {
		return nil, err
	}

	if err := r.DB.Order("name").Find(&s.Products).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Order("name").Find(&s.Categories).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Order("name").Find(&s.Finishings).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Order("name").Find(&s.Customers).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Order("name").Find(&s.Employees).Error; err != nil {
		return nil, err
	}

	return s, nil
}

// GetEmployee returns one employee with their permission set.
func (r *SnapshotRepository) GetEmployee(id uint) (*models.Employee, error) {
	var employee models.Employee
	if err := r.DB.First(&employee, id).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}
