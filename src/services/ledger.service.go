package services

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"percetakan-backend/src/models"
)

// ============ REQUEST STRUCTS ============
type SetLegacyBalanceRequest struct {
	Amount float64
	Date   string
}

type LegacyReceivableRequest struct {
	Name   string
	Amount float64
	Date   string
}

type AddExpenseRequest struct {
	Name   string
	Amount float64
	Date   string
}

type AddAssetRequest struct {
	Name  string
	Value float64
	Date  string
}

type AddDebtRequest struct {
	Name   string
	Amount float64
	Date   string
	Note   string
}

// ============ LEDGER SERVICE ============
// The legacy balances (income/expense) are effectively single rows: set
// replaces the running total, clear removes it.
type LedgerService struct {
	DB *gorm.DB
}

func (s *LedgerService) SetLegacyIncome(req SetLegacyBalanceRequest) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.LegacyIncome{}).Error; err != nil {
			return err
		}
		return tx.Create(&models.LegacyIncome{Amount: req.Amount, Date: req.Date}).Error
	})
}

func (s *LedgerService) ClearLegacyIncome() error {
	return s.DB.Where("1 = 1").Delete(&models.LegacyIncome{}).Error
}

func (s *LedgerService) SetLegacyExpense(req SetLegacyBalanceRequest) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.LegacyExpense{}).Error; err != nil {
			return err
		}
		return tx.Create(&models.LegacyExpense{Amount: req.Amount, Date: req.Date}).Error
	})
}

func (s *LedgerService) ClearLegacyExpense() error {
	return s.DB.Where("1 = 1").Delete(&models.LegacyExpense{}).Error
}

// ============ LEGACY RECEIVABLES ============

func (s *LedgerService) AddLegacyReceivable(req LegacyReceivableRequest) (*models.LegacyReceivable, error) {
	if req.Amount <= 0 {
		return nil, errors.New("amount must be positive")
	}
	item := &models.LegacyReceivable{Name: req.Name, Amount: req.Amount, Date: req.Date}
	if err := s.DB.Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (s *LedgerService) UpdateLegacyReceivable(id uint, req LegacyReceivableRequest) error {
	return s.DB.Model(&models.LegacyReceivable{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":   req.Name,
		"amount": req.Amount,
		"date":   req.Date,
	}).Error
}

func (s *LedgerService) DeleteLegacyReceivable(id uint) error {
	return s.DB.Delete(&models.LegacyReceivable{}, id).Error
}

// SettleLegacyReceivable settles an old receivable: delete it and book an
// ExpenseItem of its amount, both in one transaction. Callers see this as
// atomic; the next aggregation pass picks up the new expense.
func (s *LedgerService) SettleLegacyReceivable(id uint, date string) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var item models.LegacyReceivable
		if err := tx.First(&item, id).Error; err != nil {
			return errors.New("legacy receivable not found")
		}

		if err := tx.Delete(&models.LegacyReceivable{}, id).Error; err != nil {
			return err
		}

		expense := &models.ExpenseItem{
			Name:   fmt.Sprintf("Pelunasan piutang lama - %s", item.Name),
			Amount: item.Amount,
			Date:   date,
		}
		return tx.Create(expense).Error
	})

	if err == nil {
		logrus.WithField("legacy_receivable_id", id).Info("legacy receivable settled")
	}
	return err
}

// ============ EXPENSES / ASSETS / DEBTS ============

func (s *LedgerService) AddExpense(req AddExpenseRequest) (*models.ExpenseItem, error) {
	if req.Amount <= 0 {
		return nil, errors.New("amount must be positive")
	}
	item := &models.ExpenseItem{Name: req.Name, Amount: req.Amount, Date: req.Date}
	if err := s.DB.Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (s *LedgerService) AddAsset(req AddAssetRequest) (*models.AssetItem, error) {
	item := &models.AssetItem{Name: req.Name, Value: req.Value, Date: req.Date}
	if err := s.DB.Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (s *LedgerService) AddDebt(req AddDebtRequest) (*models.DebtItem, error) {
	item := &models.DebtItem{Name: req.Name, Amount: req.Amount, Date: req.Date, Note: req.Note}
	if err := s.DB.Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}
