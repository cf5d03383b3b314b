package services

import (
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"percetakan-backend/src/models"
)

// ============ REQUEST STRUCTS ============
type CreateInventoryItemRequest struct {
	Name  string
	Unit  string
	Type  string
	Stock float64
}

type UseStockRequest struct {
	ItemID uint
	Amount float64
	Date   string
}

// ============ INVENTORY SERVICE ============
type InventoryService struct {
	DB *gorm.DB
}

func (s *InventoryService) CreateItem(req CreateInventoryItemRequest) (*models.InventoryItem, error) {
	itemType := models.InventoryType(req.Type)
	if itemType != models.InventoryTypeRawMaterial && itemType != models.InventoryTypeFinishedGood {
		return nil, errors.New("invalid inventory type")
	}

	item := &models.InventoryItem{
		Name:  req.Name,
		Unit:  req.Unit,
		Type:  itemType,
		Stock: req.Stock,
	}
	if err := s.DB.Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// UseStock is the only path that lowers stock: decrement the balance and add
// a usage record in one transaction. Stock is never derived from orders.
func (s *InventoryService) UseStock(req UseStockRequest) (*models.InventoryItem, error) {
	if req.Amount <= 0 {
		return nil, errors.New("usage amount must be positive")
	}

	var item models.InventoryItem
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&item, req.ItemID).Error; err != nil {
			return errors.New("inventory item not found")
		}
		if item.Stock < req.Amount {
			return errors.New("insufficient stock")
		}

		usage := models.StockUsage{
			InventoryItemID: item.ID,
			Date:            req.Date,
			Amount:          req.Amount,
		}
		if err := tx.Create(&usage).Error; err != nil {
			return err
		}

		item.Stock -= req.Amount
		return tx.Model(&models.InventoryItem{}).Where("id = ?", item.ID).
			Update("stock", item.Stock).Error
	})

	if err == nil {
		logrus.WithFields(logrus.Fields{
			"item_id": req.ItemID,
			"amount":  req.Amount,
			"stock":   item.Stock,
		}).Info("stock used")
	}
	return &item, err
}
