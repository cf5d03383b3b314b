package services

import (
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"percetakan-backend/src/models"
)

// ============ REQUEST STRUCTS ============
type MoveCardRequest struct {
	NotaID    string
	FromStage string
	ToStage   string
	// Delivery date, used when ToStage = delivered.
	Date string
}

// ============ KANBAN SERVICE ============
// A nota is always in exactly one stage: moving a card updates Stage, it
// never copies. Cancel applies to queued cards only.
type KanbanService struct {
	DB *gorm.DB
}

// MoveCard moves a card between stages. Moving to delivered also marks the
// receivable Delivered with the delivery date; the "delivered today" recap
// reads those receivable fields, not the card position.
func (s *KanbanService) MoveCard(req MoveCardRequest) error {
	from := models.KanbanStage(req.FromStage)
	to := models.KanbanStage(req.ToStage)
	if !models.IsValidStage(from) || !models.IsValidStage(to) {
		return errors.New("invalid kanban stage")
	}
	if from == to {
		return errors.New("card is already in that stage")
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var card models.KanbanCard
		if err := tx.Where("nota_id = ?", req.NotaID).First(&card).Error; err != nil {
			return errors.New("kanban card not found")
		}
		if card.Stage != from {
			return errors.New("card is not in the expected stage")
		}

		if err := tx.Model(&models.KanbanCard{}).Where("id = ?", card.ID).
			Update("stage", to).Error; err != nil {
			return err
		}

		updates := map[string]interface{}{
			"production_status": stageStatus(to),
		}
		if to == models.StageDelivered {
			updates["delivery_date"] = req.Date
		}
		// Pesanan yang belum diproses untuk pembayaran belum punya piutang;
		// update kosong bukan error.
		return tx.Model(&models.Receivable{}).Where("nota_id = ?", req.NotaID).
			Updates(updates).Error
	})

	if err == nil {
		logrus.WithFields(logrus.Fields{
			"nota_id": req.NotaID,
			"from":    req.FromStage,
			"to":      req.ToStage,
		}).Info("kanban card moved")
	}
	return err
}

// CancelQueue takes a nota out of the production queue.
func (s *KanbanService) CancelQueue(notaID string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var card models.KanbanCard
		if err := tx.Where("nota_id = ?", notaID).First(&card).Error; err != nil {
			return errors.New("kanban card not found")
		}
		if card.Stage != models.StageQueue {
			return errors.New("only queued cards can be cancelled")
		}
		return tx.Delete(&models.KanbanCard{}, card.ID).Error
	})
}

func stageStatus(stage models.KanbanStage) models.ProductionStatus {
	switch stage {
	case models.StagePrinting:
		return models.ProductionStatusPrinting
	case models.StageWarehouse:
		return models.ProductionStatusWarehouse
	case models.StageDelivered:
		return models.ProductionStatusDelivered
	default:
		return models.ProductionStatusQueue
	}
}
