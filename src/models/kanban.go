package models

import "time"

// ============ PRODUCTION STAGES ============
type KanbanStage string

const (
	StageQueue     KanbanStage = "queue"
	StagePrinting  KanbanStage = "printing"
	StageWarehouse KanbanStage = "warehouse"
	StageDelivered KanbanStage = "delivered"
)

// KanbanStages dalam urutan pipeline produksi.
var KanbanStages = []KanbanStage{StageQueue, StagePrinting, StageWarehouse, StageDelivered}

func IsValidStage(s KanbanStage) bool {
	for _, stage := range KanbanStages {
		if s == stage {
			return true
		}
	}
	return false
}

// KanbanCard places one nota in exactly one production stage. The unique
// index on NotaID guards the partition: moving a card updates Stage, it never
// inserts a new row.
type KanbanCard struct {
	ID     uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	NotaID string      `gorm:"size:40;uniqueIndex;not null" json:"nota_id"`
	Stage  KanbanStage `gorm:"size:20;not null;index" json:"stage"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (KanbanCard) TableName() string {
	return "kanban_cards"
}
