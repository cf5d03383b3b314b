package requests

// ============ KANBAN ============
type MoveCardRequest struct {
	NotaID    string `json:"nota_id" binding:"required"`
	FromStage string `json:"from_stage" binding:"required,oneof=queue printing warehouse delivered"`
	ToStage   string `json:"to_stage" binding:"required,oneof=queue printing warehouse delivered"`
	Date      string `json:"date"`
}

type CancelQueueRequest struct {
	NotaID string `json:"nota_id" binding:"required"`
}
