package models

// Snapshot is a read-only picture of every record for one render. The
// aggregation engine only ever reads from here; mutations happen in the
// service layer and the next request loads a fresh snapshot.
type Snapshot struct {
	Orders            []Order
	Receivables       []Receivable
	Expenses          []ExpenseItem
	InventoryItems    []InventoryItem
	LegacyIncomes     []LegacyIncome
	LegacyExpenses    []LegacyExpense
	LegacyReceivables []LegacyReceivable
	Assets            []AssetItem
	Debts             []DebtItem
	KanbanCards       []KanbanCard

	Products   []Product
	Categories []Category
	Finishings []Finishing
	Customers  []Customer
	Employees  []Employee
}

// OrderByNota looks a nota up in the snapshot; nil when absent.
func (s *Snapshot) OrderByNota(notaID string) *Order {
	for i := range s.Orders {
		if s.Orders[i].NotaID == notaID {
			return &s.Orders[i]
		}
	}
	return nil
}

// ReceivableByNota looks a receivable up by nota; nil when the order has not
// been processed for payment yet.
func (s *Snapshot) ReceivableByNota(notaID string) *Receivable {
	for i := range s.Receivables {
		if s.Receivables[i].NotaID == notaID {
			return &s.Receivables[i]
		}
	}
	return nil
}
