package events

import (
	"encoding/json"
	"time"

	"financial-dashboard/internal/finance"
)

// TransactionRecorded announces a committed ledger entry so downstream
// consumers can refresh their views.
type TransactionRecorded struct {
	ID        int64     `json:"id"`
	Date      string    `json:"date"`
	Kind      string    `json:"kind"`
	Amount    string    `json:"amount"`
	Category  string    `json:"category"`
	AccountID int64     `json:"accountId"`
	Timestamp time.Time `json:"timestamp"`
}

// NewTransactionRecorded builds the message for t.
func NewTransactionRecorded(t finance.Transaction) *TransactionRecorded {
	return &TransactionRecorded{
		ID:        t.ID,
		Date:      t.Date.Format("2006-01-02"),
		Kind:      string(t.Kind),
		Amount:    t.Amount.StringFixed(2),
		Category:  t.Category,
		AccountID: t.AccountID,
		Timestamp: time.Now(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *TransactionRecorded) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}
