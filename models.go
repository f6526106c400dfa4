package main

import (
	"fmt"

	"financial-dashboard/internal/finance"

	"github.com/shopspring/decimal"
)

// TransactionRequest is the JSON body accepted when recording a transaction
type TransactionRequest struct {
	Date        string          `json:"date" binding:"required"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Kind        string          `json:"kind" binding:"required"`
	Category    string          `json:"category" binding:"required"`
	AccountID   int64           `json:"accountId" binding:"required"`
}

func (r TransactionRequest) toNewTransaction() (finance.NewTransaction, error) {
	date, err := finance.ParseDate(r.Date)
	if err != nil {
		return finance.NewTransaction{}, fmt.Errorf("invalid date %q", r.Date)
	}
	kind, err := finance.ParseKind(r.Kind)
	if err != nil {
		return finance.NewTransaction{}, err
	}
	return finance.NewTransaction{
		Date:        date,
		Description: r.Description,
		Amount:      r.Amount,
		Kind:        kind,
		Category:    r.Category,
		AccountID:   r.AccountID,
	}, nil
}

// RecordResponse reports the outcome of recording a transaction
type RecordResponse struct {
	Success bool `json:"success"`
}

// ErrorResponse is the generic failure body of the API
type ErrorResponse struct {
	Error string `json:"erro"`
}

const processingError = "Erro ao processar solicitação"
