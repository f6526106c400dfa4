package finance

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

var (
	// ErrStorage marks failures of the storage collaborator.
	ErrStorage = errors.New("storage failure")
	// ErrInvalidFilter marks filters whose dates or period cannot be interpreted.
	ErrInvalidFilter = errors.New("invalid filter")
	// ErrInvalidTransaction marks a NewTransaction that violates ledger invariants.
	ErrInvalidTransaction = errors.New("invalid transaction")
)

//go:generate mockgen -destination=mocks/mock_store.go -package=mocks financial-dashboard/internal/finance Store,LedgerTx

// Store is the query interface over the persisted ledger.
type Store interface {
	// QueryTransactions returns the transactions matching f, newest first.
	QueryTransactions(ctx context.Context, f Filter) ([]Transaction, error)
	// QueryCategories returns every category ordered by name.
	QueryCategories(ctx context.Context) ([]Category, error)
	// QueryTotalAccountBalance returns the sum of all account balances.
	QueryTotalAccountBalance(ctx context.Context) (decimal.Decimal, error)
	// WithTx runs fn inside a single storage transaction. The transaction
	// commits when fn returns nil and rolls back otherwise.
	WithTx(ctx context.Context, fn func(LedgerTx) error) error
}

// LedgerTx is the write side of the store, valid only inside WithTx.
type LedgerTx interface {
	InsertTransaction(ctx context.Context, t NewTransaction) (int64, error)
	AdjustAccountBalance(ctx context.Context, accountID int64, delta decimal.Decimal) error
}
