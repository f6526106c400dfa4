// Package finance is the aggregation and filtering engine of the dashboard.
// It turns a transaction ledger into KPI summaries and chart series.
//
// Every exported operation absorbs failures into a safe default value
// (zeroed summary, empty series, empty list) and also returns the error,
// wrapping ErrStorage or ErrInvalidFilter, so callers can tell an empty
// result from a failed one.
package finance

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// RecordHook is called after a transaction has been committed.
type RecordHook func(ctx context.Context, t Transaction)

// Service computes dashboard figures over a Store.
type Service struct {
	store  Store
	log    *zap.Logger
	now    func() time.Time
	labels labelSet
	hooks  []RecordHook
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger used for absorbed failures.
func WithLogger(l *zap.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithClock overrides the wall clock. The monthly window and the default
// growth comparison month are relative to it.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLocale sets the language of chart labels.
func WithLocale(l Locale) Option {
	return func(s *Service) {
		if set, ok := labelSets[l]; ok {
			s.labels = set
		}
	}
}

// WithRecordHook registers fn to run after each recorded transaction.
func WithRecordHook(fn RecordHook) Option {
	return func(s *Service) {
		if fn != nil {
			s.hooks = append(s.hooks, fn)
		}
	}
}

// NewService creates a Service reading from store.
func NewService(store Store, opts ...Option) *Service {
	s := &Service{
		store:  store,
		log:    zap.NewNop(),
		now:    time.Now,
		labels: labelSets[LocaleEN],
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Transactions returns the transactions matching f, newest first. On a
// storage failure it returns an empty list together with the error.
func (s *Service) Transactions(ctx context.Context, f Filter) ([]Transaction, error) {
	txs, err := s.store.QueryTransactions(ctx, f)
	if err != nil {
		s.log.Error("failed to query transactions",
			zap.String("filter", f.Key()),
			zap.Error(err),
		)
		return []Transaction{}, fmt.Errorf("%w: query transactions: %w", ErrStorage, err)
	}
	if txs == nil {
		txs = []Transaction{}
	}
	return txs, nil
}

// ListCategories returns all categories ordered by name, or an empty list
// when storage fails.
func (s *Service) ListCategories(ctx context.Context) ([]Category, error) {
	cats, err := s.store.QueryCategories(ctx)
	if err != nil {
		s.log.Error("failed to query categories", zap.Error(err))
		return []Category{}, fmt.Errorf("%w: query categories: %w", ErrStorage, err)
	}
	if cats == nil {
		cats = []Category{}
	}
	return cats, nil
}

// RecordTransaction writes t and applies its effect to the account balance
// in one storage transaction. It reports false on any failure.
func (s *Service) RecordTransaction(ctx context.Context, t NewTransaction) bool {
	if err := t.Validate(); err != nil {
		s.log.Warn("rejected transaction", zap.Error(err))
		return false
	}

	var id int64
	err := s.store.WithTx(ctx, func(tx LedgerTx) error {
		var err error
		if id, err = tx.InsertTransaction(ctx, t); err != nil {
			return fmt.Errorf("insert transaction: %w", err)
		}
		if err := tx.AdjustAccountBalance(ctx, t.AccountID, t.BalanceDelta()); err != nil {
			return fmt.Errorf("adjust balance of account %d: %w", t.AccountID, err)
		}
		return nil
	})
	if err != nil {
		s.log.Error("failed to record transaction",
			zap.Int64("account_id", t.AccountID),
			zap.String("kind", string(t.Kind)),
			zap.Error(err),
		)
		return false
	}

	recorded := Transaction{
		ID:          id,
		Date:        t.Date,
		Description: t.Description,
		Amount:      t.Amount,
		Kind:        t.Kind,
		Category:    t.Category,
		AccountID:   t.AccountID,
	}
	s.log.Info("transaction recorded",
		zap.Int64("id", id),
		zap.String("kind", string(t.Kind)),
		zap.String("amount", t.Amount.String()),
	)
	for _, hook := range s.hooks {
		hook(ctx, recorded)
	}
	return true
}

// totals sums amounts per kind.
func totals(txs []Transaction) (revenue, expense decimal.Decimal) {
	for _, t := range txs {
		switch t.Kind {
		case KindRevenue:
			revenue = revenue.Add(t.Amount)
		case KindExpense:
			expense = expense.Add(t.Amount)
		}
	}
	return revenue, expense
}

// percentOf returns part / whole * 100, or 0 when whole is not positive.
func percentOf(part, whole decimal.Decimal) float64 {
	if !whole.IsPositive() {
		return 0
	}
	return part.Div(whole).Mul(decimal.NewFromInt(100)).InexactFloat64()
}
