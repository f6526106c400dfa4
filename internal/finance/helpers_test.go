package finance_test

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"financial-dashboard/internal/finance"

	"github.com/shopspring/decimal"
)

// memStore is an in-memory Store that applies filters the way the SQL store does.
type memStore struct {
	txs        []finance.Transaction
	categories []finance.Category
	balance    decimal.Decimal

	mu      sync.Mutex
	queries []finance.Filter
}

func (m *memStore) QueryTransactions(_ context.Context, f finance.Filter) ([]finance.Transaction, error) {
	m.mu.Lock()
	m.queries = append(m.queries, f)
	m.mu.Unlock()

	out := []finance.Transaction{}
	for _, t := range m.txs {
		day := t.Date.Format("2006-01-02")
		if f.Start != "" && day < f.Start {
			continue
		}
		if f.End != "" && day > f.End {
			continue
		}
		if len(f.Categories) > 0 && !slices.Contains(f.Categories, t.Category) {
			continue
		}
		out = append(out, t)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (m *memStore) QueryCategories(context.Context) ([]finance.Category, error) {
	return m.categories, nil
}

func (m *memStore) QueryTotalAccountBalance(context.Context) (decimal.Decimal, error) {
	return m.balance, nil
}

func (m *memStore) WithTx(context.Context, func(finance.LedgerTx) error) error {
	return nil
}

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func tx(kind finance.Kind, amount int64, category, day string) finance.Transaction {
	return finance.Transaction{
		Date:      date(day),
		Amount:    decimal.NewFromInt(amount),
		Kind:      kind,
		Category:  category,
		AccountID: 1,
	}
}

func clockAt(day string) finance.Option {
	t := date(day).Add(12 * time.Hour)
	return finance.WithClock(func() time.Time { return t })
}
