package finance

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Kind tells whether a transaction or category adds to revenue or to expense.
type Kind string

const (
	KindRevenue Kind = "revenue"
	KindExpense Kind = "expense"
)

// ParseKind accepts the English kind names and the Portuguese wire tags
// ("receita", "despesa") used by the dashboard front end.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "revenue", "receita", "income":
		return KindRevenue, nil
	case "expense", "despesa":
		return KindExpense, nil
	}
	return "", fmt.Errorf("%w: unknown kind %q", ErrInvalidTransaction, s)
}

// Transaction is a single ledger entry. Amount is always a non-negative
// magnitude; its effect on totals comes from Kind.
type Transaction struct {
	ID          int64           `json:"id"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Kind        Kind            `json:"kind"`
	Category    string          `json:"category"`
	AccountID   int64           `json:"accountId"`
}

// NewTransaction holds the fields submitted when recording a transaction.
type NewTransaction struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Kind        Kind
	Category    string
	AccountID   int64
}

// Validate checks the invariants a ledger entry must satisfy before it is written.
func (t NewTransaction) Validate() error {
	var problems []string
	if t.Kind != KindRevenue && t.Kind != KindExpense {
		problems = append(problems, fmt.Sprintf("invalid kind %q", t.Kind))
	}
	if !t.Amount.IsPositive() {
		problems = append(problems, fmt.Sprintf("amount must be positive, got %s", t.Amount))
	}
	if t.Date.IsZero() {
		problems = append(problems, "date is required")
	}
	if t.AccountID <= 0 {
		problems = append(problems, fmt.Sprintf("invalid account id %d", t.AccountID))
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidTransaction, strings.Join(problems, "; "))
	}
	return nil
}

// BalanceDelta is the signed amount applied to the account balance.
func (t NewTransaction) BalanceDelta() decimal.Decimal {
	if t.Kind == KindExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// Category is display metadata for a transaction category.
type Category struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Kind  Kind   `json:"kind"`
	Color string `json:"color"`
}

// KPISummary holds the six headline indicators of the dashboard.
type KPISummary struct {
	RevenueTotal       float64 `json:"revenueTotal"`
	ExpenseTotal       float64 `json:"expenseTotal"`
	NetProfit          float64 `json:"netProfit"`
	ProfitMargin       float64 `json:"profitMargin"`
	MonthlyGrowth      float64 `json:"monthlyGrowth"`
	CurrentCashBalance float64 `json:"currentCashBalance"`
}

// Dataset is one numeric series of a chart, parallel to ChartSeries.Labels.
type Dataset struct {
	Label           string    `json:"label"`
	Data            []float64 `json:"data"`
	BackgroundColor []string  `json:"backgroundColor,omitempty"`
	BorderColor     string    `json:"borderColor,omitempty"`
	Fill            *bool     `json:"fill,omitempty"`
}

// ChartSeries is chart-ready data: ordered labels plus parallel datasets.
type ChartSeries struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}
