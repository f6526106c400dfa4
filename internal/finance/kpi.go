package finance

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// KPISummary computes the headline indicators for f. The cash balance
// ignores f: it is always the sum over every account.
//
// Any failure, including an end date that cannot be parsed, yields a
// zeroed summary along with the error.
func (s *Service) KPISummary(ctx context.Context, f Filter) (KPISummary, error) {
	summary, err := s.kpiSummary(ctx, f)
	if err != nil {
		s.log.Error("failed to compute KPI summary",
			zap.String("filter", f.Key()),
			zap.Error(err),
		)
		return KPISummary{}, err
	}
	return summary, nil
}

func (s *Service) kpiSummary(ctx context.Context, f Filter) (KPISummary, error) {
	end, err := s.effectiveEnd(f)
	if err != nil {
		return KPISummary{}, err
	}
	prevMonth := monthStart(end).AddDate(0, -1, 0)
	previous := f.WithDateRange(prevMonth, monthEnd(prevMonth))

	var (
		current, prior []Transaction
		balance        decimal.Decimal
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		current, err = s.Transactions(gctx, f)
		return err
	})
	g.Go(func() error {
		var err error
		prior, err = s.Transactions(gctx, previous)
		return err
	})
	g.Go(func() error {
		var err error
		if balance, err = s.store.QueryTotalAccountBalance(gctx); err != nil {
			return fmt.Errorf("%w: query account balance: %w", ErrStorage, err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return KPISummary{}, err
	}

	revenue, expense := totals(current)
	priorRevenue, _ := totals(prior)
	profit := revenue.Sub(expense)

	return KPISummary{
		RevenueTotal:       revenue.InexactFloat64(),
		ExpenseTotal:       expense.InexactFloat64(),
		NetProfit:          profit.InexactFloat64(),
		ProfitMargin:       percentOf(profit, revenue),
		MonthlyGrowth:      percentOf(revenue.Sub(priorRevenue), priorRevenue),
		CurrentCashBalance: balance.InexactFloat64(),
	}, nil
}

// effectiveEnd is the filter's end date, or today when the filter has none.
func (s *Service) effectiveEnd(f Filter) (time.Time, error) {
	if f.End == "" {
		return s.now(), nil
	}
	end, err := parseDate(f.End)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: end date %q", ErrInvalidFilter, f.End)
	}
	return end, nil
}
