package finance

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	DefaultMonths = 6
	MaxMonths     = 60
)

// MonthlySeries returns revenue and expense totals for the months calendar
// months ending with the current one, oldest first.
//
// The window always ends at the clock's current month. The date bounds of f
// do not move it; only its categories narrow which transactions count.
// All months are read with one range query and bucketed in process.
func (s *Service) MonthlySeries(ctx context.Context, months int, f Filter) (ChartSeries, error) {
	if months < 1 {
		months = 1
	}
	if months > MaxMonths {
		months = MaxMonths
	}

	now := s.now()
	first := monthStart(now).AddDate(0, -(months - 1), 0)
	last := monthEnd(now)

	txs, err := s.Transactions(ctx, f.WithDateRange(first, last))
	if err != nil {
		s.log.Error("failed to query monthly series, serving zeroed months", zap.Int("months", months), zap.Error(err))
	}

	revenue := make([]decimal.Decimal, months)
	expense := make([]decimal.Decimal, months)
	for _, t := range txs {
		i := monthIndex(first, t.Date)
		if i < 0 || i >= months {
			continue
		}
		switch t.Kind {
		case KindRevenue:
			revenue[i] = revenue[i].Add(t.Amount)
		case KindExpense:
			expense[i] = expense[i].Add(t.Amount)
		}
	}

	labels := make([]string, months)
	revenueData := make([]float64, months)
	expenseData := make([]float64, months)
	for i := 0; i < months; i++ {
		labels[i] = s.labels.month(first.AddDate(0, i, 0))
		revenueData[i] = revenue[i].InexactFloat64()
		expenseData[i] = expense[i].InexactFloat64()
	}

	noFill := false
	return ChartSeries{
		Labels: labels,
		Datasets: []Dataset{
			{
				Label:           s.labels.revenue,
				Data:            revenueData,
				BackgroundColor: []string{"rgba(75, 192, 192, 0.2)"},
				BorderColor:     "rgba(75, 192, 192, 1)",
				Fill:            &noFill,
			},
			{
				Label:           s.labels.expense,
				Data:            expenseData,
				BackgroundColor: []string{"rgba(255, 99, 132, 0.2)"},
				BorderColor:     "rgba(255, 99, 132, 1)",
				Fill:            &noFill,
			},
		},
	}, err
}

// monthIndex is the number of calendar months from start's month to t's month.
func monthIndex(start, t time.Time) int {
	return (t.Year()-start.Year())*12 + int(t.Month()) - int(start.Month())
}
