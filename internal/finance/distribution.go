package finance

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CategoryDistribution groups the expenses matching f by category. Labels
// keep the order in which categories are first met while scanning the
// newest-first transaction list.
//
// Colors come from the category table; unknown categories get a color
// derived from their name. A failed category lookup only degrades colors.
func (s *Service) CategoryDistribution(ctx context.Context, f Filter) (ChartSeries, error) {
	// a failed query still yields the single, empty dataset
	txs, err := s.Transactions(ctx, f)

	labels := []string{}
	sums := map[string]decimal.Decimal{}
	for _, t := range txs {
		if t.Kind != KindExpense {
			continue
		}
		if _, seen := sums[t.Category]; !seen {
			labels = append(labels, t.Category)
		}
		sums[t.Category] = sums[t.Category].Add(t.Amount)
	}

	colors := map[string]string{}
	if len(labels) > 0 {
		cats, err := s.ListCategories(ctx)
		if err != nil {
			s.log.Warn("category colors unavailable, using derived colors", zap.Error(err))
		}
		for _, c := range cats {
			colors[c.Name] = c.Color
		}
	}

	data := make([]float64, len(labels))
	background := make([]string, len(labels))
	for i, name := range labels {
		data[i] = sums[name].InexactFloat64()
		if c, ok := colors[name]; ok && c != "" {
			background[i] = c
		} else {
			background[i] = fallbackColor(name)
		}
	}

	return ChartSeries{
		Labels: labels,
		Datasets: []Dataset{{
			Label:           s.labels.byCategory,
			Data:            data,
			BackgroundColor: background,
		}},
	}, err
}
