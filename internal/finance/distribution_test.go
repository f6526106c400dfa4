package finance_test

import (
	"context"
	"errors"
	"testing"

	"financial-dashboard/internal/finance"
	"financial-dashboard/internal/finance/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_CategoryDistribution(t *testing.T) {
	store := &memStore{
		txs: []finance.Transaction{
			tx(finance.KindExpense, 30, "Food", "2024-01-20"),
			tx(finance.KindExpense, 20, "Food", "2024-01-18"),
			tx(finance.KindRevenue, 500, "Salary", "2024-01-15"),
			tx(finance.KindExpense, 10, "Rent", "2024-01-10"),
		},
		categories: []finance.Category{
			{ID: 1, Name: "Food", Kind: finance.KindExpense, Color: "#e74c3c"},
			{ID: 2, Name: "Salary", Kind: finance.KindRevenue, Color: "#27ae60"},
		},
	}
	svc := finance.NewService(store)

	series, err := svc.CategoryDistribution(context.Background(), finance.Filter{})
	require.NoError(t, err)

	assert.Equal(t, []string{"Food", "Rent"}, series.Labels)
	require.Len(t, series.Datasets, 1)
	assert.Equal(t, "Expenses by Category", series.Datasets[0].Label)
	assert.Equal(t, []float64{50, 10}, series.Datasets[0].Data)
	require.Len(t, series.Datasets[0].BackgroundColor, 2)
	assert.Equal(t, "#e74c3c", series.Datasets[0].BackgroundColor[0])
	assert.Regexp(t, `^#[0-9a-f]{6}$`, series.Datasets[0].BackgroundColor[1])

	again, err := svc.CategoryDistribution(context.Background(), finance.Filter{})
	require.NoError(t, err)
	assert.Equal(t, series, again)
}

func TestService_CategoryDistribution_FirstSeenOrder(t *testing.T) {
	store := &memStore{
		txs: []finance.Transaction{
			tx(finance.KindExpense, 5, "Utilities", "2024-01-05"),
			tx(finance.KindExpense, 7, "Rent", "2024-01-25"),
			tx(finance.KindExpense, 3, "Utilities", "2024-01-26"),
			tx(finance.KindExpense, 1, "Groceries", "2024-01-01"),
		},
	}
	svc := finance.NewService(store)

	series, err := svc.CategoryDistribution(context.Background(), finance.Filter{})
	require.NoError(t, err)

	assert.Equal(t, []string{"Utilities", "Rent", "Groceries"}, series.Labels)
	assert.Equal(t, []float64{8, 7, 1}, series.Datasets[0].Data)
}

func TestService_CategoryDistribution_NoExpenses(t *testing.T) {
	store := &memStore{
		txs: []finance.Transaction{tx(finance.KindRevenue, 100, "Salary", "2024-01-10")},
	}
	svc := finance.NewService(store)

	series, err := svc.CategoryDistribution(context.Background(), finance.Filter{})
	require.NoError(t, err)

	assert.Empty(t, series.Labels)
	require.Len(t, series.Datasets, 1)
	assert.Empty(t, series.Datasets[0].Data)
}

func TestService_CategoryDistribution_Failures(t *testing.T) {
	ctx := context.Background()

	t.Run("transaction query fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockStore(ctrl)
		store.EXPECT().QueryTransactions(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection reset")).Times(1)

		series, err := finance.NewService(store).CategoryDistribution(ctx, finance.Filter{})

		assert.ErrorIs(t, err, finance.ErrStorage)
		assert.Empty(t, series.Labels)
		require.Len(t, series.Datasets, 1)
		assert.Equal(t, "Expenses by Category", series.Datasets[0].Label)
		assert.NotNil(t, series.Datasets[0].Data)
		assert.Empty(t, series.Datasets[0].Data)
		assert.Empty(t, series.Datasets[0].BackgroundColor)
	})

	t.Run("category lookup fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockStore(ctrl)
		store.EXPECT().QueryTransactions(gomock.Any(), gomock.Any()).
			Return([]finance.Transaction{tx(finance.KindExpense, 12, "Rent", "2024-01-10")}, nil).Times(1)
		store.EXPECT().QueryCategories(gomock.Any()).
			Return(nil, errors.New("connection reset")).Times(1)

		series, err := finance.NewService(store).CategoryDistribution(ctx, finance.Filter{})

		require.NoError(t, err)
		assert.Equal(t, []string{"Rent"}, series.Labels)
		assert.Equal(t, []float64{12}, series.Datasets[0].Data)
		assert.Len(t, series.Datasets[0].BackgroundColor, 1)
	})
}
