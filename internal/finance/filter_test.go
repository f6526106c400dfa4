package finance_test

import (
	"testing"

	"financial-dashboard/internal/finance"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		raw      finance.RawFilter
		expected finance.Filter
	}{
		{
			name:     "empty filter",
			raw:      finance.RawFilter{},
			expected: finance.Filter{},
		},
		{
			name: "all fields with wire tags",
			raw: finance.RawFilter{
				Start:      " 2024-01-01 ",
				End:        "2024-01-31",
				Period:     "mes",
				Categories: "Food, Rent,,  ",
			},
			expected: finance.Filter{
				Start:      "2024-01-01",
				End:        "2024-01-31",
				Period:     finance.PeriodMonth,
				Categories: []string{"Food", "Rent"},
			},
		},
		{
			name:     "custom period",
			raw:      finance.RawFilter{Period: "personalizado"},
			expected: finance.Filter{Period: finance.PeriodCustom},
		},
		{
			name:     "blank categories are absent",
			raw:      finance.RawFilter{Categories: " , ,"},
			expected: finance.Filter{},
		},
		{
			name:     "malformed date passes through",
			raw:      finance.RawFilter{Start: "yesterday", Period: "semana"},
			expected: finance.Filter{Start: "yesterday", Period: finance.Period("semana")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, finance.Normalize(tt.raw))
		})
	}
}

func TestFilter_Validate(t *testing.T) {
	tests := []struct {
		name    string
		filter  finance.Filter
		wantErr bool
	}{
		{name: "empty", filter: finance.Filter{}},
		{name: "valid range", filter: finance.Filter{Start: "2024-01-01", End: "2024-01-31", Period: finance.PeriodMonth}},
		{name: "same day", filter: finance.Filter{Start: "2024-01-01", End: "2024-01-01", Period: finance.PeriodDay}},
		{name: "bad start", filter: finance.Filter{Start: "01/01/2024"}, wantErr: true},
		{name: "bad end", filter: finance.Filter{End: "2024-13-01"}, wantErr: true},
		{name: "inverted range", filter: finance.Filter{Start: "2024-02-01", End: "2024-01-01"}, wantErr: true},
		{name: "unknown period", filter: finance.Filter{Period: "week"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.filter.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, finance.ErrInvalidFilter)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFilter_WithDateRange(t *testing.T) {
	original := finance.Filter{Start: "x", End: "y", Period: finance.PeriodYear, Categories: []string{"A"}}

	derived := original.WithDateRange(date("2024-02-01"), date("2024-02-29"))
	derived.Categories[0] = "changed"

	assert.Equal(t, "2024-02-01", derived.Start)
	assert.Equal(t, "2024-02-29", derived.End)
	assert.Equal(t, finance.PeriodYear, derived.Period)
	assert.Equal(t, []string{"A"}, original.Categories)
}

func TestParseKind(t *testing.T) {
	for in, want := range map[string]finance.Kind{
		"revenue": finance.KindRevenue,
		"receita": finance.KindRevenue,
		"Expense": finance.KindExpense,
		"despesa": finance.KindExpense,
	} {
		got, err := finance.ParseKind(in)
		assert.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := finance.ParseKind("transfer")
	assert.ErrorIs(t, err, finance.ErrInvalidTransaction)
}

func TestNewTransaction_BalanceDelta(t *testing.T) {
	nt := finance.NewTransaction{Amount: decimal.RequireFromString("19.90"), Kind: finance.KindExpense}
	assert.True(t, nt.BalanceDelta().Equal(decimal.RequireFromString("-19.90")))

	nt.Kind = finance.KindRevenue
	assert.True(t, nt.BalanceDelta().Equal(decimal.RequireFromString("19.90")))
}
