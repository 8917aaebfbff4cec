package statement

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foundx/foundx/internal/fund"
)

func TestParser_Ledger(t *testing.T) {
	input := `Account Statement
Exported 2026-08-20

Date,Description,Amount,Category
2026-08-01,Figma subscription,-45.00,Software
2026-08-03,Client payment,1200.00,
2026-08-05,Team lunch,-86.40,Snacks
2026-08-10,Print flyers,"-1,250.00",Marketing
Total,,-181.40,
`

	expenses, err := NewParser().Parse(strings.NewReader(input))
	require.NoError(t, err)

	// Income and footer rows are dropped.
	require.Len(t, expenses, 3)

	assert.Equal(t, "Figma subscription", expenses[0].Title)
	assert.True(t, expenses[0].Amount.Equal(decimal.NewFromInt(45)))
	assert.Equal(t, fund.CategorySoftware, expenses[0].Category)
	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), expenses[0].Date)
	assert.Equal(t, "Bank Transfer", expenses[0].PaymentMethod)

	assert.Equal(t, fund.CategoryMiscellaneous, expenses[1].Category, "unknown category falls back")

	assert.True(t, expenses[2].Amount.Equal(decimal.NewFromInt(1250)), "thousands separator")
	assert.Equal(t, fund.CategoryMarketing, expenses[2].Category)
}

func TestParser_Card(t *testing.T) {
	input := `Date,Description,Debit,Credit
02-08-2026,Uber ride,23.40,
05-08-2026,Refund,,15.00
09-08-2026,Hotel stay,412.90,
`

	expenses, err := NewParser().Parse(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, expenses, 2)
	assert.Equal(t, "Uber ride", expenses[0].Title)
	assert.True(t, expenses[0].Amount.Equal(decimal.NewFromFloat(23.40)))
	assert.Equal(t, "Credit Card", expenses[0].PaymentMethod)
	assert.Equal(t, fund.CategoryMiscellaneous, expenses[0].Category)

	assert.Equal(t, "Hotel stay", expenses[1].Title)
	assert.Equal(t, time.Date(2026, 8, 9, 0, 0, 0, 0, time.UTC), expenses[1].Date)
}

func TestParser_UnknownFormat(t *testing.T) {
	input := "Foo,Bar\n1,2\n"

	_, err := NewParser().Parse(strings.NewReader(input))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no matching statement format")
}

func TestParser_MissingDescription(t *testing.T) {
	input := "Date,Description,Amount,Category\n2026-08-01,,-45.00,Software\n"

	_, err := NewParser().Parse(strings.NewReader(input))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing description")
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"-45.00", "-45"},
		{"1,234.56", "1234.56"},
		{"-1.234,56", "-1234.56"},
		{"10,00", "10"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseAmount(tt.in)
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s", got)
		})
	}
}
