package cli

import (
	"testing"

	"github.com/Veraticus/snacker/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrency_Format(t *testing.T) {
	tests := []struct {
		name     string
		symbol   string
		amount   string
		expected string
	}{
		{name: "default symbol", amount: "1234.5", expected: "₱1,234.50"},
		{name: "small", amount: "0.5", expected: "₱0.50"},
		{name: "hundreds", amount: "999.999", expected: "₱1,000.00"},
		{name: "millions", amount: "1234567.891", expected: "₱1,234,567.89"},
		{name: "negative", amount: "-42", expected: "-₱42.00"},
		{name: "custom symbol", symbol: "$", amount: "100000", expected: "$100,000.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCurrency(tt.symbol)
			assert.Equal(t, tt.expected, c.Format(decimal.RequireFromString(tt.amount)))
		})
	}

	assert.Equal(t, "₱12.30", NewCurrency("").FormatFloat(12.3))
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
		wantErr  bool
	}{
		{input: "₱1,234.50", expected: 1234.5},
		{input: "42", expected: 42},
		{input: " 7.25 ", expected: 7.25},
		{input: "-3", expected: -3},
		{input: "abc", wantErr: true},
		{input: "1.2.3", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 1e-9)
		})
	}
}

func TestFormatCategory(t *testing.T) {
	c := model.Category{Name: "Food & Drinks", Icon: model.IconUtensils}
	assert.Contains(t, FormatCategory(c), "Food & Drinks")
	assert.Contains(t, FormatCategory(c), model.IconUtensils.Glyph())
}

func TestStyleAmount(t *testing.T) {
	assert.Contains(t, StyleAmount(model.TypeIncome, "₱10.00"), "+₱10.00")
	assert.Contains(t, StyleAmount(model.TypeExpense, "₱10.00"), "-₱10.00")
}

func TestRenderTable(t *testing.T) {
	out := RenderTable([]string{"Date", "Amount"}, [][]string{{"2024-03-01", "₱1.00"}})
	assert.Contains(t, out, "Date")
	assert.Contains(t, out, "2024-03-01")
}
