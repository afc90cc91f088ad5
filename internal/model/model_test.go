package model

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransaction_Validate(t *testing.T) {
	date := NewDate(2024, time.March, 15)

	tests := []struct {
		wantErr error
		name    string
		txn     Transaction
	}{
		{
			name: "valid expense",
			txn:  Transaction{Type: TypeExpense, Amount: 42.5, CategoryID: "food", Date: date},
		},
		{
			name:    "unknown type",
			txn:     Transaction{Type: "transfer", Amount: 10, CategoryID: "food", Date: date},
			wantErr: ErrInvalidType,
		},
		{
			name:    "zero amount",
			txn:     Transaction{Type: TypeIncome, CategoryID: "salary", Date: date},
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "negative amount",
			txn:     Transaction{Type: TypeIncome, Amount: -5, CategoryID: "salary", Date: date},
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "missing category",
			txn:     Transaction{Type: TypeIncome, Amount: 5, Date: date},
			wantErr: ErrMissingCategory,
		},
		{
			name:    "missing date",
			txn:     Transaction{Type: TypeIncome, Amount: 5, CategoryID: "salary"},
			wantErr: ErrMissingDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.txn.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCategory_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cat     Category
		wantErr bool
	}{
		{name: "valid", cat: Category{Name: "Snacks", Type: TypeExpense}},
		{name: "empty name", cat: Category{Name: "   ", Type: TypeExpense}, wantErr: true},
		{name: "fifty characters", cat: Category{Name: strings.Repeat("a", 50), Type: TypeIncome}},
		{name: "fifty one characters", cat: Category{Name: strings.Repeat("a", 51), Type: TypeIncome}, wantErr: true},
		{name: "missing type", cat: Category{Name: "Snacks"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cat.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDefaultCategories(t *testing.T) {
	cats := DefaultCategories()
	require.Len(t, cats, 16)

	seen := make(map[string]bool)
	for i, c := range cats {
		assert.False(t, seen[c.ID], "duplicate id %s", c.ID)
		seen[c.ID] = true
		assert.True(t, c.Icon.Known(), "icon %s for %s", c.Icon, c.ID)
		if i < 5 {
			assert.Equal(t, TypeIncome, c.Type)
		} else {
			assert.Equal(t, TypeExpense, c.Type)
		}
	}

	food, ok := FindCategory(cats, "food")
	require.True(t, ok)
	assert.Equal(t, "Food & Drinks", food.Name)

	// Callers get a fresh slice each time.
	cats[0].Name = "changed"
	assert.Equal(t, "Salary", DefaultCategories()[0].Name)
}

func TestIcon_Resolve(t *testing.T) {
	assert.Equal(t, IconCar, IconCar.Resolve())
	assert.Equal(t, IconFallback, Icon("").Resolve())
	assert.Equal(t, IconFallback, Icon("Sparkles").Resolve())
	assert.Equal(t, IconTag.Glyph(), Icon("Sparkles").Glyph())
	assert.Len(t, Icons(), 15)
}

func TestDate_JSON(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		d := NewDate(2024, time.February, 29)
		data, err := json.Marshal(d)
		require.NoError(t, err)
		assert.JSONEq(t, `"2024-02-29"`, string(data))

		var got Date
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, d, got)
	})

	t.Run("accepts timestamps", func(t *testing.T) {
		var got Date
		require.NoError(t, json.Unmarshal([]byte(`"2024-03-15T10:30:00.000Z"`), &got))
		assert.Equal(t, NewDate(2024, time.March, 15), got)
	})

	t.Run("unreadable values become zero", func(t *testing.T) {
		got := NewDate(2024, time.March, 15)
		require.NoError(t, json.Unmarshal([]byte(`"15/03/2024"`), &got))
		assert.True(t, got.IsZero())

		got = NewDate(2024, time.March, 15)
		require.NoError(t, json.Unmarshal([]byte(`20240315`), &got))
		assert.True(t, got.IsZero())
	})

	t.Run("bad date keeps the rest of the transaction", func(t *testing.T) {
		var txns []Transaction
		raw := `[{"id":"a","type":"expense","amount":5,"categoryId":"food","date":"2024-03-15"},
			{"id":"b","type":"expense","amount":7,"categoryId":"food","date":"15/03/2024","notes":"kept"}]`
		require.NoError(t, json.Unmarshal([]byte(raw), &txns))
		require.Len(t, txns, 2)
		assert.Equal(t, NewDate(2024, time.March, 15), txns[0].Date)
		assert.True(t, txns[1].Date.IsZero())
		assert.Equal(t, "kept", txns[1].Notes)
	})
}

func TestLocalDateOf(t *testing.T) {
	manila := time.FixedZone("PHT", 8*60*60)
	saved := time.Local
	time.Local = manila
	t.Cleanup(func() { time.Local = saved })

	// Local midnight on March 1 serialized as a UTC timestamp.
	instant := time.Date(2024, time.February, 29, 16, 0, 0, 0, time.UTC)
	assert.Equal(t, NewDate(2024, time.March, 1), LocalDateOf(instant))
	assert.Equal(t, NewDate(2024, time.February, 29), DateOf(instant))

	midnight := NewDate(2024, time.March, 1).LocalMidnight()
	assert.Equal(t, manila, midnight.Location())
	assert.True(t, midnight.Equal(instant))
}

func TestDate_SameMonth(t *testing.T) {
	march := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)
	assert.True(t, NewDate(2024, time.March, 1).SameMonth(march))
	assert.True(t, NewDate(2024, time.March, 31).SameMonth(march))
	assert.False(t, NewDate(2024, time.April, 1).SameMonth(march))
	assert.False(t, NewDate(2023, time.March, 15).SameMonth(march))
	assert.Equal(t, NewDate(2024, time.March, 1), NewDate(2024, time.March, 31).MonthStart())
}

func TestDocument_Clone(t *testing.T) {
	from := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	doc := DefaultDocument()
	doc.Transactions = append(doc.Transactions, Transaction{ID: "t1", Amount: 1})
	doc.TransactionPageFilters = &TransactionFilters{DateFrom: &from}

	clone := doc.Clone()
	clone.Transactions[0].Amount = 99
	clone.Categories[0].Name = "changed"
	*clone.TransactionPageFilters.DateFrom = from.AddDate(1, 0, 0)

	assert.InDelta(t, 1, doc.Transactions[0].Amount, 0)
	assert.Equal(t, "Salary", doc.Categories[0].Name)
	assert.Equal(t, from, *doc.TransactionPageFilters.DateFrom)
}
