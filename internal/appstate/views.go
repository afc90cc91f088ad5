package appstate

import (
	"fmt"
	"sort"
	"time"

	"github.com/Veraticus/snacker/internal/model"
	"github.com/shopspring/decimal"
)

// UnknownCategoryName labels distribution groups whose category was deleted.
const UnknownCategoryName = "Unknown"

// Base colour of the expense distribution palette.
const (
	distributionBaseHue        = 90
	distributionBaseSaturation = 39
	distributionBaseLightness  = 31
)

// Summary totals one month.
type Summary struct {
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Balance  decimal.Decimal
}

// DistributionEntry is one category slice of a month's expenses.
type DistributionEntry struct {
	Value      decimal.Decimal
	CategoryID string
	Name       string
	Fill       string
}

// TransactionsByDate returns the transactions dated on day's calendar day.
func (s *State) TransactionsByDate(day time.Time) []model.Transaction {
	want := model.DateOf(day).String()

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.Transaction
	for _, t := range s.doc.Transactions {
		if t.Date.String() == want {
			out = append(out, t)
		}
	}
	return out
}

// TransactionsForMonth returns the transactions in the calendar month
// containing day, first and last days included.
func (s *State) TransactionsForMonth(day time.Time) []model.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return transactionsForMonth(s.doc.Transactions, day)
}

func transactionsForMonth(txns []model.Transaction, day time.Time) []model.Transaction {
	var out []model.Transaction
	for _, t := range txns {
		if t.Date.SameMonth(day) {
			out = append(out, t)
		}
	}
	return out
}

// MonthlySummary totals income and expenses for day's month.
func (s *State) MonthlySummary(day time.Time) Summary {
	income, expenses := decimal.Zero, decimal.Zero
	for _, t := range s.TransactionsForMonth(day) {
		amount := decimal.NewFromFloat(t.Amount)
		switch t.Type {
		case model.TypeIncome:
			income = income.Add(amount)
		case model.TypeExpense:
			expenses = expenses.Add(amount)
		}
	}
	return Summary{
		Income:   income,
		Expenses: expenses,
		Balance:  income.Sub(expenses),
	}
}

// MonthlyExpenseDistribution groups day's month of expenses by category in
// order of first appearance. Colours depend only on the group's position.
func (s *State) MonthlyExpenseDistribution(day time.Time) []DistributionEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var order []string
	totals := make(map[string]decimal.Decimal)
	for _, t := range transactionsForMonth(s.doc.Transactions, day) {
		if t.Type != model.TypeExpense {
			continue
		}
		if _, ok := totals[t.CategoryID]; !ok {
			order = append(order, t.CategoryID)
		}
		totals[t.CategoryID] = totals[t.CategoryID].Add(decimal.NewFromFloat(t.Amount))
	}

	entries := make([]DistributionEntry, 0, len(order))
	for i, id := range order {
		name := UnknownCategoryName
		if c, ok := model.FindCategory(s.doc.Categories, id); ok && c.Name != "" {
			name = c.Name
		}
		entries = append(entries, DistributionEntry{
			CategoryID: id,
			Name:       name,
			Value:      totals[id],
			Fill:       DistributionColor(i),
		})
	}
	return entries
}

// DistributionColor returns the HSL fill for the group at index.
func DistributionColor(index int) string {
	hue := (distributionBaseHue + index*30) % 360
	lightness := distributionBaseLightness - 5
	if index%2 == 0 {
		lightness = distributionBaseLightness + 5
	}
	saturation := distributionBaseSaturation - 5
	if index%3 == 0 {
		saturation = distributionBaseSaturation + 5
	}
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", hue, saturation, lightness)
}

// UniqueMonthsWithTransactions returns the first day of every month that has
// a transaction, most recent first.
func (s *State) UniqueMonthsWithTransactions() []time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[model.Date]bool)
	var months []time.Time
	for _, t := range s.doc.Transactions {
		start := t.Date.MonthStart()
		if seen[start] {
			continue
		}
		seen[start] = true
		months = append(months, start.Time)
	}

	sort.Slice(months, func(i, j int) bool {
		return months[i].After(months[j])
	})
	return months
}
