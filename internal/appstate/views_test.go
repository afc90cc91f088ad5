package appstate_test

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/Veraticus/snacker/internal/appstate"
	"github.com/Veraticus/snacker/internal/model"
	"github.com/Veraticus/snacker/internal/testutil"
	"github.com/Veraticus/snacker/internal/testutil/documents"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadedState(t *testing.T, doc model.Document) *appstate.State {
	t.Helper()
	db := testutil.SetupTestDB(t)
	db.Seed(doc)
	return db.State()
}

func ids(txns []model.Transaction) []string {
	out := make([]string, 0, len(txns))
	for _, t := range txns {
		out = append(out, t.ID)
	}
	return out
}

func TestTransactionsForMonth_Boundaries(t *testing.T) {
	state := loadedState(t, documents.New().WithDefaultCategories().
		Expense("feb-last", 1, documents.CategoryFood, "2024-02-29").
		Expense("mar-first", 2, documents.CategoryFood, "2024-03-01").
		Expense("mar-mid", 3, documents.CategoryFood, "2024-03-15").
		Expense("mar-last", 4, documents.CategoryFood, "2024-03-31").
		Expense("apr-first", 5, documents.CategoryFood, "2024-04-01").
		Expense("last-year", 6, documents.CategoryFood, "2023-03-15").
		Build())

	for _, day := range []string{"2024-03-01", "2024-03-15", "2024-03-31"} {
		t.Run(day, func(t *testing.T) {
			got := state.TransactionsForMonth(documents.Day(day))
			assert.Equal(t, []string{"mar-first", "mar-mid", "mar-last"}, ids(got))
		})
	}

	assert.Equal(t, []string{"feb-last"}, ids(state.TransactionsForMonth(documents.Day("2024-02-01"))))
	assert.Empty(t, state.TransactionsForMonth(documents.Day("2024-05-10")))
}

func TestTransactionsByDate(t *testing.T) {
	state := loadedState(t, documents.New().WithDefaultCategories().
		Expense("a", 1, documents.CategoryFood, "2024-03-15").
		Income("b", 2, documents.CategorySalary, "2024-03-15").
		Expense("c", 3, documents.CategoryFood, "2024-03-16").
		Build())

	assert.Equal(t, []string{"a", "b"}, ids(state.TransactionsByDate(documents.Day("2024-03-15"))))
	late := time.Date(2024, time.March, 16, 23, 59, 0, 0, time.Local)
	assert.Equal(t, []string{"c"}, ids(state.TransactionsByDate(late)))
	assert.Empty(t, state.TransactionsByDate(documents.Day("2024-03-17")))
}

func TestMonthlySummary(t *testing.T) {
	state := loadedState(t, documents.New().WithDefaultCategories().
		Income("salary", 1000.10, documents.CategorySalary, "2024-03-01").
		Expense("rent", 800.20, documents.CategoryHousing, "2024-03-02").
		Expense("food", 300.30, documents.CategoryFood, "2024-03-31").
		Income("other-month", 50, documents.CategorySalary, "2024-04-01").
		Build())

	summary := state.MonthlySummary(documents.Day("2024-03-10"))
	assert.True(t, decimal.RequireFromString("1000.1").Equal(summary.Income), summary.Income.String())
	assert.True(t, decimal.RequireFromString("1100.5").Equal(summary.Expenses), summary.Expenses.String())
	assert.True(t, decimal.RequireFromString("-100.4").Equal(summary.Balance), "balance can be negative")

	empty := state.MonthlySummary(documents.Day("2020-01-01"))
	assert.True(t, empty.Income.IsZero())
	assert.True(t, empty.Expenses.IsZero())
	assert.True(t, empty.Balance.IsZero())
}

func TestMonthlySummary_BalanceProperty(t *testing.T) {
	ctx := context.Background()
	rng := rand.New(rand.NewSource(42))
	state := appstate.New(&recordingStore{doc: model.DefaultDocument()})
	state.Load(ctx)

	for i := 0; i < 200; i++ {
		state.AddTransaction(ctx, randomTransaction(rng))
	}

	for _, month := range state.UniqueMonthsWithTransactions() {
		s := state.MonthlySummary(month)
		assert.True(t, s.Balance.Equal(s.Income.Sub(s.Expenses)), month.Format("2006-01"))
	}
}

func TestMonthlyExpenseDistribution(t *testing.T) {
	t.Run("single food expense", func(t *testing.T) {
		ctx := context.Background()
		db := testutil.SetupTestDB(t)
		state := db.State()
		state.AddTransaction(ctx, model.Transaction{
			Type:       model.TypeExpense,
			Amount:     42.50,
			CategoryID: "food",
			Date:       documents.MustDate("2024-03-15"),
		})

		march := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.Local)
		require.Len(t, state.TransactionsForMonth(march), 1)

		dist := state.MonthlyExpenseDistribution(march)
		require.Len(t, dist, 1)
		assert.Equal(t, "Food & Drinks", dist[0].Name)
		assert.True(t, decimal.RequireFromString("42.50").Equal(dist[0].Value))
		assert.Equal(t, "hsl(90, 44%, 36%)", dist[0].Fill)
	})

	t.Run("groups in order of first appearance", func(t *testing.T) {
		state := loadedState(t, documents.New().WithDefaultCategories().
			Expense("1", 10, documents.CategoryTransport, "2024-03-20").
			Expense("2", 5.25, documents.CategoryFood, "2024-03-02").
			Income("3", 999, documents.CategorySalary, "2024-03-03").
			Expense("4", 4.75, documents.CategoryTransport, "2024-03-04").
			Expense("5", 7, "deleted-category", "2024-03-05").
			Expense("6", 100, documents.CategoryHousing, "2024-04-01").
			Build())

		dist := state.MonthlyExpenseDistribution(documents.Day("2024-03-01"))
		require.Len(t, dist, 3)

		assert.Equal(t, "transport", dist[0].CategoryID)
		assert.Equal(t, "Transport", dist[0].Name)
		assert.True(t, decimal.RequireFromString("14.75").Equal(dist[0].Value))

		assert.Equal(t, "Food & Drinks", dist[1].Name)
		assert.Equal(t, appstate.UnknownCategoryName, dist[2].Name)

		// Same input, same colours.
		again := state.MonthlyExpenseDistribution(documents.Day("2024-03-31"))
		assert.Equal(t, dist, again)
	})

	t.Run("no expenses", func(t *testing.T) {
		state := loadedState(t, documents.New().WithDefaultCategories().
			Income("1", 10, documents.CategorySalary, "2024-03-20").Build())
		assert.Empty(t, state.MonthlyExpenseDistribution(documents.Day("2024-03-01")))
	})
}

func TestDistributionColor(t *testing.T) {
	tests := []struct {
		want  string
		index int
	}{
		{index: 0, want: "hsl(90, 44%, 36%)"},
		{index: 1, want: "hsl(120, 34%, 26%)"},
		{index: 2, want: "hsl(150, 34%, 36%)"},
		{index: 3, want: "hsl(180, 44%, 26%)"},
		{index: 9, want: "hsl(0, 44%, 26%)"},
		{index: 10, want: "hsl(30, 34%, 36%)"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, appstate.DistributionColor(tt.index), "index %d", tt.index)
	}
}

func TestUniqueMonthsWithTransactions(t *testing.T) {
	state := loadedState(t, documents.New().WithDefaultCategories().
		Expense("1", 1, documents.CategoryFood, "2024-01-31").
		Expense("2", 1, documents.CategoryFood, "2024-03-15").
		Expense("3", 1, documents.CategoryFood, "2023-12-01").
		Income("4", 1, documents.CategorySalary, "2024-03-01").
		Expense("5", 1, documents.CategoryFood, "2024-01-02").
		Build())

	got := state.UniqueMonthsWithTransactions()
	want := []time.Time{
		time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, want, got)

	empty := loadedState(t, documents.New().WithDefaultCategories().Build())
	assert.Empty(t, empty.UniqueMonthsWithTransactions())
}

func TestFilterTransactions(t *testing.T) {
	state := loadedState(t, documents.New().WithDefaultCategories().
		WithTransaction(model.Transaction{ID: "coffee", Type: model.TypeExpense, Amount: 3.5, CategoryID: "food", Date: documents.MustDate("2024-03-10"), Notes: "Morning Coffee"}).
		WithTransaction(model.Transaction{ID: "bus", Type: model.TypeExpense, Amount: 12, CategoryID: "transport", Date: documents.MustDate("2024-03-12")}).
		WithTransaction(model.Transaction{ID: "pay", Type: model.TypeIncome, Amount: 1500, CategoryID: "salary", Date: documents.MustDate("2024-03-01")}).
		WithTransaction(model.Transaction{ID: "old", Type: model.TypeExpense, Amount: 99.99, CategoryID: "gone", Date: documents.MustDate("2024-02-28")}).
		Build())

	day := func(s string) *time.Time {
		d := documents.Day(s)
		return &d
	}

	tests := []struct {
		name    string
		want    []string
		filters model.TransactionFilters
	}{
		{name: "no filters sorts newest first", want: []string{"bus", "coffee", "pay", "old"}},
		{name: "all type", filters: model.TransactionFilters{Type: model.FilterAll, CategoryID: model.FilterAll}, want: []string{"bus", "coffee", "pay", "old"}},
		{name: "income only", filters: model.TransactionFilters{Type: "income"}, want: []string{"pay"}},
		{name: "category", filters: model.TransactionFilters{CategoryID: "food"}, want: []string{"coffee"}},
		{name: "inclusive date range", filters: model.TransactionFilters{DateFrom: day("2024-03-01"), DateTo: day("2024-03-10")}, want: []string{"coffee", "pay"}},
		{name: "search notes ignores case", filters: model.TransactionFilters{SearchTerm: "coffee"}, want: []string{"coffee"}},
		{name: "search amount", filters: model.TransactionFilters{SearchTerm: "99.9"}, want: []string{"old"}},
		{name: "search category name", filters: model.TransactionFilters{SearchTerm: "transp"}, want: []string{"bus"}},
		{name: "no match", filters: model.TransactionFilters{SearchTerm: "zzz"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(state.FilterTransactions(tt.filters)))
		})
	}
}

func TestFilterTransactions_LocalDayBounds(t *testing.T) {
	saved := time.Local
	time.Local = time.FixedZone("PHT", 8*60*60)
	t.Cleanup(func() { time.Local = saved })

	state := loadedState(t, documents.New().WithDefaultCategories().
		WithTransaction(model.Transaction{ID: "feb", Type: model.TypeExpense, Amount: 4, CategoryID: "food", Date: documents.MustDate("2024-02-29")}).
		WithTransaction(model.Transaction{ID: "mar", Type: model.TypeExpense, Amount: 6, CategoryID: "food", Date: documents.MustDate("2024-03-01")}).
		Build())

	// Local midnight of March 1 stored as a UTC timestamp.
	from := time.Date(2024, time.February, 29, 16, 0, 0, 0, time.UTC)
	got := state.FilterTransactions(model.TransactionFilters{DateFrom: &from, DateTo: &from})
	assert.Equal(t, []string{"mar"}, ids(got))
}
