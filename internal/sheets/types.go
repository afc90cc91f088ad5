package sheets

import (
	"github.com/Veraticus/snacker/internal/report"
)

// Tab titles.
const (
	ExpensesTab = "Expenses"
	SummaryTab  = "Monthly Summary"
)

// Row offsets in the Expenses tab: title, generated-at, blank, then header.
const expensesHeaderRow = 3

// expenseValues lays the report rows out for the Expenses tab.
func expenseValues(r *report.Report) [][]any {
	values := make([][]any, 0, len(r.Rows)+6)
	values = append(values,
		[]any{"Expense Report", r.Username},
		[]any{"Generated", r.GeneratedAt.Format("Jan 2, 2006 15:04")},
		[]any{},
		[]any{"Date", "Category", "Amount", "Notes"},
	)

	for _, row := range r.Rows {
		values = append(values, []any{
			row.Date.String(),
			row.Category,
			row.Amount.InexactFloat64(),
			row.Notes,
		})
	}

	values = append(values,
		[]any{},
		[]any{"Total", "", r.Total.InexactFloat64()},
	)
	return values
}

// summaryValues lays out one row per month, most recent first.
func summaryValues(r *report.Report) [][]any {
	values := make([][]any, 0, len(r.Months)+1)
	values = append(values, []any{"Month", "Income", "Expenses", "Balance"})
	for _, m := range r.Months {
		values = append(values, []any{
			m.Month.Format("2006-01"),
			m.Summary.Income.InexactFloat64(),
			m.Summary.Expenses.InexactFloat64(),
			m.Summary.Balance.InexactFloat64(),
		})
	}
	return values
}
