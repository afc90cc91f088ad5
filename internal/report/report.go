// Package report builds expense reports from application state and writes
// them to CSV files or other destinations.
package report

import (
	"context"
	"sort"
	"time"

	"github.com/Veraticus/snacker/internal/appstate"
	"github.com/Veraticus/snacker/internal/model"
	"github.com/shopspring/decimal"
)

// MissingCategory labels rows whose category no longer exists.
const MissingCategory = "N/A"

// Source is the read side of the state facade the report needs.
type Source interface {
	FilterTransactions(filters model.TransactionFilters) []model.Transaction
	CategoryByID(id string) (model.Category, bool)
	UniqueMonthsWithTransactions() []time.Time
	MonthlySummary(day time.Time) appstate.Summary
	Username() string
}

var _ Source = (*appstate.State)(nil)

// Writer delivers a finished report.
type Writer interface {
	Write(ctx context.Context, r *Report) error
}

// Row is one expense line.
type Row struct {
	Date       model.Date
	Amount     decimal.Decimal
	CategoryID string
	Category   string
	Notes      string
}

// MonthTotal summarizes one month that has transactions.
type MonthTotal struct {
	Month   time.Time
	Summary appstate.Summary
}

// Report is a filtered expense listing plus monthly totals.
type Report struct {
	GeneratedAt time.Time
	Filters     model.TransactionFilters
	Username    string
	Rows        []Row
	Months      []MonthTotal
	Total       decimal.Decimal
}

// Empty reports whether no expense matched the filters.
func (r *Report) Empty() bool {
	return len(r.Rows) == 0
}

// Build collects the expenses matching filters, oldest first. Income is never
// included, whatever type the filters ask for.
func Build(src Source, filters model.TransactionFilters, now time.Time) *Report {
	r := &Report{
		GeneratedAt: now,
		Filters:     filters.Clone(),
		Username:    src.Username(),
		Total:       decimal.Zero,
	}

	for _, month := range src.UniqueMonthsWithTransactions() {
		r.Months = append(r.Months, MonthTotal{Month: month, Summary: src.MonthlySummary(month)})
	}

	switch filters.Type {
	case "", model.FilterAll, string(model.TypeExpense):
	default:
		return r
	}

	f := filters.Clone()
	f.Type = string(model.TypeExpense)
	txns := src.FilterTransactions(f)
	sort.SliceStable(txns, func(i, j int) bool {
		return txns[i].Date.Before(txns[j].Date.Time)
	})

	r.Rows = make([]Row, 0, len(txns))
	for _, t := range txns {
		name := MissingCategory
		if c, ok := src.CategoryByID(t.CategoryID); ok {
			name = c.Name
		}
		amount := decimal.NewFromFloat(t.Amount)
		r.Rows = append(r.Rows, Row{
			Date:       t.Date,
			Amount:     amount,
			CategoryID: t.CategoryID,
			Category:   name,
			Notes:      t.Notes,
		})
		r.Total = r.Total.Add(amount)
	}

	return r
}
