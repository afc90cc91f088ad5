package appstate

import (
	"sort"
	"strconv"
	"strings"

	"github.com/Veraticus/snacker/internal/model"
)

// FilterTransactions applies filters to every transaction and returns the
// matches, most recent first. Date bounds are compared by their calendar day
// in the local time zone.
func (s *State) FilterTransactions(filters model.TransactionFilters) []model.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filterTransactions(s.doc.Transactions, s.doc.Categories, filters)
}

func filterTransactions(txns []model.Transaction, cats []model.Category, f model.TransactionFilters) []model.Transaction {
	var from, to model.Date
	if f.DateFrom != nil {
		from = model.LocalDateOf(*f.DateFrom)
	}
	if f.DateTo != nil {
		to = model.LocalDateOf(*f.DateTo)
	}
	term := strings.ToLower(strings.TrimSpace(f.SearchTerm))

	out := make([]model.Transaction, 0, len(txns))
	for _, t := range txns {
		if f.Type != "" && f.Type != model.FilterAll && string(t.Type) != f.Type {
			continue
		}
		if f.CategoryID != "" && f.CategoryID != model.FilterAll && t.CategoryID != f.CategoryID {
			continue
		}
		if f.DateFrom != nil && t.Date.Before(from.Time) {
			continue
		}
		if f.DateTo != nil && t.Date.After(to.Time) {
			continue
		}
		if term != "" && !matchesSearch(t, cats, term) {
			continue
		}
		out = append(out, t)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date.Time)
	})
	return out
}

func matchesSearch(t model.Transaction, cats []model.Category, term string) bool {
	if strings.Contains(strings.ToLower(t.Notes), term) {
		return true
	}
	if strings.Contains(strconv.FormatFloat(t.Amount, 'f', -1, 64), term) {
		return true
	}
	if c, ok := model.FindCategory(cats, t.CategoryID); ok {
		return strings.Contains(strings.ToLower(c.Name), term)
	}
	return false
}
