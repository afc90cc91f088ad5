package model

import "time"

// FilterAll matches any type or category.
const FilterAll = "all"

// TransactionFilters are the saved transaction list filter preferences.
// Every field is optional.
type TransactionFilters struct {
	DateFrom   *time.Time `json:"dateFrom,omitempty"`
	DateTo     *time.Time `json:"dateTo,omitempty"`
	Type       string     `json:"type,omitempty"`
	CategoryID string     `json:"categoryId,omitempty"`
	SearchTerm string     `json:"searchTerm,omitempty"`
}

// IsZero reports whether no filter is set.
func (f TransactionFilters) IsZero() bool {
	return f.DateFrom == nil && f.DateTo == nil &&
		(f.Type == "" || f.Type == FilterAll) &&
		(f.CategoryID == "" || f.CategoryID == FilterAll) &&
		f.SearchTerm == ""
}

// Clone returns a copy that shares no pointers with f.
func (f TransactionFilters) Clone() TransactionFilters {
	out := f
	if f.DateFrom != nil {
		t := *f.DateFrom
		out.DateFrom = &t
	}
	if f.DateTo != nil {
		t := *f.DateTo
		out.DateTo = &t
	}
	return out
}
