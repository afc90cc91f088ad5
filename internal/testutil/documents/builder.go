// Package documents provides a fluent builder for test documents.
//
// Example usage:
//
//	doc := documents.New().
//		WithDefaultCategories().
//		Expense("t1", 42.50, documents.CategoryFood, "2024-03-15").
//		Ready("Ada").
//		Build()
package documents

import (
	"fmt"
	"time"

	"github.com/Veraticus/snacker/internal/model"
)

// CategoryID is a strongly-typed default category identifier.
type CategoryID string

// Default category IDs used across tests.
const (
	CategorySalary        CategoryID = "salary"
	CategoryFreelance     CategoryID = "freelance"
	CategoryFood          CategoryID = "food"
	CategoryHousing       CategoryID = "housing"
	CategoryTransport     CategoryID = "transport"
	CategoryEntertainment CategoryID = "entertainment"
	CategoryOtherExpense  CategoryID = "other_expense"
)

// Builder assembles a model.Document.
type Builder struct {
	doc model.Document
}

// New starts from an empty document with no categories.
func New() *Builder {
	return &Builder{doc: model.Document{
		Transactions: []model.Transaction{},
		Categories:   []model.Category{},
	}}
}

// WithDefaultCategories appends the full default category set.
func (b *Builder) WithDefaultCategories() *Builder {
	b.doc.Categories = append(b.doc.Categories, model.DefaultCategories()...)
	return b
}

// WithCategory appends c.
func (b *Builder) WithCategory(c model.Category) *Builder {
	b.doc.Categories = append(b.doc.Categories, c)
	return b
}

// WithTransaction appends t.
func (b *Builder) WithTransaction(t model.Transaction) *Builder {
	b.doc.Transactions = append(b.doc.Transactions, t)
	return b
}

// Expense appends an expense dated on a yyyy-MM-dd day.
func (b *Builder) Expense(id string, amount float64, category CategoryID, day string) *Builder {
	return b.WithTransaction(model.Transaction{
		ID:         id,
		Type:       model.TypeExpense,
		Amount:     amount,
		CategoryID: string(category),
		Date:       MustDate(day),
	})
}

// Income appends an income dated on a yyyy-MM-dd day.
func (b *Builder) Income(id string, amount float64, category CategoryID, day string) *Builder {
	return b.WithTransaction(model.Transaction{
		ID:         id,
		Type:       model.TypeIncome,
		Amount:     amount,
		CategoryID: string(category),
		Date:       MustDate(day),
	})
}

// Onboarded sets the onboarding flag.
func (b *Builder) Onboarded() *Builder {
	b.doc.UserHasOnboarded = true
	return b
}

// Ready marks onboarding complete and sets the username.
func (b *Builder) Ready(username string) *Builder {
	b.doc.UserHasOnboarded = true
	b.doc.Username = username
	return b
}

// WithFilters sets the saved filter preferences.
func (b *Builder) WithFilters(f model.TransactionFilters) *Builder {
	b.doc.TransactionPageFilters = &f
	return b
}

// Build returns a copy of the document.
func (b *Builder) Build() model.Document {
	return b.doc.Clone()
}

// MustDate parses a yyyy-MM-dd day or panics.
func MustDate(day string) model.Date {
	d, err := model.ParseDate(day)
	if err != nil {
		panic(fmt.Sprintf("documents: %v", err))
	}
	return d
}

// Day returns local noon on a yyyy-MM-dd day, the kind of value a caller
// passes to the month and day views.
func Day(day string) time.Time {
	d := MustDate(day)
	return time.Date(d.Year(), d.Month(), d.Day(), 12, 0, 0, 0, time.Local)
}
