package model

import (
	"errors"
	"fmt"
	"strings"
)

// TransactionType indicates whether money came in or went out.
type TransactionType string

const (
	// TypeIncome marks money received.
	TypeIncome TransactionType = "income"
	// TypeExpense marks money spent.
	TypeExpense TransactionType = "expense"
)

// Validation errors returned by the form-layer checks.
var (
	ErrInvalidType     = errors.New("invalid type")
	ErrInvalidAmount   = errors.New("amount must be a positive number")
	ErrMissingCategory = errors.New("category is required")
	ErrMissingDate     = errors.New("date is required")
	ErrInvalidName     = errors.New("invalid name")
)

// Valid reports whether t is income or expense.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// ParseTransactionType parses a user supplied type, ignoring case.
func ParseTransactionType(s string) (TransactionType, error) {
	t := TransactionType(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidType, s)
	}
	return t, nil
}

// Transaction is a single dated income or expense entry.
type Transaction struct {
	Date       Date            `json:"date"`
	ID         string          `json:"id"`
	Type       TransactionType `json:"type"`
	CategoryID string          `json:"categoryId"`
	Notes      string          `json:"notes,omitempty"`
	Amount     float64         `json:"amount"`
	IsFavorite bool            `json:"isFavorite,omitempty"` // expenses only
}

// Validate checks the fields a form must supply before a transaction is saved.
func (t Transaction) Validate() error {
	if !t.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidType, t.Type)
	}
	if t.Amount <= 0 {
		return ErrInvalidAmount
	}
	if strings.TrimSpace(t.CategoryID) == "" {
		return ErrMissingCategory
	}
	if t.Date.IsZero() {
		return ErrMissingDate
	}
	return nil
}
