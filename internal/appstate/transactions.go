package appstate

import (
	"context"

	"github.com/Veraticus/snacker/internal/model"
)

// Transactions returns a copy of every transaction in stored order.
func (s *State) Transactions() []model.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Transaction(nil), s.doc.Transactions...)
}

// TransactionByID looks a transaction up by ID.
func (s *State) TransactionByID(id string) (model.Transaction, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.doc.Transactions {
		if t.ID == id {
			return t, true
		}
	}
	return model.Transaction{}, false
}

// AddTransaction stores t under a fresh ID and returns the stored value.
func (s *State) AddTransaction(ctx context.Context, t model.Transaction) model.Transaction {
	t.ID = s.newID()
	s.update(ctx, func(doc model.Document) model.Document {
		doc.Transactions = append(doc.Transactions, t)
		return doc
	})
	return t
}

// UpdateTransaction replaces the transaction with t's ID. Unknown IDs are ignored.
func (s *State) UpdateTransaction(ctx context.Context, t model.Transaction) {
	s.update(ctx, func(doc model.Document) model.Document {
		for i := range doc.Transactions {
			if doc.Transactions[i].ID == t.ID {
				doc.Transactions[i] = t
			}
		}
		return doc
	})
}

// DeleteTransaction removes the transaction with id, if any.
func (s *State) DeleteTransaction(ctx context.Context, id string) {
	s.update(ctx, func(doc model.Document) model.Document {
		kept := doc.Transactions[:0]
		for _, t := range doc.Transactions {
			if t.ID != id {
				kept = append(kept, t)
			}
		}
		doc.Transactions = kept
		return doc
	})
}
