package appstate

import (
	"context"

	"github.com/Veraticus/snacker/internal/model"
)

// Categories returns a copy of every category in stored order.
func (s *State) Categories() []model.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Category(nil), s.doc.Categories...)
}

// CategoryByID returns the category with id. Transactions may reference
// deleted categories, so callers must handle the false case.
func (s *State) CategoryByID(id string) (model.Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return model.FindCategory(s.doc.Categories, id)
}

// CategoriesOfType returns the categories of kind t.
func (s *State) CategoriesOfType(t model.TransactionType) []model.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Category
	for _, c := range s.doc.Categories {
		if c.Type == t {
			out = append(out, c)
		}
	}
	return out
}

// AddCategory stores c under a fresh ID, defaulting the icon, and returns it.
func (s *State) AddCategory(ctx context.Context, c model.Category) model.Category {
	c.ID = s.newID()
	if c.Icon == "" {
		c.Icon = model.IconFallback
	}
	s.update(ctx, func(doc model.Document) model.Document {
		doc.Categories = append(doc.Categories, c)
		return doc
	})
	return c
}

// UpdateCategory replaces the category with c's ID. Unknown IDs are ignored.
func (s *State) UpdateCategory(ctx context.Context, c model.Category) {
	s.update(ctx, func(doc model.Document) model.Document {
		for i := range doc.Categories {
			if doc.Categories[i].ID == c.ID {
				doc.Categories[i] = c
			}
		}
		return doc
	})
}

// DeleteCategory removes the category with id. Transactions that reference
// it keep their category ID.
func (s *State) DeleteCategory(ctx context.Context, id string) {
	s.update(ctx, func(doc model.Document) model.Document {
		kept := doc.Categories[:0]
		for _, c := range doc.Categories {
			if c.ID != id {
				kept = append(kept, c)
			}
		}
		doc.Categories = kept
		return doc
	})
}
