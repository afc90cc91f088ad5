package appstate

import "github.com/Veraticus/snacker/internal/model"

// mergeDefaultCategories appends default categories missing by ID and
// backfills empty icons on default IDs. User categories are never touched.
func mergeDefaultCategories(doc model.Document) (model.Document, bool) {
	defaults := model.DefaultCategories()
	byID := make(map[string]model.Category, len(defaults))
	for _, c := range defaults {
		byID[c.ID] = c
	}

	changed := false
	cats := make([]model.Category, 0, len(doc.Categories)+len(defaults))
	present := make(map[string]bool, len(doc.Categories))
	for _, c := range doc.Categories {
		present[c.ID] = true
		if def, ok := byID[c.ID]; ok && c.Icon == "" {
			c.Icon = def.Icon
			changed = true
		}
		cats = append(cats, c)
	}

	for _, def := range defaults {
		if !present[def.ID] {
			cats = append(cats, def)
			changed = true
		}
	}

	doc.Categories = cats
	return doc, changed
}
