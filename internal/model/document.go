package model

// Document is the single persisted aggregate.
type Document struct {
	TransactionPageFilters *TransactionFilters `json:"transactionPageFilters,omitempty"`
	Username               string              `json:"username,omitempty"`
	ProfilePictureDataURI  string              `json:"profilePictureDataUri,omitempty"`
	Transactions           []Transaction       `json:"transactions"`
	Categories             []Category          `json:"categories"`
	UserHasOnboarded       bool                `json:"userHasOnboarded,omitempty"`
}

// DefaultDocument is the document used when nothing is stored yet.
func DefaultDocument() Document {
	return Document{
		Transactions: []Transaction{},
		Categories:   DefaultCategories(),
	}
}

// Clone deep-copies the document.
func (d Document) Clone() Document {
	out := d
	out.Transactions = append(make([]Transaction, 0, len(d.Transactions)), d.Transactions...)
	out.Categories = append(make([]Category, 0, len(d.Categories)), d.Categories...)
	if d.TransactionPageFilters != nil {
		f := d.TransactionPageFilters.Clone()
		out.TransactionPageFilters = &f
	}
	return out
}
