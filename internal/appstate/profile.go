package appstate

import (
	"context"
	"strings"

	"github.com/Veraticus/snacker/internal/model"
)

// Username returns the stored username, possibly empty.
func (s *State) Username() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.Username
}

// ProfilePicture returns the stored profile picture data URI.
func (s *State) ProfilePicture() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.ProfilePictureDataURI
}

// HasOnboarded reports whether onboarding was completed.
func (s *State) HasOnboarded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.UserHasOnboarded
}

// FilterPreferences returns the saved transaction filters.
func (s *State) FilterPreferences() (model.TransactionFilters, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.doc.TransactionPageFilters == nil {
		return model.TransactionFilters{}, false
	}
	return s.doc.TransactionPageFilters.Clone(), true
}

// SetUsername stores the username.
func (s *State) SetUsername(ctx context.Context, name string) {
	s.update(ctx, func(doc model.Document) model.Document {
		doc.Username = name
		return doc
	})
}

// SetProfilePicture stores an inline image data URI.
func (s *State) SetProfilePicture(ctx context.Context, dataURI string) {
	s.update(ctx, func(doc model.Document) model.Document {
		doc.ProfilePictureDataURI = dataURI
		return doc
	})
}

// MarkOnboardingComplete records that onboarding finished.
func (s *State) MarkOnboardingComplete(ctx context.Context) {
	s.update(ctx, func(doc model.Document) model.Document {
		doc.UserHasOnboarded = true
		return doc
	})
}

// SaveFilterPreferences stores filters for the transaction list.
func (s *State) SaveFilterPreferences(ctx context.Context, filters model.TransactionFilters) {
	f := filters.Clone()
	s.update(ctx, func(doc model.Document) model.Document {
		doc.TransactionPageFilters = &f
		return doc
	})
}

// ClearFilterPreferences removes the saved filters.
func (s *State) ClearFilterPreferences(ctx context.Context) {
	s.update(ctx, func(doc model.Document) model.Document {
		doc.TransactionPageFilters = nil
		return doc
	})
}

func hasUsername(name string) bool {
	return strings.TrimSpace(name) != ""
}
