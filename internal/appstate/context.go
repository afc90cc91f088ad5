package appstate

import "context"

type contextKey struct{}

// WithState returns a context carrying s.
func WithState(ctx context.Context, s *State) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext returns the State installed by WithState. It panics when none
// was installed, which is a wiring bug rather than a runtime condition.
func FromContext(ctx context.Context) *State {
	s, ok := ctx.Value(contextKey{}).(*State)
	if !ok || s == nil {
		panic("appstate: FromContext called without a State in the context")
	}
	return s
}
