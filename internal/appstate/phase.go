package appstate

// Phase is the readiness of the application.
type Phase int

// Readiness phases, in the order they are checked.
const (
	PhaseLoading Phase = iota
	PhaseNeedsOnboarding
	PhaseNeedsUsername
	PhaseReady
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseNeedsOnboarding:
		return "needs-onboarding"
	case PhaseNeedsUsername:
		return "needs-username"
	case PhaseReady:
		return "ready"
	default:
		return "unknown"
	}
}

// Phase derives readiness from the loading flag, the onboarding flag and the
// username, in that order.
func (s *State) Phase() Phase {
	if s.IsLoadingData() {
		return PhaseLoading
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	switch {
	case !s.doc.UserHasOnboarded:
		return PhaseNeedsOnboarding
	case !hasUsername(s.doc.Username):
		return PhaseNeedsUsername
	default:
		return PhaseReady
	}
}
